package utils

import "testing"

func TestSequenceRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		min  float64
		max  float64
	}{
		{"identical", "mumbai", "mumbai", 1.0, 1.0},
		{"identical different case", "Mumbai", "MUMBAI", 1.0, 1.0},
		{"empty strings", "", "", 0, 0},
		{"one empty", "pune", "", 0, 0},
		{"one char omitted", "trivandram", "trivandrum", 0.9, 1.0},
		{"unrelated", "mumbai", "xyzqw", 0, 0.2},
		{"partial overlap", "thane", "pune", 0.3, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SequenceRatio(tt.a, tt.b)
			if got < tt.min || got > tt.max {
				t.Errorf("SequenceRatio(%q, %q) = %.3f, want within [%.2f, %.2f]",
					tt.a, tt.b, got, tt.min, tt.max)
			}
		})
	}
}

func TestSequenceRatio_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"trivandrum", "thiruvananthapuram"},
		{"kochi", "cochin"},
		{"hyderabad", "hydrabad"},
	}
	for _, p := range pairs {
		ab := SequenceRatio(p[0], p[1])
		ba := SequenceRatio(p[1], p[0])
		if ab != ba {
			t.Errorf("SequenceRatio not symmetric for %q/%q: %.4f vs %.4f", p[0], p[1], ab, ba)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"mumbai", "Mumbai"},
		{"MUMBAI", "Mumbai"},
		{"navi mumbai", "Navi Mumbai"},
		{"new-delhi", "New-Delhi"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Find 2 BHK in Mumbai, under ₹50 lakh!")
	want := []string{"find", "2", "bhk", "in", "mumbai", "under", "50", "lakh"}

	if len(got) != len(want) {
		t.Fatalf("Tokenize returned %d tokens %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
