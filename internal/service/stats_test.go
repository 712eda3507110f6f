package service

import (
	"testing"

	"homewise/internal/model"
)

func strPtr(s string) *string     { return &s }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestComputeStats(t *testing.T) {
	store := testStore()

	stats := ComputeStats(store, model.Filters{Location: strPtr("Mumbai"), BHK: intPtr(2)})
	if stats.Empty {
		t.Fatal("stats.Empty = true, want matches")
	}
	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if stats.BuyCount != 2 || stats.RentCount != 1 {
		t.Errorf("counts = (%d, %d), want (2, 1)", stats.BuyCount, stats.RentCount)
	}
	if stats.BuyPercentage != 66.7 {
		t.Errorf("BuyPercentage = %.1f, want 66.7", stats.BuyPercentage)
	}
	if stats.RentPercentage != 33.3 {
		t.Errorf("RentPercentage = %.1f, want 33.3", stats.RentPercentage)
	}

	wantAvgPrice := (9500000.0 + 12000000.0 + 8000000.0) / 3
	if stats.AvgPrice != wantAvgPrice {
		t.Errorf("AvgPrice = %.2f, want %.2f", stats.AvgPrice, wantAvgPrice)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	store := testStore()

	stats := ComputeStats(store, model.Filters{Location: strPtr("Kochi")})
	if !stats.Empty {
		t.Fatal("stats.Empty = false, want true")
	}
	if stats.Total != 0 {
		t.Errorf("Total = %d, want 0", stats.Total)
	}
	if stats.FilterDescription != "Kochi" {
		t.Errorf("FilterDescription = %q, want Kochi", stats.FilterDescription)
	}
}

func TestComputeStats_Unfiltered(t *testing.T) {
	stats := ComputeStats(testStore(), model.Filters{})
	if stats.Total != 8 {
		t.Errorf("Total = %d, want 8", stats.Total)
	}
	if stats.FilterDescription != "all properties" {
		t.Errorf("FilterDescription = %q, want all properties", stats.FilterDescription)
	}
}

func TestFilterProperties_Limit(t *testing.T) {
	store := testStore()

	records, total := FilterProperties(store, model.Filters{Location: strPtr("Mumbai")}, 2)
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
	if len(records) != 2 {
		t.Errorf("len(records) = %d, want 2", len(records))
	}
}

func TestDescribeFilters(t *testing.T) {
	tests := []struct {
		name string
		f    model.Filters
		want string
	}{
		{"none", model.Filters{}, "all properties"},
		{"city only", model.Filters{Location: strPtr("Mumbai")}, "Mumbai"},
		{
			"full",
			model.Filters{Location: strPtr("Mumbai"), BHK: intPtr(2), BudgetMin: floatPtr(5000000), BudgetMax: floatPtr(10000000)},
			"Mumbai 2 BHK ₹50.0L - ₹100.0L",
		},
		{"max only", model.Filters{BudgetMax: floatPtr(15000000)}, "under ₹1.50Cr"},
		{"min only", model.Filters{BudgetMin: floatPtr(2500000)}, "above ₹25.0L"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DescribeFilters(tt.f); got != tt.want {
				t.Errorf("DescribeFilters() = %q, want %q", got, tt.want)
			}
		})
	}
}
