package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"homewise/internal/model"
)

func strPtr(s string) *string     { return &s }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func sampleProperties() []model.Property {
	return []model.Property{
		{Location: "Andheri West", City: "Mumbai", Price: 15000000, AreaSqft: 900, BHK: 2, PricePerSqft: 16667, WealthBuying: 5000000, WealthRenting: 4000000, Decision: "BUYING is financially better"},
		{Location: "Bandra East", City: "Mumbai", Price: 25000000, AreaSqft: 1200, BHK: 3, PricePerSqft: 20833, WealthBuying: 3000000, WealthRenting: 6000000, Decision: "RENTING is financially better"},
		{Location: "Wakad", City: "Pune", Price: 7000000, AreaSqft: 1100, BHK: 2, PricePerSqft: 6364, WealthBuying: 2000000, WealthRenting: 1500000, Decision: "Buy"},
		{Location: "Kakkanad", City: "Kochi", Price: 5500000, AreaSqft: 1300, BHK: 3, PricePerSqft: 4231, WealthBuying: 1000000, WealthRenting: 2500000, Decision: "Rent"},
	}
}

func TestLoad_MissingFile(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if s.Len() != 0 {
		t.Errorf("missing file: Len() = %d, want 0", s.Len())
	}
	if len(s.Cities()) != 0 {
		t.Errorf("missing file: Cities() = %v, want empty", s.Cities())
	}
}

func TestReadCSV(t *testing.T) {
	csvData := `location,city,price,area_sqft,bhk,price_per_sqft,wealth_buying,wealth_renting,decision
Andheri West,Mumbai,15000000,900,2,16667,5000000,4000000,Buy
Bad Row,Mumbai,not-a-number,900,2,16667,1,1,Buy
Wakad,Pune,7000000,1100,2,6364,2000000,1500000,Rent
`
	path := filepath.Join(t.TempDir(), "props.csv")
	if err := os.WriteFile(path, []byte(csvData), 0o644); err != nil {
		t.Fatal(err)
	}

	props, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(props) != 2 {
		t.Fatalf("got %d rows, want 2 (bad row skipped)", len(props))
	}
	if props[0].City != "Mumbai" || props[0].BHK != 2 || props[0].Price != 15000000 {
		t.Errorf("unexpected first row: %+v", props[0])
	}
}

func TestReadCSV_MissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("location,price\nA,100\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadCSV(path); err == nil {
		t.Error("expected error for missing required column, got nil")
	}
}

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteCSV(path, sampleProperties()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	props, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(props) != 4 {
		t.Fatalf("got %d rows, want 4", len(props))
	}
	if props[3].Decision != "Rent" || props[3].City != "Kochi" {
		t.Errorf("unexpected last row: %+v", props[3])
	}
}

func TestMatch(t *testing.T) {
	p := sampleProperties()[0] // Mumbai 2 BHK, 1.5 Cr

	tests := []struct {
		name string
		f    model.Filters
		want bool
	}{
		{"empty filters match everything", model.Filters{}, true},
		{"city match case-insensitive", model.Filters{Location: strPtr("mumbai")}, true},
		{"city mismatch", model.Filters{Location: strPtr("Pune")}, false},
		{"bhk match", model.Filters{BHK: intPtr(2)}, true},
		{"bhk mismatch", model.Filters{BHK: intPtr(3)}, false},
		{"within budget", model.Filters{BudgetMin: floatPtr(10000000), BudgetMax: floatPtr(20000000)}, true},
		{"below budget min", model.Filters{BudgetMin: floatPtr(20000000)}, false},
		{"above budget max", model.Filters{BudgetMax: floatPtr(10000000)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(p, tt.f); got != tt.want {
				t.Errorf("Match = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStore_Cities(t *testing.T) {
	s := New(sampleProperties())
	cities := s.Cities()
	want := []string{"Kochi", "Mumbai", "Pune"}

	if len(cities) != len(want) {
		t.Fatalf("Cities() = %v, want %v", cities, want)
	}
	for i := range want {
		if cities[i] != want[i] {
			t.Errorf("Cities()[%d] = %q, want %q", i, cities[i], want[i])
		}
	}
}

func TestStore_Browse(t *testing.T) {
	s := New(sampleProperties())

	t.Run("city filter", func(t *testing.T) {
		page, total := s.Browse(model.BrowseRequest{City: "Mumbai"})
		if total != 2 || len(page) != 2 {
			t.Errorf("got %d/%d results, want 2/2", len(page), total)
		}
	})

	t.Run("decision filter matches verbose labels", func(t *testing.T) {
		_, total := s.Browse(model.BrowseRequest{Decision: "buy"})
		if total != 2 {
			t.Errorf("buy decisions = %d, want 2", total)
		}
	})

	t.Run("price sort descending", func(t *testing.T) {
		page, _ := s.Browse(model.BrowseRequest{Sort: SortPriceDesc})
		if page[0].Price != 25000000 {
			t.Errorf("first by price desc = %.0f, want 25000000", page[0].Price)
		}
	})

	t.Run("buy advantage sort", func(t *testing.T) {
		page, _ := s.Browse(model.BrowseRequest{Sort: SortBuyAdvantage})
		// Wakad has the highest relative advantage: (2M-1.5M)/1.5M = 33%.
		if page[0].Location != "Wakad" {
			t.Errorf("first by buy advantage = %q, want Wakad", page[0].Location)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		page, total := s.Browse(model.BrowseRequest{Page: 2, PerPage: 3})
		if total != 4 || len(page) != 1 {
			t.Errorf("page 2 of 3-per-page: got %d/%d, want 1/4", len(page), total)
		}
	})

	t.Run("page beyond range", func(t *testing.T) {
		page, total := s.Browse(model.BrowseRequest{Page: 10, PerPage: 10})
		if total != 4 || len(page) != 0 {
			t.Errorf("out-of-range page: got %d/%d, want 0/4", len(page), total)
		}
	})
}

func TestBuyAdvantage_ZeroGuard(t *testing.T) {
	p := model.Property{WealthBuying: 100, WealthRenting: 0}
	if got := p.BuyAdvantage(); got != 0 {
		t.Errorf("BuyAdvantage with zero renting wealth = %.2f, want 0", got)
	}
	p.WealthRenting = -50
	if got := p.BuyAdvantage(); got != 0 {
		t.Errorf("BuyAdvantage with negative renting wealth = %.2f, want 0", got)
	}
}

func TestStore_Charts(t *testing.T) {
	s := New(sampleProperties())
	charts := s.Charts()

	if charts.BuyVsRentValues[0] != 2 || charts.BuyVsRentValues[1] != 2 {
		t.Errorf("buy/rent distribution = %v, want [2 2]", charts.BuyVsRentValues)
	}
	if len(charts.CityPriceLabels) != 3 {
		t.Errorf("city price labels = %v, want 3 cities", charts.CityPriceLabels)
	}
	// Mumbai has the highest average price, so it leads the series.
	if charts.CityPriceLabels[0] != "Mumbai" {
		t.Errorf("top city by avg price = %q, want Mumbai", charts.CityPriceLabels[0])
	}
	if charts.BuyAdvantageLabels[0] != "Wakad" {
		t.Errorf("top buy advantage = %q, want Wakad", charts.BuyAdvantageLabels[0])
	}

	empty := New(nil).Charts()
	if len(empty.BuyVsRentLabels) != 2 || empty.BuyVsRentValues[0] != 0 {
		t.Errorf("empty charts = %+v, want zeroed pie with labels", empty)
	}
}

func TestMarshalCSV(t *testing.T) {
	out, err := MarshalCSV(sampleProperties()[:1])
	if err != nil {
		t.Fatalf("MarshalCSV failed: %v", err)
	}
	if !strings.HasPrefix(out, "location,city,price") {
		t.Errorf("unexpected header: %q", strings.SplitN(out, "\n", 2)[0])
	}
	if !strings.Contains(out, "Andheri West,Mumbai,15000000") {
		t.Errorf("row missing from output:\n%s", out)
	}
}
