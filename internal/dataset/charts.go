package dataset

import (
	"math"
	"sort"
	"strings"

	"homewise/internal/model"
)

// ChartData holds pre-aggregated series for the dashboard charts.
type ChartData struct {
	BuyAdvantageLabels []string  `json:"buy_advantage_labels"`
	BuyAdvantageValues []float64 `json:"buy_advantage_values"`

	BuyVsRentLabels []string `json:"buy_vs_rent_labels"`
	BuyVsRentValues []int    `json:"buy_vs_rent_values"`

	CityPriceLabels []string  `json:"city_price_labels"`
	CityPriceValues []float64 `json:"city_price_values"`

	CityCountLabels []string `json:"city_count_labels"`
	CityCountValues []int    `json:"city_count_values"`

	LocationPriceLabels []string  `json:"location_price_labels"`
	LocationPriceValues []float64 `json:"location_price_values"`

	PricePerSqftLabels []string  `json:"price_per_sqft_labels"`
	PricePerSqftValues []float64 `json:"price_per_sqft_values"`
}

// Charts computes the dashboard chart series over the current snapshot.
// An empty dataset yields empty series (the buy/rent pie keeps its labels).
func (s *Store) Charts() ChartData {
	props := s.All()

	data := ChartData{
		BuyVsRentLabels: []string{"Buy", "Rent"},
		BuyVsRentValues: []int{0, 0},
	}
	if len(props) == 0 {
		return data
	}

	// Top 10 properties by relative buy advantage.
	byAdvantage := make([]model.Property, len(props))
	copy(byAdvantage, props)
	sort.SliceStable(byAdvantage, func(i, j int) bool {
		return byAdvantage[i].BuyAdvantage() > byAdvantage[j].BuyAdvantage()
	})
	for i := 0; i < len(byAdvantage) && i < 10; i++ {
		data.BuyAdvantageLabels = append(data.BuyAdvantageLabels, byAdvantage[i].Location)
		data.BuyAdvantageValues = append(data.BuyAdvantageValues, round2(byAdvantage[i].BuyAdvantage()))
	}

	for _, p := range props {
		decision := strings.ToLower(p.Decision)
		if strings.Contains(decision, "buy") {
			data.BuyVsRentValues[0]++
		} else if strings.Contains(decision, "rent") {
			data.BuyVsRentValues[1]++
		}
	}

	data.CityPriceLabels, data.CityPriceValues = topMeans(props,
		func(p model.Property) string { return p.City },
		func(p model.Property) float64 { return p.Price }, 8)

	data.CityCountLabels, data.CityCountValues = topCounts(props,
		func(p model.Property) string { return p.City }, 8)

	data.LocationPriceLabels, data.LocationPriceValues = topMeans(props,
		func(p model.Property) string { return p.Location },
		func(p model.Property) float64 { return p.Price }, 10)

	data.PricePerSqftLabels, data.PricePerSqftValues = topMeans(props,
		func(p model.Property) string { return p.City },
		func(p model.Property) float64 { return p.PricePerSqft }, 8)

	return data
}

// topMeans groups properties by key, averages the value, and returns the top
// n groups by mean, descending.
func topMeans(props []model.Property, key func(model.Property) string, value func(model.Property) float64, n int) ([]string, []float64) {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, p := range props {
		k := key(p)
		if k == "" {
			continue
		}
		sums[k] += value(p)
		counts[k]++
	}

	type entry struct {
		label string
		mean  float64
	}
	entries := make([]entry, 0, len(sums))
	for k, sum := range sums {
		entries = append(entries, entry{k, sum / float64(counts[k])})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].mean != entries[j].mean {
			return entries[i].mean > entries[j].mean
		}
		return entries[i].label < entries[j].label
	})

	if len(entries) > n {
		entries = entries[:n]
	}

	labels := make([]string, len(entries))
	values := make([]float64, len(entries))
	for i, e := range entries {
		labels[i] = e.label
		values[i] = round2(e.mean)
	}
	return labels, values
}

// topCounts groups properties by key and returns the top n groups by record
// count, descending.
func topCounts(props []model.Property, key func(model.Property) string, n int) ([]string, []int) {
	counts := map[string]int{}
	for _, p := range props {
		k := key(p)
		if k == "" {
			continue
		}
		counts[k]++
	}

	type entry struct {
		label string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for k, c := range counts {
		entries = append(entries, entry{k, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].label < entries[j].label
	})

	if len(entries) > n {
		entries = entries[:n]
	}

	labels := make([]string, len(entries))
	values := make([]int, len(entries))
	for i, e := range entries {
		labels[i] = e.label
		values[i] = e.count
	}
	return labels, values
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
