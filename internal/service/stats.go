package service

import (
	"fmt"
	"math"
	"strings"

	"homewise/internal/dataset"
	"homewise/internal/model"
)

// ComputeStats aggregates decision counts and wealth averages over the
// properties matching the given filters.
func ComputeStats(store *dataset.Store, f model.Filters) model.Stats {
	matched := store.Filter(f)

	stats := model.Stats{
		Total:             len(matched),
		FilterDescription: DescribeFilters(f),
	}
	if stats.Total == 0 {
		stats.Empty = true
		return stats
	}

	var sumPrice, sumBuy, sumRent float64
	for _, p := range matched {
		decision := strings.ToLower(p.Decision)
		switch {
		case strings.Contains(decision, "buy"):
			stats.BuyCount++
		case strings.Contains(decision, "rent"):
			stats.RentCount++
		}
		sumPrice += p.Price
		sumBuy += p.WealthBuying
		sumRent += p.WealthRenting
	}

	n := float64(stats.Total)
	stats.BuyPercentage = round1(float64(stats.BuyCount) / n * 100)
	stats.RentPercentage = round1(float64(stats.RentCount) / n * 100)
	stats.AvgPrice = sumPrice / n
	stats.AvgWealthBuy = sumBuy / n
	stats.AvgWealthRent = sumRent / n
	return stats
}

// FilterProperties returns up to limit matching properties plus the total
// match count, for sample listings in chat responses.
func FilterProperties(store *dataset.Store, f model.Filters, limit int) ([]model.Property, int) {
	matched := store.Filter(f)
	total := len(matched)
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, total
}

// DescribeFilters renders active filters as a short human-readable phrase,
// e.g. "Mumbai 2 BHK ₹50.0L - ₹100.0L". No active filters yields
// "all properties".
func DescribeFilters(f model.Filters) string {
	var parts []string
	if f.Location != nil {
		parts = append(parts, *f.Location)
	}
	if f.BHK != nil {
		parts = append(parts, fmt.Sprintf("%d BHK", *f.BHK))
	}
	switch {
	case f.BudgetMin != nil && f.BudgetMax != nil:
		parts = append(parts, fmt.Sprintf("%s - %s", formatBudget(*f.BudgetMin), formatBudget(*f.BudgetMax)))
	case f.BudgetMax != nil:
		parts = append(parts, "under "+formatBudget(*f.BudgetMax))
	case f.BudgetMin != nil:
		parts = append(parts, "above "+formatBudget(*f.BudgetMin))
	}
	if len(parts) == 0 {
		return "all properties"
	}
	return strings.Join(parts, " ")
}

// formatBudget renders an INR amount in lakh units, switching to crore
// above ₹1Cr.
func formatBudget(amount float64) string {
	if amount > 1e7 {
		return fmt.Sprintf("₹%.2fCr", amount/1e7)
	}
	return fmt.Sprintf("₹%.1fL", amount/1e5)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
