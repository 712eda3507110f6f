package service

import (
	"fmt"
	"strconv"
	"strings"

	"homewise/internal/model"
)

// Compose renders a templated chat response from the computed stats and
// sample listings, according to the classified intent.
func Compose(intent model.Intent, stats model.Stats, samples []model.Property, total int) string {
	if stats.Empty {
		return fmt.Sprintf("I couldn't find any properties matching your criteria (%s). Would you like to adjust your filters?", stats.FilterDescription)
	}

	switch intent {
	case model.IntentBuyVsRent:
		return composeBuyVsRent(stats)
	case model.IntentRentAnalysis:
		return composeRentAnalysis(stats)
	case model.IntentSearchProperty:
		return composeSearch(stats, samples, total)
	case model.IntentExplain:
		return "I can explain real estate concepts like:\n• Buy vs Rent analysis\n• EMI calculations\n• Investment returns\n• Rental yields\n\nWhat would you like to understand better?"
	case model.IntentEducational:
		return "Real estate investing involves factors like property appreciation, rental income, loan interest, and tax implications. Our analysis helps you determine whether buying or renting makes more financial sense for your specific situation."
	default:
		return "I can help with property search, buy vs rent analysis, rental insights, and investment guidance. What would you like to know?"
	}
}

func composeBuyVsRent(stats model.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "For %s:\n\n", stats.FilterDescription)
	fmt.Fprintf(&b, "📊 Analysis of %d properties:\n", stats.Total)
	fmt.Fprintf(&b, "  • Buy recommended: %d properties (%s%%)\n", stats.BuyCount, formatPct(stats.BuyPercentage))
	fmt.Fprintf(&b, "  • Rent recommended: %d properties (%s%%)\n\n", stats.RentCount, formatPct(stats.RentPercentage))

	switch {
	case stats.BuyCount > stats.RentCount:
		b.WriteString("💡 Verdict: Buying is financially better for most properties here.\n")
		fmt.Fprintf(&b, "   Average 20-year wealth (buying): ₹%s\n", formatINR(stats.AvgWealthBuy))
		fmt.Fprintf(&b, "   Average 20-year wealth (renting): ₹%s\n", formatINR(stats.AvgWealthRent))
	case stats.RentCount > stats.BuyCount:
		b.WriteString("💡 Verdict: Renting offers better financial flexibility for most properties here.\n")
		fmt.Fprintf(&b, "   Average 20-year wealth (renting): ₹%s\n", formatINR(stats.AvgWealthRent))
		fmt.Fprintf(&b, "   Average 20-year wealth (buying): ₹%s\n", formatINR(stats.AvgWealthBuy))
	default:
		b.WriteString("💡 Verdict: Both buying and renting are equally viable options.\n")
	}
	return b.String()
}

func composeRentAnalysis(stats model.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rental Analysis for %s:\n\n", stats.FilterDescription)
	fmt.Fprintf(&b, "📈 %d properties analyzed\n", stats.Total)
	fmt.Fprintf(&b, "💰 Average price: ₹%s\n", formatINR(stats.AvgPrice))
	fmt.Fprintf(&b, "📊 20-year wealth potential (renting + investing): ₹%s\n", formatINR(stats.AvgWealthRent))
	b.WriteString("\n✨ Renting provides flexibility and reduced capital lock-in while you invest the down payment.\n")
	return b.String()
}

func composeSearch(stats model.Stats, samples []model.Property, total int) string {
	if total == 0 {
		return fmt.Sprintf("No properties found for %s. Try adjusting your filters (location, BHK, or budget).", stats.FilterDescription)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d properties in %s.\n\n", total, stats.FilterDescription)

	shown := samples
	if len(shown) > 3 {
		shown = shown[:3]
	}
	for i, p := range shown {
		fmt.Fprintf(&b, "%d. %s - %d BHK\n", i+1, p.Location, p.BHK)
		fmt.Fprintf(&b, "   Price: ₹%s | Recommendation: %s\n", formatINR(p.Price), p.Decision)
	}
	if total > 3 {
		fmt.Fprintf(&b, "\n... and %d more properties.\n", total-3)
	}
	return b.String()
}

// formatINR renders an amount rounded to whole rupees with thousands
// separators.
func formatINR(amount float64) string {
	neg := amount < 0
	s := strconv.FormatFloat(amount, 'f', 0, 64)
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// formatPct drops a trailing ".0" so whole percentages read naturally.
func formatPct(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
