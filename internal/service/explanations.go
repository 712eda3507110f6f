package service

import (
	"fmt"
	"strings"

	"homewise/internal/model"
)

// BuildExplanation renders a property as a self-contained document suitable
// for embedding into the vector index.
func BuildExplanation(p model.Property) string {
	var b strings.Builder
	b.WriteString("Property Overview\n")
	fmt.Fprintf(&b, "Location: %s\n", orUnknown(p.Location))
	fmt.Fprintf(&b, "City: %s\n", orUnknown(p.City))
	fmt.Fprintf(&b, "Area: %.0f sqft\n", p.AreaSqft)
	fmt.Fprintf(&b, "Price: ₹%s\n\n", formatINR(p.Price))
	b.WriteString("Financial Summary\n")
	fmt.Fprintf(&b, "Wealth if Buying: ₹%s\n", formatINR(p.WealthBuying))
	fmt.Fprintf(&b, "Wealth if Renting: ₹%s\n\n", formatINR(p.WealthRenting))
	b.WriteString("Final Decision\n")
	b.WriteString(p.Decision)
	b.WriteString("\n\nRationale\n")
	b.WriteString("This decision is based on backend financial simulations comparing long-term wealth outcomes\nbetween buying and renting under fixed assumptions.")
	return b.String()
}

// BuildExplanations renders one document per property, in order.
func BuildExplanations(props []model.Property) []string {
	docs := make([]string, 0, len(props))
	for _, p := range props {
		docs = append(docs, BuildExplanation(p))
	}
	return docs
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
