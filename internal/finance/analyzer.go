package finance

import (
	"homewise/internal/model"
)

// DecisionLabel renders the verbose decision string stored in the analyzed
// dataset. Downstream consumers match on the "buy"/"rent" substring, so both
// the short and verbose forms are accepted when reading.
func DecisionLabel(d model.Decision) string {
	switch d {
	case model.DecisionBuy:
		return "BUYING is financially better"
	case model.DecisionRent:
		return "RENTING is financially better"
	default:
		return "Both options are similar"
	}
}

// Analyze runs the buy-vs-rent projection over raw scraped listings and
// returns analyzed property records. Listings with non-positive price or
// area are skipped rather than failing the batch.
func Analyze(listings []model.RawListing, p Params) []model.Property {
	results := make([]model.Property, 0, len(listings))

	for _, l := range listings {
		if l.PriceTotal <= 0 || l.AreaSqft <= 0 {
			continue
		}

		downPayment := p.DownPaymentPercent / 100 * l.PriceTotal
		buy := BuyingWealth(l.PriceTotal, downPayment, p)
		rent := RentingWealth(EstimateRent(l.PriceTotal, l.AreaSqft), downPayment, p)
		decision := CompareWealth(buy.Wealth, rent.Wealth)

		pricePerSqft := l.PricePerSqft
		if pricePerSqft <= 0 {
			pricePerSqft = round2(l.PriceTotal / l.AreaSqft)
		}

		results = append(results, model.Property{
			Location:      l.Location,
			City:          l.City,
			Price:         l.PriceTotal,
			AreaSqft:      l.AreaSqft,
			BHK:           l.BHK,
			PricePerSqft:  pricePerSqft,
			WealthBuying:  buy.Wealth,
			WealthRenting: rent.Wealth,
			Decision:      DecisionLabel(decision),
		})
	}

	return results
}
