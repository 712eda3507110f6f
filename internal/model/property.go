package model

// Decision is the buy-vs-rent recommendation attached to an analyzed property.
type Decision string

const (
	DecisionBuy  Decision = "Buy"
	DecisionRent Decision = "Rent"
	DecisionTie  Decision = "Tie"
)

// Property represents one analyzed listing row. Records are produced by the
// batch analysis step and are read-only for the query pipeline.
type Property struct {
	Location      string  `json:"location" csv:"location"`
	City          string  `json:"city" csv:"city"`
	Price         float64 `json:"price" csv:"price"`
	AreaSqft      float64 `json:"area_sqft" csv:"area_sqft"`
	BHK           int     `json:"bhk" csv:"bhk"`
	PricePerSqft  float64 `json:"price_per_sqft" csv:"price_per_sqft"`
	WealthBuying  float64 `json:"wealth_buying" csv:"wealth_buying"`
	WealthRenting float64 `json:"wealth_renting" csv:"wealth_renting"`
	Decision      string  `json:"decision" csv:"decision"`
}

// BuyAdvantage returns the relative advantage of buying over renting as a
// percentage. Returns 0 when wealth_renting is not positive to avoid a
// division by zero.
func (p Property) BuyAdvantage() float64 {
	if p.WealthRenting <= 0 {
		return 0
	}
	return (p.WealthBuying - p.WealthRenting) / p.WealthRenting * 100
}

// RawListing is one row of the scraped listings file that the batch analyzer
// consumes. Rows with unparseable price or area are skipped during analysis.
type RawListing struct {
	Location     string  `json:"location"`
	City         string  `json:"city"`
	PriceTotal   float64 `json:"price_total_inr"`
	AreaSqft     float64 `json:"area_sqft"`
	BHK          int     `json:"bhk"`
	PricePerSqft float64 `json:"price_per_sqft"`
}

// Stats holds aggregate statistics over a filtered set of properties.
type Stats struct {
	Total             int     `json:"total"`
	BuyCount          int     `json:"buy_count"`
	RentCount         int     `json:"rent_count"`
	BuyPercentage     float64 `json:"buy_percentage"`
	RentPercentage    float64 `json:"rent_percentage"`
	AvgPrice          float64 `json:"avg_price"`
	AvgWealthBuy      float64 `json:"avg_wealth_buy"`
	AvgWealthRent     float64 `json:"avg_wealth_rent"`
	FilterDescription string  `json:"filter_description"`
	Empty             bool    `json:"empty"`
}
