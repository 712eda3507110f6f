package model

// Intent is the closed set of query categories recognized by the chat
// pipeline. Computed fresh per query, never persisted.
type Intent string

const (
	IntentBuyVsRent      Intent = "BUY_VS_RENT"
	IntentRentAnalysis   Intent = "RENT_ANALYSIS"
	IntentSearchProperty Intent = "SEARCH_PROPERTY"
	IntentExplain        Intent = "EXPLAIN"
	IntentEducational    Intent = "EDUCATIONAL"
)

// Filters represents structured conditions extracted from a free-text query.
// A nil field means the query said nothing about it; extraction never guesses.
type Filters struct {
	Location  *string  `json:"location,omitempty"`
	BHK       *int     `json:"bhk,omitempty"`
	BudgetMin *float64 `json:"budget_min,omitempty"`
	BudgetMax *float64 `json:"budget_max,omitempty"`
}

// Empty reports whether no filter field is set. An empty filter set matches
// every record.
func (f Filters) Empty() bool {
	return f.Location == nil && f.BHK == nil && f.BudgetMin == nil && f.BudgetMax == nil
}
