package model

// ChatRequest represents a chat query request. Query and Message are
// interchangeable; Message is kept for older frontend clients.
type ChatRequest struct {
	Query     string `json:"query"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// Text returns the query text, preferring Query over Message.
func (r ChatRequest) Text() string {
	if r.Query != "" {
		return r.Query
	}
	return r.Message
}

// ChatResponse represents a chat reply.
type ChatResponse struct {
	Success  bool     `json:"success"`
	Response string   `json:"response,omitempty"`
	Source   string   `json:"source,omitempty"`
	Context  *Filters `json:"context,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Reply sources reported in ChatResponse.Source.
const (
	SourceComposer = "composer"
	SourceRAG      = "rag"
	SourceFallback = "fallback"
)

// BrowseRequest represents structured filter criteria for the browse endpoint.
type BrowseRequest struct {
	City     string   `form:"city"`
	BHK      *int     `form:"bhk"`
	Decision string   `form:"decision"`
	MinPrice *float64 `form:"min_price"`
	MaxPrice *float64 `form:"max_price"`
	MinArea  *float64 `form:"min_area"`
	MaxArea  *float64 `form:"max_area"`
	Sort     string   `form:"sort"`
	Page     int      `form:"page"`
	PerPage  int      `form:"per_page"`
}

// BrowseResponse represents a paginated browse result.
type BrowseResponse struct {
	Success    bool       `json:"success"`
	Data       []Property `json:"data"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	PerPage    int        `json:"per_page"`
	TotalPages int        `json:"total_pages"`
}

// AnalyzeRequest carries custom parameters for a batch re-analysis run.
// Zero-valued fields fall back to the configured defaults.
type AnalyzeRequest struct {
	DownPaymentPercent float64 `json:"down_payment_percent"`
	LoanRate           float64 `json:"loan_rate"`
	TaxRate            float64 `json:"tax_rate"`
	AppreciationRate   float64 `json:"appreciation_rate"`
	RentEscalation     float64 `json:"rent_escalation"`
	InvestRate         float64 `json:"invest_rate"`
	MonthlySaving      float64 `json:"monthly_saving"`
}

// AnalyzeResponse reports the outcome of a batch analysis run.
type AnalyzeResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message,omitempty"`
	TotalProperties int    `json:"total_properties"`
	BuyCount        int    `json:"buy_count"`
	RentCount       int    `json:"rent_count"`
	Error           string `json:"error,omitempty"`
}

// BankCompareRequest asks for a per-bank EMI comparison on a loan.
type BankCompareRequest struct {
	PropertyPrice float64 `json:"property_price" binding:"required"`
	DownPayment   float64 `json:"down_payment"`
	TenureYears   int     `json:"tenure_years"`
}

// BankLoanOffer is one bank's row in the loan comparison table.
type BankLoanOffer struct {
	Bank          string  `json:"bank"`
	InterestRate  float64 `json:"interest_rate"`
	LoanAmount    float64 `json:"loan_amount"`
	MonthlyEMI    float64 `json:"monthly_emi"`
	TotalInterest float64 `json:"total_interest"`
	TotalPayment  float64 `json:"total_payment"`
}
