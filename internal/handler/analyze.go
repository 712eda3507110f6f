package handler

import (
	"log"
	"net/http"
	"strings"

	"homewise/internal/dataset"
	"homewise/internal/finance"
	"homewise/internal/model"
	"homewise/internal/repository"
	"homewise/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyzeHandler runs batch re-analysis and loan comparisons
type AnalyzeHandler struct {
	store        *dataset.Store
	baseParams   finance.Params
	listingsPath string
	analyzedPath string
	bankRates    map[string]float64
	embedder     *service.OpenAIClient
	index        *repository.VectorIndex
}

// NewAnalyzeHandler creates a new analysis handler. embedder and index may
// be nil, which disables the index rebuild endpoint.
func NewAnalyzeHandler(store *dataset.Store, baseParams finance.Params, listingsPath, analyzedPath string, bankRates map[string]float64, embedder *service.OpenAIClient, index *repository.VectorIndex) *AnalyzeHandler {
	return &AnalyzeHandler{
		store:        store,
		baseParams:   baseParams,
		listingsPath: listingsPath,
		analyzedPath: analyzedPath,
		bankRates:    bankRates,
		embedder:     embedder,
		index:        index,
	}
}

// Analyze handles POST /api/v1/analyze. It re-runs the financial model over
// the raw listings with the requested assumptions, persists the result, and
// swaps it into the live store.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req model.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.AnalyzeResponse{Success: false, Error: "Invalid request: " + err.Error()})
		return
	}

	params := h.overrideParams(req)

	listings, err := dataset.ReadRawListings(h.listingsPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.AnalyzeResponse{Success: false, Error: "Failed to read listings: " + err.Error()})
		return
	}

	props := finance.Analyze(listings, params)
	if err := dataset.WriteCSV(h.analyzedPath, props); err != nil {
		c.JSON(http.StatusInternalServerError, model.AnalyzeResponse{Success: false, Error: "Failed to write results: " + err.Error()})
		return
	}
	h.store.Swap(props)

	var buy, rent int
	for _, p := range props {
		decision := strings.ToLower(p.Decision)
		switch {
		case strings.Contains(decision, "buy"):
			buy++
		case strings.Contains(decision, "rent"):
			rent++
		}
	}

	log.Printf("✅ Re-analyzed %d properties (buy=%d rent=%d)", len(props), buy, rent)

	c.JSON(http.StatusOK, model.AnalyzeResponse{
		Success:         true,
		Message:         "Analysis complete",
		TotalProperties: len(props),
		BuyCount:        buy,
		RentCount:       rent,
	})
}

func (h *AnalyzeHandler) overrideParams(req model.AnalyzeRequest) finance.Params {
	params := h.baseParams
	if req.DownPaymentPercent > 0 {
		params.DownPaymentPercent = req.DownPaymentPercent
	}
	if req.LoanRate > 0 {
		params.LoanRate = req.LoanRate
	}
	if req.TaxRate > 0 {
		params.TaxRate = req.TaxRate
	}
	if req.AppreciationRate > 0 {
		params.AppreciationRate = req.AppreciationRate
	}
	if req.RentEscalation > 0 {
		params.RentEscalation = req.RentEscalation
	}
	if req.InvestRate > 0 {
		params.InvestRate = req.InvestRate
	}
	if req.MonthlySaving > 0 {
		params.MonthlySaving = req.MonthlySaving
	}
	return params
}

// CompareBanks handles POST /api/v1/banks/compare
func (h *AnalyzeHandler) CompareBanks(c *gin.Context) {
	var req model.BankCompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}
	if len(h.bankRates) == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Bank rates are not configured"})
		return
	}

	downPayment := req.DownPayment
	if downPayment <= 0 {
		downPayment = req.PropertyPrice * h.baseParams.DownPaymentPercent / 100
	}
	tenure := req.TenureYears
	if tenure <= 0 {
		tenure = h.baseParams.TenureYears
	}

	offers := finance.CompareBanks(h.bankRates, req.PropertyPrice, downPayment, tenure)
	c.JSON(http.StatusOK, gin.H{"success": true, "offers": offers})
}

// RebuildIndex handles POST /api/v1/index/rebuild. It regenerates one
// explanation document per property, embeds them, and swaps the vector
// index contents.
func (h *AnalyzeHandler) RebuildIndex(c *gin.Context) {
	if h.embedder == nil || !h.embedder.IsEnabled() || h.index == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Vector index is not configured"})
		return
	}

	props := h.store.All()
	if len(props) == 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "No analyzed properties to index"})
		return
	}

	docs := service.BuildExplanations(props)
	embeddings, err := h.embedder.CreateEmbeddings(c.Request.Context(), docs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Embedding failed: " + err.Error()})
		return
	}

	items := make([]repository.Document, len(docs))
	for i := range docs {
		items[i] = repository.Document{Content: docs[i], Embedding: embeddings[i]}
	}

	indexed, errs := h.index.ReplaceAll(c.Request.Context(), items)
	log.Printf("✅ Rebuilt vector index: %d/%d documents", indexed, len(items))

	c.JSON(http.StatusOK, gin.H{
		"success": indexed > 0,
		"indexed": indexed,
		"total":   len(items),
		"errors":  errs,
	})
}
