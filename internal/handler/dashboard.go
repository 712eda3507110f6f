package handler

import (
	"net/http"
	"strings"

	"homewise/internal/dataset"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves aggregate views of the analyzed dataset
type DashboardHandler struct {
	store *dataset.Store
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(store *dataset.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// Dashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	props := h.store.All()

	var buy, rent int
	var sumPrice, sumArea float64
	for _, p := range props {
		decision := strings.ToLower(p.Decision)
		switch {
		case strings.Contains(decision, "buy"):
			buy++
		case strings.Contains(decision, "rent"):
			rent++
		}
		sumPrice += p.Price
		sumArea += p.AreaSqft
	}

	var avgPrice, avgArea float64
	if len(props) > 0 {
		avgPrice = sumPrice / float64(len(props))
		avgArea = sumArea / float64(len(props))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":              true,
		"total_properties":     len(props),
		"buy_recommendations":  buy,
		"rent_recommendations": rent,
		"avg_price":            avgPrice,
		"avg_area":             avgArea,
	})
}

// Charts handles GET /api/v1/charts
func (h *DashboardHandler) Charts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"charts":  h.store.Charts(),
	})
}
