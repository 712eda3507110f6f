package handler

import (
	"net/http"

	"homewise/internal/dataset"
	"homewise/internal/model"

	"github.com/gin-gonic/gin"
)

// PropertyHandler serves the analyzed property catalog
type PropertyHandler struct {
	store   *dataset.Store
	perPage int
	maxPage int
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(store *dataset.Store, defaultPerPage, maxPerPage int) *PropertyHandler {
	return &PropertyHandler{
		store:   store,
		perPage: defaultPerPage,
		maxPage: maxPerPage,
	}
}

// List handles GET /api/v1/properties
func (h *PropertyHandler) List(c *gin.Context) {
	var req model.BrowseRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid query: " + err.Error()})
		return
	}

	if req.PerPage <= 0 {
		req.PerPage = h.perPage
	}
	if req.PerPage > h.maxPage {
		req.PerPage = h.maxPage
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice > *req.MaxPrice {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "min_price cannot exceed max_price"})
		return
	}

	props, total := h.store.Browse(req)

	totalPages := total / req.PerPage
	if total%req.PerPage != 0 {
		totalPages++
	}

	c.JSON(http.StatusOK, model.BrowseResponse{
		Success:    true,
		Data:       props,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	})
}

// Cities handles GET /api/v1/cities
func (h *PropertyHandler) Cities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"cities":  h.store.Cities(),
	})
}

// Export handles GET /api/v1/export
func (h *PropertyHandler) Export(c *gin.Context) {
	props := h.store.All()

	if c.DefaultQuery("format", "csv") == "json" {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": props})
		return
	}

	body, err := dataset.MarshalCSV(props)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Export failed: " + err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=properties.csv")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
}
