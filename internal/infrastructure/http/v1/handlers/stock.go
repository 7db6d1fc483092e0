package handlers

import (
	"github.com/gin-gonic/gin"

	"officex/internal/core/apperror"
	"officex/internal/core/id"
	"officex/internal/domain/inventory"
)

// StockHandler handles inventory stock queries.
type StockHandler struct {
	*BaseHandler
	service *inventory.Service
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(base *BaseHandler, service *inventory.Service) *StockHandler {
	return &StockHandler{BaseHandler: base, service: service}
}

// GetStock handles GET /inventory/stock
// Without filters it returns every stock record; persistence failures
// surface as 500 with the cause in details.
func (h *StockHandler) GetStock(c *gin.Context) {
	ctx := c.Request.Context()

	filter := inventory.Filter{
		ExcludeZero: c.Query("excludeZero") == "true",
	}

	if locStr := c.Query("locationId"); locStr != "" {
		parsed, err := id.Parse(locStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid locationId format"))
			return
		}
		filter.LocationID = &parsed
	}

	if pStr := c.Query("productId"); pStr != "" {
		parsed, err := id.Parse(pStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid productId format"))
			return
		}
		filter.ProductID = &parsed
	}

	var (
		records []inventory.StockRecord
		err     error
	)
	if filter.LocationID == nil && filter.ProductID == nil && !filter.ExcludeZero {
		records, err = h.service.GetAll(ctx)
	} else {
		records, err = h.service.Find(ctx, filter)
	}
	if err != nil {
		h.Error(c, apperror.NewPersistence(err))
		return
	}

	// Bare array, not the list envelope: existing consumers expect it.
	if records == nil {
		records = []inventory.StockRecord{}
	}
	h.OK(c, records)
}

// RegisterRoutes registers stock routes.
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stock", h.GetStock)
}
