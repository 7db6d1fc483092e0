package handlers

import (
	"github.com/gin-gonic/gin"

	"officex/internal/core/apperror"
	"officex/internal/domain/sales"
	"officex/internal/infrastructure/http/v1/dto"
)

// SalesHandler handles sales history queries.
type SalesHandler struct {
	*BaseHandler
	service *sales.Service
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(base *BaseHandler, service *sales.Service) *SalesHandler {
	return &SalesHandler{BaseHandler: base, service: service}
}

// ListRecent handles GET /sales
// Returns recent sales newest first.
func (h *SalesHandler) ListRecent(c *gin.Context) {
	filter := sales.Filter{
		Limit:  h.ParseIntQuery(c, "limit", 100),
		Offset: h.ParseIntQuery(c, "offset", 0),
	}

	items, err := h.service.ListRecent(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, apperror.NewPersistence(err))
		return
	}

	h.OK(c, dto.NewListResponse(items, len(items)))
}

// RegisterRoutes registers sales routes.
func (h *SalesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListRecent)
}
