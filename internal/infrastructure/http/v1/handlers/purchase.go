package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"officex/internal/core/apperror"
	"officex/internal/core/id"
	"officex/internal/domain/purchase"
	"officex/internal/infrastructure/http/v1/dto"
)

// PurchaseHandler handles purchase order endpoints.
type PurchaseHandler struct {
	*BaseHandler
	service *purchase.Service
}

// NewPurchaseHandler creates a new purchase handler.
func NewPurchaseHandler(base *BaseHandler, service *purchase.Service) *PurchaseHandler {
	return &PurchaseHandler{BaseHandler: base, service: service}
}

// List handles GET /purchases
func (h *PurchaseHandler) List(c *gin.Context) {
	filter := purchase.Filter{
		SupplierName: c.Query("supplier"),
		Limit:        h.ParseIntQuery(c, "limit", 50),
		Offset:       h.ParseIntQuery(c, "offset", 0),
	}

	if pointStr := c.Query("inventoryPointId"); pointStr != "" {
		parsed, err := id.Parse(pointStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid inventoryPointId format"))
			return
		}
		filter.InventoryPointID = &parsed
	}

	orders, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, apperror.NewPersistence(err))
		return
	}

	h.OK(c, dto.NewListResponse(orders, len(orders)))
}

// Get handles GET /purchases/:id
func (h *PurchaseHandler) Get(c *gin.Context) {
	orderID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid order id format"))
		return
	}

	o, err := h.service.Get(c.Request.Context(), orderID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, o)
}

// Create handles POST /purchases
// Submitted totals are validated against line items, never recomputed.
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	o, err := req.ToOrder()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(c.Request.Context(), o); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, o)
}

// RegisterRoutes registers purchase routes.
func (h *PurchaseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
}
