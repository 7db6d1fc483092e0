package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"officex/internal/core/apperror"
	"officex/internal/core/id"
	"officex/internal/domain/location"
	"officex/internal/infrastructure/http/v1/dto"
)

// LocationHandler handles location catalog endpoints.
type LocationHandler struct {
	*BaseHandler
	service *location.Service
}

// NewLocationHandler creates a new location handler.
func NewLocationHandler(base *BaseHandler, service *location.Service) *LocationHandler {
	return &LocationHandler{BaseHandler: base, service: service}
}

// List handles GET /locations
// Returns the location tree visible to the acting role.
func (h *LocationHandler) List(c *gin.Context) {
	tree, err := h.service.ListVisible(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewListResponse(tree, len(tree)))
}

// Get handles GET /locations/:id
func (h *LocationHandler) Get(c *gin.Context) {
	locationID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid location id format"))
		return
	}

	l, err := h.service.Get(c.Request.Context(), locationID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, l)
}

// Create handles POST /locations
func (h *LocationHandler) Create(c *gin.Context) {
	var req dto.CreateLocationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	l, err := req.ToLocation()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(c.Request.Context(), l); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, l)
}

// RegisterRoutes registers location routes.
func (h *LocationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
}
