package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"officex/internal/core/apperror"
	"officex/internal/domain/taxonomy"
	"officex/internal/infrastructure/http/v1/dto"
)

// TaxonomyHandler handles category and tag endpoints.
type TaxonomyHandler struct {
	*BaseHandler
	service *taxonomy.Service
}

// NewTaxonomyHandler creates a new taxonomy handler.
func NewTaxonomyHandler(base *BaseHandler, service *taxonomy.Service) *TaxonomyHandler {
	return &TaxonomyHandler{BaseHandler: base, service: service}
}

// ListCategories handles GET /catalog/categories
func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		h.Error(c, apperror.NewPersistence(err))
		return
	}
	h.OK(c, dto.NewListResponse(categories, len(categories)))
}

// CreateCategory handles POST /catalog/categories
// Invalid names come back as 400 with the validation messages; they are
// not treated as errors by the service.
func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateNameRequest
	if !h.BindJSON(c, &req) {
		return
	}

	created, res, err := h.service.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !res.Valid {
		c.JSON(http.StatusBadRequest, dto.ValidationFailureResponse{
			Valid:  false,
			Errors: res.Errors,
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListTags handles GET /catalog/tags
func (h *TaxonomyHandler) ListTags(c *gin.Context) {
	tags, err := h.service.ListTags(c.Request.Context())
	if err != nil {
		h.Error(c, apperror.NewPersistence(err))
		return
	}
	h.OK(c, dto.NewListResponse(tags, len(tags)))
}

// CreateTag handles POST /catalog/tags
func (h *TaxonomyHandler) CreateTag(c *gin.Context) {
	var req dto.CreateNameRequest
	if !h.BindJSON(c, &req) {
		return
	}

	created, res, err := h.service.CreateTag(c.Request.Context(), req.Name)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !res.Valid {
		c.JSON(http.StatusBadRequest, dto.ValidationFailureResponse{
			Valid:  false,
			Errors: res.Errors,
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// RegisterRoutes registers taxonomy routes.
func (h *TaxonomyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.ListCategories)
	rg.POST("/categories", h.CreateCategory)
	rg.GET("/tags", h.ListTags)
	rg.POST("/tags", h.CreateTag)
}
