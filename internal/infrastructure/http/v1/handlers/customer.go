package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"officex/internal/core/apperror"
	"officex/internal/core/id"
	"officex/internal/domain/customer"
	"officex/internal/infrastructure/http/v1/dto"
)

// CustomerHandler handles customer catalog endpoints.
type CustomerHandler struct {
	*BaseHandler
	service *customer.Service
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(base *BaseHandler, service *customer.Service) *CustomerHandler {
	return &CustomerHandler{BaseHandler: base, service: service}
}

// List handles GET /customers
func (h *CustomerHandler) List(c *gin.Context) {
	filter := customer.Filter{
		Search: c.Query("search"),
		Limit:  h.ParseIntQuery(c, "limit", 50),
		Offset: h.ParseIntQuery(c, "offset", 0),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := customer.Status(statusStr)
		filter.Status = &status
	}

	customers, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, apperror.NewPersistence(err))
		return
	}

	h.OK(c, dto.NewListResponse(customers, len(customers)))
}

// Get handles GET /customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	customerID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid customer id format"))
		return
	}

	cust, err := h.service.Get(c.Request.Context(), customerID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, cust)
}

// Create handles POST /customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cust := req.ToCustomer()
	if err := h.service.Create(c.Request.Context(), cust); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, cust)
}

// RegisterRoutes registers customer routes.
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
}
