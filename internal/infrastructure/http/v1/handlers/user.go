package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"officex/internal/core/apperror"
	"officex/internal/core/id"
	"officex/internal/domain/user"
	"officex/internal/infrastructure/http/v1/dto"
)

// UserHandler handles user listing endpoints.
type UserHandler struct {
	*BaseHandler
	service *user.Service
}

// NewUserHandler creates a new user handler.
func NewUserHandler(base *BaseHandler, service *user.Service) *UserHandler {
	return &UserHandler{BaseHandler: base, service: service}
}

// List handles GET /users
// Optional ?role= filters by role ID.
func (h *UserHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := user.Filter{ActiveOnly: true}

	if roleStr := c.Query("role"); roleStr != "" {
		roleID, err := strconv.Atoi(roleStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid role format"))
			return
		}
		role, ok := user.RoleFromID(roleID)
		if !ok {
			h.Error(c, apperror.NewValidation("unknown role").WithDetail("role", roleID))
			return
		}
		filter.Role = &role
	}

	users, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, apperror.NewPersistence(err))
		return
	}

	h.OK(c, dto.NewListResponse(dto.FromUsers(users), len(users)))
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	userID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid user id format"))
		return
	}

	u, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromUser(u))
}

// RegisterRoutes registers user routes.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
}
