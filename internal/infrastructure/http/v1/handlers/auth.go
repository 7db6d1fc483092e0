package handlers

import (
	"github.com/gin-gonic/gin"

	"officex/internal/domain/auth"
	"officex/internal/infrastructure/http/v1/dto"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	*BaseHandler
	service *auth.Service
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(base *BaseHandler, service *auth.Service) *AuthHandler {
	return &AuthHandler{BaseHandler: base, service: service}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	token, u, err := h.service.Login(c.Request.Context(), req.CoUserID, req.Password)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewLoginResponse(token, u))
}

// RegisterRoutes registers auth routes.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
}
