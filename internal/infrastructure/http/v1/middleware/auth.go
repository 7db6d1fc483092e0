package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"officex/internal/core/apperror"
	"officex/internal/core/appctx"
	"officex/internal/domain/user"
)

// TokenValidator interface for token validation.
type TokenValidator interface {
	Validate(tokenString string) (*appctx.Actor, error)
}

// Auth middleware validates JWT tokens and populates the acting user context.
func Auth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		actor, err := validator.Validate(parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		ctx := appctx.WithActor(c.Request.Context(), actor)
		c.Request = c.Request.WithContext(ctx)

		// Store in gin context for easy access
		c.Set("user_id", actor.UserID)
		c.Set("role_id", actor.RoleID)

		c.Next()
	}
}

// RequireRole middleware checks that the acting user has one of the roles.
func RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := appctx.GetActor(c.Request.Context())
		if actor == nil {
			abortUnauthorized(c, "authentication required")
			return
		}

		for _, required := range roles {
			if actor.RoleID == int(required) {
				c.Next()
				return
			}
		}

		_ = c.Error(
			apperror.NewForbidden("insufficient permissions").
				WithDetail("role_id", actor.RoleID),
		)
		c.Abort()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	_ = c.Error(apperror.NewUnauthorized(message))
	c.Abort()
}
