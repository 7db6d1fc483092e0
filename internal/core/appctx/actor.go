// Package appctx provides request-scoped values extraction.
package appctx

import (
	"context"
)

// Actor contains the authenticated user acting on a request.
type Actor struct {
	UserID   string
	CoUserID string
	Name     string
	RoleID   int
}

type actorContextKey struct{}

// WithActor adds Actor to context.
func WithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// GetActor returns Actor from context.
func GetActor(ctx context.Context) *Actor {
	if v, ok := ctx.Value(actorContextKey{}).(*Actor); ok {
		return v
	}
	return nil
}

// GetActorID returns acting user ID from context or empty string.
func GetActorID(ctx context.Context) string {
	if a := GetActor(ctx); a != nil {
		return a.UserID
	}
	return ""
}

// GetActorRoleID returns acting user role ID from context, 0 when absent.
func GetActorRoleID(ctx context.Context) int {
	if a := GetActor(ctx); a != nil {
		return a.RoleID
	}
	return 0
}
