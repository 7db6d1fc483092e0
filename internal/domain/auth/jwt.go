// Package auth provides token issuance and validation for API access.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"officex/internal/core/appctx"
)

// JWTConfig holds JWT configuration.
type JWTConfig struct {
	Secret         string
	Issuer         string
	AccessTokenTTL time.Duration
}

// DefaultJWTConfig returns default JWT configuration.
func DefaultJWTConfig(secret string) JWTConfig {
	return JWTConfig{
		Secret:         secret,
		Issuer:         "officex",
		AccessTokenTTL: 8 * time.Hour,
	}
}

// Claims represents JWT claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"uid"`
	CoUserID string `json:"cuid"`
	Name     string `json:"name"`
	RoleID   int    `json:"role"`
}

// JWTService issues and validates access tokens.
type JWTService struct {
	cfg JWTConfig
}

// NewJWTService creates a JWT service.
func NewJWTService(cfg JWTConfig) *JWTService {
	return &JWTService{cfg: cfg}
}

// Issue creates a signed access token for the actor.
func (s *JWTService) Issue(actor appctx.Actor) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   actor.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenTTL)),
		},
		UserID:   actor.UserID,
		CoUserID: actor.CoUserID,
		Name:     actor.Name,
		RoleID:   actor.RoleID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token, returning the embedded actor.
func (s *JWTService) Validate(tokenString string) (*appctx.Actor, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return &appctx.Actor{
		UserID:   claims.UserID,
		CoUserID: claims.CoUserID,
		Name:     claims.Name,
		RoleID:   claims.RoleID,
	}, nil
}
