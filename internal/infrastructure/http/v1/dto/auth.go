package dto

import "officex/internal/domain/user"

// LoginRequest carries credentials for POST /auth/login.
type LoginRequest struct {
	CoUserID string `json:"co_user_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the access token plus the authenticated user row.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewLoginResponse builds the login response.
func NewLoginResponse(token string, u *user.User) LoginResponse {
	return LoginResponse{Token: token, User: FromUser(u)}
}
