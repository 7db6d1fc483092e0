package dto

import "officex/internal/domain/user"

// UserResponse is the user row shape consumed by the office front end.
// Field naming is part of the contract and stays mixed on purpose.
type UserResponse struct {
	UserID    string `json:"userId"`
	CoUserID  string `json:"co_user_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	RoleID    int    `json:"role_id"`
}

// FromUser maps a domain user to its response shape.
func FromUser(u *user.User) UserResponse {
	return UserResponse{
		UserID:    u.ID.String(),
		CoUserID:  u.CoUserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		RoleID:    int(u.Role),
	}
}

// FromUsers maps a slice of domain users.
func FromUsers(users []user.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = FromUser(&users[i])
	}
	return out
}
