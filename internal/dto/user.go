package dto

import (
	"github.com/earnbuddy/backend/internal/core/domain"
)

// RegisterUserRequest is the body of the public sign-in upsert (POST /users).
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	PhotoURL string `json:"photoURL" binding:"omitempty,url"`
	Role     string `json:"role" binding:"omitempty,platformrole"`
}

// ListUsersParams are the query parameters accepted by GET /users.
type ListUsersParams struct {
	Role string `form:"role" binding:"omitempty,platformrole"`
}

// UpdateUserParams are the query parameters accepted by PATCH /users/:id.
// Exactly one of role/coins is expected per request.
type UpdateUserParams struct {
	Role  *string `form:"role" binding:"omitempty,platformrole"`
	Coins *int64  `form:"coins" binding:"omitempty,gte=0"`
}

// UserResponse is the API representation of a user.
type UserResponse struct {
	UserID   string `json:"userID"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL,omitempty"`
	Role     string `json:"role"`
	Coins    int64  `json:"coins"`
}

// ToUserResponse maps a domain user to its API representation.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Name:     u.Name,
		Email:    u.Email,
		PhotoURL: u.PhotoURL,
		Role:     string(u.Role),
		Coins:    u.Coins,
	}
}

// ToUserResponses maps a slice of domain users.
func ToUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}

// RegisterUserResponse reports the outcome of the sign-in upsert. Inserted is
// false when the email already existed and the stored record was returned
// unchanged.
type RegisterUserResponse struct {
	User     UserResponse `json:"user"`
	Inserted bool         `json:"inserted"`
}
