package dto

import (
	"github.com/mnjscf/team_ops_app/internal/core/domain"
)

// UserResponse is the outward representation of a roster user. The password
// never leaves the process.
type UserResponse struct {
	UserID   string `json:"userID"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Category string `json:"category"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(u domain.User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Name:     u.Name,
		Role:     string(u.Role),
		Category: string(u.Category),
	}
}

// ListUsersResponse wraps the roster listing.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse DTO.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i, u := range users {
		userResponses[i] = ToUserResponse(u)
	}
	return ListUsersResponse{Users: userResponses}
}
