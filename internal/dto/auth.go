package dto

// LoginRequest carries roster credentials. User ID matching is
// case-insensitive; the password comparison is exact.
type LoginRequest struct {
	UserID   string `json:"userID" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the bearer token plus the resolved roster user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SessionResponse wraps the persisted session user for session restore.
type SessionResponse struct {
	User UserResponse `json:"user"`
}
