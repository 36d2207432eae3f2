package dto

import (
	"time"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
)

// RegisterRequest represents the API request to create a new user
type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
}

// LoginRequest represents the API request to authenticate
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents a user in API responses. The password hash never
// leaves the server.
type UserResponse struct {
	ID            uint64    `json:"id"`
	FullName      string    `json:"fullName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	AccountNumber string    `json:"accountNumber"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AuthResponse carries a signed token together with the authenticated user
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewUserResponse maps a user entity to its API representation
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		FullName:      user.FullName,
		Email:         user.Email,
		Phone:         user.Phone,
		AccountNumber: user.AccountNumber,
		Role:          string(user.Role),
		CreatedAt:     user.CreatedAt,
	}
}
