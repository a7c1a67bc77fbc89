package dto

import (
	"github.com/hvhai/hotel-booking-speckit/internal/domain"
)

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=50"`
	Password        string `json:"password" binding:"required,min=8"`
	Email           string `json:"email" binding:"required,email"`
	MembershipLevel string `json:"membership_level,omitempty"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	MembershipLevel string `json:"membership_level"`
	Role            string `json:"role"`
}

// UpdateMembershipRequest changes a user's membership tier
type UpdateMembershipRequest struct {
	MembershipLevel string `json:"membership_level" binding:"required"`
}

// UserFromDomain converts a domain User to a UserResponse
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		MembershipLevel: u.MembershipLevel.String(),
		Role:            string(u.Role),
	}
}
