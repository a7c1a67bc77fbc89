package repository

import (
	"context"
	"time"

	"github.com/hvhai/hotel-booking-speckit/internal/domain"
)

// UserRepository defines the user store contract
type UserRepository interface {
	// Create persists a new user
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID, domain.ErrUserNotFound if absent
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByUsername retrieves a user by username, domain.ErrUserNotFound if absent
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// ExistsByUsername reports whether a user with the username exists
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail reports whether a user with the email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// UpdateMembershipLevel changes a user's tier
	UpdateMembershipLevel(ctx context.Context, id string, level domain.MembershipLevel, updatedAt time.Time) error
}
