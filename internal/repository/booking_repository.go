package repository

import (
	"context"
	"time"

	"github.com/hvhai/hotel-booking-speckit/internal/domain"
)

// BookingRepository defines the booking store contract
type BookingRepository interface {
	// Create persists a new booking
	Create(ctx context.Context, booking *domain.Booking) error

	// GetByID retrieves a booking by ID, domain.ErrBookingNotFound if absent
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// GetByUserID retrieves all bookings owned by the user, in storage
	// iteration order
	GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error)

	// UpdateStatus flips a booking's status and updated_at timestamp
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, updatedAt time.Time) error

	// FindActiveInRange returns ACTIVE bookings whose stay overlaps the
	// half-open range [start, end), for any room
	FindActiveInRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
}

// CancellationRepository stores refund outcomes of cancelled bookings
type CancellationRepository interface {
	// Create persists a cancellation record
	Create(ctx context.Context, c *domain.Cancellation) error
}
