package repository

import (
	"context"

	"github.com/hvhai/hotel-booking-speckit/internal/domain"
)

// RoomRepository defines the room store contract
type RoomRepository interface {
	// Create persists a new room
	Create(ctx context.Context, room *domain.Room) error

	// GetByID retrieves a room by its ID, domain.ErrRoomNotFound if absent
	GetByID(ctx context.Context, id string) (*domain.Room, error)

	// List returns all rooms in storage iteration order
	List(ctx context.Context) ([]*domain.Room, error)

	// ExistsByRoomNumber reports whether a room with the number exists
	ExistsByRoomNumber(ctx context.Context, roomNumber string) (bool, error)
}
