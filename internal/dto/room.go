package dto

import (
	"github.com/shopspring/decimal"

	"github.com/hvhai/hotel-booking-speckit/internal/domain"
)

// RoomResponse represents a room in API responses
type RoomResponse struct {
	ID            string          `json:"id"`
	RoomNumber    string          `json:"room_number"`
	Type          string          `json:"type"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
}

// RoomFromDomain converts a domain Room to a RoomResponse
func RoomFromDomain(r *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:            r.ID,
		RoomNumber:    r.RoomNumber,
		Type:          r.Type,
		PricePerNight: r.PricePerNight,
	}
}

// RoomsFromDomain converts a slice of domain Rooms to RoomResponses
func RoomsFromDomain(rooms []*domain.Room) []*RoomResponse {
	out := make([]*RoomResponse, len(rooms))
	for i, r := range rooms {
		out[i] = RoomFromDomain(r)
	}
	return out
}
