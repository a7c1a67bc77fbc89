package domain

import "github.com/shopspring/decimal"

// Room represents a hotel room. Rooms are created at seed/admin time and are
// immutable afterwards; the booking engine only reads them.
type Room struct {
	ID            string
	RoomNumber    string
	Type          string
	PricePerNight decimal.Decimal
}
