package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "ACTIVE"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// String returns the string representation of the status
func (s BookingStatus) String() string {
	return string(s)
}

// Booking represents a hotel room reservation.
//
// FinalAmount = TotalAmount - DiscountAmount at all times. The status moves
// ACTIVE -> CANCELLED exactly once and never back; once cancelled the
// financial fields are frozen artifacts of the original booking.
type Booking struct {
	ID             string
	UserID         string
	RoomID         string
	CheckIn        time.Time
	CheckOut       time.Time
	TotalAmount    decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalAmount    decimal.Decimal
	Status         BookingStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsActive reports whether the booking still blocks its room
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusActive
}

// IsCancelled reports whether the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// BelongsToUser reports whether the booking is owned by the given user
func (b *Booking) BelongsToUser(userID string) bool {
	return b.UserID == userID
}

// OverlapsRange reports whether the booking's stay [CheckIn, CheckOut)
// conflicts with the half-open range [start, end). Equal boundaries do not
// conflict, so back-to-back stays are allowed.
func (b *Booking) OverlapsRange(start, end time.Time) bool {
	return b.CheckIn.Before(end) && b.CheckOut.After(start)
}

// Nights returns the number of calendar nights between checkIn and checkOut.
// Both instants are truncated to UTC day boundaries before differencing, so a
// checkout one minute into the next calendar day is still one night, and a
// same-day checkout is zero nights.
func Nights(checkIn, checkOut time.Time) int64 {
	in := checkIn.UTC().Truncate(24 * time.Hour)
	out := checkOut.UTC().Truncate(24 * time.Hour)
	return int64(out.Sub(in) / (24 * time.Hour))
}

// StayPrice computes the financial breakdown of a stay: total, discount and
// final amounts for the given nightly price, night count and membership tier.
// Discount multiplication rounds half-up at two decimal places.
func StayPrice(pricePerNight decimal.Decimal, nights int64, level MembershipLevel) (total, discount, final decimal.Decimal) {
	total = pricePerNight.Mul(decimal.NewFromInt(nights))
	discount = total.Mul(level.DiscountRate()).Round(2)
	final = total.Sub(discount)
	return total, discount, final
}

// AvailableRooms filters rooms down to those with no ACTIVE booking whose
// stay overlaps [start, end). Cancelled bookings never block availability.
// activeBookings may contain bookings for any room; they are grouped by room
// here.
func AvailableRooms(rooms []*Room, activeBookings []*Booking, start, end time.Time) []*Room {
	blocked := make(map[string]bool)
	for _, b := range activeBookings {
		if b.IsActive() && b.OverlapsRange(start, end) {
			blocked[b.RoomID] = true
		}
	}

	available := make([]*Room, 0, len(rooms))
	for _, r := range rooms {
		if !blocked[r.ID] {
			available = append(available, r)
		}
	}
	return available
}
