package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hvhai/hotel-booking-speckit/internal/domain"
)

// CreateBookingRequest represents a request to book a room
type CreateBookingRequest struct {
	RoomID   string    `json:"room_id" binding:"required"`
	CheckIn  time.Time `json:"check_in" binding:"required"`
	CheckOut time.Time `json:"check_out" binding:"required"`
}

// BookingResponse represents a booking in API responses. CheckIn/CheckOut
// echo the instants from the original request, not the truncated values used
// for night counting.
type BookingResponse struct {
	BookingID       string          `json:"booking_id"`
	UserID          string          `json:"user_id"`
	RoomID          string          `json:"room_id"`
	CheckIn         time.Time       `json:"check_in"`
	CheckOut        time.Time       `json:"check_out"`
	MembershipLevel string          `json:"membership_level"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	FinalAmount     decimal.Decimal `json:"final_amount"`
	Status          string          `json:"status"`
}

// CancellationResponse represents the refund/penalty outcome of a
// cancellation or a refund preview
type CancellationResponse struct {
	BookingID     string          `json:"booking_id"`
	RefundAmount  decimal.Decimal `json:"refund_amount"`
	PenaltyAmount decimal.Decimal `json:"penalty_amount"`
	Message       string          `json:"message"`
}

// BookingFromDomain converts a domain Booking to a BookingResponse
func BookingFromDomain(b *domain.Booking, level domain.MembershipLevel) *BookingResponse {
	return &BookingResponse{
		BookingID:       b.ID,
		UserID:          b.UserID,
		RoomID:          b.RoomID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		MembershipLevel: level.String(),
		TotalAmount:     b.TotalAmount,
		DiscountAmount:  b.DiscountAmount,
		FinalAmount:     b.FinalAmount,
		Status:          b.Status.String(),
	}
}

// CancellationFromQuote converts a domain RefundQuote to a CancellationResponse
func CancellationFromQuote(q *domain.RefundQuote) *CancellationResponse {
	return &CancellationResponse{
		BookingID:     q.BookingID,
		RefundAmount:  q.RefundAmount,
		PenaltyAmount: q.PenaltyAmount,
		Message:       q.Message,
	}
}
