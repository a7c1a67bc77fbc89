package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Refund bracket messages, keyed to the hours-before-check-in windows.
const (
	RefundMessageFull = "Full refund (cancelled more than 48h before check-in)"
	RefundMessageHalf = "50% refund (cancelled 24-48h before check-in)"
	RefundMessageNone = "No refund (cancelled less than 24h before check-in)"
)

// RefundQuote is the outcome of pricing a cancellation. RefundAmount plus
// PenaltyAmount always equals the booking's final amount.
type RefundQuote struct {
	BookingID     string
	RefundAmount  decimal.Decimal
	PenaltyAmount decimal.Decimal
	Message       string
}

// QuoteRefund computes the refund/penalty split for cancelling the booking at
// the instant now. The hour count is the whole-hour truncation of the actual
// duration until check-in (wall-clock hours, not calendar days):
//
//	> 48h      full refund
//	24h..48h   50% refund (both boundaries inclusive)
//	0h..<24h   no refund
//	< 0h       ErrPastCheckIn
//
// Callers must capture now once and pass the same instant through the whole
// operation so the bracket chosen matches the artifacts persisted.
func QuoteRefund(b *Booking, now time.Time) (*RefundQuote, error) {
	hoursBeforeCheckIn := int64(b.CheckIn.Sub(now) / time.Hour)

	var refund, penalty decimal.Decimal
	var message string

	switch {
	case hoursBeforeCheckIn > 48:
		refund = b.FinalAmount
		penalty = decimal.Zero
		message = RefundMessageFull
	case hoursBeforeCheckIn >= 24:
		refund = b.FinalAmount.Mul(decimal.NewFromFloat(0.5)).Round(2)
		penalty = b.FinalAmount.Sub(refund)
		message = RefundMessageHalf
	case hoursBeforeCheckIn >= 0:
		refund = decimal.Zero
		penalty = b.FinalAmount
		message = RefundMessageNone
	default:
		return nil, ErrPastCheckIn
	}

	return &RefundQuote{
		BookingID:     b.ID,
		RefundAmount:  refund,
		PenaltyAmount: penalty,
		Message:       message,
	}, nil
}

// RefundStatus tracks the outcome of dispatching a refund to the payment
// processor.
type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "PENDING"
	RefundStatusCompleted RefundStatus = "COMPLETED"
	RefundStatusFailed    RefundStatus = "FAILED"
)

// Cancellation is the stored record of a cancelled booking's refund outcome.
type Cancellation struct {
	ID            string
	BookingID     string
	CancelledAt   time.Time
	RefundAmount  decimal.Decimal
	PenaltyAmount decimal.Decimal
	RefundStatus  RefundStatus
}
