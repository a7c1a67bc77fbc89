package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvhai/hotel-booking-speckit/internal/domain"
	"github.com/hvhai/hotel-booking-speckit/internal/dto"
)

func goldUser() *domain.User {
	return &domain.User{
		ID:              "u-1",
		Username:        "user1",
		MembershipLevel: domain.MembershipGold,
		Role:            domain.RoleUser,
	}
}

func standardRoom() *domain.Room {
	return &domain.Room{
		ID:            "r-1",
		RoomNumber:    "101",
		Type:          "Single",
		PricePerNight: decimal.RequireFromString("100.00"),
	}
}

func TestCreateBooking(t *testing.T) {
	checkIn := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 12, 11, 0, 0, 0, time.UTC)

	var created *domain.Booking
	bookingRepo := &mockBookingRepo{
		CreateFunc: func(_ context.Context, b *domain.Booking) error {
			created = b
			return nil
		},
	}
	roomRepo := &mockRoomRepo{
		GetByIDFunc: func(_ context.Context, id string) (*domain.Room, error) {
			require.Equal(t, "r-1", id)
			return standardRoom(), nil
		},
	}
	userRepo := &mockUserRepo{
		GetByIDFunc: func(_ context.Context, id string) (*domain.User, error) {
			require.Equal(t, "u-1", id)
			return goldUser(), nil
		},
	}

	svc := NewBookingService(bookingRepo, roomRepo, userRepo, &mockCancellationRepo{}, &NoOpRefundDispatcher{})

	resp, err := svc.CreateBooking(context.Background(), "u-1", &dto.CreateBookingRequest{
		RoomID:   "r-1",
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	// 2 nights at 100.00 with the gold 10% discount.
	assert.Equal(t, "200.00", resp.TotalAmount.StringFixed(2))
	assert.Equal(t, "20.00", resp.DiscountAmount.StringFixed(2))
	assert.Equal(t, "180.00", resp.FinalAmount.StringFixed(2))
	assert.Equal(t, "GOLD", resp.MembershipLevel)
	assert.Equal(t, "ACTIVE", resp.Status)
	assert.Equal(t, checkIn, resp.CheckIn)
	assert.Equal(t, checkOut, resp.CheckOut)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.BookingStatusActive, created.Status)
	assert.True(t, created.FinalAmount.Equal(decimal.RequireFromString("180.00")))
}

func TestCreateBooking_InvalidStayRange(t *testing.T) {
	roomRepo := &mockRoomRepo{
		GetByIDFunc: func(context.Context, string) (*domain.Room, error) {
			return standardRoom(), nil
		},
	}
	svc := NewBookingService(&mockBookingRepo{}, roomRepo, &mockUserRepo{}, &mockCancellationRepo{}, nil)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
	}{
		{
			name:     "same day checkout",
			checkIn:  time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 9, 10, 21, 0, 0, 0, time.UTC),
		},
		{
			name:     "checkout before checkin",
			checkIn:  time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBooking(context.Background(), "u-1", &dto.CreateBookingRequest{
				RoomID:   "r-1",
				CheckIn:  tt.checkIn,
				CheckOut: tt.checkOut,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidStayRange)
		})
	}
}

func TestCreateBooking_RoomNotFound(t *testing.T) {
	roomRepo := &mockRoomRepo{
		GetByIDFunc: func(context.Context, string) (*domain.Room, error) {
			return nil, domain.ErrRoomNotFound
		},
	}
	svc := NewBookingService(&mockBookingRepo{}, roomRepo, &mockUserRepo{}, &mockCancellationRepo{}, nil)

	_, err := svc.CreateBooking(context.Background(), "u-1", &dto.CreateBookingRequest{
		RoomID:   "missing",
		CheckIn:  time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 9, 12, 11, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestCreateBooking_RoomNotFoundWinsOverInvalidRange(t *testing.T) {
	roomRepo := &mockRoomRepo{
		GetByIDFunc: func(context.Context, string) (*domain.Room, error) {
			return nil, domain.ErrRoomNotFound
		},
	}
	svc := NewBookingService(&mockBookingRepo{}, roomRepo, &mockUserRepo{}, &mockCancellationRepo{}, nil)

	// Same-day stay is invalid too, but the room is resolved first.
	_, err := svc.CreateBooking(context.Background(), "u-1", &dto.CreateBookingRequest{
		RoomID:   "missing",
		CheckIn:  time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 9, 10, 21, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func activeBooking(checkIn time.Time) *domain.Booking {
	return &domain.Booking{
		ID:             "b-1",
		UserID:         "u-1",
		RoomID:         "r-1",
		CheckIn:        checkIn,
		CheckOut:       checkIn.Add(48 * time.Hour),
		TotalAmount:    decimal.RequireFromString("200.00"),
		DiscountAmount: decimal.RequireFromString("20.00"),
		FinalAmount:    decimal.RequireFromString("180.00"),
		Status:         domain.BookingStatusActive,
	}
}

func TestCancelBooking_FullRefund(t *testing.T) {
	checkIn := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)
	now := checkIn.Add(-72 * time.Hour)

	var statusUpdated bool
	var savedCancellation *domain.Cancellation
	bookingRepo := &mockBookingRepo{
		GetByIDFunc: func(_ context.Context, id string) (*domain.Booking, error) {
			require.Equal(t, "b-1", id)
			return activeBooking(checkIn), nil
		},
		UpdateStatusFunc: func(_ context.Context, id string, status domain.BookingStatus, updatedAt time.Time) error {
			statusUpdated = true
			assert.Equal(t, domain.BookingStatusCancelled, status)
			assert.Equal(t, now, updatedAt)
			return nil
		},
	}
	cancellationRepo := &mockCancellationRepo{
		CreateFunc: func(_ context.Context, c *domain.Cancellation) error {
			savedCancellation = c
			return nil
		},
	}
	dispatcher := &mockDispatcher{}

	svc := NewBookingService(bookingRepo, &mockRoomRepo{}, &mockUserRepo{}, cancellationRepo, dispatcher)

	resp, err := svc.CancelBooking(context.Background(), "b-1", "u-1", now)
	require.NoError(t, err)

	assert.Equal(t, "180.00", resp.RefundAmount.StringFixed(2))
	assert.Equal(t, "0.00", resp.PenaltyAmount.StringFixed(2))
	assert.Equal(t, domain.RefundMessageFull, resp.Message)

	assert.True(t, statusUpdated)
	assert.Equal(t, 1, dispatcher.calls)

	require.NotNil(t, savedCancellation)
	assert.Equal(t, "b-1", savedCancellation.BookingID)
	assert.Equal(t, domain.RefundStatusCompleted, savedCancellation.RefundStatus)
	assert.Equal(t, now, savedCancellation.CancelledAt)
}

func TestCancelBooking_NoRefundSkipsDispatch(t *testing.T) {
	checkIn := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)
	now := checkIn.Add(-10 * time.Hour)

	bookingRepo := &mockBookingRepo{
		GetByIDFunc: func(context.Context, string) (*domain.Booking, error) {
			return activeBooking(checkIn), nil
		},
		UpdateStatusFunc: func(context.Context, string, domain.BookingStatus, time.Time) error {
			return nil
		},
	}
	cancellationRepo := &mockCancellationRepo{
		CreateFunc: func(context.Context, *domain.Cancellation) error { return nil },
	}
	dispatcher := &mockDispatcher{}

	svc := NewBookingService(bookingRepo, &mockRoomRepo{}, &mockUserRepo{}, cancellationRepo, dispatcher)

	resp, err := svc.CancelBooking(context.Background(), "b-1", "u-1", now)
	require.NoError(t, err)

	assert.Equal(t, "0.00", resp.RefundAmount.StringFixed(2))
	assert.Equal(t, "180.00", resp.PenaltyAmount.StringFixed(2))
	assert.Equal(t, domain.RefundMessageNone, resp.Message)
	assert.Equal(t, 0, dispatcher.calls)
}

func TestCancelBooking_DispatchFailureDoesNotUndoCancellation(t *testing.T) {
	checkIn := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)
	now := checkIn.Add(-72 * time.Hour)

	var savedCancellation *domain.Cancellation
	bookingRepo := &mockBookingRepo{
		GetByIDFunc: func(context.Context, string) (*domain.Booking, error) {
			return activeBooking(checkIn), nil
		},
		UpdateStatusFunc: func(context.Context, string, domain.BookingStatus, time.Time) error {
			return nil
		},
	}
	cancellationRepo := &mockCancellationRepo{
		CreateFunc: func(_ context.Context, c *domain.Cancellation) error {
			savedCancellation = c
			return nil
		},
	}
	dispatcher := &mockDispatcher{
		DispatchFunc: func(context.Context, *domain.Booking, decimal.Decimal) error {
			return errors.New("payment processor unreachable")
		},
	}

	svc := NewBookingService(bookingRepo, &mockRoomRepo{}, &mockUserRepo{}, cancellationRepo, dispatcher)

	resp, err := svc.CancelBooking(context.Background(), "b-1", "u-1", now)
	require.NoError(t, err, "dispatch failure must not fail the cancellation")

	assert.Equal(t, "180.00", resp.RefundAmount.StringFixed(2))
	require.NotNil(t, savedCancellation)
	assert.Equal(t, domain.RefundStatusFailed, savedCancellation.RefundStatus)
}

func TestCancelBooking_DispatchPrecedesStatusFlip(t *testing.T) {
	checkIn := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)
	now := checkIn.Add(-72 * time.Hour)

	bookingRepo := &mockBookingRepo{
		GetByIDFunc: func(context.Context, string) (*domain.Booking, error) {
			return activeBooking(checkIn), nil
		},
		UpdateStatusFunc: func(context.Context, string, domain.BookingStatus, time.Time) error {
			return errors.New("database down")
		},
	}
	cancellationRepo := &mockCancellationRepo{
		CreateFunc: func(context.Context, *domain.Cancellation) error {
			t.Fatal("no cancellation record when the status flip fails")
			return nil
		},
	}
	dispatcher := &mockDispatcher{}

	svc := NewBookingService(bookingRepo, &mockRoomRepo{}, &mockUserRepo{}, cancellationRepo, dispatcher)

	_, err := svc.CancelBooking(context.Background(), "b-1", "u-1", now)
	require.Error(t, err)
	assert.Equal(t, 1, dispatcher.calls, "refund is dispatched before the status is persisted")
}

func TestCancelBooking_Ownership(t *testing.T) {
	checkIn := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)

	bookingRepo := &mockBookingRepo{
		GetByIDFunc: func(context.Context, string) (*domain.Booking, error) {
			return activeBooking(checkIn), nil
		},
	}
	svc := NewBookingService(bookingRepo, &mockRoomRepo{}, &mockUserRepo{}, &mockCancellationRepo{}, nil)

	_, err := svc.CancelBooking(context.Background(), "b-1", "someone-else", checkIn.Add(-72*time.Hour))
	assert.ErrorIs(t, err, domain.ErrBookingOwnership)
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	checkIn := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)

	bookingRepo := &mockBookingRepo{
		GetByIDFunc: func(context.Context, string) (*domain.Booking, error) {
			b := activeBooking(checkIn)
			b.Status = domain.BookingStatusCancelled
			return b, nil
		},
	}
	svc := NewBookingService(bookingRepo, &mockRoomRepo{}, &mockUserRepo{}, &mockCancellationRepo{}, nil)

	_, err := svc.CancelBooking(context.Background(), "b-1", "u-1", checkIn.Add(-72*time.Hour))
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestCancelBooking_PastCheckInLeavesBookingActive(t *testing.T) {
	checkIn := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)

	bookingRepo := &mockBookingRepo{
		GetByIDFunc: func(context.Context, string) (*domain.Booking, error) {
			return activeBooking(checkIn), nil
		},
		UpdateStatusFunc: func(context.Context, string, domain.BookingStatus, time.Time) error {
			t.Fatal("status must not change when the quote fails")
			return nil
		},
	}
	svc := NewBookingService(bookingRepo, &mockRoomRepo{}, &mockUserRepo{}, &mockCancellationRepo{}, nil)

	_, err := svc.CancelBooking(context.Background(), "b-1", "u-1", checkIn.Add(2*time.Hour))
	assert.ErrorIs(t, err, domain.ErrPastCheckIn)
}

func TestPreviewRefund_DoesNotMutate(t *testing.T) {
	checkIn := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)
	now := checkIn.Add(-30 * time.Hour)

	bookingRepo := &mockBookingRepo{
		GetByIDFunc: func(context.Context, string) (*domain.Booking, error) {
			return activeBooking(checkIn), nil
		},
		UpdateStatusFunc: func(context.Context, string, domain.BookingStatus, time.Time) error {
			t.Fatal("preview must not update status")
			return nil
		},
	}
	dispatcher := &mockDispatcher{}
	svc := NewBookingService(bookingRepo, &mockRoomRepo{}, &mockUserRepo{}, &mockCancellationRepo{}, dispatcher)

	first, err := svc.PreviewRefund(context.Background(), "b-1", now)
	require.NoError(t, err)
	second, err := svc.PreviewRefund(context.Background(), "b-1", now)
	require.NoError(t, err)

	assert.Equal(t, "90.00", first.RefundAmount.StringFixed(2))
	assert.Equal(t, "90.00", first.PenaltyAmount.StringFixed(2))
	assert.Equal(t, domain.RefundMessageHalf, first.Message)
	assert.Equal(t, first, second, "preview is idempotent for the same instant")
	assert.Equal(t, 0, dispatcher.calls)
}

func TestPreviewRefund_AlreadyCancelled(t *testing.T) {
	checkIn := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)

	bookingRepo := &mockBookingRepo{
		GetByIDFunc: func(context.Context, string) (*domain.Booking, error) {
			b := activeBooking(checkIn)
			b.Status = domain.BookingStatusCancelled
			return b, nil
		},
	}
	svc := NewBookingService(bookingRepo, &mockRoomRepo{}, &mockUserRepo{}, &mockCancellationRepo{}, nil)

	_, err := svc.PreviewRefund(context.Background(), "b-1", checkIn.Add(-72*time.Hour))
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestGetBookingsForUser(t *testing.T) {
	checkIn := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)

	userRepo := &mockUserRepo{
		GetByIDFunc: func(context.Context, string) (*domain.User, error) {
			return goldUser(), nil
		},
	}
	bookingRepo := &mockBookingRepo{
		GetByUserIDFunc: func(_ context.Context, userID string) ([]*domain.Booking, error) {
			require.Equal(t, "u-1", userID)
			cancelled := activeBooking(checkIn)
			cancelled.ID = "b-2"
			cancelled.Status = domain.BookingStatusCancelled
			return []*domain.Booking{activeBooking(checkIn), cancelled}, nil
		},
	}
	svc := NewBookingService(bookingRepo, &mockRoomRepo{}, userRepo, &mockCancellationRepo{}, nil)

	bookings, err := svc.GetBookingsForUser(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "ACTIVE", bookings[0].Status)
	assert.Equal(t, "CANCELLED", bookings[1].Status)
	assert.Equal(t, "GOLD", bookings[0].MembershipLevel)
}
