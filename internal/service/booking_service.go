package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/hvhai/hotel-booking-speckit/internal/domain"
	"github.com/hvhai/hotel-booking-speckit/internal/dto"
	"github.com/hvhai/hotel-booking-speckit/internal/repository"
	"github.com/hvhai/hotel-booking-speckit/pkg/logger"
	"github.com/hvhai/hotel-booking-speckit/pkg/telemetry"
)

// BookingService handles booking business logic
type BookingService interface {
	// CreateBooking books a room for the user, applying the membership
	// discount to the nightly price
	CreateBooking(ctx context.Context, userID string, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)

	// CancelBooking cancels the user's booking at instant now and dispatches
	// any refund due. Dispatch failure does not undo the cancellation.
	CancelBooking(ctx context.Context, bookingID, userID string, now time.Time) (*dto.CancellationResponse, error)

	// PreviewRefund quotes the refund the booking would yield if cancelled at
	// instant now, without changing any state
	PreviewRefund(ctx context.Context, bookingID string, now time.Time) (*dto.CancellationResponse, error)

	// GetBookingsForUser returns all bookings owned by the user
	GetBookingsForUser(ctx context.Context, userID string) ([]*dto.BookingResponse, error)
}

type bookingService struct {
	bookingRepo      repository.BookingRepository
	roomRepo         repository.RoomRepository
	userRepo         repository.UserRepository
	cancellationRepo repository.CancellationRepository
	dispatcher       RefundDispatcher
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo repository.BookingRepository,
	roomRepo repository.RoomRepository,
	userRepo repository.UserRepository,
	cancellationRepo repository.CancellationRepository,
	dispatcher RefundDispatcher,
) BookingService {
	if dispatcher == nil {
		dispatcher = &NoOpRefundDispatcher{}
	}
	return &bookingService{
		bookingRepo:      bookingRepo,
		roomRepo:         roomRepo,
		userRepo:         userRepo,
		cancellationRepo: cancellationRepo,
		dispatcher:       dispatcher,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.booking.create")
	defer span.End()

	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("room.id", req.RoomID),
	)

	// Room resolution comes first: a missing room reports NotFound even when
	// the date range is also invalid.
	room, err := s.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "room lookup failed")
		return nil, err
	}

	nights := domain.Nights(req.CheckIn, req.CheckOut)
	if nights < 1 {
		span.SetStatus(codes.Error, "invalid stay range")
		return nil, domain.ErrInvalidStayRange
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "user lookup failed")
		return nil, err
	}

	total, discount, final := domain.StayPrice(room.PricePerNight, nights, user.MembershipLevel)

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:             uuid.New().String(),
		UserID:         user.ID,
		RoomID:         room.ID,
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		TotalAmount:    total,
		DiscountAmount: discount,
		FinalAmount:    final,
		Status:         domain.BookingStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "booking create failed")
		return nil, err
	}

	logger.Get().Info("booking created",
		zap.String("booking_id", booking.ID),
		zap.String("user_id", user.ID),
		zap.String("room_id", room.ID),
		zap.Int64("nights", nights),
		zap.String("final_amount", final.StringFixed(2)),
	)

	span.SetStatus(codes.Ok, "booking created")
	return dto.BookingFromDomain(booking, user.MembershipLevel), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID, userID string, now time.Time) (*dto.CancellationResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.booking.cancel")
	defer span.End()

	span.SetAttributes(
		attribute.String("booking.id", bookingID),
		attribute.String("user.id", userID),
	)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "booking lookup failed")
		return nil, err
	}

	if !booking.BelongsToUser(userID) {
		span.SetStatus(codes.Error, "ownership check failed")
		return nil, domain.ErrBookingOwnership
	}

	if booking.IsCancelled() {
		span.SetStatus(codes.Error, "already cancelled")
		return nil, domain.ErrAlreadyCancelled
	}

	quote, err := domain.QuoteRefund(booking, now)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "refund quote failed")
		return nil, err
	}

	// Dispatch precedes the status flip; a dispatch failure is recorded on
	// the cancellation and never blocks it.
	refundStatus := domain.RefundStatusCompleted
	if quote.RefundAmount.IsPositive() {
		if err := s.dispatcher.Dispatch(ctx, booking, quote.RefundAmount); err != nil {
			refundStatus = domain.RefundStatusFailed
			logger.Get().Error("refund dispatch failed",
				zap.String("booking_id", booking.ID),
				zap.String("refund_amount", quote.RefundAmount.StringFixed(2)),
				zap.Error(err),
			)
			span.RecordError(err)
		}
	}

	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.BookingStatusCancelled, now); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "status update failed")
		return nil, err
	}

	cancellation := &domain.Cancellation{
		ID:            uuid.New().String(),
		BookingID:     booking.ID,
		CancelledAt:   now,
		RefundAmount:  quote.RefundAmount,
		PenaltyAmount: quote.PenaltyAmount,
		RefundStatus:  refundStatus,
	}
	if err := s.cancellationRepo.Create(ctx, cancellation); err != nil {
		logger.Get().Error("cancellation record write failed",
			zap.String("booking_id", booking.ID),
			zap.Error(err),
		)
		span.RecordError(err)
	}

	logger.Get().Info("booking cancelled",
		zap.String("booking_id", booking.ID),
		zap.String("refund_amount", quote.RefundAmount.StringFixed(2)),
		zap.String("penalty_amount", quote.PenaltyAmount.StringFixed(2)),
		zap.String("refund_status", string(refundStatus)),
	)

	span.SetStatus(codes.Ok, "booking cancelled")
	return dto.CancellationFromQuote(quote), nil
}

func (s *bookingService) PreviewRefund(ctx context.Context, bookingID string, now time.Time) (*dto.CancellationResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.booking.preview_refund")
	defer span.End()

	span.SetAttributes(attribute.String("booking.id", bookingID))

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "booking lookup failed")
		return nil, err
	}

	if booking.IsCancelled() {
		span.SetStatus(codes.Error, "already cancelled")
		return nil, domain.ErrAlreadyCancelled
	}

	quote, err := domain.QuoteRefund(booking, now)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "refund quote failed")
		return nil, err
	}

	span.SetStatus(codes.Ok, "refund previewed")
	return dto.CancellationFromQuote(quote), nil
}

func (s *bookingService) GetBookingsForUser(ctx context.Context, userID string) ([]*dto.BookingResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.booking.list_for_user")
	defer span.End()

	span.SetAttributes(attribute.String("user.id", userID))

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "user lookup failed")
		return nil, err
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "booking list failed")
		return nil, err
	}

	responses := make([]*dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, dto.BookingFromDomain(b, user.MembershipLevel))
	}

	span.SetAttributes(attribute.Int("bookings.count", len(responses)))
	span.SetStatus(codes.Ok, "bookings listed")
	return responses, nil
}
