package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/hvhai/hotel-booking-speckit/internal/domain"
	"github.com/hvhai/hotel-booking-speckit/internal/dto"
	"github.com/hvhai/hotel-booking-speckit/internal/repository"
	"github.com/hvhai/hotel-booking-speckit/pkg/logger"
	"github.com/hvhai/hotel-booking-speckit/pkg/telemetry"
)

// RoomService handles room listing and availability
type RoomService interface {
	// GetAllRooms returns every room
	GetAllRooms(ctx context.Context) ([]*dto.RoomResponse, error)

	// GetAvailableRooms returns rooms free over the half-open range
	// [from, to). Both dates are UTC midnights; from must not be before the
	// current day and to must not be before from.
	GetAvailableRooms(ctx context.Context, from, to, now time.Time) ([]*dto.RoomResponse, error)
}

type roomService struct {
	roomRepo    repository.RoomRepository
	bookingRepo repository.BookingRepository
	cache       RoomCache
}

// NewRoomService creates a new room service
func NewRoomService(roomRepo repository.RoomRepository, bookingRepo repository.BookingRepository, cache RoomCache) RoomService {
	if cache == nil {
		cache = &NoOpRoomCache{}
	}
	return &roomService{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
	}
}

// listRooms reads the room list through the cache. Cache failures degrade to
// the repository.
func (s *roomService) listRooms(ctx context.Context) ([]*domain.Room, error) {
	rooms, err := s.cache.Get(ctx)
	if err != nil {
		logger.Get().Warn("room cache read failed", zap.Error(err))
	}
	if rooms != nil {
		return rooms, nil
	}

	rooms, err = s.roomRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, rooms); err != nil {
		logger.Get().Warn("room cache write failed", zap.Error(err))
	}
	return rooms, nil
}

func (s *roomService) GetAllRooms(ctx context.Context) ([]*dto.RoomResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.room.list")
	defer span.End()

	rooms, err := s.listRooms(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "room list failed")
		return nil, err
	}

	span.SetAttributes(attribute.Int("rooms.count", len(rooms)))
	span.SetStatus(codes.Ok, "rooms listed")
	return dto.RoomsFromDomain(rooms), nil
}

func (s *roomService) GetAvailableRooms(ctx context.Context, from, to, now time.Time) ([]*dto.RoomResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.room.availability")
	defer span.End()

	span.SetAttributes(
		attribute.String("range.from", from.Format("2006-01-02")),
		attribute.String("range.to", to.Format("2006-01-02")),
	)

	if to.Before(from) {
		span.SetStatus(codes.Error, "invalid date range")
		return nil, domain.ErrInvalidDateRange
	}

	today := now.UTC().Truncate(24 * time.Hour)
	if from.Before(today) {
		span.SetStatus(codes.Error, "from date in past")
		return nil, domain.ErrDateInPast
	}

	rooms, err := s.listRooms(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "room list failed")
		return nil, err
	}

	active, err := s.bookingRepo.FindActiveInRange(ctx, from, to)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "booking range query failed")
		return nil, err
	}

	available := domain.AvailableRooms(rooms, active, from, to)

	span.SetAttributes(attribute.Int("rooms.available", len(available)))
	span.SetStatus(codes.Ok, "availability computed")
	return dto.RoomsFromDomain(available), nil
}
