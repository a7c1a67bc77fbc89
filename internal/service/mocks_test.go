package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hvhai/hotel-booking-speckit/internal/domain"
)

type mockBookingRepo struct {
	CreateFunc            func(ctx context.Context, booking *domain.Booking) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserIDFunc       func(ctx context.Context, userID string) ([]*domain.Booking, error)
	UpdateStatusFunc      func(ctx context.Context, id string, status domain.BookingStatus, updatedAt time.Time) error
	FindActiveInRangeFunc func(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	return m.CreateFunc(ctx, booking)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockBookingRepo) GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return m.GetByUserIDFunc(ctx, userID)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, updatedAt time.Time) error {
	return m.UpdateStatusFunc(ctx, id, status, updatedAt)
}

func (m *mockBookingRepo) FindActiveInRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error) {
	return m.FindActiveInRangeFunc(ctx, start, end)
}

type mockRoomRepo struct {
	CreateFunc             func(ctx context.Context, room *domain.Room) error
	GetByIDFunc            func(ctx context.Context, id string) (*domain.Room, error)
	ListFunc               func(ctx context.Context) ([]*domain.Room, error)
	ExistsByRoomNumberFunc func(ctx context.Context, roomNumber string) (bool, error)
}

func (m *mockRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	return m.CreateFunc(ctx, room)
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockRoomRepo) List(ctx context.Context) ([]*domain.Room, error) {
	return m.ListFunc(ctx)
}

func (m *mockRoomRepo) ExistsByRoomNumber(ctx context.Context, roomNumber string) (bool, error) {
	return m.ExistsByRoomNumberFunc(ctx, roomNumber)
}

type mockUserRepo struct {
	CreateFunc                func(ctx context.Context, user *domain.User) error
	GetByIDFunc               func(ctx context.Context, id string) (*domain.User, error)
	GetByUsernameFunc         func(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsernameFunc      func(ctx context.Context, username string) (bool, error)
	ExistsByEmailFunc         func(ctx context.Context, email string) (bool, error)
	UpdateMembershipLevelFunc func(ctx context.Context, id string, level domain.MembershipLevel, updatedAt time.Time) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.CreateFunc(ctx, user)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.GetByUsernameFunc(ctx, username)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return m.ExistsByUsernameFunc(ctx, username)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.ExistsByEmailFunc(ctx, email)
}

func (m *mockUserRepo) UpdateMembershipLevel(ctx context.Context, id string, level domain.MembershipLevel, updatedAt time.Time) error {
	return m.UpdateMembershipLevelFunc(ctx, id, level, updatedAt)
}

type mockCancellationRepo struct {
	CreateFunc func(ctx context.Context, c *domain.Cancellation) error
}

func (m *mockCancellationRepo) Create(ctx context.Context, c *domain.Cancellation) error {
	return m.CreateFunc(ctx, c)
}

type mockDispatcher struct {
	DispatchFunc func(ctx context.Context, booking *domain.Booking, amount decimal.Decimal) error
	calls        int
}

func (m *mockDispatcher) Dispatch(ctx context.Context, booking *domain.Booking, amount decimal.Decimal) error {
	m.calls++
	if m.DispatchFunc != nil {
		return m.DispatchFunc(ctx, booking, amount)
	}
	return nil
}
