package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/hvhai/hotel-booking-speckit/internal/domain"
	"github.com/hvhai/hotel-booking-speckit/internal/repository"
	"github.com/hvhai/hotel-booking-speckit/pkg/logger"
)

type seedUser struct {
	username string
	email    string
	level    domain.MembershipLevel
	role     domain.Role
}

type seedRoom struct {
	number string
	typ    string
	price  string
}

var seedUsers = []seedUser{
	{username: "user1", email: "user1@example.com", level: domain.MembershipClassic, role: domain.RoleUser},
	{username: "user2", email: "user2@example.com", level: domain.MembershipClassic, role: domain.RoleUser},
	{username: "admin", email: "admin@example.com", level: domain.MembershipDiamond, role: domain.RoleAdmin},
}

var seedRooms = []seedRoom{
	{number: "101", typ: "Single", price: "100.00"},
	{number: "102", typ: "Double", price: "150.00"},
	{number: "103", typ: "Suite", price: "250.00"},
	{number: "104", typ: "Deluxe", price: "200.00"},
	{number: "105", typ: "Family", price: "180.00"},
}

// Seed inserts the demo users and rooms if they do not already exist. Safe to
// run on every startup.
func Seed(ctx context.Context, userRepo repository.UserRepository, roomRepo repository.RoomRepository, defaultPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	now := time.Now().UTC()

	for _, su := range seedUsers {
		exists, err := userRepo.ExistsByUsername(ctx, su.username)
		if err != nil {
			return fmt.Errorf("seed user check failed for %s: %w", su.username, err)
		}
		if exists {
			continue
		}

		user := &domain.User{
			ID:              uuid.New().String(),
			Username:        su.username,
			Email:           su.email,
			PasswordHash:    string(hash),
			MembershipLevel: su.level,
			Role:            su.role,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("seed user create failed for %s: %w", su.username, err)
		}
		logger.Get().Info("seeded user",
			zap.String("username", su.username),
			zap.String("membership_level", su.level.String()),
		)
	}

	for _, sr := range seedRooms {
		exists, err := roomRepo.ExistsByRoomNumber(ctx, sr.number)
		if err != nil {
			return fmt.Errorf("seed room check failed for %s: %w", sr.number, err)
		}
		if exists {
			continue
		}

		price, err := decimal.NewFromString(sr.price)
		if err != nil {
			return fmt.Errorf("invalid seed price for room %s: %w", sr.number, err)
		}

		room := &domain.Room{
			ID:            uuid.New().String(),
			RoomNumber:    sr.number,
			Type:          sr.typ,
			PricePerNight: price,
		}
		if err := roomRepo.Create(ctx, room); err != nil {
			return fmt.Errorf("seed room create failed for %s: %w", sr.number, err)
		}
		logger.Get().Info("seeded room",
			zap.String("room_number", sr.number),
			zap.String("room_type", sr.typ),
		)
	}

	return nil
}
