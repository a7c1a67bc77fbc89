package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/hvhai/hotel-booking-speckit/internal/domain"
	"github.com/hvhai/hotel-booking-speckit/internal/dto"
	"github.com/hvhai/hotel-booking-speckit/internal/repository"
	"github.com/hvhai/hotel-booking-speckit/pkg/logger"
	"github.com/hvhai/hotel-booking-speckit/pkg/telemetry"
)

// UserService handles registration, authentication and membership management
type UserService interface {
	// Register creates a new user with a bcrypt-hashed password
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)

	// Authenticate verifies credentials and issues a signed access token
	Authenticate(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)

	// GetUser returns the user by ID
	GetUser(ctx context.Context, id string) (*dto.UserResponse, error)

	// UpdateMembershipLevel changes a user's membership tier
	UpdateMembershipLevel(ctx context.Context, id string, level domain.MembershipLevel) (*dto.UserResponse, error)
}

// JWTConfig holds token issuing settings
type JWTConfig struct {
	Secret         string
	AccessTokenTTL time.Duration
	Issuer         string
}

type userService struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, jwtCfg JWTConfig) UserService {
	if jwtCfg.AccessTokenTTL <= 0 {
		jwtCfg.AccessTokenTTL = 15 * time.Minute
	}
	return &userService{userRepo: userRepo, jwtCfg: jwtCfg}
}

func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.user.register")
	defer span.End()

	span.SetAttributes(attribute.String("user.username", req.Username))

	taken, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "username check failed")
		return nil, err
	}
	if taken {
		span.SetStatus(codes.Error, "username taken")
		return nil, domain.ErrUsernameTaken
	}

	taken, err = s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "email check failed")
		return nil, err
	}
	if taken {
		span.SetStatus(codes.Error, "email taken")
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "password hash failed")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	level := domain.MembershipClassic
	if req.MembershipLevel != "" {
		level = domain.MembershipLevel(req.MembershipLevel)
		if !level.IsValid() {
			level = domain.MembershipClassic
		}
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:              uuid.New().String(),
		Username:        req.Username,
		Email:           req.Email,
		PasswordHash:    string(hash),
		MembershipLevel: level,
		Role:            domain.RoleUser,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "user create failed")
		return nil, err
	}

	logger.Get().Info("user registered",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
	)

	span.SetStatus(codes.Ok, "user registered")
	return dto.UserFromDomain(user), nil
}

func (s *userService) Authenticate(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.user.authenticate")
	defer span.End()

	span.SetAttributes(attribute.String("user.username", req.Username))

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if domain.IsNotFoundError(err) {
			span.SetStatus(codes.Error, "unknown username")
			return nil, domain.ErrInvalidCredentials
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "user lookup failed")
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		span.SetStatus(codes.Error, "password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     string(user.Role),
		"iss":      s.jwtCfg.Issuer,
		"iat":      now.Unix(),
		"exp":      now.Add(s.jwtCfg.AccessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "token signing failed")
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	span.SetStatus(codes.Ok, "authenticated")
	return &dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwtCfg.AccessTokenTTL.Seconds()),
	}, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.user.get")
	defer span.End()

	span.SetAttributes(attribute.String("user.id", id))

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "user lookup failed")
		return nil, err
	}

	span.SetStatus(codes.Ok, "user fetched")
	return dto.UserFromDomain(user), nil
}

func (s *userService) UpdateMembershipLevel(ctx context.Context, id string, level domain.MembershipLevel) (*dto.UserResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.user.update_membership")
	defer span.End()

	span.SetAttributes(
		attribute.String("user.id", id),
		attribute.String("membership.level", level.String()),
	)

	if !level.IsValid() {
		span.SetStatus(codes.Error, "invalid membership level")
		return nil, domain.ErrInvalidMembershipLevel
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "user lookup failed")
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.userRepo.UpdateMembershipLevel(ctx, user.ID, level, now); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "membership update failed")
		return nil, err
	}

	user.MembershipLevel = level
	user.UpdatedAt = now

	logger.Get().Info("membership level updated",
		zap.String("user_id", user.ID),
		zap.String("level", level.String()),
	)

	span.SetStatus(codes.Ok, "membership updated")
	return dto.UserFromDomain(user), nil
}
