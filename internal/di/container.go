package di

import (
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/hvhai/hotel-booking-speckit/internal/handler"
	"github.com/hvhai/hotel-booking-speckit/internal/repository"
	"github.com/hvhai/hotel-booking-speckit/internal/service"
	"github.com/hvhai/hotel-booking-speckit/pkg/config"
)

// Container wires repositories, services and handlers together
type Container struct {
	Config *config.Config

	UserRepo         repository.UserRepository
	RoomRepo         repository.RoomRepository
	BookingRepo      repository.BookingRepository
	CancellationRepo repository.CancellationRepository

	UserService    service.UserService
	RoomService    service.RoomService
	BookingService service.BookingService

	AuthHandler    *handler.AuthHandler
	RoomHandler    *handler.RoomHandler
	BookingHandler *handler.BookingHandler
	AdminHandler   *handler.AdminHandler
	HealthHandler  *handler.HealthHandler
}

// NewContainer builds the dependency graph. redisClient and dispatcher may be
// nil; the container falls back to a no-op cache and log-only dispatch.
func NewContainer(
	cfg *config.Config,
	pool *pgxpool.Pool,
	redisClient *goredis.Client,
	dispatcher service.RefundDispatcher,
	db handler.Pinger,
) *Container {
	userRepo := repository.NewPostgresUserRepository(pool)
	roomRepo := repository.NewPostgresRoomRepository(pool)
	bookingRepo := repository.NewPostgresBookingRepository(pool)
	cancellationRepo := repository.NewPostgresCancellationRepository(pool)

	var cache service.RoomCache = &service.NoOpRoomCache{}
	if redisClient != nil && cfg.Cache.Enabled {
		cache = service.NewRedisRoomCache(redisClient, cfg.Cache.RoomTTL)
	}

	if dispatcher == nil {
		dispatcher = service.NewLogRefundDispatcher()
	}

	userService := service.NewUserService(userRepo, service.JWTConfig{
		Secret:         cfg.JWT.Secret,
		AccessTokenTTL: cfg.JWT.AccessTokenTTL,
		Issuer:         cfg.JWT.Issuer,
	})
	roomService := service.NewRoomService(roomRepo, bookingRepo, cache)
	bookingService := service.NewBookingService(bookingRepo, roomRepo, userRepo, cancellationRepo, dispatcher)

	return &Container{
		Config: cfg,

		UserRepo:         userRepo,
		RoomRepo:         roomRepo,
		BookingRepo:      bookingRepo,
		CancellationRepo: cancellationRepo,

		UserService:    userService,
		RoomService:    roomService,
		BookingService: bookingService,

		AuthHandler:    handler.NewAuthHandler(userService),
		RoomHandler:    handler.NewRoomHandler(roomService),
		BookingHandler: handler.NewBookingHandler(bookingService),
		AdminHandler:   handler.NewAdminHandler(userService),
		HealthHandler:  handler.NewHealthHandler(db),
	}
}
