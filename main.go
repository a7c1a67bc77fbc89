package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hvhai/hotel-booking-speckit/internal/bootstrap"
	"github.com/hvhai/hotel-booking-speckit/internal/di"
	"github.com/hvhai/hotel-booking-speckit/internal/middleware"
	"github.com/hvhai/hotel-booking-speckit/internal/repository"
	"github.com/hvhai/hotel-booking-speckit/internal/service"
	"github.com/hvhai/hotel-booking-speckit/pkg/config"
	"github.com/hvhai/hotel-booking-speckit/pkg/database"
	"github.com/hvhai/hotel-booking-speckit/pkg/kafka"
	"github.com/hvhai/hotel-booking-speckit/pkg/logger"
	"github.com/hvhai/hotel-booking-speckit/pkg/redis"
	"github.com/hvhai/hotel-booking-speckit/pkg/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&logger.Config{
		Level:       "info",
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync()

	log := logger.Get()
	ctx := context.Background()

	if _, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:       cfg.OTel.Enabled,
		ServiceName:   cfg.OTel.ServiceName,
		Environment:   cfg.App.Environment,
		CollectorAddr: cfg.OTel.CollectorAddr,
	}); err != nil {
		return fmt.Errorf("failed to init telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = telemetry.Shutdown(shutdownCtx)
	}()

	db, err := database.NewPostgres(ctx, &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 30 * time.Minute,
		ConnectTimeout:  10 * time.Second,
		MaxRetries:      3,
		RetryInterval:   2 * time.Second,
		EnableTracing:   cfg.OTel.Enabled,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer db.Close()

	if err := repository.Migrate(ctx, db.Pool()); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	redisClient, err := redis.NewClient(ctx, &redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("redis unavailable, room cache disabled", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	var dispatcher service.RefundDispatcher = service.NewLogRefundDispatcher()
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := kafka.NewProducer(&kafka.ProducerConfig{
			Brokers:       cfg.Kafka.Brokers,
			ClientID:      cfg.Kafka.ClientID,
			MaxRetries:    3,
			RetryInterval: time.Second,
		})
		if err != nil {
			log.Warn("kafka unavailable, refunds logged instead", zap.Error(err))
		} else {
			defer producer.Close()
			dispatcher = service.NewKafkaRefundDispatcher(producer, cfg.Kafka.Topic)
		}
	}

	var cacheClient *goredis.Client
	if redisClient != nil {
		cacheClient = redisClient.Client()
	}

	container := di.NewContainer(cfg, db.Pool(), cacheClient, dispatcher, db)

	if cfg.Seed.Enabled {
		if err := bootstrap.Seed(ctx, container.UserRepo, container.RoomRepo, cfg.Seed.DefaultPassword); err != nil {
			return fmt.Errorf("failed to seed data: %w", err)
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(telemetry.Middleware(cfg.App.Name))
	router.Use(middleware.RequestLogger())

	registerRoutes(router, container)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func registerRoutes(router *gin.Engine, c *di.Container) {
	router.GET("/health", c.HealthHandler.Health)
	router.GET("/ready", c.HealthHandler.Ready)

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.AuthHandler.Register)
		auth.POST("/login", c.AuthHandler.Login)
	}

	v1.GET("/rooms", c.RoomHandler.List)

	authed := v1.Group("")
	authed.Use(middleware.Auth(c.Config.JWT.Secret))
	{
		authed.GET("/users/me", c.AuthHandler.Me)
		authed.POST("/bookings", c.BookingHandler.Create)
		authed.GET("/bookings/my", c.BookingHandler.MyBookings)
		authed.POST("/bookings/:id/cancel", c.BookingHandler.Cancel)
		authed.GET("/bookings/:id/refund-preview", c.BookingHandler.RefundPreview)
	}

	admin := v1.Group("/admin")
	admin.Use(middleware.Auth(c.Config.JWT.Secret), middleware.RequireAdmin())
	{
		admin.PUT("/users/:id/membership", c.AdminHandler.UpdateMembership)
	}
}
