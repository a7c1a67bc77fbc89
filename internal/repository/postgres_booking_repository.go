package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/hvhai/hotel-booking-speckit/internal/domain"
	"github.com/hvhai/hotel-booking-speckit/pkg/telemetry"
)

// PostgresBookingRepository implements BookingRepository using PostgreSQL with pgxpool
type PostgresBookingRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBookingRepository creates a new PostgresBookingRepository
func NewPostgresBookingRepository(pool *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{pool: pool}
}

const bookingColumns = `id, user_id, room_id, check_in, check_out,
	total_amount, discount_amount, final_amount, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	booking := &domain.Booking{}
	var status string
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.TotalAmount,
		&booking.DiscountAmount,
		&booking.FinalAmount,
		&status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	booking.Status = domain.BookingStatus(status)
	return booking, nil
}

// Create persists a new booking
func (r *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.booking.create")
	defer span.End()

	span.SetAttributes(
		attribute.String("booking_id", booking.ID),
		attribute.String("user_id", booking.UserID),
		attribute.String("room_id", booking.RoomID),
	)

	query := `
		INSERT INTO bookings (
			id, user_id, room_id, check_in, check_out,
			total_amount, discount_amount, final_amount, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10, $11
		)
	`

	_, err := r.pool.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.RoomID,
		booking.CheckIn,
		booking.CheckOut,
		booking.TotalAmount,
		booking.DiscountAmount,
		booking.FinalAmount,
		booking.Status.String(),
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to create booking: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// GetByID retrieves a booking by its ID
func (r *PostgresBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.booking.get_by_id")
	defer span.End()

	span.SetAttributes(attribute.String("booking_id", id))

	booking, err := scanBooking(r.pool.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "not found")
			return nil, domain.ErrBookingNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return booking, nil
}

// GetByUserID retrieves all bookings for a user
func (r *PostgresBookingRepository) GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.booking.get_by_user_id")
	defer span.End()

	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.pool.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1`, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	bookings, err := collectBookings(rows)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(bookings)))
	span.SetStatus(codes.Ok, "")
	return bookings, nil
}

// UpdateStatus flips a booking's status and updated_at timestamp
func (r *PostgresBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, updatedAt time.Time) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.booking.update_status")
	defer span.End()

	span.SetAttributes(
		attribute.String("booking_id", id),
		attribute.String("status", status.String()),
	)

	tag, err := r.pool.Exec(ctx,
		`UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3`,
		status.String(), updatedAt, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "not found")
		return domain.ErrBookingNotFound
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// FindActiveInRange returns ACTIVE bookings whose stay [check_in, check_out)
// overlaps the half-open range [start, end). The SQL condition mirrors
// domain.Booking.OverlapsRange.
func (r *PostgresBookingRepository) FindActiveInRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.booking.find_active_in_range")
	defer span.End()

	rows, err := r.pool.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings
		 WHERE status = $1 AND check_in < $2 AND check_out > $3`,
		domain.BookingStatusActive.String(), end, start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to find active bookings: %w", err)
	}
	defer rows.Close()

	bookings, err := collectBookings(rows)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(bookings)))
	span.SetStatus(codes.Ok, "")
	return bookings, nil
}

func collectBookings(rows pgx.Rows) ([]*domain.Booking, error) {
	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}
	return bookings, nil
}

// PostgresCancellationRepository implements CancellationRepository
type PostgresCancellationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCancellationRepository creates a new PostgresCancellationRepository
func NewPostgresCancellationRepository(pool *pgxpool.Pool) *PostgresCancellationRepository {
	return &PostgresCancellationRepository{pool: pool}
}

// Create persists a cancellation record
func (r *PostgresCancellationRepository) Create(ctx context.Context, c *domain.Cancellation) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.cancellation.create")
	defer span.End()

	span.SetAttributes(attribute.String("booking_id", c.BookingID))

	query := `
		INSERT INTO cancellations (id, booking_id, cancelled_at, refund_amount, penalty_amount, refund_status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		c.ID,
		c.BookingID,
		c.CancelledAt,
		c.RefundAmount,
		c.PenaltyAmount,
		string(c.RefundStatus),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to create cancellation: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}
