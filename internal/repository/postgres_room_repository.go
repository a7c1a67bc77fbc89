package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/hvhai/hotel-booking-speckit/internal/domain"
	"github.com/hvhai/hotel-booking-speckit/pkg/telemetry"
)

// PostgresRoomRepository implements RoomRepository using PostgreSQL with pgxpool
type PostgresRoomRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRoomRepository creates a new PostgresRoomRepository
func NewPostgresRoomRepository(pool *pgxpool.Pool) *PostgresRoomRepository {
	return &PostgresRoomRepository{pool: pool}
}

// Create persists a new room
func (r *PostgresRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.room.create")
	defer span.End()

	span.SetAttributes(attribute.String("room_number", room.RoomNumber))

	query := `
		INSERT INTO rooms (id, room_number, room_type, price_per_night)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, room.ID, room.RoomNumber, room.Type, room.PricePerNight)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to create room: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// GetByID retrieves a room by its ID
func (r *PostgresRoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.room.get_by_id")
	defer span.End()

	span.SetAttributes(attribute.String("room_id", id))

	query := `
		SELECT id, room_number, room_type, price_per_night
		FROM rooms
		WHERE id = $1
	`

	room := &domain.Room{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.RoomNumber,
		&room.Type,
		&room.PricePerNight,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "not found")
			return nil, domain.ErrRoomNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return room, nil
}

// List returns all rooms
func (r *PostgresRoomRepository) List(ctx context.Context) ([]*domain.Room, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.room.list")
	defer span.End()

	query := `
		SELECT id, room_number, room_type, price_per_night
		FROM rooms
		ORDER BY room_number
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*domain.Room
	for rows.Next() {
		room := &domain.Room{}
		if err := rows.Scan(&room.ID, &room.RoomNumber, &room.Type, &room.PricePerNight); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to read rooms: %w", err)
	}

	span.SetAttributes(attribute.Int("count", len(rooms)))
	span.SetStatus(codes.Ok, "")
	return rooms, nil
}

// ExistsByRoomNumber reports whether a room with the number exists
func (r *PostgresRoomRepository) ExistsByRoomNumber(ctx context.Context, roomNumber string) (bool, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.room.exists_by_number")
	defer span.End()

	span.SetAttributes(attribute.String("room_number", roomNumber))

	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM rooms WHERE room_number = $1)`,
		roomNumber,
	).Scan(&exists)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, fmt.Errorf("failed to check room number: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return exists, nil
}
