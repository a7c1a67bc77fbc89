package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema holds the DDL applied at startup. NUMERIC(12,2) keeps money
// fixed-point in storage to match the decimal arithmetic in the domain.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		membership_level VARCHAR(10) NOT NULL,
		role VARCHAR(10) NOT NULL DEFAULT 'USER',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		id UUID PRIMARY KEY,
		room_number VARCHAR(20) NOT NULL UNIQUE,
		room_type VARCHAR(50),
		price_per_night NUMERIC(12,2) NOT NULL CHECK (price_per_night >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		room_id UUID NOT NULL REFERENCES rooms(id),
		check_in TIMESTAMPTZ NOT NULL,
		check_out TIMESTAMPTZ NOT NULL,
		total_amount NUMERIC(12,2) NOT NULL,
		discount_amount NUMERIC(12,2) NOT NULL,
		final_amount NUMERIC(12,2) NOT NULL,
		status VARCHAR(10) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_room_status ON bookings (room_id, status)`,
	`CREATE TABLE IF NOT EXISTS cancellations (
		id UUID PRIMARY KEY,
		booking_id UUID NOT NULL UNIQUE REFERENCES bookings(id),
		cancelled_at TIMESTAMPTZ NOT NULL,
		refund_amount NUMERIC(12,2) NOT NULL,
		penalty_amount NUMERIC(12,2) NOT NULL,
		refund_status VARCHAR(10) NOT NULL
	)`,
}

// Migrate applies the schema to the database
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
