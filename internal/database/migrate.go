package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema holds the idempotent DDL applied at boot. The reservations
// foreign key keeps rooms from being deleted while bookings reference
// them; the date index backs the overlap query on the booking path.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
        user_id UUID PRIMARY KEY,
        username VARCHAR(50) UNIQUE NOT NULL,
        email VARCHAR(100) UNIQUE NOT NULL,
        password_hash VARCHAR(255) NOT NULL,
        role VARCHAR(20) NOT NULL DEFAULT 'admin',
        created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
    )`,
	`CREATE TABLE IF NOT EXISTS rooms (
        room_id UUID PRIMARY KEY,
        room_number VARCHAR(10) NOT NULL,
        room_type VARCHAR(50) UNIQUE NOT NULL,
        capacity INTEGER NOT NULL CHECK (capacity > 0),
        price_per_night DECIMAL(10,2) NOT NULL CHECK (price_per_night > 0),
        amenities TEXT NOT NULL DEFAULT '',
        status VARCHAR(20) NOT NULL DEFAULT 'available'
    )`,
	`CREATE TABLE IF NOT EXISTS reservations (
        reservation_id UUID PRIMARY KEY,
        room_id UUID NOT NULL REFERENCES rooms(room_id),
        guest_name VARCHAR(100) NOT NULL,
        guest_email VARCHAR(100),
        guest_phone VARCHAR(20) NOT NULL,
        check_in_date DATE NOT NULL,
        check_out_date DATE NOT NULL,
        guest_count INTEGER NOT NULL CHECK (guest_count > 0),
        total_amount DECIMAL(10,2) NOT NULL,
        payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
        reservation_status VARCHAR(20) NOT NULL DEFAULT 'confirmed',
        created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
        CHECK (check_out_date > check_in_date)
    )`,
	`CREATE TABLE IF NOT EXISTS payments (
        payment_id UUID PRIMARY KEY,
        reservation_id UUID NOT NULL REFERENCES reservations(reservation_id),
        amount DECIMAL(10,2) NOT NULL,
        payment_method VARCHAR(50) NOT NULL,
        payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
        transaction_id VARCHAR(100) UNIQUE,
        created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
    )`,
	`CREATE TABLE IF NOT EXISTS discount (
        discount_id UUID PRIMARY KEY,
        room_id UUID NOT NULL REFERENCES rooms(room_id) ON DELETE CASCADE,
        discount_type VARCHAR(50) NOT NULL CHECK (discount_type IN ('percentage', 'fixed')),
        discount_value NUMERIC NOT NULL CHECK (discount_value > 0),
        promo_code VARCHAR(50),
        start_date TIMESTAMP NOT NULL,
        end_date TIMESTAMP NOT NULL,
        status BOOLEAN NOT NULL DEFAULT true
    )`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_room_dates
        ON reservations (room_id, check_in_date, check_out_date)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_reservation_id
        ON payments (reservation_id)`,
}

// Migrate applies the schema inside a single transaction so a partial
// boot never leaves half the tables behind.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	committed = true
	return nil
}
