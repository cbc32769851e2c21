package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/costariann/gye-nyame-hotel/internal/model"
)

// activeDiscount selects the discount applying to a room at a given
// date: active, window containing the date, matching room. When more
// than one qualifies the latest start date wins, with the discount id
// breaking remaining ties so the choice is deterministic.
func activeDiscount(ctx context.Context, db dbtx, roomID uuid.UUID, at time.Time) (*model.Discount, error) {
	const q = `SELECT discount_id, room_id, discount_type, discount_value, promo_code,
                      start_date, end_date, status
               FROM discount
               WHERE room_id = $1 AND status = true
                 AND start_date <= $2 AND end_date >= $2
               ORDER BY start_date DESC, discount_id DESC
               LIMIT 1`
	var d model.Discount
	var promo sql.NullString
	err := db.QueryRowContext(ctx, q, roomID, at).Scan(
		&d.ID, &d.RoomID, &d.Type, &d.Value, &promo, &d.StartDate, &d.EndDate, &d.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // no active discount is not an error
	}
	if err != nil {
		return nil, err
	}
	d.PromoCode = promo.String
	return &d, nil
}

// ActiveDiscount resolves the discount outside a transaction, used by
// room search pricing.
func (s *Store) ActiveDiscount(ctx context.Context, roomID uuid.UUID, at time.Time) (*model.Discount, error) {
	return activeDiscount(ctx, s.db, roomID, at)
}

// ActiveDiscount resolves the discount inside the booking
// transaction.
func (t *TxStore) ActiveDiscount(ctx context.Context, roomID uuid.UUID, at time.Time) (*model.Discount, error) {
	return activeDiscount(ctx, t.tx, roomID, at)
}

// CreateDiscount inserts an administrative discount row.
func (s *Store) CreateDiscount(ctx context.Context, d *model.Discount) error {
	const q = `INSERT INTO discount (discount_id, room_id, discount_type, discount_value,
                                     promo_code, start_date, end_date, status)
               VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := s.db.ExecContext(ctx, q,
		d.ID, d.RoomID, d.Type, d.Value, nullable(d.PromoCode), d.StartDate, d.EndDate, d.Active)
	return mapPQError(err)
}
