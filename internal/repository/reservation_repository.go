package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/costariann/gye-nyame-hotel/internal/booking"
	"github.com/costariann/gye-nyame-hotel/internal/model"
)

const reservationColumns = `reservation_id, room_id, guest_name, guest_email, guest_phone,
       check_in_date, check_out_date, guest_count, total_amount,
       payment_status, reservation_status, created_at`

func scanReservation(row interface{ Scan(...any) error }) (*model.Reservation, error) {
	var r model.Reservation
	var email sql.NullString
	err := row.Scan(&r.ID, &r.RoomID, &r.GuestName, &email, &r.GuestPhone,
		&r.CheckIn, &r.CheckOut, &r.GuestCount, &r.TotalAmount,
		&r.PaymentStatus, &r.ReservationStatus, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	r.GuestEmail = email.String
	return &r, nil
}

// countOverlapping implements the half-open interval overlap test:
// an existing reservation overlaps [checkIn, checkOut) iff its
// check-in is before checkOut and its check-out is after checkIn.
// Cancelled reservations never block a range. exclude removes one
// reservation from the count so edit flows do not collide with the
// row being edited.
func countOverlapping(ctx context.Context, db dbtx, roomID uuid.UUID, checkIn, checkOut time.Time, exclude uuid.UUID) (int, error) {
	q := `SELECT COUNT(*) FROM reservations
          WHERE room_id = $1
            AND reservation_status <> 'cancelled'
            AND check_in_date < $2
            AND check_out_date > $3`
	args := []any{roomID, checkOut, checkIn}
	if exclude != uuid.Nil {
		q += ` AND reservation_id <> $4`
		args = append(args, exclude)
	}
	var n int
	if err := db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountOverlapping is the advisory, non-transactional overlap count
// used by room search. Booking decisions use the TxStore variant.
func (s *Store) CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, exclude uuid.UUID) (int, error) {
	return countOverlapping(ctx, s.db, roomID, checkIn, checkOut, exclude)
}

// CountOverlapping runs the overlap test inside the transaction, so
// together with the room row lock it observes a stable reservation
// set until the insert commits.
func (t *TxStore) CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, exclude uuid.UUID) (int, error) {
	return countOverlapping(ctx, t.tx, roomID, checkIn, checkOut, exclude)
}

// InsertReservation persists a new reservation row within the
// transaction. The caller supplies the id and derived total.
func (t *TxStore) InsertReservation(ctx context.Context, r *model.Reservation) error {
	const q = `INSERT INTO reservations (
                   reservation_id, room_id, guest_name, guest_email, guest_phone,
                   check_in_date, check_out_date, guest_count, total_amount,
                   payment_status, reservation_status, created_at
               ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := t.tx.ExecContext(ctx, q,
		r.ID, r.RoomID, r.GuestName, nullable(r.GuestEmail), r.GuestPhone,
		r.CheckIn, r.CheckOut, r.GuestCount, r.TotalAmount,
		r.PaymentStatus, r.ReservationStatus, r.CreatedAt)
	return mapPQError(err)
}

// ReservationForUpdate loads a reservation and locks its row for the
// rest of the transaction.
func (t *TxStore) ReservationForUpdate(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE reservation_id = $1 FOR UPDATE`
	return scanReservation(t.tx.QueryRowContext(ctx, q, id))
}

// MarkCancelled transitions the reservation to its terminal state.
// The row is retained for the audit trail; payment status is not
// touched.
func (t *TxStore) MarkCancelled(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE reservations SET reservation_status = 'cancelled' WHERE reservation_id = $1`
	_, err := t.tx.ExecContext(ctx, q, id)
	return err
}

// GetReservation returns a reservation joined with its room's display
// attributes, or sql.ErrNoRows.
func (s *Store) GetReservation(ctx context.Context, id uuid.UUID) (*model.ReservationDetail, error) {
	const q = `SELECT r.reservation_id, r.room_id, r.guest_name, r.guest_email, r.guest_phone,
                      r.check_in_date, r.check_out_date, r.guest_count, r.total_amount,
                      r.payment_status, r.reservation_status, r.created_at,
                      rm.room_number, rm.room_type, rm.amenities
               FROM reservations r
               JOIN rooms rm ON rm.room_id = r.room_id
               WHERE r.reservation_id = $1`
	var d model.ReservationDetail
	var email sql.NullString
	err := s.db.QueryRowContext(ctx, q, id).Scan(
		&d.ID, &d.RoomID, &d.GuestName, &email, &d.GuestPhone,
		&d.CheckIn, &d.CheckOut, &d.GuestCount, &d.TotalAmount,
		&d.PaymentStatus, &d.ReservationStatus, &d.CreatedAt,
		&d.RoomNumber, &d.RoomType, &d.Amenities)
	if err != nil {
		return nil, err
	}
	d.GuestEmail = email.String
	return &d, nil
}

// ListReservations returns reservations joined with room attributes,
// newest check-in first. The filter narrows by room and status.
func (s *Store) ListReservations(ctx context.Context, f booking.ListFilter) ([]model.ReservationDetail, error) {
	q := `SELECT r.reservation_id, r.room_id, r.guest_name, r.guest_email, r.guest_phone,
                 r.check_in_date, r.check_out_date, r.guest_count, r.total_amount,
                 r.payment_status, r.reservation_status, r.created_at,
                 rm.room_number, rm.room_type, rm.amenities
          FROM reservations r
          JOIN rooms rm ON rm.room_id = r.room_id
          WHERE 1=1`
	args := []any{}
	if f.RoomID != uuid.Nil {
		args = append(args, f.RoomID)
		q += fmt.Sprintf(" AND r.room_id = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		q += fmt.Sprintf(" AND r.reservation_status = $%d", len(args))
	}
	q += ` ORDER BY r.check_in_date DESC`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.ReservationDetail, 0)
	for rows.Next() {
		var d model.ReservationDetail
		var email sql.NullString
		if err := rows.Scan(
			&d.ID, &d.RoomID, &d.GuestName, &email, &d.GuestPhone,
			&d.CheckIn, &d.CheckOut, &d.GuestCount, &d.TotalAmount,
			&d.PaymentStatus, &d.ReservationStatus, &d.CreatedAt,
			&d.RoomNumber, &d.RoomType, &d.Amenities); err != nil {
			return nil, err
		}
		d.GuestEmail = email.String
		out = append(out, d)
	}
	return out, rows.Err()
}

// AdminListReservations returns every reservation for the dashboard,
// most recently created first.
func (s *Store) AdminListReservations(ctx context.Context) ([]model.ReservationDetail, error) {
	const q = `SELECT r.reservation_id, r.room_id, r.guest_name, r.guest_email, r.guest_phone,
                      r.check_in_date, r.check_out_date, r.guest_count, r.total_amount,
                      r.payment_status, r.reservation_status, r.created_at,
                      rm.room_number, rm.room_type, rm.amenities
               FROM reservations r
               JOIN rooms rm ON rm.room_id = r.room_id
               ORDER BY r.created_at DESC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.ReservationDetail, 0)
	for rows.Next() {
		var d model.ReservationDetail
		var email sql.NullString
		if err := rows.Scan(
			&d.ID, &d.RoomID, &d.GuestName, &email, &d.GuestPhone,
			&d.CheckIn, &d.CheckOut, &d.GuestCount, &d.TotalAmount,
			&d.PaymentStatus, &d.ReservationStatus, &d.CreatedAt,
			&d.RoomNumber, &d.RoomType, &d.Amenities); err != nil {
			return nil, err
		}
		d.GuestEmail = email.String
		out = append(out, d)
	}
	return out, rows.Err()
}

// Stats aggregates dashboard figures over confirmed reservations.
type Stats struct {
	Reservations int             `json:"reservations"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	RoomsBooked  int             `json:"roomsBooked"`
}

// ReservationStats returns counts and revenue for confirmed
// reservations.
func (s *Store) ReservationStats(ctx context.Context) (*Stats, error) {
	const q = `SELECT COUNT(*),
                      COALESCE(SUM(total_amount), 0),
                      COUNT(DISTINCT room_id)
               FROM reservations
               WHERE reservation_status = 'confirmed'`
	var st Stats
	if err := s.db.QueryRowContext(ctx, q).Scan(&st.Reservations, &st.TotalAmount, &st.RoomsBooked); err != nil {
		return nil, err
	}
	return &st, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
