package repository

import (
	"context"

	"github.com/costariann/gye-nyame-hotel/internal/model"
)

// InsertPayment records a newly opened payment session. The row is
// only written after the gateway has returned a transaction
// reference, so a gateway failure never leaves an orphan row.
func (s *Store) InsertPayment(ctx context.Context, p *model.Payment) error {
	const q = `INSERT INTO payments (payment_id, reservation_id, amount, payment_method,
                                     payment_status, transaction_id, created_at)
               VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := s.db.ExecContext(ctx, q,
		p.ID, p.ReservationID, p.Amount, p.Method, p.Status, p.TransactionRef, p.CreatedAt)
	return mapPQError(err)
}

// PaymentByRef returns the payment correlated with a gateway
// transaction reference, or sql.ErrNoRows.
func (s *Store) PaymentByRef(ctx context.Context, ref string) (*model.Payment, error) {
	const q = `SELECT payment_id, reservation_id, amount, payment_method,
                      payment_status, transaction_id, created_at
               FROM payments WHERE transaction_id = $1`
	var p model.Payment
	err := s.db.QueryRowContext(ctx, q, ref).Scan(
		&p.ID, &p.ReservationID, &p.Amount, &p.Method, &p.Status, &p.TransactionRef, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePaymentStatus overwrites the payment status with the
// gateway's reported value. A single-row UPDATE is atomic, which is
// all verification needs.
func (s *Store) UpdatePaymentStatus(ctx context.Context, ref, status string) error {
	const q = `UPDATE payments SET payment_status = $2 WHERE transaction_id = $1`
	_, err := s.db.ExecContext(ctx, q, ref, status)
	return err
}

// ListPaymentDetails returns payments joined with reservation and
// room attributes for the admin dashboard, newest first.
func (s *Store) ListPaymentDetails(ctx context.Context) ([]model.PaymentDetail, error) {
	const q = `SELECT p.payment_id, p.reservation_id, p.amount, p.payment_method,
                      p.payment_status, p.transaction_id, p.created_at,
                      r.guest_name, r.room_id, rm.room_number, rm.room_type
               FROM payments p
               JOIN reservations r ON r.reservation_id = p.reservation_id
               JOIN rooms rm ON rm.room_id = r.room_id
               ORDER BY p.created_at DESC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.PaymentDetail, 0)
	for rows.Next() {
		var d model.PaymentDetail
		if err := rows.Scan(
			&d.ID, &d.ReservationID, &d.Amount, &d.Method,
			&d.Status, &d.TransactionRef, &d.CreatedAt,
			&d.GuestName, &d.RoomID, &d.RoomNumber, &d.RoomType); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
