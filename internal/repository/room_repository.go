package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/costariann/gye-nyame-hotel/internal/model"
)

const roomColumns = `room_id, room_number, room_type, capacity, price_per_night, amenities, status`

func scanRoom(row interface{ Scan(...any) error }) (*model.Room, error) {
	var r model.Room
	err := row.Scan(&r.ID, &r.RoomNumber, &r.RoomType, &r.Capacity, &r.PricePerNight, &r.Amenities, &r.Status)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetRoom returns a room by id, or sql.ErrNoRows.
func (s *Store) GetRoom(ctx context.Context, id uuid.UUID) (*model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE room_id = $1`
	return scanRoom(s.db.QueryRowContext(ctx, q, id))
}

// RoomByType returns one room of the given type, or sql.ErrNoRows.
// Admin discount creation addresses rooms by type label.
func (s *Store) RoomByType(ctx context.Context, roomType string) (*model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE LOWER(room_type) = LOWER($1) LIMIT 1`
	return scanRoom(s.db.QueryRowContext(ctx, q, roomType))
}

// ListOpenRooms returns available rooms that can host at least
// minCapacity guests, ordered by room number.
func (s *Store) ListOpenRooms(ctx context.Context, minCapacity int) ([]model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms
               WHERE capacity >= $1 AND status = 'available'
               ORDER BY room_number`
	rows, err := s.db.QueryContext(ctx, q, minCapacity)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Room, 0)
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

// RoomListing is a room together with its currently reserved date
// ranges, returned by the public browse endpoints.
type RoomListing struct {
	model.Room
	BookedDates []model.BookedRange `json:"booked_dates"`
}

// ListRooms returns every room with the date ranges of its
// non-cancelled reservations, ordered by room number.
func (s *Store) ListRooms(ctx context.Context) ([]RoomListing, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms ORDER BY room_number`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	listings := make([]RoomListing, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		index[r.ID] = len(listings)
		listings = append(listings, RoomListing{Room: *r, BookedDates: []model.BookedRange{}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return listings, nil
	}

	const rq = `SELECT room_id, check_in_date, check_out_date FROM reservations
                WHERE reservation_status <> 'cancelled'
                ORDER BY room_id, check_in_date`
	rrows, err := s.db.QueryContext(ctx, rq)
	if err != nil {
		return nil, err
	}
	defer rrows.Close()
	for rrows.Next() {
		var roomID uuid.UUID
		var in, out time.Time
		if err := rrows.Scan(&roomID, &in, &out); err != nil {
			return nil, err
		}
		idx, ok := index[roomID]
		if !ok {
			continue
		}
		listings[idx].BookedDates = append(listings[idx].BookedDates, model.BookedRange{
			CheckIn:  in.Format("2006-01-02"),
			CheckOut: out.Format("2006-01-02"),
		})
	}
	return listings, rrows.Err()
}

// GetRoomListing returns one room with its booked date ranges.
func (s *Store) GetRoomListing(ctx context.Context, id uuid.UUID) (*RoomListing, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	listing := RoomListing{Room: *room, BookedDates: []model.BookedRange{}}
	const rq = `SELECT check_in_date, check_out_date FROM reservations
                WHERE room_id = $1 AND reservation_status <> 'cancelled'
                ORDER BY check_in_date`
	rows, err := s.db.QueryContext(ctx, rq, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var in, out time.Time
		if err := rows.Scan(&in, &out); err != nil {
			return nil, err
		}
		listing.BookedDates = append(listing.BookedDates, model.BookedRange{
			CheckIn:  in.Format("2006-01-02"),
			CheckOut: out.Format("2006-01-02"),
		})
	}
	return &listing, rows.Err()
}

// CreateRoom inserts a new room. A reused room type surfaces as
// ErrDuplicate.
func (s *Store) CreateRoom(ctx context.Context, r *model.Room) error {
	const q = `INSERT INTO rooms (room_id, room_number, room_type, capacity, price_per_night, amenities, status)
               VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := s.db.ExecContext(ctx, q, r.ID, r.RoomNumber, r.RoomType, r.Capacity, r.PricePerNight, r.Amenities, r.Status)
	return mapPQError(err)
}

// UpdateRoom rewrites a room's mutable attributes. Returns
// sql.ErrNoRows when the room does not exist.
func (s *Store) UpdateRoom(ctx context.Context, r *model.Room) error {
	const q = `UPDATE rooms SET room_number = $2, room_type = $3, capacity = $4,
                      price_per_night = $5, amenities = $6, status = $7
               WHERE room_id = $1`
	res, err := s.db.ExecContext(ctx, q, r.ID, r.RoomNumber, r.RoomType, r.Capacity, r.PricePerNight, r.Amenities, r.Status)
	if err != nil {
		return mapPQError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteRoom removes a room. Rooms referenced by reservations cannot
// be deleted; the foreign key violation surfaces as ErrConflict.
func (s *Store) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM rooms WHERE room_id = $1`, id)
	if err != nil {
		return mapPQError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// RoomForUpdate loads the room and holds a row lock until the
// transaction ends. Concurrent bookings of the same room serialise on
// this lock.
func (t *TxStore) RoomForUpdate(ctx context.Context, roomID uuid.UUID) (*model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE room_id = $1 FOR UPDATE`
	return scanRoom(t.tx.QueryRowContext(ctx, q, roomID))
}
