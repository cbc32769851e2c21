package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/costariann/gye-nyame-hotel/internal/model"
	"github.com/costariann/gye-nyame-hotel/internal/pricing"
)

// Service orchestrates reservation creation, cancellation and reads.
// All mutations run inside a single transaction obtained from the
// store; validation failures are detected before anything is written.
type Service struct {
	store Store
	log   zerolog.Logger
}

// NewService returns a Service backed by the given store.
func NewService(store Store, log zerolog.Logger) *Service {
	return &Service{store: store, log: log}
}

// CreateReservationRequest carries the validated booking input. Dates
// are calendar dates at midnight UTC.
type CreateReservationRequest struct {
	RoomID     uuid.UUID
	RoomType   string
	GuestName  string
	GuestEmail string
	GuestPhone string
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int
}

// CreateReservation books a room for the requested range. The room
// lookup, capacity check, overlap test, pricing and insert all happen
// inside one transaction holding a row lock on the room, so two
// concurrent requests for overlapping ranges cannot both succeed.
//
// The returned reservation is confirmed with payment pending. On any
// error nothing is persisted.
func (s *Service) CreateReservation(ctx context.Context, req CreateReservationRequest) (*model.Reservation, error) {
	if req.RoomID == uuid.Nil || strings.TrimSpace(req.GuestName) == "" || strings.TrimSpace(req.GuestPhone) == "" {
		return nil, ErrInvalidInput
	}
	if req.GuestCount <= 0 {
		return nil, ErrInvalidInput
	}
	if !req.CheckOut.After(req.CheckIn) {
		return nil, ErrDateRangeInvalid
	}

	var created *model.Reservation
	err := s.store.InTx(ctx, func(tx Tx) error {
		room, err := tx.RoomForUpdate(ctx, req.RoomID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRoomNotFound
		}
		if err != nil {
			return fmt.Errorf("load room: %w", err)
		}
		if room.RoomType != req.RoomType {
			return ErrRoomNotFound
		}
		if req.GuestCount > room.Capacity {
			return ErrCapacityExceeded
		}

		overlaps, err := tx.CountOverlapping(ctx, room.ID, req.CheckIn, req.CheckOut, uuid.Nil)
		if err != nil {
			return fmt.Errorf("check availability: %w", err)
		}
		if overlaps > 0 {
			return ErrRoomUnavailable
		}

		disc, err := tx.ActiveDiscount(ctx, room.ID, req.CheckIn)
		if err != nil {
			return fmt.Errorf("resolve discount: %w", err)
		}
		_, total := pricing.ComputeCharge(req.CheckIn, req.CheckOut, room.PricePerNight, disc)

		created = &model.Reservation{
			ID:                uuid.New(),
			RoomID:            room.ID,
			GuestName:         req.GuestName,
			GuestEmail:        req.GuestEmail,
			GuestPhone:        req.GuestPhone,
			CheckIn:           req.CheckIn,
			CheckOut:          req.CheckOut,
			GuestCount:        req.GuestCount,
			TotalAmount:       total,
			PaymentStatus:     model.PaymentPending,
			ReservationStatus: model.ReservationConfirmed,
			CreatedAt:         time.Now().UTC(),
		}
		if err := tx.InsertReservation(ctx, created); err != nil {
			return fmt.Errorf("insert reservation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("reservation_id", created.ID.String()).
		Str("room_id", created.RoomID.String()).
		Str("total_amount", created.TotalAmount.String()).
		Msg("reservation created")
	return created, nil
}

// CancelReservation marks a reservation cancelled. Cancellation is
// terminal: a second call reports ErrAlreadyCancelled and leaves the
// row untouched. The row is never deleted and payment status is not
// modified.
func (s *Service) CancelReservation(ctx context.Context, id uuid.UUID) error {
	err := s.store.InTx(ctx, func(tx Tx) error {
		res, err := tx.ReservationForUpdate(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrReservationNotFound
		}
		if err != nil {
			return fmt.Errorf("load reservation: %w", err)
		}
		if res.ReservationStatus == model.ReservationCancelled {
			return ErrAlreadyCancelled
		}
		if err := tx.MarkCancelled(ctx, id); err != nil {
			return fmt.Errorf("cancel reservation: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info().Str("reservation_id", id.String()).Msg("reservation cancelled")
	return nil
}

// GetReservation returns a reservation with its room attributes.
func (s *Service) GetReservation(ctx context.Context, id uuid.UUID) (*model.ReservationDetail, error) {
	det, err := s.store.GetReservation(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load reservation: %w", err)
	}
	return det, nil
}

// ListReservations returns reservations matching the filter, ordered
// by check-in date.
func (s *Service) ListReservations(ctx context.Context, f ListFilter) ([]model.ReservationDetail, error) {
	items, err := s.store.ListReservations(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return items, nil
}

// IsRangeAvailable reports whether the room is free for the half-open
// range. exclude removes one reservation from the test, which edit
// flows use so a reservation does not collide with itself. This is an
// advisory read; CreateReservation re-checks inside its transaction.
func (s *Service) IsRangeAvailable(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, exclude uuid.UUID) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, ErrDateRangeInvalid
	}
	n, err := s.store.CountOverlapping(ctx, roomID, checkIn, checkOut, exclude)
	if err != nil {
		return false, fmt.Errorf("check availability: %w", err)
	}
	return n == 0, nil
}

// RoomQuote is a search hit: an available room plus the computed
// charge for the requested stay.
type RoomQuote struct {
	model.Room
	Nights     int             `json:"nights"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// SearchAvailableRooms returns every available room that can host the
// guest count and is free for the whole range, each with its total
// price for the stay (active discounts applied).
func (s *Service) SearchAvailableRooms(ctx context.Context, checkIn, checkOut time.Time, guests int) ([]RoomQuote, error) {
	if guests <= 0 {
		return nil, ErrInvalidInput
	}
	if !checkOut.After(checkIn) {
		return nil, ErrDateRangeInvalid
	}

	rooms, err := s.store.ListOpenRooms(ctx, guests)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	quotes := make([]RoomQuote, 0, len(rooms))
	for _, room := range rooms {
		overlaps, err := s.store.CountOverlapping(ctx, room.ID, checkIn, checkOut, uuid.Nil)
		if err != nil {
			return nil, fmt.Errorf("check availability: %w", err)
		}
		if overlaps > 0 {
			continue
		}
		disc, err := s.store.ActiveDiscount(ctx, room.ID, checkIn)
		if err != nil {
			return nil, fmt.Errorf("resolve discount: %w", err)
		}
		nights, total := pricing.ComputeCharge(checkIn, checkOut, room.PricePerNight, disc)
		quotes = append(quotes, RoomQuote{Room: room, Nights: nights, TotalPrice: total})
	}
	return quotes, nil
}
