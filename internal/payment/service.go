// Package payment correlates reservations with external payment
// sessions and reconciles gateway verification results back onto the
// payment rows. It never mutates reservation state.
package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/costariann/gye-nyame-hotel/internal/model"
)

// Store is the persistence the correlator needs: payment rows plus a
// reservation-existence check. Implemented by repository.Store.
type Store interface {
	GetReservation(ctx context.Context, id uuid.UUID) (*model.ReservationDetail, error)
	InsertPayment(ctx context.Context, p *model.Payment) error
	PaymentByRef(ctx context.Context, ref string) (*model.Payment, error)
	UpdatePaymentStatus(ctx context.Context, ref, status string) error
}

// Service is the payment correlator.
type Service struct {
	store   Store
	gateway Gateway
	log     zerolog.Logger
}

// NewService returns a Service delegating authoritative payment
// outcomes to the given gateway.
func NewService(store Store, gateway Gateway, log zerolog.Logger) *Service {
	return &Service{store: store, gateway: gateway, log: log}
}

// InitiateResult is returned from InitiatePayment: the gateway's
// transaction reference and the redirect URL for the guest.
type InitiateResult struct {
	TransactionRef   string `json:"transaction_reference"`
	AuthorizationURL string `json:"authorization_url"`
}

// InitiatePayment opens a gateway session for a reservation and
// records a pending payment row carrying the returned reference.
// When the gateway call fails no row is created, so retrying is
// always safe. Reservation state is untouched.
func (s *Service) InitiatePayment(ctx context.Context, reservationID uuid.UUID, email string, amount decimal.Decimal, method string) (*InitiateResult, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidInput
	}
	if !amount.IsPositive() || strings.TrimSpace(method) == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.store.GetReservation(ctx, reservationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("load reservation: %w", err)
	}

	// Paystack works in minor units (pesewas).
	minor := amount.Mul(decimal.NewFromInt(100)).IntPart()
	session, err := s.gateway.Initialize(ctx, email, minor)
	if err != nil {
		return nil, err
	}

	p := &model.Payment{
		ID:             uuid.New(),
		ReservationID:  reservationID,
		Amount:         amount,
		Method:         method,
		Status:         model.PaymentRowPending,
		TransactionRef: session.Reference,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.store.InsertPayment(ctx, p); err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	s.log.Info().
		Str("reservation_id", reservationID.String()).
		Str("transaction_ref", session.Reference).
		Msg("payment session opened")
	return &InitiateResult{
		TransactionRef:   session.Reference,
		AuthorizationURL: session.AuthorizationURL,
	}, nil
}

// VerifyPayment fetches the gateway's authoritative status for a
// transaction reference and overwrites the payment row with it.
// Re-verifying a settled payment just rewrites the same value, so the
// call is idempotent.
func (s *Service) VerifyPayment(ctx context.Context, reference string) (string, error) {
	if _, err := s.store.PaymentByRef(ctx, reference); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrPaymentNotFound
		}
		return "", fmt.Errorf("load payment: %w", err)
	}

	status, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		return "", err
	}
	if err := s.store.UpdatePaymentStatus(ctx, reference, status); err != nil {
		return "", fmt.Errorf("update payment status: %w", err)
	}

	s.log.Info().
		Str("transaction_ref", reference).
		Str("status", status).
		Msg("payment verified")
	return status, nil
}
