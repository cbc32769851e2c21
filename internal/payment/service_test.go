package payment_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costariann/gye-nyame-hotel/internal/model"
	"github.com/costariann/gye-nyame-hotel/internal/payment"
)

type fakePaymentStore struct {
	reservations map[uuid.UUID]model.ReservationDetail
	payments     map[string]model.Payment // by transaction ref
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{
		reservations: make(map[uuid.UUID]model.ReservationDetail),
		payments:     make(map[string]model.Payment),
	}
}

func (s *fakePaymentStore) GetReservation(ctx context.Context, id uuid.UUID) (*model.ReservationDetail, error) {
	res, ok := s.reservations[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &res, nil
}

func (s *fakePaymentStore) InsertPayment(ctx context.Context, p *model.Payment) error {
	s.payments[p.TransactionRef] = *p
	return nil
}

func (s *fakePaymentStore) PaymentByRef(ctx context.Context, ref string) (*model.Payment, error) {
	p, ok := s.payments[ref]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &p, nil
}

func (s *fakePaymentStore) UpdatePaymentStatus(ctx context.Context, ref, status string) error {
	p, ok := s.payments[ref]
	if !ok {
		return sql.ErrNoRows
	}
	p.Status = status
	s.payments[ref] = p
	return nil
}

// fakeGateway records the amounts it was asked to authorise and
// returns scripted results.
type fakeGateway struct {
	initErr      error
	verifyErr    error
	verifyStatus string
	lastAmount   int64
	lastEmail    string
	sessions     int
}

func (g *fakeGateway) Initialize(ctx context.Context, email string, amountMinor int64) (*payment.GatewaySession, error) {
	if g.initErr != nil {
		return nil, g.initErr
	}
	g.sessions++
	g.lastAmount = amountMinor
	g.lastEmail = email
	return &payment.GatewaySession{
		Reference:        "ref-001",
		AuthorizationURL: "https://checkout.paystack.com/ref-001",
	}, nil
}

func (g *fakeGateway) Verify(ctx context.Context, reference string) (string, error) {
	if g.verifyErr != nil {
		return "", g.verifyErr
	}
	return g.verifyStatus, nil
}

func seedReservation(s *fakePaymentStore) uuid.UUID {
	id := uuid.New()
	s.reservations[id] = model.ReservationDetail{
		Reservation: model.Reservation{
			ID:          id,
			TotalAmount: decimal.RequireFromString("180.00"),
		},
	}
	return id
}

func TestInitiatePayment_Success(t *testing.T) {
	store := newFakePaymentStore()
	gw := &fakeGateway{}
	svc := payment.NewService(store, gw, zerolog.Nop())
	resID := seedReservation(store)

	res, err := svc.InitiatePayment(context.Background(), resID, "ama@example.com", decimal.RequireFromString("180.00"), "card")

	require.NoError(t, err)
	assert.Equal(t, "ref-001", res.TransactionRef)
	assert.Equal(t, "https://checkout.paystack.com/ref-001", res.AuthorizationURL)

	// Gateway amounts are minor units.
	assert.Equal(t, int64(18000), gw.lastAmount)
	assert.Equal(t, "ama@example.com", gw.lastEmail)

	p, err := store.PaymentByRef(context.Background(), "ref-001")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentRowPending, p.Status)
	assert.Equal(t, resID, p.ReservationID)
	assert.Equal(t, "card", p.Method)
}

func TestInitiatePayment_GatewayFailureLeavesNoRow(t *testing.T) {
	store := newFakePaymentStore()
	gw := &fakeGateway{initErr: payment.ErrGateway}
	svc := payment.NewService(store, gw, zerolog.Nop())
	resID := seedReservation(store)

	_, err := svc.InitiatePayment(context.Background(), resID, "ama@example.com", decimal.RequireFromString("180.00"), "card")

	assert.ErrorIs(t, err, payment.ErrGateway)
	assert.Empty(t, store.payments, "a failed session must not persist a payment row")
}

func TestInitiatePayment_UnknownReservation(t *testing.T) {
	store := newFakePaymentStore()
	svc := payment.NewService(store, &fakeGateway{}, zerolog.Nop())

	_, err := svc.InitiatePayment(context.Background(), uuid.New(), "ama@example.com", decimal.NewFromInt(100), "card")
	assert.ErrorIs(t, err, payment.ErrReservationNotFound)
}

func TestInitiatePayment_InvalidInput(t *testing.T) {
	store := newFakePaymentStore()
	svc := payment.NewService(store, &fakeGateway{}, zerolog.Nop())
	resID := seedReservation(store)
	ctx := context.Background()

	_, err := svc.InitiatePayment(ctx, resID, "not-an-email", decimal.NewFromInt(100), "card")
	assert.ErrorIs(t, err, payment.ErrInvalidInput)

	_, err = svc.InitiatePayment(ctx, resID, "ama@example.com", decimal.Zero, "card")
	assert.ErrorIs(t, err, payment.ErrInvalidInput)

	_, err = svc.InitiatePayment(ctx, resID, "ama@example.com", decimal.NewFromInt(100), " ")
	assert.ErrorIs(t, err, payment.ErrInvalidInput)
}

func TestVerifyPayment_UpdatesRow(t *testing.T) {
	store := newFakePaymentStore()
	gw := &fakeGateway{verifyStatus: "completed"}
	svc := payment.NewService(store, gw, zerolog.Nop())
	resID := seedReservation(store)
	ctx := context.Background()

	_, err := svc.InitiatePayment(ctx, resID, "ama@example.com", decimal.NewFromInt(180), "card")
	require.NoError(t, err)

	status, err := svc.VerifyPayment(ctx, "ref-001")
	require.NoError(t, err)
	assert.Equal(t, "completed", status)

	p, err := store.PaymentByRef(ctx, "ref-001")
	require.NoError(t, err)
	assert.Equal(t, "completed", p.Status)

	// Re-verifying is idempotent: the gateway answer wins again.
	status, err = svc.VerifyPayment(ctx, "ref-001")
	require.NoError(t, err)
	assert.Equal(t, "completed", status)
}

func TestVerifyPayment_UnknownReference(t *testing.T) {
	store := newFakePaymentStore()
	svc := payment.NewService(store, &fakeGateway{}, zerolog.Nop())

	_, err := svc.VerifyPayment(context.Background(), "missing-ref")
	assert.ErrorIs(t, err, payment.ErrPaymentNotFound)
}

func TestVerifyPayment_GatewayFailureLeavesRowUntouched(t *testing.T) {
	store := newFakePaymentStore()
	gw := &fakeGateway{verifyErr: errors.New("provider down")}
	svc := payment.NewService(store, gw, zerolog.Nop())
	resID := seedReservation(store)
	ctx := context.Background()

	_, err := svc.InitiatePayment(ctx, resID, "ama@example.com", decimal.NewFromInt(180), "card")
	require.NoError(t, err)

	_, err = svc.VerifyPayment(ctx, "ref-001")
	assert.Error(t, err)

	p, err := store.PaymentByRef(ctx, "ref-001")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentRowPending, p.Status)
}
