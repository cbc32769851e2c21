package payment

import "errors"

// ErrGateway marks transient external-gateway failures. The caller
// may retry initiation without re-creating the reservation; no
// payment row exists until the gateway has answered.
var ErrGateway = errors.New("payment gateway error")

// ErrPaymentNotFound is returned when no payment row matches a
// transaction reference.
var ErrPaymentNotFound = errors.New("payment not found")

// ErrReservationNotFound is returned when payment initiation targets
// a reservation that does not exist.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrInvalidInput covers malformed emails, non-positive amounts and
// missing methods, all rejected before any gateway call.
var ErrInvalidInput = errors.New("invalid payment input")
