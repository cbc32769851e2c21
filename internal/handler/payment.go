package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/costariann/gye-nyame-hotel/internal/payment"
)

// PaymentHandler exposes payment initiation and verification.
type PaymentHandler struct {
	Payments *payment.Service
	Log      zerolog.Logger
}

type initiatePaymentRequest struct {
	ReservationID string          `json:"reservation_id"`
	Email         string          `json:"email"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"payment_method"`
}

// Initiate handles POST /api/payments/initiate.
func (h *PaymentHandler) Initiate(c echo.Context) error {
	var body initiatePaymentRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	reservationID, err := uuid.Parse(body.ReservationID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}

	res, err := h.Payments.InitiatePayment(c.Request().Context(), reservationID, body.Email, body.Amount, body.Method)
	if err != nil {
		return h.writePaymentError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":               "payment initialized successfully",
		"authorization_url":     res.AuthorizationURL,
		"transaction_reference": res.TransactionRef,
	})
}

// Verify handles GET /api/payments/verify/:reference.
func (h *PaymentHandler) Verify(c echo.Context) error {
	reference := c.Param("reference")
	if reference == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "transaction reference is required"})
	}

	status, err := h.Payments.VerifyPayment(c.Request().Context(), reference)
	if err != nil {
		return h.writePaymentError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":               "payment verified",
		"transaction_reference": reference,
		"payment_status":        status,
	})
}

func (h *PaymentHandler) writePaymentError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, payment.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment details"})
	case errors.Is(err, payment.ErrReservationNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	case errors.Is(err, payment.ErrPaymentNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
	case errors.Is(err, payment.ErrGateway):
		h.Log.Error().Err(err).Msg("payment gateway call failed")
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "payment provider unavailable"})
	default:
		h.Log.Error().Err(err).Msg("payment request failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}
