package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/costariann/gye-nyame-hotel/internal/booking"
	"github.com/costariann/gye-nyame-hotel/internal/queue"
	queue_publisher "github.com/costariann/gye-nyame-hotel/internal/service"
)

// ReservationHandler exposes the reservation lifecycle over HTTP and
// publishes confirmation events for the audit consumer.
type ReservationHandler struct {
	Booking   *booking.Service
	RabbitURL string
	Log       zerolog.Logger
}

type createReservationRequest struct {
	RoomID     string `json:"room_id"`
	RoomType   string `json:"room_type"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	GuestPhone string `json:"guest_phone"`
	CheckIn    string `json:"check_in_date"`
	CheckOut   string `json:"check_out_date"`
	GuestCount int    `json:"guest_count"`
}

// Create handles POST /api/reservations.
func (h *ReservationHandler) Create(c echo.Context) error {
	var body createReservationRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	roomID, err := uuid.Parse(body.RoomID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	checkIn, err1 := parseDate(body.CheckIn)
	checkOut, err2 := parseDate(body.CheckOut)
	if err1 != nil || err2 != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "dates must be in YYYY-MM-DD format"})
	}

	created, err := h.Booking.CreateReservation(c.Request().Context(), booking.CreateReservationRequest{
		RoomID:     roomID,
		RoomType:   body.RoomType,
		GuestName:  body.GuestName,
		GuestEmail: body.GuestEmail,
		GuestPhone: body.GuestPhone,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		GuestCount: body.GuestCount,
	})
	if err != nil {
		return h.writeBookingError(c, err)
	}

	h.publishConfirmed(queue.ReservationConfirmedEvent{
		ReservationID: created.ID.String(),
		RoomID:        created.RoomID.String(),
		RoomType:      body.RoomType,
		GuestName:     created.GuestName,
		CheckIn:       created.CheckIn.Format(dateLayout),
		CheckOut:      created.CheckOut.Format(dateLayout),
		GuestCount:    created.GuestCount,
		TotalAmount:   created.TotalAmount.String(),
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"message":            "reservation created successfully",
		"reservationDetails": created,
	})
}

// Get handles GET /api/reservations/:id.
func (h *ReservationHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	det, err := h.Booking.GetReservation(c.Request().Context(), id)
	if err != nil {
		return h.writeBookingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reservationDetails": det})
}

// List handles GET /api/reservations with optional room_id and status
// filters.
func (h *ReservationHandler) List(c echo.Context) error {
	var f booking.ListFilter
	if raw := c.QueryParam("room_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
		}
		f.RoomID = id
	}
	f.Status = c.QueryParam("status")

	items, err := h.Booking.ListReservations(c.Request().Context(), f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch reservations"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": items})
}

// Cancel handles POST /api/reservations/:id/cancel.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	if err := h.Booking.CancelReservation(c.Request().Context(), id); err != nil {
		return h.writeBookingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "reservation cancelled successfully"})
}

func (h *ReservationHandler) writeBookingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidInput), errors.Is(err, booking.ErrDateRangeInvalid):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, booking.ErrRoomNotFound), errors.Is(err, booking.ErrReservationNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, booking.ErrCapacityExceeded):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, booking.ErrRoomUnavailable), errors.Is(err, booking.ErrAlreadyCancelled):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		h.Log.Error().Err(err).Msg("reservation request failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}

// publishConfirmed sends the confirmation event. Publishing is best
// effort: the reservation is already committed, so a broker outage
// only costs the audit record.
func (h *ReservationHandler) publishConfirmed(ev queue.ReservationConfirmedEvent) {
	if h.RabbitURL == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := queue_publisher.PublishReservationConfirmed(ctx, h.RabbitURL, ev); err != nil {
			h.Log.Warn().Err(err).Str("reservation_id", ev.ReservationID).Msg("failed to publish reservation event")
		}
	}()
}
