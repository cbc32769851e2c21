package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/costariann/gye-nyame-hotel/internal/booking"
	"github.com/costariann/gye-nyame-hotel/internal/model"
	"github.com/costariann/gye-nyame-hotel/internal/repository"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

// RoomHandler serves public room browsing, availability search and
// admin room provisioning.
type RoomHandler struct {
	Store   *repository.Store
	Booking *booking.Service
}

// ListRooms handles GET /api/rooms: every room with its booked date
// ranges.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	rooms, err := h.Store.ListRooms(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch rooms"})
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": rooms})
}

// GetRoom handles GET /api/rooms/:id.
func (h *RoomHandler) GetRoom(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	listing, err := h.Store.GetRoomListing(c.Request().Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch room"})
	}
	return c.JSON(http.StatusOK, echo.Map{"roomDetails": listing})
}

// SearchRooms handles GET /api/rooms/search?checkIn=&checkOut=&guests=.
// It returns the rooms free for the whole range with the total price
// for the stay, active discounts applied.
func (h *RoomHandler) SearchRooms(c echo.Context) error {
	checkIn, err1 := parseDate(c.QueryParam("checkIn"))
	checkOut, err2 := parseDate(c.QueryParam("checkOut"))
	guests, err3 := parsePositiveInt(c.QueryParam("guests"))
	if err1 != nil || err2 != nil || err3 != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing or invalid search parameters"})
	}

	quotes, err := h.Booking.SearchAvailableRooms(c.Request().Context(), checkIn, checkOut, guests)
	if errors.Is(err, booking.ErrDateRangeInvalid) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": booking.ErrDateRangeInvalid.Error()})
	}
	if errors.Is(err, booking.ErrInvalidInput) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "guests must be a positive number"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to search rooms"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"rooms": quotes,
		"searchParams": echo.Map{
			"checkIn":  checkIn.Format(dateLayout),
			"checkOut": checkOut.Format(dateLayout),
			"guests":   guests,
		},
	})
}

// roomRequest is the admin create/update payload.
type roomRequest struct {
	RoomNumber    string          `json:"room_number"`
	RoomType      string          `json:"room_type"`
	Capacity      int             `json:"capacity"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	Amenities     string          `json:"amenities"`
	Status        string          `json:"status"`
}

func (r *roomRequest) validate() string {
	if strings.TrimSpace(r.RoomNumber) == "" || strings.TrimSpace(r.RoomType) == "" {
		return "room number and type are required"
	}
	if r.Capacity <= 0 {
		return "capacity must be a positive number"
	}
	if !r.PricePerNight.IsPositive() {
		return "price per night must be a positive number"
	}
	if r.Status != "" && r.Status != model.RoomAvailable && r.Status != model.RoomUnavailable {
		return "status must be available or unavailable"
	}
	return ""
}

// CreateRoom handles POST /api/rooms (admin).
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var body roomRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if body.Status == "" {
		body.Status = model.RoomAvailable
	}

	room := &model.Room{
		ID:            uuid.New(),
		RoomNumber:    body.RoomNumber,
		RoomType:      body.RoomType,
		Capacity:      body.Capacity,
		PricePerNight: body.PricePerNight,
		Amenities:     body.Amenities,
		Status:        body.Status,
	}
	if err := h.Store.CreateRoom(c.Request().Context(), room); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "room type already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create room"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "room created successfully",
		"roomDetails": room,
	})
}

// UpdateRoom handles PUT /api/rooms/:id (admin).
func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	var body roomRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if body.Status == "" {
		body.Status = model.RoomAvailable
	}

	room := &model.Room{
		ID:            id,
		RoomNumber:    body.RoomNumber,
		RoomType:      body.RoomType,
		Capacity:      body.Capacity,
		PricePerNight: body.PricePerNight,
		Amenities:     body.Amenities,
		Status:        body.Status,
	}
	err = h.Store.UpdateRoom(c.Request().Context(), room)
	if errors.Is(err, sql.ErrNoRows) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}
	if errors.Is(err, repository.ErrDuplicate) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "room type already exists"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update room"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":     "room updated successfully",
		"roomDetails": room,
	})
}

// DeleteRoom handles DELETE /api/rooms/:id (admin). Rooms that
// reservations still reference cannot be removed.
func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	err = h.Store.DeleteRoom(c.Request().Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}
	if errors.Is(err, repository.ErrConflict) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "room has reservations and cannot be deleted"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete room"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "room deleted successfully"})
}
