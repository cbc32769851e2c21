package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/costariann/gye-nyame-hotel/internal/model"
	"github.com/costariann/gye-nyame-hotel/internal/repository"
)

// DiscountHandler manages room discounts (admin only).
type DiscountHandler struct {
	Store *repository.Store
}

type createDiscountRequest struct {
	RoomType  string          `json:"room_type"`
	Type      string          `json:"discount_type"`
	Value     decimal.Decimal `json:"discount_value"`
	PromoCode string          `json:"promo_code"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
}

// Create handles POST /api/discounts (admin). The room is addressed
// by its type, matching how rooms are provisioned.
func (h *DiscountHandler) Create(c echo.Context) error {
	var body createDiscountRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.RoomType) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room type is required"})
	}
	if body.Type != model.DiscountPercentage && body.Type != model.DiscountFixed {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "discount type must be percentage or fixed"})
	}
	if !body.Value.IsPositive() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "discount value must be a positive number"})
	}
	if body.Type == model.DiscountPercentage && body.Value.GreaterThan(decimal.NewFromInt(100)) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "percentage discount cannot exceed 100"})
	}
	start, err1 := parseDate(body.StartDate)
	end, err2 := parseDate(body.EndDate)
	if err1 != nil || err2 != nil || end.Before(start) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid discount date range"})
	}

	ctx := c.Request().Context()
	room, err := h.Store.RoomByType(ctx, body.RoomType)
	if errors.Is(err, sql.ErrNoRows) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to look up room"})
	}

	d := &model.Discount{
		ID:        uuid.New(),
		RoomID:    room.ID,
		Type:      body.Type,
		Value:     body.Value,
		PromoCode: body.PromoCode,
		StartDate: start,
		EndDate:   end,
		Active:    true,
	}
	if err := h.Store.CreateDiscount(ctx, d); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create discount"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":         "discount created successfully",
		"discountDetails": d,
	})
}
