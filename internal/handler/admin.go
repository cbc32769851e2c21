package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/costariann/gye-nyame-hotel/internal/repository"
)

// AdminHandler serves back-office reports: every reservation, every
// payment, and aggregate booking stats.
type AdminHandler struct {
	Store *repository.Store
}

// ListReservations handles GET /api/admin/reservations.
func (h *AdminHandler) ListReservations(c echo.Context) error {
	items, err := h.Store.AdminListReservations(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch reservations"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": items})
}

// ListPayments handles GET /api/admin/payments.
func (h *AdminHandler) ListPayments(c echo.Context) error {
	items, err := h.Store.ListPaymentDetails(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch payments"})
	}
	return c.JSON(http.StatusOK, echo.Map{"payments": items})
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.Store.ReservationStats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch stats"})
	}
	return c.JSON(http.StatusOK, echo.Map{"stats": stats})
}
