package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/costariann/gye-nyame-hotel/internal/repository"
)

// HealthHandler reports service and database liveness for load
// balancers and monitoring.
type HealthHandler struct {
	Store *repository.Store
}

// Health handles GET /api/health. It pings the database and reports
// the connection state.
func (h *HealthHandler) Health(c echo.Context) error {
	if err := h.Store.DB().PingContext(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status":   "unhealthy",
			"database": "disconnected",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":   "healthy",
		"database": "connected",
	})
}
