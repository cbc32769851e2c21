// Package router wires handlers onto the Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/costariann/gye-nyame-hotel/internal/config"
	"github.com/costariann/gye-nyame-hotel/internal/handler"
	"github.com/costariann/gye-nyame-hotel/internal/middleware"
)

// Deps carries everything the route table needs.
type Deps struct {
	Health      *handler.HealthHandler
	Auth        *handler.AuthHandler
	Rooms       *handler.RoomHandler
	Reservation *handler.ReservationHandler
	Payments    *handler.PaymentHandler
	Discounts   *handler.DiscountHandler
	Admin       *handler.AdminHandler

	JWTSecret string
	RateLimit config.RateLimitConfig
	Redis     *redis.Client
}

// Register mounts all routes. Booking and payment endpoints sit behind
// the Redis rate limiter; back-office routes require an admin JWT.
func Register(e *echo.Echo, d Deps) {
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	api := e.Group("/api")
	api.GET("/health", d.Health.Health)

	auth := api.Group("/auth")
	auth.POST("/signup", d.Auth.Signup)
	auth.POST("/signin", d.Auth.Signin)
	auth.GET("/verify", d.Auth.Verify, middleware.JWTAuth(d.JWTSecret))

	limited := middleware.RateLimit(d.RateLimit, d.Redis)

	api.GET("/rooms", d.Rooms.ListRooms)
	api.GET("/rooms/search", d.Rooms.SearchRooms, limited)
	api.GET("/rooms/:id", d.Rooms.GetRoom)

	api.POST("/reservations", d.Reservation.Create, limited)
	api.GET("/reservations", d.Reservation.List)
	api.GET("/reservations/:id", d.Reservation.Get)
	api.POST("/reservations/:id/cancel", d.Reservation.Cancel, limited)

	api.POST("/payments/initiate", d.Payments.Initiate, limited)
	api.GET("/payments/verify/:reference", d.Payments.Verify, limited)

	admin := api.Group("/admin", middleware.JWTAuth(d.JWTSecret))
	admin.POST("/rooms", d.Rooms.CreateRoom)
	admin.PUT("/rooms/:id", d.Rooms.UpdateRoom)
	admin.DELETE("/rooms/:id", d.Rooms.DeleteRoom)
	admin.POST("/discounts", d.Discounts.Create)
	admin.GET("/reservations", d.Admin.ListReservations)
	admin.GET("/payments", d.Admin.ListPayments)
	admin.GET("/stats", d.Admin.Stats)
}
