package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/costariann/gye-nyame-hotel/internal/booking"
	"github.com/costariann/gye-nyame-hotel/internal/config"
	"github.com/costariann/gye-nyame-hotel/internal/database"
	"github.com/costariann/gye-nyame-hotel/internal/handler"
	"github.com/costariann/gye-nyame-hotel/internal/payment"
	"github.com/costariann/gye-nyame-hotel/internal/queue"
	"github.com/costariann/gye-nyame-hotel/internal/repository"
	"github.com/costariann/gye-nyame-hotel/internal/router"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "gye-nyame-hotel").Logger()
	if cfg.Env == "dev" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	store := repository.NewStore(db)
	bookingSvc := booking.NewService(store, logger)
	gateway := payment.NewPaystackClient(cfg.PaystackBaseURL, cfg.PaystackSecret)
	paymentSvc := payment.NewService(store, gateway, logger)

	rdb := config.NewRedisClient()
	rateCfg := config.LoadRateLimitConfig()

	if cfg.RabbitURL != "" {
		go queue.StartReservationConsumer(cfg.RabbitURL, logger)
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, router.Deps{
		Health:      &handler.HealthHandler{Store: store},
		Auth:        &handler.AuthHandler{Store: store, JWTSecret: cfg.JWTSecret, AccessTTLMin: cfg.AccessTTLMin, BcryptCost: cfg.BcryptCost},
		Rooms:       &handler.RoomHandler{Store: store, Booking: bookingSvc},
		Reservation: &handler.ReservationHandler{Booking: bookingSvc, RabbitURL: cfg.RabbitURL, Log: logger},
		Payments:    &handler.PaymentHandler{Payments: paymentSvc, Log: logger},
		Discounts:   &handler.DiscountHandler{Store: store},
		Admin:       &handler.AdminHandler{Store: store},
		JWTSecret:   cfg.JWTSecret,
		RateLimit:   rateCfg,
		Redis:       rdb,
	})

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
