package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costariann/gye-nyame-hotel/internal/config"
	"github.com/costariann/gye-nyame-hotel/internal/middleware"
)

func limiterConfig() config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:  true,
		Requests: 2,
		Window:   time.Minute,
		Prefix:   "rl",
	}
}

func limiterKey(cfg config.RateLimitConfig, ip, path string) string {
	window := time.Now().Unix() / int64(cfg.Window/time.Second)
	return fmt.Sprintf("%s:%s:%s:%d", cfg.Prefix, ip, path, window)
}

func rateLimitedCall(t *testing.T, mw echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/reservations")

	h := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	require.NoError(t, mw(h)(c))
	return rec
}

func TestRateLimit_UnderLimit(t *testing.T) {
	cfg := limiterConfig()
	rdb, mock := redismock.NewClientMock()
	key := limiterKey(cfg, "192.0.2.1", "/api/reservations")
	mock.ExpectIncr(key).SetVal(1)
	mock.ExpectExpire(key, cfg.Window).SetVal(true)

	rec := rateLimitedCall(t, middleware.RateLimit(cfg, rdb))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimit_OverLimit(t *testing.T) {
	cfg := limiterConfig()
	rdb, mock := redismock.NewClientMock()
	key := limiterKey(cfg, "192.0.2.1", "/api/reservations")
	mock.ExpectIncr(key).SetVal(3)

	rec := rateLimitedCall(t, middleware.RateLimit(cfg, rdb))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestRateLimit_RedisDownFailsOpen(t *testing.T) {
	cfg := limiterConfig()
	rdb, mock := redismock.NewClientMock()
	key := limiterKey(cfg, "192.0.2.1", "/api/reservations")
	mock.ExpectIncr(key).SetErr(fmt.Errorf("connection refused"))

	rec := rateLimitedCall(t, middleware.RateLimit(cfg, rdb))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	cfg := limiterConfig()
	cfg.Enabled = false

	rec := rateLimitedCall(t, middleware.RateLimit(cfg, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
