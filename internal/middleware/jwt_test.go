package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costariann/gye-nyame-hotel/internal/middleware"
	"github.com/costariann/gye-nyame-hotel/internal/utils"
)

const testSecret = "test-secret"

func protectedEcho() (*echo.Echo, echo.HandlerFunc) {
	e := echo.New()
	h := func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"user_id": c.Get("user_id"),
			"role":    c.Get("role"),
		})
	}
	return e, h
}

func TestJWTAuth_ValidToken(t *testing.T) {
	e, h := protectedEcho()
	userID := uuid.New()
	tok, err := utils.NewAccessToken(testSecret, userID, "admin", 60)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = middleware.JWTAuth(testSecret)(h)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.Contains(t, rec.Body.String(), "admin")
}

func TestJWTAuth_MissingToken(t *testing.T) {
	e, h := protectedEcho()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := middleware.JWTAuth(testSecret)(h)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "access token required")
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	e, h := protectedEcho()
	tok, err := utils.NewAccessToken("other-secret", uuid.New(), "admin", 60)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = middleware.JWTAuth(testSecret)(h)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	e, h := protectedEcho()
	tok, err := utils.NewAccessToken(testSecret, uuid.New(), "admin", -1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = middleware.JWTAuth(testSecret)(h)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
