package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/costariann/gye-nyame-hotel/internal/model"
	"github.com/costariann/gye-nyame-hotel/internal/repository"
	"github.com/costariann/gye-nyame-hotel/internal/utils"
)

// AuthHandler implements admin signup, signin and token verification.
// These accounts gate the provisioning and reporting endpoints only;
// guests never authenticate.
type AuthHandler struct {
	Store        *repository.Store
	JWTSecret    string
	AccessTTLMin int
	BcryptCost   int
}

// Signup handles POST /api/auth/signup. New accounts get the admin
// role, matching the single-role original system.
func (h *AuthHandler) Signup(c echo.Context) error {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Username) == "" || strings.TrimSpace(body.Email) == "" || body.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}

	hash, err := utils.HashPassword(body.Password, h.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create user"})
	}
	user := &model.User{
		ID:           uuid.New(),
		Username:     body.Username,
		Email:        body.Email,
		PasswordHash: hash,
		Role:         "admin",
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.Store.CreateUser(c.Request().Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "username or email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create user"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "user created successfully",
		"user": echo.Map{
			"userId":   user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Signin handles POST /api/auth/signin and returns a signed access
// token on success.
func (h *AuthHandler) Signin(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Email == "" || body.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	user, err := h.Store.UserByEmail(c.Request().Context(), body.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to sign in"})
	}
	if !utils.VerifyPassword(user.PasswordHash, body.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	tok, err := utils.NewAccessToken(h.JWTSecret, user.ID, user.Role, h.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to sign in"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token": tok.Token,
		"user": echo.Map{
			"userId":   user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Verify handles GET /api/auth/verify behind JWTAuth; reaching it at
// all means the token is valid.
func (h *AuthHandler) Verify(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"user": echo.Map{
			"userId": c.Get("user_id"),
			"role":   c.Get("role"),
		},
		"message": "token is valid",
	})
}
