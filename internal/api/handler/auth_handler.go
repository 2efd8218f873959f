package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newsroom/news-api/internal/api/metrics"
	"github.com/newsroom/news-api/internal/core/ports"
)

type AuthHandler struct {
	accounts ports.AccountService
}

func NewAuthHandler(accounts ports.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authenticateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register creates a new account and returns a bearer token for it.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  tokenResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tok, err := h.accounts.Register(c.Request().Context(), req.Email, req.Username, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "failure").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	return c.JSON(http.StatusCreated, tokenResponse{Token: tok})
}

// Authenticate verifies credentials and returns a fresh bearer token.
//
// @Summary      Authenticate with username and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authenticateRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /auth/authenticate [post]
func (h *AuthHandler) Authenticate(c echo.Context) error {
	var req authenticateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tok, err := h.accounts.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("authenticate", "failure").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("authenticate", "success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: tok})
}
