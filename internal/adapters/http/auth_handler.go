package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/core/internal/application/services"
	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/ports"
)

// AuthHandler handles registration, login and token verification requests.
type AuthHandler struct {
	authService *services.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req ports.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

// LoginResponse carries the session token together with the account.
type LoginResponse struct {
	Token string         `json:"token"`
	User  *entities.User `json:"user"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: token, User: user})
}

// VerifyResponse reports a valid session and its account.
type VerifyResponse struct {
	Valid bool           `json:"valid"`
	User  *entities.User `json:"user"`
}

// Verify handles GET /auth/verify. The auth middleware has already resolved
// the token; this just echoes the account back. A token whose account has
// since been deleted is treated as invalid, not as a missing resource.
func (h *AuthHandler) Verify(c echo.Context) error {
	user, err := h.authService.GetUser(c.Request().Context(), currentUserID(c))
	if err != nil {
		var nfe *entities.NotFoundError
		if errors.As(err, &nfe) {
			return entities.ErrInvalidToken
		}
		return err
	}

	return c.JSON(http.StatusOK, VerifyResponse{Valid: true, User: user})
}
