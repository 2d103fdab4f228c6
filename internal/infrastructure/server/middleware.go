package server

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/core/internal/application/services"
	"github.com/taskboard/core/internal/domain/entities"
)

// userIDKey is the request-scoped binding for the authenticated user id. It
// lives on the echo context, so it is created and discarded per request.
const userIDKey = "user_id"

// requireAuth extracts and verifies the bearer token on every protected
// route. The header must be exactly two whitespace-delimited parts with a
// case-insensitive "Bearer" scheme; token errors propagate unchanged so the
// error handler can distinguish expired from invalid.
func (s *Server) requireAuth(authService *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return &entities.UnauthorizedError{Message: "authorization required"}
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return &entities.UnauthorizedError{Message: "authorization header must be 'Bearer <token>'"}
			}

			userID, err := authService.VerifyToken(parts[1])
			if err != nil {
				s.logger.LogSecurityEvent("invalid_token", 0, c.RealIP(), map[string]interface{}{
					"error": err.Error(),
				})
				return err
			}

			c.Set(userIDKey, userID)

			return next(c)
		}
	}
}
