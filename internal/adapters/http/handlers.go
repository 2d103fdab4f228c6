// Package http contains the echo handlers. Handlers stay thin: bind, parse
// params, delegate to a service and serialize the result. Domain errors are
// returned as-is and mapped to the error envelope by the server's central
// error handler.
package http

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/core/internal/domain/entities"
)

// userIDKey is where the auth middleware binds the authenticated user id for
// the lifetime of the request.
const userIDKey = "user_id"

// MessageResponse is a simple confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

func currentUserID(c echo.Context) int {
	id, _ := c.Get(userIDKey).(int)
	return id
}

func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 0 {
		return 0, entities.NewValidationError("invalid "+name, name, "integer")
	}
	return id, nil
}

func bindError() error {
	return &entities.ValidationError{Message: "invalid request body"}
}
