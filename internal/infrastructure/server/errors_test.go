package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/taskboard/core/internal/domain/entities"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", entities.NewValidationError("name is required", "name", "required"), http.StatusBadRequest, codeValidation},
		{"bad credentials", entities.ErrInvalidCredentials, http.StatusUnauthorized, codeAuthentication},
		{"expired token", entities.ErrTokenExpired, http.StatusUnauthorized, codeTokenExpired},
		{"invalid token", entities.ErrInvalidToken, http.StatusUnauthorized, codeInvalidToken},
		{"unauthorized", &entities.UnauthorizedError{Message: "authorization required"}, http.StatusUnauthorized, codeUnauthorized},
		{"forbidden", &entities.ForbiddenError{}, http.StatusForbidden, codeForbidden},
		{"not found", &entities.NotFoundError{Resource: "board", ID: 3}, http.StatusNotFound, codeNotFound},
		{"database", &entities.DatabaseError{Op: "get board", Err: errors.New("conn refused")}, http.StatusInternalServerError, codeDatabase},
		{"routing miss", echo.NewHTTPError(http.StatusNotFound), http.StatusNotFound, codeNotFound},
		{"method not allowed", echo.NewHTTPError(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed, codeMethodNotAllowed},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, codeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := mapError(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantCode, body.Code)
		})
	}
}

func TestMapErrorSanitizesDatabaseCause(t *testing.T) {
	_, body := mapError(&entities.DatabaseError{Op: "get board", Err: errors.New("password=hunter2")})
	assert.NotContains(t, body.Message, "hunter2")
}

func TestMapErrorNotFoundDetails(t *testing.T) {
	_, body := mapError(&entities.NotFoundError{Resource: "list", ID: 12})
	assert.Equal(t, "list not found", body.Message)
	assert.Equal(t, "list", body.Details["resource"])
	assert.Equal(t, 12, body.Details["id"])
}
