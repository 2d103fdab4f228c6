package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/logger"
)

// Machine-readable error codes carried in every error response.
const (
	codeValidation       = "VALIDATION_ERROR"
	codeAuthentication   = "AUTHENTICATION_ERROR"
	codeTokenExpired     = "TOKEN_EXPIRED"
	codeInvalidToken     = "INVALID_TOKEN"
	codeUnauthorized     = "UNAUTHORIZED"
	codeForbidden        = "FORBIDDEN"
	codeNotFound         = "NOT_FOUND"
	codeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	codeDatabase         = "DATABASE_ERROR"
	codeInternal         = "INTERNAL_ERROR"
)

// ErrorBody is the inner object of the error envelope.
type ErrorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorEnvelope is the uniform error response shape.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// errorHandler maps the domain error taxonomy onto the error envelope.
// Infrastructure failures are logged with their cause but serialized with a
// sanitized message.
func errorHandler(appLogger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := mapError(err)

		if status >= http.StatusInternalServerError {
			appLogger.Errorw("Request failed",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, ErrorEnvelope{Error: body})
		}
		if writeErr != nil {
			appLogger.Errorw("Error sending response", "error", writeErr)
		}
	}
}

func mapError(err error) (int, ErrorBody) {
	var (
		validationErr   *entities.ValidationError
		notFoundErr     *entities.NotFoundError
		forbiddenErr    *entities.ForbiddenError
		unauthorizedErr *entities.UnauthorizedError
		databaseErr     *entities.DatabaseError
		httpErr         *echo.HTTPError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, ErrorBody{
			Code:    codeValidation,
			Message: validationErr.Message,
			Details: validationErr.Details,
		}

	case errors.Is(err, entities.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrorBody{
			Code:    codeAuthentication,
			Message: entities.ErrInvalidCredentials.Error(),
		}

	case errors.Is(err, entities.ErrTokenExpired):
		return http.StatusUnauthorized, ErrorBody{
			Code:    codeTokenExpired,
			Message: entities.ErrTokenExpired.Error(),
		}

	case errors.Is(err, entities.ErrInvalidToken):
		return http.StatusUnauthorized, ErrorBody{
			Code:    codeInvalidToken,
			Message: entities.ErrInvalidToken.Error(),
		}

	case errors.As(err, &unauthorizedErr):
		return http.StatusUnauthorized, ErrorBody{
			Code:    codeUnauthorized,
			Message: unauthorizedErr.Message,
		}

	case errors.As(err, &forbiddenErr):
		return http.StatusForbidden, ErrorBody{
			Code:    codeForbidden,
			Message: forbiddenErr.Error(),
		}

	case errors.As(err, &notFoundErr):
		details := map[string]interface{}{"resource": notFoundErr.Resource}
		if notFoundErr.ID != 0 {
			details["id"] = notFoundErr.ID
		}
		return http.StatusNotFound, ErrorBody{
			Code:    codeNotFound,
			Message: notFoundErr.Error(),
			Details: details,
		}

	case errors.As(err, &databaseErr):
		return http.StatusInternalServerError, ErrorBody{
			Code:    codeDatabase,
			Message: "internal database error",
		}

	case errors.As(err, &httpErr):
		return mapHTTPError(httpErr)

	default:
		return http.StatusInternalServerError, ErrorBody{
			Code:    codeInternal,
			Message: "internal server error",
		}
	}
}

// mapHTTPError covers errors raised by echo itself, routing misses included.
func mapHTTPError(httpErr *echo.HTTPError) (int, ErrorBody) {
	message := http.StatusText(httpErr.Code)
	if s, ok := httpErr.Message.(string); ok {
		message = s
	}

	var code string
	switch httpErr.Code {
	case http.StatusBadRequest:
		code = codeValidation
	case http.StatusUnauthorized:
		code = codeUnauthorized
	case http.StatusForbidden:
		code = codeForbidden
	case http.StatusNotFound:
		code = codeNotFound
		message = "resource not found"
	case http.StatusMethodNotAllowed:
		code = codeMethodNotAllowed
		message = "method not allowed"
	default:
		code = codeInternal
		if httpErr.Code >= http.StatusInternalServerError {
			message = "internal server error"
		}
	}

	return httpErr.Code, ErrorBody{Code: code, Message: message}
}
