package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/core/internal/application/services"
	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/config"
	"github.com/taskboard/core/internal/infrastructure/logger"
)

type emptyUserRepo struct{}

func (emptyUserRepo) Create(context.Context, *entities.User) error { return nil }
func (emptyUserRepo) GetByID(_ context.Context, id int) (*entities.User, error) {
	return nil, &entities.NotFoundError{Resource: "user", ID: id}
}
func (emptyUserRepo) GetByUsername(context.Context, string) (*entities.User, error) {
	return nil, &entities.NotFoundError{Resource: "user"}
}
func (emptyUserRepo) GetByEmail(context.Context, string) (*entities.User, error) {
	return nil, &entities.NotFoundError{Resource: "user"}
}
func (emptyUserRepo) GetByIdentifier(context.Context, string) (*entities.User, error) {
	return nil, &entities.NotFoundError{Resource: "user"}
}

type testValidator struct{ v *validator.Validate }

func (tv *testValidator) Validate(i interface{}) error {
	return tv.v.Struct(i)
}

func newAuthHandlerContext(t *testing.T, method, path, body string) (echo.Context, *AuthHandler) {
	t.Helper()

	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	tokens := services.NewTokenManager(config.JWTConfig{Secret: "test-secret", ExpiresIn: time.Hour})
	authService := services.NewAuthService(emptyUserRepo{}, tokens, logger.NewNop())
	return c, NewAuthHandler(authService, logger.NewNop())
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing password", `{"username":"alice","email":"alice@example.com"}`},
		{"missing username", `{"email":"alice@example.com","password":"longenough"}`},
		{"missing email", `{"username":"alice","password":"longenough"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, h := newAuthHandlerContext(t, http.MethodPost, "/auth/register", tc.body)

			err := h.Register(c)
			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		})
	}
}

func TestLoginRejectsMissingFields(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing password", `{"identifier":"alice"}`},
		{"missing identifier", `{"password":"longenough"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, h := newAuthHandlerContext(t, http.MethodPost, "/auth/login", tc.body)

			err := h.Login(c)
			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		})
	}
}

func TestVerifyDeletedAccount(t *testing.T) {
	// A valid token whose account has been deleted reads as an auth failure,
	// not a missing resource.
	c, h := newAuthHandlerContext(t, http.MethodGet, "/auth/verify", "")
	c.Set(userIDKey, 42)

	err := h.Verify(c)
	assert.ErrorIs(t, err, entities.ErrInvalidToken)
}
