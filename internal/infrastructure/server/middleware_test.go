package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/core/internal/application/services"
	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/config"
	"github.com/taskboard/core/internal/infrastructure/logger"
)

type stubUserRepo struct{}

func (stubUserRepo) Create(context.Context, *entities.User) error { return nil }
func (stubUserRepo) GetByID(_ context.Context, id int) (*entities.User, error) {
	return nil, &entities.NotFoundError{Resource: "user", ID: id}
}
func (stubUserRepo) GetByUsername(context.Context, string) (*entities.User, error) {
	return nil, &entities.NotFoundError{Resource: "user"}
}
func (stubUserRepo) GetByEmail(context.Context, string) (*entities.User, error) {
	return nil, &entities.NotFoundError{Resource: "user"}
}
func (stubUserRepo) GetByIdentifier(context.Context, string) (*entities.User, error) {
	return nil, &entities.NotFoundError{Resource: "user"}
}

func newAuthTestServer(t *testing.T, jwtCfg config.JWTConfig) (*echo.Echo, *services.TokenManager) {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = errorHandler(logger.NewNop())

	s := &Server{echo: e, logger: logger.NewNop()}
	tokens := services.NewTokenManager(jwtCfg)
	authService := services.NewAuthService(stubUserRepo{}, tokens, logger.NewNop())

	e.GET("/protected", func(c echo.Context) error {
		return c.String(http.StatusOK, strconv.Itoa(c.Get(userIDKey).(int)))
	}, s.requireAuth(authService))

	return e, tokens
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Error.Code
}

func TestRequireAuthHeaderShapes(t *testing.T) {
	cfg := config.JWTConfig{Secret: "test-secret", ExpiresIn: time.Hour}
	e, tokens := newAuthTestServer(t, cfg)

	token, err := tokens.Issue(42)
	require.NoError(t, err)

	cases := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{"missing header", "", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"wrong scheme", "Token " + token, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"token only", token, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"too many parts", "Bearer " + token + " extra", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized, "INVALID_TOKEN"},
		{"valid", "Bearer " + token, http.StatusOK, ""},
		{"lowercase scheme", "bearer " + token, http.StatusOK, ""},
		{"uppercase scheme", "BEARER " + token, http.StatusOK, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantCode != "" {
				assert.Equal(t, tc.wantCode, decodeErrorCode(t, rec))
			} else {
				assert.Equal(t, "42", rec.Body.String())
			}
		})
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	cfg := config.JWTConfig{Secret: "test-secret", ExpiresIn: -time.Hour}
	e, tokens := newAuthTestServer(t, cfg)

	token, err := tokens.Issue(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_EXPIRED", decodeErrorCode(t, rec))
}

func TestRequireAuthWrongSecret(t *testing.T) {
	e, _ := newAuthTestServer(t, config.JWTConfig{Secret: "test-secret", ExpiresIn: time.Hour})

	foreign := services.NewTokenManager(config.JWTConfig{Secret: "another-secret", ExpiresIn: time.Hour})
	token, err := foreign.Issue(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decodeErrorCode(t, rec))
}
