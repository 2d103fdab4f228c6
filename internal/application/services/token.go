package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/config"
)

// Claims is the session token payload. UserID rides alongside the registered
// iat/exp claims.
type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies signed, time-limited session tokens.
type TokenManager struct {
	secret    []byte
	expiresIn time.Duration
	issuer    string
}

// NewTokenManager creates a token manager from the JWT configuration.
func NewTokenManager(cfg config.JWTConfig) *TokenManager {
	return &TokenManager{
		secret:    []byte(cfg.Secret),
		expiresIn: cfg.ExpiresIn,
		issuer:    cfg.Issuer,
	}
}

// Issue produces an HS256-signed token encoding the user id, issued-at and
// expiry (issued-at + configured lifetime, 24h by default).
func (tm *TokenManager) Issue(userID int) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.expiresIn)),
			Issuer:    tm.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature and expiry and returns the encoded user id.
// Expiry is reported as entities.ErrTokenExpired; any other failure,
// including a missing user_id claim, as entities.ErrInvalidToken.
func (tm *TokenManager) Verify(tokenString string) (int, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return tm.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, entities.ErrTokenExpired
		}
		return 0, entities.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return 0, entities.ErrInvalidToken
	}

	return claims.UserID, nil
}
