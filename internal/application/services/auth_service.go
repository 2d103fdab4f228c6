package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/domain/validation"
	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/ports"
)

// bcryptCost is deliberately above the library default; registration is rare
// enough that the extra work factor is affordable.
const bcryptCost = 12

// AuthService handles registration, login and token verification.
type AuthService struct {
	userRepo ports.UserRepository
	tokens   *TokenManager
	logger   *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo ports.UserRepository, tokens *TokenManager, logger *logger.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a new user account. The plaintext password is hashed with
// bcrypt and never stored or returned.
func (s *AuthService) Register(ctx context.Context, req ports.RegisterRequest) (*entities.User, error) {
	username, err := validation.Username(req.Username)
	if err != nil {
		return nil, err
	}

	email, err := validation.Email(req.Email)
	if err != nil {
		return nil, err
	}

	if err := validation.Password(req.Password); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, entities.NewValidationError("username already taken", "username", "unique")
	} else if !isNotFound(err) {
		return nil, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, entities.NewValidationError("email already registered", "email", "unique")
	} else if !isNotFound(err) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", "user_id", user.ID, "username", user.Username)

	return user, nil
}

// Login verifies credentials and issues a session token. The error is the
// same generic entities.ErrInvalidCredentials whether the identifier is
// unknown or the password is wrong, so responses cannot be used to enumerate
// accounts.
func (s *AuthService) Login(ctx context.Context, req ports.LoginRequest) (string, *entities.User, error) {
	user, err := s.userRepo.GetByIdentifier(ctx, req.Identifier)
	if err != nil {
		if isNotFound(err) {
			s.logger.LogSecurityEvent("login_unknown_identifier", 0, "", map[string]interface{}{
				"identifier": req.Identifier,
			})
			return "", nil, entities.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.LogSecurityEvent("login_bad_password", user.ID, "", nil)
		return "", nil, entities.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("User logged in", "user_id", user.ID)

	return token, user, nil
}

// VerifyToken resolves a bearer token to its user id.
func (s *AuthService) VerifyToken(tokenString string) (int, error) {
	return s.tokens.Verify(tokenString)
}

// GetUser loads the account for an authenticated user id.
func (s *AuthService) GetUser(ctx context.Context, userID int) (*entities.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func isNotFound(err error) bool {
	var nfe *entities.NotFoundError
	return errors.As(err, &nfe)
}
