// Package auth implements the identity service: account creation,
// credential checks, and the signed-token lifecycle.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtran/taskwise/internal/model"
	"github.com/dtran/taskwise/internal/store"
)

var (
	// ErrInvalidCredentials covers both unknown emails and mismatched
	// passwords so a caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken covers bad signatures, expired tokens, and tokens
	// whose encoded user no longer exists.
	ErrInvalidToken = errors.New("invalid token")
)

// TokenTTL is how long issued tokens stay valid.
const TokenTTL = 7 * 24 * time.Hour

// bcryptCost is the password hashing cost factor.
const bcryptCost = 10

// Service issues and verifies identities against the store.
type Service struct {
	store  store.Store
	secret []byte
}

// NewService constructs an identity service signing tokens with secret.
func NewService(st store.Store, secret string) *Service {
	return &Service{store: st, secret: []byte(secret)}
}

// Register creates an account together with its zeroed stats row and
// immediately issues a token for the new identity. Duplicate emails
// surface as store.ErrDuplicateEmail.
func (s *Service) Register(
	ctx context.Context,
	email, password string,
	displayName *string,
) (model.Profile, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return model.Profile{}, "", fmt.Errorf("%w: email and password are required", store.ErrValidation)
	}
	if displayName != nil {
		name := strings.TrimSpace(*displayName)
		if name == "" {
			displayName = nil
		} else {
			displayName = &name
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return model.Profile{}, "", fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, email, string(hash), displayName)
	if err != nil {
		return model.Profile{}, "", err
	}

	token, err := signToken(user.ID, user.Email, s.secret, TokenTTL)
	if err != nil {
		return model.Profile{}, "", fmt.Errorf("signing token: %w", err)
	}
	return user.Profile(), token, nil
}

// Login checks the credentials and, on success, returns the sanitized user
// projection plus a signed token with a 7-day expiry.
func (s *Service) Login(ctx context.Context, email, password string) (model.Profile, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.store.GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return model.Profile{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return model.Profile{}, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return model.Profile{}, "", ErrInvalidCredentials
	}

	token, err := signToken(user.ID, user.Email, s.secret, TokenTTL)
	if err != nil {
		return model.Profile{}, "", fmt.Errorf("signing token: %w", err)
	}
	return user.Profile(), token, nil
}

// VerifyToken validates the token against the configured secret and
// resolves the encoded user. It keeps no state of its own: the result is a
// function of the token, the secret, and the current user row.
func (s *Service) VerifyToken(ctx context.Context, token string) (model.Profile, error) {
	claims, err := parseToken(token, s.secret)
	if err != nil {
		return model.Profile{}, ErrInvalidToken
	}

	user, err := s.store.GetUserByID(ctx, claims.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return model.Profile{}, ErrInvalidToken
	}
	if err != nil {
		return model.Profile{}, err
	}
	return user.Profile(), nil
}
