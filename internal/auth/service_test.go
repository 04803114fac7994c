package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dtran/taskwise/internal/auth"
	"github.com/dtran/taskwise/internal/store"
	"github.com/dtran/taskwise/tests/testutil"
)

const testSecret = "test-secret"

func newTestService(t *testing.T) (*auth.Service, store.Store) {
	t.Helper()

	st := testutil.NewTestStore(t)
	return auth.NewService(st, testSecret), st
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	name := "Alice"
	profile, token, err := svc.Register(ctx, "Alice@Example.com", "s3cret", &name)
	if err != nil {
		t.Fatalf("registering: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token from registration")
	}
	if profile.Email != "alice@example.com" {
		t.Errorf("expected normalized email, got %q", profile.Email)
	}
	if profile.DisplayName == nil || *profile.DisplayName != "Alice" {
		t.Errorf("expected display name Alice, got %v", profile.DisplayName)
	}

	got, _, err := svc.Login(ctx, "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("logging in: %v", err)
	}
	if got.ID != profile.ID {
		t.Errorf("login returned a different user: %s vs %s", got.ID, profile.ID)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "", "pw", nil); !errors.Is(err, store.ErrValidation) {
		t.Errorf("expected ErrValidation for empty email, got %v", err)
	}
	if _, _, err := svc.Register(ctx, "a@example.com", "", nil); !errors.Is(err, store.ErrValidation) {
		t.Errorf("expected ErrValidation for empty password, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "a@example.com", "pw", nil); err != nil {
		t.Fatalf("registering: %v", err)
	}
	if _, _, err := svc.Register(ctx, "a@example.com", "pw2", nil); !errors.Is(err, store.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "a@example.com", "pw", nil); err != nil {
		t.Fatalf("registering: %v", err)
	}

	if _, _, err := svc.Login(ctx, "a@example.com", "wrong"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "pw"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestVerifyToken(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	profile, token, err := svc.Register(ctx, "a@example.com", "pw", nil)
	if err != nil {
		t.Fatalf("registering: %v", err)
	}

	got, err := svc.VerifyToken(ctx, token)
	if err != nil {
		t.Fatalf("verifying token: %v", err)
	}
	if got.ID != profile.ID || got.Email != profile.Email {
		t.Errorf("expected profile %+v, got %+v", profile, got)
	}
}

func TestVerifyTokenRejectsForeignSecret(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "a@example.com", "pw", nil); err != nil {
		t.Fatalf("registering: %v", err)
	}

	other := auth.NewService(st, "a-different-secret")
	_, token, err := other.Login(ctx, "a@example.com", "pw")
	if err != nil {
		t.Fatalf("logging in via other service: %v", err)
	}

	if _, err := svc.VerifyToken(ctx, token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	profile, _, err := svc.Register(ctx, "a@example.com", "pw", nil)
	if err != nil {
		t.Fatalf("registering: %v", err)
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		UserID: profile.ID,
		Email:  profile.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	})
	token, err := expired.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, err := svc.VerifyToken(ctx, token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyTokenRejectsVanishedUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	ghost := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		UserID: "no-such-user",
		Email:  "ghost@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := ghost.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	if _, err := svc.VerifyToken(ctx, token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for vanished user, got %v", err)
	}
}
