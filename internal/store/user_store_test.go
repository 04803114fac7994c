package store

import (
	"context"
	"errors"
	"testing"
)

func TestCreateUserInitializesStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := createTestUser(t, s, "a@example.com")

	// The stats row must exist from the moment the user does, not be
	// lazily created by the first read.
	var count int
	if err := s.db.Get(&count, "SELECT COUNT(*) FROM user_stats WHERE user_id = ?", user.ID); err != nil {
		t.Fatalf("counting stats rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 stats row after signup, got %d", count)
	}

	st, err := s.GetUserStats(ctx, user.ID)
	if err != nil {
		t.Fatalf("getting stats: %v", err)
	}
	if st.TotalPoints != 0 || st.CurrentStreak != 0 || st.Level != 1 || st.LastActivityDate != "" {
		t.Errorf("expected zeroed stats at level 1, got %+v", st)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTestUser(t, s, "a@example.com")

	_, err := s.CreateUser(ctx, "a@example.com", "other-hash", nil)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// The failed signup must not leave a second stats row behind.
	var count int
	if err := s.db.Get(&count, "SELECT COUNT(*) FROM user_stats"); err != nil {
		t.Fatalf("counting stats rows: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 stats row, got %d", count)
	}
}

func TestGetUserByEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := createTestUser(t, s, "a@example.com")

	user, err := s.GetUserByEmail(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("getting user: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("expected id %s, got %s", created.ID, user.ID)
	}

	if _, err := s.GetUserByEmail(ctx, "missing@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown email, got %v", err)
	}
}

func TestGetUserByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := createTestUser(t, s, "a@example.com")

	user, err := s.GetUserByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("getting user: %v", err)
	}
	if user.Email != "a@example.com" {
		t.Errorf("expected email a@example.com, got %s", user.Email)
	}

	if _, err := s.GetUserByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestGetUserStatsLazilyCreatesRow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := createTestUser(t, s, "a@example.com")

	// Simulate a legacy account created before stats rows existed.
	if _, err := s.db.Exec("DELETE FROM user_stats WHERE user_id = ?", user.ID); err != nil {
		t.Fatalf("deleting stats row: %v", err)
	}

	st, err := s.GetUserStats(ctx, user.ID)
	if err != nil {
		t.Fatalf("getting stats: %v", err)
	}
	if st.TotalPoints != 0 || st.Level != 1 {
		t.Errorf("expected zeroed stats at level 1, got %+v", st)
	}

	var count int
	if err := s.db.Get(&count, "SELECT COUNT(*) FROM user_stats WHERE user_id = ?", user.ID); err != nil {
		t.Fatalf("counting stats rows: %v", err)
	}
	if count != 1 {
		t.Errorf("expected the read to recreate the row, got %d rows", count)
	}
}
