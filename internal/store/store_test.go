package store

import (
	"context"
	"testing"
	"time"

	"github.com/dtran/taskwise/internal/model"
)

// newTestStore opens an in-memory store closed when the test completes.
func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})
	return s
}

// createTestUser registers a user directly against the store.
func createTestUser(t *testing.T, s *SQLiteStore, email string) *model.User {
	t.Helper()

	user, err := s.CreateUser(context.Background(), email, "hash", nil)
	if err != nil {
		t.Fatalf("creating user %s: %v", email, err)
	}
	return user
}

// createTestTask inserts a task with the given title for the user.
func createTestTask(t *testing.T, s *SQLiteStore, userID, title string) *model.Task {
	t.Helper()

	task, err := s.CreateTask(context.Background(), userID, model.NewTask{Title: title})
	if err != nil {
		t.Fatalf("creating task %q: %v", title, err)
	}
	return task
}

// setClock pins the store's clock to a fixed instant.
func setClock(s *SQLiteStore, at time.Time) {
	s.now = func() time.Time { return at }
}

func date(t *testing.T, s string) time.Time {
	t.Helper()

	at, err := time.Parse(model.DateLayout, s)
	if err != nil {
		t.Fatalf("parsing date %q: %v", s, err)
	}
	return at
}
