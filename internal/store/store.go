package store

import (
	"context"
	"errors"

	"github.com/dtran/taskwise/internal/model"
)

// Sentinel errors surfaced to callers. The boundary layer maps these to
// response statuses with errors.Is.
var (
	// ErrNotFound is returned when a row does not exist for the caller.
	// A task owned by a different user is indistinguishable from a
	// missing one; writes scoped to the wrong owner match zero rows and
	// never touch (or reveal) the other user's data.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when registering an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrValidation is returned for malformed input (empty title, bad
	// date, out-of-range priority).
	ErrValidation = errors.New("validation failed")
)

// Store defines the persistence interface for users, tasks, and the
// per-user gamification state.
type Store interface {
	// === Users ===

	// CreateUser inserts the user and its zeroed stats row as one
	// transaction; a user is never visible without a stats row reachable
	// by later stats reads.
	CreateUser(ctx context.Context, email, passwordHash string, displayName *string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)

	// === Tasks ===

	ListTasks(ctx context.Context, userID string) ([]model.Task, error)
	CreateTask(ctx context.Context, userID string, in model.NewTask) (*model.Task, error)
	GetTask(ctx context.Context, taskID, userID string) (*model.Task, error)
	UpdateTask(ctx context.Context, taskID, userID string, upd model.TaskUpdate) (*model.Task, error)
	DeleteTask(ctx context.Context, taskID, userID string) (bool, error)
	ReorderTasks(ctx context.Context, userID string, orders []model.TaskOrder) error

	// SetTaskCompleted flips the completion flag and, on the transition
	// into completed, applies the stats award in the same transaction.
	SetTaskCompleted(ctx context.Context, taskID, userID string, completed bool) (*model.Task, error)

	// === Stats ===

	// GetUserStats returns the current snapshot, lazily creating a
	// zeroed row if none exists yet.
	GetUserStats(ctx context.Context, userID string) (*model.UserStats, error)

	Close() error
}
