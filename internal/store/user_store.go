package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dtran/taskwise/internal/model"
)

// CreateUser inserts a new user together with its zeroed stats row.
// Both inserts run in one transaction: if the stats insert fails, the user
// insert rolls back, so no user ever exists without a stats row.
func (s *SQLiteStore) CreateUser(
	ctx context.Context,
	email, passwordHash string,
	displayName *string,
) (*model.User, error) {
	user := model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
		CreatedAt:    s.now().UTC(),
	}

	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var count int
		err := tx.GetContext(ctx, &count,
			"SELECT COUNT(*) FROM users WHERE email = ?", email)
		if err != nil {
			return fmt.Errorf("checking email uniqueness: %w", err)
		}
		if count > 0 {
			return ErrDuplicateEmail
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO users (id, email, password_hash, display_name, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			user.ID, user.Email, user.PasswordHash, user.DisplayName, user.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting user: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO user_stats (user_id, level, updated_at)
			VALUES (?, 1, ?)`,
			user.ID, user.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("initializing user stats: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by email. Returns ErrNotFound if no user
// matches.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.GetContext(ctx, &user, `
		SELECT id, email, password_hash, display_name, created_at
		FROM users WHERE email = ?`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID. Returns ErrNotFound if no user matches.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := s.db.GetContext(ctx, &user, `
		SELECT id, email, password_hash, display_name, created_at
		FROM users WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user %s: %w", id, err)
	}
	return &user, nil
}
