package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dtran/taskwise/internal/model"
)

const statsColumns = `user_id, total_points, current_streak, longest_streak,
	tasks_completed_today, tasks_completed_total, last_activity_date, level,
	updated_at`

// GetUserStats returns the user's stats snapshot, lazily creating a zeroed
// row (no points, no streak, level 1, no activity date) if none exists.
func (s *SQLiteStore) GetUserStats(ctx context.Context, userID string) (*model.UserStats, error) {
	var st *model.UserStats

	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		st, err = getOrCreateStatsTx(ctx, tx, userID, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

// getOrCreateStatsTx loads the stats row inside tx, inserting a zeroed row
// first if the user has none yet.
func getOrCreateStatsTx(
	ctx context.Context,
	tx *sqlx.Tx,
	userID string,
	now time.Time,
) (*model.UserStats, error) {
	var st model.UserStats
	err := tx.GetContext(ctx, &st,
		"SELECT "+statsColumns+" FROM user_stats WHERE user_id = ?", userID)
	if err == nil {
		return &st, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("getting stats for user %s: %w", userID, err)
	}

	st = model.UserStats{
		UserID:    userID,
		Level:     1,
		UpdatedAt: now.UTC(),
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO user_stats (user_id, level, updated_at)
		VALUES (?, 1, ?)`,
		st.UserID, st.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("initializing stats for user %s: %w", userID, err)
	}
	return &st, nil
}

// saveStatsTx writes the full stats row back inside tx. Callers hold the
// row from getOrCreateStatsTx in the same transaction, so the
// read-modify-write cannot interleave with a racing completion.
func saveStatsTx(ctx context.Context, tx *sqlx.Tx, st *model.UserStats) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE user_stats SET
			total_points = ?, current_streak = ?, longest_streak = ?,
			tasks_completed_today = ?, tasks_completed_total = ?,
			last_activity_date = ?, level = ?, updated_at = ?
		WHERE user_id = ?`,
		st.TotalPoints, st.CurrentStreak, st.LongestStreak,
		st.TasksCompletedToday, st.TasksCompletedTotal,
		st.LastActivityDate, st.Level, st.UpdatedAt,
		st.UserID,
	)
	if err != nil {
		return fmt.Errorf("saving stats for user %s: %w", st.UserID, err)
	}
	return nil
}
