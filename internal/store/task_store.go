package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dtran/taskwise/internal/model"
	"github.com/dtran/taskwise/internal/stats"
)

const taskColumns = `id, user_id, title, description, completed, priority,
	due_date, task_order, created_at, completed_at`

// ListTasks returns all tasks owned by the user, sorted by order ascending
// with ties broken by creation time descending (newest first among equal
// orders).
func (s *SQLiteStore) ListTasks(ctx context.Context, userID string) ([]model.Task, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT "+taskColumns+` FROM tasks
		WHERE user_id = ?
		ORDER BY task_order ASC, created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// CreateTask inserts a new task for the user. The order value is assigned
// as max+1 over the user's live rows inside the insert transaction; freed
// values are never reused, so deletions leave permanent gaps.
func (s *SQLiteStore) CreateTask(
	ctx context.Context,
	userID string,
	in model.NewTask,
) (*model.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	priority := in.Priority
	if priority < model.PriorityHigh || priority > model.PriorityLow {
		priority = model.PriorityMedium
	}

	dueDate, err := normalizeDueDate(in.DueDate)
	if err != nil {
		return nil, err
	}

	task := model.Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: in.Description,
		Priority:    priority,
		DueDate:     dueDate,
		CreatedAt:   s.now().UTC(),
	}

	err = s.withTx(ctx, func(tx *sqlx.Tx) error {
		var maxOrder int
		err := tx.GetContext(ctx, &maxOrder,
			"SELECT COALESCE(MAX(task_order), 0) FROM tasks WHERE user_id = ?",
			userID)
		if err != nil {
			return fmt.Errorf("getting max task order: %w", err)
		}
		task.Order = maxOrder + 1

		_, err = tx.ExecContext(ctx, `
			INSERT INTO tasks (
				id, user_id, title, description, completed, priority,
				due_date, task_order, created_at, completed_at
			) VALUES (?, ?, ?, ?, 0, ?, ?, ?, ?, NULL)`,
			task.ID, task.UserID, task.Title, task.Description,
			task.Priority, task.DueDate, task.Order, task.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("creating task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}

// GetTask retrieves a single task scoped to its owner. A task owned by a
// different user yields ErrNotFound, same as a missing id.
func (s *SQLiteStore) GetTask(ctx context.Context, taskID, userID string) (*model.Task, error) {
	row := s.db.QueryRowxContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = ? AND user_id = ?",
		taskID, userID)

	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting task %s: %w", taskID, err)
	}
	return &task, nil
}

// UpdateTask applies only the supplied fields. The write is scoped to
// (id, user_id), so an update against another user's task matches zero
// rows; the scoped re-read afterwards turns that into ErrNotFound.
func (s *SQLiteStore) UpdateTask(
	ctx context.Context,
	taskID, userID string,
	upd model.TaskUpdate,
) (*model.Task, error) {
	var sets []string
	var args []interface{}

	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title is required", ErrValidation)
		}
		sets = append(sets, "title = ?")
		args = append(args, title)
	}
	if upd.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.Priority != nil {
		if *upd.Priority < model.PriorityHigh || *upd.Priority > model.PriorityLow {
			return nil, fmt.Errorf("%w: priority must be between 1 and 3", ErrValidation)
		}
		sets = append(sets, "priority = ?")
		args = append(args, *upd.Priority)
	}
	if upd.DueDate != nil {
		dueDate, err := normalizeDueDate(upd.DueDate)
		if err != nil {
			return nil, err
		}
		sets = append(sets, "due_date = ?")
		args = append(args, dueDate)
	}

	if len(sets) > 0 {
		args = append(args, taskID, userID)
		_, err := s.db.ExecContext(ctx,
			"UPDATE tasks SET "+strings.Join(sets, ", ")+" WHERE id = ? AND user_id = ?",
			args...)
		if err != nil {
			return nil, fmt.Errorf("updating task %s: %w", taskID, err)
		}
	}

	return s.GetTask(ctx, taskID, userID)
}

// DeleteTask removes a task scoped to its owner and reports whether a row
// was actually removed.
func (s *SQLiteStore) DeleteTask(ctx context.Context, taskID, userID string) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = ? AND user_id = ?", taskID, userID)
	if err != nil {
		return false, fmt.Errorf("deleting task %s: %w", taskID, err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

// ReorderTasks applies all (id, order) pairs as one transaction: either
// every listed task the user owns receives its new order, or none do.
// Entries referencing tasks owned by another user match zero rows and are
// silently skipped.
func (s *SQLiteStore) ReorderTasks(
	ctx context.Context,
	userID string,
	orders []model.TaskOrder,
) error {
	if len(orders) == 0 {
		return nil
	}

	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		stmt, err := tx.PreparexContext(ctx,
			"UPDATE tasks SET task_order = ? WHERE id = ? AND user_id = ?")
		if err != nil {
			return fmt.Errorf("preparing reorder statement: %w", err)
		}
		defer stmt.Close()

		for _, o := range orders {
			if _, err := stmt.ExecContext(ctx, o.Order, o.ID, userID); err != nil {
				return fmt.Errorf("reordering task %s: %w", o.ID, err)
			}
		}
		return nil
	})
}

// SetTaskCompleted sets the completion flag and manages completed_at in
// the same write: set on the transition to completed, cleared on the
// transition back. The transition into completed also applies the stats
// award inside the same transaction, so the task flag and the stats row
// commit or roll back together. Toggling to the state the task is already
// in is a no-op.
func (s *SQLiteStore) SetTaskCompleted(
	ctx context.Context,
	taskID, userID string,
	completed bool,
) (*model.Task, error) {
	var task model.Task

	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		row := tx.QueryRowxContext(ctx,
			"SELECT "+taskColumns+" FROM tasks WHERE id = ? AND user_id = ?",
			taskID, userID)

		t, err := scanTask(row)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("getting task %s: %w", taskID, err)
		}

		if t.Completed == completed {
			task = t
			return nil
		}

		now := s.now()
		if completed {
			completedAt := now.UTC()
			_, err = tx.ExecContext(ctx,
				"UPDATE tasks SET completed = 1, completed_at = ? WHERE id = ?",
				completedAt, t.ID)
			if err != nil {
				return fmt.Errorf("completing task %s: %w", t.ID, err)
			}
			t.Completed = true
			t.CompletedAt = &completedAt

			st, err := getOrCreateStatsTx(ctx, tx, userID, now)
			if err != nil {
				return err
			}
			stats.Apply(st, now)
			if err := saveStatsTx(ctx, tx, st); err != nil {
				return err
			}
		} else {
			_, err = tx.ExecContext(ctx,
				"UPDATE tasks SET completed = 0, completed_at = NULL WHERE id = ?",
				t.ID)
			if err != nil {
				return fmt.Errorf("reopening task %s: %w", t.ID, err)
			}
			t.Completed = false
			t.CompletedAt = nil
		}

		task = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}

// normalizeDueDate validates an optional calendar date. An empty or
// whitespace value clears the date (stored as NULL).
func normalizeDueDate(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	d := strings.TrimSpace(*raw)
	if d == "" {
		return nil, nil
	}
	if _, err := time.Parse(model.DateLayout, d); err != nil {
		return nil, fmt.Errorf("%w: due date must be formatted as %s", ErrValidation, model.DateLayout)
	}
	return &d, nil
}

// rowScanner is satisfied by both sqlx.Row and sqlx.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanTask scans a task row in taskColumns order.
func scanTask(row rowScanner) (model.Task, error) {
	var (
		task         model.Task
		completedInt int
		dueDate      *string
		completedAt  *time.Time
	)

	err := row.Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&completedInt, &task.Priority,
		&dueDate, &task.Order, &task.CreatedAt, &completedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	task.Completed = completedInt != 0
	task.DueDate = dueDate
	task.CompletedAt = completedAt
	return task, nil
}
