package model

import "time"

// Task priority levels (lower number = higher priority).
const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

// DateLayout is the wire and storage format for calendar dates
// (due dates and activity dates carry no time component).
const DateLayout = "2006-01-02"

// Task is a single task owned by one user.
//
// Order is a per-user integer controlling display sequence. It is not
// guaranteed contiguous or unique: creation assigns max+1 among the user's
// live rows, deletions leave gaps, and bulk reordering writes
// caller-supplied values.
type Task struct {
	ID          string     `json:"id" db:"id"`
	UserID      string     `json:"userId" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description,omitempty" db:"description"`
	Completed   bool       `json:"completed" db:"completed"`
	Priority    int        `json:"priority" db:"priority"`
	DueDate     *string    `json:"dueDate,omitempty" db:"due_date"`
	Order       int        `json:"order" db:"task_order"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	CompletedAt *time.Time `json:"completedAt,omitempty" db:"completed_at"`
}

// NewTask carries the fields accepted when creating a task.
type NewTask struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    int     `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

// TaskUpdate is a typed partial update. Nil means "leave unchanged".
// An empty-string DueDate clears the due date. Completion is not part of
// this set; it goes through the completion toggle so the stats effect
// cannot be bypassed.
type TaskUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *int    `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

// IsZero reports whether the update contains no fields.
func (u TaskUpdate) IsZero() bool {
	return u.Title == nil && u.Description == nil && u.Priority == nil && u.DueDate == nil
}

// TaskOrder is one entry of a bulk reorder request.
type TaskOrder struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}
