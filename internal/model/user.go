package model

import "time"

// User is a registered account. The password hash never leaves the store
// and auth layers; handlers only ever see a Profile.
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	DisplayName  *string   `json:"displayName,omitempty" db:"display_name"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Profile is the sanitized projection of a User returned to clients and
// encoded into tokens.
type Profile struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	DisplayName *string `json:"displayName,omitempty"`
}

// Profile returns the sanitized projection of the user.
func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName}
}

// UserStats is the per-user gamification state. At most one row exists per
// user; it is zero-initialized lazily on first need.
//
// Level is always derived from TotalPoints (points/100 + 1) and rewritten
// on every stats mutation, never maintained independently. LongestStreak
// never drops below CurrentStreak.
type UserStats struct {
	UserID              string    `json:"-" db:"user_id"`
	TotalPoints         int       `json:"totalPoints" db:"total_points"`
	CurrentStreak       int       `json:"currentStreak" db:"current_streak"`
	LongestStreak       int       `json:"longestStreak" db:"longest_streak"`
	TasksCompletedToday int       `json:"tasksCompletedToday" db:"tasks_completed_today"`
	TasksCompletedTotal int       `json:"tasksCompletedTotal" db:"tasks_completed_total"`
	LastActivityDate    string    `json:"lastActivityDate,omitempty" db:"last_activity_date"`
	Level               int       `json:"level" db:"level"`
	UpdatedAt           time.Time `json:"-" db:"updated_at"`
}
