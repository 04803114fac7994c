// Package stats holds the gamification state machine: points, streaks, and
// level derivation. The transition itself is a pure function so the
// day-boundary rules can be tested without a database or a real clock; the
// store applies it inside the completion transaction.
package stats

import (
	"time"

	"github.com/dtran/taskwise/internal/model"
)

// PointsPerCompletion is the fixed award for completing a task.
const PointsPerCompletion = 10

// PointsPerLevel is the size of one level in points.
const PointsPerLevel = 100

// LevelFor derives the level for a point total.
func LevelFor(totalPoints int) int {
	return totalPoints/PointsPerLevel + 1
}

// Apply mutates s for a single transition into the completed state at the
// given time. It must be invoked exactly once per false→true completion
// transition and never when a task is toggled back to incomplete.
//
// Streak rules, compared against the last activity date:
//   - same calendar day: streak unchanged, today's counter incremented
//   - exactly the previous day: streak extended, today's counter reset to 1
//   - first-ever activity or a gap of two or more days: streak reset to 1
func Apply(s *model.UserStats, now time.Time) {
	today := now.Format(model.DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(model.DateLayout)

	s.TotalPoints += PointsPerCompletion

	switch s.LastActivityDate {
	case today:
		s.TasksCompletedToday++
	case yesterday:
		s.CurrentStreak++
		s.TasksCompletedToday = 1
	default:
		s.CurrentStreak = 1
		s.TasksCompletedToday = 1
	}

	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}

	s.LastActivityDate = today
	s.Level = LevelFor(s.TotalPoints)
	s.TasksCompletedTotal++
	s.UpdatedAt = now.UTC()
}
