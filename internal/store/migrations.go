package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	display_name  TEXT,
	created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS tasks (
	id           TEXT PRIMARY KEY,
	user_id      TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	completed    INTEGER NOT NULL DEFAULT 0 CHECK(completed IN (0, 1)),
	priority     INTEGER NOT NULL DEFAULT 2 CHECK(priority BETWEEN 1 AND 3),
	due_date     TEXT,
	task_order   INTEGER NOT NULL DEFAULT 0,
	created_at   DATETIME NOT NULL,
	completed_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON tasks(user_id);
CREATE INDEX IF NOT EXISTS idx_tasks_user_order ON tasks(user_id, task_order);
CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed);

CREATE TABLE IF NOT EXISTS user_stats (
	user_id               TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
	total_points          INTEGER NOT NULL DEFAULT 0,
	current_streak        INTEGER NOT NULL DEFAULT 0,
	longest_streak        INTEGER NOT NULL DEFAULT 0,
	tasks_completed_today INTEGER NOT NULL DEFAULT 0,
	tasks_completed_total INTEGER NOT NULL DEFAULT 0,
	last_activity_date    TEXT NOT NULL DEFAULT '',
	level                 INTEGER NOT NULL DEFAULT 1,
	updated_at            DATETIME NOT NULL
);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
