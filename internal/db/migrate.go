package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// duplicates are tolerated so the full list can re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Singleton preferences row; id is pinned to 1 so ensure-defaults can
	// use INSERT OR IGNORE instead of check-then-insert.
	`CREATE TABLE IF NOT EXISTS settings (
		id                    INTEGER PRIMARY KEY CHECK(id = 1),
		dayparts_json         TEXT NOT NULL,
		default_focus_minutes INTEGER NOT NULL DEFAULT 45 CHECK(default_focus_minutes >= 1),
		default_break_minutes INTEGER NOT NULL DEFAULT 5 CHECK(default_break_minutes >= 1),
		notifications_enabled INTEGER NOT NULL DEFAULT 1,
		sound_enabled         INTEGER NOT NULL DEFAULT 1,
		created_at            TEXT NOT NULL,
		updated_at            TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id                 TEXT PRIMARY KEY,
		title              TEXT NOT NULL,
		estimate_pomodoros INTEGER NOT NULL DEFAULT 1 CHECK(estimate_pomodoros >= 1),
		note               TEXT NOT NULL DEFAULT '',
		status             TEXT NOT NULL DEFAULT 'active'
		                   CHECK(status IN ('active','done')),
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	// task_id is a weak back-reference: no cascade, sessions outlive tasks.
	`CREATE TABLE IF NOT EXISTS sessions (
		id              TEXT PRIMARY KEY,
		kind            TEXT NOT NULL CHECK(kind IN ('focus','break')),
		task_id         TEXT REFERENCES tasks(id),
		title           TEXT NOT NULL DEFAULT '',
		note            TEXT NOT NULL DEFAULT '',
		start_at        TEXT NOT NULL,
		end_at          TEXT,
		planned_minutes INTEGER NOT NULL CHECK(planned_minutes >= 1),
		actual_minutes  INTEGER,
		state           TEXT NOT NULL DEFAULT 'planned'
		                CHECK(state IN ('planned','running','completed','skipped','aborted')),
		date            TEXT NOT NULL,
		daypart_name    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_start ON sessions(start_at)`,

	`CREATE TABLE IF NOT EXISTS pause_cards (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		daily_quota INTEGER NOT NULL DEFAULT 1 CHECK(daily_quota >= 0),
		is_joker    INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS pause_card_uses (
		id            TEXT PRIMARY KEY,
		pause_card_id TEXT NOT NULL REFERENCES pause_cards(id),
		date          TEXT NOT NULL,
		session_id    TEXT NOT NULL REFERENCES sessions(id),
		used_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_pause_card_uses_card_date ON pause_card_uses(pause_card_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_pause_card_uses_date ON pause_card_uses(date)`,

	`CREATE TABLE IF NOT EXISTS daily_states (
		date              TEXT PRIMARY KEY,
		pause_due_minutes INTEGER NOT NULL DEFAULT 0 CHECK(pause_due_minutes >= 0)
	)`,
}
