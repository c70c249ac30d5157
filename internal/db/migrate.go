package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS regions (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		pto_days   INTEGER NOT NULL DEFAULT 0,
		holidays   INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS roles (
		id        TEXT PRIMARY KEY,
		name      TEXT NOT NULL,
		focus_pct INTEGER NOT NULL DEFAULT 100
	)`,

	`CREATE TABLE IF NOT EXISTS people (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		avatar     TEXT NOT NULL DEFAULT '',
		color      TEXT NOT NULL DEFAULT '',
		region_id  TEXT REFERENCES regions(id) ON DELETE SET NULL,
		role_id    TEXT REFERENCES roles(id) ON DELETE SET NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		start_date     TEXT,
		end_date       TEXT,
		status         TEXT NOT NULL
		               CHECK(status IN ('planned','in_progress','done','at_risk')),
		confidence     TEXT NOT NULL
		               CHECK(confidence IN ('low','medium','high')),
		type           TEXT NOT NULL DEFAULT '',
		estimate_days  REAL NOT NULL DEFAULT 0,
		ice_impact     REAL NOT NULL DEFAULT 0,
		ice_confidence REAL NOT NULL DEFAULT 0,
		ice_effort     REAL NOT NULL DEFAULT 0,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS project_assignees (
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		person_id   TEXT NOT NULL REFERENCES people(id) ON DELETE CASCADE,
		order_index INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (project_id, person_id)
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_dates ON projects(start_date, end_date)`,
	`CREATE INDEX IF NOT EXISTS idx_assignees_person ON project_assignees(person_id)`,
}
