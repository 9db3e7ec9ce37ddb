package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the seed schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS work_centers (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS work_orders (
		id             TEXT PRIMARY KEY,
		work_center_id TEXT NOT NULL REFERENCES work_centers(id) ON DELETE CASCADE,
		name           TEXT NOT NULL,
		status         TEXT NOT NULL DEFAULT 'open'
		               CHECK(status IN ('open','planned','in-progress','complete','blocked')),
		start_date     TEXT NOT NULL,
		end_date       TEXT NOT NULL,
		CHECK(start_date <= end_date)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_work_orders_center ON work_orders(work_center_id)`,
}
