package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"work_centers", "work_orders"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}

	var idx string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_work_orders_center'`).Scan(&idx)
	require.NoError(t, err)
}

func TestSchema_RejectsInvertedDates(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO work_centers (id, name) VALUES ('wc-1', 'Extrusion Line A')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO work_orders (id, work_center_id, name, start_date, end_date)
		VALUES ('wo-1', 'wc-1', 'Order A', '2025-12-26', '2025-12-20')`)
	assert.Error(t, err)
}

func TestSchema_RejectsUnknownStatus(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO work_centers (id, name) VALUES ('wc-1', 'Extrusion Line A')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO work_orders (id, work_center_id, name, status, start_date, end_date)
		VALUES ('wo-1', 'wc-1', 'Order A', 'done', '2025-12-20', '2025-12-26')`)
	assert.Error(t, err)
}

func TestSchema_EnforcesWorkCenterReference(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO work_orders (id, work_center_id, name, start_date, end_date)
		VALUES ('wo-1', 'wc-missing', 'Order A', '2025-12-20', '2025-12-26')`)
	assert.Error(t, err)
}
