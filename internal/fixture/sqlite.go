package fixture

import (
	"context"
	"fmt"

	"github.com/alexanderramin/workboard/internal/db"
)

// ReadSQLite reads a seed from the work_centers and work_orders tables.
// Rows come back in insertion order so the board keeps its layout. Only the
// columns listed below are read; other columns are ignored.
func ReadSQLite(ctx context.Context, q db.DBTX) (*SeedSchema, error) {
	schema := &SeedSchema{}

	rows, err := q.QueryContext(ctx, `SELECT id, name FROM work_centers ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing work centers: %w", err)
	}
	for rows.Next() {
		var c WorkCenterSeed
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning work center: %w", err)
		}
		schema.WorkCenters = append(schema.WorkCenters, c)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("listing work centers: %w", err)
	}
	rows.Close()

	rows, err = q.QueryContext(ctx, `SELECT id, work_center_id, name, status, start_date, end_date
		FROM work_orders ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing work orders: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var o WorkOrderSeed
		if err := rows.Scan(&o.ID, &o.WorkCenterID, &o.Name, &o.Status, &o.StartDate, &o.EndDate); err != nil {
			return nil, fmt.Errorf("scanning work order: %w", err)
		}
		schema.WorkOrders = append(schema.WorkOrders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing work orders: %w", err)
	}

	return schema, nil
}

// WriteSQLite stores a seed into an empty seed database, in seed order.
// Callers wanting all-or-nothing pass a transaction.
func WriteSQLite(ctx context.Context, q db.DBTX, schema *SeedSchema) error {
	for _, c := range schema.WorkCenters {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO work_centers (id, name) VALUES (?, ?)`,
			c.ID, c.Name,
		); err != nil {
			return fmt.Errorf("inserting work center %s: %w", c.ID, err)
		}
	}
	for _, o := range schema.WorkOrders {
		status := o.Status
		if status == "" {
			status = "open"
		}
		if _, err := q.ExecContext(ctx,
			`INSERT INTO work_orders (id, work_center_id, name, status, start_date, end_date)
			VALUES (?, ?, ?, ?, ?, ?)`,
			o.ID, o.WorkCenterID, o.Name, status, o.StartDate, o.EndDate,
		); err != nil {
			return fmt.Errorf("inserting work order %s: %w", o.ID, err)
		}
	}
	return nil
}
