package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/workboard/internal/config"
	"github.com/alexanderramin/workboard/internal/contract"
	"github.com/alexanderramin/workboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp returns an App that loads the built-in board on first command.
func testApp(t *testing.T) *App {
	t.Helper()
	return &App{Config: config.DefaultConfig()}
}

func execute(t *testing.T, app *App, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBoardCmd_JSON(t *testing.T) {
	out, _, err := execute(t, testApp(t), "board", "-o", "json", "--today", "2025-12-25")
	require.NoError(t, err)

	var resp contract.BoardResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "day", resp.Timescale)
	assert.Len(t, resp.Units, 29)
	require.Len(t, resp.Rows, 5)
	assert.Equal(t, "wc-1", resp.Rows[0].WorkCenterID)
	require.NotNil(t, resp.TodayOffset)
	assert.Equal(t, 672, *resp.TodayOffset)
}

func TestBoardCmd_ScaleAndCenters(t *testing.T) {
	out, _, err := execute(t, testApp(t), "board", "-o", "json", "--scale", "week", "--lane-height", "30",
		"--today", "2025-12-25", "--center", "wc-1,wc-3")
	require.NoError(t, err)

	var resp contract.BoardResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "week", resp.Timescale)
	assert.Equal(t, 80, resp.PxPerUnit)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "wc-3", resp.Rows[1].WorkCenterID)
	assert.Equal(t, 30+16, resp.Rows[1].Height)
}

func TestBoardCmd_Table(t *testing.T) {
	out, _, err := execute(t, testApp(t), "board", "--today", "2025-12-25", "--from", "2025-12-15", "--to", "2026-01-10")
	require.NoError(t, err)

	assert.Contains(t, out, "Extrusion Line A")
	assert.Contains(t, out, "Order F")
	assert.Contains(t, out, "2025-12-15")
}

func TestBoardCmd_InvalidFlags(t *testing.T) {
	_, _, err := execute(t, testApp(t), "board", "--scale", "year")
	assert.Error(t, err)

	_, _, err = execute(t, testApp(t), "board", "--from", "12/01/2025")
	assert.Error(t, err)

	_, _, err = execute(t, testApp(t), "board", "-o", "xml")
	assert.Error(t, err)

	_, _, err = execute(t, testApp(t), "board", "--center", "wc-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderListCmd(t *testing.T) {
	out, _, err := execute(t, testApp(t), "orders", "list", "--center", "wc-1", "-o", "json")
	require.NoError(t, err)

	var views []contract.WorkOrderView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 2)
	assert.Equal(t, contract.WorkOrderView{
		ID: "wo-1", WorkCenterID: "wc-1", Name: "Order A", Status: "in-progress",
		StartDate: "2025-12-20", EndDate: "2025-12-26",
	}, views[0])

	out, _, err = execute(t, testApp(t), "orders", "list", "--today", "2025-12-25")
	require.NoError(t, err)
	assert.Contains(t, out, "Packaging Line")
}

func TestOrderCheckCmd(t *testing.T) {
	out, _, err := execute(t, testApp(t), "orders", "check", "--center", "wc-1", "--start", "2025-12-26", "--end", "2025-12-28")
	require.ErrorIs(t, err, domain.ErrOverlap)
	assert.Contains(t, out, "wo-1, wo-2")

	out, _, err = execute(t, testApp(t), "orders", "check", "--center", "wc-1", "--start", "2025-12-27", "--end", "2025-12-27")
	require.NoError(t, err)
	assert.Contains(t, out, "is free")

	out, _, err = execute(t, testApp(t), "orders", "check", "--center", "wc-1", "--start", "2025-12-20", "--end", "2025-12-27",
		"--exclude", "wo-1", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"overlap": false}`, out)

	_, _, err = execute(t, testApp(t), "orders", "check", "--center", "wc-1", "--start", "2025-12-27")
	assert.Error(t, err, "end is required")

	_, _, err = execute(t, testApp(t), "orders", "check", "--center", "wc-77", "--start", "2025-12-27", "--end", "2025-12-27")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCenterCmd(t *testing.T) {
	out, _, err := execute(t, testApp(t), "centers", "-o", "json")
	require.NoError(t, err)

	var views []centerView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 5)
	assert.Equal(t, centerView{ID: "wc-1", Name: "Extrusion Line A", Orders: 2}, views[0])
	assert.Equal(t, 1, views[4].Orders)
}

func TestApplyCmd(t *testing.T) {
	ops := writeFile(t, "ops.yaml", `ops:
  - op: create
    work_center_id: wc-2
    name: Order G
    status: planned
    start_date: "2026-01-02"
    end_date: "2026-01-04"
  - op: create
    work_center_id: wc-1
    name: Clash
    start_date: "2025-12-21"
    end_date: "2025-12-22"
  - op: delete
    id: wo-5
`)

	out, _, err := execute(t, testApp(t), "apply", ops, "-o", "json", "--today", "2025-12-25")
	require.NoError(t, err)

	var view applyView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	require.Len(t, view.Results, 3)
	assert.Equal(t, contract.OpOK, view.Results[0].Code)
	assert.Equal(t, contract.OpOverlap, view.Results[1].Code)
	assert.Equal(t, contract.OpOK, view.Results[2].Code)

	require.NotNil(t, view.Board)
	assert.Len(t, view.Board.Rows[1].Bars, 2, "created order is on the board")
	assert.Empty(t, view.Board.Rows[3].Bars, "deleted order is gone")
}

func TestApplyCmd_TableWithoutBoard(t *testing.T) {
	ops := writeFile(t, "ops.json", `{"ops": [{"op": "update", "id": "wo-404", "name": "Ghost"}]}`)

	out, _, err := execute(t, testApp(t), "apply", ops, "--board=false")
	require.NoError(t, err)
	assert.Contains(t, out, "NOT_FOUND")
	assert.Contains(t, out, "0 applied, 1 failed")
	assert.NotContains(t, out, "BOARD")
}

func TestApplyCmd_MissingFile(t *testing.T) {
	_, _, err := execute(t, testApp(t), "apply", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSeedCmds_RoundTripThroughBoard(t *testing.T) {
	for _, name := range []string{"board.yaml", "board.json", "board.db"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			out, _, err := execute(t, testApp(t), "seed", "init", path)
			require.NoError(t, err)
			assert.Contains(t, out, "Wrote seed")

			out, _, err = execute(t, testApp(t), "seed", "check", path)
			require.NoError(t, err)
			assert.Contains(t, out, "5 work centers, 6 work orders")

			out, _, err = execute(t, testApp(t), "--seed", path, "centers", "-o", "json")
			require.NoError(t, err)
			var views []centerView
			require.NoError(t, json.Unmarshal([]byte(out), &views))
			assert.Len(t, views, 5)
		})
	}
}

func TestSeedCheckCmd_ReportsErrors(t *testing.T) {
	path := writeFile(t, "bad.yaml", `work_centers:
  - id: wc-1
    name: Press
work_orders:
  - id: wo-1
    work_center_id: wc-9
    name: Lost
    status: open
    start_date: "2026-01-05"
    end_date: "2026-01-01"
`)

	_, _, err := execute(t, testApp(t), "seed", "check", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown work center")
	assert.Contains(t, err.Error(), "must not be before start_date")
}

func TestRootCmd_LogAndMetrics(t *testing.T) {
	metrics := filepath.Join(t.TempDir(), "workboard.prom")

	_, stderr, err := execute(t, testApp(t), "board", "--log", "--metrics-file", metrics, "--today", "2025-12-25")
	require.NoError(t, err)

	assert.Contains(t, stderr, "use_case=board")
	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `workboard_use_cases_total{outcome="success",use_case="board"} 1`)
	assert.Contains(t, string(data), `workboard_layout_cache_lookups_total{result="miss"} 5`)
}

func TestRootCmd_StrictMode(t *testing.T) {
	app := testApp(t)
	_, _, err := execute(t, app, "--strict", "centers")
	require.NoError(t, err)
	assert.True(t, app.Config.Strict)
	require.NotNil(t, app.Board)
}
