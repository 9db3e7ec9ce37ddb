package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(id string, start, end time.Time) WorkOrder {
	return WorkOrder{ID: id, WorkCenterID: "wc-1", Name: id, Status: StatusOpen, Start: start, End: end}
}

func TestOverlaps(t *testing.T) {
	a := order("a", Date(2025, 12, 20), Date(2025, 12, 26))
	cases := []struct {
		name    string
		other   WorkOrder
		overlap bool
	}{
		{"disjoint after", order("b", Date(2025, 12, 28), Date(2026, 1, 2)), false},
		{"disjoint before", order("b", Date(2025, 12, 1), Date(2025, 12, 19)), false},
		{"partial", order("c", Date(2025, 12, 24), Date(2025, 12, 29)), true},
		{"touching end", order("d", Date(2025, 12, 26), Date(2025, 12, 30)), true},
		{"touching start", order("e", Date(2025, 12, 15), Date(2025, 12, 20)), true},
		{"contained", order("f", Date(2025, 12, 22), Date(2025, 12, 23)), true},
		{"containing", order("g", Date(2025, 12, 1), Date(2026, 1, 31)), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlap, Overlaps(a, tc.other))
			assert.Equal(t, tc.overlap, Overlaps(tc.other, a), "predicate must be symmetric")
		})
	}
}

func TestPatchApply_OnlySetFields(t *testing.T) {
	w := order("wo-1", Date(2025, 12, 20), Date(2025, 12, 26))
	name := "Renamed"
	end := time.Date(2025, 12, 28, 15, 30, 0, 0, time.UTC)

	got := Patch{Name: &name, End: &end}.Apply(w)

	assert.Equal(t, "wo-1", got.ID)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, StatusOpen, got.Status)
	assert.Equal(t, Date(2025, 12, 20), got.Start)
	assert.Equal(t, Date(2025, 12, 28), got.End, "end is truncated to its date")
	assert.Equal(t, "wc-1", got.WorkCenterID)
}

func TestPatchIsEmpty(t *testing.T) {
	assert.True(t, Patch{}.IsEmpty())
	s := StatusBlocked
	assert.False(t, Patch{Status: &s}.IsEmpty())
}

func TestWorkOrderStatusIsValid(t *testing.T) {
	for _, s := range []WorkOrderStatus{StatusOpen, StatusPlanned, StatusInProgress, StatusComplete, StatusBlocked} {
		assert.True(t, s.IsValid(), "status=%s", s)
	}
	assert.False(t, WorkOrderStatus("done").IsValid())
	assert.False(t, WorkOrderStatus("").IsValid())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-01-02")
	require.NoError(t, err)
	assert.Equal(t, Date(2026, 1, 2), d)
	assert.Equal(t, "2026-01-02", FormatDate(d))

	_, err = ParseDate("01/02/2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestOverlapErrorMatchesSentinel(t *testing.T) {
	var err error = &OverlapError{WorkCenterID: "wc-1", ConflictIDs: []string{"wo-1", "wo-2"}}
	assert.True(t, errors.Is(err, ErrOverlap))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "work center wc-1 already booked by wo-1, wo-2", err.Error())
}
