package timescale

import (
	"testing"
	"time"

	"github.com/alexanderramin/workboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(y int, m time.Month, day int) time.Time { return domain.Date(y, m, day) }

func TestParse(t *testing.T) {
	for _, s := range []string{"day", "week", "month"} {
		ts, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, Timescale(s), ts)
	}
	_, err := Parse("year")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year")
}

func TestStep(t *testing.T) {
	assert.Equal(t, d(2026, 1, 1), Step(Day, d(2025, 12, 31)))
	assert.Equal(t, d(2026, 1, 4), Step(Week, d(2025, 12, 28)))
	assert.Equal(t, d(2026, 2, 1), Step(Month, d(2026, 1, 31)), "month steps to the first of next month")
	assert.Equal(t, d(2026, 1, 1), Step(Month, d(2025, 12, 15)))
}

func TestUnits_DayInclusiveOfEnd(t *testing.T) {
	units := UnitSlice(Day, d(2025, 12, 30), d(2026, 1, 2))
	assert.Equal(t, []time.Time{d(2025, 12, 30), d(2025, 12, 31), d(2026, 1, 1), d(2026, 1, 2)}, units)
}

func TestUnits_MonthIsCalendarAccurate(t *testing.T) {
	units := UnitSlice(Month, d(2025, 12, 3), d(2026, 3, 10))
	assert.Equal(t, []time.Time{d(2025, 12, 3), d(2026, 1, 1), d(2026, 2, 1), d(2026, 3, 1)}, units)
}

func TestUnits_Restartable(t *testing.T) {
	seq := Units(Week, d(2025, 12, 1), d(2025, 12, 31))
	var first, second []time.Time
	for u := range seq {
		first = append(first, u)
	}
	for u := range seq {
		second = append(second, u)
	}
	assert.Len(t, first, 5)
	assert.Equal(t, first, second)
}

func TestUnits_EarlyBreak(t *testing.T) {
	n := 0
	for range Units(Day, d(2025, 1, 1), d(2025, 12, 31)) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestUnits_EmptyWhenStartAfterEnd(t *testing.T) {
	assert.Empty(t, UnitSlice(Day, d(2025, 2, 1), d(2025, 1, 1)))
}

func TestUnitsBetween(t *testing.T) {
	cases := []struct {
		name string
		ts   Timescale
		a, b time.Time
		want int
	}{
		{"day same", Day, d(2025, 12, 20), d(2025, 12, 20), 0},
		{"day forward", Day, d(2025, 12, 20), d(2026, 1, 2), 13},
		{"day backward", Day, d(2025, 12, 20), d(2025, 12, 18), -2},
		{"week partial floors", Week, d(2025, 12, 1), d(2025, 12, 13), 1},
		{"week backward floors", Week, d(2025, 12, 10), d(2025, 12, 9), -1},
		{"month same month", Month, d(2025, 12, 3), d(2025, 12, 31), 0},
		{"month across year", Month, d(2025, 12, 31), d(2026, 1, 1), 1},
		{"month february", Month, d(2026, 1, 15), d(2026, 3, 1), 2},
		{"month backward", Month, d(2026, 1, 15), d(2025, 11, 30), -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, UnitsBetween(tc.ts, tc.a, tc.b))
		})
	}
}

func TestUnitsBetween_IgnoresClockTime(t *testing.T) {
	a := time.Date(2025, 12, 20, 23, 0, 0, 0, time.UTC)
	b := time.Date(2025, 12, 21, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, UnitsBetween(Day, a, b))
}

func TestHeaderSpans(t *testing.T) {
	units := UnitSlice(Day, d(2025, 12, 29), d(2026, 1, 3))
	spans := HeaderSpans(units)
	assert.Equal(t, []HeaderSpan{
		{Label: "December 2025", Span: 3},
		{Label: "January 2026", Span: 3},
	}, spans)
	assert.Empty(t, HeaderSpans(nil))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Mon 29", Label(Day, d(2025, 12, 29)))
	assert.Equal(t, "W1", Label(Week, d(2025, 12, 29)), "ISO week of Dec 29 2025 is week 1 of 2026")
	assert.Equal(t, "Dec 2025", Label(Month, d(2025, 12, 29)))
}
