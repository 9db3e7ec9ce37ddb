package timescale

import (
	"time"

	"github.com/alexanderramin/workboard/internal/domain"
)

const (
	// DefaultLaneHeight is the pixel height of one lane in a row.
	DefaultLaneHeight = 40
	// RowPadding is added once per row below its lanes.
	RowPadding = 16
	// BarInset offsets a bar from the top of its lane.
	BarInset = 8
	// DefaultRangeDays is how far the default range reaches on each side of today.
	DefaultRangeDays = 14
)

// Bar is the pixel rectangle of one work order on the grid.
type Bar struct {
	Left  int
	Width int
	Top   int
}

// Offset is the horizontal pixel position of d relative to rangeStart.
func Offset(ts Timescale, rangeStart, d time.Time) int {
	return UnitsBetween(ts, rangeStart, d) * ConfigFor(ts).PxPerUnit
}

// BarFor places an order spanning [start, end] in the given lane. The end
// date is inclusive, so a single-day order is one unit wide.
func BarFor(ts Timescale, rangeStart, start, end time.Time, lane, laneHeight int) Bar {
	px := ConfigFor(ts).PxPerUnit
	return Bar{
		Left:  Offset(ts, rangeStart, start),
		Width: (UnitsBetween(ts, start, end) + 1) * px,
		Top:   lane*laneHeight + BarInset,
	}
}

// TodayOffset returns the marker position for today, or false when today
// lies outside [rangeStart, rangeEnd].
func TodayOffset(ts Timescale, rangeStart, rangeEnd, today time.Time) (int, bool) {
	today = domain.DateOf(today)
	if today.Before(domain.DateOf(rangeStart)) || today.After(domain.DateOf(rangeEnd)) {
		return 0, false
	}
	return Offset(ts, rangeStart, today), true
}

// DefaultRange spans DefaultRangeDays before and after today.
func DefaultRange(today time.Time) (time.Time, time.Time) {
	today = domain.DateOf(today)
	return today.AddDate(0, 0, -DefaultRangeDays), today.AddDate(0, 0, DefaultRangeDays)
}
