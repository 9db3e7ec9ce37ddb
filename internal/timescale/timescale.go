// Package timescale maps calendar dates onto the board's horizontal grid for
// the day, week and month zoom levels.
package timescale

import (
	"fmt"
	"time"
)

type Timescale string

const (
	Day   Timescale = "day"
	Week  Timescale = "week"
	Month Timescale = "month"
)

// Config describes one zoom level.
type Config struct {
	PxPerUnit int
	Label     func(time.Time) string
}

var configs = map[Timescale]Config{
	Day: {
		PxPerUnit: 48,
		Label:     func(t time.Time) string { return t.Format("Mon 2") },
	},
	Week: {
		PxPerUnit: 80,
		Label: func(t time.Time) string {
			_, week := t.ISOWeek()
			return fmt.Sprintf("W%d", week)
		},
	},
	Month: {
		PxPerUnit: 140,
		Label:     func(t time.Time) string { return t.Format("Jan 2006") },
	},
}

// Parse converts a flag or config value into a Timescale.
func Parse(s string) (Timescale, error) {
	ts := Timescale(s)
	if _, ok := configs[ts]; !ok {
		return "", fmt.Errorf("invalid timescale %q (expected day, week or month)", s)
	}
	return ts, nil
}

// ConfigFor returns the zoom settings. Unknown scales fall back to Day.
func ConfigFor(ts Timescale) Config {
	if c, ok := configs[ts]; ok {
		return c
	}
	return configs[Day]
}

// Label renders the grid header text for a unit starting at t.
func Label(ts Timescale, t time.Time) string {
	return ConfigFor(ts).Label(t)
}

// HeaderLabel is the month/year caption grouping consecutive units.
func HeaderLabel(t time.Time) string {
	return t.Format("January 2006")
}
