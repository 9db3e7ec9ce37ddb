package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for civil dates in seed files and flags.
const DateLayout = "2006-01-02"

// Date returns midnight UTC of the given civil date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf drops the clock part of t, keeping t's calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// ParseDate parses a YYYY-MM-DD string into a UTC civil date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// FormatDate renders t with DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
