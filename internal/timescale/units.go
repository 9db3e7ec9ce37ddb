package timescale

import (
	"iter"
	"time"

	"github.com/alexanderramin/workboard/internal/domain"
)

// Step returns the start of the unit following t. Months advance to the
// first day of the next calendar month.
func Step(ts Timescale, t time.Time) time.Time {
	switch ts {
	case Week:
		return t.AddDate(0, 0, 7)
	case Month:
		y, m, _ := t.Date()
		return domain.Date(y, m+1, 1)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// Units yields unit boundaries from start while they are not after end.
// Each call to the returned sequence starts over from start.
func Units(ts Timescale, start, end time.Time) iter.Seq[time.Time] {
	start, end = domain.DateOf(start), domain.DateOf(end)
	return func(yield func(time.Time) bool) {
		for cur := start; !cur.After(end); cur = Step(ts, cur) {
			if !yield(cur) {
				return
			}
		}
	}
}

// UnitSlice collects Units.
func UnitSlice(ts Timescale, start, end time.Time) []time.Time {
	var out []time.Time
	for u := range Units(ts, start, end) {
		out = append(out, u)
	}
	return out
}

// UnitsBetween counts whole units from a to b using calendar arithmetic:
// days for Day, days/7 for Week, calendar months for Month. The result is
// negative when b precedes a.
func UnitsBetween(ts Timescale, a, b time.Time) int {
	a, b = domain.DateOf(a), domain.DateOf(b)
	switch ts {
	case Week:
		return floorDiv(daysBetween(a, b), 7)
	case Month:
		ya, ma, _ := a.Date()
		yb, mb, _ := b.Date()
		return (yb-ya)*12 + int(mb-ma)
	default:
		return daysBetween(a, b)
	}
}

// HeaderSpan is a run of consecutive units sharing a month caption.
type HeaderSpan struct {
	Label string
	Span  int
}

// HeaderSpans run-length encodes the month captions of units.
func HeaderSpans(units []time.Time) []HeaderSpan {
	var spans []HeaderSpan
	for _, u := range units {
		label := HeaderLabel(u)
		if n := len(spans); n > 0 && spans[n-1].Label == label {
			spans[n-1].Span++
			continue
		}
		spans = append(spans, HeaderSpan{Label: label, Span: 1})
	}
	return spans
}

// daysBetween relies on a and b being UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

func floorDiv(n, d int) int {
	q := n / d
	if (n%d != 0) && ((n < 0) != (d < 0)) {
		q--
	}
	return q
}
