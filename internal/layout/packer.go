// Package layout assigns work orders to visual lanes inside a work center
// row so that no two orders sharing a lane overlap.
package layout

import (
	"slices"
	"time"

	"github.com/alexanderramin/workboard/internal/domain"
)

// Placement pairs a work order with its lane index within its row.
type Placement struct {
	Order domain.WorkOrder
	Lane  int
}

// Pack assigns lanes with greedy first-fit by start date. Orders are sorted
// by Start, ties keeping input order, and each takes the lowest lane whose
// orders it does not overlap. First-fit on start-sorted input is not
// guaranteed to use the minimum number of lanes for every input; the result
// is deterministic for a given start-sorted order.
//
// The returned placements follow the sorted order. orders is not modified.
// An order with Start after End yields an unspecified lane.
func Pack(orders []domain.WorkOrder) []Placement {
	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b domain.WorkOrder) int {
		return domain.DateOf(a.Start).Compare(domain.DateOf(b.Start))
	})

	// lanes[i] holds the orders already placed in lane i.
	var lanes [][]domain.WorkOrder
	placements := make([]Placement, 0, len(sorted))
	for _, o := range sorted {
		lane := firstFit(lanes, o)
		if lane == len(lanes) {
			lanes = append(lanes, nil)
		}
		lanes[lane] = append(lanes[lane], o)
		placements = append(placements, Placement{Order: o, Lane: lane})
	}
	return placements
}

func firstFit(lanes [][]domain.WorkOrder, o domain.WorkOrder) int {
	for i, lane := range lanes {
		if !slices.ContainsFunc(lane, func(existing domain.WorkOrder) bool {
			return domain.Overlaps(o, existing)
		}) {
			return i
		}
	}
	return len(lanes)
}

// MaxLane returns the highest lane index used, or 0 for no placements.
func MaxLane(placements []Placement) int {
	maxLane := 0
	for _, p := range placements {
		maxLane = max(maxLane, p.Lane)
	}
	return maxLane
}

// LaneCount returns the number of distinct lanes used.
func LaneCount(placements []Placement) int {
	if len(placements) == 0 {
		return 0
	}
	return MaxLane(placements) + 1
}

// RowHeight is the pixel height of a work center row. An empty row still
// reserves one lane.
func RowHeight(placements []Placement, laneHeight, padding int) int {
	return (MaxLane(placements)+1)*laneHeight + padding
}

// Depth returns the largest number of orders active on any single day.
// Any valid lane assignment needs at least Depth lanes.
func Depth(orders []domain.WorkOrder) int {
	type event struct {
		at    time.Time
		delta int
	}
	events := make([]event, 0, 2*len(orders))
	for _, o := range orders {
		events = append(events, event{domain.DateOf(o.Start), +1}, event{domain.DateOf(o.End), -1})
	}
	// Ends are inclusive, so a start on the same day as an end must count
	// before that end is released.
	slices.SortFunc(events, func(a, b event) int {
		if c := a.at.Compare(b.at); c != 0 {
			return c
		}
		return b.delta - a.delta
	})

	active, deepest := 0, 0
	for _, e := range events {
		active += e.delta
		deepest = max(deepest, active)
	}
	return deepest
}
