package domain

import "time"

// WorkOrder is one scheduled occupancy of a work center. Start and End are
// inclusive civil dates.
type WorkOrder struct {
	ID           string
	WorkCenterID string
	Name         string
	Status       WorkOrderStatus
	Start        time.Time
	End          time.Time
}

type WorkCenter struct {
	ID   string
	Name string
}

// Patch carries the fields an update replaces. Nil fields keep their
// previous value.
type Patch struct {
	Name         *string
	Status       *WorkOrderStatus
	Start        *time.Time
	End          *time.Time
	WorkCenterID *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Status == nil && p.Start == nil && p.End == nil && p.WorkCenterID == nil
}

// Apply returns a copy of w with the patch fields applied. The ID is never
// changed.
func (p Patch) Apply(w WorkOrder) WorkOrder {
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.Status != nil {
		w.Status = *p.Status
	}
	if p.Start != nil {
		w.Start = DateOf(*p.Start)
	}
	if p.End != nil {
		w.End = DateOf(*p.End)
	}
	if p.WorkCenterID != nil {
		w.WorkCenterID = *p.WorkCenterID
	}
	return w
}

// Overlaps reports whether two work orders share at least one day. Touching
// endpoints count as overlapping.
func Overlaps(a, b WorkOrder) bool {
	return SpanOverlaps(a.Start, a.End, b)
}

// SpanOverlaps reports whether the closed range [start, end] shares at least
// one calendar day with o. Each time is compared by its own calendar date, so
// the clock part and location never change the answer.
func SpanOverlaps(start, end time.Time, o WorkOrder) bool {
	return !DateOf(start).After(DateOf(o.End)) && !DateOf(o.Start).After(DateOf(end))
}
