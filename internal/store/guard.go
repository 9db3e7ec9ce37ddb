package store

import "github.com/alexanderramin/workboard/internal/domain"

// Guard validates a candidate order against the other orders already booked
// on its work center. A non-nil error rejects the mutation.
type Guard interface {
	Check(existing []domain.WorkOrder, candidate domain.WorkOrder) error
}

// NoOverlap rejects any candidate that shares a day with an existing order.
type NoOverlap struct{}

func (NoOverlap) Check(existing []domain.WorkOrder, candidate domain.WorkOrder) error {
	var ids []string
	for _, o := range existing {
		if domain.Overlaps(candidate, o) {
			ids = append(ids, o.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return &domain.OverlapError{WorkCenterID: candidate.WorkCenterID, ConflictIDs: ids}
}
