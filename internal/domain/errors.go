package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates no work order or work center has the given ID.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID indicates an insert reused an ID already in the store.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrOverlap indicates a work order would share days with another order
	// on the same work center.
	ErrOverlap = errors.New("overlapping work order")
)

// OverlapError lists the work orders a candidate collides with.
type OverlapError struct {
	WorkCenterID string
	ConflictIDs  []string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("work center %s already booked by %s", e.WorkCenterID, strings.Join(e.ConflictIDs, ", "))
}

func (e *OverlapError) Is(target error) bool {
	return target == ErrOverlap
}
