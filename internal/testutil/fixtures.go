package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/workboard/internal/domain"
)

var testOrderCounter atomic.Int64

// WorkOrder options
type WorkOrderOption func(*domain.WorkOrder)

func WithID(id string) WorkOrderOption {
	return func(w *domain.WorkOrder) {
		w.ID = id
	}
}

func WithWorkCenter(id string) WorkOrderOption {
	return func(w *domain.WorkOrder) {
		w.WorkCenterID = id
	}
}

func WithStatus(s domain.WorkOrderStatus) WorkOrderOption {
	return func(w *domain.WorkOrder) {
		w.Status = s
	}
}

func WithName(name string) WorkOrderOption {
	return func(w *domain.WorkOrder) {
		w.Name = name
	}
}

// NewTestWorkOrder builds an order on wc-1 spanning the given YYYY-MM-DD
// dates. It panics on malformed dates.
func NewTestWorkOrder(start, end string, opts ...WorkOrderOption) domain.WorkOrder {
	n := testOrderCounter.Add(1)
	w := domain.WorkOrder{
		ID:           fmt.Sprintf("wo-test-%d", n),
		WorkCenterID: "wc-1",
		Name:         fmt.Sprintf("Order %d", n),
		Status:       domain.StatusOpen,
		Start:        MustDate(start),
		End:          MustDate(end),
	}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// MustDate parses a YYYY-MM-DD date or panics.
func MustDate(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DatePtr returns a pointer to the parsed date.
func DatePtr(s string) *time.Time {
	d := MustDate(s)
	return &d
}
