package contract

import (
	"time"

	"github.com/alexanderramin/workboard/internal/domain"
)

// WorkOrderForm is the edit panel's payload for create and update.
type WorkOrderForm struct {
	Name   string    `json:"name" validate:"required,max=120"`
	Status string    `json:"status" validate:"required,oneof=open planned in-progress complete blocked"`
	Start  time.Time `json:"start_date" validate:"required"`
	End    time.Time `json:"end_date" validate:"required,gtefield=Start"`
}

// OverlapRequest asks whether [Start, End] collides with bookings on a
// work center, ignoring ExcludeID.
type OverlapRequest struct {
	WorkCenterID string
	Start        time.Time
	End          time.Time
	ExcludeID    string
}

type OverlapResponse struct {
	Overlap   bool     `json:"overlap"`
	Conflicts []string `json:"conflicts,omitempty"`
}

type OpResultCode string

const (
	OpOK       OpResultCode = "OK"
	OpNotFound OpResultCode = "NOT_FOUND"
	OpOverlap  OpResultCode = "OVERLAP"
	OpInvalid  OpResultCode = "INVALID"
)

// OpResult reports the outcome of one scripted mutation.
type OpResult struct {
	Index   int          `json:"index"`
	Op      string       `json:"op"`
	ID      string       `json:"id,omitempty"`
	Code    OpResultCode `json:"code"`
	Message string       `json:"message,omitempty"`
}

type WorkOrderView struct {
	ID           string `json:"id"`
	WorkCenterID string `json:"work_center_id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

func NewWorkOrderViews(orders []domain.WorkOrder) []WorkOrderView {
	views := make([]WorkOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, WorkOrderView{
			ID:           o.ID,
			WorkCenterID: o.WorkCenterID,
			Name:         o.Name,
			Status:       string(o.Status),
			StartDate:    domain.FormatDate(o.Start),
			EndDate:      domain.FormatDate(o.End),
		})
	}
	return views
}
