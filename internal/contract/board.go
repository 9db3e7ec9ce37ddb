package contract

import "time"

// BoardRequest selects the grid window and rows to lay out.
type BoardRequest struct {
	Timescale     string
	From          *time.Time
	To            *time.Time
	Today         *time.Time
	WorkCenterIDs []string
	LaneHeight    int
}

// NewBoardRequest returns a request for the default day view.
func NewBoardRequest() BoardRequest {
	return BoardRequest{Timescale: "day"}
}

type BoardResponse struct {
	Timescale   string       `json:"timescale"`
	From        string       `json:"from"`
	To          string       `json:"to"`
	PxPerUnit   int          `json:"px_per_unit"`
	TotalWidth  int          `json:"total_width"`
	TodayOffset *int         `json:"today_offset,omitempty"`
	Units       []GridUnit   `json:"units"`
	Headers     []HeaderSpan `json:"headers"`
	Rows        []BoardRow   `json:"rows"`
}

type GridUnit struct {
	Date   string `json:"date"`
	Label  string `json:"label"`
	Offset int    `json:"offset"`
}

type HeaderSpan struct {
	Label string `json:"label"`
	Span  int    `json:"span"`
	Width int    `json:"width"`
}

type BoardRow struct {
	WorkCenterID   string    `json:"work_center_id"`
	WorkCenterName string    `json:"work_center_name"`
	Lanes          int       `json:"lanes"`
	Height         int       `json:"height"`
	Bars           []BarView `json:"bars"`
}

type BarView struct {
	WorkOrderID string `json:"work_order_id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Lane        int    `json:"lane"`
	Left        int    `json:"left"`
	Width       int    `json:"width"`
	Top         int    `json:"top"`
}
