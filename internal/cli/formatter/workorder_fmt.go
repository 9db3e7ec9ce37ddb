package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/workboard/internal/contract"
	"github.com/alexanderramin/workboard/internal/domain"
)

// FormatWorkOrderList renders work orders with their work center names.
func FormatWorkOrderList(orders []domain.WorkOrder, centers []domain.WorkCenter, today time.Time) string {
	if len(orders) == 0 {
		return Dim("No work orders.") + "\n"
	}
	names := make(map[string]string, len(centers))
	for _, c := range centers {
		names[c.ID] = c.Name
	}

	headers := []string{"ID", "WORK CENTER", "NAME", "STATUS", "DATES", "STARTS"}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		center := names[o.WorkCenterID]
		if center == "" {
			center = o.WorkCenterID
		}
		rows = append(rows, []string{
			o.ID,
			center,
			Bold(o.Name),
			StatusPill(o.Status),
			DateRange(o.Start, o.End),
			RelativeDays(o.Start, today),
		})
	}
	return RenderTable(headers, rows)
}

// FormatWorkCenterList renders work centers with their booking counts.
func FormatWorkCenterList(centers []domain.WorkCenter, counts map[string]int) string {
	if len(centers) == 0 {
		return Dim("No work centers.") + "\n"
	}
	headers := []string{"ID", "NAME", "ORDERS"}
	rows := make([][]string, 0, len(centers))
	for _, c := range centers {
		rows = append(rows, []string{c.ID, Bold(c.Name), strconv.Itoa(counts[c.ID])})
	}
	return RenderTable(headers, rows)
}

// FormatOverlap renders the result of an overlap query.
func FormatOverlap(req contract.OverlapRequest, resp *contract.OverlapResponse) string {
	span := DateRange(domain.DateOf(req.Start), domain.DateOf(req.End))
	if !resp.Overlap {
		return fmt.Sprintf("%s %s is free on %s\n", StyleGreen.Render("✔"), span, req.WorkCenterID)
	}
	return fmt.Sprintf("%s %s overlaps on %s: %s\n", StyleRed.Render("✖"), span, req.WorkCenterID,
		strings.Join(resp.Conflicts, ", "))
}

// FormatOpResults renders one line per applied operation and a summary.
func FormatOpResults(results []contract.OpResult) string {
	headers := []string{"#", "OP", "ID", "RESULT", "MESSAGE"}
	rows := make([][]string, 0, len(results))
	failed := 0
	for _, r := range results {
		if r.Code != contract.OpOK {
			failed++
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Index + 1),
			r.Op,
			TruncID(r.ID),
			resultPill(r.Code),
			r.Message,
		})
	}
	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	fmt.Fprintf(&b, "%d applied, %d failed\n", len(results)-failed, failed)
	return b.String()
}

func resultPill(code contract.OpResultCode) string {
	switch code {
	case contract.OpOK:
		return StyleGreen.Render(string(code))
	case contract.OpOverlap:
		return StyleYellow.Render(string(code))
	default:
		return StyleRed.Render(string(code))
	}
}
