package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/workboard/internal/contract"
	"github.com/alexanderramin/workboard/internal/domain"
)

const (
	stripEmpty = "·"
	stripToday = "┊"
	stripBar   = "█"
)

// FormatBoard renders the computed board geometry: a boxed summary with the
// month header spans and, per work center, one strip per lane followed by
// the bar table.
func FormatBoard(resp *contract.BoardResponse) string {
	var b strings.Builder

	summary := fmt.Sprintf("%s  %s → %s  %dpx/unit  %dpx wide",
		Bold(resp.Timescale), resp.From, resp.To, resp.PxPerUnit, resp.TotalWidth)
	if resp.TodayOffset != nil {
		summary += Dim(fmt.Sprintf("  today @%dpx", *resp.TodayOffset))
	}
	spans := make([]string, 0, len(resp.Headers))
	for _, h := range resp.Headers {
		spans = append(spans, fmt.Sprintf("%s %s", h.Label, Dim(fmt.Sprintf("(%d)", h.Span))))
	}
	b.WriteString(RenderBox("Board", summary, strings.Join(spans, "  ")))

	for _, row := range resp.Rows {
		b.WriteString("\n")
		b.WriteString(formatRow(resp, row))
	}
	return b.String()
}

func formatRow(resp *contract.BoardResponse, row contract.BoardRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s\n", Bold(row.WorkCenterName), Dim(row.WorkCenterID),
		Dim(fmt.Sprintf("%d lane(s), %dpx", row.Lanes, row.Height)))

	for lane := range row.Lanes {
		b.WriteString("  " + laneStrip(resp, row, lane) + "\n")
	}
	if len(row.Bars) == 0 {
		b.WriteString("  " + Dim("no work orders") + "\n")
		return b.String()
	}

	headers := []string{"ID", "NAME", "STATUS", "DATES", "LANE", "LEFT", "WIDTH", "TOP"}
	rows := make([][]string, 0, len(row.Bars))
	for _, bar := range row.Bars {
		rows = append(rows, []string{
			bar.WorkOrderID,
			bar.Name,
			StatusPill(domain.WorkOrderStatus(bar.Status)),
			bar.StartDate + " → " + bar.EndDate,
			strconv.Itoa(bar.Lane),
			strconv.Itoa(bar.Left),
			strconv.Itoa(bar.Width),
			strconv.Itoa(bar.Top),
		})
	}
	for _, line := range strings.Split(strings.TrimRight(RenderTable(headers, rows), "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

// laneStrip draws one character per grid unit for a single lane. Bars that
// extend past the visible range are clipped.
func laneStrip(resp *contract.BoardResponse, row contract.BoardRow, lane int) string {
	n := len(resp.Units)
	if n == 0 || resp.PxPerUnit <= 0 {
		return ""
	}
	cells := make([]string, n)
	for i := range cells {
		cells[i] = Dim(stripEmpty)
	}
	if resp.TodayOffset != nil {
		if i := *resp.TodayOffset / resp.PxPerUnit; i >= 0 && i < n {
			cells[i] = StyleYellow.Render(stripToday)
		}
	}
	for _, bar := range row.Bars {
		if bar.Lane != lane {
			continue
		}
		style := StatusColor(domain.WorkOrderStatus(bar.Status))
		first := bar.Left / resp.PxPerUnit
		last := first + bar.Width/resp.PxPerUnit
		for i := max(first, 0); i < min(last, n); i++ {
			cells[i] = style.Render(stripBar)
		}
	}
	return strings.Join(cells, "")
}
