package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/workboard/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox frames lines in a rounded border. A non-empty title becomes the
// first line, upper-cased.
func RenderBox(title string, lines ...string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1)

	if title != "" {
		lines = append([]string{StyleHeader.Render(strings.ToUpper(title))}, lines...)
	}
	return box.Render(strings.Join(lines, "\n")) + "\n"
}

// RelativeDays describes d relative to today in whole days.
func RelativeDays(d, today time.Time) string {
	days := int(domain.DateOf(d).Sub(domain.DateOf(today)).Hours() / 24)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0:
		return fmt.Sprintf("In %dd", days)
	default:
		return fmt.Sprintf("%dd ago", -days)
	}
}

// StatusPill returns a colored status indicator for a work order.
func StatusPill(status domain.WorkOrderStatus) string {
	style := StatusColor(status)
	switch status {
	case domain.StatusOpen:
		return style.Render("○ Open")
	case domain.StatusPlanned:
		return style.Render("◷ Planned")
	case domain.StatusInProgress:
		return style.Render("● In Progress")
	case domain.StatusComplete:
		return style.Render("✔ Complete")
	case domain.StatusBlocked:
		return style.Render("✖ Blocked")
	default:
		return style.Render(string(status))
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// DateRange renders an inclusive span such as "2025-12-20 → 2025-12-26 (7d)".
func DateRange(start, end time.Time) string {
	days := int(end.Sub(start).Hours()/24) + 1
	return fmt.Sprintf("%s → %s %s", domain.FormatDate(start), domain.FormatDate(end), Dim(fmt.Sprintf("(%dd)", days)))
}
