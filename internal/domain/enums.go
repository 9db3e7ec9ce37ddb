package domain

type WorkOrderStatus string

const (
	StatusOpen       WorkOrderStatus = "open"
	StatusPlanned    WorkOrderStatus = "planned"
	StatusInProgress WorkOrderStatus = "in-progress"
	StatusComplete   WorkOrderStatus = "complete"
	StatusBlocked    WorkOrderStatus = "blocked"
)

// ValidWorkOrderStatuses is the canonical set of accepted status strings.
var ValidWorkOrderStatuses = map[string]bool{
	"open": true, "planned": true, "in-progress": true,
	"complete": true, "blocked": true,
}

// IsValid reports whether s is one of the known work order statuses.
func (s WorkOrderStatus) IsValid() bool {
	return ValidWorkOrderStatuses[string(s)]
}
