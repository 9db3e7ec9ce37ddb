package fixture

import (
	"fmt"
	"time"

	"github.com/alexanderramin/workboard/internal/domain"
)

// ValidateSeedSchema checks the seed for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateSeedSchema(schema *SeedSchema) []error {
	var errs []error

	centerIDs := make(map[string]bool)
	errs = append(errs, validateWorkCenters(schema.WorkCenters, centerIDs)...)
	errs = append(errs, validateWorkOrders(schema.WorkOrders, centerIDs)...)

	return errs
}

func validateWorkCenters(centers []WorkCenterSeed, ids map[string]bool) []error {
	var errs []error

	for i, c := range centers {
		prefix := fmt.Sprintf("work_centers[%d]", i)
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[c.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, c.ID))
		} else {
			ids[c.ID] = true
		}
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
	}

	return errs
}

func validateWorkOrders(orders []WorkOrderSeed, centerIDs map[string]bool) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, o := range orders {
		prefix := fmt.Sprintf("work_orders[%d]", i)
		if o.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if seen[o.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, o.ID))
		} else {
			seen[o.ID] = true
		}
		if o.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if o.WorkCenterID == "" {
			errs = append(errs, fmt.Errorf("%s.work_center_id is required", prefix))
		} else if !centerIDs[o.WorkCenterID] {
			errs = append(errs, fmt.Errorf("%s.work_center_id: unknown work center %q", prefix, o.WorkCenterID))
		}
		if o.Status != "" && !domain.ValidWorkOrderStatuses[o.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, o.Status))
		}
		errs = append(errs, validateDates(prefix, o.StartDate, o.EndDate)...)
	}

	return errs
}

func validateDates(prefix, startStr, endStr string) []error {
	var errs []error
	var start, end time.Time
	var startErr, endErr error

	if startStr == "" {
		errs = append(errs, fmt.Errorf("%s.start_date is required", prefix))
	} else if start, startErr = domain.ParseDate(startStr); startErr != nil {
		errs = append(errs, fmt.Errorf("%s.start_date: %w", prefix, startErr))
	}
	if endStr == "" {
		errs = append(errs, fmt.Errorf("%s.end_date is required", prefix))
	} else if end, endErr = domain.ParseDate(endStr); endErr != nil {
		errs = append(errs, fmt.Errorf("%s.end_date: %w", prefix, endErr))
	}

	if startStr != "" && endStr != "" && startErr == nil && endErr == nil && end.Before(start) {
		errs = append(errs, fmt.Errorf("%s.end_date %q must not be before start_date %q", prefix, endStr, startStr))
	}

	return errs
}
