package fixture

import (
	"fmt"

	"github.com/alexanderramin/workboard/internal/domain"
)

// Seed is a converted seed ready to hand to the store.
type Seed struct {
	WorkCenters []domain.WorkCenter
	WorkOrders  []domain.WorkOrder
}

// Convert transforms a validated SeedSchema into domain values.
// Call ValidateSeedSchema first; Convert assumes the schema is valid.
func Convert(schema *SeedSchema) (*Seed, error) {
	seed := &Seed{
		WorkCenters: make([]domain.WorkCenter, 0, len(schema.WorkCenters)),
		WorkOrders:  make([]domain.WorkOrder, 0, len(schema.WorkOrders)),
	}

	for _, c := range schema.WorkCenters {
		seed.WorkCenters = append(seed.WorkCenters, domain.WorkCenter{ID: c.ID, Name: c.Name})
	}

	for _, o := range schema.WorkOrders {
		start, err := domain.ParseDate(o.StartDate)
		if err != nil {
			return nil, fmt.Errorf("work order %s: %w", o.ID, err)
		}
		end, err := domain.ParseDate(o.EndDate)
		if err != nil {
			return nil, fmt.Errorf("work order %s: %w", o.ID, err)
		}

		status := domain.WorkOrderStatus(o.Status)
		if status == "" {
			status = domain.StatusOpen
		}

		seed.WorkOrders = append(seed.WorkOrders, domain.WorkOrder{
			ID:           o.ID,
			WorkCenterID: o.WorkCenterID,
			Name:         o.Name,
			Status:       status,
			Start:        start,
			End:          end,
		})
	}

	return seed, nil
}
