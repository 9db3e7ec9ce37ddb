package fixture

// DefaultSchema is the board shipped with no seed file: five work centers
// and six work orders around the turn of 2025/2026.
func DefaultSchema() *SeedSchema {
	return &SeedSchema{
		WorkCenters: []WorkCenterSeed{
			{ID: "wc-1", Name: "Extrusion Line A"},
			{ID: "wc-2", Name: "CNC Machine 1"},
			{ID: "wc-3", Name: "Assembly Station"},
			{ID: "wc-4", Name: "Quality Control"},
			{ID: "wc-5", Name: "Packaging Line"},
		},
		WorkOrders: []WorkOrderSeed{
			{ID: "wo-1", WorkCenterID: "wc-1", Name: "Order A", Status: "in-progress", StartDate: "2025-12-20", EndDate: "2025-12-26"},
			{ID: "wo-2", WorkCenterID: "wc-1", Name: "Order B", Status: "planned", StartDate: "2025-12-28", EndDate: "2026-01-02"},
			{ID: "wo-3", WorkCenterID: "wc-2", Name: "Order C", Status: "open", StartDate: "2025-12-22", EndDate: "2025-12-30"},
			{ID: "wo-4", WorkCenterID: "wc-3", Name: "Order D", Status: "blocked", StartDate: "2025-12-18", EndDate: "2025-12-23"},
			{ID: "wo-5", WorkCenterID: "wc-4", Name: "Order E", Status: "complete", StartDate: "2025-12-10", EndDate: "2025-12-15"},
			{ID: "wo-6", WorkCenterID: "wc-5", Name: "Order F", Status: "planned", StartDate: "2026-01-05", EndDate: "2026-01-10"},
		},
	}
}

// Default converts DefaultSchema.
func Default() *Seed {
	seed, err := Convert(DefaultSchema())
	if err != nil {
		panic("fixture: default seed does not convert: " + err.Error())
	}
	return seed
}
