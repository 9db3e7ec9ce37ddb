package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SeedSchema is the top-level structure of a seed file.
type SeedSchema struct {
	WorkCenters []WorkCenterSeed `json:"work_centers" yaml:"work_centers"`
	WorkOrders  []WorkOrderSeed  `json:"work_orders" yaml:"work_orders"`
}

// WorkCenterSeed defines one board row.
type WorkCenterSeed struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// WorkOrderSeed defines one booked work order. Dates are YYYY-MM-DD.
type WorkOrderSeed struct {
	ID           string `json:"id" yaml:"id"`
	WorkCenterID string `json:"work_center_id" yaml:"work_center_id"`
	Name         string `json:"name" yaml:"name"`
	Status       string `json:"status,omitempty" yaml:"status,omitempty"`
	StartDate    string `json:"start_date" yaml:"start_date"`
	EndDate      string `json:"end_date" yaml:"end_date"`
}

// LoadSeedSchema reads a JSON or YAML seed file, chosen by extension.
func LoadSeedSchema(path string) (*SeedSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema SeedSchema
	if err := decode(path, data, &schema); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &schema, nil
}

func decode(path string, data []byte, v any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	case ".json":
		return json.Unmarshal(data, v)
	default:
		return fmt.Errorf("unsupported file extension %q", filepath.Ext(path))
	}
}
