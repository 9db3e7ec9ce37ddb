package fixture

import (
	"fmt"
	"os"
)

type OpKind string

const (
	OpCreate OpKind = "create"
	OpUpdate OpKind = "update"
	OpDelete OpKind = "delete"
)

// Op is one scripted board mutation. Update ops replace name, status and
// dates; omitted fields keep their stored value.
type Op struct {
	Op           OpKind `json:"op" yaml:"op"`
	ID           string `json:"id,omitempty" yaml:"id,omitempty"`
	WorkCenterID string `json:"work_center_id,omitempty" yaml:"work_center_id,omitempty"`
	Name         string `json:"name,omitempty" yaml:"name,omitempty"`
	Status       string `json:"status,omitempty" yaml:"status,omitempty"`
	StartDate    string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty" yaml:"end_date,omitempty"`
}

// OpsFile is the top-level structure of an operations file.
type OpsFile struct {
	Ops []Op `json:"ops" yaml:"ops"`
}

// LoadOps reads a JSON or YAML operations file.
func LoadOps(path string) ([]Op, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f OpsFile
	if err := decode(path, data, &f); err != nil {
		return nil, fmt.Errorf("parsing ops file: %w", err)
	}
	return f.Ops, nil
}
