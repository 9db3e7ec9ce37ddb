// Package config resolves board settings from WORKBOARD_* environment
// variables. Command-line flags override these values.
package config

import (
	"os"
	"strconv"

	"github.com/alexanderramin/workboard/internal/timescale"
)

// Config holds the settings shared by every command.
type Config struct {
	// SeedPath is a JSON, YAML or SQLite seed. Empty means the built-in board.
	SeedPath    string
	Timescale   timescale.Timescale
	Strict      bool
	LaneHeight  int
	Log         bool
	MetricsFile string
}

// DefaultConfig returns the built-in board in day view with advisory
// overlap checks.
func DefaultConfig() Config {
	return Config{
		Timescale:  timescale.Day,
		LaneHeight: timescale.DefaultLaneHeight,
	}
}

// LoadConfig reads configuration from environment variables, falling back to
// defaults for unset or malformed values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("WORKBOARD_SEED"); v != "" {
		cfg.SeedPath = v
	}
	if v := os.Getenv("WORKBOARD_TIMESCALE"); v != "" {
		if ts, err := timescale.Parse(v); err == nil {
			cfg.Timescale = ts
		}
	}
	if v := os.Getenv("WORKBOARD_STRICT"); v != "" {
		cfg.Strict, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("WORKBOARD_LANE_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LaneHeight = n
		}
	}
	if v := os.Getenv("WORKBOARD_LOG"); v != "" {
		cfg.Log, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("WORKBOARD_METRICS_FILE"); v != "" {
		cfg.MetricsFile = v
	}
	return cfg
}
