package app

import "fmt"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Conversion request. Ignored when ShowUnits is set.
	Value    float64
	FromUnit string
	ToUnit   string

	// RoundPlaces is the number of decimal places used both to round the
	// result and to format the two printed numbers.
	RoundPlaces int

	// ShowUnits prints the supported-unit table instead of converting.
	ShowUnits bool

	// UnitsPath optionally names an HCL file of extra unit definitions.
	UnitsPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.RoundPlaces < 0 {
		return nil, fmt.Errorf("round places must be zero or positive, got %d", cfg.RoundPlaces)
	}
	if !cfg.ShowUnits {
		if cfg.FromUnit == "" || cfg.ToUnit == "" {
			return nil, fmt.Errorf("both a 'from' unit and a 'to' unit are required")
		}
	}
	return &cfg, nil
}
