package app

import (
	"context"
	"fmt"
	"math"

	"github.com/claygomera/unicon/internal/ctxlog"
	"github.com/claygomera/unicon/internal/unit"
)

// Run executes one converter invocation based on the provided configuration.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	if cfg.ShowUnits {
		a.printUnits()
		return nil
	}

	from, err := a.registry.Lookup(cfg.FromUnit)
	if err != nil {
		return err
	}
	to, err := a.registry.Lookup(cfg.ToUnit)
	if err != nil {
		return err
	}

	result, err := a.engine.Convert(cfg.Value, from, to)
	if err != nil {
		return err
	}
	rounded := roundTo(result, cfg.RoundPlaces)
	logger.Debug("Conversion complete.",
		"value", cfg.Value,
		"from", a.registry.Describe(from).Name,
		"to", a.registry.Describe(to).Name,
		"result", rounded,
	)

	fmt.Fprintf(a.outW, "%.*f %s = %.*f %s\n",
		cfg.RoundPlaces, cfg.Value, a.registry.Describe(from).Name,
		cfg.RoundPlaces, rounded, a.registry.Describe(to).Name,
	)
	return nil
}

// roundTo rounds half away from zero to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// printUnits writes the supported-unit table, grouped by family in the
// fixed display order with each family's units in registration order.
func (a *App) printUnits() {
	fmt.Fprintln(a.outW, "Supported units:")
	for _, f := range unit.Families() {
		fmt.Fprintf(a.outW, "%s:\n", f)
		for _, d := range a.registry.ByFamily(f) {
			fmt.Fprintf(a.outW, "\t- %s\n", d.Name)
		}
	}
}
