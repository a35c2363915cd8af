package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/claygomera/unicon/internal/convert"
	"github.com/claygomera/unicon/internal/ctxlog"
	"github.com/claygomera/unicon/internal/unit"
	"github.com/claygomera/unicon/internal/unitfile"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *unit.Registry
	engine   *convert.Engine
}

// NewApp is the constructor for the main application. Results are written
// to outW; the logger writes to errW so diagnostics never mix with
// conversion output. The registry is populated here, once, from the
// builtin table plus any unit file named in the config, and is read-only
// for the rest of the process.
func NewApp(outW, errW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var extra []unit.Descriptor
	if cfg.UnitsPath != "" {
		var err error
		extra, err = unitfile.Load(ctx, cfg.UnitsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load unit definitions: %w", err)
		}
	}

	registry, err := unit.NewRegistry(extra...)
	if err != nil {
		return nil, fmt.Errorf("failed to build unit registry: %w", err)
	}
	logger.Debug("Unit registry built.", "units", registry.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: registry,
		engine:   convert.NewEngine(registry),
	}, nil
}

// Registry returns the application's unit registry. This is primarily for testing.
func (a *App) Registry() *unit.Registry {
	return a.registry
}
