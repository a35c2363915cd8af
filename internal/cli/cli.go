package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/claygomera/unicon/internal/app"
)

// Version is the converter's release version, printed by -v/--version.
const Version = "0.2.0"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("unicon", pflag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `unicon - Convert between various units.

Usage:
  unicon [OPTIONS] VALUE from <UNIT> to <UNIT>

Options:
`)
		fmt.Fprint(output, flagSet.FlagUsages())
	}

	roundFlag := flagSet.IntP("round", "r", 2, "Round the result to the specified number of decimal places.")
	showFlag := flagSet.BoolP("show", "s", false, "Show the full table of supported units.")
	versionFlag := flagSet.BoolP("version", "v", false, "Display version information and exit.")
	unitsFlag := flagSet.String("units", "", "Path to an HCL file with additional unit definitions.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *versionFlag {
		fmt.Fprintf(output, "unicon v%s\n", Version)
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 1, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 1, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg := app.Config{
		RoundPlaces: *roundFlag,
		ShowUnits:   *showFlag,
		UnitsPath:   *unitsFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	}

	if !cfg.ShowUnits {
		rest := flagSet.Args()
		if len(rest) == 0 {
			slog.Debug("No conversion arguments provided, printing usage and exiting.")
			flagSet.Usage()
			return nil, true, nil
		}
		if err := parseConversion(rest, &cfg); err != nil {
			return nil, false, err
		}
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}

// parseConversion interprets the positional arguments as the grammar
// `VALUE from <UNIT> to <UNIT>`. The from/to keywords are matched
// case-insensitively and may appear in either order.
func parseConversion(args []string, cfg *app.Config) error {
	if len(args) != 5 {
		return &ExitError{Code: 1, Message: "invalid command format: expected VALUE from <UNIT> to <UNIT>"}
	}

	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("invalid value %q: please provide a valid numeric value", args[0])}
	}
	cfg.Value = value

	for i := 1; i < len(args)-1; i++ {
		switch {
		case strings.EqualFold(args[i], "from"):
			cfg.FromUnit = args[i+1]
		case strings.EqualFold(args[i], "to"):
			cfg.ToUnit = args[i+1]
		}
	}
	if cfg.FromUnit == "" || cfg.ToUnit == "" {
		return &ExitError{Code: 1, Message: "invalid command format: please provide both 'from' and 'to' units"}
	}
	return nil
}
