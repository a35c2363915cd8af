package convert

import (
	"fmt"

	"github.com/claygomera/unicon/internal/unit"
)

// IncompatibleError reports a conversion request between units whose
// families cannot be related. It is the only error the engine returns.
type IncompatibleError struct {
	From unit.Descriptor
	To   unit.Descriptor
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("cannot convert between %s (%s) and %s (%s)",
		e.From.Name, e.From.Family, e.To.Name, e.To.Family)
}

// Engine converts values between units registered in a single registry.
type Engine struct {
	registry *unit.Registry
}

// NewEngine creates an engine backed by the given registry.
func NewEngine(registry *unit.Registry) *Engine {
	return &Engine{registry: registry}
}

// Convert computes the value of `value` from-units expressed in to-units.
//
// Identical units are returned unchanged. Temperature units convert only
// among celsius, fahrenheit and kelvin, by the formula for the exact
// (from, to) pair. All other units convert within their family through
// value * (factor(to) / factor(from)): each factor is units per one base
// unit of the family, so dividing by factor(from) rescales the value to
// base units and multiplying by factor(to) rescales it to the target.
// Non-finite inputs are not validated; the arithmetic propagates them.
func (e *Engine) Convert(value float64, from, to unit.Unit) (float64, error) {
	if from == to {
		return value, nil
	}

	fd := e.registry.Describe(from)
	td := e.registry.Describe(to)

	if fd.Family == unit.Temperature || td.Family == unit.Temperature {
		return convertTemperature(value, from, to, fd, td)
	}

	if fd.Family != td.Family {
		return 0, &IncompatibleError{From: fd, To: td}
	}
	return value * (td.Factor / fd.Factor), nil
}

// convertTemperature applies one of the six defined temperature formulas.
// Any pair outside those six, including a temperature unit against a
// scalar unit, is incompatible.
func convertTemperature(value float64, from, to unit.Unit, fd, td unit.Descriptor) (float64, error) {
	switch from {
	case unit.Celsius:
		switch to {
		case unit.Fahrenheit:
			return value*9/5 + 32, nil
		case unit.Kelvin:
			return value + 273.15, nil
		}
	case unit.Fahrenheit:
		switch to {
		case unit.Celsius:
			return (value - 32) * 5 / 9, nil
		case unit.Kelvin:
			return (value-32)*5/9 + 273.15, nil
		}
	case unit.Kelvin:
		switch to {
		case unit.Celsius:
			return value - 273.15, nil
		case unit.Fahrenheit:
			return (value-273.15)*9/5 + 32, nil
		}
	}
	return 0, &IncompatibleError{From: fd, To: td}
}
