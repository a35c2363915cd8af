package unitfile

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/claygomera/unicon/internal/ctxlog"
	"github.com/claygomera/unicon/internal/unit"
)

// unitBlock is the HCL schema for a single `unit` block.
type unitBlock struct {
	Name   string  `hcl:"name,label"`
	Family string  `hcl:"family"`
	Factor float64 `hcl:"factor"`
}

// file is the HCL schema for a whole unit file.
type file struct {
	Units []*unitBlock `hcl:"unit,block"`
}

// families maps the family keywords accepted in unit files. Temperature is
// deliberately absent.
var families = map[string]unit.Family{
	"length":  unit.Length,
	"time":    unit.Time,
	"mass":    unit.Mass,
	"digital": unit.Digital,
}

// Load parses the unit file at path and returns its descriptors in
// declaration order. Uniqueness against the builtin table is not checked
// here; the registry enforces it when the descriptors are registered.
func Load(ctx context.Context, path string) ([]unit.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading unit file.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse unit file %s: %w", path, diags)
	}

	var parsed file
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode unit file %s: %w", path, diags)
	}

	descriptors := make([]unit.Descriptor, 0, len(parsed.Units))
	for _, u := range parsed.Units {
		family, ok := families[u.Family]
		if !ok {
			if u.Family == "temperature" {
				return nil, fmt.Errorf("unit %q: temperature units are formula-based and cannot be declared in a unit file", u.Name)
			}
			return nil, fmt.Errorf("unit %q: unknown family %q", u.Name, u.Family)
		}
		if u.Factor <= 0 {
			return nil, fmt.Errorf("unit %q: factor must be positive, got %v", u.Name, u.Factor)
		}
		descriptors = append(descriptors, unit.Descriptor{
			Family: family,
			Name:   u.Name,
			Factor: u.Factor,
		})
	}

	logger.Debug("Unit file loaded.", "count", len(descriptors))
	return descriptors, nil
}
