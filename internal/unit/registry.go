package unit

import (
	"fmt"
	"strings"
)

// NotFoundError reports a name that matched no registered unit.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Name)
}

// Registry is the authoritative source of unit metadata. It is built once
// via NewRegistry and never mutated afterwards, so it is safe to share
// across concurrent callers without locking.
type Registry struct {
	descriptors []Descriptor
	byName      map[string]Unit
}

// NewRegistry builds a registry containing all builtin units plus any extra
// descriptors, normally loaded from a unit file. It fails if an extra
// descriptor is invalid or if any name, builtin or extra, would be
// registered twice. Names are normalized to lower case at registration;
// Lookup normalizes the same way.
func NewRegistry(extra ...Descriptor) (*Registry, error) {
	descriptors := append(builtins(), extra...)

	r := &Registry{
		descriptors: descriptors,
		byName:      make(map[string]Unit, len(descriptors)),
	}

	for i, d := range descriptors {
		name := strings.ToLower(d.Name)
		if name == "" {
			return nil, fmt.Errorf("unit %d has an empty name", i)
		}
		if prev, ok := r.byName[name]; ok {
			return nil, fmt.Errorf("duplicate unit name %q (already registered as %s)",
				d.Name, r.descriptors[prev].Family)
		}
		if d.Family != Temperature && d.Factor <= 0 {
			return nil, fmt.Errorf("unit %q: factor must be positive, got %v", d.Name, d.Factor)
		}
		r.descriptors[i].Name = name
		r.byName[name] = Unit(i)
	}

	return r, nil
}

// Lookup resolves a unit name, case-insensitively, to its Unit. It returns
// a *NotFoundError when the name matches no registered unit.
func (r *Registry) Lookup(name string) (Unit, error) {
	u, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return 0, &NotFoundError{Name: name}
	}
	return u, nil
}

// Describe returns the descriptor for a unit. It is total for every Unit
// this registry issued; a foreign Unit value panics, as would any other
// out-of-range slice index.
func (r *Registry) Describe(u Unit) Descriptor {
	return r.descriptors[u]
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	return len(r.descriptors)
}

// ByFamily returns the descriptors of one family in registration order.
// Iterating Families() then ByFamily yields the fixed display grouping used
// by the --show listing.
func (r *Registry) ByFamily(f Family) []Descriptor {
	var out []Descriptor
	for _, d := range r.descriptors {
		if d.Family == f {
			out = append(out, d)
		}
	}
	return out
}
