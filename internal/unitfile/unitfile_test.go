package unitfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claygomera/unicon/internal/unit"
)

// writeUnitFile writes an HCL fixture into a temp dir and returns its path.
func writeUnitFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "units.hcl")
	err := os.WriteFile(path, []byte(contents), 0600)
	require.NoError(t, err, "failed to set up test file")
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeUnitFile(t, `
unit "furlongs" {
  family = "length"
  factor = 0.00497096
}

unit "stones" {
  family = "mass"
  factor = 0.000157473
}
`)

	descriptors, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, descriptors, 2)

	assert.Equal(t, unit.Descriptor{Family: unit.Length, Name: "furlongs", Factor: 0.00497096}, descriptors[0])
	assert.Equal(t, unit.Descriptor{Family: unit.Mass, Name: "stones", Factor: 0.000157473}, descriptors[1])
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Parallel()

	path := writeUnitFile(t, "")
	descriptors, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, descriptors)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
		require.Error(t, err)
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()
		path := writeUnitFile(t, `
unit "broken" {
  family = "length"
`)
		_, err := Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("missing factor attribute", func(t *testing.T) {
		t.Parallel()
		path := writeUnitFile(t, `
unit "furlongs" {
  family = "length"
}
`)
		_, err := Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode")
	})

	t.Run("unknown family", func(t *testing.T) {
		t.Parallel()
		path := writeUnitFile(t, `
unit "scovilles" {
  family = "spiciness"
  factor = 1
}
`)
		_, err := Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown family "spiciness"`)
	})

	t.Run("temperature family is rejected", func(t *testing.T) {
		t.Parallel()
		path := writeUnitFile(t, `
unit "rankine" {
  family = "temperature"
  factor = 1
}
`)
		_, err := Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "formula-based")
	})

	t.Run("non-positive factor", func(t *testing.T) {
		t.Parallel()
		path := writeUnitFile(t, `
unit "voids" {
  family = "digital"
  factor = -2
}
`)
		_, err := Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "factor must be positive")
	})
}

func TestLoad_FeedsRegistry(t *testing.T) {
	t.Parallel()

	path := writeUnitFile(t, `
unit "furlongs" {
  family = "length"
  factor = 0.00497096
}
`)

	descriptors, err := Load(context.Background(), path)
	require.NoError(t, err)

	registry, err := unit.NewRegistry(descriptors...)
	require.NoError(t, err)

	u, err := registry.Lookup("FURLONGS")
	require.NoError(t, err)
	assert.Equal(t, unit.Length, registry.Describe(u).Family)
}
