// Package unit defines the supported measurement units and the registry
// that maps human-readable unit names to their metadata.
//
// The registry is populated exactly once, during application startup, and
// is read-only afterwards. Unit names form a single flat, case-insensitive
// namespace across all families, so "kelvin" and "kilograms" can never
// collide with anything else regardless of family.
package unit
