// Package app wires the unit registry and conversion engine together and
// runs one converter invocation: either the supported-unit listing or a
// single conversion, formatted and written to the output writer.
package app
