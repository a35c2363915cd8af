// Package unitfile loads user-defined units from an HCL file. Each file
// declares zero or more `unit` blocks naming a scalar family and a scale
// factor:
//
//	unit "furlongs" {
//	  family = "length"
//	  factor = 0.00497096
//	}
//
// Loaded descriptors are merged into the unit registry at startup, so a
// unit file extends the converter without touching the builtin table.
// Temperature units cannot be declared this way: temperature conversion is
// formula-based and has no scale factor to declare.
package unitfile
