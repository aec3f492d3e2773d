// Package subcircuit implements spec.md §4.7: an Element that wraps an
// inner *circuit.Circuit, mapping its own input/output buses positionally
// onto the inner circuit's labeled inputs/outputs. Grounded on circuit
// itself — a Subcircuit's Resolve simply drives the inner Circuit's own
// Run loop to stability and copies the result back out.
package subcircuit

import "errors"

// ErrPortCount indicates the number of outer input or output buses
// supplied at construction doesn't match the inner circuit's labeled
// input/output count.
var ErrPortCount = errors.New("subcircuit: port count does not match inner circuit")
