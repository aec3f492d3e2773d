// Package sequential implements the clocked elements of spec.md §4.3/§4.4:
// D/T/JK flip-flops, the SR/D latches, the JLS-style Register, a
// free-running Clock, and Counter. Edge detection follows the same
// previous-value-carried-across-calls shape circuit.EdgeDetector
// formalizes, grounded on algorithms/dfs.go's iterative walker state.
//
// Construction uses the functional-options idiom throughout (see
// options.go), mirroring builder.BuilderOption in the teacher pack: a
// flipFlopConfig resolved by newFlipFlopConfig(opts...), with WithX
// constructors for optional ports (enable, synchronous reset).
package sequential

import "errors"

// Sentinel errors raised at element construction time.
var (
	// ErrWidthMismatch indicates two ports that must share a width (D/Q/Qbar,
	// or a preset value against Q) disagree.
	ErrWidthMismatch = errors.New("sequential: width mismatch")

	// ErrControlWidth indicates a single-bit control port (clk, enable,
	// reset, J, K, S, R) was wired to a bus wider than one bit.
	ErrControlWidth = errors.New("sequential: control port must be one bit")
)
