// Package gates implements the combinational elements of spec.md §4.3:
// N-ary logic gates, mux/demux/decoder/priority-encoder/bit-selector,
// adder/ALU/two's-complement, tri-state/controlled-inverter, the
// constant/power/ground and random sources, and Extend. Every type here
// embeds circuit.Base and satisfies circuit.Element; construction validates
// arity and width up front so Resolve itself never needs to return an
// error.
//
// File layout mirrors the teacher's algorithms/ package: one concern per
// file (logic.go, mux.go, arithmetic.go, source.go), each
// carrying its own doc comment rather than one shared with the package.
package gates

import "errors"

// Sentinel errors raised at element construction time.
var (
	// ErrArity indicates an N-ary gate was constructed with fewer than two
	// inputs.
	ErrArity = errors.New("gates: at least two inputs required")

	// ErrWidthMismatch indicates the inputs to a gate do not share a single
	// width, or an output bus does not match the width the element
	// computes.
	ErrWidthMismatch = errors.New("gates: width mismatch")

	// ErrPortCount indicates a constructor was given a number of ports
	// (data inputs/outputs) inconsistent with its select width.
	ErrPortCount = errors.New("gates: inconsistent port count")
)

// ceilLog2 returns the smallest k such that 2^k >= n (n >= 1). Used to size
// select/address buses for Mux/Demux/Decoder/PriorityEncoder/BitSelector,
// per spec.md's recurring "⌈log₂N⌉" width rule.
func ceilLog2(n int) int {
	k := 0
	for (1 << uint(k)) < n {
		k++
	}
	return k
}
