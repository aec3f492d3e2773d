// Package splitter implements the bidirectional splitter/merger of
// spec.md §4.6: one wide bus decomposed into (or assembled from) N
// narrower buses, direction inferred from which side changed most
// recently. Grounded on the connected-component traversal shape of
// gridgraph/components.go for consistency checking, and on core's
// adjacency bookkeeping for "listens on every incident bus" connectivity.
package splitter

import "errors"

// Sentinel errors.
var (
	// ErrPortCount indicates len(split) (or len(bitMappings)) doesn't match
	// the number of narrow buses supplied.
	ErrPortCount = errors.New("splitter: port count mismatch")

	// ErrSplitWidth indicates sum(split) differs from the wide bus's width
	// in contiguous mode (NewSplitter requires equality;
	// NewBitMappingSplitter does not check the sum).
	ErrSplitWidth = errors.New("splitter: split widths inconsistent with wide bus width")

	// ErrNarrowWidth indicates a narrow bus's width doesn't match its
	// declared split width.
	ErrNarrowWidth = errors.New("splitter: narrow bus width disagrees with declared split")

	// ErrContention is the fatal SplitterContention fault of spec.md §7:
	// the wide and narrow sides disagree at equal timestamps. Surfaced via
	// Splitter.Fault(), not returned from Resolve.
	ErrContention = errors.New("splitter: wide and narrow sides disagree at equal timestamp")

	// ErrBitConflict indicates two narrow ports assert conflicting values
	// for the same wide bit in bit-mapping propIn mode.
	ErrBitConflict = errors.New("splitter: conflicting bit assignment during merge")
)
