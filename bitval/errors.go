// Package bitval defines BitValue, an immutable arbitrary-width bit vector,
// and provides thread-safe-by-value primitives for logical, arithmetic, and
// conversion operations used throughout the simulation core.
//
// This file declares the sentinel errors for bitval. Callers MUST use
// errors.Is to branch on semantics; sentinels are never wrapped with
// formatted strings at definition site, only at call sites via %w.
package bitval

import "errors"

// Sentinel errors for bitval operations.
var (
	// ErrNegativeWidth indicates a negative width was requested at construction.
	ErrNegativeWidth = errors.New("bitval: width must be non-negative")

	// ErrInvalidLiteral indicates a binary or hex literal contained characters
	// outside its radix's alphabet.
	ErrInvalidLiteral = errors.New("bitval: literal contains invalid characters")

	// ErrWidthMismatch indicates an operation (And/Or/Xor/Add/...) was given
	// operands of differing width.
	ErrWidthMismatch = errors.New("bitval: width mismatch")

	// ErrWidthRequired indicates Make was called with a negative value but no
	// explicit width, so a two's-complement encoding could not be sized.
	ErrWidthRequired = errors.New("bitval: width is required for negative values")

	// ErrIndexOutOfRange indicates BitSlice/Truncate/Pad received indices
	// outside the valid range for the receiver's width.
	ErrIndexOutOfRange = errors.New("bitval: index out of range")

	// ErrUnsupportedRadix indicates ToString was asked for a radix other than
	// 2 (binary) or 16 (hex).
	ErrUnsupportedRadix = errors.New("bitval: unsupported radix")
)
