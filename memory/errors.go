// Package memory implements the storage elements of spec.md §4.5: ROM
// (read-only) and RAM (chip-select/output-enable/write-enable gated),
// backed by a flat slice of fixed-width words — grounded on the dense
// row-major storage convention of matrix/dense.go in the teacher pack.
package memory

import "errors"

// Sentinel errors raised at construction time. Out-of-range access during
// Resolve is a warning (logged), not one of these — per spec.md §7's
// MemoryOutOfRange recovery of "Warning (read returns null; write is
// dropped)".
var (
	// ErrWidthMismatch indicates a word or initializer width disagrees with
	// the memory's configured word width.
	ErrWidthMismatch = errors.New("memory: width mismatch")

	// ErrControlWidth indicates a control signal (CS/OE/WE) wasn't wired as
	// one bit wide.
	ErrControlWidth = errors.New("memory: control port must be one bit")

	// ErrAddressWidth indicates the address bus is narrower than
	// ⌈log₂capacity⌉ bits.
	ErrAddressWidth = errors.New("memory: address bus too narrow for capacity")

	// ErrOutOfRange is returned by the direct Read/Write API (used by
	// Circuit.ReadMemory/WriteMemory) when address+length exceeds capacity;
	// unlike the bus-driven Resolve path, this API call fails loudly since
	// it is a programming-time mistake, not a simulated out-of-range access.
	ErrOutOfRange = errors.New("memory: address out of range")
)
