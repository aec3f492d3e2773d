// Package circuit implements the bus/element graph and the event-driven
// propagation scheduler described in spec.md §3–§5 and §8: Bus, the Element
// contract, Circuit, and the Scheduler's timestamp-ordered event queue with
// stability detection.
//
// This file declares the sentinel errors raised by the package. As with
// lvlath, callers branch on these via errors.Is; sentinels are never
// wrapped with formatted text at their definition site.
package circuit

import "errors"

// Sentinel errors for circuit construction and execution.
var (
	// ErrDuplicateLabel indicates two elements in the same Circuit share a
	// label. Raised at AddElement time (construction), per spec.md §7.
	ErrDuplicateLabel = errors.New("circuit: duplicate element label")

	// ErrEmptyLabel indicates AddLabeledInput/AddLabeledOutput was called
	// with an empty label.
	ErrEmptyLabel = errors.New("circuit: label must not be empty")

	// ErrBadInput indicates Run was given a label or positional index that
	// does not correspond to a labeled input element.
	ErrBadInput = errors.New("circuit: unknown input")

	// ErrBadOutput indicates a read was requested for a label that does not
	// correspond to a labeled output element.
	ErrBadOutput = errors.New("circuit: unknown output")

	// ErrStepLimitExceeded indicates the scheduler processed more than the
	// configured step limit without the event queue draining — almost
	// always a combinational cycle (e.g. a ring oscillator).
	ErrStepLimitExceeded = errors.New("circuit: step limit exceeded")

	// ErrHaltPredicateRequired indicates Run was called on a Circuit that
	// contains a clock element without a WithHaltPredicate RunOption; such
	// a run would never terminate.
	ErrHaltPredicateRequired = errors.New("circuit: halt predicate required when circuit has a clock")

	// ErrNarrowWidth indicates Bus.SetWidth was asked to narrow a bus
	// (only widening is permitted).
	ErrNarrowWidth = errors.New("circuit: bus width may only be widened before simulation")

	// ErrUnknownMemory indicates ReadMemory/WriteMemory referenced a label
	// that is not a memory-bearing element.
	ErrUnknownMemory = errors.New("circuit: unknown memory")
)
