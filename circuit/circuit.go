// Package circuit — see errors.go for the package doc comment.
package circuit

import (
	"fmt"

	"github.com/katalvlaran/wiresim/bitval"
)

// DefaultStepLimit is the scheduler step ceiling from spec.md §4.8/§7: past
// this many resolutions without the event queue draining, Run fails with
// ErrStepLimitExceeded rather than spinning forever on a combinational
// cycle such as a ring oscillator.
const DefaultStepLimit = 1_000_000

// Logger is the minimal hierarchical, level-filtered logging surface a
// Circuit (and the Elements and Project it belongs to) can be attached to,
// matching spec.md §6's Logger requirement without coupling this package to
// any particular backend. simlog.Logger satisfies this interface.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Sub(subsystem string) Logger
}

// noopLogger discards everything; it is the default so that Circuit never
// has to nil-check its logger.
type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}
func (noopLogger) Infof(string, ...interface{})  {}
func (noopLogger) Warnf(string, ...interface{})  {}
func (noopLogger) Errorf(string, ...interface{}) {}
func (noopLogger) Fatalf(string, ...interface{}) {}
func (noopLogger) Sub(string) Logger             { return noopLogger{} }

// Memory is the subset of Element behavior a memory-bearing element
// (ROM/RAM) must expose so Circuit.ReadMemory/WriteMemory can reach it
// without this package importing the memory package (which imports circuit
// — the dependency only ever points inward).
type Memory interface {
	Element
	Read(address bitval.BitValue, length int) ([]bitval.BitValue, error)
	Write(address bitval.BitValue, words []bitval.BitValue) error
}

// ClockElement is the marker interface a clock element implements so
// Circuit can detect "any element in the circuit is a clock" (spec.md
// §4.8) and drive its outer clocked-run loop.
type ClockElement interface {
	Element
	SetClockState(high bool)
}

// Circuit owns a set of Elements and Buses, a label→Element index for
// labeled inputs/outputs, and drives the Scheduler. See spec.md §3.
type Circuit struct {
	name string

	buses    []*Bus
	clock    *eventClock
	elements []Element
	labels   map[string]bool

	inputOrder []string
	inputs     map[string]*InputPort

	outputOrder []string
	outputs     map[string]*OutputPort

	memOrder  []string
	memories  map[string]Memory
	clockElems []ClockElement

	logger Logger
}

// NewCircuit constructs an empty Circuit named name (used for Project
// lookups and logging; may be empty).
func NewCircuit(name string) *Circuit {
	return &Circuit{
		name:     name,
		clock:    &eventClock{},
		labels:   make(map[string]bool),
		inputs:   make(map[string]*InputPort),
		outputs:  make(map[string]*OutputPort),
		memories: make(map[string]Memory),
		logger:   noopLogger{},
	}
}

// Name returns the Circuit's name.
func (c *Circuit) Name() string { return c.name }

// SetLogger attaches l to the Circuit (a nil l restores the no-op logger).
// The logger is not forwarded to the Circuit's Elements; elements that log
// take their own logger at construction (for example memory.WithRAMLogger).
func (c *Circuit) SetLogger(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	c.logger = l
}

// Logger returns the Circuit's attached logger (never nil).
func (c *Circuit) Logger() Logger { return c.logger }

// NewBus allocates and owns a Bus of the given width.
func (c *Circuit) NewBus(width int) *Bus {
	b := newBus(len(c.buses), width, c.clock)
	c.buses = append(c.buses, b)
	return b
}

// Buses returns every Bus owned by the Circuit.
func (c *Circuit) Buses() []*Bus { return c.buses }

// AddElement registers e with the Circuit, attaching it as a listener to
// every bus e.Buses() names. If e.Label() is non-empty, it must be unique
// among every labeled element added so far.
//
// Errors: ErrDuplicateLabel.
func (c *Circuit) AddElement(e Element) error {
	if lbl := e.Label(); lbl != "" {
		if c.labels[lbl] {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, lbl)
		}
		c.labels[lbl] = true
	}
	for _, b := range e.Buses() {
		b.attach(e)
	}
	c.elements = append(c.elements, e)
	return nil
}

// AddLabeledInput allocates a width-wide bus, wraps it in an InputPort
// labeled label, and registers both.
//
// Errors: ErrEmptyLabel, ErrDuplicateLabel.
func (c *Circuit) AddLabeledInput(label string, width int) (*InputPort, *Bus, error) {
	if label == "" {
		return nil, nil, ErrEmptyLabel
	}
	out := c.NewBus(width)
	port := NewInputPort(label, out)
	if err := c.AddElement(port); err != nil {
		return nil, nil, err
	}
	c.inputs[label] = port
	c.inputOrder = append(c.inputOrder, label)
	return port, out, nil
}

// AddLabeledOutput wraps bus in an OutputPort labeled label and registers
// it.
//
// Errors: ErrEmptyLabel, ErrDuplicateLabel.
func (c *Circuit) AddLabeledOutput(label string, bus *Bus) (*OutputPort, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}
	port := NewOutputPort(label, bus)
	if err := c.AddElement(port); err != nil {
		return nil, err
	}
	c.outputs[label] = port
	c.outputOrder = append(c.outputOrder, label)
	return port, nil
}

// AddMemory registers a memory-bearing element under label, in addition to
// the normal AddElement bookkeeping, so ReadMemory/WriteMemory can find it.
//
// Errors: ErrEmptyLabel, ErrDuplicateLabel.
func (c *Circuit) AddMemory(label string, m Memory) error {
	if label == "" {
		return ErrEmptyLabel
	}
	if err := c.AddElement(m); err != nil {
		return err
	}
	c.memories[label] = m
	c.memOrder = append(c.memOrder, label)
	return nil
}

// AddClock registers a clock element so the Circuit knows it must drive a
// clocked run (spec.md §4.8).
func (c *Circuit) AddClock(clk ClockElement) error {
	if err := c.AddElement(clk); err != nil {
		return err
	}
	c.clockElems = append(c.clockElems, clk)
	return nil
}

// GetInputs returns the labels of every labeled input, in registration
// order.
func (c *Circuit) GetInputs() []string { return append([]string(nil), c.inputOrder...) }

// GetOutputs returns the labels of every labeled output, in registration
// order.
func (c *Circuit) GetOutputs() []string { return append([]string(nil), c.outputOrder...) }

// GetMemory returns the labels of every registered memory, in registration
// order.
func (c *Circuit) GetMemory() []string { return append([]string(nil), c.memOrder...) }

// HasClock reports whether the Circuit contains any clock element.
func (c *Circuit) HasClock() bool { return len(c.clockElems) > 0 }

// ReadMemory reads length words (default 1) starting at address from the
// memory labeled label.
//
// Errors: ErrUnknownMemory.
func (c *Circuit) ReadMemory(label string, address bitval.BitValue, length ...int) ([]bitval.BitValue, error) {
	m, ok := c.memories[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMemory, label)
	}
	l := 1
	if len(length) > 0 {
		l = length[0]
	}
	return m.Read(address, l)
}

// WriteMemory overwrites words starting at address in the memory labeled
// label.
//
// Errors: ErrUnknownMemory.
func (c *Circuit) WriteMemory(label string, address bitval.BitValue, words []bitval.BitValue) error {
	m, ok := c.memories[label]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMemory, label)
	}
	return m.Write(address, words)
}
