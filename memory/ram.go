package memory

import (
	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
)

// RAM is a read/write memory gated by chip-select (CS), output-enable (OE),
// and write-enable (WE), all active-low per spec.md §4.5: output is null
// unless CS is low and OE is low and the address is in range; writes occur
// when CS is low and WE is low and the address is in range. Out-of-range
// access during Resolve is logged as a warning, not faulted.
type RAM struct {
	circuit.Base
	addr, dataIn    *circuit.Bus
	cs, oe, we      *circuit.Bus
	dataOut         *circuit.Bus
	store           *storage
	logger          circuit.Logger
}

// RAMOption configures optional RAM behavior.
type RAMOption func(*ramConfig)

type ramConfig struct {
	logger circuit.Logger
}

// WithRAMLogger attaches a logger RAM uses to report out-of-range accesses.
func WithRAMLogger(l circuit.Logger) RAMOption {
	return func(c *ramConfig) { c.logger = l }
}

// NewRAM constructs a RAM of capacity words, each wordWidth bits, addressed
// by addr (must be at least ⌈log₂capacity⌉ bits), written from dataIn and
// read onto dataOut (both wordWidth bits), gated by cs/oe/we (each one
// bit).
//
// Errors: ErrAddressWidth, ErrWidthMismatch, ErrControlWidth.
func NewRAM(label string, capacity, wordWidth int, addr, dataIn, cs, oe, we, dataOut *circuit.Bus, delay int, opts ...RAMOption) (*RAM, error) {
	if addr.Width() < ceilLog2(capacity) {
		return nil, ErrAddressWidth
	}
	if dataIn.Width() != wordWidth || dataOut.Width() != wordWidth {
		return nil, ErrWidthMismatch
	}
	if cs.Width() != 1 || oe.Width() != 1 || we.Width() != 1 {
		return nil, ErrControlWidth
	}
	cfg := &ramConfig{logger: noopLogger{}}
	for _, opt := range opts {
		opt(cfg)
	}
	return &RAM{
		Base:    circuit.NewBase(label, []*circuit.Bus{addr, dataIn, cs, oe, we}, []*circuit.Bus{dataOut}, delay),
		addr: addr, dataIn: dataIn, cs: cs, oe: oe, we: we, dataOut: dataOut,
		store: newStorage(capacity, wordWidth), logger: cfg.logger,
	}, nil
}

func activeLow(b *circuit.Bus) bool {
	v := b.Value()
	return v != nil && v.ToUnsigned() == 0
}

// Resolve implements circuit.Element.
func (m *RAM) Resolve() int {
	av := m.addr.Value()
	if av == nil {
		m.dataOut.Reset()
		return m.Delay()
	}
	addr := int(av.ToUnsigned())

	if activeLow(m.cs) && activeLow(m.we) {
		if dv := m.dataIn.Value(); dv != nil {
			if ok, err := m.store.write(addr, []bitval.BitValue{*dv}); err != nil {
				m.logger.Errorf("ram %q: write at %d: %v", m.Label(), addr, err)
			} else if !ok {
				m.logger.Warnf("ram %q: write address %d out of range (capacity %d)", m.Label(), addr, m.store.capacity())
			}
		}
	}

	if activeLow(m.cs) && activeLow(m.oe) {
		if words, ok := m.store.read(addr, 1); ok {
			out := words[0]
			m.dataOut.SetValue(&out)
		} else {
			m.logger.Warnf("ram %q: read address %d out of range (capacity %d)", m.Label(), addr, m.store.capacity())
			m.dataOut.Reset()
		}
	} else {
		m.dataOut.Reset()
	}
	return m.Delay()
}

// Reset implements circuit.Element: clears storage to zero and drives
// output to zero, per spec.md §4.5 ("Reset... clears the entire memory to
// zero and drives output to zero" — not merely to null/unset).
func (m *RAM) Reset() {
	m.store.clear()
	z := bitval.Low(m.dataOut.Width())
	m.dataOut.SetValue(&z)
}

// Read implements circuit.Memory: returns length words starting at
// address.
//
// Errors: ErrOutOfRange.
func (m *RAM) Read(address bitval.BitValue, length int) ([]bitval.BitValue, error) {
	words, ok := m.store.read(int(address.ToUnsigned()), length)
	if !ok {
		return nil, ErrOutOfRange
	}
	return words, nil
}

// Write implements circuit.Memory: overwrites words starting at address.
//
// Errors: ErrOutOfRange, ErrWidthMismatch.
func (m *RAM) Write(address bitval.BitValue, words []bitval.BitValue) error {
	ok, err := m.store.write(int(address.ToUnsigned()), words)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOutOfRange
	}
	return nil
}

// Initialize loads value (width a multiple of the word width) into the
// memory starting at address 0, per spec.md §4.5.
func (m *RAM) Initialize(value bitval.BitValue) error {
	return m.store.initialize(value)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{})     {}
func (noopLogger) Infof(string, ...interface{})      {}
func (noopLogger) Warnf(string, ...interface{})      {}
func (noopLogger) Errorf(string, ...interface{})     {}
func (noopLogger) Fatalf(string, ...interface{})     {}
func (noopLogger) Sub(string) circuit.Logger         { return noopLogger{} }
