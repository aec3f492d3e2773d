package memory

import (
	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
)

// ROM is functionally a RAM with no data-in and no write-enable pin, per
// spec.md §4.5 — it still honors chip-select/output-enable. Its Write
// method (required to satisfy circuit.Memory) is a loader-time operation
// only: there is no bus through which a running circuit can mutate it.
type ROM struct {
	circuit.Base
	addr, cs, oe *circuit.Bus
	dataOut      *circuit.Bus
	store        *storage
	logger       circuit.Logger
}

// NewROM constructs a ROM of capacity words, each wordWidth bits, addressed
// by addr, read onto dataOut, gated by cs/oe (each one bit).
//
// Errors: ErrAddressWidth, ErrWidthMismatch, ErrControlWidth.
func NewROM(label string, capacity, wordWidth int, addr, cs, oe, dataOut *circuit.Bus, delay int, opts ...RAMOption) (*ROM, error) {
	if addr.Width() < ceilLog2(capacity) {
		return nil, ErrAddressWidth
	}
	if dataOut.Width() != wordWidth {
		return nil, ErrWidthMismatch
	}
	if cs.Width() != 1 || oe.Width() != 1 {
		return nil, ErrControlWidth
	}
	cfg := &ramConfig{logger: noopLogger{}}
	for _, opt := range opts {
		opt(cfg)
	}
	return &ROM{
		Base:    circuit.NewBase(label, []*circuit.Bus{addr, cs, oe}, []*circuit.Bus{dataOut}, delay),
		addr: addr, cs: cs, oe: oe, dataOut: dataOut,
		store: newStorage(capacity, wordWidth), logger: cfg.logger,
	}, nil
}

// Resolve implements circuit.Element.
func (m *ROM) Resolve() int {
	av := m.addr.Value()
	if av == nil || !activeLow(m.cs) || !activeLow(m.oe) {
		m.dataOut.Reset()
		return m.Delay()
	}
	addr := int(av.ToUnsigned())
	words, ok := m.store.read(addr, 1)
	if !ok {
		m.logger.Warnf("rom %q: read address %d out of range (capacity %d)", m.Label(), addr, m.store.capacity())
		m.dataOut.Reset()
		return m.Delay()
	}
	out := words[0]
	m.dataOut.SetValue(&out)
	return m.Delay()
}

// Reset implements circuit.Element. ROM content survives Reset (it is
// loaded once, at construction/initialization time); only the output bus
// is driven to zero, per spec.md §4.5.
func (m *ROM) Reset() {
	z := bitval.Low(m.dataOut.Width())
	m.dataOut.SetValue(&z)
}

// Read implements circuit.Memory.
//
// Errors: ErrOutOfRange.
func (m *ROM) Read(address bitval.BitValue, length int) ([]bitval.BitValue, error) {
	words, ok := m.store.read(int(address.ToUnsigned()), length)
	if !ok {
		return nil, ErrOutOfRange
	}
	return words, nil
}

// Write implements circuit.Memory as a loader-time content-setting
// operation; ROM has no bus-level write path.
//
// Errors: ErrOutOfRange, ErrWidthMismatch.
func (m *ROM) Write(address bitval.BitValue, words []bitval.BitValue) error {
	ok, err := m.store.write(int(address.ToUnsigned()), words)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOutOfRange
	}
	return nil
}

// Initialize loads value into the ROM starting at address 0.
func (m *ROM) Initialize(value bitval.BitValue) error {
	return m.store.initialize(value)
}
