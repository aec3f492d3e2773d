package sequential

import (
	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
)

// Edge selects which clock transition a Register samples on.
type Edge int

const (
	// RisingEdge samples on a 0→1 clock transition (the default for every
	// other sequential element in this package).
	RisingEdge Edge = iota
	// FallingEdge samples on a 1→0 clock transition.
	FallingEdge
)

// Register is the JLS-style width-W D storage element: configurable
// positive- or negative-edge triggered, per spec.md §4.4. Unlike
// DFlipFlop it has no Qbar output — JLS registers expose only Q.
type Register struct {
	circuit.Base
	d, clk *circuit.Bus
	q      *circuit.Bus
	edge   Edge
	det    circuit.EdgeDetector
	cfg    *flipFlopConfig
}

// NewRegister constructs a Register over d/clk (clk one bit), driving q
// (same width as d), triggered on edge.
//
// Errors: ErrControlWidth if clk/enable/reset aren't one bit;
// ErrWidthMismatch if d and q disagree in width.
func NewRegister(label string, d, clk, q *circuit.Bus, edge Edge, opts ...FlipFlopOption) (*Register, error) {
	if clk.Width() != 1 {
		return nil, ErrControlWidth
	}
	if d.Width() != q.Width() {
		return nil, ErrWidthMismatch
	}
	cfg := newFlipFlopConfig(opts...)
	if cfg.enable != nil && cfg.enable.Width() != 1 {
		return nil, ErrControlWidth
	}
	if cfg.reset != nil && cfg.reset.Width() != 1 {
		return nil, ErrControlWidth
	}
	inputs := append([]*circuit.Bus{d, clk}, cfg.buses()...)
	return &Register{
		Base: circuit.NewBase(label, inputs, []*circuit.Bus{q}, 0),
		d: d, clk: clk, q: q, edge: edge, cfg: cfg,
	}, nil
}

// Resolve implements circuit.Element.
func (e *Register) Resolve() int {
	c := e.clk.Value()
	high := c != nil && c.ToUnsigned() != 0

	if e.cfg.resetAsserted() {
		v := e.cfg.presetOrZero(e.q.Width())
		e.q.SetValue(&v)
		e.observeEdge(high)
		return e.Delay()
	}

	triggered := e.observeEdge(high)
	if triggered && e.cfg.enabled() {
		if dv := e.d.Value(); dv != nil {
			v := *dv
			e.q.SetValue(&v)
		}
	}
	return e.Delay()
}

// observeEdge records high and reports whether the Register's configured
// edge just occurred.
func (e *Register) observeEdge(high bool) bool {
	if e.edge == RisingEdge {
		return e.det.Rose(high)
	}
	return e.det.Fell(high)
}

// Initialize presets Q without requiring a clock edge.
func (e *Register) Initialize(value bitval.BitValue) {
	v := value
	e.q.SetValue(&v)
}

// Reset implements circuit.Element.
func (e *Register) Reset() {
	e.det.Reset()
	e.ResetOutputs()
}
