package sequential

import (
	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
)

// DFlipFlop is a positive-edge-triggered D flip-flop: on a rising clock
// edge, while enabled, Q := D and Qbar := ¬Q. A synchronous reset (see
// WithSyncReset) overrides this on every resolve it is asserted, not only
// on edges. Initialize (via the embedded preset mechanism) lets a caller
// set Q directly without a clock edge, per spec.md §4.4.
type DFlipFlop struct {
	circuit.Base
	d, clk    *circuit.Bus
	q, qbar   *circuit.Bus
	cfg       *flipFlopConfig
	edge      circuit.EdgeDetector
	pendingQ  *bitval.BitValue
}

// NewDFlipFlop constructs a DFlipFlop over d/clk (clk one bit), driving q
// and qbar (equal width, qbar always the complement of q).
//
// Errors: ErrWidthMismatch if d, q, qbar disagree in width; ErrControlWidth
// if clk/enable/reset aren't one bit.
func NewDFlipFlop(label string, d, clk, q, qbar *circuit.Bus, opts ...FlipFlopOption) (*DFlipFlop, error) {
	if d.Width() != q.Width() || q.Width() != qbar.Width() {
		return nil, ErrWidthMismatch
	}
	if clk.Width() != 1 {
		return nil, ErrControlWidth
	}
	cfg := newFlipFlopConfig(opts...)
	if cfg.enable != nil && cfg.enable.Width() != 1 {
		return nil, ErrControlWidth
	}
	if cfg.reset != nil && cfg.reset.Width() != 1 {
		return nil, ErrControlWidth
	}
	inputs := append([]*circuit.Bus{d, clk}, cfg.buses()...)
	return &DFlipFlop{
		Base: circuit.NewBase(label, inputs, []*circuit.Bus{q, qbar}, 0),
		d: d, clk: clk, q: q, qbar: qbar, cfg: cfg,
	}, nil
}

// Initialize presets Q (and Qbar as its complement) without requiring a
// clock edge.
func (e *DFlipFlop) Initialize(value bitval.BitValue) {
	e.driveQ(value)
}

// Resolve implements circuit.Element.
func (e *DFlipFlop) Resolve() int {
	if e.pendingQ != nil {
		e.driveQ(*e.pendingQ)
		e.pendingQ = nil
		return e.Delay()
	}
	c := e.clk.Value()
	high := c != nil && c.ToUnsigned() != 0

	if e.cfg.resetAsserted() {
		e.driveQ(e.cfg.presetOrZero(e.q.Width()))
		e.edge.Rose(high)
		return e.Delay()
	}

	if e.edge.Rose(high) && e.cfg.enabled() {
		if dv := e.d.Value(); dv != nil {
			e.driveQ(*dv)
		}
	}
	return e.Delay()
}

func (e *DFlipFlop) driveQ(v bitval.BitValue) {
	e.q.SetValue(&v)
	qb := v.Not()
	e.qbar.SetValue(&qb)
}

// Reset implements circuit.Element.
func (e *DFlipFlop) Reset() {
	e.edge.Reset()
	e.pendingQ = nil
	e.ResetOutputs()
}

// TFlipFlop is a positive-edge-triggered T flip-flop: on a rising edge
// while enabled, Q := ¬Q when T is high (toggle), Q holds when T is low.
type TFlipFlop struct {
	circuit.Base
	t, clk  *circuit.Bus
	q, qbar *circuit.Bus
	cfg     *flipFlopConfig
	edge    circuit.EdgeDetector
}

// NewTFlipFlop constructs a TFlipFlop over t/clk (t one bit, clk one bit),
// driving q and qbar (equal width, qbar always the complement of q).
//
// Errors: ErrControlWidth if t/clk/enable/reset aren't one bit.
func NewTFlipFlop(label string, t, clk, q, qbar *circuit.Bus, opts ...FlipFlopOption) (*TFlipFlop, error) {
	if t.Width() != 1 || clk.Width() != 1 {
		return nil, ErrControlWidth
	}
	if q.Width() != qbar.Width() {
		return nil, ErrWidthMismatch
	}
	cfg := newFlipFlopConfig(opts...)
	if cfg.enable != nil && cfg.enable.Width() != 1 {
		return nil, ErrControlWidth
	}
	if cfg.reset != nil && cfg.reset.Width() != 1 {
		return nil, ErrControlWidth
	}
	inputs := append([]*circuit.Bus{t, clk}, cfg.buses()...)
	return &TFlipFlop{
		Base: circuit.NewBase(label, inputs, []*circuit.Bus{q, qbar}, 0),
		t: t, clk: clk, q: q, qbar: qbar, cfg: cfg,
	}, nil
}

// Resolve implements circuit.Element.
func (e *TFlipFlop) Resolve() int {
	c := e.clk.Value()
	high := c != nil && c.ToUnsigned() != 0

	if e.cfg.resetAsserted() {
		e.driveQ(e.cfg.presetOrZero(e.q.Width()))
		e.edge.Rose(high)
		return e.Delay()
	}

	if e.edge.Rose(high) && e.cfg.enabled() {
		tv := e.t.Value()
		if tv != nil && tv.ToUnsigned() != 0 {
			cur := e.q.Value()
			if cur == nil {
				z := bitval.Low(e.q.Width())
				cur = &z
			}
			e.driveQ(cur.Not())
		}
	}
	return e.Delay()
}

func (e *TFlipFlop) driveQ(v bitval.BitValue) {
	e.q.SetValue(&v)
	qb := v.Not()
	e.qbar.SetValue(&qb)
}

// Reset implements circuit.Element.
func (e *TFlipFlop) Reset() {
	e.edge.Reset()
	e.ResetOutputs()
}

// JKFlipFlop is a positive-edge-triggered JK flip-flop: J=0,K=0 hold;
// J=1,K=0 set; J=0,K=1 reset; J=1,K=1 toggle, all one-bit wide.
type JKFlipFlop struct {
	circuit.Base
	j, k, clk *circuit.Bus
	q, qbar   *circuit.Bus
	cfg       *flipFlopConfig
	edge      circuit.EdgeDetector
}

// NewJKFlipFlop constructs a JKFlipFlop over j/k/clk (all one bit), driving
// q and qbar (one bit each).
//
// Errors: ErrControlWidth if any of j/k/clk/enable/reset isn't one bit;
// ErrWidthMismatch if q/qbar aren't one bit.
func NewJKFlipFlop(label string, j, k, clk, q, qbar *circuit.Bus, opts ...FlipFlopOption) (*JKFlipFlop, error) {
	if j.Width() != 1 || k.Width() != 1 || clk.Width() != 1 {
		return nil, ErrControlWidth
	}
	if q.Width() != 1 || qbar.Width() != 1 {
		return nil, ErrWidthMismatch
	}
	cfg := newFlipFlopConfig(opts...)
	if cfg.enable != nil && cfg.enable.Width() != 1 {
		return nil, ErrControlWidth
	}
	if cfg.reset != nil && cfg.reset.Width() != 1 {
		return nil, ErrControlWidth
	}
	inputs := append([]*circuit.Bus{j, k, clk}, cfg.buses()...)
	return &JKFlipFlop{
		Base: circuit.NewBase(label, inputs, []*circuit.Bus{q, qbar}, 0),
		j: j, k: k, clk: clk, q: q, qbar: qbar, cfg: cfg,
	}, nil
}

// Resolve implements circuit.Element.
func (e *JKFlipFlop) Resolve() int {
	c := e.clk.Value()
	high := c != nil && c.ToUnsigned() != 0

	if e.cfg.resetAsserted() {
		e.driveQ(e.cfg.presetOrZero(1))
		e.edge.Rose(high)
		return e.Delay()
	}

	if e.edge.Rose(high) && e.cfg.enabled() {
		jv, kv := e.j.Value(), e.k.Value()
		jh := jv != nil && jv.ToUnsigned() != 0
		kh := kv != nil && kv.ToUnsigned() != 0
		cur := e.q.Value()
		curHigh := cur != nil && cur.ToUnsigned() != 0

		switch {
		case !jh && !kh:
			// hold
		case jh && !kh:
			e.driveQ(bitval.High(1))
		case !jh && kh:
			e.driveQ(bitval.Low(1))
		default: // toggle
			if curHigh {
				e.driveQ(bitval.Low(1))
			} else {
				e.driveQ(bitval.High(1))
			}
		}
	}
	return e.Delay()
}

func (e *JKFlipFlop) driveQ(v bitval.BitValue) {
	e.q.SetValue(&v)
	qb := v.Not()
	e.qbar.SetValue(&qb)
}

// Reset implements circuit.Element.
func (e *JKFlipFlop) Reset() {
	e.edge.Reset()
	e.ResetOutputs()
}
