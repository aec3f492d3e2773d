package sequential

import (
	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
)

// SRLatch is a level-sensitive set/reset latch with the deliberately
// non-standard S=1,R=1 policy spec.md §4.4 calls out for determinism: that
// combination holds rather than entering the usual undefined state.
//
//	S=1,R=0 → set (Q=1)
//	S=0,R=1 → reset (Q=0)
//	S=1,R=1 → hold (documented deviation from the textbook "invalid" state)
//	S=0,R=0 → hold
type SRLatch struct {
	circuit.Base
	s, r    *circuit.Bus
	q, qbar *circuit.Bus
}

// NewSRLatch constructs an SRLatch over one-bit s/r, driving one-bit q/qbar.
//
// Errors: ErrControlWidth if s/r aren't one bit; ErrWidthMismatch if q/qbar
// aren't one bit.
func NewSRLatch(label string, s, r, q, qbar *circuit.Bus) (*SRLatch, error) {
	if s.Width() != 1 || r.Width() != 1 {
		return nil, ErrControlWidth
	}
	if q.Width() != 1 || qbar.Width() != 1 {
		return nil, ErrWidthMismatch
	}
	return &SRLatch{
		Base: circuit.NewBase(label, []*circuit.Bus{s, r}, []*circuit.Bus{q, qbar}, 0),
		s: s, r: r, q: q, qbar: qbar,
	}, nil
}

// Resolve implements circuit.Element.
func (e *SRLatch) Resolve() int {
	sv, rv := e.s.Value(), e.r.Value()
	sh := sv != nil && sv.ToUnsigned() != 0
	rh := rv != nil && rv.ToUnsigned() != 0

	switch {
	case sh && !rh:
		e.driveQ(bitval.High(1))
	case !sh && rh:
		e.driveQ(bitval.Low(1))
	default:
		// sh && rh, or !sh && !rh: hold, no bus write.
	}
	return e.Delay()
}

func (e *SRLatch) driveQ(v bitval.BitValue) {
	e.q.SetValue(&v)
	qb := v.Not()
	e.qbar.SetValue(&qb)
}

// Reset implements circuit.Element.
func (e *SRLatch) Reset() { e.ResetOutputs() }

// DLatch is transparent while clock is high: Q follows D continuously (not
// only at the moment of transition). spec.md §9 notes the original source
// instead drives Q to ¬D on the rising edge — a known inconsistency that is
// intentionally NOT reproduced here; this type implements the corrected,
// textbook-transparent behavior spec.md §4.4 describes as current.
type DLatch struct {
	circuit.Base
	d, clk  *circuit.Bus
	q, qbar *circuit.Bus
}

// NewDLatch constructs a DLatch over d/clk (clk one bit), driving q/qbar
// (equal width).
//
// Errors: ErrControlWidth if clk isn't one bit; ErrWidthMismatch if d/q/qbar
// disagree in width.
func NewDLatch(label string, d, clk, q, qbar *circuit.Bus) (*DLatch, error) {
	if clk.Width() != 1 {
		return nil, ErrControlWidth
	}
	if d.Width() != q.Width() || q.Width() != qbar.Width() {
		return nil, ErrWidthMismatch
	}
	return &DLatch{
		Base: circuit.NewBase(label, []*circuit.Bus{d, clk}, []*circuit.Bus{q, qbar}, 0),
		d: d, clk: clk, q: q, qbar: qbar,
	}, nil
}

// Resolve implements circuit.Element.
func (e *DLatch) Resolve() int {
	c := e.clk.Value()
	if c == nil || c.ToUnsigned() == 0 {
		return e.Delay()
	}
	dv := e.d.Value()
	if dv == nil {
		return e.Delay()
	}
	v := *dv
	e.q.SetValue(&v)
	qb := v.Not()
	e.qbar.SetValue(&qb)
	return e.Delay()
}

// Reset implements circuit.Element.
func (e *DLatch) Reset() { e.ResetOutputs() }
