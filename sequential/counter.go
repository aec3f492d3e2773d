package sequential

import (
	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
)

// Counter increments modulo maxValue+1 on each clock rise, per spec.md
// §4.3; a synchronous reset drives it to 0 on the next rising edge instead
// of incrementing. A separate one-bit zero output reads high exactly when
// the count is 0.
type Counter struct {
	circuit.Base
	clk, reset *circuit.Bus
	out, zero  *circuit.Bus
	maxValue   uint64
	edge       circuit.EdgeDetector
}

// NewCounter constructs a Counter clocked by clk (one bit) and gated by
// reset (one bit), counting 0..maxValue inclusive, driving out (wide
// enough to hold maxValue) and a one-bit zero indicator.
//
// Errors: ErrControlWidth if clk/reset aren't one bit, or zero isn't one
// bit.
func NewCounter(label string, clk, reset, out, zero *circuit.Bus, maxValue uint64, delay int) (*Counter, error) {
	if clk.Width() != 1 || reset.Width() != 1 {
		return nil, ErrControlWidth
	}
	if zero.Width() != 1 {
		return nil, ErrControlWidth
	}
	return &Counter{
		Base: circuit.NewBase(label, []*circuit.Bus{clk, reset}, []*circuit.Bus{out, zero}, delay),
		clk: clk, reset: reset, out: out, zero: zero, maxValue: maxValue,
	}, nil
}

// Resolve implements circuit.Element.
func (c *Counter) Resolve() int {
	high := false
	if v := c.clk.Value(); v != nil {
		high = v.ToUnsigned() != 0
	}
	if c.edge.Rose(high) {
		cur := uint64(0)
		if v := c.out.Value(); v != nil {
			cur = v.ToUnsigned()
		}
		rv := c.reset.Value()
		resetHigh := rv != nil && rv.ToUnsigned() != 0

		var next uint64
		if resetHigh {
			next = 0
		} else {
			next = (cur + 1) % (c.maxValue + 1)
		}
		out, _ := bitval.Make(int64(next), c.out.Width())
		c.out.SetValue(&out)

		z := bitval.Low(1)
		if next == 0 {
			z = bitval.High(1)
		}
		c.zero.SetValue(&z)
	}
	return c.Delay()
}

// Reset implements circuit.Element.
func (c *Counter) Reset() {
	c.edge.Reset()
	c.ResetOutputs()
}
