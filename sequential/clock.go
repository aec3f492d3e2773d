package sequential

import (
	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
)

// Clock is a free-running one-bit oscillator whose state is toggled
// externally by Circuit's clocked-run outer loop via SetClockState,
// grounded on the Clk board pattern from the retrieved eatersim reference.
// It never toggles itself — spec.md §4.8 assigns that responsibility to
// the Circuit, which must be able to detect "any element is a clock" and
// drive it; Clock's only job is to expose the current state on its output
// bus.
type Clock struct {
	circuit.Base
	out  *circuit.Bus
	high bool
}

// NewClock constructs a Clock driving a one-bit out.
//
// Errors: ErrWidthMismatch if out isn't one bit wide.
func NewClock(label string, out *circuit.Bus, delay int) (*Clock, error) {
	if out.Width() != 1 {
		return nil, ErrWidthMismatch
	}
	return &Clock{Base: circuit.NewBase(label, nil, []*circuit.Bus{out}, delay), out: out}, nil
}

// SetClockState implements circuit.ClockElement: it records the state the
// next Resolve will drive onto the output.
func (c *Clock) SetClockState(high bool) { c.high = high }

// Resolve implements circuit.Element.
func (c *Clock) Resolve() int {
	v := bitval.Low(1)
	if c.high {
		v = bitval.High(1)
	}
	c.out.SetValue(&v)
	return c.Delay()
}

// Reset implements circuit.Element.
func (c *Clock) Reset() {
	c.high = false
	c.ResetOutputs()
}
