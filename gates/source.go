package gates

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
)

// TriState drives output = input when control is high; otherwise output is
// null (high impedance), per spec.md §4.3.
type TriState struct {
	circuit.Base
	in, ctrl *circuit.Bus
	out      *circuit.Bus
}

// NewTriState constructs a TriState gate: out = in when ctrl is high, else
// high-impedance (null).
//
// Errors: ErrWidthMismatch if in and out disagree in width, or ctrl isn't 1
// bit wide.
func NewTriState(label string, in, ctrl, out *circuit.Bus, delay int) (*TriState, error) {
	if in.Width() != out.Width() {
		return nil, ErrWidthMismatch
	}
	if ctrl.Width() != 1 {
		return nil, ErrWidthMismatch
	}
	return &TriState{Base: circuit.NewBase(label, []*circuit.Bus{in, ctrl}, []*circuit.Bus{out}, delay), in: in, ctrl: ctrl, out: out}, nil
}

// Resolve implements circuit.Element.
func (e *TriState) Resolve() int {
	c := e.ctrl.Value()
	if c == nil || c.ToUnsigned() == 0 {
		e.ResetOutputs()
		return e.Delay()
	}
	v := e.in.Value()
	if v == nil {
		e.ResetOutputs()
		return e.Delay()
	}
	out := *v
	e.out.SetValue(&out)
	return e.Delay()
}

// Reset implements circuit.Element.
func (e *TriState) Reset() { e.ResetOutputs() }

// ControlledInverter drives output = ¬input when control is high; else
// null, per spec.md §4.3.
type ControlledInverter struct {
	circuit.Base
	in, ctrl *circuit.Bus
	out      *circuit.Bus
}

// NewControlledInverter constructs a ControlledInverter: out = ¬in when
// ctrl is high, else null.
//
// Errors: ErrWidthMismatch if in and out disagree in width, or ctrl isn't 1
// bit wide.
func NewControlledInverter(label string, in, ctrl, out *circuit.Bus, delay int) (*ControlledInverter, error) {
	if in.Width() != out.Width() {
		return nil, ErrWidthMismatch
	}
	if ctrl.Width() != 1 {
		return nil, ErrWidthMismatch
	}
	return &ControlledInverter{Base: circuit.NewBase(label, []*circuit.Bus{in, ctrl}, []*circuit.Bus{out}, delay), in: in, ctrl: ctrl, out: out}, nil
}

// Resolve implements circuit.Element.
func (e *ControlledInverter) Resolve() int {
	c := e.ctrl.Value()
	if c == nil || c.ToUnsigned() == 0 {
		e.ResetOutputs()
		return e.Delay()
	}
	v := e.in.Value()
	if v == nil {
		e.ResetOutputs()
		return e.Delay()
	}
	out := v.Not()
	e.out.SetValue(&out)
	return e.Delay()
}

// Reset implements circuit.Element.
func (e *ControlledInverter) Reset() { e.ResetOutputs() }

// Constant drives a fixed value on its output every resolve. Power and
// Ground are named convenience constructors over the same type (all-ones
// and all-zeros respectively), matching spec.md §4.3's "Constant / Power /
// Ground" grouping.
type Constant struct {
	circuit.Base
	value bitval.BitValue
	out   *circuit.Bus
}

// NewConstant constructs a Constant driving value onto out on every
// resolve.
//
// Errors: ErrWidthMismatch if value's width doesn't match out's.
func NewConstant(label string, value bitval.BitValue, out *circuit.Bus, delay int) (*Constant, error) {
	if value.Width() != out.Width() {
		return nil, ErrWidthMismatch
	}
	return &Constant{Base: circuit.NewBase(label, nil, []*circuit.Bus{out}, delay), value: value, out: out}, nil
}

// NewPower constructs a Constant driving all-ones onto out.
func NewPower(label string, out *circuit.Bus, delay int) (*Constant, error) {
	return NewConstant(label, bitval.High(out.Width()), out, delay)
}

// NewGround constructs a Constant driving all-zeros onto out.
func NewGround(label string, out *circuit.Bus, delay int) (*Constant, error) {
	return NewConstant(label, bitval.Low(out.Width()), out, delay)
}

// Resolve implements circuit.Element.
func (e *Constant) Resolve() int {
	v := e.value
	e.out.SetValue(&v)
	return e.Delay()
}

// Reset implements circuit.Element. A Constant's output is re-driven on
// the next Resolve regardless, so Reset only clears the bus so readers
// never observe a stale value before that happens.
func (e *Constant) Reset() { e.ResetOutputs() }

// Random drives a uniform value in [0, maxValue] onto its output on every
// rising edge observed on clk, per spec.md §4.3. math/rand is used since
// none of the retrieved pack libraries provide a PRNG — see DESIGN.md.
type Random struct {
	circuit.Base
	clk      *circuit.Bus
	out      *circuit.Bus
	maxValue uint64
	edge     circuit.EdgeDetector
	rng      *rand.Rand
}

// NewRandom constructs a Random source bounded to [0, maxValue] inclusive,
// clocked by clk (one bit).
//
// Errors: ErrWidthMismatch if clk isn't 1 bit wide.
func NewRandom(label string, clk, out *circuit.Bus, maxValue uint64, delay int) (*Random, error) {
	if clk.Width() != 1 {
		return nil, ErrWidthMismatch
	}
	return &Random{
		Base:     circuit.NewBase(label, []*circuit.Bus{clk}, []*circuit.Bus{out}, delay),
		clk:      clk, out: out, maxValue: maxValue,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Resolve implements circuit.Element.
func (e *Random) Resolve() int {
	c := e.clk.Value()
	high := c != nil && c.ToUnsigned() != 0
	if e.edge.Rose(high) {
		v, _ := bitval.Make(int64(e.rng.Uint64()%(e.maxValue+1)), e.out.Width())
		e.out.SetValue(&v)
	}
	return e.Delay()
}

// Reset implements circuit.Element.
func (e *Random) Reset() {
	e.edge.Reset()
	e.ResetOutputs()
}

// Extend splats a single-bit input across every bit of an N-bit output —
// the "make N copies" operation of spec.md §8 scenario 6, absent from the
// element list of spec.md §4.3 but required by that worked example.
type Extend struct {
	circuit.Base
	in  *circuit.Bus
	out *circuit.Bus
}

// NewExtend constructs an Extend element: out[i] = in for every i, in is
// one bit wide.
//
// Errors: ErrWidthMismatch if in isn't 1 bit wide.
func NewExtend(label string, in, out *circuit.Bus, delay int) (*Extend, error) {
	if in.Width() != 1 {
		return nil, ErrWidthMismatch
	}
	return &Extend{Base: circuit.NewBase(label, []*circuit.Bus{in}, []*circuit.Bus{out}, delay), in: in, out: out}, nil
}

// Resolve implements circuit.Element.
func (e *Extend) Resolve() int {
	v := e.in.Value()
	if v == nil {
		e.ResetOutputs()
		return e.Delay()
	}
	var out bitval.BitValue
	if v.ToUnsigned() != 0 {
		out = bitval.High(e.out.Width())
	} else {
		out = bitval.Low(e.out.Width())
	}
	e.out.SetValue(&out)
	return e.Delay()
}

// Reset implements circuit.Element.
func (e *Extend) Reset() { e.ResetOutputs() }
