package gates

import (
	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
)

// Adder computes a width-W sum with carry-in and carry-out, per spec.md
// §4.3. The carry-out is exposed on its own one-bit bus rather than folded
// into a wider sum, matching the spec's "outputs sum (width W) and
// carry-out" wording.
type Adder struct {
	circuit.Base
	a, b, cin   *circuit.Bus
	sum, cout   *circuit.Bus
}

// NewAdder constructs an Adder over equally-wide a, b (width W) and a
// one-bit cin, driving sum (width W) and cout (one bit).
//
// Errors: ErrWidthMismatch if a/b/sum disagree in width or cin/cout aren't
// 1 bit wide.
func NewAdder(label string, a, b, cin, sum, cout *circuit.Bus, delay int) (*Adder, error) {
	if a.Width() != b.Width() || a.Width() != sum.Width() {
		return nil, ErrWidthMismatch
	}
	if cin.Width() != 1 || cout.Width() != 1 {
		return nil, ErrWidthMismatch
	}
	return &Adder{
		Base: circuit.NewBase(label, []*circuit.Bus{a, b, cin}, []*circuit.Bus{sum, cout}, delay),
		a: a, b: b, cin: cin, sum: sum, cout: cout,
	}, nil
}

// Resolve implements circuit.Element.
func (e *Adder) Resolve() int {
	av, bv, cv := e.a.Value(), e.b.Value(), e.cin.Value()
	if av == nil || bv == nil || cv == nil {
		e.ResetOutputs()
		return e.Delay()
	}
	sum, cout, err := bitval.AddWithCarry(*av, *bv, cv.ToUnsigned() != 0)
	if err != nil {
		e.ResetOutputs()
		return e.Delay()
	}
	e.sum.SetValue(&sum)
	coutVal, _ := bitval.Make(boolToInt(cout), 1)
	e.cout.SetValue(&coutVal)
	return e.Delay()
}

// Reset implements circuit.Element.
func (e *Adder) Reset() { e.ResetOutputs() }

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// TwosComplement drives output = not(input).add(1) at the input's width,
// per spec.md §4.3's TwosCompliment element (spelling preserved in
// bitval.BitValue.TwosCompliment; the element type name uses standard
// English spelling since it is new Go-facing API, not a literal port of a
// spec identifier).
type TwosComplement struct {
	circuit.Base
}

// NewTwosComplement constructs a TwosComplement element: output =
// ¬input + 1 at the input's width.
//
// Errors: ErrWidthMismatch if in and out disagree in width.
func NewTwosComplement(label string, in, out *circuit.Bus, delay int) (*TwosComplement, error) {
	if in.Width() != out.Width() {
		return nil, ErrWidthMismatch
	}
	return &TwosComplement{Base: circuit.NewBase(label, []*circuit.Bus{in}, []*circuit.Bus{out}, delay)}, nil
}

// Resolve implements circuit.Element.
func (e *TwosComplement) Resolve() int {
	v := e.Inputs()[0].Value()
	if v == nil {
		e.ResetOutputs()
		return e.Delay()
	}
	out := v.TwosCompliment()
	e.Outputs()[0].SetValue(&out)
	return e.Delay()
}

// Reset implements circuit.Element.
func (e *TwosComplement) Reset() { e.ResetOutputs() }

// ALU control codes, per spec.md §4.3.
const (
	ALUAnd        = 0b000
	ALUOr         = 0b001
	ALUAdd        = 0b010
	ALUAndNotB    = 0b100
	ALUOrNotB     = 0b101
	ALUSub        = 0b110
	ALULessThan   = 0b111
)

// ALU computes one of several width-W operations on A/B selected by a
// 3-bit control code, producing a width-W result and a carry-out bit.
// Unknown control codes drive the result low (per spec.md §4.3); carry-out
// is only meaningful for ALUAdd/ALUSub and is zero otherwise.
type ALU struct {
	circuit.Base
	a, b, ctrl  *circuit.Bus
	result, co  *circuit.Bus
}

// NewALU constructs an ALU over equally-wide a, b (width W), a 3-bit ctrl,
// driving result (width W) and co (one bit).
//
// Errors: ErrWidthMismatch if a/b/result disagree in width, ctrl isn't 3
// bits, or co isn't 1 bit.
func NewALU(label string, a, b, ctrl, result, co *circuit.Bus, delay int) (*ALU, error) {
	if a.Width() != b.Width() || a.Width() != result.Width() {
		return nil, ErrWidthMismatch
	}
	if ctrl.Width() != 3 || co.Width() != 1 {
		return nil, ErrWidthMismatch
	}
	return &ALU{
		Base: circuit.NewBase(label, []*circuit.Bus{a, b, ctrl}, []*circuit.Bus{result, co}, delay),
		a: a, b: b, ctrl: ctrl, result: result, co: co,
	}, nil
}

// Resolve implements circuit.Element.
func (e *ALU) Resolve() int {
	av, bv, cv := e.a.Value(), e.b.Value(), e.ctrl.Value()
	if av == nil || bv == nil || cv == nil {
		e.ResetOutputs()
		return e.Delay()
	}
	code := int(cv.ToUnsigned())
	w := av.Width()

	var res bitval.BitValue
	var cout bool
	switch code {
	case ALUAnd:
		res, _ = av.And(*bv)
	case ALUOr:
		res, _ = av.Or(*bv)
	case ALUAdd:
		res, cout, _ = bitval.AddWithCarry(*av, *bv, false)
	case ALUAndNotB:
		res, _ = av.And(bv.Not())
	case ALUOrNotB:
		res, _ = av.Or(bv.Not())
	case ALUSub:
		res, cout, _ = bitval.AddWithCarry(*av, bv.TwosCompliment(), false)
	case ALULessThan:
		lt, _ := av.LessThan(*bv)
		res, _ = bitval.Make(boolToInt(lt), w)
	default:
		res = bitval.Low(w)
	}
	e.result.SetValue(&res)
	coutVal, _ := bitval.Make(boolToInt(cout), 1)
	e.co.SetValue(&coutVal)
	return e.Delay()
}

// Reset implements circuit.Element.
func (e *ALU) Reset() { e.ResetOutputs() }
