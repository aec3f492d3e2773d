package gates

import (
	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
)

// naryOp is one of the six boolean reductions an nary gate folds across its
// inputs: AND/OR/XOR plus their complements.
type naryOp int

const (
	opAnd naryOp = iota
	opOr
	opXor
	opNand
	opNor
	opXnor
)

// Nary is the shared implementation behind And/Or/Xor/Nand/Nor/Xnor: an
// N-ary gate (N >= 2) over equally-wide inputs, producing an equally-wide
// output. Per spec.md §4.3, any null input yields a null output.
type Nary struct {
	circuit.Base
	op naryOp
}

func newNary(label string, inputs []*circuit.Bus, out *circuit.Bus, delay int, op naryOp) (*Nary, error) {
	if len(inputs) < 2 {
		return nil, ErrArity
	}
	w := inputs[0].Width()
	for _, in := range inputs {
		if in.Width() != w {
			return nil, ErrWidthMismatch
		}
	}
	if out.Width() != w {
		return nil, ErrWidthMismatch
	}
	return &Nary{Base: circuit.NewBase(label, inputs, []*circuit.Bus{out}, delay), op: op}, nil
}

// NewAnd constructs an N-ary AND gate.
func NewAnd(label string, inputs []*circuit.Bus, out *circuit.Bus, delay int) (*Nary, error) {
	return newNary(label, inputs, out, delay, opAnd)
}

// NewOr constructs an N-ary OR gate.
func NewOr(label string, inputs []*circuit.Bus, out *circuit.Bus, delay int) (*Nary, error) {
	return newNary(label, inputs, out, delay, opOr)
}

// NewXor constructs an N-ary XOR gate.
func NewXor(label string, inputs []*circuit.Bus, out *circuit.Bus, delay int) (*Nary, error) {
	return newNary(label, inputs, out, delay, opXor)
}

// NewNand constructs an N-ary NAND gate.
func NewNand(label string, inputs []*circuit.Bus, out *circuit.Bus, delay int) (*Nary, error) {
	return newNary(label, inputs, out, delay, opNand)
}

// NewNor constructs an N-ary NOR gate.
func NewNor(label string, inputs []*circuit.Bus, out *circuit.Bus, delay int) (*Nary, error) {
	return newNary(label, inputs, out, delay, opNor)
}

// NewXnor constructs an N-ary XNOR gate.
func NewXnor(label string, inputs []*circuit.Bus, out *circuit.Bus, delay int) (*Nary, error) {
	return newNary(label, inputs, out, delay, opXnor)
}

// Resolve implements circuit.Element.
func (g *Nary) Resolve() int {
	vals := g.inputValues()
	if anyNil(vals) {
		g.ResetOutputs()
		return g.Delay()
	}
	acc := *vals[0]
	var err error
	for _, v := range vals[1:] {
		switch g.op {
		case opAnd, opNand:
			acc, err = acc.And(*v)
		case opOr, opNor:
			acc, err = acc.Or(*v)
		case opXor, opXnor:
			acc, err = acc.Xor(*v)
		}
		if err != nil {
			g.ResetOutputs()
			return g.Delay()
		}
	}
	switch g.op {
	case opNand, opNor, opXnor:
		acc = acc.Not()
	}
	g.Outputs()[0].SetValue(&acc)
	return g.Delay()
}

// Reset implements circuit.Element.
func (g *Nary) Reset() { g.ResetOutputs() }

// circuit has unexported equivalents (Base.inputValues and the package
// function anyNil); gates needs its own copies since it cannot reach into
// circuit's internals.
func (g *Nary) inputValues() []*bitval.BitValue {
	ins := g.Inputs()
	vals := make([]*bitval.BitValue, len(ins))
	for i, in := range ins {
		vals[i] = in.Value()
	}
	return vals
}

func anyNil(vals []*bitval.BitValue) bool {
	for _, v := range vals {
		if v == nil {
			return true
		}
	}
	return false
}

// Not is the single-input, single-output bitwise complement (also usable
// as a Buffer's complement-free sibling; Buffer itself is just Not with a
// pass-through Resolve).
type Not struct {
	circuit.Base
}

// NewNot constructs a NOT gate: output = ¬input, both of the same width.
//
// Errors: ErrWidthMismatch if in and out disagree in width.
func NewNot(label string, in, out *circuit.Bus, delay int) (*Not, error) {
	if in.Width() != out.Width() {
		return nil, ErrWidthMismatch
	}
	return &Not{Base: circuit.NewBase(label, []*circuit.Bus{in}, []*circuit.Bus{out}, delay)}, nil
}

// Resolve implements circuit.Element.
func (g *Not) Resolve() int {
	v := g.Inputs()[0].Value()
	if v == nil {
		g.ResetOutputs()
		return g.Delay()
	}
	out := v.Not()
	g.Outputs()[0].SetValue(&out)
	return g.Delay()
}

// Reset implements circuit.Element.
func (g *Not) Reset() { g.ResetOutputs() }

// Buffer passes its input straight through, unchanged, after Delay.
type Buffer struct {
	circuit.Base
}

// NewBuffer constructs a Buffer: output = input, both of the same width.
//
// Errors: ErrWidthMismatch if in and out disagree in width.
func NewBuffer(label string, in, out *circuit.Bus, delay int) (*Buffer, error) {
	if in.Width() != out.Width() {
		return nil, ErrWidthMismatch
	}
	return &Buffer{Base: circuit.NewBase(label, []*circuit.Bus{in}, []*circuit.Bus{out}, delay)}, nil
}

// Resolve implements circuit.Element.
func (g *Buffer) Resolve() int {
	v := g.Inputs()[0].Value()
	if v == nil {
		g.ResetOutputs()
		return g.Delay()
	}
	out := *v
	g.Outputs()[0].SetValue(&out)
	return g.Delay()
}

// Reset implements circuit.Element.
func (g *Buffer) Reset() { g.ResetOutputs() }
