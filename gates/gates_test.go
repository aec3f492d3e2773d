package gates_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
	"github.com/katalvlaran/wiresim/gates"
)

// resolveAll resolves every given element once, in order, returning nothing — a
// thin stand-in for a full Circuit.Run used to unit-test individual gates
// without the scheduler's bookkeeping.
func resolveAll(elems ...circuit.Element) {
	for _, e := range elems {
		e.Resolve()
	}
}

func bit(v int64) bitval.BitValue {
	b, _ := bitval.Make(v, 1)
	return b
}

// TestNary_ANDOrXor verifies the three positive N-ary gates and the
// two-input minimum.
func TestNary_ANDOrXor(t *testing.T) {
	c := circuit.NewCircuit("nary-test")
	a := c.NewBus(4)
	b := c.NewBus(4)
	out := c.NewBus(4)

	av, _ := bitval.FromBinary("1100")
	bv, _ := bitval.FromBinary("1010")
	a.SetValue(&av)
	b.SetValue(&bv)

	and, err := gates.NewAnd("and1", []*circuit.Bus{a, b}, out, 1)
	require.NoError(t, err)
	resolveAll(and)
	require.Equal(t, "1000", out.Value().String())

	or, err := gates.NewOr("or1", []*circuit.Bus{a, b}, out, 1)
	require.NoError(t, err)
	resolveAll(or)
	require.Equal(t, "1110", out.Value().String())

	xor, err := gates.NewXor("xor1", []*circuit.Bus{a, b}, out, 1)
	require.NoError(t, err)
	resolveAll(xor)
	require.Equal(t, "0110", out.Value().String())

	_, err = gates.NewAnd("bad", []*circuit.Bus{a}, out, 1)
	require.ErrorIs(t, err, gates.ErrArity)
}

// TestNand_NullPropagation verifies a null input drives the output null.
func TestNand_NullPropagation(t *testing.T) {
	c := circuit.NewCircuit("null-test")
	a := c.NewBus(2)
	b := c.NewBus(2)
	out := c.NewBus(2)
	av, _ := bitval.FromBinary("11")
	a.SetValue(&av)

	nand, err := gates.NewNand("nand1", []*circuit.Bus{a, b}, out, 1)
	require.NoError(t, err)
	resolveAll(nand)
	require.Nil(t, out.Value())
}

// TestMux_SelectsData verifies Mux output tracks the selected data input.
func TestMux_SelectsData(t *testing.T) {
	c := circuit.NewCircuit("mux-test")
	d0 := c.NewBus(2)
	d1 := c.NewBus(2)
	d2 := c.NewBus(2)
	d3 := c.NewBus(2)
	sel := c.NewBus(2)
	out := c.NewBus(2)

	v0, _ := bitval.FromBinary("00")
	v1, _ := bitval.FromBinary("01")
	v2, _ := bitval.FromBinary("10")
	v3, _ := bitval.FromBinary("11")
	d0.SetValue(&v0)
	d1.SetValue(&v1)
	d2.SetValue(&v2)
	d3.SetValue(&v3)

	mux, err := gates.NewMux("mux1", []*circuit.Bus{d0, d1, d2, d3}, sel, out, 1)
	require.NoError(t, err)

	two, _ := bitval.Make(2, 2)
	sel.SetValue(&two)
	resolveAll(mux)
	require.Equal(t, "10", out.Value().String())
}

// TestDecoder_OneHot verifies exactly one output is high, matching the
// input's unsigned value.
func TestDecoder_OneHot(t *testing.T) {
	c := circuit.NewCircuit("decoder-test")
	in := c.NewBus(2)
	outs := []*circuit.Bus{c.NewBus(1), c.NewBus(1), c.NewBus(1), c.NewBus(1)}

	dec, err := gates.NewDecoder("dec1", in, outs, 1)
	require.NoError(t, err)

	two, _ := bitval.Make(2, 2)
	in.SetValue(&two)
	resolveAll(dec)

	for i, o := range outs {
		if i == 2 {
			require.Equal(t, "1", o.Value().String())
		} else {
			require.Equal(t, "0", o.Value().String())
		}
	}
}

// TestAdder_SumAndCarry verifies Adder's sum/carry-out against a known
// overflow case.
func TestAdder_SumAndCarry(t *testing.T) {
	c := circuit.NewCircuit("adder-test")
	a := c.NewBus(4)
	b := c.NewBus(4)
	cin := c.NewBus(1)
	sum := c.NewBus(4)
	cout := c.NewBus(1)

	av, _ := bitval.FromBinary("1111")
	bv, _ := bitval.FromBinary("0001")
	zero := bit(0)
	a.SetValue(&av)
	b.SetValue(&bv)
	cin.SetValue(&zero)

	adder, err := gates.NewAdder("add1", a, b, cin, sum, cout, 1)
	require.NoError(t, err)
	resolveAll(adder)

	require.Equal(t, "0000", sum.Value().String())
	require.Equal(t, "1", cout.Value().String())
}

// TestALU_Operations verifies a handful of the ALU's documented control
// codes.
func TestALU_Operations(t *testing.T) {
	c := circuit.NewCircuit("alu-test")
	a := c.NewBus(4)
	b := c.NewBus(4)
	ctrl := c.NewBus(3)
	result := c.NewBus(4)
	co := c.NewBus(1)

	av, _ := bitval.FromBinary("0110")
	bv, _ := bitval.FromBinary("0011")
	a.SetValue(&av)
	b.SetValue(&bv)

	alu, err := gates.NewALU("alu1", a, b, ctrl, result, co, 1)
	require.NoError(t, err)

	addCode, _ := bitval.Make(gates.ALUAdd, 3)
	ctrl.SetValue(&addCode)
	resolveAll(alu)
	require.Equal(t, "1001", result.Value().String())

	ltCode, _ := bitval.Make(gates.ALULessThan, 3)
	ctrl.SetValue(&ltCode)
	resolveAll(alu)
	require.Equal(t, uint64(0), result.Value().ToUnsigned())
}

// TestTriState_HighImpedance verifies output is null when control is low.
func TestTriState_HighImpedance(t *testing.T) {
	c := circuit.NewCircuit("tristate-test")
	in := c.NewBus(2)
	ctrl := c.NewBus(1)
	out := c.NewBus(2)

	v, _ := bitval.FromBinary("11")
	in.SetValue(&v)
	low := bit(0)
	ctrl.SetValue(&low)

	ts, err := gates.NewTriState("ts1", in, ctrl, out, 1)
	require.NoError(t, err)
	resolveAll(ts)
	require.Nil(t, out.Value())

	high := bit(1)
	ctrl.SetValue(&high)
	resolveAll(ts)
	require.Equal(t, "11", out.Value().String())
}

// TestExtend_SplatsSingleBit verifies the N-copies behavior from spec.md
// §8 scenario 6.
func TestExtend_SplatsSingleBit(t *testing.T) {
	c := circuit.NewCircuit("extend-test")
	in := c.NewBus(1)
	out := c.NewBus(8)

	one := bit(1)
	in.SetValue(&one)

	ext, err := gates.NewExtend("ext1", in, out, 1)
	require.NoError(t, err)
	resolveAll(ext)
	require.Equal(t, "11111111", out.Value().String())
}

// TestConstant_PowerAndGround verifies the Power/Ground convenience
// constructors drive all-ones/all-zeros.
func TestConstant_PowerAndGround(t *testing.T) {
	c := circuit.NewCircuit("const-test")
	vcc := c.NewBus(4)
	gnd := c.NewBus(4)

	power, err := gates.NewPower("vcc", vcc, 0)
	require.NoError(t, err)
	ground, err := gates.NewGround("gnd", gnd, 0)
	require.NoError(t, err)

	resolveAll(power, ground)
	require.Equal(t, "1111", vcc.Value().String())
	require.Equal(t, "0000", gnd.Value().String())
}
