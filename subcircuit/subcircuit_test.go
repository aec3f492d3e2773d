package subcircuit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
	"github.com/katalvlaran/wiresim/gates"
	"github.com/katalvlaran/wiresim/subcircuit"
)

// halfAdder builds a one-bit half-adder circuit with labeled inputs "a","b"
// and labeled outputs "sum","cout" — spec.md §8 scenario 1, reused here as
// the inner circuit for a Subcircuit.
func halfAdder(t *testing.T) *circuit.Circuit {
	t.Helper()
	c := circuit.NewCircuit("half-adder")

	_, aBus, err := c.AddLabeledInput("a", 1)
	require.NoError(t, err)
	_, bBus, err := c.AddLabeledInput("b", 1)
	require.NoError(t, err)

	sumBus := c.NewBus(1)
	coutBus := c.NewBus(1)

	xor, err := gates.NewXor("xor1", []*circuit.Bus{aBus, bBus}, sumBus, 1)
	require.NoError(t, err)
	require.NoError(t, c.AddElement(xor))

	and, err := gates.NewAnd("and1", []*circuit.Bus{aBus, bBus}, coutBus, 1)
	require.NoError(t, err)
	require.NoError(t, c.AddElement(and))

	_, err = c.AddLabeledOutput("sum", sumBus)
	require.NoError(t, err)
	_, err = c.AddLabeledOutput("cout", coutBus)
	require.NoError(t, err)

	return c
}

// TestSubcircuit_PortCountMismatch verifies construction rejects a wiring
// whose input or output bus count disagrees with the inner circuit.
func TestSubcircuit_PortCountMismatch(t *testing.T) {
	inner := halfAdder(t)
	outer := circuit.NewCircuit("outer")
	a := outer.NewBus(1)
	sum := outer.NewBus(1)
	cout := outer.NewBus(1)

	_, err := subcircuit.New("hadd", inner, []*circuit.Bus{a}, []*circuit.Bus{sum, cout})
	require.ErrorIs(t, err, subcircuit.ErrPortCount)
}

// TestSubcircuit_ResolvesInnerCircuit verifies a Subcircuit's Resolve seeds
// the inner circuit, runs it to stability, and copies its outputs back out,
// for all four half-adder input combinations.
func TestSubcircuit_ResolvesInnerCircuit(t *testing.T) {
	inner := halfAdder(t)
	outer := circuit.NewCircuit("outer")

	a := outer.NewBus(1)
	b := outer.NewBus(1)
	sum := outer.NewBus(1)
	cout := outer.NewBus(1)

	sc, err := subcircuit.New("hadd", inner, []*circuit.Bus{a, b}, []*circuit.Bus{sum, cout})
	require.NoError(t, err)

	cases := []struct {
		a, b, sum, cout string
	}{
		{"0", "0", "0", "0"},
		{"1", "0", "1", "0"},
		{"0", "1", "1", "0"},
		{"1", "1", "0", "1"},
	}

	for _, tc := range cases {
		av, _ := bitval.FromBinary(tc.a)
		bv, _ := bitval.FromBinary(tc.b)
		a.SetValue(&av)
		b.SetValue(&bv)

		sc.Resolve()
		require.NoError(t, sc.Fault())
		require.Equal(t, tc.sum, sum.Value().String())
		require.Equal(t, tc.cout, cout.Value().String())
	}
}

// TestSubcircuit_NilInputTreatedAsZero verifies an outer input bus with no
// value yet is fed to the inner circuit as a zero of the matching width,
// rather than propagating a nil into the inner Run call.
func TestSubcircuit_NilInputTreatedAsZero(t *testing.T) {
	inner := halfAdder(t)
	outer := circuit.NewCircuit("outer")

	a := outer.NewBus(1)
	b := outer.NewBus(1)
	sum := outer.NewBus(1)
	cout := outer.NewBus(1)

	sc, err := subcircuit.New("hadd", inner, []*circuit.Bus{a, b}, []*circuit.Bus{sum, cout})
	require.NoError(t, err)

	sc.Resolve()
	require.NoError(t, sc.Fault())
	require.Equal(t, "0", sum.Value().String())
	require.Equal(t, "0", cout.Value().String())
}
