package splitter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
	"github.com/katalvlaran/wiresim/splitter"
)

// TestSplitter_PropOut verifies a 4-bit wide bus splits into two 2-bit
// narrow buses honoring the reversed-storage convention: narrow[0] (stored
// last) carries the low-order slice, narrow[1] (stored first) the
// high-order slice — per spec.md §4.6, scenario 3 of spec.md §8.
func TestSplitter_PropOut(t *testing.T) {
	c := circuit.NewCircuit("splitter-propout-test")
	wide := c.NewBus(4)
	n0 := c.NewBus(2) // narrow[0]: per the reversed convention, carries split[1] (low slice)
	n1 := c.NewBus(2) // narrow[1]: carries split[0] (high slice)

	s, err := splitter.NewSplitter("sp1", wide, []*circuit.Bus{n0, n1}, []int{2, 2}, 1)
	require.NoError(t, err)

	v, _ := bitval.FromBinary("1011")
	wide.SetValue(&v)
	s.Resolve()

	require.Equal(t, "10", n1.Value().String()) // high slice, split[0]
	require.Equal(t, "11", n0.Value().String()) // low slice, split[1]
}

// TestSplitter_PropIn verifies narrow buses merge into a wide value.
func TestSplitter_PropIn(t *testing.T) {
	c := circuit.NewCircuit("splitter-propin-test")
	wide := c.NewBus(4)
	n0 := c.NewBus(2)
	n1 := c.NewBus(2)

	s, err := splitter.NewSplitter("sp1", wide, []*circuit.Bus{n0, n1}, []int{2, 2}, 1)
	require.NoError(t, err)

	high, _ := bitval.FromBinary("11")
	low, _ := bitval.FromBinary("10")
	n1.SetValue(&high)
	n0.SetValue(&low)
	s.Resolve()

	require.Equal(t, "1110", wide.Value().String())
}

// TestSplitter_RoundTrip verifies spec.md §8's universal property: propOut
// followed immediately by propIn recovers the original wide value.
func TestSplitter_RoundTrip(t *testing.T) {
	c := circuit.NewCircuit("splitter-roundtrip-test")
	wide := c.NewBus(4)
	n0 := c.NewBus(2)
	n1 := c.NewBus(2)

	s, err := splitter.NewSplitter("sp1", wide, []*circuit.Bus{n0, n1}, []int{2, 2}, 1)
	require.NoError(t, err)

	original, _ := bitval.FromBinary("0110")
	wide.SetValue(&original)
	s.Resolve() // propOut

	wide.Reset()
	s.Resolve() // wide nil, narrow known -> propIn
	require.Equal(t, original.String(), wide.Value().String())
}

// TestSplitter_Contention verifies disagreement at equal timestamps is a
// fatal fault surfaced via Fault(), per spec.md §7/§8.
func TestSplitter_Contention(t *testing.T) {
	c := circuit.NewCircuit("splitter-contention-test")
	wide := c.NewBus(2)
	n0 := c.NewBus(1)
	n1 := c.NewBus(1)

	s, err := splitter.NewSplitter("sp1", wide, []*circuit.Bus{n0, n1}, []int{1, 1}, 1)
	require.NoError(t, err)

	// Seed a consistent state first: wide known, narrow unknown triggers
	// propOut, after which both sides agree and both carry the same
	// (test-clock) timestamp, since nothing here drives a scheduler.
	v, _ := bitval.FromBinary("01")
	wide.SetValue(&v)
	s.Resolve()
	require.NoError(t, s.Fault())

	// Now overwrite wide directly to a disagreeing value. Outside a
	// scheduler the shared clock's current time never advances, so this
	// write and the narrow buses' last write both carry the same
	// timestamp — exactly the "t_wide == t_narrow, values disagree"
	// condition spec.md §4.6 step 4d calls a fault.
	disagree, _ := bitval.FromBinary("10")
	wide.SetValue(&disagree)
	s.Resolve()
	require.ErrorIs(t, s.Fault(), splitter.ErrContention)
}
