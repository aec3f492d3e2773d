package bitval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wiresim/bitval"
)

// TestBitValue_Construction verifies FromBinary/FromHex/Low/High/Make.
// Implementation:
//   - Stage 1: binary literal round-trips to the same string.
//   - Stage 2: hex literal decodes to the expected binary.
//   - Stage 3: explicit width truncates from the MSB and pads from the MSB.
//   - Stage 4: Make requires an explicit width for negative values.
func TestBitValue_Construction(t *testing.T) {
	// Stage 1
	v, err := bitval.FromBinary("1011")
	require.NoError(t, err)
	require.Equal(t, "1011", v.String())
	require.Equal(t, 4, v.Width())

	// Stage 2
	h, err := bitval.FromHex("0xB")
	require.NoError(t, err)
	require.Equal(t, "1011", h.String())

	// Stage 3: truncate from MSB when shorter width requested.
	short, err := bitval.FromBinary("1011", 2)
	require.NoError(t, err)
	require.Equal(t, "11", short.String())

	// pad from MSB (left-pad zeros) when wider width requested.
	long, err := bitval.FromBinary("11", 4)
	require.NoError(t, err)
	require.Equal(t, "0011", long.String())

	// Stage 4
	_, err = bitval.Make(-1)
	require.ErrorIs(t, err, bitval.ErrWidthRequired)

	neg, err := bitval.Make(-1, 4)
	require.NoError(t, err)
	require.Equal(t, "1111", neg.String())
}

// TestBitValue_BitwiseOps verifies And/Or/Xor/Not and their width checks.
func TestBitValue_BitwiseOps(t *testing.T) {
	a, _ := bitval.FromBinary("1100")
	b, _ := bitval.FromBinary("1010")

	and, err := a.And(b)
	require.NoError(t, err)
	require.Equal(t, "1000", and.String())

	or, err := a.Or(b)
	require.NoError(t, err)
	require.Equal(t, "1110", or.String())

	xor, err := a.Xor(b)
	require.NoError(t, err)
	require.Equal(t, "0110", xor.String())

	require.Equal(t, "0011", a.Not().String())

	narrow, _ := bitval.FromBinary("1")
	_, err = a.And(narrow)
	require.ErrorIs(t, err, bitval.ErrWidthMismatch)
}

// TestBitValue_Arithmetic verifies Add wraps at width and TwosCompliment
// round-trips, matching spec.md §8 universal properties.
func TestBitValue_Arithmetic(t *testing.T) {
	a, _ := bitval.FromBinary("1111") // 15
	one, _ := bitval.Make(1, 4)
	sum, err := a.Add(one)
	require.NoError(t, err)
	require.Equal(t, "0000", sum.String()) // wraps at width

	require.True(t, a.TwosCompliment().TwosCompliment().Equals(a))

	zero := bitval.Low(4)
	addZero, err := a.Add(zero.TwosCompliment())
	require.NoError(t, err)
	require.True(t, addZero.Equals(a))
}

// TestBitValue_Conversions verifies ToUnsigned/ToSigned/ToString.
func TestBitValue_Conversions(t *testing.T) {
	v, _ := bitval.FromBinary("1111")
	require.Equal(t, uint64(15), v.ToUnsigned())
	require.Equal(t, int64(-1), v.ToSigned())

	hex, err := v.ToString(16)
	require.NoError(t, err)
	require.Equal(t, "0xF", hex)

	zero := bitval.Low(8)
	zeroHex, err := zero.ToString(16)
	require.NoError(t, err)
	require.Equal(t, "0x0", zeroHex)

	_, err = v.ToString(8)
	require.ErrorIs(t, err, bitval.ErrUnsupportedRadix)
}

// TestBitValue_Manipulation verifies Truncate/Pad/BitSlice MSB-first
// semantics, including the fromTop asymmetry.
func TestBitValue_Manipulation(t *testing.T) {
	v, _ := bitval.FromBinary("101100")

	low, err := v.Truncate(4)
	require.NoError(t, err)
	require.Equal(t, "1100", low.String())

	high, err := v.Truncate(4, true)
	require.NoError(t, err)
	require.Equal(t, "1011", high.String())

	padded, err := v.Pad(8)
	require.NoError(t, err)
	require.Equal(t, "00101100", padded.String())

	slice, err := v.BitSlice(1, 3)
	require.NoError(t, err)
	require.Equal(t, "01", slice.String())

	full, err := v.BitSlice(0)
	require.NoError(t, err)
	require.Equal(t, v.String(), full.String())

	_, err = v.BitSlice(-1, 2)
	require.ErrorIs(t, err, bitval.ErrIndexOutOfRange)
}

// TestBitValue_Equals verifies nil-safety expectations: Equals only ever
// compares concrete values; width mismatch compares false rather than error.
func TestBitValue_Equals(t *testing.T) {
	a, _ := bitval.FromBinary("10")
	b, _ := bitval.FromBinary("010", 2)
	require.True(t, a.Equals(b))

	c, _ := bitval.FromBinary("101")
	require.False(t, a.Equals(c))
}
