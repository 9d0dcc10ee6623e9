package gf128

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDouble_AllZero(t *testing.T) {
	t.Parallel()

	var buf [16]byte
	Double(&buf)

	require.Equal(t, [16]byte{}, buf)
}

func TestDouble_ReductionPath(t *testing.T) {
	t.Parallel()

	// Doubling 0x01 00...00 fifteen times shifts the single set bit up to
	// the top bit of byte 15 without triggering the reduction. The
	// sixteenth doubling carries out and must XOR 0x87 into byte 0.
	buf := [16]byte{0x01}

	for i := 0; i < 15; i++ {
		Double(&buf)
	}
	require.Equal(t, byte(0x80), buf[15], "bit should have walked up to the top of byte 15")
	require.Equal(t, byte(0x00), buf[0])

	Double(&buf)

	want := [16]byte{}
	want[0] = reducingByte
	require.Equal(t, want, buf, "sixteenth doubling must reduce through 0x87 leaving all other bytes zero")
}

func TestDoubleN_MatchesRepeatedDouble(t *testing.T) {
	t.Parallel()

	buf1 := [16]byte{0xde, 0xad, 0xbe, 0xef}
	buf2 := buf1

	for i := 0; i < 37; i++ {
		Double(&buf1)
	}
	DoubleN(&buf2, 37)

	require.Equal(t, buf1, buf2)
}

func TestDouble_Invertible(t *testing.T) {
	t.Parallel()

	// Doubling is a deterministic permutation of the 128-bit space except
	// at the all-zero fixed point; a second distinct input must not
	// collide with the first's image under the same operation.
	a := [16]byte{0x01, 0x02, 0x03}
	b := [16]byte{0x01, 0x02, 0x04}

	Double(&a)
	Double(&b)

	require.NotEqual(t, a, b)
}
