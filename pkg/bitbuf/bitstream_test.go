package bitbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newView(t *testing.T, data []byte, endian Endian, mode BitMode) *View {
	t.Helper()
	b, err := FromCopy(data)
	require.NoError(t, err)
	return NewView(b, endian, mode)
}

func TestViewLength(t *testing.T) {
	v := newView(t, []byte{1, 2, 3}, BigEndian, Dependent)
	require.Equal(t, 24, v.Length())
}

func TestTestSetResetFlipAssign(t *testing.T) {
	v := newView(t, []byte{0x00}, BigEndian, Dependent)
	require.False(t, v.Test(0))
	require.True(t, v.Set(0))
	require.True(t, v.Test(0))
	require.True(t, v.Reset(0))
	require.False(t, v.Test(0))
	require.True(t, v.Flip(0))
	require.True(t, v.Test(0))
	require.True(t, v.Assign(0, false))
	require.False(t, v.Test(0))
}

func TestOutOfRangeIsSilentNoOp(t *testing.T) {
	v := newView(t, []byte{0x00}, BigEndian, Dependent)
	require.False(t, v.Test(8))
	require.False(t, v.Set(8))
	require.False(t, v.Reset(-1))
	require.False(t, v.Flip(100))
}

func TestCountAndPredicates(t *testing.T) {
	v := newView(t, []byte{0xFF, 0x00}, BigEndian, Dependent)
	require.Equal(t, 8, v.Count())
	require.Equal(t, 8, v.CountRange(0, 16))
	require.True(t, v.Any())
	require.False(t, v.All())
	require.False(t, v.None())

	allZero := newView(t, []byte{0x00}, BigEndian, Dependent)
	require.True(t, allZero.None())
	require.False(t, allZero.Any())

	allOnes := newView(t, []byte{0xFF}, BigEndian, Dependent)
	require.True(t, allOnes.All())
}

func TestCountIsEndianInvariant(t *testing.T) {
	data := []byte{0x12, 0x34, 0xAB}
	big := newView(t, data, BigEndian, Dependent)
	little := newView(t, data, LittleEndian, Dependent)
	require.Equal(t, big.Count(), little.Count())
}

func TestShiftLeftThenRightZeroFillsBoundaries(t *testing.T) {
	b, err := FromCopy([]byte{0xFF, 0xFF})
	require.NoError(t, err)
	v := NewView(b, BigEndian, Dependent)

	// ShiftLeft zero-fills the vacated bits [12,16); ShiftRight then clears
	// bits [0,4) while moving the earlier bits back into [4,16).
	v.ShiftLeft(4, false)
	for i := 12; i < 16; i++ {
		require.False(t, v.Test(i), "bit %d should be zero-filled", i)
	}
	v.ShiftRight(4, false)

	for i := 0; i < 4; i++ {
		require.False(t, v.Test(i), "bit %d should be cleared", i)
	}
}

func TestShiftByMoreThanLengthFillsEntireBuffer(t *testing.T) {
	b, err := FromCopy([]byte{0xFF, 0xFF})
	require.NoError(t, err)
	v := NewView(b, BigEndian, Dependent)
	v.ShiftLeft(100, true)
	require.True(t, v.All())
}

func TestRotateLeftRightAreInverses(t *testing.T) {
	b, err := FromCopy([]byte{0x12, 0x34, 0x56})
	require.NoError(t, err)
	v := NewView(b, BigEndian, Dependent)
	before := append([]byte(nil), b.Bytes()...)

	v.RotateLeft(5)
	v.RotateRight(5)
	require.Equal(t, before, b.Bytes())
}

func TestBitwiseAlgebraDuals(t *testing.T) {
	a := newView(t, []byte{0x5A, 0xA5}, BigEndian, Dependent)
	same := newView(t, []byte{0x5A, 0xA5}, BigEndian, Dependent)

	xor, ok := a.Xor(same)
	require.True(t, ok)
	require.Equal(t, []byte{0x00, 0x00}, xor, "a ^ a == 0")

	and, ok := a.And(same)
	require.True(t, ok)
	require.Equal(t, a.buf.Bytes(), and, "a & a == a")

	or, ok := a.Or(same)
	require.True(t, ok)
	require.Equal(t, a.buf.Bytes(), or, "a | a == a")

	not := a.Not()
	notBuf, _ := FromCopy(not)
	notView := NewView(notBuf, BigEndian, Dependent)
	doubleNot := notView.Not()
	require.Equal(t, a.buf.Bytes(), doubleNot, "not(not a) == a")
}

func TestBinaryOpsRequireEqualLength(t *testing.T) {
	a := newView(t, []byte{1, 2, 3, 4}, BigEndian, Dependent)
	b := newView(t, []byte{1, 2}, BigEndian, Dependent)

	_, ok := a.Xor(b)
	require.False(t, ok)
	_, ok = a.And(b)
	require.False(t, ok)
	_, ok = a.Or(b)
	require.False(t, ok)
	require.False(t, a.Equal(b))
}

func TestToStringRespectsEndianByteOrder(t *testing.T) {
	little := newView(t, []byte{0x12, 0x34}, LittleEndian, Dependent)
	require.Equal(t, "00110100 00010010", little.String())

	big := newView(t, []byte{0x12, 0x34}, BigEndian, Dependent)
	require.Equal(t, "00010010 00110100", big.String())
}
