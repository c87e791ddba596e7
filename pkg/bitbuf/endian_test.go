package bitbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEndianResolve(t *testing.T) {
	require.Equal(t, BigEndian, BigEndian.Resolve())
	require.Equal(t, LittleEndian, LittleEndian.Resolve())
	// NativeEndian always resolves to one of the two concrete tags.
	resolved := NativeEndian.Resolve()
	require.Contains(t, []Endian{BigEndian, LittleEndian}, resolved)
}

func TestEndianString(t *testing.T) {
	require.Equal(t, "big", BigEndian.String())
	require.Equal(t, "little", LittleEndian.String())
	require.Equal(t, "native", NativeEndian.String())
}

func TestBitModeString(t *testing.T) {
	require.Equal(t, "dependent", Dependent.String())
	require.Equal(t, "independent", Independent.String())
}

func TestBitPositionDependent(t *testing.T) {
	// Bit 0 is the MSB of byte 0; bits advance MSB->LSB across bytes.
	byteIdx, bit := bitPosition(Dependent, 0)
	require.Equal(t, 0, byteIdx)
	require.Equal(t, uint(7), bit)

	byteIdx, bit = bitPosition(Dependent, 7)
	require.Equal(t, 0, byteIdx)
	require.Equal(t, uint(0), bit)

	byteIdx, bit = bitPosition(Dependent, 8)
	require.Equal(t, 1, byteIdx)
	require.Equal(t, uint(7), bit)
}

func TestBitPositionIndependent(t *testing.T) {
	// Bit 0 is the LSB of byte 0; each byte resets independently.
	byteIdx, bit := bitPosition(Independent, 0)
	require.Equal(t, 0, byteIdx)
	require.Equal(t, uint(0), bit)

	byteIdx, bit = bitPosition(Independent, 7)
	require.Equal(t, 0, byteIdx)
	require.Equal(t, uint(7), bit)

	byteIdx, bit = bitPosition(Independent, 8)
	require.Equal(t, 1, byteIdx)
	require.Equal(t, uint(0), bit)
}

func TestReadPutUintRoundTrip(t *testing.T) {
	data := make([]byte, 2)
	PutUint(data, 0x00FF, BigEndian)
	require.Equal(t, []byte{0x00, 0xFF}, data)
	require.Equal(t, uint64(0x00FF), ReadUint(data, BigEndian))

	PutUint(data, 0x00FF, LittleEndian)
	require.Equal(t, []byte{0xFF, 0x00}, data)
	require.Equal(t, uint64(0x00FF), ReadUint(data, LittleEndian))
}

func TestReadPutUintOddWidthFallsBackToByteAtATime(t *testing.T) {
	data := make([]byte, 3)
	PutUint(data, 0x0102FF, BigEndian)
	require.Equal(t, []byte{0x01, 0x02, 0xFF}, data)
	require.Equal(t, uint64(0x0102FF), ReadUint(data, BigEndian))

	single := make([]byte, 1)
	PutUint(single, 0xAB, LittleEndian)
	require.Equal(t, byte(0xAB), single[0])
	require.Equal(t, uint64(0xAB), ReadUint(single, LittleEndian))
}
