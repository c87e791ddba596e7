package bitbuf

import "github.com/binarylab/bitengine/internal/buf"

// Endian is the storage endianness tag: how multi-byte integers drawn from
// a buffer are laid out in memory.
type Endian uint8

const (
	// LittleEndian lays the least significant byte first.
	LittleEndian Endian = iota
	// BigEndian lays the most significant byte first.
	BigEndian
	// NativeEndian stands for the host process's byte order. Engines store
	// the tag as given; Resolve maps it to Big or Little each time a byte
	// order is applied.
	NativeEndian
)

// Resolve maps NativeEndian to the host's actual byte order. Big and Little
// pass through unchanged.
func (e Endian) Resolve() Endian {
	if e != NativeEndian {
		return e
	}
	if buf.HostLittleEndian() {
		return LittleEndian
	}
	return BigEndian
}

// String implements fmt.Stringer for diagnostics and formatted dumps.
func (e Endian) String() string {
	switch e {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	case NativeEndian:
		return "native"
	default:
		return "unknown"
	}
}

// BitMode selects how bit indices are mapped onto bytes.
type BitMode uint8

const (
	// Dependent addressing: bit 0 is the most significant bit of byte 0; the
	// bit stream reads across byte boundaries MSB-first.
	Dependent BitMode = iota
	// Independent addressing: bit 0 is the least significant bit of byte 0;
	// each byte is addressed in isolation, resetting every 8 bits.
	Independent
)

// String implements fmt.Stringer.
func (m BitMode) String() string {
	if m == Independent {
		return "independent"
	}
	return "dependent"
}

// bitPosition maps a logical bit index to a (byteIndex, bitInByte) pair
// under the given mode. bitInByte counts from the LSB (bit 0) of the byte,
// matching how Go's shift operators address bits.
func bitPosition(mode BitMode, bitIndex int) (byteIndex int, bitInByte uint) {
	byteIndex = bitIndex / 8
	rem := uint(bitIndex % 8)
	if mode == Dependent {
		return byteIndex, 7 - rem
	}
	return byteIndex, rem
}

// ReadUint assembles a host integer from data (n<=8 bytes) in the given byte
// order. The common 2/4/8-byte widths delegate to internal/buf's fixed-width
// decoders; other widths (e.g. a 1-byte or 3-byte structengine field) fall
// back to a byte-at-a-time assembly.
func ReadUint(data []byte, endian Endian) uint64 {
	big := endian.Resolve() == BigEndian
	switch len(data) {
	case 2:
		if big {
			return uint64(buf.U16BE(data))
		}
		return uint64(buf.U16LE(data))
	case 4:
		if big {
			return uint64(buf.U32BE(data))
		}
		return uint64(buf.U32LE(data))
	case 8:
		if big {
			return buf.U64BE(data)
		}
		return buf.U64LE(data)
	}

	var v uint64
	if big {
		for _, b := range data {
			v = (v << 8) | uint64(b)
		}
	} else {
		for i := len(data) - 1; i >= 0; i-- {
			v = (v << 8) | uint64(data[i])
		}
	}
	return v
}

// PutUint serializes the low len(data)*8 bits of v into data in the given
// byte order, delegating to internal/buf's fixed-width encoders for the
// common 2/4/8-byte widths.
func PutUint(data []byte, v uint64, endian Endian) {
	big := endian.Resolve() == BigEndian
	switch len(data) {
	case 2:
		if big {
			buf.PutU16BE(data, uint16(v))
		} else {
			buf.PutU16LE(data, uint16(v))
		}
		return
	case 4:
		if big {
			buf.PutU32BE(data, uint32(v))
		} else {
			buf.PutU32LE(data, uint32(v))
		}
		return
	case 8:
		if big {
			buf.PutU64BE(data, v)
		} else {
			buf.PutU64LE(data, v)
		}
		return
	}

	n := len(data)
	if big {
		for i := n - 1; i >= 0; i-- {
			data[i] = byte(v)
			v >>= 8
		}
	} else {
		for i := 0; i < n; i++ {
			data[i] = byte(v)
			v >>= 8
		}
	}
}
