package bitbuf

import "strings"

// View is a non-owning, index-checked bit-addressed overlay on a Buffer. It
// is built fresh for each call site (see Design Notes in SPEC_FULL.md) and
// never stores a back-pointer into whatever constructed it; the bound
// Buffer must outlive the View.
type View struct {
	buf    *Buffer
	endian Endian
	mode   BitMode
}

// NewView binds a View to buf under the given endianness and bit mode.
func NewView(buf *Buffer, endian Endian, mode BitMode) *View {
	return &View{buf: buf, endian: endian, mode: mode}
}

// Length returns the bit length of the bound buffer (8 * byte length).
func (v *View) Length() int {
	if v == nil || v.buf == nil {
		return 0
	}
	return v.buf.Len() * 8
}

// Test reports the bit at index i. Out-of-range indices read as false.
func (v *View) Test(i int) bool {
	if v == nil || i < 0 || i >= v.Length() {
		return false
	}
	byteIdx, bit := bitPosition(v.mode, i)
	b, ok := v.buf.Byte(byteIdx)
	if !ok {
		return false
	}
	return b&(1<<bit) != 0
}

// Set forces the bit at index i to 1. Out-of-range indices are silent
// no-ops and report false.
func (v *View) Set(i int) bool { return v.Assign(i, true) }

// Reset forces the bit at index i to 0. Out-of-range indices are silent
// no-ops and report false.
func (v *View) Reset(i int) bool { return v.Assign(i, false) }

// Flip toggles the bit at index i. Out-of-range indices are silent no-ops
// and report false.
func (v *View) Flip(i int) bool {
	if v == nil || i < 0 || i >= v.Length() {
		return false
	}
	return v.Assign(i, !v.Test(i))
}

// Assign sets the bit at index i to val. Out-of-range indices are silent
// no-ops and report false.
func (v *View) Assign(i int, val bool) bool {
	if v == nil || i < 0 || i >= v.Length() {
		return false
	}
	byteIdx, bit := bitPosition(v.mode, i)
	cur, ok := v.buf.Byte(byteIdx)
	if !ok {
		return false
	}
	if val {
		cur |= 1 << bit
	} else {
		cur &^= 1 << bit
	}
	return v.buf.SetByte(byteIdx, cur)
}

// Count returns the population count over the whole bit sequence. It is
// endianness-invariant: relabeling the same bytes big<->little does not
// change the result.
func (v *View) Count() int { return v.CountRange(0, v.Length()) }

// CountRange returns the population count over the half-open range [lo, hi).
func (v *View) CountRange(lo, hi int) int {
	if v == nil {
		return 0
	}
	if lo < 0 {
		lo = 0
	}
	if hi > v.Length() {
		hi = v.Length()
	}
	n := 0
	for i := lo; i < hi; i++ {
		if v.Test(i) {
			n++
		}
	}
	return n
}

// Any reports whether at least one bit is set.
func (v *View) Any() bool { return v.Count() > 0 }

// All reports whether every bit is set.
func (v *View) All() bool { return v.Length() > 0 && v.Count() == v.Length() }

// None reports whether no bit is set.
func (v *View) None() bool { return v.Count() == 0 }

// snapshot materializes the current bit sequence so shift/rotate can read
// "before" values while writing "after" values into the same storage.
func (v *View) snapshot() []bool {
	n := v.Length()
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = v.Test(i)
	}
	return bits
}

// ShiftLeft logically shifts the whole bit sequence left by n, filling
// vacated low-order positions with fill. n >= Length() zeroes (or fill-s)
// the entire sequence.
func (v *View) ShiftLeft(n int, fill bool) {
	length := v.Length()
	if n < 0 {
		n = 0
	}
	if n >= length {
		for i := 0; i < length; i++ {
			v.Assign(i, fill)
		}
		return
	}
	before := v.snapshot()
	for i := 0; i < length; i++ {
		if i+n < length {
			v.Assign(i, before[i+n])
		} else {
			v.Assign(i, fill)
		}
	}
}

// ShiftRight logically shifts the whole bit sequence right by n, filling
// vacated high-order positions with fill.
func (v *View) ShiftRight(n int, fill bool) {
	length := v.Length()
	if n < 0 {
		n = 0
	}
	if n >= length {
		for i := 0; i < length; i++ {
			v.Assign(i, fill)
		}
		return
	}
	before := v.snapshot()
	for i := 0; i < length; i++ {
		if i-n >= 0 {
			v.Assign(i, before[i-n])
		} else {
			v.Assign(i, fill)
		}
	}
}

// RotateLeft modularly rotates the bit sequence left by n.
func (v *View) RotateLeft(n int) {
	length := v.Length()
	if length == 0 {
		return
	}
	n = ((n % length) + length) % length
	if n == 0 {
		return
	}
	before := v.snapshot()
	for i := 0; i < length; i++ {
		v.Assign(i, before[(i+n)%length])
	}
}

// RotateRight modularly rotates the bit sequence right by n; it is the
// exact inverse of RotateLeft(n).
func (v *View) RotateRight(n int) {
	length := v.Length()
	if length == 0 {
		return
	}
	n = ((n % length) + length) % length
	v.RotateLeft(length - n)
}

// Equal reports whether v and other hold the same bit sequence. It requires
// equal bit length.
func (v *View) Equal(other *View) bool {
	if v == nil || other == nil || v.Length() != other.Length() {
		return false
	}
	for i := 0; i < v.Length(); i++ {
		if v.Test(i) != other.Test(i) {
			return false
		}
	}
	return true
}

// combine implements the element-wise binary bitwise ops shared by And, Or
// and Xor. The result bytes are written using v's own bit mode.
func (v *View) combine(other *View, op func(a, b bool) bool) ([]byte, bool) {
	if v == nil || other == nil || v.Length() != other.Length() {
		return nil, false
	}
	out := make([]byte, v.buf.Len())
	for i := 0; i < v.Length(); i++ {
		bit := op(v.Test(i), other.Test(i))
		if !bit {
			continue
		}
		byteIdx, shift := bitPosition(v.mode, i)
		out[byteIdx] |= 1 << shift
	}
	return out, true
}

// And returns the bit-wise AND of v and other as a fresh byte slice. It
// fails (ok=false) when the bit lengths differ.
func (v *View) And(other *View) ([]byte, bool) {
	return v.combine(other, func(a, b bool) bool { return a && b })
}

// Or returns the bit-wise OR of v and other as a fresh byte slice. It fails
// (ok=false) when the bit lengths differ.
func (v *View) Or(other *View) ([]byte, bool) {
	return v.combine(other, func(a, b bool) bool { return a || b })
}

// Xor returns the bit-wise XOR of v and other as a fresh byte slice. It
// fails (ok=false) when the bit lengths differ.
func (v *View) Xor(other *View) ([]byte, bool) {
	return v.combine(other, func(a, b bool) bool { return a != b })
}

// Not returns the bit-wise complement of v as a fresh byte slice.
func (v *View) Not() []byte {
	out := make([]byte, v.buf.Len())
	for i := 0; i < v.Length(); i++ {
		if v.Test(i) {
			continue
		}
		byteIdx, shift := bitPosition(v.mode, i)
		out[byteIdx] |= 1 << shift
	}
	return out
}

// String renders the bit sequence most-significant-bit first, grouped one
// space-separated group per byte. Byte groups are printed in the View's
// endian order: ascending storage index for big-endian, descending for
// little-endian.
func (v *View) String() string {
	if v == nil || v.buf == nil {
		return ""
	}
	data := v.buf.Bytes()
	n := len(data)
	groups := make([]string, n)
	for i := 0; i < n; i++ {
		var src int
		if v.endian.Resolve() == LittleEndian {
			src = n - 1 - i
		} else {
			src = i
		}
		groups[i] = byteBits(data[src])
	}
	return strings.Join(groups, " ")
}

func byteBits(b byte) string {
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		if b&(1<<(7-i)) != 0 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}
