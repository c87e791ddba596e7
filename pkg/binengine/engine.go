package binengine

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/binarylab/bitengine/internal/diag"
	"github.com/binarylab/bitengine/pkg/bitbuf"
)

// Engine is the Binary Data Engine (C4): a buffer, an endianness tag, and a
// bit mode. Endianness and mode are always defined; changing either is a
// semantic relabeling of the same bytes, not a byte-swap. The engine is not
// thread-safe — concurrent use is the caller's responsibility.
type Engine struct {
	buf    *bitbuf.Buffer
	endian bitbuf.Endian
	mode   bitbuf.BitMode
}

// New returns an empty engine (zero length) with the given endianness and
// bit mode.
func New(endian bitbuf.Endian, mode bitbuf.BitMode) *Engine {
	return &Engine{buf: bitbuf.Empty(), endian: endian, mode: mode}
}

// NewAllocated returns an engine wrapping a fresh, owned, zeroed buffer of
// length n bytes.
func NewAllocated(n int, endian bitbuf.Endian, mode bitbuf.BitMode) (*Engine, error) {
	b, err := bitbuf.Allocate(n)
	if err != nil {
		return nil, err
	}
	return &Engine{buf: b, endian: endian, mode: mode}, nil
}

// NewFromCopy returns an engine wrapping an owned copy of src.
func NewFromCopy(src []byte, endian bitbuf.Endian, mode bitbuf.BitMode) (*Engine, error) {
	b, err := bitbuf.FromCopy(src)
	if err != nil {
		return nil, err
	}
	return &Engine{buf: b, endian: endian, mode: mode}, nil
}

// NewFromReference returns an engine referencing src directly; writes fail
// when writable is false.
func NewFromReference(src []byte, writable bool, endian bitbuf.Endian, mode bitbuf.BitMode) (*Engine, error) {
	b, err := bitbuf.FromReference(src, writable)
	if err != nil {
		return nil, err
	}
	return &Engine{buf: b, endian: endian, mode: mode}, nil
}

// AssignData replaces the engine's buffer with an owned copy of src. It
// fails (state unchanged) when src is nil.
func (e *Engine) AssignData(src []byte) bool {
	b, err := bitbuf.FromCopy(src)
	if err != nil {
		diag.Failure(diag.NullInput, "binengine", "AssignData")
		return false
	}
	e.buf = b
	return true
}

// AssignReference replaces the engine's buffer with a non-owning reference
// to src. It fails (state unchanged) when src is nil.
func (e *Engine) AssignReference(src []byte, writable bool) bool {
	b, err := bitbuf.FromReference(src, writable)
	if err != nil {
		diag.Failure(diag.NullInput, "binengine", "AssignReference")
		return false
	}
	e.buf = b
	return true
}

// Clear zeroes the buffer contents, keeping its length.
func (e *Engine) Clear() {
	if e == nil {
		return
	}
	e.buf.Clear()
}

// Resize changes the byte length, preserving min(old,new) bytes. It fails
// for non-owned buffers, logging the attempt at ERROR.
func (e *Engine) Resize(n int) bool {
	if e == nil {
		return false
	}
	return e.buf.Resize(n)
}

// LengthBytes returns the buffer length in bytes.
func (e *Engine) LengthBytes() int {
	if e == nil {
		return 0
	}
	return e.buf.Len()
}

// LengthBits returns 8 * LengthBytes().
func (e *Engine) LengthBits() int { return e.LengthBytes() * 8 }

// Byte reads the byte at index i.
func (e *Engine) Byte(i int) (byte, bool) {
	if e == nil {
		return 0, false
	}
	return e.buf.Byte(i)
}

// SetByte writes v at index i.
func (e *Engine) SetByte(i int, v byte) bool {
	if e == nil {
		return false
	}
	return e.buf.SetByte(i, v)
}

// Endian returns the engine's current endianness tag.
func (e *Engine) Endian() bitbuf.Endian { return e.endian }

// SetEndian relabels the engine's endianness. This does not touch the
// underlying bytes — it changes how subsequent field-level reads interpret
// them.
func (e *Engine) SetEndian(endian bitbuf.Endian) { e.endian = endian }

// Mode returns the engine's current bit mode.
func (e *Engine) Mode() bitbuf.BitMode { return e.mode }

// SetMode relabels the engine's bit-addressing mode.
func (e *Engine) SetMode(mode bitbuf.BitMode) { e.mode = mode }

// Owned reports whether the engine's buffer owns its storage.
func (e *Engine) Owned() bool { return e.buf.Owned() }

// Writable reports whether writes to the engine's buffer are permitted.
func (e *Engine) Writable() bool { return e.buf.Writable() }

// Bytes exposes the raw underlying slice, primarily for callers building a
// referenced sub-engine (e.g. structengine field views) over the same
// storage.
func (e *Engine) Bytes() []byte { return e.buf.Bytes() }

// Bits returns a fresh bit-stream view bound to the engine's current
// buffer, endianness and mode. It is not cached — callers must not retain
// it across a reassignment or resize of the engine.
func (e *Engine) Bits() *bitbuf.View {
	return bitbuf.NewView(e.buf, e.endian, e.mode)
}

// ToHexString renders every byte as a continuous run of hex pairs, no
// separators. upper selects uppercase hex digits (the default).
func (e *Engine) ToHexString(upper bool) string {
	data := e.buf.Bytes()
	format := "%02x"
	if upper {
		format = "%02X"
	}
	var sb strings.Builder
	sb.Grow(len(data) * 2)
	for _, b := range data {
		fmt.Fprintf(&sb, format, b)
	}
	return sb.String()
}

// Equal reports whether e and other hold the same bits, regardless of their
// endianness and bit-mode tags.
func (e *Engine) Equal(other *Engine) bool {
	if e == nil || other == nil {
		return false
	}
	return bytes.Equal(e.Bytes(), other.Bytes())
}

// And returns a new owned engine holding the bit-wise AND of e and other,
// under e's endianness and mode. It fails when the operands differ in bit
// length, leaving both operands untouched.
func (e *Engine) And(other *Engine) (*Engine, bool) {
	return e.binary(other, (*bitbuf.View).And)
}

// Or returns a new owned engine holding the bit-wise OR of e and other.
func (e *Engine) Or(other *Engine) (*Engine, bool) {
	return e.binary(other, (*bitbuf.View).Or)
}

// Xor returns a new owned engine holding the bit-wise XOR of e and other.
func (e *Engine) Xor(other *Engine) (*Engine, bool) {
	return e.binary(other, (*bitbuf.View).Xor)
}

func (e *Engine) binary(other *Engine, op func(*bitbuf.View, *bitbuf.View) ([]byte, bool)) (*Engine, bool) {
	if e == nil || other == nil {
		return nil, false
	}
	out, ok := op(e.Bits(), other.Bits())
	if !ok {
		diag.Failure(diag.SizeMismatch, "binengine", "binary", "a_bits", e.LengthBits(), "b_bits", other.LengthBits())
		return nil, false
	}
	result, err := NewFromCopy(out, e.endian, e.mode)
	if err != nil {
		diag.Failure(diag.AllocationFailure, "binengine", "binary", "error", err)
		return nil, false
	}
	return result, true
}

// Not returns a new owned engine holding the bit-wise complement of e.
func (e *Engine) Not() *Engine {
	out := e.Bits().Not()
	result, err := NewFromCopy(out, e.endian, e.mode)
	if err != nil {
		diag.Failure(diag.AllocationFailure, "binengine", "Not", "error", err)
		return New(e.endian, e.mode)
	}
	return result
}
