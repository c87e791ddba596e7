package bitbuf

import (
	"fmt"

	"github.com/binarylab/bitengine/internal/buf"
	"github.com/binarylab/bitengine/internal/diag"
)

// Buffer is a contiguous byte region that either owns its storage (and frees
// it exactly once, when released) or merely references storage owned by the
// caller. Every accessor is bounds-checked: reads past the end return a
// not-found sentinel, writes past the end or through a read-only reference
// are silent no-ops that report failure via their bool return.
type Buffer struct {
	data     []byte
	owned    bool
	writable bool
}

// Allocate returns a new owned, zeroed buffer of length n. It fails when n
// is zero.
func Allocate(n int) (*Buffer, error) {
	if n <= 0 {
		return nil, ErrZeroLength
	}
	return &Buffer{data: make([]byte, n), owned: true, writable: true}, nil
}

// FromCopy returns a new owned buffer containing a copy of src. It fails
// when src is nil.
func FromCopy(src []byte) (*Buffer, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	cp := make([]byte, len(src))
	copy(cp, src)
	return &Buffer{data: cp, owned: true, writable: true}, nil
}

// FromReference returns a non-owning buffer wrapping src directly. Writes
// through it fail when writable is false. It fails when src is nil.
func FromReference(src []byte, writable bool) (*Buffer, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	return &Buffer{data: src, owned: false, writable: writable}, nil
}

// Empty returns a zero-length owned, writable buffer.
func Empty() *Buffer {
	return &Buffer{data: []byte{}, owned: true, writable: true}
}

// Len reports the buffer length in bytes.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Owned reports whether the buffer exclusively owns its storage.
func (b *Buffer) Owned() bool { return b != nil && b.owned }

// Writable reports whether write operations are permitted.
func (b *Buffer) Writable() bool { return b != nil && b.writable }

// Bytes returns the underlying slice. Callers that mutate it bypass bounds
// checking; it exists for View and Engine, which perform their own checks.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// Byte reads the byte at index i. The second return is false when i is out
// of range.
func (b *Buffer) Byte(i int) (byte, bool) {
	if b == nil || !buf.Has(b.data, i, 1) {
		diag.Failure(diag.RangeViolation, "bitbuf", "Byte", "index", i, "length", b.Len())
		return 0, false
	}
	region, _ := buf.Slice(b.data, i, 1)
	return region[0], true
}

// SetByte writes v at index i. It returns false (and performs no mutation)
// when i is out of range or the buffer is read-only.
func (b *Buffer) SetByte(i int, v byte) bool {
	if b == nil || !buf.Has(b.data, i, 1) {
		diag.Failure(diag.RangeViolation, "bitbuf", "SetByte", "index", i, "length", b.Len())
		return false
	}
	if !b.writable {
		diag.Failure(diag.MutabilityViolation, "bitbuf", "SetByte", "index", i)
		return false
	}
	region, _ := buf.Slice(b.data, i, 1)
	region[0] = v
	return true
}

// Clear zeroes every byte but keeps the current length.
func (b *Buffer) Clear() {
	if b == nil {
		return
	}
	for i := range b.data {
		b.data[i] = 0
	}
}

// Resize changes the buffer's length, preserving min(old, new) bytes and
// zero-filling any newly added tail. It only succeeds on owned buffers; see
// TryResize for the reason a failed call was rejected.
func (b *Buffer) Resize(n int) bool {
	return b.TryResize(n) == nil
}

// TryResize is Resize's error-returning counterpart, for callers (e.g. a
// CLI) that want to report why a resize was rejected rather than just that
// it was. A logic-error resize attempt (non-owned buffer) still logs via
// diag.Failure in addition to returning ErrNotOwned.
func (b *Buffer) TryResize(n int) error {
	if b == nil {
		return fmt.Errorf("bitbuf: resize: %w", ErrNilSource)
	}
	if n < 0 {
		return fmt.Errorf("bitbuf: resize: negative length %d", n)
	}
	if !b.owned {
		diag.Failure(diag.LogicError, "bitbuf", "Resize", "owned", false, "requested", n, "current", len(b.data))
		return fmt.Errorf("bitbuf: resize: %w", ErrNotOwned)
	}
	next := make([]byte, n)
	copy(next, b.data)
	b.data = next
	return nil
}
