package structengine

import (
	"fmt"
	"strings"

	"github.com/binarylab/bitengine/internal/buf"
	"github.com/binarylab/bitengine/internal/diag"
	"github.com/binarylab/bitengine/pkg/binengine"
	"github.com/binarylab/bitengine/pkg/bitbuf"
)

const maxFields = 65535

// Engine is the Structured Engine (C5): a binengine.Engine plus a byte-width
// pattern that partitions it into fields, and the derived cumulative offset
// table. Field i occupies bytes [offsets[i], offsets[i]+pattern[i]).
type Engine struct {
	data    *binengine.Engine
	pattern []int
	offsets []int
	endian  bitbuf.Endian
	mode    bitbuf.BitMode
}

// New returns an Engine in the empty state: no pattern, zero length.
func New(endian bitbuf.Endian, mode bitbuf.BitMode) *Engine {
	return &Engine{
		data:   binengine.New(endian, mode),
		endian: endian,
		mode:   mode,
	}
}

func validatePattern(pattern []int) (total int, err error) {
	if len(pattern) == 0 {
		return 0, ErrEmptyPattern
	}
	if len(pattern) > maxFields {
		return 0, ErrPatternTooLong
	}
	sum := 0
	for _, w := range pattern {
		if w <= 0 {
			return 0, ErrNonPositiveWidth
		}
		next, ok := buf.AddOverflowSafe(sum, w)
		if !ok {
			return 0, ErrPatternOverflow
		}
		sum = next
	}
	return sum, nil
}

func offsetTable(pattern []int) []int {
	offsets := make([]int, len(pattern)+1)
	for i, w := range pattern {
		offsets[i+1] = offsets[i] + w
	}
	return offsets
}

// AssignData copies sum(pattern) bytes from src into a new owned buffer and
// adopts pattern. It fails (state unchanged) on a nil src, an invalid
// pattern, or a src shorter than the pattern's total width. See
// TryAssignData for the reason behind a failed call.
func (e *Engine) AssignData(src []byte, pattern []int) bool {
	return e.TryAssignData(src, pattern) == nil
}

// TryAssignData is AssignData's error-returning counterpart, for callers
// (e.g. a CLI) that want to report why a carve was rejected.
func (e *Engine) TryAssignData(src []byte, pattern []int) error {
	if src == nil {
		diag.Failure(diag.NullInput, "structengine", "AssignData")
		return fmt.Errorf("structengine: assign data: %w", ErrNilSource)
	}
	total, err := validatePattern(pattern)
	if err != nil {
		return fmt.Errorf("structengine: assign data: %w", err)
	}
	if len(src) < total {
		diag.Failure(diag.SizeMismatch, "structengine", "AssignData", "have", len(src), "want", total)
		return fmt.Errorf("structengine: assign data: %w", ErrSourceTooShort)
	}
	if !e.data.AssignData(src[:total]) {
		return fmt.Errorf("structengine: assign data: underlying buffer rejected the copy")
	}
	e.pattern = append([]int(nil), pattern...)
	e.offsets = offsetTable(pattern)
	return nil
}

// AssignReference wraps src (at least sum(pattern) bytes) without copying
// and adopts pattern. Writes through the resulting engine fail when
// writable is false. See TryAssignReference for the reason behind a failed
// call.
func (e *Engine) AssignReference(src []byte, pattern []int, writable bool) bool {
	return e.TryAssignReference(src, pattern, writable) == nil
}

// TryAssignReference is AssignReference's error-returning counterpart.
func (e *Engine) TryAssignReference(src []byte, pattern []int, writable bool) error {
	if src == nil {
		diag.Failure(diag.NullInput, "structengine", "AssignReference")
		return fmt.Errorf("structengine: assign reference: %w", ErrNilSource)
	}
	total, err := validatePattern(pattern)
	if err != nil {
		return fmt.Errorf("structengine: assign reference: %w", err)
	}
	if len(src) < total {
		diag.Failure(diag.SizeMismatch, "structengine", "AssignReference", "have", len(src), "want", total)
		return fmt.Errorf("structengine: assign reference: %w", ErrSourceTooShort)
	}
	if !e.data.AssignReference(src[:total], writable) {
		return fmt.Errorf("structengine: assign reference: underlying buffer rejected the reference")
	}
	e.pattern = append([]int(nil), pattern...)
	e.offsets = offsetTable(pattern)
	return nil
}

// Clear resets the pattern to empty and the underlying data to empty,
// returning the engine to its initial state.
func (e *Engine) Clear() {
	e.pattern = nil
	e.offsets = nil
	e.data = binengine.New(e.endian, e.mode)
}

// FieldCount returns the number of fields in the current pattern.
func (e *Engine) FieldCount() int { return len(e.pattern) }

// FieldLength returns the byte width of field i.
func (e *Engine) FieldLength(i int) (int, bool) {
	if i < 0 || i >= len(e.pattern) {
		return 0, false
	}
	return e.pattern[i], true
}

// Data returns the underlying Binary Data Engine, e.g. for ToHexString.
func (e *Engine) Data() *binengine.Engine { return e.data }

func (e *Engine) fieldBytes(i int) ([]byte, bool) {
	if i < 0 || i >= len(e.pattern) {
		return nil, false
	}
	start, end := e.offsets[i], e.offsets[i+1]
	all := e.data.Bytes()
	if end > len(all) {
		return nil, false
	}
	return all[start:end], true
}

// FieldBit reads bit b within field i, addressed under mode (which may
// differ from the engine's own bit mode — the caller chooses per call).
func (e *Engine) FieldBit(i, b int, mode bitbuf.BitMode) (bool, bool) {
	field, ok := e.fieldBytes(i)
	if !ok {
		return false, false
	}
	fb, err := bitbuf.FromReference(field, e.data.Writable())
	if err != nil {
		return false, false
	}
	view := bitbuf.NewView(fb, e.endian, mode)
	if b < 0 || b >= view.Length() {
		return false, false
	}
	return view.Test(b), true
}

// SetFieldBit writes bit b within field i, addressed under mode.
func (e *Engine) SetFieldBit(i, b int, v bool, mode bitbuf.BitMode) bool {
	field, ok := e.fieldBytes(i)
	if !ok {
		return false
	}
	fb, err := bitbuf.FromReference(field, e.data.Writable())
	if err != nil {
		return false
	}
	view := bitbuf.NewView(fb, e.endian, mode)
	if b < 0 || b >= view.Length() {
		return false
	}
	return view.Assign(b, v)
}

// FieldRef returns a non-owning engine over field i's bytes; writes through
// it propagate back into the parent's storage. The returned engine is
// reinterpreted under targetEndian/mode.
func (e *Engine) FieldRef(i int, targetEndian bitbuf.Endian, mode bitbuf.BitMode) (*binengine.Engine, bool) {
	field, ok := e.fieldBytes(i)
	if !ok {
		return nil, false
	}
	eng, err := binengine.NewFromReference(field, e.data.Writable(), targetEndian, mode)
	if err != nil {
		return nil, false
	}
	return eng, true
}

// NonemptyFieldIndex walks a bit-level schema bitPattern (widths in bits,
// summing to 8*byte_length) and returns the index of the k-th logical
// sub-field (0-based, ascending, ties broken by index order) whose bits are
// not all zero. "Non-empty" means at least one bit set anywhere in the
// sub-field (see DESIGN.md for why this reading was chosen over
// most-significant-bit-only). It reports false when fewer than k+1
// non-empty sub-fields exist. Complexity is O(sum of bit widths).
func (e *Engine) NonemptyFieldIndex(k int, bitPattern []int) (int, bool) {
	if k < 0 {
		return 0, false
	}
	view := e.data.Bits()
	found := -1
	bitOffset := 0
	for idx, width := range bitPattern {
		if width <= 0 {
			return 0, false
		}
		if view.CountRange(bitOffset, bitOffset+width) > 0 {
			found++
			if found == k {
				return idx, true
			}
		}
		bitOffset += width
	}
	return 0, false
}

// ToFormattedString renders a multi-line dump with one field per line:
// "<index>: <width>B [<hex>] (<binary>)".
func (e *Engine) ToFormattedString() string {
	var sb strings.Builder
	for i, width := range e.pattern {
		field, _ := e.fieldBytes(i)
		fb, _ := bitbuf.FromReference(field, false)
		view := bitbuf.NewView(fb, e.endian, e.mode)
		hex := ""
		for _, b := range field {
			hex += fmt.Sprintf("%02X", b)
		}
		fmt.Fprintf(&sb, "%d: %dB [%s] (%s)\n", i, width, hex, view.String())
	}
	return sb.String()
}

// Unsigned constrains the field value types GetField/SetField/SubField
// operate on, standing in for the original template parameter T.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func sizeOf[T Unsigned]() int {
	var v T
	switch any(v).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	case uint64:
		return 8
	default:
		return 0
	}
}

// GetField returns an owned engine of length pattern[i] holding field i's
// bytes, reinterpreted under targetEndian/mode. It fails when i is out of
// range or T's width does not equal pattern[i].
func GetField[T Unsigned](e *Engine, i int, targetEndian bitbuf.Endian, mode bitbuf.BitMode) (*binengine.Engine, bool) {
	width, ok := e.FieldLength(i)
	if !ok || width != sizeOf[T]() {
		diag.Failure(diag.SizeMismatch, "structengine", "GetField", "index", i, "field_width", width, "type_width", sizeOf[T]())
		return nil, false
	}
	field, _ := e.fieldBytes(i)
	eng, err := binengine.NewFromCopy(field, targetEndian, mode)
	if err != nil {
		diag.Failure(diag.AllocationFailure, "structengine", "GetField", "error", err)
		return nil, false
	}
	return eng, true
}

// SetField overwrites field i's bytes with value serialized in the engine's
// endianness. It fails when i is out of range or T's width does not equal
// pattern[i].
func SetField[T Unsigned](e *Engine, i int, value T) bool {
	width, ok := e.FieldLength(i)
	if !ok || width != sizeOf[T]() {
		diag.Failure(diag.SizeMismatch, "structengine", "SetField", "index", i, "field_width", width, "type_width", sizeOf[T]())
		return false
	}
	field, _ := e.fieldBytes(i)
	if !e.data.Writable() {
		diag.Failure(diag.MutabilityViolation, "structengine", "SetField", "index", i)
		return false
	}
	bitbuf.PutUint(field, uint64(value), e.endian)
	return true
}

// SubField returns bitLength consecutive bits starting at startBit within
// field i, addressed under the engine's bit mode and packed with the first
// bit as the most significant. The engine's endianness does not change which
// bytes the bits are read from. It fails when the range falls outside the
// field or bitLength exceeds 8*sizeof(T).
func SubField[T Unsigned](e *Engine, i, startBit, bitLength int) (T, bool) {
	var zero T
	if bitLength <= 0 || bitLength > 8*sizeOf[T]() {
		return zero, false
	}
	field, ok := e.fieldBytes(i)
	if !ok {
		return zero, false
	}
	if startBit < 0 || startBit+bitLength > 8*len(field) {
		return zero, false
	}
	fb, err := bitbuf.FromReference(field, false)
	if err != nil {
		return zero, false
	}
	view := bitbuf.NewView(fb, e.endian, e.mode)

	var v uint64
	for b := 0; b < bitLength; b++ {
		v <<= 1
		if view.Test(startBit + b) {
			v |= 1
		}
	}
	return T(v), true
}
