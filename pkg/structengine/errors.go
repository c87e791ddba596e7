package structengine

import "errors"

var (
	// ErrNilSource indicates AssignData/AssignReference was given a nil source.
	ErrNilSource = errors.New("structengine: nil source")
	// ErrEmptyPattern indicates a pattern with zero fields was supplied.
	ErrEmptyPattern = errors.New("structengine: empty pattern")
	// ErrPatternTooLong indicates the pattern exceeds the 65535-field limit.
	ErrPatternTooLong = errors.New("structengine: pattern too long")
	// ErrNonPositiveWidth indicates a field width was zero or negative.
	ErrNonPositiveWidth = errors.New("structengine: non-positive field width")
	// ErrPatternOverflow indicates summing the pattern overflowed an int.
	ErrPatternOverflow = errors.New("structengine: pattern sum overflows")
	// ErrSourceTooShort indicates src held fewer bytes than sum(pattern).
	ErrSourceTooShort = errors.New("structengine: source shorter than pattern sum")
)
