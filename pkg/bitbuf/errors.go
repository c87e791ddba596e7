package bitbuf

import "errors"

var (
	// ErrNilSource indicates assign/copy was asked to wrap a nil source region.
	ErrNilSource = errors.New("bitbuf: nil source")
	// ErrZeroLength indicates an allocation of zero bytes was requested.
	ErrZeroLength = errors.New("bitbuf: zero length")
	// ErrNotOwned indicates an owner-only operation (resize) was attempted on a
	// referenced buffer.
	ErrNotOwned = errors.New("bitbuf: buffer is not owned")
)
