// Package bitbuf implements the owned/referenced byte buffer (C1), the
// endianness and bit-mode policy (C2), and the non-owning bit-stream view
// (C3) that together form the bottom of the binary structured data engine.
//
// bitbuf allocates byte storage only in Allocate, FromCopy, Empty and
// Resize, and for the result slices of View's And, Or, Xor and Not; a
// Buffer built with FromReference never frees the memory it wraps. View is constructed per call as a scoped borrow of a Buffer — it
// never stores a back-pointer to anything above it.
package bitbuf
