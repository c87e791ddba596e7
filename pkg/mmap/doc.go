// Package mmap opens a file as a byte-addressable region suitable for
// handing straight to pkg/binengine and pkg/structengine via reference
// assignment, and flushing writes back to disk without a full rewrite.
package mmap
