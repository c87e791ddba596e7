// Package binengine implements the Binary Data Engine (C4): a byte buffer
// plus an endianness/bit-mode policy plus the top-level assign, clear,
// resize, reinterpret, transform and bitwise operators built on top of
// pkg/bitbuf. It never stores a bit view — Bits() returns a fresh one
// bound to the engine's current buffer on every call.
package binengine
