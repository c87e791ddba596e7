// Package structengine implements the Structured Engine (C5): an overlay
// of a byte-width field schema (the "pattern") onto a binengine.Engine.
// It never allocates bytes itself — it owns the pattern slice and the
// derived offset table, and forwards every byte-level operation to the
// binengine.Engine it wraps.
package structengine
