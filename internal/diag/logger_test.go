package diag

import (
	"path/filepath"
	"testing"
)

func TestInitDisabledDiscards(t *testing.T) {
	if err := Init(Options{Enabled: false}); err != nil {
		t.Fatalf("Init(disabled): %v", err)
	}
	// Should not panic and should be silently swallowed.
	Failure(LogicError, "bitbuf", "Resize", "requested", 16)
}

func TestInitEnabledWritesFile(t *testing.T) {
	dir := t.TempDir()
	if err := Init(Options{Enabled: true, LogDir: dir}); err != nil {
		t.Fatalf("Init(enabled): %v", err)
	}
	Failure(LogicError, "bitbuf", "Resize", "owned", false, "requested", 16)

	entries, err := filepath.Glob(filepath.Join(dir, logPrefix+"*"+logSuffix))
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one log file, got %d", len(entries))
	}
}

func TestFailureLogsRangeViolationAtDebug(t *testing.T) {
	dir := t.TempDir()
	if err := Init(Options{Enabled: true, LogDir: dir, Level: -10}); err != nil {
		t.Fatalf("Init(enabled): %v", err)
	}
	// Should not panic; DEBUG-level kinds are routine and never fatal.
	Failure(RangeViolation, "bitbuf", "Byte", "index", 9, "length", 4)
	Failure(SizeMismatch, "structengine", "GetField", "field_width", 2, "type_width", 4)
	Failure(NullInput, "binengine", "AssignData")
	Failure(AllocationFailure, "binengine", "NewFromCopy")
	Failure(MutabilityViolation, "bitbuf", "SetByte")
}
