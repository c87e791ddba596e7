//go:build unix

package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/binarylab/bitengine/pkg/binengine"
	"github.com/binarylab/bitengine/pkg/bitbuf"
)

func TestOpenReadOnly(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mmap test in short mode")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "test.bin")
	want := []byte{0xde, 0xad, 0xbe, 0xef, 0x42}
	require.NoError(t, os.WriteFile(path, want, 0o644))

	r, err := Open(path, false)
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, want, r.Bytes())
	require.Equal(t, len(want), r.Len())
}

func TestOpenZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	r, err := Open(path, false)
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, 0, r.Len())
	require.NoError(t, r.Flush())
}

func TestOpenWritableRoundTripsThroughBinengine(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mmap test in short mode")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "test.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0x00}, 0o644))

	r, err := Open(path, true)
	require.NoError(t, err)
	defer r.Close()

	e, err := binengine.NewFromReference(r.Bytes(), true, bitbuf.BigEndian, bitbuf.Dependent)
	require.NoError(t, err)
	require.True(t, e.SetByte(0, 0xFF))
	require.Equal(t, byte(0xFF), r.Bytes()[0])
	require.NoError(t, r.Flush())
}

func TestCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.bin")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	r, err := Open(path, false)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
	require.Nil(t, r.Bytes())
}

func TestOperationsAfterCloseFail(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.bin")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	r, err := Open(path, false)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.ErrorIs(t, r.Flush(), ErrClosed)
}
