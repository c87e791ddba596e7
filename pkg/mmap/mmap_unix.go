//go:build unix

package mmap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/binarylab/bitengine/internal/diag"
)

type unixCloser struct{}

func (unixCloser) flush(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return unix.Msync(data, unix.MS_SYNC)
}

func (unixCloser) unmap(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return unix.Munmap(data)
}

// Open maps the file at path into memory. writable controls whether the
// mapping accepts in-place writes via Region.Bytes followed by Region.Flush.
func Open(path string, writable bool) (*Region, error) {
	flag := os.O_RDONLY
	prot := unix.PROT_READ
	if writable {
		flag = os.O_RDWR
		prot |= unix.PROT_WRITE
	}

	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("mmap: stat %s: %w", path, err)
	}
	size := info.Size()
	if size == 0 {
		return &Region{data: []byte{}, impl: unixCloser{}}, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("mmap: %s too large to map (%d bytes)", path, size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), prot, unix.MAP_SHARED)
	if err != nil {
		diag.Failure(diag.AllocationFailure, "mmap", "Open", "path", path, "error", err)
		return nil, err
	}
	return &Region{data: data, impl: unixCloser{}}, nil
}
