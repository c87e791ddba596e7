//go:build windows

package mmap

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

type windowsCloser struct {
	handle windows.Handle
	fh     windows.Handle
}

func (c windowsCloser) flush(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	addr := uintptr(unsafe.Pointer(&data[0]))
	return windows.FlushViewOfFile(addr, uintptr(len(data)))
}

func (c windowsCloser) unmap(data []byte) error {
	if len(data) > 0 {
		addr := uintptr(unsafe.Pointer(&data[0]))
		if err := windows.UnmapViewOfFile(addr); err != nil {
			return err
		}
	}
	if c.handle != 0 {
		windows.CloseHandle(c.handle)
	}
	if c.fh != 0 {
		windows.CloseHandle(c.fh)
	}
	return nil
}

// Open maps the file at path into memory. writable controls whether the
// mapping accepts in-place writes via Region.Bytes followed by Region.Flush.
func Open(path string, writable bool) (*Region, error) {
	access := os.O_RDONLY
	if writable {
		access = os.O_RDWR
	}

	f, err := os.OpenFile(path, access, 0)
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
		return &Region{data: []byte{}, impl: windowsCloser{}}, nil
	}

	protect := uint32(windows.PAGE_READONLY)
	access2 := uint32(windows.FILE_MAP_READ)
	if writable {
		protect = windows.PAGE_READWRITE
		access2 = windows.FILE_MAP_WRITE
	}

	mapping, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil, protect, 0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("mmap: CreateFileMapping %s: %w", path, err)
	}

	addr, err := windows.MapViewOfFile(mapping, access2, 0, 0, uintptr(size))
	if err != nil {
		windows.CloseHandle(mapping)
		return nil, fmt.Errorf("mmap: MapViewOfFile %s: %w", path, err)
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	return &Region{data: data, impl: windowsCloser{handle: mapping}}, nil
}
