//go:build unix

package vmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Supported reports whether Map and Unmap are backed by the OS.
const Supported = true

// Map requests a fresh anonymous private read-write mapping of n bytes.
// The returned address is page aligned.
func Map(n uintptr) (unsafe.Pointer, error) {
	if n == 0 {
		return nil, ErrZeroLength
	}
	p, err := unix.MmapPtr(-1, 0, nil, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w", n, err)
	}
	return p, nil
}

// Unmap releases the n-byte mapping starting at p in a single call.
func Unmap(p unsafe.Pointer, n uintptr) error {
	if n == 0 {
		return ErrZeroLength
	}
	if err := unix.MunmapPtr(p, n); err != nil {
		return fmt.Errorf("munmap %d bytes at %p: %w", n, p, err)
	}
	return nil
}

// PageSize returns the OS page size.
func PageSize() uintptr {
	return uintptr(unix.Getpagesize())
}
