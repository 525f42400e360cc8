//go:build !unix

package vmem

import "unsafe"

// Supported reports whether Map and Unmap are backed by the OS.
const Supported = false

// Map always fails on platforms without anonymous mappings.
func Map(n uintptr) (unsafe.Pointer, error) {
	return nil, ErrUnsupported
}

// Unmap always fails on platforms without anonymous mappings.
func Unmap(p unsafe.Pointer, n uintptr) error {
	return ErrUnsupported
}

// PageSize returns the conventional 4 KiB page size.
func PageSize() uintptr {
	return 4096
}
