package vmem

import (
	"fmt"
	"runtime/debug"
	"unsafe"
)

// sink keeps probe reads from being optimized away.
var sink byte

// Probe reads the byte at p and reports whether the read faulted.
//
// SetPanicOnFault turns the SIGSEGV/SIGBUS of an access to unmapped memory into a
// recoverable panic for the calling goroutine; the previous setting is restored
// before returning.
func Probe(p unsafe.Pointer) (retErr error) {
	old := debug.SetPanicOnFault(true)
	defer debug.SetPanicOnFault(old)

	defer func() {
		if r := recover(); r != nil {
			if addr, ok := r.(interface{ Addr() uintptr }); ok {
				retErr = fmt.Errorf("%w at 0x%x", ErrFault, addr.Addr())
				return
			}
			retErr = fmt.Errorf("%w: %v", ErrFault, r)
		}
	}()

	sink ^= *(*byte)(p)
	return nil
}
