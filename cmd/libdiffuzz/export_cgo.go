//go:build cgo && unix

package main

// #include <stddef.h>
import "C"

import "unsafe"

//export diffuzz_malloc
func diffuzz_malloc(n C.size_t) unsafe.Pointer {
	return h.Malloc(uintptr(n))
}

//export diffuzz_calloc
func diffuzz_calloc(count, size C.size_t) unsafe.Pointer {
	return h.Calloc(uintptr(count), uintptr(size))
}

//export diffuzz_free
func diffuzz_free(p unsafe.Pointer) {
	h.Free(p)
}

//export diffuzz_realloc
func diffuzz_realloc(p unsafe.Pointer, n C.size_t) unsafe.Pointer {
	return h.Realloc(p, uintptr(n))
}
