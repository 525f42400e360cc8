//go:build wasip1

package main

import "unsafe"

// Sizes are i32 on the wasm32 C ABI.

//go:wasmexport malloc
func wasmMalloc(n uint32) unsafe.Pointer {
	return h.Malloc(uintptr(n))
}

//go:wasmexport calloc
func wasmCalloc(count, size uint32) unsafe.Pointer {
	return h.Calloc(uintptr(count), uintptr(size))
}

//go:wasmexport free
func wasmFree(p unsafe.Pointer) {
	h.Free(p)
}

//go:wasmexport realloc
func wasmRealloc(p unsafe.Pointer, n uint32) unsafe.Pointer {
	return h.Realloc(p, uintptr(n))
}
