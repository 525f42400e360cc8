package block

import "unsafe"

// Seal writes full into the header at base and returns the user pointer that
// follows it. base must be word aligned.
func Seal(base unsafe.Pointer, full uintptr) unsafe.Pointer {
	*(*uintptr)(base) = full
	return unsafe.Add(base, HeaderSize)
}

// Base returns the start of the allocation owning the user pointer p.
func Base(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Add(p, -int(HeaderSize))
}

// Header reads the total size recorded in front of the user pointer p.
func Header(p unsafe.Pointer) uintptr {
	return *(*uintptr)(Base(p))
}

// Bytes views n bytes starting at p as a slice. n may be zero.
func Bytes(p unsafe.Pointer, n uintptr) []byte {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// Copy copies n bytes from src to dst. The regions must not overlap.
func Copy(dst, src unsafe.Pointer, n uintptr) {
	if n == 0 {
		return
	}
	copy(Bytes(dst, n), Bytes(src, n))
}
