package block

import (
	"math/bits"
	"unsafe"
)

// WordSize is the size of a machine word in bytes.
const WordSize = unsafe.Sizeof(uintptr(0))

// HeaderSize is the size of the canary header preceding every user pointer.
const HeaderSize = WordSize

// ArrayLen returns count*size, failing with ErrOverflow if the product wraps.
func ArrayLen(count, size uintptr) (uintptr, error) {
	hi, lo := bits.Mul(uint(count), uint(size))
	if hi != 0 {
		return 0, ErrOverflow
	}
	return uintptr(lo), nil
}

// FullLen returns n + HeaderSize + padding, the number of bytes reserved from the
// backing store and recorded in the header.
func FullLen(n, padding uintptr) (uintptr, error) {
	full, ok := add(n, HeaderSize)
	if !ok {
		return 0, ErrOverflow
	}
	full, ok = add(full, padding)
	if !ok {
		return 0, ErrOverflow
	}
	return full, nil
}

// Words returns the number of machine words needed to hold n bytes.
func Words(n uintptr) uintptr {
	w := n / WordSize
	if n%WordSize != 0 {
		w++
	}
	return w
}

// RoundUp rounds n up to a multiple of align, which must be a power of two.
// The boolean is false if the result wraps.
func RoundUp(n, align uintptr) (uintptr, bool) {
	r, ok := add(n, align-1)
	if !ok {
		return 0, false
	}
	return r &^ (align - 1), true
}

func add(a, b uintptr) (uintptr, bool) {
	sum, carry := bits.Add(uint(a), uint(b), 0)
	return uintptr(sum), carry == 0
}
