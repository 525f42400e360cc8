package block

import (
	"sync/atomic"
	"unsafe"
)

// Rotor is the fill-rotation counter. The zero value starts at 0.
type Rotor struct {
	n atomic.Uint32
}

// Seed sets the byte the next allocation will receive.
func (r *Rotor) Seed(b byte) {
	r.n.Store(uint32(b))
}

// Next returns the current fill byte and advances the counter, wrapping at 256.
func (r *Rotor) Next() byte {
	return byte(r.n.Add(1) - 1)
}

// Peek returns the byte the next allocation will receive without advancing.
func (r *Rotor) Peek() byte {
	return byte(r.n.Load())
}

// Fill sets n bytes at p to b.
func Fill(p unsafe.Pointer, n uintptr, b byte) {
	s := Bytes(p, n)
	if len(s) == 0 {
		return
	}
	s[0] = b
	for i := 1; i < len(s); i *= 2 {
		copy(s[i:], s[:i])
	}
}

// Zero clears n bytes at p.
func Zero(p unsafe.Pointer, n uintptr) {
	clear(Bytes(p, n))
}

// FillWord returns a machine word with every byte set to b.
func FillWord(b byte) uintptr {
	return ^uintptr(0) / 0xff * uintptr(b)
}
