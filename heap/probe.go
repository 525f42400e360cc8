package heap

import (
	"unsafe"

	"github.com/joshuapare/diffuzz/heap/block"
	"github.com/joshuapare/diffuzz/internal/vmem"
)

// PaddingReport describes the padding behind a live allocation.
type PaddingReport struct {
	Header     uintptr `json:"header"`      // total size recorded in the header
	Padding    uintptr `json:"padding"`     // padding bytes after the user region
	Fill       byte    `json:"fill"`        // byte the padding was expected to hold
	Dirty      uintptr `json:"dirty"`       // padding bytes that differ from Fill
	FirstDirty int     `json:"first_dirty"` // offset into the padding of the first dirty byte, or -1
	Corrupt    bool    `json:"corrupt"`     // header is smaller than HeaderSize+n
}

// ProbePadding compares the padding of the n-byte allocation at p against fill,
// the byte the allocation was filled with (see Heap.NextFill). Bytes that differ
// were written past the end of the user region.
func ProbePadding(p unsafe.Pointer, n uintptr, fill byte) PaddingReport {
	r := PaddingReport{Header: block.Header(p), Fill: fill, FirstDirty: -1}

	used, err := block.FullLen(n, 0)
	if err != nil || r.Header < used {
		r.Corrupt = true
		return r
	}
	r.Padding = r.Header - used

	for i, b := range block.Bytes(unsafe.Add(p, n), r.Padding) {
		if b == fill {
			continue
		}
		if r.FirstDirty < 0 {
			r.FirstDirty = i
		}
		r.Dirty++
	}
	return r
}

// Accessible reports whether reading the byte at p succeeds. After Free on the
// mapped variant it returns false.
func Accessible(p unsafe.Pointer) bool {
	return vmem.Probe(p) == nil
}
