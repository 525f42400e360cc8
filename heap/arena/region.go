package arena

import (
	"sync"
	"unsafe"

	"github.com/joshuapare/diffuzz/heap/block"
)

// Region is a fixed-capacity bump region of machine words. The cursor only
// advances, so no two reservations ever alias.
type Region struct {
	mu    sync.Mutex
	words []uintptr
	next  uintptr // index of the first unreserved word
}

// NewRegion reserves capacity bytes, rounded up to whole words.
func NewRegion(capacity uintptr) *Region {
	return &Region{words: make([]uintptr, block.Words(capacity))}
}

// Reserve bumps n words and sets each of them to the word returned by fill,
// which is called once under the lock. It returns false, without calling fill,
// when fewer than n words remain.
func (r *Region) Reserve(n uintptr, fill func() uintptr) (unsafe.Pointer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n == 0 || n > uintptr(len(r.words))-r.next {
		return nil, false
	}
	s := r.words[r.next : r.next+n]
	r.next += n

	w := fill()
	for i := range s {
		s[i] = w
	}
	return unsafe.Pointer(&s[0]), true
}

// Capacity returns the region size in bytes.
func (r *Region) Capacity() uintptr {
	return uintptr(len(r.words)) * block.WordSize
}

// Used returns the number of bytes reserved so far.
func (r *Region) Used() uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next * block.WordSize
}
