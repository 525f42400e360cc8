// Package arena implements the freestanding diffuzz allocator.
//
// All allocations are carved from one fixed 8 MiB region with a lock-guarded
// bump cursor. Release is a no-op: memory is never reclaimed, so a stale pointer
// stays readable but its bytes are never handed to a later allocation. Once the
// region is exhausted every further allocation fails.
//
// The region lives in the Go heap as a []uintptr, which the garbage collector
// does not scan. Callers must not store Go pointers in arena memory.
package arena

import (
	"sync"
	"unsafe"

	"github.com/joshuapare/diffuzz/heap/block"
	"github.com/joshuapare/diffuzz/heap/config"
	"github.com/joshuapare/diffuzz/internal/logger"
)

// DefaultCapacity is the arena size used when none is given.
const DefaultCapacity = 8 << 20

// Allocator bump-allocates from a lazily constructed Region.
type Allocator struct {
	capacity uintptr
	padding  uintptr

	once   sync.Once
	region *Region

	fill  block.Rotor
	stats block.Counters
}

// New creates an Allocator. Padding is forced to zero; capacity 0 selects
// DefaultCapacity. The region itself is built on first use.
func New(cfg config.Config, capacity uintptr) *Allocator {
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	cfg = cfg.Freestanding()
	a := &Allocator{
		capacity: capacity,
		padding:  cfg.ExtraPadding,
	}
	a.fill.Seed(cfg.InitialFill())
	return a
}

func (a *Allocator) arena() *Region {
	a.once.Do(func() {
		a.region = NewRegion(a.capacity)
	})
	return a.region
}

// TryMalloc allocates n bytes filled with the allocation's fill byte.
func (a *Allocator) TryMalloc(n uintptr) (unsafe.Pointer, error) {
	p, err := a.reserve(n)
	if err != nil {
		return nil, a.fail("malloc", n, err)
	}
	return p, nil
}

// TryCalloc allocates count*size bytes with the user region zeroed.
func (a *Allocator) TryCalloc(count, size uintptr) (unsafe.Pointer, error) {
	n, err := block.ArrayLen(count, size)
	if err != nil {
		return nil, a.fail("calloc", count, err)
	}
	p, err := a.reserve(n)
	if err != nil {
		return nil, a.fail("calloc", n, err)
	}
	block.Zero(p, n)
	return p, nil
}

// TryRealloc copies the allocation at p into a new reservation of n bytes. A nil
// p behaves as TryMalloc.
func (a *Allocator) TryRealloc(p unsafe.Pointer, n uintptr) (unsafe.Pointer, error) {
	if p == nil {
		return a.TryMalloc(n)
	}
	old := block.Header(p)
	np, err := a.TryMalloc(n)
	if err != nil {
		return nil, err
	}
	// The new reservation follows p's block, so the old total size stays in bounds.
	block.Copy(np, p, min(n, old))
	a.Free(p)
	return np, nil
}

// Malloc is TryMalloc with the C contract: nil on failure.
func (a *Allocator) Malloc(n uintptr) unsafe.Pointer {
	p, _ := a.TryMalloc(n)
	return p
}

// Calloc is TryCalloc with the C contract: nil on failure.
func (a *Allocator) Calloc(count, size uintptr) unsafe.Pointer {
	p, _ := a.TryCalloc(count, size)
	return p
}

// Realloc is TryRealloc with the C contract: nil on failure.
func (a *Allocator) Realloc(p unsafe.Pointer, n uintptr) unsafe.Pointer {
	np, _ := a.TryRealloc(p, n)
	return np
}

// Free is a no-op; the arena never reclaims. It only counts non-nil releases.
func (a *Allocator) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	a.stats.Free(0)
}

// Padding always returns 0.
func (a *Allocator) Padding() uintptr { return a.padding }

// NextFill returns the fill byte the next allocation will receive.
func (a *Allocator) NextFill() byte { return a.fill.Peek() }

// Stats returns a snapshot of the counters. Bytes is cumulative.
func (a *Allocator) Stats() block.Stats { return a.stats.Snapshot() }

// Capacity returns the arena size in bytes.
func (a *Allocator) Capacity() uintptr { return a.arena().Capacity() }

// Used returns how many arena bytes have been reserved.
func (a *Allocator) Used() uintptr { return a.arena().Used() }

func (a *Allocator) reserve(n uintptr) (unsafe.Pointer, error) {
	full, err := block.FullLen(n, a.padding)
	if err != nil {
		return nil, err
	}
	base, ok := a.arena().Reserve(block.Words(full), func() uintptr {
		return block.FillWord(a.fill.Next())
	})
	if !ok {
		return nil, ErrExhausted
	}
	a.stats.Alloc(full)
	return block.Seal(base, full), nil
}

func (a *Allocator) fail(op string, n uintptr, err error) error {
	a.stats.Fail()
	logger.Debug("allocation failed", "op", op, "size", n, "err", err)
	return err
}
