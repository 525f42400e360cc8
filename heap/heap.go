package heap

import (
	"sync"
	"unsafe"

	"github.com/joshuapare/diffuzz/heap/arena"
	"github.com/joshuapare/diffuzz/heap/block"
	"github.com/joshuapare/diffuzz/heap/config"
	"github.com/joshuapare/diffuzz/heap/mapped"
	"github.com/joshuapare/diffuzz/internal/logger"
)

// Heap is the allocator contract shared by both variants.
//
// Malloc, Calloc and Realloc return nil on size overflow or backing-store
// exhaustion. Free(nil) is a no-op and Realloc(nil, n) is Malloc(n). Every
// successful Realloc returns a new pointer.
type Heap interface {
	Malloc(n uintptr) unsafe.Pointer
	Calloc(count, size uintptr) unsafe.Pointer
	Free(p unsafe.Pointer)
	Realloc(p unsafe.Pointer, n uintptr) unsafe.Pointer

	// TryMalloc, TryCalloc and TryRealloc report why an allocation failed.
	TryMalloc(n uintptr) (unsafe.Pointer, error)
	TryCalloc(count, size uintptr) (unsafe.Pointer, error)
	TryRealloc(p unsafe.Pointer, n uintptr) (unsafe.Pointer, error)

	// Padding returns the extra bytes appended to every allocation.
	Padding() uintptr
	// NextFill returns the fill byte the next allocation will receive.
	NextFill() byte
	Stats() block.Stats
}

// Compile-time interface checks
var (
	_ Heap = (*mapped.Allocator)(nil)
	_ Heap = (*arena.Allocator)(nil)
)

// NewMapped returns the host-backed variant.
func NewMapped(cfg config.Config) Heap {
	return mapped.New(cfg)
}

// NewArena returns the freestanding variant with the given capacity in bytes
// (0 selects arena.DefaultCapacity).
func NewArena(cfg config.Config, capacity uintptr) Heap {
	return arena.New(cfg, capacity)
}

var (
	initOnce sync.Once
	def      Heap
)

// Init installs the process-wide heap built from cfg. Only the first call has an
// effect; later calls return the existing heap.
func Init(cfg config.Config) Heap {
	initOnce.Do(func() {
		def = New(cfg)
		logger.Info("heap initialized",
			"variant", Variant,
			"nondeterministic", cfg.Nondeterministic,
			"padding", def.Padding(),
			"first_fill", def.NextFill(),
		)
	})
	return def
}

// Default returns the process-wide heap, initializing it with a zero Config if
// Init has not run.
func Default() Heap {
	return Init(config.Config{})
}
