// Package heap is the entry point to the diffuzz allocator, a malloc replacement
// that makes memory-safety bugs crash instead of silently corrupting data.
//
// # Overview
//
// diffuzz trades memory and speed for detection power during fuzzing and
// differential testing:
//
//   - Use after free: every allocation is its own mapping and Free unmaps it, so
//     a stale access faults immediately.
//   - Uninitialized reads: fresh bytes are filled with a byte that rotates per
//     allocation, so two runs or two allocations disagree instead of both
//     reading zero.
//   - Bounded overflow: optional extra padding after every allocation keeps a
//     known amount of overflow inside reserved memory, where ProbePadding can
//     find it.
//
// # Variants
//
// Two implementations share the size arithmetic and header convention of
// package block:
//
//	mapped: one anonymous mapping per allocation (unix, default)
//	arena:  an 8 MiB lock-guarded bump arena that never frees
//	        (wasm and other targets, or the freestanding build tag)
//
// New returns the variant selected for the build; NewMapped and NewArena pick
// one explicitly.
//
// # Lifecycle
//
// Configuration is resolved once, before the first allocation. Startup reads the
// environment and calls Init; the exported C and wasm entry points in
// cmd/libdiffuzz run it from their init hook. Default returns the instance
// installed by Init, creating an unconfigured one on first use if Init never ran.
//
// # Usage Example
//
//	h := heap.New(config.Config{ExtraPadding: 16})
//	fill := h.NextFill()
//	p := h.Malloc(10)
//	if p == nil {
//	    return errOutOfMemory
//	}
//	defer h.Free(p)
//
//	// Overflow by up to 16 bytes stays mapped; find it afterwards.
//	r := heap.ProbePadding(p, 10, fill)
//
// # Thread Safety
//
// Every Heap is safe for concurrent use. The mapped variant takes no locks; the
// arena serializes reservations behind one mutex.
package heap
