// Package mapped implements the host-backed diffuzz allocator.
//
// Every allocation is its own anonymous mapping and every release unmaps it
// immediately, so a dangling pointer always touches unmapped memory and faults.
// No metadata survives a release: the mapping size is recovered from the header
// word in front of the user pointer.
//
// The allocator takes no locks. Each map or unmap is an independent OS call and
// the fill counter and statistics are atomic.
package mapped

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/diffuzz/heap/block"
	"github.com/joshuapare/diffuzz/heap/config"
	"github.com/joshuapare/diffuzz/internal/logger"
	"github.com/joshuapare/diffuzz/internal/vmem"
)

// Allocator maps one region per allocation.
type Allocator struct {
	padding  uintptr
	pageSize uintptr
	fill     block.Rotor
	stats    block.Counters
}

// New creates an Allocator from cfg. The fill counter is seeded here, before any
// allocation can observe it.
func New(cfg config.Config) *Allocator {
	a := &Allocator{
		padding:  cfg.ExtraPadding,
		pageSize: vmem.PageSize(),
	}
	a.fill.Seed(cfg.InitialFill())
	return a
}

// TryMalloc allocates n bytes. The user region and the trailing padding are set
// to the allocation's fill byte.
func (a *Allocator) TryMalloc(n uintptr) (unsafe.Pointer, error) {
	p, err := a.mapBlock(n)
	if err != nil {
		return nil, a.fail("malloc", n, err)
	}
	block.Fill(p, n+a.padding, a.fill.Next())
	return p, nil
}

// TryCalloc allocates count*size zeroed bytes. Only the trailing padding gets
// the fill byte.
func (a *Allocator) TryCalloc(count, size uintptr) (unsafe.Pointer, error) {
	n, err := block.ArrayLen(count, size)
	if err != nil {
		return nil, a.fail("calloc", count, err)
	}
	p, err := a.mapBlock(n)
	if err != nil {
		return nil, a.fail("calloc", n, err)
	}
	block.Zero(p, n)
	block.Fill(unsafe.Add(p, n), a.padding, a.fill.Next())
	return p, nil
}

// TryRealloc moves the allocation at p into a fresh mapping of n bytes. A nil p
// behaves as TryMalloc. On failure the original allocation is left untouched.
func (a *Allocator) TryRealloc(p unsafe.Pointer, n uintptr) (unsafe.Pointer, error) {
	if p == nil {
		return a.TryMalloc(n)
	}
	old := block.Header(p)
	np, err := a.TryMalloc(n)
	if err != nil {
		return nil, err
	}
	block.Copy(np, p, a.copyLen(old, n))
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

// Free unmaps the whole allocation at p. A nil p is a no-op.
func (a *Allocator) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	full := block.Header(p)
	if err := vmem.Unmap(block.Base(p), full); err != nil {
		// The header was most likely overwritten by an underflow.
		logger.Warn("free failed", "ptr", p, "size", full, "err", err)
		return
	}
	a.stats.Free(full)
}

// Padding returns the extra bytes appended to every allocation.
func (a *Allocator) Padding() uintptr { return a.padding }

// NextFill returns the fill byte the next allocation will receive.
func (a *Allocator) NextFill() byte { return a.fill.Peek() }

// Stats returns a snapshot of the allocation counters. Bytes counts live mappings.
func (a *Allocator) Stats() block.Stats { return a.stats.Snapshot() }

func (a *Allocator) mapBlock(n uintptr) (unsafe.Pointer, error) {
	full, err := block.FullLen(n, a.padding)
	if err != nil {
		return nil, err
	}
	base, err := vmem.Map(full)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMapFailed, err)
	}
	a.stats.Alloc(full)
	return block.Seal(base, full), nil
}

// copyLen bounds a relocation copy by the old total size, clamped to what is
// still mapped behind the old user pointer.
func (a *Allocator) copyLen(oldFull, n uintptr) uintptr {
	m := min(n, oldFull)
	if mapped, ok := block.RoundUp(oldFull, a.pageSize); ok {
		m = min(m, mapped-block.HeaderSize)
	}
	return m
}

func (a *Allocator) fail(op string, n uintptr, err error) error {
	a.stats.Fail()
	logger.Debug("allocation failed", "op", op, "size", n, "err", err)
	return err
}
