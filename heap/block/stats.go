package block

import "sync/atomic"

// Stats is a snapshot of allocator counters.
type Stats struct {
	Allocs   uint64 `json:"allocs"`   // successful allocations, including those made by Realloc
	Frees    uint64 `json:"frees"`    // non-nil releases
	Failures uint64 `json:"failures"` // allocations that returned nil
	Bytes    uint64 `json:"bytes"`    // reserved bytes; live for mapped, cumulative for arena
}

// Counters accumulates Stats with atomic updates.
type Counters struct {
	allocs   atomic.Uint64
	frees    atomic.Uint64
	failures atomic.Uint64
	bytes    atomic.Uint64
}

// Alloc records a successful allocation of full bytes.
func (c *Counters) Alloc(full uintptr) {
	c.allocs.Add(1)
	c.bytes.Add(uint64(full))
}

// Free records a release. Pass the released size to subtract it from Bytes, or 0
// when the backing store never reclaims.
func (c *Counters) Free(full uintptr) {
	c.frees.Add(1)
	if full != 0 {
		c.bytes.Add(^uint64(full - 1))
	}
}

// Fail records an allocation that returned nil.
func (c *Counters) Fail() {
	c.failures.Add(1)
}

// Snapshot returns the current counter values.
func (c *Counters) Snapshot() Stats {
	return Stats{
		Allocs:   c.allocs.Load(),
		Frees:    c.frees.Load(),
		Failures: c.failures.Load(),
		Bytes:    c.bytes.Load(),
	}
}
