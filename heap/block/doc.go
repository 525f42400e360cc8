// Package block defines the byte layout shared by every diffuzz allocator.
//
// # Layout
//
// Each allocation is one contiguous range whose first machine word is the header:
//
//	base                base+HeaderSize
//	|  header (word)   |  user region (N)  |  extra padding (P)  |
//	                   ^ pointer returned to the caller
//
// The header stores the total size HeaderSize+N+P. Free and Realloc recover it by
// address arithmetic from the user pointer alone, so no side table exists. A
// caller that writes in front of its own allocation corrupts this word and makes
// the release use a wrong size; that is an accepted detection trade-off.
//
// The padding trails the user region so that a bounded overflow past the nominal
// request lands in reserved memory where a probe can find it.
//
// # Fill policy
//
// Fresh bytes are set to a byte drawn from a Rotor, a counter that advances once
// per allocation. Consecutive allocations therefore observe different garbage,
// and reads of uninitialized memory show up as inconsistent values rather than
// stable zeros. Zeroed allocations clear only the user region.
//
// # Overflow
//
// All size arithmetic is checked. A multiplication or addition that would wrap the
// machine word yields ErrOverflow, never a small allocation.
package block
