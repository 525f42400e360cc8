//go:build unix && !freestanding

package heap

import "github.com/joshuapare/diffuzz/heap/config"

// Variant names the allocator New returns on this build.
const Variant = "mapped"

// New returns the variant selected for this build.
func New(cfg config.Config) Heap {
	return NewMapped(cfg)
}
