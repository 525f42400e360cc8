package arena

import (
	"testing"
	"unsafe"

	"github.com/joshuapare/diffuzz/heap/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegion_CapacityRoundsToWords(t *testing.T) {
	r := NewRegion(block.WordSize*3 + 1)
	assert.Equal(t, block.WordSize*4, r.Capacity())
	assert.Zero(t, r.Used())
}

func TestRegion_ReserveFillsAndAdvances(t *testing.T) {
	r := NewRegion(block.WordSize * 8)

	calls := 0
	p, ok := r.Reserve(3, func() uintptr { calls++; return block.FillWord(0x11) })
	require.True(t, ok)
	assert.Equal(t, 1, calls, "fill is drawn once per reservation")
	assert.Equal(t, block.WordSize*3, r.Used())

	words := unsafe.Slice((*uintptr)(p), 3)
	for _, w := range words {
		assert.Equal(t, block.FillWord(0x11), w)
	}

	q, ok := r.Reserve(5, func() uintptr { return 0 })
	require.True(t, ok)
	assert.Equal(t, uintptr(p)+3*block.WordSize, uintptr(q), "cursor only advances")
}

func TestRegion_Exhaustion(t *testing.T) {
	r := NewRegion(block.WordSize * 4)

	_, ok := r.Reserve(5, func() uintptr { t.Fatal("fill must not run on failure"); return 0 })
	assert.False(t, ok)

	_, ok = r.Reserve(4, func() uintptr { return 0 })
	require.True(t, ok)

	_, ok = r.Reserve(1, func() uintptr { return 0 })
	assert.False(t, ok, "a full region stays full")
}
