package block

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotorSequence(t *testing.T) {
	var r Rotor
	assert.Equal(t, byte(0), r.Peek())
	assert.Equal(t, byte(0), r.Next())
	assert.Equal(t, byte(1), r.Next())
	assert.Equal(t, byte(2), r.Peek())
}

func TestRotorWraps(t *testing.T) {
	var r Rotor
	r.Seed(0xff)
	assert.Equal(t, byte(0xff), r.Next())
	assert.Equal(t, byte(0x00), r.Next())
}

func TestRotorConcurrentNextIsDistinct(t *testing.T) {
	var r Rotor
	const n = 256

	var mu sync.Mutex
	seen := make(map[byte]int)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := r.Next()
			mu.Lock()
			seen[b]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, seen, n, "256 advances should hand out every byte exactly once")
}

func TestFill(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 8, 9, 100, 4096} {
		buf := make([]byte, n+1)
		Fill(unsafe.Pointer(&buf[0]), uintptr(n), 0x5c)
		for i := range n {
			require.Equal(t, byte(0x5c), buf[i], "n=%d i=%d", n, i)
		}
		assert.Zero(t, buf[n], "Fill must not write past n")
	}
	Fill(nil, 0, 1)
}

func TestZero(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	Zero(unsafe.Pointer(&buf[0]), 3)
	assert.Equal(t, []byte{0, 0, 0, 4}, buf)
}

func TestFillWord(t *testing.T) {
	w := FillWord(0xa5)
	b := unsafe.Slice((*byte)(unsafe.Pointer(&w)), WordSize)
	for i := range b {
		assert.Equal(t, byte(0xa5), b[i])
	}
	assert.Zero(t, FillWord(0))
	assert.Equal(t, ^uintptr(0), FillWord(0xff))
}

func TestCounters(t *testing.T) {
	var c Counters
	c.Alloc(100)
	c.Alloc(50)
	c.Free(100)
	c.Free(0)
	c.Fail()

	s := c.Snapshot()
	assert.Equal(t, Stats{Allocs: 2, Frees: 2, Failures: 1, Bytes: 50}, s)
}
