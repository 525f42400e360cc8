//go:build unix

package vmem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapIsPageAlignedAndWritable(t *testing.T) {
	p, err := Map(100)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Unmap(p, 100) })

	assert.Zero(t, uintptr(p)%PageSize(), "mapping should be page aligned")

	b := unsafe.Slice((*byte)(p), 100)
	for i := range b {
		assert.Zero(t, b[i], "fresh anonymous pages are zeroed")
		b[i] = byte(i)
	}
	assert.Equal(t, byte(99), b[99])
}

func TestMapZeroLength(t *testing.T) {
	_, err := Map(0)
	require.ErrorIs(t, err, ErrZeroLength)
	require.ErrorIs(t, Unmap(nil, 0), ErrZeroLength)
}

func TestMapHugeFails(t *testing.T) {
	_, err := Map(^uintptr(0) - PageSize())
	require.Error(t, err)
}

func TestProbeUnmapped(t *testing.T) {
	p, err := Map(PageSize())
	require.NoError(t, err)

	require.NoError(t, Probe(p), "mapped page should be readable")
	require.NoError(t, Unmap(p, PageSize()))

	err = Probe(p)
	require.ErrorIs(t, err, ErrFault, "unmapped page should fault")
}
