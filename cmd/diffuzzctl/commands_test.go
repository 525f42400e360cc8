package main

import (
	"testing"

	"github.com/joshuapare/diffuzz/heap"
	"github.com/joshuapare/diffuzz/heap/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) config.LookupFunc {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestEnvCommand(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantContain []string
	}{
		{
			name:        "defaults",
			env:         nil,
			wantContain: []string{"Allocator: " + heap.Variant, "Nondeterministic: false"},
		},
		{
			name:        "nondeterministic",
			env:         map[string]string{config.EnvNondeterministic: "1"},
			wantContain: []string{"Nondeterministic: true"},
		},
		{
			name:        "malformed padding",
			env:         map[string]string{config.EnvExtraMemory: "many"},
			wantContain: []string{"Extra padding: 0 bytes", "Warning:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			output, err := captureOutput(t, func() error {
				return runEnv(lookupFrom(tt.env))
			})
			require.NoError(t, err)
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestEnvCommand_JSON(t *testing.T) {
	resetFlags()
	jsonOut = true

	output, err := captureOutput(t, func() error {
		return runEnv(lookupFrom(map[string]string{config.EnvExtraMemory: "32"}))
	})
	require.NoError(t, err)

	var got envReport
	assertJSON(t, output, &got)
	assert.Equal(t, heap.Variant, got.Variant)
	if heap.Variant == "mapped" {
		assert.Equal(t, uint64(32), got.Padding)
	} else {
		assert.Zero(t, got.Padding)
	}
}

func TestFillsCommand(t *testing.T) {
	resetFlags()
	jsonOut = true
	fillsCount = 4
	fillsSeed = 254

	output, err := captureOutput(t, runFills)
	require.NoError(t, err)

	var got struct {
		Fills []int `json:"fills"`
	}
	assertJSON(t, output, &got)
	assert.Equal(t, []int{254, 255, 0, 1}, got.Fills)
}

func TestFillsCommand_InvalidFlags(t *testing.T) {
	resetFlags()
	fillsCount = 0
	_, err := captureOutput(t, runFills)
	require.Error(t, err)

	resetFlags()
	fillsSeed = 300
	_, err = captureOutput(t, runFills)
	require.Error(t, err)
}

func TestProbeCommand(t *testing.T) {
	if heap.Variant != "mapped" {
		t.Skip("padding is only configurable on the mapped allocator")
	}
	resetFlags()
	jsonOut = true
	probeOverflow = 4

	output, err := captureOutput(t, runProbe)
	require.NoError(t, err)

	var got probeReport
	assertJSON(t, output, &got)
	assert.Equal(t, uint64(10), got.Len)
	assert.Equal(t, uintptr(16), got.Padding)
	assert.Equal(t, uintptr(4), got.Dirty)
	assert.Equal(t, 0, got.FirstDirty)
}

func TestProbeCommand_OverflowTooLarge(t *testing.T) {
	resetFlags()
	probeOverflow = 17

	_, err := captureOutput(t, runProbe)
	require.Error(t, err)
}

func TestUAFCommand(t *testing.T) {
	resetFlags()

	output, err := captureOutput(t, runUAF)
	require.NoError(t, err)
	if heap.Variant == "mapped" {
		assertContains(t, output, []string{"faulted"})
	} else {
		assertContains(t, output, []string{"succeeded"})
	}
}
