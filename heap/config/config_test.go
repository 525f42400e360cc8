package config

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(env map[string]string) LookupFunc {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(mapLookup(nil))
	require.NoError(t, err)
	assert.False(t, cfg.Nondeterministic)
	assert.Zero(t, cfg.ExtraPadding)
	assert.Equal(t, byte(0), cfg.InitialFill())
}

func TestFromEnvPresenceOnlyFlag(t *testing.T) {
	// An empty value still counts as present.
	cfg, err := FromEnv(mapLookup(map[string]string{EnvNondeterministic: ""}))
	require.NoError(t, err)
	assert.True(t, cfg.Nondeterministic)
}

func TestFromEnvPadding(t *testing.T) {
	tests := []struct {
		raw     string
		want    uintptr
		wantErr bool
	}{
		{raw: "16", want: 16},
		{raw: " 4096 ", want: 4096},
		{raw: "0", want: 0},
		{raw: "", wantErr: true},
		{raw: "-1", wantErr: true},
		{raw: "0x10", wantErr: true},
		{raw: "lots", wantErr: true},
		{raw: "99999999999999999999999", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(strconv.Quote(tt.raw), func(t *testing.T) {
			cfg, err := FromEnv(mapLookup(map[string]string{EnvExtraMemory: tt.raw}))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), EnvExtraMemory)
				assert.Zero(t, cfg.ExtraPadding, "unparseable padding falls back to zero")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.ExtraPadding)
		})
	}
}

func TestFreestandingForcesZeroPadding(t *testing.T) {
	cfg := Config{Nondeterministic: true, ExtraPadding: 64}
	fs := cfg.Freestanding()
	assert.Zero(t, fs.ExtraPadding)
	assert.True(t, fs.Nondeterministic)
	assert.Equal(t, uintptr(64), cfg.ExtraPadding, "receiver is not modified")
}

func TestInitialFillSeed(t *testing.T) {
	seed := uint8(0x42)
	cfg := Config{Nondeterministic: true, Seed: &seed}
	assert.Equal(t, byte(0x42), cfg.InitialFill())

	cfg.Nondeterministic = false
	assert.Equal(t, byte(0), cfg.InitialFill(), "seed is ignored unless nondeterministic")
}
