// Package config holds the values that alter allocation behavior.
//
// Values are resolved once, before the first allocation, and are read-only
// afterwards. Parsing never fails: a malformed value falls back to its default.
package config

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
)

const (
	// EnvNondeterministic enables random seeding of the fill counter when present.
	EnvNondeterministic = "LIBDIFFUZZ_NONDETERMINISTIC"

	// EnvExtraMemory is the number of padding bytes appended to every allocation.
	EnvExtraMemory = "LIBDIFFUZZ_ALLOCATE_EXTRA_MEMORY"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Config is the allocator configuration.
type Config struct {
	// Nondeterministic seeds the fill counter from a random byte instead of 0,
	// so repeated runs observe different fill sequences.
	Nondeterministic bool

	// ExtraPadding is appended to every allocation's requested length.
	// Default: 0
	ExtraPadding uintptr

	// Seed pins the byte used when Nondeterministic is set. Nil draws one at random.
	Seed *uint8
}

// Environ returns os.LookupEnv as a LookupFunc.
func Environ() LookupFunc {
	return os.LookupEnv
}

// FromEnv resolves a Config from lookup. A padding value that does not parse is
// reported through the returned error while the Config carries zero padding;
// callers are expected to log it and continue.
func FromEnv(lookup LookupFunc) (Config, error) {
	var cfg Config
	if _, ok := lookup(EnvNondeterministic); ok {
		cfg.Nondeterministic = true
	}

	raw, ok := lookup(EnvExtraMemory)
	if !ok {
		return cfg, nil
	}
	pad, err := ParsePadding(raw)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", EnvExtraMemory, err)
	}
	cfg.ExtraPadding = pad
	return cfg, nil
}

// ParsePadding parses a base-10 unsigned byte count that fits in a machine word.
func ParsePadding(s string) (uintptr, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, strconv.IntSize)
	if err != nil {
		return 0, err
	}
	return uintptr(n), nil
}

// Freestanding returns a copy of c for environments without an OS configuration
// source: padding is forced to zero.
func (c Config) Freestanding() Config {
	c.ExtraPadding = 0
	return c
}

// InitialFill returns the first fill byte: 0, or a random byte (or Seed) when
// Nondeterministic is set.
func (c Config) InitialFill() byte {
	if !c.Nondeterministic {
		return 0
	}
	if c.Seed != nil {
		return *c.Seed
	}
	return byte(rand.Uint32())
}
