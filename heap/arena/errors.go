package arena

import "errors"

// ErrExhausted indicates the arena has too few words left for an allocation.
// The arena never grows or reclaims, so this failure is permanent.
var ErrExhausted = errors.New("arena: capacity exhausted")
