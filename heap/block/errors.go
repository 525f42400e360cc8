package block

import "errors"

// ErrOverflow indicates that a requested or total size does not fit in a machine word.
var ErrOverflow = errors.New("block: size overflows machine word")
