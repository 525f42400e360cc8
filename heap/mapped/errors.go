package mapped

import "errors"

// ErrMapFailed indicates the OS refused the anonymous mapping for an allocation.
var ErrMapFailed = errors.New("mapped: mapping failed")
