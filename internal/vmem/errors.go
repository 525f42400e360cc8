package vmem

import "errors"

var (
	// ErrUnsupported indicates the platform has no anonymous mapping support.
	ErrUnsupported = errors.New("vmem: anonymous mappings not supported on this platform")

	// ErrFault indicates that touching an address raised a memory fault.
	ErrFault = errors.New("vmem: memory access fault")

	// ErrZeroLength indicates a request to map or unmap zero bytes.
	ErrZeroLength = errors.New("vmem: zero-length region")
)
