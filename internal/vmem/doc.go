// Package vmem wraps the operating system's anonymous virtual-memory primitives.
//
// Every call maps or unmaps an independent, private, read-write region. Regions
// are addressed by raw pointer and length rather than by slice so that callers
// can rebuild the unmap arguments from a header stored inside the region itself.
//
// Probe turns a memory fault at an address into an error, which is how tests and
// the inspection CLI confirm that released memory is really gone.
package vmem
