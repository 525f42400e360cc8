package main

import (
	"github.com/joshuapare/diffuzz/heap"
	"github.com/joshuapare/diffuzz/heap/config"
)

// h is installed before any exported entry point can run: package init completes
// before the runtime accepts calls from C or from the wasm host.
var h heap.Heap

func init() {
	h = heap.Startup(config.Environ())
}
