// Command libdiffuzz builds the diffuzz allocator as a shared object.
//
// Build for a unix host (cgo) and link the harness against the prefixed entry
// points:
//
//	go build -buildmode=c-shared -o libdiffuzz.so ./cmd/libdiffuzz
//	cc -Dmalloc=diffuzz_malloc -Dcalloc=diffuzz_calloc \
//	   -Dfree=diffuzz_free -Drealloc=diffuzz_realloc harness.c ./libdiffuzz.so
//
// The Go runtime inside the shared object performs its own C allocations while
// it bootstraps, so the object cannot take over the unprefixed libc names.
//
// Build for WebAssembly to get the drop-in malloc, calloc, free and realloc
// exports backed by the arena variant:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o diffuzz.wasm ./cmd/libdiffuzz
//
// Configuration is read from the environment when the module loads:
//
//	LIBDIFFUZZ_NONDETERMINISTIC       seed the fill byte randomly (presence only)
//	LIBDIFFUZZ_ALLOCATE_EXTRA_MEMORY  padding bytes after every allocation (host only)
//	LIBDIFFUZZ_LOG                    debug|info|warn|error, written to stderr
package main

func main() {}
