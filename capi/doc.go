// Package main provides C API bindings for the whisperaudio preprocessing
// core.
//
// The bindings expose the five preprocessing operations and the placeholder
// recognition contract to host applications through a C-compatible surface.
// All audio buffers cross the boundary as caller-owned arrays: inputs are
// copied into Go-owned memory on entry and outputs are copied into
// caller-provided buffers before returning, on every path including error
// returns. No Go pointer escapes to C.
//
// Failure signaling follows the library contract: operations return a
// negative count (or 0/false/null for scalar results) and emit a diagnostic
// log entry; they never abort the calling process.
//
// Recognition contexts are handed out as opaque pointers backed by a
// mutex-guarded registry, so the C side never sees Go memory.
//
// Build instructions:
//
//	go build -buildmode=c-shared -o libwhisperaudio.so ./capi
package main
