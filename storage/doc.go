// Package storage constructs byte buffers of exact size and guaranteed
// alignment, suitable as a target for in-place construction of values.
//
// # Overview
//
// A Buffer is raw, uninitialized storage: exactly the requested number of
// bytes, starting at an address that is a multiple of the requested
// alignment no matter where the buffer lives. The package makes no claim
// about the contents; constructing and tearing down a hosted value is
// entirely the caller's business.
//
// # Supported Alignments
//
// New accepts alignments from a closed set {1, 2, 4, 8, 16, 32, 64, 128}.
// Alignments up to 8 ride on backing arrays of a primitive element type
// whose natural alignment matches, so the type system itself provides the
// guarantee. Larger alignments over-allocate and trim to the first
// aligned offset. Anything outside the set is rejected with
// ErrUnsupportedAlignment; extend the allocator table to support more.
//
// # Page-Aligned Storage
//
// Page returns a buffer aligned to the OS page size, backed by an
// anonymous mapping when the platform provides one:
//
//	buf, err := storage.Page(1 << 20)
//	if err != nil { ... }
//	defer buf.Close()
//
// # Concurrency
//
// Construction is safe from any goroutine. Access to a buffer's bytes is
// synchronized by the caller, not by this package.
package storage
