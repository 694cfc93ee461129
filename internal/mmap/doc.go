// Package mmap provides anonymous memory mappings.
//
// # Overview
//
// An anonymous mapping is read-write memory obtained directly from the
// operating system rather than the Go heap. The kernel hands out whole
// pages, so every mapping starts on a page boundary — this is what makes
// it useful as backing for page-aligned storage buffers.
//
// # Usage
//
//	m, err := mmap.MapAnon(size)
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//
// # Thread Safety
//
// Bytes() is safe for concurrent use. Close() is idempotent and
// protected by an atomic flag, but callers must ensure no goroutine
// touches the mapped bytes after Close() returns.
package mmap
