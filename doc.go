// Package memlayout provides memory-layout utilities for low-level Go
// code: alignment deduction, aligned raw storage, and union sizing.
//
// # Quick Start
//
// Deduce the alignment and size of a type:
//
//	a := memlayout.AlignOf[float64]() // 8 on 64-bit platforms
//	s := memlayout.SizeOf[float64]()  // 8
//
// Build storage with an explicit alignment and size:
//
//	buf, _ := memlayout.NewStorage(64, 256)
//	// buf.Bytes() is 256 bytes starting on a 64-byte boundary
//
// Build storage that can host any one of several candidate types:
//
//	buf, _ := memlayout.UnionStorage(
//	    reflect.TypeFor[int32](),
//	    reflect.TypeFor[float64](),
//	)
//
// # Packages
//
// The facade covers the common cases; the subpackages expose the full
// surface:
//
//   - alignof: structural alignment deduction, dynamic-type measurement,
//     threshold predicates
//   - storage: aligned buffers over the supported alignment set, plus
//     page-aligned mapping-backed buffers
//   - union: candidate-set layouts, fixed-arity helpers, and placement
//     of values into storage
//
// # Ownership
//
// Storage produced here is raw and uninitialized. The caller owns the
// hosted value's lifecycle and any synchronization; this module
// guarantees only the layout preconditions (address alignment,
// sufficient size) that make in-place construction safe.
package memlayout
