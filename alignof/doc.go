// Package alignof deduces the minimum alignment of arbitrary types.
//
// # Overview
//
// The alignment of a type is measured structurally rather than queried:
// a probe struct places a single byte in front of a field of the target
// type, and the toolchain's own layout rules push that field to the
// smallest offset satisfying the type's alignment. Reading the field
// offset therefore yields exactly the minimum alignment, for empty and
// one-byte-aligned types included.
//
// # Static vs Dynamic Types
//
// Of and SizeOf work on statically known types via generics and resolve
// at instantiation time. For values whose concrete type is only
// reachable through an interface, OfValue and OfType measure the dynamic
// type through reflection without constructing another instance of it:
//
//	var s Shape = Circle{R: 1}
//	a := alignof.OfValue(s) // alignment of Circle
//
// # Guarantees
//
// Every result is a power of two and agrees with the toolchain's native
// unsafe.Alignof for the same type. A non-power-of-two measurement
// indicates a broken layout model and panics.
package alignof
