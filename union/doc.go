// Package union sizes a single storage region to host any one of a set
// of candidate types, one at a time.
//
// # Overview
//
// A Layout is the (size, alignment) pair a candidate set demands: the
// maximum alignment of any candidate and the maximum size, rounded up to
// that alignment. Feeding a Layout into the storage package yields a
// buffer that can host an in-place-constructed value of any candidate —
// an untagged union of raw bytes, with no requirement that the
// candidates share anything.
//
// # Candidate Sets
//
// Statically known candidates compose through Join or the fixed-arity
// helpers:
//
//	l := union.Of2[int32, float64]()
//	buf, _ := l.Storage()
//
// Open-ended sets use reflection:
//
//	l, err := union.For(reflect.TypeFor[int32](), reflect.TypeFor[float64]())
//
// The fixed-arity helpers go up to ten candidates; unused slots are byte
// placeholders and never change the result. For has no such cap.
//
// # Placement
//
// Put constructs a value in a buffer, View reinterprets one:
//
//	p, _ := union.Put(buf, 3.14)
//	v, _ := union.View[float64](buf)
//
// Candidate types must be pointer-free: the garbage collector cannot see
// through raw byte storage, so a pointer hosted there would not keep its
// referent alive. Put and View enforce this.
//
// # Concurrency
//
// Layouts are plain values and safe to share. Access to a buffer hosting
// a value is synchronized by the caller.
package union
