package alignof

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"
)

var (
	// ErrNilType is returned when a nil reflect.Type is supplied.
	ErrNilType = errors.New("alignof: nil type")
	// ErrInvalidType is returned for types without a measurable layout.
	ErrInvalidType = errors.New("alignof: type has no measurable layout")
)

// probe reveals the alignment of T through layout: pad occupies offset 0,
// so the toolchain places val at the smallest non-zero offset that
// satisfies T's alignment, which is the alignment itself. The leading
// byte guarantees no coincidental alignment masks the true offset.
type probe[T any] struct {
	pad byte
	val T
}

// Of returns the minimum alignment of T in bytes.
func Of[T any]() uintptr {
	var p probe[T]
	a := unsafe.Offsetof(p.val)
	if !isPowerOfTwo(a) {
		panic(fmt.Sprintf("alignof: measured alignment %d is not a power of two", a))
	}
	return a
}

// SizeOf returns the size of T in bytes.
func SizeOf[T any]() uintptr {
	var v T
	return unsafe.Sizeof(v)
}

// OfValue returns the alignment of v's dynamic type. It panics if v is a
// nil interface; use TypeAlign when the input is not trusted.
func OfValue(v any) uintptr {
	t := reflect.TypeOf(v)
	if t == nil {
		panic("alignof: nil interface has no dynamic type")
	}
	return OfType(t)
}

// OfType returns the alignment of t. It panics on types without a
// measurable layout; use TypeAlign when the input is not trusted.
func OfType(t reflect.Type) uintptr {
	a, err := TypeAlign(t)
	if err != nil {
		panic(err)
	}
	return a
}

// TypeAlign returns the alignment of t, validating that t has a
// measurable layout.
func TypeAlign(t reflect.Type) (uintptr, error) {
	if t == nil {
		return 0, ErrNilType
	}
	switch t.Kind() {
	case reflect.Invalid, reflect.Func:
		return 0, fmt.Errorf("%w: %s", ErrInvalidType, t.Kind())
	}
	a := uintptr(t.Align())
	if !isPowerOfTwo(a) {
		panic(fmt.Sprintf("alignof: alignment %d of %s is not a power of two", a, t))
	}
	return a, nil
}

// GreaterEqual reports whether the alignment of T is at least n bytes.
func GreaterEqual[T any](n uintptr) bool {
	return Of[T]() >= n
}

// LessEqual reports whether the alignment of T is at most n bytes.
func LessEqual[T any](n uintptr) bool {
	return Of[T]() <= n
}

func isPowerOfTwo(x uintptr) bool {
	return x != 0 && (x&(x-1)) == 0
}
