package union

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/hupe1980/memlayout/storage"
)

var (
	// ErrStorageTooSmall is returned when the buffer cannot hold the type.
	ErrStorageTooSmall = errors.New("union: storage too small")
	// ErrStorageMisaligned is returned when the buffer's address does not
	// satisfy the type's alignment.
	ErrStorageMisaligned = errors.New("union: storage misaligned")
	// ErrPointerType is returned when the hosted type contains pointers,
	// which the garbage collector cannot trace through raw storage.
	ErrPointerType = errors.New("union: type contains pointers")
)

// Put constructs v in the buffer and returns a pointer to the hosted
// value. Any value previously hosted in the buffer is overwritten; bytes
// beyond the value's size are left untouched.
func Put[T any](b *storage.Buffer, v T) (*T, error) {
	p, err := View[T](b)
	if err != nil {
		return nil, err
	}
	*p = v
	return p, nil
}

// View reinterprets the buffer as a value of type T. The contents are
// whatever was last written; viewing storage that never hosted a T reads
// raw bytes.
func View[T any](b *storage.Buffer) (*T, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if err := checkHostable(t, b); err != nil {
		return nil, err
	}
	return (*T)(b.Pointer()), nil
}

func checkHostable(t reflect.Type, b *storage.Buffer) error {
	if containsPointers(t) {
		return fmt.Errorf("%w: %s", ErrPointerType, t)
	}
	if t.Size() > b.Size() {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrStorageTooSmall, t.Size(), b.Size())
	}
	if a := uintptr(t.Align()); uintptr(b.Pointer())&(a-1) != 0 {
		return fmt.Errorf("%w: address %#x, need %d-byte alignment", ErrStorageMisaligned, uintptr(b.Pointer()), a)
	}
	return nil
}

// containsPointers reports whether values of t embed pointers the
// garbage collector would need to trace.
func containsPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && containsPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if containsPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, slices, maps, chans, strings, interfaces, funcs and
		// unsafe.Pointer all carry references.
		return true
	}
}
