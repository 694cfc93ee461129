package memlayout

import (
	"reflect"

	"github.com/hupe1980/memlayout/alignof"
	"github.com/hupe1980/memlayout/storage"
	"github.com/hupe1980/memlayout/union"
)

// AlignOf returns the minimum alignment of T in bytes.
func AlignOf[T any]() uintptr {
	return alignof.Of[T]()
}

// SizeOf returns the size of T in bytes.
func SizeOf[T any]() uintptr {
	return alignof.SizeOf[T]()
}

// NewStorage returns a buffer of exactly size bytes aligned to align.
// align must be one of the supported set {1, 2, 4, 8, 16, 32, 64, 128}.
func NewStorage(align, size uintptr) (*storage.Buffer, error) {
	return storage.New(align, size)
}

// UnionStorage returns a buffer sized and aligned to host a value of any
// one of the given candidate types.
func UnionStorage(types ...reflect.Type) (*storage.Buffer, error) {
	l, err := union.For(types...)
	if err != nil {
		return nil, err
	}
	return l.Storage()
}
