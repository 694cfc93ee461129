package storage

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/hupe1980/memlayout/internal/conv"
	"github.com/hupe1980/memlayout/internal/mmap"
)

const (
	// MinAlignment is the smallest supported alignment.
	MinAlignment = 1
	// MaxAlignment is the largest supported non-page alignment.
	MaxAlignment = 128
)

var (
	// ErrUnsupportedAlignment is returned when the requested alignment is
	// outside the supported set. Extend the allocator table to add more.
	ErrUnsupportedAlignment = errors.New("storage: unsupported alignment")
	// ErrInvalidSize is returned when the requested size is zero.
	ErrInvalidSize = errors.New("storage: size must be positive")
)

// Buffer is raw storage of a fixed size and alignment. The zero value is
// not usable; obtain buffers from New, MustNew or Page.
type Buffer struct {
	data    []byte
	align   uintptr
	mapping *mmap.Mapping
}

// New returns a buffer of exactly size bytes whose start address is a
// multiple of align. align must be one of the supported set.
func New(align, size uintptr) (*Buffer, error) {
	if size == 0 {
		return nil, ErrInvalidSize
	}
	alloc, ok := allocators[align]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAlignment, align)
	}
	n, err := conv.UintptrToInt(size)
	if err != nil {
		return nil, err
	}
	return &Buffer{data: alloc(n), align: align}, nil
}

// MustNew is like New but panics on error. Intended for call sites with
// statically known arguments.
func MustNew(align, size uintptr) *Buffer {
	b, err := New(align, size)
	if err != nil {
		panic(err)
	}
	return b
}

// Bytes returns the storage bytes. Its length is exactly the requested
// size regardless of the backing strategy.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Pointer returns the start address of the storage.
func (b *Buffer) Pointer() unsafe.Pointer {
	return unsafe.Pointer(&b.data[0])
}

// Size returns the storage size in bytes.
func (b *Buffer) Size() uintptr {
	return uintptr(len(b.data))
}

// Alignment returns the guaranteed alignment in bytes.
func (b *Buffer) Alignment() uintptr {
	return b.align
}

// Zero clears the storage for reuse.
func (b *Buffer) Zero() {
	// this pattern is recognized by the compiler and optimized
	for i := range b.data {
		b.data[i] = 0
	}
}

// Close releases mapping-backed storage. It is a no-op for heap-backed
// buffers and idempotent for mapped ones. The buffer's bytes must not be
// used after Close.
func (b *Buffer) Close() error {
	if b.mapping == nil {
		return nil
	}
	return b.mapping.Close()
}

func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer{align: %d, size: %d, mapped: %v}", b.align, len(b.data), b.mapping != nil)
}
