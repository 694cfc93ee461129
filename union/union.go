package union

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/hupe1980/memlayout/alignof"
	"github.com/hupe1980/memlayout/storage"
)

var (
	// ErrNoCandidates is returned when For is called without types.
	ErrNoCandidates = errors.New("union: no candidate types")
	// ErrInvalidCandidate is returned for candidates without a measurable layout.
	ErrInvalidCandidate = errors.New("union: invalid candidate type")
)

// Layout describes the storage demand of a candidate set: the maximum
// alignment of any candidate and the maximum size, rounded up to that
// alignment.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// Of returns the layout of a single candidate type.
func Of[T any]() Layout {
	return Layout{
		Size:  alignof.SizeOf[T](),
		Align: alignof.Of[T](),
	}
}

// Join combines two layouts: the result is aligned for both and large
// enough for either, with the size rounded up to the joined alignment.
func Join(a, b Layout) Layout {
	out := Layout{
		Size:  max(a.Size, b.Size),
		Align: max(a.Align, b.Align),
	}
	if out.Align == 0 {
		out.Align = 1
	}
	out.Size = alignUp(out.Size, out.Align)
	return out
}

// For returns the layout of an open-ended candidate list. Every
// candidate must have a measurable layout.
func For(types ...reflect.Type) (Layout, error) {
	if len(types) == 0 {
		return Layout{}, ErrNoCandidates
	}

	out := Layout{Align: 1}
	for i, t := range types {
		a, err := alignof.TypeAlign(t)
		if err != nil {
			return Layout{}, fmt.Errorf("%w: candidate %d: %v", ErrInvalidCandidate, i, err)
		}
		out = Join(out, Layout{Size: t.Size(), Align: a})
	}
	return out, nil
}

// Storage returns a buffer sized and aligned for the layout. A zero-size
// layout still yields one byte of storage so the buffer has an address.
func (l Layout) Storage() (*storage.Buffer, error) {
	size := l.Size
	if size == 0 {
		size = 1
	}
	align := l.Align
	if align == 0 {
		align = 1
	}
	return storage.New(align, size)
}

func (l Layout) String() string {
	return fmt.Sprintf("Layout{size: %d, align: %d}", l.Size, l.Align)
}

// alignUp rounds n up to the next multiple of align. align must be a
// power of two.
func alignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}
