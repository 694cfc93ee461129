package storage

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var supportedAlignments = []uintptr{1, 2, 4, 8, 16, 32, 64, 128}

func TestNew_SupportedAlignments(t *testing.T) {
	// Sizes deliberately include values that are not a multiple of the
	// alignment.
	sizes := []uintptr{1, 3, 8, 10, 17, 64, 100, 1000}

	for _, align := range supportedAlignments {
		for _, size := range sizes {
			t.Run(fmt.Sprintf("align=%d/size=%d", align, size), func(t *testing.T) {
				// Allocate several buffers so a coincidentally aligned
				// single allocation cannot hide a broken guarantee.
				for i := 0; i < 8; i++ {
					b, err := New(align, size)
					require.NoError(t, err)

					assert.Len(t, b.Bytes(), int(size), "length must be exact")
					assert.Equal(t, size, b.Size())
					assert.Equal(t, align, b.Alignment())

					addr := uintptr(b.Pointer())
					assert.Equal(t, uintptr(0), addr%align, "address %#x not %d-aligned", addr, align)
				}
			})
		}
	}
}

func TestNew_Rejections(t *testing.T) {
	t.Run("unsupported alignment", func(t *testing.T) {
		for _, align := range []uintptr{0, 3, 5, 12, 256, 1024} {
			_, err := New(align, 16)
			assert.ErrorIs(t, err, ErrUnsupportedAlignment, "align=%d", align)
		}
	})

	t.Run("zero size", func(t *testing.T) {
		_, err := New(8, 0)
		assert.ErrorIs(t, err, ErrInvalidSize)
	})
}

func TestMustNew(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		b := MustNew(16, 32)
		assert.Equal(t, uintptr(32), b.Size())
	})

	t.Run("panics on unsupported alignment", func(t *testing.T) {
		assert.Panics(t, func() { MustNew(7, 32) })
	})
}

func TestBuffer_Writable(t *testing.T) {
	for _, align := range supportedAlignments {
		b := MustNew(align, 64)
		data := b.Bytes()
		for i := range data {
			data[i] = byte(i)
		}
		assert.Equal(t, byte(63), b.Bytes()[63])
	}
}

func TestBuffer_Zero(t *testing.T) {
	b := MustNew(8, 32)
	for i := range b.Bytes() {
		b.Bytes()[i] = 0xFF
	}

	b.Zero()

	for i, v := range b.Bytes() {
		require.Equal(t, byte(0), v, "byte %d not cleared", i)
	}
}

func TestBuffer_Interchangeable(t *testing.T) {
	// Two buffers with identical (align, size) must be usable
	// interchangeably: same length, same guarantee, bytes copy across.
	a := MustNew(16, 24)
	b := MustNew(16, 24)

	assert.Equal(t, a.Size(), b.Size())
	assert.Equal(t, a.Alignment(), b.Alignment())

	for i := range a.Bytes() {
		a.Bytes()[i] = byte(i * 7)
	}
	copy(b.Bytes(), a.Bytes())
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestBuffer_Close(t *testing.T) {
	t.Run("heap buffer no-op", func(t *testing.T) {
		b := MustNew(8, 16)
		assert.NoError(t, b.Close())
		assert.NoError(t, b.Close())
	})
}

func TestPage(t *testing.T) {
	pageSize := uintptr(os.Getpagesize())

	t.Run("aligned and exact", func(t *testing.T) {
		b, err := Page(100)
		require.NoError(t, err)
		defer b.Close()

		assert.Len(t, b.Bytes(), 100)
		assert.Equal(t, pageSize, b.Alignment())

		addr := uintptr(b.Pointer())
		assert.Equal(t, uintptr(0), addr%pageSize)
	})

	t.Run("writable", func(t *testing.T) {
		b, err := Page(pageSize * 2)
		require.NoError(t, err)
		defer b.Close()

		data := b.Bytes()
		data[0] = 0xAB
		data[len(data)-1] = 0xCD
		assert.Equal(t, byte(0xAB), data[0])
		assert.Equal(t, byte(0xCD), data[len(data)-1])
	})

	t.Run("close idempotent", func(t *testing.T) {
		b, err := Page(64)
		require.NoError(t, err)
		assert.NoError(t, b.Close())
		assert.NoError(t, b.Close())
	})

	t.Run("zero size", func(t *testing.T) {
		_, err := Page(0)
		assert.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("with logger", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		b, err := Page(128, WithLogger(logger))
		require.NoError(t, err)
		defer b.Close()

		assert.Len(t, b.Bytes(), 128)
	})
}

func TestNew_Concurrent(t *testing.T) {
	var g errgroup.Group

	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i := 0; i < 200; i++ {
				for _, align := range supportedAlignments {
					b, err := New(align, 48)
					if err != nil {
						return err
					}
					if addr := uintptr(b.Pointer()); addr%align != 0 {
						return fmt.Errorf("address %#x not %d-aligned", addr, align)
					}
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}

func TestAlignUp(t *testing.T) {
	assert.Equal(t, uintptr(0), alignUp(0, 8))
	assert.Equal(t, uintptr(8), alignUp(1, 8))
	assert.Equal(t, uintptr(8), alignUp(8, 8))
	assert.Equal(t, uintptr(16), alignUp(9, 8))
	assert.Equal(t, uintptr(128), alignUp(100, 128))
}

func TestAllocTyped_ExactLength(t *testing.T) {
	// Backing arrays round capacity up to whole elements; the returned
	// slice must still be trimmed to the requested length.
	for _, size := range []int{1, 3, 7, 9, 15} {
		assert.Len(t, allocTyped[uint64](size), size)
		assert.Len(t, allocTyped[uint32](size), size)
		assert.Len(t, allocTyped[uint16](size), size)
	}
}

func BenchmarkNew(b *testing.B) {
	for _, align := range []uintptr{8, 64, 128} {
		b.Run(fmt.Sprintf("align=%d", align), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = New(align, 256)
			}
		})
	}
}

func BenchmarkPage(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf, _ := Page(4096)
		_ = buf.Close()
	}
}
