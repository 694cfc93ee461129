package storage

import (
	"unsafe"
)

// allocators is the closed dispatch set of supported alignments. Each
// entry produces a byte slice of exactly the requested length whose
// start address satisfies the alignment.
var allocators = map[uintptr]func(size int) []byte{
	1:   allocBytes,
	2:   allocTyped[uint16],
	4:   allocTyped[uint32],
	8:   allocTyped[uint64],
	16:  allocOffset(16),
	32:  allocOffset(32),
	64:  allocOffset(64),
	128: allocOffset(128),
}

func allocBytes(size int) []byte {
	return make([]byte, size)
}

// allocTyped backs the storage with an array of E. A slice always starts
// at an address aligned for its element type, so the element's natural
// alignment carries over to the first byte and no trimming is needed.
func allocTyped[E uint16 | uint32 | uint64](size int) []byte {
	elemSize := int(unsafe.Sizeof(E(0)))
	backing := make([]E, (size+elemSize-1)/elemSize)
	return unsafe.Slice((*byte)(unsafe.Pointer(&backing[0])), size)
}

// allocOffset over-allocates by align bytes and trims to the first
// aligned offset. The aligned sub-slice keeps the whole backing array
// alive.
func allocOffset(align uintptr) func(size int) []byte {
	return func(size int) []byte {
		buf := make([]byte, uintptr(size)+align)

		addr := uintptr(unsafe.Pointer(&buf[0]))
		offset := (align - addr&(align-1)) & (align - 1)

		return buf[offset : offset+uintptr(size)]
	}
}

// alignUp rounds n up to the next multiple of align. align must be a
// power of two.
func alignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}
