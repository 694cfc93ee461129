package testutil

// CanaryByte is the default guard pattern. It is neither zero nor 0xFF,
// so both "cleared" and "saturated" overwrites are caught.
const CanaryByte = 0xA5

// FillPattern writes the guard pattern over b.
func FillPattern(b []byte, pattern byte) {
	for i := range b {
		b[i] = pattern
	}
}

// FirstMismatch returns the index of the first byte of b that no longer
// carries the guard pattern, or -1 if the region is intact.
func FirstMismatch(b []byte, pattern byte) int {
	for i, v := range b {
		if v != pattern {
			return i
		}
	}
	return -1
}
