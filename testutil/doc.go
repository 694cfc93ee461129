// Package testutil provides testing utilities for memlayout.
//
// This package is intended for use in tests and benchmarks only.
// It provides guard-byte helpers for detecting out-of-bounds writes
// around storage regions:
//
//	testutil.FillPattern(tail, 0xA5)
//	// ... exercise the storage ...
//	if i := testutil.FirstMismatch(tail, 0xA5); i >= 0 {
//	    t.Fatalf("guard byte %d overwritten", i)
//	}
package testutil
