// Package conv provides checked integer conversions.
//
// Allocation sizes cross the uintptr/int boundary in several places; the
// helpers here make those conversions explicit and overflow-safe instead
// of relying on silent truncation.
package conv
