package fallback

import (
	"cmp"

	"github.com/coregx/spanscan/elem"
)

// Equal reports whether a and b have the same length and every pair of
// corresponding elements is equal. Absent elements equal only absent elements.
//
// Views that start at the same storage cell are equal without comparing
// elements.
func Equal[K elem.Equality[T], T any](a, b []T) bool {
	n := len(a)
	if n != len(b) {
		return false
	}
	if sameLocation(a, b) {
		return true
	}

	i := 0
	for ; n-i >= 8; i += 8 {
		x := a[i : i+8 : i+8]
		y := b[i : i+8 : i+8]
		if !elem.Presence[K](x[0], y[0]) ||
			!elem.Presence[K](x[1], y[1]) ||
			!elem.Presence[K](x[2], y[2]) ||
			!elem.Presence[K](x[3], y[3]) ||
			!elem.Presence[K](x[4], y[4]) ||
			!elem.Presence[K](x[5], y[5]) ||
			!elem.Presence[K](x[6], y[6]) ||
			!elem.Presence[K](x[7], y[7]) {
			return false
		}
	}

	if n-i >= 4 {
		x := a[i : i+4 : i+4]
		y := b[i : i+4 : i+4]
		if !elem.Presence[K](x[0], y[0]) ||
			!elem.Presence[K](x[1], y[1]) ||
			!elem.Presence[K](x[2], y[2]) ||
			!elem.Presence[K](x[3], y[3]) {
			return false
		}
		i += 4
	}

	for ; i < n; i++ {
		if !elem.Presence[K](a[i], b[i]) {
			return false
		}
	}
	return true
}

// Compare compares a and b lexicographically. The result is negative when
// a < b, zero when a == b and positive when a > b.
//
// Absent elements sort before present ones. When the common prefix is equal
// the shorter view sorts first.
func Compare[K elem.Ordering[T], T any](a, b []T) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := elem.Order[K](a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}
