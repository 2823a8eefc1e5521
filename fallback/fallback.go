// Package fallback implements the non-vectorized element-wise kernels behind
// span search and comparison: fill, forward and backward scans for one, two,
// three or an arbitrary set of candidate elements, subsequence search, equality
// and lexicographic ordering.
//
// The kernels are used whenever a vectorized path is unavailable or the input
// is too short to amortize vector setup. Every kernel returns exactly what a
// naive nested loop would return; the batch unrolling only removes loop-branch
// overhead.
//
// Element semantics come from a trait type parameter (see package elem), which
// is listed first so the element type can be inferred:
//
//	s := []string{"a", "b", "c"}
//	pos := fallback.LastIndexOf[elem.Values[string]](s, "b") // pos == 1
//
// For nullable traits, absent elements take a distinct code path: an absent
// needle matches only absent elements, and value kinds never pay for the
// absence checks.
//
// No kernel allocates, retains state or blocks. Kernels may run concurrently on
// disjoint memory; callers synchronize Fill against overlapping readers.
package fallback

import "unsafe"

// NotFound is the position reported when no element matches.
const NotFound = -1

// sameLocation reports whether a and b start at the same storage cell.
func sameLocation[T any](a, b []T) bool {
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}
