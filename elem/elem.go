// Package elem describes how the scan and compare kernels test elements.
//
// Every kernel in package fallback is parameterized by a trait type K that
// implements Equality[T] (or Ordering[T] for lexicographic comparison). The
// trait is selected at compile time and carries no state; kernels use its zero
// value.
//
// Two element kinds are distinguished:
//   - Value kinds can never be absent. Their traits report Nullable() == false
//     and kernels skip every absence check.
//   - Reference kinds may hold "no value" (a nil pointer, or an empty Option).
//     Two absent values are equal; an absent value never equals a present one
//     and sorts before it.
//
// Example:
//
//	s := []int{3, 1, 4, 1, 5}
//	pos := fallback.IndexOf[elem.Values[int]](s, 4) // pos == 2
package elem

import "cmp"

// Equality is the capability set required by the search and equality kernels.
type Equality[T any] interface {
	// Nullable reports whether values of T can be absent.
	// The result must not depend on the receiver.
	Nullable() bool

	// IsNull reports whether v is absent. Never called when Nullable is false.
	IsNull(v T) bool

	// Equal reports whether a equals b.
	// a is always present; b may be absent, in which case Equal returns false.
	Equal(a, b T) bool
}

// Ordering adds a total order to Equality.
type Ordering[T any] interface {
	Equality[T]

	// Compare returns a negative number when a < b, zero when a == b and a
	// positive number when a > b.
	// a is always present; b may be absent, in which case Compare is positive.
	Compare(a, b T) int
}

// Values is the trait for comparable value kinds.
type Values[T comparable] struct{}

// Nullable implements Equality.
func (Values[T]) Nullable() bool { return false }

// IsNull implements Equality.
func (Values[T]) IsNull(T) bool { return false }

// Equal implements Equality.
func (Values[T]) Equal(a, b T) bool { return a == b }

// Ordered is the trait for ordered value kinds.
//
// Equal agrees with Compare: for floating-point T a NaN equals another NaN,
// as cmp.Compare orders them equal.
type Ordered[T cmp.Ordered] struct{}

// Nullable implements Equality.
func (Ordered[T]) Nullable() bool { return false }

// IsNull implements Equality.
func (Ordered[T]) IsNull(T) bool { return false }

// Equal implements Equality.
func (Ordered[T]) Equal(a, b T) bool { return a == b || (a != a && b != b) }

// Compare implements Ordering.
func (Ordered[T]) Compare(a, b T) int { return cmp.Compare(a, b) }

// Presence applies presence-aware equality to a and b: two absent values are
// equal, an absent value never equals a present one.
func Presence[K Equality[T], T any](a, b T) bool {
	var k K
	if k.Nullable() && k.IsNull(a) {
		return k.IsNull(b)
	}
	return k.Equal(a, b)
}

// Order applies presence-aware ordering to a and b: absent values sort before
// present ones and two absent values compare equal.
func Order[K Ordering[T], T any](a, b T) int {
	var k K
	if k.Nullable() && k.IsNull(a) {
		if k.IsNull(b) {
			return 0
		}
		return -1
	}
	return k.Compare(a, b)
}
