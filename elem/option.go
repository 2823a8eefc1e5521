package elem

import (
	"cmp"
	"fmt"
)

// Option gives a value type an explicit "no value" state.
// The zero Option is absent.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Options is the trait for Option-wrapped comparable values.
type Options[T comparable] struct{}

// Nullable implements Equality.
func (Options[T]) Nullable() bool { return true }

// IsNull implements Equality.
func (Options[T]) IsNull(v Option[T]) bool { return !v.ok }

// Equal implements Equality.
func (Options[T]) Equal(a, b Option[T]) bool { return b.ok && a.value == b.value }

// OrderedOptions is the trait for Option-wrapped ordered values.
type OrderedOptions[T cmp.Ordered] struct{}

// Nullable implements Equality.
func (OrderedOptions[T]) Nullable() bool { return true }

// IsNull implements Equality.
func (OrderedOptions[T]) IsNull(v Option[T]) bool { return !v.ok }

// Equal implements Equality.
func (OrderedOptions[T]) Equal(a, b Option[T]) bool { return b.ok && a.value == b.value }

// Compare implements Ordering.
func (OrderedOptions[T]) Compare(a, b Option[T]) int {
	if !b.ok {
		return 1
	}
	return cmp.Compare(a.value, b.value)
}
