package elem

// Equaler is a pointer type *V whose pointee defines its own equality.
// The method is only ever called on a non-nil receiver with a non-nil argument.
type Equaler[V any] interface {
	*V
	Equal(other *V) bool
}

// Comparer is an Equaler that also defines a total order.
type Comparer[V any] interface {
	Equaler[V]
	Compare(other *V) int
}

// Pointers is the trait for reference kinds held as *V. A nil pointer is
// absent.
type Pointers[V any, P Equaler[V]] struct{}

// Nullable implements Equality.
func (Pointers[V, P]) Nullable() bool { return true }

// IsNull implements Equality.
func (Pointers[V, P]) IsNull(v P) bool { return v == nil }

// Equal implements Equality.
func (Pointers[V, P]) Equal(a, b P) bool {
	if b == nil {
		return false
	}
	return a.Equal(b)
}

// OrderedPointers is the trait for ordered reference kinds held as *V.
type OrderedPointers[V any, P Comparer[V]] struct{}

// Nullable implements Equality.
func (OrderedPointers[V, P]) Nullable() bool { return true }

// IsNull implements Equality.
func (OrderedPointers[V, P]) IsNull(v P) bool { return v == nil }

// Equal implements Equality.
func (OrderedPointers[V, P]) Equal(a, b P) bool {
	if b == nil {
		return false
	}
	return a.Equal(b)
}

// Compare implements Ordering.
func (OrderedPointers[V, P]) Compare(a, b P) int {
	if b == nil {
		return 1
	}
	return a.Compare(b)
}
