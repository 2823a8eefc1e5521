package fallback

import (
	"cmp"

	"github.com/coregx/spanscan/elem"
)

// Naive reference implementations. Every kernel must agree with these.

func refIndexOf[K elem.Equality[T], T any](s []T, value T) int {
	for i := range s {
		if elem.Presence[K](value, s[i]) {
			return i
		}
	}
	return -1
}

func refLastIndexOf[K elem.Equality[T], T any](s []T, value T) int {
	for i := len(s) - 1; i >= 0; i-- {
		if elem.Presence[K](value, s[i]) {
			return i
		}
	}
	return -1
}

func refIndexOfAny[K elem.Equality[T], T any](s, values []T) int {
	for i := range s {
		for _, v := range values {
			if elem.Presence[K](v, s[i]) {
				return i
			}
		}
	}
	return -1
}

func refLastIndexOfAny[K elem.Equality[T], T any](s, values []T) int {
	for i := len(s) - 1; i >= 0; i-- {
		for _, v := range values {
			if elem.Presence[K](v, s[i]) {
				return i
			}
		}
	}
	return -1
}

func refEqual[K elem.Equality[T], T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !elem.Presence[K](a[i], b[i]) {
			return false
		}
	}
	return true
}

func refIndexOfSeq[K elem.Equality[T], T any](s, needle []T) int {
	for i := 0; i+len(needle) <= len(s); i++ {
		if refEqual[K](s[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func refLastIndexOfSeq[K elem.Equality[T], T any](s, needle []T) int {
	for i := len(s) - len(needle); i >= 0; i-- {
		if refEqual[K](s[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func refCompare[K elem.Ordering[T], T any](a, b []T) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := elem.Order[K](a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// node is a reference kind: *node may be nil.
type node struct {
	v int
}

func (n *node) Equal(o *node) bool { return n.v == o.v }

func (n *node) Compare(o *node) int { return cmp.Compare(n.v, o.v) }

func newNode(v int) *node { return &node{v: v} }

type (
	ints     = elem.Values[int]
	ordInts  = elem.Ordered[int]
	nodes    = elem.Pointers[node, *node]
	ordNodes = elem.OrderedPointers[node, *node]
	optInts  = elem.OrderedOptions[int]
)

// nodesOf builds a []*node where the value -1 stands for nil.
func nodesOf(vs ...int) []*node {
	out := make([]*node, len(vs))
	for i, v := range vs {
		if v >= 0 {
			out[i] = newNode(v)
		}
	}
	return out
}

// optsOf builds a []elem.Option[int] where the value -1 stands for None.
func optsOf(vs ...int) []elem.Option[int] {
	out := make([]elem.Option[int], len(vs))
	for i, v := range vs {
		if v >= 0 {
			out[i] = elem.Some(v)
		}
	}
	return out
}

// countingInts is an int trait that counts Equal calls.
type countingInts struct{}

var equalCalls int

func (countingInts) Nullable() bool { return false }

func (countingInts) IsNull(int) bool { return false }

func (countingInts) Equal(a, b int) bool {
	equalCalls++
	return a == b
}

// filled returns n copies of v.
func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}
	return s
}
