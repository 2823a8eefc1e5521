package spanscan

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/spanscan/accel"
)

// SeqSet searches a byte haystack for the leftmost occurrence of any of several
// subsequences at once. It is the multi-subsequence counterpart of IndexAny,
// built on an Aho-Corasick automaton so the haystack is scanned once regardless
// of the number of patterns.
//
// Matches are leftmost by start position. When several patterns start at the
// same position, the one added first wins.
//
// A SeqSet is immutable and safe for concurrent use.
//
// Example:
//
//	set, err := spanscan.NewSeqSet([][]byte{[]byte("GET"), []byte("POST")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pos := set.Index([]byte("x POST /")) // 2
type SeqSet struct {
	patterns [][]byte
	maxLen   int
	hasEmpty bool
	auto     *ahocorasick.Automaton
}

// NewSeqSet builds a SeqSet for patterns. The patterns are copied.
//
// An empty pattern list yields a set that never matches. A set containing an
// empty pattern matches at the start of every haystack.
func NewSeqSet(patterns [][]byte) (*SeqSet, error) {
	set := &SeqSet{patterns: make([][]byte, len(patterns))}
	for i, p := range patterns {
		set.patterns[i] = append([]byte(nil), p...)
		set.maxLen = max(set.maxLen, len(p))
		if len(p) == 0 {
			set.hasEmpty = true
		}
	}
	if len(patterns) == 0 || set.hasEmpty {
		return set, nil
	}

	builder := ahocorasick.NewBuilder()
	for _, p := range set.patterns {
		builder.AddPattern(p)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, &SetError{Patterns: len(patterns), Err: err}
	}
	set.auto = auto
	return set, nil
}

// Len returns the number of patterns in the set.
func (s *SeqSet) Len() int {
	return len(s.patterns)
}

// Find returns the bounds of the leftmost match in haystack, or (-1, -1).
func (s *SeqSet) Find(haystack []byte) (start, end int) {
	return s.FindAt(haystack, 0)
}

// FindAt is like Find but starts searching at haystack[at:]. Positions are
// relative to the start of haystack.
func (s *SeqSet) FindAt(haystack []byte, at int) (start, end int) {
	switch {
	case at < 0 || at > len(haystack):
		return NotFound, NotFound
	case s.hasEmpty:
		return at, at
	case s.auto == nil || at == len(haystack):
		return NotFound, NotFound
	}

	m := s.auto.Find(haystack, at)
	if m == nil {
		return NotFound, NotFound
	}

	// The automaton reports the match that ends first. A match starting
	// earlier ends no sooner, so it starts at or after m.End-maxLen.
	for pos := max(at, m.End-s.maxLen); pos <= m.Start; pos++ {
		if end := s.matchAt(haystack, pos); end != NotFound {
			return pos, end
		}
	}
	return m.Start, m.End
}

// matchAt returns the end of the first pattern, in insertion order, that
// occurs at haystack[pos:], or -1.
func (s *SeqSet) matchAt(haystack []byte, pos int) int {
	rest := haystack[pos:]
	for _, p := range s.patterns {
		if len(p) <= len(rest) && accel.Equal(rest[:len(p)], p) {
			return pos + len(p)
		}
	}
	return NotFound
}

// Index returns the start of the leftmost match in haystack, or -1.
func (s *SeqSet) Index(haystack []byte) int {
	start, _ := s.Find(haystack)
	return start
}

// Contains reports whether any pattern occurs in haystack.
func (s *SeqSet) Contains(haystack []byte) bool {
	if s.hasEmpty {
		return true
	}
	if s.auto == nil {
		return false
	}
	return s.auto.IsMatch(haystack)
}
