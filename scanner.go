package spanscan

import (
	"sync/atomic"

	"github.com/coregx/spanscan/accel"
	"github.com/coregx/spanscan/elem"
	"github.com/coregx/spanscan/fallback"
)

type byteTraits = elem.Values[byte]

// Stats tracks ByteScanner dispatch decisions.
type Stats struct {
	// AccelSearches counts calls served by the word-at-a-time kernels
	AccelSearches uint64

	// FallbackSearches counts calls served by the element-wise kernels
	FallbackSearches uint64
}

// ByteScanner dispatches byte searches between the word-at-a-time kernels and
// the element-wise fallback kernels. Both produce identical results; the choice
// only affects speed.
//
// A ByteScanner is safe for concurrent use.
type ByteScanner struct {
	config Config
	words  bool
	stats  Stats
}

// NewByteScanner returns a ByteScanner for config.
func NewByteScanner(config Config) (*ByteScanner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &ByteScanner{
		config: config,
		words:  config.EnableAccel && accel.Detect().Word64(),
	}, nil
}

// Config returns the configuration the scanner was built with.
func (s *ByteScanner) Config() Config {
	return s.config
}

// Accelerated reports whether the word-at-a-time kernels are in use at all.
func (s *ByteScanner) Accelerated() bool {
	return s.words
}

// Stats returns a snapshot of the dispatch counters.
func (s *ByteScanner) Stats() Stats {
	return Stats{
		AccelSearches:    atomic.LoadUint64(&s.stats.AccelSearches),
		FallbackSearches: atomic.LoadUint64(&s.stats.FallbackSearches),
	}
}

// ResetStats resets the dispatch counters to zero.
func (s *ByteScanner) ResetStats() {
	atomic.StoreUint64(&s.stats.AccelSearches, 0)
	atomic.StoreUint64(&s.stats.FallbackSearches, 0)
}

// useAccel decides the path for a haystack of length n and records it.
func (s *ByteScanner) useAccel(n int) bool {
	if s.words && n >= s.config.MinAccelLen {
		atomic.AddUint64(&s.stats.AccelSearches, 1)
		return true
	}
	s.countFallback()
	return false
}

// countFallback records a call that has no word-at-a-time kernel.
func (s *ByteScanner) countFallback() {
	atomic.AddUint64(&s.stats.FallbackSearches, 1)
}

// Index returns the index of the first instance of b in haystack, or -1.
func (s *ByteScanner) Index(haystack []byte, b byte) int {
	if s.useAccel(len(haystack)) {
		return accel.IndexByte(haystack, b)
	}
	return fallback.IndexOf[byteTraits](haystack, b)
}

// LastIndex returns the index of the last instance of b in haystack, or -1.
func (s *ByteScanner) LastIndex(haystack []byte, b byte) int {
	if s.useAccel(len(haystack)) {
		return accel.LastIndexByte(haystack, b)
	}
	return fallback.LastIndexOf[byteTraits](haystack, b)
}

// IndexAny returns the first index of haystack holding any byte of set,
// or -1. An empty set is never found.
func (s *ByteScanner) IndexAny(haystack, set []byte) int {
	switch len(set) {
	case 0:
		return -1
	case 1:
		return s.Index(haystack, set[0])
	case 2:
		if s.useAccel(len(haystack)) {
			return accel.IndexByte2(haystack, set[0], set[1])
		}
		return fallback.IndexOfAny2[byteTraits](haystack, set[0], set[1])
	case 3:
		if s.useAccel(len(haystack)) {
			return accel.IndexByte3(haystack, set[0], set[1], set[2])
		}
		return fallback.IndexOfAny3[byteTraits](haystack, set[0], set[1], set[2])
	}

	if !s.useAccel(len(haystack)) {
		return fallback.IndexOfAny[byteTraits](haystack, set)
	}

	// Same window shrink as fallback.IndexOfAny, over the word kernel.
	index := -1
	for _, b := range set {
		pos := accel.IndexByte(haystack, b)
		if uint(pos) < uint(index) {
			index = pos
			haystack = haystack[:pos]
			if index == 0 {
				break
			}
		}
	}
	return index
}

// LastIndexAny returns the last index of haystack holding any byte of set,
// or -1. An empty set is never found.
func (s *ByteScanner) LastIndexAny(haystack, set []byte) int {
	switch len(set) {
	case 0:
		return -1
	case 1:
		return s.LastIndex(haystack, set[0])
	case 2:
		s.countFallback()
		return fallback.LastIndexOfAny2[byteTraits](haystack, set[0], set[1])
	case 3:
		s.countFallback()
		return fallback.LastIndexOfAny3[byteTraits](haystack, set[0], set[1], set[2])
	}

	if !s.useAccel(len(haystack)) {
		return fallback.LastIndexOfAny[byteTraits](haystack, set)
	}
	index := -1
	for _, b := range set {
		if pos := accel.LastIndexByte(haystack, b); pos > index {
			index = pos
		}
	}
	return index
}

// IndexSeq returns the index of the first occurrence of needle in haystack,
// or -1. An empty needle is found at 0.
func (s *ByteScanner) IndexSeq(haystack, needle []byte) int {
	if s.useAccel(len(haystack)) {
		return accel.Index(haystack, needle)
	}
	return fallback.IndexOfSeq[byteTraits](haystack, needle)
}

// LastIndexSeq returns the index of the last occurrence of needle in haystack,
// or -1. An empty needle is found at len(haystack).
func (s *ByteScanner) LastIndexSeq(haystack, needle []byte) int {
	s.countFallback()
	return fallback.LastIndexOfSeq[byteTraits](haystack, needle)
}

// Equal reports whether a and b hold the same bytes.
func (s *ByteScanner) Equal(a, b []byte) bool {
	if s.useAccel(len(a)) {
		return accel.Equal(a, b)
	}
	return fallback.Equal[byteTraits](a, b)
}

// Compare compares a and b lexicographically.
func (s *ByteScanner) Compare(a, b []byte) int {
	s.countFallback()
	return fallback.Compare[elem.Ordered[byte]](a, b)
}

// Fill overwrites every byte of buf with b.
func (s *ByteScanner) Fill(buf []byte, b byte) {
	s.countFallback()
	fallback.Fill(buf, b)
}
