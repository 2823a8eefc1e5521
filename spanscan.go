// Package spanscan provides scan, compare and fill kernels over contiguous
// element buffers.
//
// spanscan is the public face of three layers:
//   - fallback: generic element-wise kernels (the reference semantics)
//   - accel: word-at-a-time byte kernels for long inputs
//   - ByteScanner: a dispatcher that picks between them for []byte
//
// The generic functions in this package cover value kinds (comparable or
// ordered element types). Reference kinds, where an element may be absent,
// are served by package fallback with a nullable trait from package elem.
//
// Basic usage:
//
//	s := []int{3, 1, 4, 1, 5, 9, 2, 6}
//	spanscan.IndexSeq(s, []int{1, 5})     // 3
//	spanscan.IndexAny(s, []int{1, 9})     // 1
//	spanscan.LastIndexAny(s, []int{1, 9}) // 5
//
// Byte buffers:
//
//	scanner, err := spanscan.NewByteScanner(spanscan.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pos := scanner.IndexSeq([]byte("hello world"), []byte("world")) // 6
//
// Every function returns -1 (NotFound) when nothing matches; "not found" is
// never an error.
package spanscan

import (
	"cmp"

	"github.com/coregx/spanscan/elem"
	"github.com/coregx/spanscan/fallback"
)

// NotFound is the position reported when no element matches.
const NotFound = fallback.NotFound

// Fill overwrites every element of s with value.
func Fill[T any](s []T, value T) {
	fallback.Fill(s, value)
}

// Index returns the index of the first element of s equal to value,
// or NotFound.
func Index[T comparable](s []T, value T) int {
	return fallback.IndexOf[elem.Values[T]](s, value)
}

// Contains reports whether value is present in s.
func Contains[T comparable](s []T, value T) bool {
	return fallback.Contains[elem.Values[T]](s, value)
}

// IndexAny returns the first index of s holding any element of values,
// or NotFound. An empty values set is never found.
//
// Sets of one to three values use the dedicated multi-candidate kernels.
func IndexAny[T comparable](s, values []T) int {
	switch len(values) {
	case 1:
		return fallback.IndexOf[elem.Values[T]](s, values[0])
	case 2:
		return fallback.IndexOfAny2[elem.Values[T]](s, values[0], values[1])
	case 3:
		return fallback.IndexOfAny3[elem.Values[T]](s, values[0], values[1], values[2])
	default:
		return fallback.IndexOfAny[elem.Values[T]](s, values)
	}
}

// IndexSeq returns the index of the first occurrence of needle in s,
// or NotFound. An empty needle is found at 0.
func IndexSeq[T comparable](s, needle []T) int {
	return fallback.IndexOfSeq[elem.Values[T]](s, needle)
}

// LastIndex returns the index of the last element of s equal to value,
// or NotFound.
func LastIndex[T comparable](s []T, value T) int {
	return fallback.LastIndexOf[elem.Values[T]](s, value)
}

// LastIndexAny returns the last index of s holding any element of values,
// or NotFound. An empty values set is never found.
func LastIndexAny[T comparable](s, values []T) int {
	switch len(values) {
	case 1:
		return fallback.LastIndexOf[elem.Values[T]](s, values[0])
	case 2:
		return fallback.LastIndexOfAny2[elem.Values[T]](s, values[0], values[1])
	case 3:
		return fallback.LastIndexOfAny3[elem.Values[T]](s, values[0], values[1], values[2])
	default:
		return fallback.LastIndexOfAny[elem.Values[T]](s, values)
	}
}

// LastIndexSeq returns the index of the last occurrence of needle in s,
// or NotFound. An empty needle is found at len(s).
func LastIndexSeq[T comparable](s, needle []T) int {
	return fallback.LastIndexOfSeq[elem.Values[T]](s, needle)
}

// Equal reports whether a and b have the same length and elements.
func Equal[T comparable](a, b []T) bool {
	return fallback.Equal[elem.Values[T]](a, b)
}

// Compare compares a and b lexicographically, breaking a tie on the common
// prefix by length. The result is negative, zero or positive.
func Compare[T cmp.Ordered](a, b []T) int {
	return fallback.Compare[elem.Ordered[T]](a, b)
}
