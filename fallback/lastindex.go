package fallback

import "github.com/coregx/spanscan/elem"

// LastIndexOf returns the index of the last element of s equal to value,
// or NotFound.
//
// When K is nullable and value is absent, LastIndexOf returns the last absent
// element instead.
func LastIndexOf[K elem.Equality[T], T any](s []T, value T) int {
	var k K
	if k.Nullable() && k.IsNull(value) {
		for n := len(s) - 1; n >= 0; n-- {
			if k.IsNull(s[n]) {
				return n
			}
		}
		return NotFound
	}

	n := len(s)
	for n >= 8 {
		n -= 8
		b := s[n : n+8 : n+8]
		if k.Equal(value, b[7]) {
			return n + 7
		}
		if k.Equal(value, b[6]) {
			return n + 6
		}
		if k.Equal(value, b[5]) {
			return n + 5
		}
		if k.Equal(value, b[4]) {
			return n + 4
		}
		if k.Equal(value, b[3]) {
			return n + 3
		}
		if k.Equal(value, b[2]) {
			return n + 2
		}
		if k.Equal(value, b[1]) {
			return n + 1
		}
		if k.Equal(value, b[0]) {
			return n
		}
	}

	if n >= 4 {
		n -= 4
		b := s[n : n+4 : n+4]
		if k.Equal(value, b[3]) {
			return n + 3
		}
		if k.Equal(value, b[2]) {
			return n + 2
		}
		if k.Equal(value, b[1]) {
			return n + 1
		}
		if k.Equal(value, b[0]) {
			return n
		}
	}

	for n > 0 {
		n--
		if k.Equal(value, s[n]) {
			return n
		}
	}
	return NotFound
}

// LastIndexOfAny2 returns the index of the last element of s equal to value0
// or value1, or NotFound.
func LastIndexOfAny2[K elem.Equality[T], T any](s []T, value0, value1 T) int {
	var k K
	if k.Nullable() && (k.IsNull(value0) || k.IsNull(value1)) {
		for n := len(s) - 1; n >= 0; n-- {
			if matchAny2[K](s[n], value0, value1) {
				return n
			}
		}
		return NotFound
	}

	n := len(s)
	for n >= 8 {
		n -= 8
		b := s[n : n+8 : n+8]
		if equalAny2(k, b[7], value0, value1) {
			return n + 7
		}
		if equalAny2(k, b[6], value0, value1) {
			return n + 6
		}
		if equalAny2(k, b[5], value0, value1) {
			return n + 5
		}
		if equalAny2(k, b[4], value0, value1) {
			return n + 4
		}
		if equalAny2(k, b[3], value0, value1) {
			return n + 3
		}
		if equalAny2(k, b[2], value0, value1) {
			return n + 2
		}
		if equalAny2(k, b[1], value0, value1) {
			return n + 1
		}
		if equalAny2(k, b[0], value0, value1) {
			return n
		}
	}

	if n >= 4 {
		n -= 4
		b := s[n : n+4 : n+4]
		if equalAny2(k, b[3], value0, value1) {
			return n + 3
		}
		if equalAny2(k, b[2], value0, value1) {
			return n + 2
		}
		if equalAny2(k, b[1], value0, value1) {
			return n + 1
		}
		if equalAny2(k, b[0], value0, value1) {
			return n
		}
	}

	for n > 0 {
		n--
		if equalAny2(k, s[n], value0, value1) {
			return n
		}
	}
	return NotFound
}

// LastIndexOfAny3 returns the index of the last element of s equal to value0,
// value1 or value2, or NotFound.
func LastIndexOfAny3[K elem.Equality[T], T any](s []T, value0, value1, value2 T) int {
	var k K
	if k.Nullable() && (k.IsNull(value0) || k.IsNull(value1) || k.IsNull(value2)) {
		for n := len(s) - 1; n >= 0; n-- {
			if matchAny3[K](s[n], value0, value1, value2) {
				return n
			}
		}
		return NotFound
	}

	n := len(s)
	for n >= 8 {
		n -= 8
		b := s[n : n+8 : n+8]
		if equalAny3(k, b[7], value0, value1, value2) {
			return n + 7
		}
		if equalAny3(k, b[6], value0, value1, value2) {
			return n + 6
		}
		if equalAny3(k, b[5], value0, value1, value2) {
			return n + 5
		}
		if equalAny3(k, b[4], value0, value1, value2) {
			return n + 4
		}
		if equalAny3(k, b[3], value0, value1, value2) {
			return n + 3
		}
		if equalAny3(k, b[2], value0, value1, value2) {
			return n + 2
		}
		if equalAny3(k, b[1], value0, value1, value2) {
			return n + 1
		}
		if equalAny3(k, b[0], value0, value1, value2) {
			return n
		}
	}

	if n >= 4 {
		n -= 4
		b := s[n : n+4 : n+4]
		if equalAny3(k, b[3], value0, value1, value2) {
			return n + 3
		}
		if equalAny3(k, b[2], value0, value1, value2) {
			return n + 2
		}
		if equalAny3(k, b[1], value0, value1, value2) {
			return n + 1
		}
		if equalAny3(k, b[0], value0, value1, value2) {
			return n
		}
	}

	for n > 0 {
		n--
		if equalAny3(k, s[n], value0, value1, value2) {
			return n
		}
	}
	return NotFound
}

// LastIndexOfSeq returns the index of the last occurrence of needle in s,
// or NotFound. An empty needle is found at len(s).
func LastIndexOfSeq[K elem.Equality[T], T any](s, needle []T) int {
	if len(needle) == 0 {
		return len(s)
	}

	head := needle[0]
	tail := needle[1:]

	index := 0
	for {
		// Leading window in which a head match still leaves room for the tail.
		remaining := len(s) - index - len(tail)
		if remaining <= 0 {
			return NotFound
		}

		rel := LastIndexOf[K](s[:remaining], head)
		if rel < 0 {
			return NotFound
		}

		if Equal[K](s[rel+1:rel+1+len(tail)], tail) {
			return rel
		}

		// Shrink the window to end just before this head.
		index += remaining - rel
	}
}

func equalAny2[K elem.Equality[T], T any](k K, lookUp, value0, value1 T) bool {
	return k.Equal(value0, lookUp) || k.Equal(value1, lookUp)
}
