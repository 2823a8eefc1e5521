package fallback

import "github.com/coregx/spanscan/elem"

// IndexOf returns the index of the first element of s equal to value,
// or NotFound.
//
// When K is nullable and value is absent, IndexOf returns the first absent
// element instead.
func IndexOf[K elem.Equality[T], T any](s []T, value T) int {
	var k K
	if !k.Nullable() || !k.IsNull(value) {
		for i := range s {
			if k.Equal(value, s[i]) {
				return i
			}
		}
		return NotFound
	}

	for i := range s {
		if k.IsNull(s[i]) {
			return i
		}
	}
	return NotFound
}

// Contains reports whether any element of s equals value.
func Contains[K elem.Equality[T], T any](s []T, value T) bool {
	var k K
	if !k.Nullable() || !k.IsNull(value) {
		for i := range s {
			if k.Equal(value, s[i]) {
				return true
			}
		}
		return false
	}

	for i := range s {
		if k.IsNull(s[i]) {
			return true
		}
	}
	return false
}

// IndexOfAny2 returns the index of the first element of s equal to value0 or
// value1, or NotFound.
func IndexOfAny2[K elem.Equality[T], T any](s []T, value0, value1 T) int {
	var k K
	if !k.Nullable() || (!k.IsNull(value0) && !k.IsNull(value1)) {
		for i := range s {
			lookUp := s[i]
			if k.Equal(value0, lookUp) || k.Equal(value1, lookUp) {
				return i
			}
		}
		return NotFound
	}

	for i := range s {
		if matchAny2[K](s[i], value0, value1) {
			return i
		}
	}
	return NotFound
}

// IndexOfAny3 returns the index of the first element of s equal to value0,
// value1 or value2, or NotFound.
//
// Most searches hit frequently occurring elements, so the present-candidate
// path checks eight positions per iteration.
func IndexOfAny3[K elem.Equality[T], T any](s []T, value0, value1, value2 T) int {
	var k K
	if k.Nullable() && (k.IsNull(value0) || k.IsNull(value1) || k.IsNull(value2)) {
		for i := range s {
			if matchAny3[K](s[i], value0, value1, value2) {
				return i
			}
		}
		return NotFound
	}

	n := len(s)
	i := 0
	for ; n-i >= 8; i += 8 {
		b := s[i : i+8 : i+8]
		if equalAny3(k, b[0], value0, value1, value2) {
			return i
		}
		if equalAny3(k, b[1], value0, value1, value2) {
			return i + 1
		}
		if equalAny3(k, b[2], value0, value1, value2) {
			return i + 2
		}
		if equalAny3(k, b[3], value0, value1, value2) {
			return i + 3
		}
		if equalAny3(k, b[4], value0, value1, value2) {
			return i + 4
		}
		if equalAny3(k, b[5], value0, value1, value2) {
			return i + 5
		}
		if equalAny3(k, b[6], value0, value1, value2) {
			return i + 6
		}
		if equalAny3(k, b[7], value0, value1, value2) {
			return i + 7
		}
	}

	if n-i >= 4 {
		b := s[i : i+4 : i+4]
		if equalAny3(k, b[0], value0, value1, value2) {
			return i
		}
		if equalAny3(k, b[1], value0, value1, value2) {
			return i + 1
		}
		if equalAny3(k, b[2], value0, value1, value2) {
			return i + 2
		}
		if equalAny3(k, b[3], value0, value1, value2) {
			return i + 3
		}
		i += 4
	}

	for ; i < n; i++ {
		if equalAny3(k, s[i], value0, value1, value2) {
			return i
		}
	}
	return NotFound
}

// IndexOfSeq returns the index of the first occurrence of needle in s,
// or NotFound. An empty needle is found at index 0.
//
// The head of needle is located with IndexOf and the tail verified with Equal,
// which is O(len(s)*len(needle)) in the worst case.
func IndexOfSeq[K elem.Equality[T], T any](s, needle []T) int {
	if len(needle) == 0 {
		return 0
	}

	head := needle[0]
	tail := needle[1:]

	index := 0
	for {
		// The unsearched portion must still fit the whole needle.
		remaining := len(s) - index - len(tail)
		if remaining <= 0 {
			return NotFound
		}

		rel := IndexOf[K](s[index:index+remaining], head)
		if rel < 0 {
			return NotFound
		}
		index += rel

		if Equal[K](s[index+1:index+1+len(tail)], tail) {
			return index
		}
		index++
	}
}

// equalAny3 is the absence-free candidate test: every candidate is present.
func equalAny3[K elem.Equality[T], T any](k K, lookUp, value0, value1, value2 T) bool {
	return k.Equal(value0, lookUp) || k.Equal(value1, lookUp) || k.Equal(value2, lookUp)
}

// matchAny2 tests lookUp against two candidates that may be absent.
func matchAny2[K elem.Equality[T], T any](lookUp, value0, value1 T) bool {
	var k K
	if k.IsNull(lookUp) {
		return k.IsNull(value0) || k.IsNull(value1)
	}
	return k.Equal(lookUp, value0) || k.Equal(lookUp, value1)
}

// matchAny3 tests lookUp against three candidates that may be absent.
func matchAny3[K elem.Equality[T], T any](lookUp, value0, value1, value2 T) bool {
	var k K
	if k.IsNull(lookUp) {
		return k.IsNull(value0) || k.IsNull(value1) || k.IsNull(value2)
	}
	return k.Equal(lookUp, value0) || k.Equal(lookUp, value1) || k.Equal(lookUp, value2)
}
