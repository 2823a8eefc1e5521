package fallback

import "github.com/coregx/spanscan/elem"

// IndexOfAny returns the first index in s holding any element of values,
// or NotFound. An empty values set is never found.
//
// Each candidate is searched with IndexOf over a window that ends just before
// the best match so far, so later candidates cannot scan past it.
func IndexOfAny[K elem.Equality[T], T any](s, values []T) int {
	if len(values) == 0 {
		return NotFound
	}

	index := NotFound
	for _, value := range values {
		pos := IndexOf[K](s, value)
		if uint(pos) < uint(index) {
			index = pos
			s = s[:pos]
			if index == 0 {
				break
			}
		}
	}
	return index
}

// LastIndexOfAny returns the last index in s holding any element of values,
// or NotFound. An empty values set is never found.
func LastIndexOfAny[K elem.Equality[T], T any](s, values []T) int {
	index := NotFound
	for _, value := range values {
		if pos := LastIndexOf[K](s, value); pos > index {
			index = pos
		}
	}
	return index
}
