package fallback

// Fill overwrites every element of s with value.
func Fill[T any](s []T, value T) {
	n := len(s)
	i := 0

	// Write 8 elements at a time
	if n >= 8 {
		stop := n &^ 7
		for ; i < stop; i += 8 {
			b := s[i : i+8 : i+8]
			b[0] = value
			b[1] = value
			b[2] = value
			b[3] = value
			b[4] = value
			b[5] = value
			b[6] = value
			b[7] = value
		}
	}

	if n&4 != 0 {
		b := s[i : i+4 : i+4]
		b[0] = value
		b[1] = value
		b[2] = value
		b[3] = value
		i += 4
	}

	if n&2 != 0 {
		b := s[i : i+2 : i+2]
		b[0] = value
		b[1] = value
		i += 2
	}

	if n&1 != 0 {
		s[i] = value
	}
}
