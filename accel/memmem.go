package accel

import "encoding/binary"

// Index returns the index of the first instance of needle in haystack,
// or -1 if needle is not present. An empty needle matches at 0.
//
// Candidates are found with IndexByte on the rarest byte of needle, ranked by
// how common each byte is in text and source code, and each candidate is
// verified with Equal.
//
// Example:
//
//	pos := accel.Index([]byte("aaaaaabaaaa"), []byte("aab"))
//	// pos == 4
func Index(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	if needleLen == 0 {
		return 0
	}
	if needleLen > haystackLen {
		return -1
	}
	if needleLen == 1 {
		return IndexByte(haystack, needle[0])
	}

	rareIdx := rareIndex(needle)
	rareByte := needle[rareIdx]

	// The rare byte cannot occur before rareIdx or after
	// haystackLen-needleLen+rareIdx in a full match.
	searchStart := rareIdx
	searchEnd := haystackLen - needleLen + rareIdx + 1
	for searchStart < searchEnd {
		candidate := IndexByte(haystack[searchStart:searchEnd], rareByte)
		if candidate < 0 {
			return -1
		}
		candidate += searchStart

		start := candidate - rareIdx
		if Equal(haystack[start:start+needleLen], needle) {
			return start
		}
		searchStart = candidate + 1
	}
	return -1
}

// Equal reports whether a and b hold the same bytes, comparing 8 bytes per
// step.
func Equal(a, b []byte) bool {
	n := len(a)
	if n != len(b) {
		return false
	}

	i := 0
	for ; i+8 <= n; i += 8 {
		if binary.LittleEndian.Uint64(a[i:]) != binary.LittleEndian.Uint64(b[i:]) {
			return false
		}
	}
	for ; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
