package accel

import (
	"encoding/binary"
	"math/bits"
)

// IndexByte returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// Algorithm:
//  1. Broadcast needle into every byte of a uint64 mask
//  2. XOR each 8-byte chunk with the mask (matching bytes become 0x00)
//  3. Detect zero bytes and take the lowest with TrailingZeros64
//
// Inputs shorter than 8 bytes are scanned byte by byte.
func IndexByte(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := broadcast(needle)
	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroBytes(chunk ^ mask); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}

	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// IndexByte2 returns the index of the first instance of needle1 or needle2 in
// haystack, or -1 if neither is present.
func IndexByte2(haystack []byte, needle1, needle2 byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if c := haystack[i]; c == needle1 || c == needle2 {
				return i
			}
		}
		return -1
	}

	mask1 := broadcast(needle1)
	mask2 := broadcast(needle2)
	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroBytes(chunk^mask1) | zeroBytes(chunk^mask2); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}

	for ; i < n; i++ {
		if c := haystack[i]; c == needle1 || c == needle2 {
			return i
		}
	}
	return -1
}

// IndexByte3 returns the index of the first instance of needle1, needle2 or
// needle3 in haystack, or -1 if none is present.
func IndexByte3(haystack []byte, needle1, needle2, needle3 byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if c := haystack[i]; c == needle1 || c == needle2 || c == needle3 {
				return i
			}
		}
		return -1
	}

	mask1 := broadcast(needle1)
	mask2 := broadcast(needle2)
	mask3 := broadcast(needle3)
	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		z := zeroBytes(chunk^mask1) | zeroBytes(chunk^mask2) | zeroBytes(chunk^mask3)
		if z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}

	for ; i < n; i++ {
		if c := haystack[i]; c == needle1 || c == needle2 || c == needle3 {
			return i
		}
	}
	return -1
}

// LastIndexByte returns the index of the last instance of needle in haystack,
// or -1 if needle is not present.
//
// Chunks are read from the end. Because zero-byte detection can report false
// positives above a real match, a flagged chunk is resolved byte by byte from
// its top.
func LastIndexByte(haystack []byte, needle byte) int {
	n := len(haystack)
	if n >= 8 {
		mask := broadcast(needle)
		for n >= 8 {
			chunk := binary.LittleEndian.Uint64(haystack[n-8:])
			if zeroBytes(chunk^mask) != 0 {
				for j := n - 1; j >= n-8; j-- {
					if haystack[j] == needle {
						return j
					}
				}
			}
			n -= 8
		}
	}

	for n > 0 {
		n--
		if haystack[n] == needle {
			return n
		}
	}
	return -1
}
