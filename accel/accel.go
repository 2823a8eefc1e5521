// Package accel provides word-at-a-time byte kernels that the span dispatcher
// prefers over the element-wise fallback kernels on long inputs.
//
// The kernels read 8 bytes per step as a uint64 and locate matches with
// SWAR (SIMD Within A Register) arithmetic. Every kernel returns exactly the
// same result as its counterpart in package fallback instantiated for bytes.
//
// CPU features are detected once at package initialization; the dispatcher uses
// them to pick the length at which the word kernels pay off.
package accel

import (
	"math/bits"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes the vector capabilities of the running CPU.
type Features struct {
	Arch     string
	WordSize int
	AVX2     bool
	SSE42    bool
	ASIMD    bool
}

// Word64 reports whether the platform has 64-bit general purpose registers,
// which the SWAR kernels need to beat element-wise scanning.
func (f Features) Word64() bool {
	return f.WordSize == 64
}

// Vector reports whether any wide vector unit is present.
func (f Features) Vector() bool {
	return f.AVX2 || f.SSE42 || f.ASIMD
}

var detected = Features{
	Arch:     runtime.GOARCH,
	WordSize: bits.UintSize,
	AVX2:     cpu.X86.HasAVX2,
	SSE42:    cpu.X86.HasSSE42,
	ASIMD:    cpu.ARM64.HasASIMD,
}

// Detect returns the features of the running CPU.
func Detect() Features {
	return detected
}

const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
)

// zeroBytes marks the high bit of every zero byte of v. Bits above the lowest
// marked byte may be false positives caused by borrow propagation.
func zeroBytes(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

// broadcast replicates b into every byte of a uint64.
func broadcast(b byte) uint64 {
	return uint64(b) * lo8
}
