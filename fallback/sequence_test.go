package fallback

import (
	"fmt"
	"math"
	"testing"

	"github.com/coregx/spanscan/elem"
)

// TestEqual tests element-wise equality
func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want bool
	}{
		{"both_empty", nil, []int{}, true},
		{"different_lengths", []int{1, 2}, []int{1, 2, 3}, false},
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, true},
		{"first_differs", []int{0, 2, 3}, []int{1, 2, 3}, false},
		{"last_differs", []int{1, 2, 3}, []int{1, 2, 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal[ints](tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestEqualSizes flips one element at every position across batch boundaries
func TestEqualSizes(t *testing.T) {
	for size := 0; size <= 40; size++ {
		t.Run(fmt.Sprintf("size_%d", size), func(t *testing.T) {
			a := make([]int, size)
			b := make([]int, size)
			for i := range a {
				a[i] = i * 7
				b[i] = i * 7
			}
			if !Equal[ints](a, b) {
				t.Fatalf("equal copies reported unequal")
			}

			for pos := 0; pos < size; pos++ {
				b[pos]++
				if Equal[ints](a, b) {
					t.Errorf("mismatch at %d not detected", pos)
				}
				if Compare[ordInts](a, b) >= 0 {
					t.Errorf("Compare with larger element at %d not negative", pos)
				}
				b[pos]--
			}
		})
	}
}

// TestEqualIdentity checks the same-location short circuit
func TestEqualIdentity(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}

	equalCalls = 0
	if !Equal[countingInts](s, s) {
		t.Fatal("Equal(s, s) = false")
	}
	if equalCalls != 0 {
		t.Errorf("Equal(s, s) compared %d elements, want 0", equalCalls)
	}

	// Same start, different length is not identity.
	if Equal[countingInts](s, s[:5]) {
		t.Error("Equal(s, s[:5]) = true")
	}

	// Overlapping views that start elsewhere are compared element-wise.
	equalCalls = 0
	if Equal[countingInts](s[1:], s[:len(s)-1]) {
		t.Error("shifted views reported equal")
	}
	if equalCalls == 0 {
		t.Error("shifted views were not compared")
	}

	// Identity wins even when the elements are not equal to themselves.
	nan := []float64{1, math.NaN(), 3}
	if !Equal[elem.Values[float64]](nan, nan) {
		t.Error("Equal(nan, nan) = false for identical views")
	}
	if Equal[elem.Values[float64]](nan, append([]float64(nil), nan...)) {
		t.Error("Equal reported NaN equal across distinct views")
	}
}

// TestCompare tests lexicographic ordering
func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int // sign only
	}{
		{"both_empty", nil, nil, 0},
		{"empty_first", nil, []int{1}, -1},
		{"empty_second", []int{1}, nil, 1},
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, 0},
		{"prefix_shorter_first", []int{1, 2}, []int{1, 2, 3}, -1},
		{"element_decides", []int{1, 3}, []int{1, 2, 3}, 1},
		{"first_element_decides", []int{0, 9, 9}, []int{1}, -1},
		{"longer_second", []int{1, 2, 3, 4}, []int{1, 2, 3}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare[ordInts](tt.a, tt.b)
			if sign(got) != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want sign %d", tt.a, tt.b, got, tt.want)
			}
			if rev := Compare[ordInts](tt.b, tt.a); sign(rev) != -tt.want {
				t.Errorf("Compare(%v, %v) = %d, want sign %d", tt.b, tt.a, rev, -tt.want)
			}
		})
	}
}

// TestFill tests every length across batch boundaries
// TestOrderedFloatsAgree checks that Equal and Compare agree on float
// buffers holding NaN, and that the scans find NaN.
func TestOrderedFloatsAgree(t *testing.T) {
	type floats = elem.Ordered[float64]
	nan := math.NaN()

	tests := []struct {
		name string
		a, b []float64
	}{
		{"nan_same_position", []float64{1, nan}, []float64{1, nan}},
		{"nan_vs_number", []float64{1, nan}, []float64{1, 2}},
		{"number_vs_nan", []float64{1, 2}, []float64{1, nan}},
		{"all_nan", []float64{nan, nan, nan}, []float64{nan, nan, nan}},
		{"long_nan_tail", append(make([]float64, 20), nan), append(make([]float64, 20), nan)},
		{"plain", []float64{1, 2, 3}, []float64{1, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq := Equal[floats](tt.a, tt.b)
			c := Compare[floats](tt.a, tt.b)
			if eq != (c == 0) {
				t.Errorf("Equal = %v, Compare = %d", eq, c)
			}
		})
	}

	s := []float64{3, 1, nan, 4, nan}
	if got := IndexOf[floats](s, nan); got != 2 {
		t.Errorf("IndexOf(NaN) = %d, want 2", got)
	}
	if got := LastIndexOf[floats](s, nan); got != 4 {
		t.Errorf("LastIndexOf(NaN) = %d, want 4", got)
	}
	if got := IndexOfSeq[floats](s, []float64{nan, 4}); got != 2 {
		t.Errorf("IndexOfSeq(NaN, 4) = %d, want 2", got)
	}
}

func TestFill(t *testing.T) {
	for size := 0; size <= 40; size++ {
		backing := filled(size+2, -1)
		s := backing[1 : size+1]

		Fill(s, 42)

		if len(s) != size {
			t.Fatalf("size %d: length changed to %d", size, len(s))
		}
		for i, v := range s {
			if v != 42 {
				t.Errorf("size %d: s[%d] = %d, want 42", size, i, v)
			}
		}
		if backing[0] != -1 || backing[size+1] != -1 {
			t.Errorf("size %d: Fill wrote outside the view: %v", size, backing)
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
