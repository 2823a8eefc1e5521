package fallback

import (
	"fmt"
	"testing"
)

// TestIndexOfAnySet tests arbitrary-size needle sets in both directions
func TestIndexOfAnySet(t *testing.T) {
	scenario := []int{3, 1, 4, 1, 5, 9, 2, 6}

	tests := []struct {
		name     string
		s        []int
		values   []int
		want     int
		wantLast int
	}{
		{"empty_set", scenario, nil, -1, -1},
		{"empty_set_empty_buffer", nil, nil, -1, -1},
		{"empty_buffer", nil, []int{1}, -1, -1},
		{"scenario", scenario, []int{1, 9}, 1, 5},
		{"single", scenario, []int{4}, 2, 2},
		{"later_value_earlier_match", scenario, []int{6, 2, 9, 3}, 0, 7},
		{"none", scenario, []int{0, 7, 8, 10}, -1, -1},
		{"duplicates_in_set", scenario, []int{9, 9, 9, 9, 9}, 5, 5},
		{"many", scenario, []int{8, 7, 6, 5, 4}, 2, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexOfAny[ints](tt.s, tt.values); got != tt.want {
				t.Errorf("IndexOfAny(%v, %v) = %d, want %d", tt.s, tt.values, got, tt.want)
			}
			if got := LastIndexOfAny[ints](tt.s, tt.values); got != tt.wantLast {
				t.Errorf("LastIndexOfAny(%v, %v) = %d, want %d", tt.s, tt.values, got, tt.wantLast)
			}
		})
	}
}

// TestIndexOfAnyAgreesWithUnion checks that set search equals the best of the
// single-element results.
func TestIndexOfAnyAgreesWithUnion(t *testing.T) {
	s := []int{5, 3, 8, 3, 1, 9, 0, 2, 7, 7, 4, 6, 1, 8, 5, 3, 2}
	sets := [][]int{
		{1}, {1, 2}, {2, 1, 0}, {6, 4, 7, 11}, {11, 12, 13, 14, 5},
		{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	}

	for _, values := range sets {
		t.Run(fmt.Sprint(values), func(t *testing.T) {
			first, last := -1, -1
			for _, v := range values {
				if p := IndexOf[ints](s, v); p >= 0 && (first < 0 || p < first) {
					first = p
				}
				if p := LastIndexOf[ints](s, v); p > last {
					last = p
				}
			}

			if got := IndexOfAny[ints](s, values); got != first {
				t.Errorf("IndexOfAny = %d, union of IndexOf = %d", got, first)
			}
			if got := LastIndexOfAny[ints](s, values); got != last {
				t.Errorf("LastIndexOfAny = %d, union of LastIndexOf = %d", got, last)
			}
			if got := refIndexOfAny[ints](s, values); got != first {
				t.Errorf("reference = %d, union of IndexOf = %d", got, first)
			}
		})
	}
}

// TestIndexOfAnyStopsAtZero checks that a match at offset 0 ends the search.
func TestIndexOfAnyStopsAtZero(t *testing.T) {
	s := filled(64, 0)
	s[63] = 1

	equalCalls = 0
	got := IndexOfAny[countingInts](s, []int{0, 1, 1, 1})
	if got != 0 {
		t.Fatalf("IndexOfAny = %d, want 0", got)
	}
	if equalCalls != 1 {
		t.Errorf("IndexOfAny made %d comparisons, want 1", equalCalls)
	}
}

// TestIndexOfAnyShrinksWindow checks that later candidates only scan the
// prefix before the best match so far.
func TestIndexOfAnyShrinksWindow(t *testing.T) {
	s := filled(64, 0)
	s[10] = 1

	equalCalls = 0
	got := IndexOfAny[countingInts](s, []int{1, 2})
	if got != 10 {
		t.Fatalf("IndexOfAny = %d, want 10", got)
	}
	// 11 comparisons to find 1, then 10 for 2 in the shrunk window.
	if equalCalls != 21 {
		t.Errorf("IndexOfAny made %d comparisons, want 21", equalCalls)
	}
}
