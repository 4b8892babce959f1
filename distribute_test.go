package panes

import (
	"fmt"
	"slices"
	"testing"
)

func TestDistribute(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		weights []float64
		divider bool
		want    []int
	}{
		{"deficit on last", 10, []float64{1, 1, 1}, false, []int{3, 3, 4}},
		{"even split", 10, []float64{1, 1}, false, []int{5, 5}},
		{"divider", 18, []float64{1, 1}, true, []int{8, 9}},
		{"fixed and share", 10, []float64{3, 1}, false, []int{3, 7}},
		{"fixed share divider", 10, []float64{3, 0.5, 0.5}, true, []int{3, 2, 3}},
		{"fixed truncates", 10, []float64{2.9, 1}, false, []int{2, 8}},
		{"uneven shares", 12, []float64{0.25, 0.75}, false, []int{3, 9}},
		{"overflow clamps shares", 8, []float64{5, 5, 1}, false, []int{5, 5, 0}},
		{"single item", 7, []float64{0.3}, false, []int{7}},
		{"empty", 10, nil, false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distribute(tt.length, tt.weights, tt.divider)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Distribute(%d, %v, %v) = %v, want %v", tt.length, tt.weights, tt.divider, got, tt.want)
			}
		})
	}
}

func TestDistributeSumsToLength(t *testing.T) {
	weightSets := [][]float64{
		{1},
		{1, 1, 1},
		{0.1, 0.2, 0.7},
		{0.33, 0.33, 0.33},
		{2, 0.5, 3, 0.5},
		{1.1, 1, 1.1},
		{0.9, 0.05, 0.05, 4},
	}
	for _, weights := range weightSets {
		for _, divider := range []bool{false, true} {
			for length := 0; length <= 40; length++ {
				dividers := 0
				if divider {
					dividers = len(weights) - 1
				}
				fixed := 0
				for _, w := range weights {
					if w > 1 {
						fixed += int(w)
					}
				}
				if fixed+dividers > length {
					continue
				}

				name := fmt.Sprintf("%v/%v/%d", weights, divider, length)
				got := Distribute(length, weights, divider)
				sum := 0
				for _, n := range got {
					if n < 0 {
						t.Errorf("%s: negative length in %v", name, got)
					}
					sum += n
				}
				if sum != length-dividers {
					t.Errorf("%s: lengths %v sum to %d, want %d", name, got, sum, length-dividers)
				}
			}
		}
	}
}

func TestDistributeRejectsBadWeights(t *testing.T) {
	for _, w := range []float64{0, -1} {
		t.Run(fmt.Sprint(w), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("weight %v did not panic", w)
				}
			}()
			Distribute(10, []float64{1, w}, false)
		})
	}
}
