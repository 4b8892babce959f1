package panes

import (
	"fmt"
	"math"
)

// Distribute splits length cells among items with the given weights.
//
// A weight above 1.0 is a fixed length of int(weight) cells. A weight of
// 1.0 or less is a share of what remains once fixed items and divider cells
// (one between each pair of items, when divider is set) are taken out:
// floor(weight/sum*remaining). Whatever flooring leaves over is added to
// the last item, so the lengths always cover length minus the dividers.
//
// When fixed items and dividers exceed length, proportional items get 0.
// Weights must be positive; anything else panics.
func Distribute(length int, weights []float64, divider bool) []int {
	if len(weights) == 0 {
		return nil
	}

	dividers := 0
	if divider {
		dividers = len(weights) - 1
	}

	fixed := 0
	var shares float64
	for i, w := range weights {
		switch {
		case w <= 0 || math.IsNaN(w):
			panic(fmt.Sprintf("panes: weight %d is %v, must be positive", i, w))
		case w > 1.0:
			fixed += int(w)
		default:
			shares += w
		}
	}

	available := length - dividers - fixed
	if available < 0 {
		available = 0
	}

	lengths := make([]int, len(weights))
	used := 0
	for i, w := range weights {
		if w > 1.0 {
			lengths[i] = int(w)
			continue
		}
		lengths[i] = int(math.Floor(w / shares * float64(available)))
		used += lengths[i]
	}

	if used < available {
		lengths[len(lengths)-1] += available - used
	}
	return lengths
}
