package enrichment

import (
	"math"
	"testing"
)

type walkExpectation struct {
	Hits    []int
	Weights []float64
	N       int

	ES      float64
	Extreme int
}

func TestRunningSum(t *testing.T) {
	for _, v := range []walkExpectation{
		// Top three of ten
		{[]int{0, 1, 2}, nil, 10, 1, 2},
		// Bottom three of ten
		{[]int{7, 8, 9}, nil, 10, -1, 0},
		// Peak after the first hit outweighs the trough before the second
		{[]int{0, 3}, nil, 5, 0.5, 0},
		// Trough before the only hit
		{[]int{3}, nil, 4, -1, 0},
		// Hits weighted 4:2 against a 4-gene list with scores 4,3,2,1
		{[]int{0, 2}, []float64{4, 2}, 4, 2.0 / 3.0, 0},
		// The first of two equal peaks sets the extreme
		{[]int{0, 2}, nil, 4, 0.5, 0},
		// Peak and trough of equal magnitude: the peak wins
		{[]int{0, 3}, nil, 4, 0.5, 0},
		// Equal magnitudes of 31/143 that differ in the last bit when summed
		{[]int{0, 1, 3, 4, 7, 11, 12, 14, 15, 19, 20, 22, 23}, nil, 24, 31.0 / 143.0, 3},
		// No misses
		{[]int{0, 1, 2}, nil, 3, 0, -1},
	} {
		w := runningSum(v.Hits, v.Weights, v.N)
		if math.Abs(w.ES-v.ES) > 1e-12 || w.Extreme != v.Extreme {
			t.Fatalf("\nError with input: %+v\nES: %.12f (extreme %d)\nExpected: %.12f (extreme %d)\n", v, w.ES, w.Extreme, v.ES, v.Extreme)
		}
	}
}

func TestHitWeights(t *testing.T) {
	scores := []float64{4, 3, -2, 0}

	if w := hitWeights([]int{0, 2}, scores, 0); w != nil {
		t.Fatalf("weight 0 should be unweighted, got %v", w)
	}

	w := hitWeights([]int{0, 2}, scores, 1)
	if len(w) != 2 || w[0] != 4 || w[1] != 2 {
		t.Fatalf("got %v", w)
	}

	w = hitWeights([]int{0, 2}, scores, 2)
	if w[0] != 16 || w[1] != 4 {
		t.Fatalf("got %v", w)
	}

	if w := hitWeights([]int{3}, scores, 1); w != nil {
		t.Fatalf("all-zero scores should fall back to unweighted, got %v", w)
	}
}
