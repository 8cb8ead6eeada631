package enrichment

import "math"

// walk holds the extremes of one running-sum pass.
type walk struct {
	ES float64

	// Index into the hit slice of the hit that sets the extreme. For a
	// positive ES the peak is just after this hit; for a negative ES the trough
	// is just before it. -1 when ES is 0.
	Extreme int
}

// runningSum computes the enrichment score for a gene set whose members sit at
// the ascending 0-based ranks in hits, out of n genes. weights, if non-nil,
// holds one non-negative weight per hit and must sum to a positive value;
// otherwise each hit counts 1/len(hits). Every miss counts 1/(n-len(hits)).
//
// Only the ranks of the hits are visited: the running sum peaks right after a
// hit and bottoms out right before one, so those are the only candidates.
func runningSum(hits []int, weights []float64, n int) walk {
	k := len(hits)
	if k == 0 || k >= n {
		return walk{Extreme: -1}
	}

	missWeight := 1.0 / float64(n-k)

	var hitTotal float64
	if weights != nil {
		for _, w := range weights {
			hitTotal += w
		}
	}

	max, min := 0.0, 0.0
	maxAt, minAt := -1, -1
	cum := 0.0
	for i, rank := range hits {
		misses := float64(rank - i)

		before := cum - misses*missWeight
		if before < min {
			min, minAt = before, i
		}

		if weights != nil {
			cum += weights[i] / hitTotal
		} else {
			cum = float64(i+1) / float64(k)
		}

		after := cum - misses*missWeight
		if after > max {
			max, maxAt = after, i
		}
	}

	// Peak and trough come from different sums; equal magnitudes can differ
	// by rounding.
	if max >= math.Abs(min)-magnitudeTolerance {
		return walk{ES: max, Extreme: maxAt}
	}

	return walk{ES: min, Extreme: minAt}
}

// hitWeights returns |score|^p for every hit, or nil when p is 0 or when every
// hit has a zero score, which reduces to the unweighted statistic.
func hitWeights(hits []int, scores []float64, p float64) []float64 {
	if p == 0 {
		return nil
	}

	out := make([]float64, len(hits))
	total := 0.0
	for i, rank := range hits {
		out[i] = math.Pow(math.Abs(scores[rank]), p)
		total += out[i]
	}

	if total == 0 {
		return nil
	}

	return out
}
