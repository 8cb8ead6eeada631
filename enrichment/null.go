package enrichment

import (
	"math"

	"github.com/carbocation/runningvariance"
)

// magnitudeTolerance treats null scores within this distance of the observed
// magnitude as equally extreme.
const magnitudeTolerance = 1e-12

// Null is the permutation distribution of enrichment scores for one gene set.
// It is built and consumed within a single scoring call. The zero value is an
// empty distribution ready for Push.
type Null struct {
	Scores   []float64
	Positive *runningvariance.RunningStat
	Negative *runningvariance.RunningStat
}

func newNull(permutations int) *Null {
	return &Null{
		Scores:   make([]float64, 0, permutations),
		Positive: runningvariance.NewRunningStat(),
		Negative: runningvariance.NewRunningStat(),
	}
}

// Push records one permuted enrichment score.
func (n *Null) Push(es float64) {
	if n.Positive == nil {
		n.Positive = runningvariance.NewRunningStat()
	}
	if n.Negative == nil {
		n.Negative = runningvariance.NewRunningStat()
	}

	n.Scores = append(n.Scores, es)

	switch {
	case es > 0:
		n.Positive.Push(es)
	case es < 0:
		n.Negative.Push(es)
	}
}

// PValue is the fraction of null scores with the same sign as es and at least
// its magnitude, floored at 1/(permutations+1). A zero score is never
// significant.
func (n *Null) PValue(es float64) float64 {
	if es == 0 || len(n.Scores) == 0 {
		return 1
	}

	extreme := 0
	for _, v := range n.Scores {
		if (v > 0) != (es > 0) || v == 0 {
			continue
		}
		if math.Abs(v) >= math.Abs(es)-magnitudeTolerance {
			extreme++
		}
	}

	permutations := float64(len(n.Scores))
	p := float64(extreme) / permutations
	if floor := 1 / (permutations + 1); p < floor {
		return floor
	}

	return p
}

// Normalize divides es by the mean magnitude of the same-signed null scores.
// The result is NaN when the null has no scores of that sign.
func (n *Null) Normalize(es float64) float64 {
	switch {
	case es > 0:
		if n.Positive == nil || n.Positive.N == 0 {
			return math.NaN()
		}
		return es / n.Positive.Mean()
	case es < 0:
		if n.Negative == nil || n.Negative.N == 0 {
			return math.NaN()
		}
		return es / math.Abs(n.Negative.Mean())
	}

	return 0
}
