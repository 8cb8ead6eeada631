package ranking

import (
	"math"
)

// SignedP is a per-gene test result: the p-value and the direction of the
// effect (e.g. a log fold change or a T statistic).
type SignedP struct {
	Gene   string
	P      float64
	Effect float64
}

// Score transforms the p-value into -log10(P), signed by the direction of the
// effect. A P of exactly 0 is treated as the smallest positive float so that
// the gene sorts to the extreme rather than to infinity. A zero effect yields
// a zero score.
func (s SignedP) Score() (float64, error) {
	if math.IsNaN(s.P) || s.P < 0 || s.P > 1 {
		return 0, &InvalidInputError{Gene: s.Gene, Reason: "p-value must be within [0, 1]"}
	}
	if math.IsNaN(s.Effect) {
		return 0, &InvalidInputError{Gene: s.Gene, Reason: "effect is NaN"}
	}

	p := s.P
	if p == 0 {
		p = math.SmallestNonzeroFloat64
	}

	negLogP := -math.Log10(p)

	switch {
	case s.Effect > 0:
		return negLogP, nil
	case s.Effect < 0:
		return -negLogP, nil
	}

	return 0, nil
}

// FromSignedPValues ranks genes by signed -log10(P). Ties keep input order.
func FromSignedPValues(results []SignedP) (*RankedList, error) {
	entries := make([]Entry, 0, len(results))
	for _, v := range results {
		score, err := v.Score()
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Gene: v.Gene, Score: score})
	}

	return New(entries)
}
