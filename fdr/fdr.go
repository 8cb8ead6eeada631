// Package fdr adjusts batches of p-values for multiple testing.
package fdr

import (
	"fmt"
	"math"
	"sort"
)

func validate(p []float64) error {
	for i, v := range p {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("p-value %d (%v) is not within [0, 1]", i, v)
		}
	}
	return nil
}

// BenjaminiHochberg returns q-values that control the false discovery rate by
// the Benjamini-Hochberg step-up procedure. Output is aligned with the input,
// capped at 1, and monotone: a larger p-value never receives a smaller q-value.
// The number of tests is len(p).
func BenjaminiHochberg(p []float64) ([]float64, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	m := len(p)
	q := make([]float64, m)
	if m == 0 {
		return q, nil
	}

	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return p[order[i]] < p[order[j]] })

	// Walk from the largest p-value down, carrying the running minimum of
	// p*m/rank.
	running := 1.0
	for k := m - 1; k >= 0; k-- {
		idx := order[k]
		adjusted := p[idx] * float64(m) / float64(k+1)
		if adjusted < running {
			running = adjusted
		}
		q[idx] = running
	}

	return q, nil
}

// Bonferroni multiplies each p-value by the number of tests, capped at 1.
func Bonferroni(p []float64) ([]float64, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	out := make([]float64, len(p))
	for i, v := range p {
		out[i] = math.Min(1, v*float64(len(p)))
	}

	return out, nil
}
