package enrichment

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary condenses a report for logging.
type Summary struct {
	Tested        int
	Skipped       int
	Significant   int
	Positive      int
	Negative      int
	MedianMatched float64
	MinQ          float64
}

// Summarize counts the tested sets with Q below alpha. GSEA conventionally
// uses an FDR of 0.25 for exploratory work.
func Summarize(r *Report, alpha float64) (Summary, error) {
	s := Summary{
		Tested:  len(r.Results),
		Skipped: len(r.Skipped),
		MinQ:    1,
	}
	if len(r.Results) == 0 {
		return s, nil
	}

	matched := make(stats.Float64Data, 0, len(r.Results))
	q := make(stats.Float64Data, 0, len(r.Results))
	for _, v := range r.Results {
		matched = append(matched, float64(v.Matched))
		q = append(q, v.Q)

		if v.Q >= alpha {
			continue
		}
		s.Significant++
		if v.ES > 0 {
			s.Positive++
		} else if v.ES < 0 {
			s.Negative++
		}
	}

	var err error
	if s.MedianMatched, err = matched.Median(); err != nil {
		return s, err
	}
	if s.MinQ, err = q.Min(); err != nil {
		return s, err
	}

	return s, nil
}

func (s Summary) String() string {
	return fmt.Sprintf("%d gene sets tested (median %.0f matched genes), %d skipped. %d with q < alpha (%d up, %d down). Smallest q: %.3g",
		s.Tested, s.MedianMatched, s.Skipped, s.Significant, s.Positive, s.Negative, s.MinQ)
}
