// Package ora tests gene sets for over-representation among a selected list of
// genes, such as the top of a ranking, with a one-sided Fisher exact test.
package ora

import (
	"fmt"
	"math"
	"sort"

	"github.com/BenLubar/memoize"
	fet "github.com/glycerine/golang-fisher-exact"

	"github.com/carbocation/gsea/enrichment"
	"github.com/carbocation/gsea/fdr"
	"github.com/carbocation/gsea/geneset"
	"github.com/carbocation/gsea/ranking"
)

// Sets of similar size yield identical contingency tables often enough that
// caching the exact test pays off. Safe for concurrent use.
var memoizedRightTail = memoize.Memoize(rightTail)

// rightTail is the one-sided p-value for an odds ratio greater than 1. Tables
// are laid out as:
//
//	n11  n12  | selected
//	n21  n22  | not selected
//	----------+
//	in   not in set
func rightTail(n11, n12, n21, n22 int) float64 {
	_, _, rightp, _ := fet.FisherExactTest(n11, n12, n21, n22)

	// Summed tails can overshoot 1 by rounding.
	return math.Min(1, rightp)
}

type Result struct {
	Name    string
	Size    int
	Matched int

	// Overlap is the number of selected genes in the set, against Expected
	// under random selection.
	Overlap  int
	Expected float64
	P        float64
	Q        float64

	OverlapGenes []string
}

// FoldEnrichment is Overlap / Expected.
func (r Result) FoldEnrichment() float64 {
	if r.Expected == 0 {
		return 0
	}
	return float64(r.Overlap) / r.Expected
}

type Report struct {
	// Results are ordered by increasing Q, then P, then name.
	Results []Result
	Skipped []enrichment.Skip

	Universe int
	Selected int

	// SelectedMissing counts selected genes that are not in the universe and
	// were therefore ignored.
	SelectedMissing int
}

// Test checks every set in sets for over-representation of selected genes,
// relative to universe. Sets with no members in the universe are skipped.
// Q-values are Benjamini-Hochberg adjusted over the tested sets.
func Test(selected, universe []string, sets *geneset.Collection) (*Report, error) {
	u := make(map[string]struct{}, len(universe))
	for _, gene := range universe {
		u[gene] = struct{}{}
	}
	if len(u) == 0 {
		return nil, &ranking.InvalidInputError{Reason: "universe is empty"}
	}

	report := &Report{
		Results:  make([]Result, 0),
		Skipped:  make([]enrichment.Skip, 0),
		Universe: len(u),
	}

	hits := make(map[string]struct{}, len(selected))
	for _, gene := range selected {
		if _, exists := u[gene]; !exists {
			report.SelectedMissing++
			continue
		}
		hits[gene] = struct{}{}
	}
	if len(hits) == 0 {
		return nil, &ranking.InvalidInputError{Reason: "none of the selected genes are in the universe"}
	}
	report.Selected = len(hits)

	if sets == nil {
		sets, _ = geneset.NewCollection()
	}

	for i := 0; i < sets.Len(); i++ {
		set := sets.At(i)

		matched := 0
		overlap := make([]string, 0)
		for gene := range set.Genes {
			if _, exists := u[gene]; !exists {
				continue
			}
			matched++
			if _, exists := hits[gene]; exists {
				overlap = append(overlap, gene)
			}
		}

		if matched == 0 {
			report.Skipped = append(report.Skipped, enrichment.Skip{
				Name:   set.Name,
				Reason: enrichment.SkipEmptyIntersection,
				Size:   set.Len(),
				Err:    &enrichment.EmptyIntersectionError{Set: set.Name, Size: set.Len()},
			})
			continue
		}
		sort.Strings(overlap)

		n11 := len(overlap)
		n12 := len(hits) - n11
		n21 := matched - n11
		n22 := len(u) - n11 - n12 - n21

		report.Results = append(report.Results, Result{
			Name:         set.Name,
			Size:         set.Len(),
			Matched:      matched,
			Overlap:      n11,
			Expected:     float64(len(hits)) * float64(matched) / float64(len(u)),
			P:            memoizedRightTail.(func(int, int, int, int) float64)(n11, n12, n21, n22),
			OverlapGenes: overlap,
		})
	}

	p := make([]float64, len(report.Results))
	for i, r := range report.Results {
		p[i] = r.P
	}
	q, err := fdr.BenjaminiHochberg(p)
	if err != nil {
		return nil, fmt.Errorf("Test: %w", err)
	}
	for i := range report.Results {
		report.Results[i].Q = q[i]
	}

	sort.Slice(report.Results, func(i, j int) bool {
		a, b := report.Results[i], report.Results[j]
		if a.Q != b.Q {
			return a.Q < b.Q
		}
		if a.P != b.P {
			return a.P < b.P
		}
		return a.Name < b.Name
	})
	sort.Slice(report.Skipped, func(i, j int) bool { return report.Skipped[i].Name < report.Skipped[j].Name })

	return report, nil
}

// TopGenes returns the first n genes of the ranking, or the last n when n is
// negative.
func TopGenes(list *ranking.RankedList, n int) []string {
	genes := list.Genes()
	if n < 0 {
		n = -n
		if n > len(genes) {
			n = len(genes)
		}
		return genes[len(genes)-n:]
	}
	if n > len(genes) {
		n = len(genes)
	}

	return genes[:n]
}
