package enrichment

import (
	"context"
	"math"
	"sort"

	"github.com/carbocation/gsea/geneset"
	"github.com/carbocation/gsea/ranking"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// How many permutations run between checks for cancellation.
const checkContextEvery = 128

// Options control scoring. The zero value is not usable: Permutations must be
// positive.
type Options struct {
	Permutations int
	Seed         int64

	// Weight is the exponent applied to |score| when weighting hits. 0 gives
	// every hit the same weight.
	Weight float64

	// Workers bounds concurrent scoring in Run. 0 means runtime.NumCPU().
	Workers int

	// Sets whose matched size falls outside [MinSize, MaxSize] are skipped by
	// Run. A MaxSize of 0 means no upper bound.
	MinSize int
	MaxSize int

	// Progress, if set, is called by Run each time a gene set finishes. It is
	// called from multiple goroutines.
	Progress func()
}

func (o Options) validate() error {
	if o.Permutations < 1 {
		return &InvalidParameterError{Parameter: "permutations", Value: o.Permutations, Reason: "must be a positive integer"}
	}
	if math.IsNaN(o.Weight) || math.IsInf(o.Weight, 0) || o.Weight < 0 {
		return &InvalidParameterError{Parameter: "weight", Value: o.Weight, Reason: "must be a finite number >= 0"}
	}
	if o.Workers < 0 {
		return &InvalidParameterError{Parameter: "workers", Value: o.Workers, Reason: "must be >= 0"}
	}
	if o.MinSize < 0 {
		return &InvalidParameterError{Parameter: "min-size", Value: o.MinSize, Reason: "must be >= 0"}
	}
	if o.MaxSize < 0 || (o.MaxSize > 0 && o.MaxSize < o.MinSize) {
		return &InvalidParameterError{Parameter: "max-size", Value: o.MaxSize, Reason: "must be 0 (unbounded) or >= min-size"}
	}

	return nil
}

// Detail is everything learned from scoring one gene set.
type Detail struct {
	Name string

	// Size is the number of genes in the set; Matched of them are in the
	// ranked list and Missing are not.
	Size    int
	Matched int
	Missing int

	ES  float64
	NES float64
	P   float64

	// LeadingEdge lists the matched members that drive the score, in rank
	// order.
	LeadingEdge []string
}

// Score computes the enrichment score of set against list and its nominal
// permutation p-value, using seed for the permutations.
func Score(list *ranking.RankedList, set geneset.GeneSet, permutations int, seed int64) (es, p float64, err error) {
	d, err := ScoreDetail(context.Background(), list, set, Options{Permutations: permutations, Seed: seed})
	if err != nil {
		return 0, 0, err
	}

	return d.ES, d.P, nil
}

// ScoreDetail scores one gene set. opts.Seed is used as-is; Run derives a
// separate seed for each set with SetSeed. Only Permutations, Seed and Weight
// are consulted.
func ScoreDetail(ctx context.Context, list *ranking.RankedList, set geneset.GeneSet, opts Options) (Detail, error) {
	d := Detail{Name: set.Name, Size: set.Len()}

	if list == nil || list.Len() == 0 {
		return d, &ranking.InvalidInputError{Reason: "ranked list is empty"}
	}
	if err := opts.validate(); err != nil {
		return d, err
	}

	hits := matchRanks(list, set)
	d.Matched = len(hits)
	d.Missing = d.Size - d.Matched

	if d.Matched == 0 {
		return d, &EmptyIntersectionError{Set: set.Name, Size: d.Size}
	}

	n := list.Len()

	// A set that covers the whole universe has nothing to be enriched against.
	if d.Matched == n {
		d.P = 1
		return d, nil
	}

	var scores []float64
	if opts.Weight != 0 {
		scores = list.Scores()
	}

	observed := runningSum(hits, hitWeights(hits, scores, opts.Weight), n)
	d.ES = observed.ES
	d.LeadingEdge = leadingEdge(list, hits, observed)

	null := newNull(opts.Permutations)
	src := rand.NewSource(uint64(opts.Seed))
	sample := make([]int, d.Matched)
	for i := 0; i < opts.Permutations; i++ {
		if i%checkContextEvery == 0 {
			if err := ctx.Err(); err != nil {
				return d, err
			}
		}

		sampleuv.WithoutReplacement(sample, n, src)
		sort.Ints(sample)

		null.Push(runningSum(sample, hitWeights(sample, scores, opts.Weight), n).ES)
	}

	d.P = null.PValue(d.ES)
	d.NES = null.Normalize(d.ES)

	return d, nil
}

// matchRanks returns the ascending ranks of the set's members that are part of
// the universe.
func matchRanks(list *ranking.RankedList, set geneset.GeneSet) []int {
	hits := make([]int, 0, set.Len())
	for gene := range set.Genes {
		if rank, ok := list.Rank(gene); ok {
			hits = append(hits, rank)
		}
	}
	sort.Ints(hits)

	return hits
}

func leadingEdge(list *ranking.RankedList, hits []int, w walk) []string {
	if w.Extreme < 0 {
		return nil
	}

	var ranks []int
	if w.ES > 0 {
		ranks = hits[:w.Extreme+1]
	} else {
		ranks = hits[w.Extreme:]
	}

	out := make([]string, len(ranks))
	for i, rank := range ranks {
		out[i] = list.At(rank).Gene
	}

	return out
}
