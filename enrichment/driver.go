package enrichment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/carbocation/gsea/fdr"
	"github.com/carbocation/gsea/geneset"
	"github.com/carbocation/gsea/ranking"
)

// SkipReason says why Run did not test a gene set.
type SkipReason string

const (
	SkipEmptyIntersection SkipReason = "EmptyIntersection"
	SkipTooSmall          SkipReason = "TooSmall"
	SkipTooLarge          SkipReason = "TooLarge"
)

// Result is one tested gene set.
type Result struct {
	Detail
	Q float64
}

// Skip is a gene set that was not tested, and why.
type Skip struct {
	Name    string
	Reason  SkipReason
	Size    int
	Matched int
	Err     error
}

// Report is the outcome of a batch run. Every input gene set appears exactly
// once, either in Results or in Skipped.
type Report struct {
	// Results are ordered by increasing Q, then decreasing |ES|, then name.
	Results []Result

	// Skipped is ordered by name.
	Skipped []Skip

	Universe     int
	Permutations int
}

type outcome struct {
	detail Detail
	skip   *Skip
	err    error
}

// Run scores every gene set in sets against list, then converts the nominal
// p-values of the tested sets to Benjamini-Hochberg q-values. Sets with no
// members in the ranked list, or whose matched size falls outside the size
// bounds, are reported in Skipped. Invalid input or parameters abort the run.
// If ctx is cancelled, Run returns ctx.Err() and no report.
func Run(ctx context.Context, list *ranking.RankedList, sets *geneset.Collection, opts Options) (*Report, error) {
	if list == nil || list.Len() == 0 {
		return nil, &ranking.InvalidInputError{Reason: "ranked list is empty"}
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if sets == nil {
		sets, _ = geneset.NewCollection()
	}

	workers := opts.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	outcomes := make([]outcome, sets.Len())
	concurrencyLimit := make(chan struct{}, workers)
	var pool sync.WaitGroup

Dispatch:
	for i := 0; i < sets.Len(); i++ {
		select {
		case concurrencyLimit <- struct{}{}:
		case <-ctx.Done():
			break Dispatch
		}

		pool.Add(1)
		go func(i int) {
			defer func() {
				<-concurrencyLimit
				pool.Done()
			}()

			outcomes[i] = scoreOne(ctx, list, sets.At(i), opts)
			if opts.Progress != nil {
				opts.Progress()
			}
		}(i)
	}
	pool.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{
		Results:      make([]Result, 0, len(outcomes)),
		Skipped:      make([]Skip, 0),
		Universe:     list.Len(),
		Permutations: opts.Permutations,
	}

	for _, o := range outcomes {
		if o.err != nil {
			return nil, o.err
		}
		if o.skip != nil {
			report.Skipped = append(report.Skipped, *o.skip)
			continue
		}
		report.Results = append(report.Results, Result{Detail: o.detail})
	}

	p := make([]float64, len(report.Results))
	for i, r := range report.Results {
		p[i] = r.P
	}
	q, err := fdr.BenjaminiHochberg(p)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	for i := range report.Results {
		report.Results[i].Q = q[i]
	}

	sort.Slice(report.Results, func(i, j int) bool {
		a, b := report.Results[i], report.Results[j]
		if a.Q != b.Q {
			return a.Q < b.Q
		}
		if math.Abs(a.ES) != math.Abs(b.ES) {
			return math.Abs(a.ES) > math.Abs(b.ES)
		}
		return a.Name < b.Name
	})
	sort.Slice(report.Skipped, func(i, j int) bool { return report.Skipped[i].Name < report.Skipped[j].Name })

	return report, nil
}

func scoreOne(ctx context.Context, list *ranking.RankedList, set geneset.GeneSet, opts Options) outcome {
	matched := len(matchRanks(list, set))

	if matched > 0 && matched < opts.MinSize {
		return outcome{skip: &Skip{Name: set.Name, Reason: SkipTooSmall, Size: set.Len(), Matched: matched}}
	}
	if opts.MaxSize > 0 && matched > opts.MaxSize {
		return outcome{skip: &Skip{Name: set.Name, Reason: SkipTooLarge, Size: set.Len(), Matched: matched}}
	}

	setOpts := opts
	setOpts.Seed = SetSeed(opts.Seed, set.Name)

	d, err := ScoreDetail(ctx, list, set, setOpts)

	var empty *EmptyIntersectionError
	if errors.As(err, &empty) {
		return outcome{skip: &Skip{Name: set.Name, Reason: SkipEmptyIntersection, Size: set.Len(), Err: err}}
	} else if err != nil {
		return outcome{err: err}
	}

	return outcome{detail: d}
}
