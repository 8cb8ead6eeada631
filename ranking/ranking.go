// Package ranking turns per-gene statistics into the ordered gene list that
// enrichment statistics walk over.
package ranking

import (
	"math"
	"sort"
)

// Entry is one gene and the statistic it was ranked by.
type Entry struct {
	Gene  string
	Score float64
}

// RankedList is an immutable list of genes ordered by descending score. Ties
// keep the order in which the genes were supplied. It is safe for concurrent
// reads.
type RankedList struct {
	entries []Entry
	index   map[string]int
}

// New validates entries and sorts a copy of them by descending score. Ties are
// broken by input order.
func New(entries []Entry) (*RankedList, error) {
	if len(entries) == 0 {
		return nil, &InvalidInputError{Reason: "no genes were supplied"}
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)

	seen := make(map[string]struct{}, len(sorted))
	for _, e := range sorted {
		if e.Gene == "" {
			return nil, &InvalidInputError{Reason: "empty gene identifier"}
		}
		if math.IsNaN(e.Score) || math.IsInf(e.Score, 0) {
			return nil, &InvalidInputError{Gene: e.Gene, Reason: "score is not finite"}
		}
		if _, exists := seen[e.Gene]; exists {
			return nil, &InvalidInputError{Gene: e.Gene, Reason: "duplicate gene identifier"}
		}
		seen[e.Gene] = struct{}{}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	r := &RankedList{
		entries: sorted,
		index:   make(map[string]int, len(sorted)),
	}
	for i, e := range sorted {
		r.index[e.Gene] = i
	}

	return r, nil
}

// FromMap builds a RankedList from a gene => score map. Maps have no insertion
// order, so ties are broken by ascending gene identifier.
func FromMap(scores map[string]float64) (*RankedList, error) {
	entries := make([]Entry, 0, len(scores))
	for gene, score := range scores {
		entries = append(entries, Entry{Gene: gene, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Gene < entries[j].Gene })

	return New(entries)
}

// Len is the size of the gene universe.
func (r *RankedList) Len() int {
	return len(r.entries)
}

// At returns the entry at 0-based rank i. Rank 0 has the highest score.
func (r *RankedList) At(i int) Entry {
	return r.entries[i]
}

// Rank returns the 0-based rank of gene and whether the gene is part of the
// universe.
func (r *RankedList) Rank(gene string) (int, bool) {
	i, exists := r.index[gene]
	return i, exists
}

// Contains reports whether gene is part of the universe.
func (r *RankedList) Contains(gene string) bool {
	_, exists := r.index[gene]
	return exists
}

// Genes returns the identifiers in rank order.
func (r *RankedList) Genes() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Gene
	}
	return out
}

// Scores returns the scores in rank order, aligned with Genes.
func (r *RankedList) Scores() []float64 {
	out := make([]float64, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Score
	}
	return out
}
