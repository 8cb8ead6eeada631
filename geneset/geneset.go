// Package geneset holds named collections of gene identifiers, such as
// pathways, and reads them from GMT files.
package geneset

import (
	"fmt"
	"sort"
)

type GeneSet struct {
	Name        string
	Description string
	Genes       map[string]struct{}
}

// New creates a gene set. Repeated identifiers are collapsed.
func New(name string, genes ...string) GeneSet {
	g := GeneSet{
		Name:  name,
		Genes: make(map[string]struct{}, len(genes)),
	}
	for _, gene := range genes {
		g.Genes[gene] = struct{}{}
	}

	return g
}

func (g GeneSet) Contains(gene string) bool {
	_, exists := g.Genes[gene]
	return exists
}

func (g GeneSet) Len() int {
	return len(g.Genes)
}

// Members returns the identifiers in alphabetical order.
func (g GeneSet) Members() []string {
	out := make([]string, 0, len(g.Genes))
	for gene := range g.Genes {
		out = append(out, gene)
	}
	sort.Strings(out)

	return out
}

// Collection is an ordered group of gene sets with unique names.
type Collection struct {
	sets   []GeneSet
	byName map[string]int
}

func NewCollection(sets ...GeneSet) (*Collection, error) {
	c := &Collection{
		sets:   make([]GeneSet, 0, len(sets)),
		byName: make(map[string]int, len(sets)),
	}
	for _, s := range sets {
		if err := c.Add(s); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Collection) Add(s GeneSet) error {
	if s.Name == "" {
		return fmt.Errorf("gene set has no name")
	}
	if _, exists := c.byName[s.Name]; exists {
		return fmt.Errorf("gene set %q is defined more than once", s.Name)
	}
	if c.byName == nil {
		c.byName = make(map[string]int)
	}

	c.byName[s.Name] = len(c.sets)
	c.sets = append(c.sets, s)

	return nil
}

func (c *Collection) Len() int {
	return len(c.sets)
}

func (c *Collection) At(i int) GeneSet {
	return c.sets[i]
}

func (c *Collection) Get(name string) (GeneSet, bool) {
	i, exists := c.byName[name]
	if !exists {
		return GeneSet{}, false
	}
	return c.sets[i], true
}

// Names returns set names in collection order.
func (c *Collection) Names() []string {
	out := make([]string, len(c.sets))
	for i, s := range c.sets {
		out[i] = s.Name
	}
	return out
}
