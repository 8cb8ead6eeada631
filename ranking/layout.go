package ranking

import (
	"sort"
	"strings"
)

// Layout describes where a rank file keeps its columns. Columns are 0-based.
// ColEffect and ColP are only consulted by parsers that derive a score from a
// p-value.
type Layout struct {
	Delimiter rune
	Comment   rune
	Header    bool
	ColGene   int
	ColScore  int
	ColEffect int
	ColP      int
	Parser    func(layout *Layout, row []string) (Entry, error)
}

var Layouts = map[string]Layout{
	// GSEA preranked format: gene<TAB>score, no header.
	"RNK": {
		Delimiter: '\t',
		Comment:   '#',
		Header:    false,
		ColGene:   0,
		ColScore:  1,
		Parser:    scoreParseRow,
	},

	// Differential expression output: gene, effect, p-value, with a header.
	// Genes are ranked by -log10(P) signed by the effect.
	"SIGNEDP": {
		Delimiter: '\t',
		Comment:   '#',
		Header:    true,
		ColGene:   0,
		ColEffect: 1,
		ColP:      2,
		Parser:    signedPParseRow,
	},
}

// LayoutNames lists the known layouts, alphabetically.
func LayoutNames() string {
	names := make([]string, 0, len(Layouts))
	for m := range Layouts {
		names = append(names, m)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}
