package ranking

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Parser struct {
	CSVReaderSettings *csv.Reader
	Layout            Layout
}

func NewParser(layout string) (*Parser, error) {
	l, exists := Layouts[layout]
	if !exists {
		return nil, fmt.Errorf("Layout %s is not found. Valid layout names include: %s", layout, LayoutNames())
	}

	return NewParserWithLayout(l)
}

func NewParserWithLayout(layout Layout) (*Parser, error) {
	if layout.Parser == nil {
		layout.Parser = scoreParseRow
	}

	n := &Parser{}
	n.Layout = layout
	n.CSVReaderSettings = &csv.Reader{}
	n.CSVReaderSettings.Comma = layout.Delimiter
	n.CSVReaderSettings.Comment = layout.Comment

	return n, nil
}

// ParseRow converts one already-split row into an Entry.
func (p *Parser) ParseRow(row []string) (Entry, error) {
	return p.Layout.Parser(&p.Layout, row)
}

// Read parses every row of r. Blank rows are skipped, as is the first row when
// the layout has a header. Errors carry the 1-based line number.
func (p *Parser) Read(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.Comma = p.CSVReaderSettings.Comma
	cr.Comment = p.CSVReaderSettings.Comment
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = p.Layout.Delimiter != '\t'

	entries := make([]Entry, 0)
	for i := 0; ; i++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		if i == 0 && p.Layout.Header {
			continue
		}

		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}

		entry, err := p.ParseRow(row)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func column(row []string, col int) (string, error) {
	if col < 0 || col >= len(row) {
		return "", fmt.Errorf("row has %d columns, column %d requested", len(row), col)
	}
	return strings.TrimSpace(row[col]), nil
}

func scoreParseRow(layout *Layout, row []string) (Entry, error) {
	e := Entry{}

	gene, err := column(row, layout.ColGene)
	if err != nil {
		return e, err
	}
	e.Gene = gene

	val, err := column(row, layout.ColScore)
	if err != nil {
		return e, err
	}

	if score, err := strconv.ParseFloat(val, 64); err != nil {
		return e, err
	} else {
		e.Score = score
	}

	return e, nil
}

func signedPParseRow(layout *Layout, row []string) (Entry, error) {
	e := Entry{}
	sp := SignedP{}

	gene, err := column(row, layout.ColGene)
	if err != nil {
		return e, err
	}
	e.Gene = gene
	sp.Gene = gene

	effect, err := column(row, layout.ColEffect)
	if err != nil {
		return e, err
	}
	if sp.Effect, err = strconv.ParseFloat(effect, 64); err != nil {
		return e, err
	}

	p, err := column(row, layout.ColP)
	if err != nil {
		return e, err
	}
	if sp.P, err = strconv.ParseFloat(p, 64); err != nil {
		return e, err
	}

	if e.Score, err = sp.Score(); err != nil {
		return e, err
	}

	return e, nil
}
