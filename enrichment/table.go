package enrichment

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/guregu/null.v3"
)

// Row is one line of the tab-delimited report. Numeric cells are empty for
// skipped sets.
type Row struct {
	Name        string `csv:"Name"`
	Status      string `csv:"Status"`
	Size        string `csv:"Size"`
	Matched     string `csv:"Matched"`
	ES          string `csv:"ES"`
	NES         string `csv:"NES"`
	P           string `csv:"P"`
	Q           string `csv:"Q"`
	LeadingEdge string `csv:"LeadingEdge"`
	Reason      string `csv:"SkipReason"`
}

const (
	StatusTested  = "tested"
	StatusSkipped = "skipped"
)

func NullFloatFormatter(n null.Float) string {
	if !n.Valid {
		return ""
	}

	return strconv.FormatFloat(n.Float64, 'g', 6, 64)
}

func NullIntFormatter(n null.Int) string {
	if !n.Valid {
		return ""
	}

	return strconv.FormatInt(n.Int64, 10)
}

func finite(v float64) null.Float {
	return null.NewFloat(v, !math.IsNaN(v) && !math.IsInf(v, 0))
}

// Rows flattens a report: tested sets in report order, then skipped sets.
func (r *Report) Rows() []*Row {
	out := make([]*Row, 0, len(r.Results)+len(r.Skipped))

	for _, v := range r.Results {
		out = append(out, &Row{
			Name:        v.Name,
			Status:      StatusTested,
			Size:        NullIntFormatter(null.IntFrom(int64(v.Size))),
			Matched:     NullIntFormatter(null.IntFrom(int64(v.Matched))),
			ES:          NullFloatFormatter(finite(v.ES)),
			NES:         NullFloatFormatter(finite(v.NES)),
			P:           NullFloatFormatter(finite(v.P)),
			Q:           NullFloatFormatter(finite(v.Q)),
			LeadingEdge: strings.Join(v.LeadingEdge, ","),
		})
	}

	for _, v := range r.Skipped {
		out = append(out, &Row{
			Name:    v.Name,
			Status:  StatusSkipped,
			Size:    NullIntFormatter(null.IntFrom(int64(v.Size))),
			Matched: NullIntFormatter(null.IntFrom(int64(v.Matched))),
			ES:      NullFloatFormatter(null.Float{}),
			NES:     NullFloatFormatter(null.Float{}),
			P:       NullFloatFormatter(null.Float{}),
			Q:       NullFloatFormatter(null.Float{}),
			Reason:  string(v.Reason),
		})
	}

	return out
}

// WriteTSV writes the report as a tab-delimited table with a header row.
func (r *Report) WriteTSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	sw := gocsv.NewSafeCSVWriter(cw)
	if err := gocsv.MarshalCSV(r.Rows(), sw); err != nil {
		return err
	}
	sw.Flush()

	return sw.Error()
}
