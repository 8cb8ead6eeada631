package ora

import (
	"encoding/csv"
	"io"
	"math"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/guregu/null.v3"

	"github.com/carbocation/gsea/enrichment"
)

type Row struct {
	Name           string `csv:"Name"`
	Status         string `csv:"Status"`
	Size           string `csv:"Size"`
	Matched        string `csv:"Matched"`
	Overlap        string `csv:"Overlap"`
	Expected       string `csv:"Expected"`
	FoldEnrichment string `csv:"FoldEnrichment"`
	P              string `csv:"P"`
	Q              string `csv:"Q"`
	OverlapGenes   string `csv:"OverlapGenes"`
	Reason         string `csv:"SkipReason"`
}

func (r *Report) Rows() []*Row {
	out := make([]*Row, 0, len(r.Results)+len(r.Skipped))

	for _, v := range r.Results {
		out = append(out, &Row{
			Name:           v.Name,
			Status:         enrichment.StatusTested,
			Size:           enrichment.NullIntFormatter(null.IntFrom(int64(v.Size))),
			Matched:        enrichment.NullIntFormatter(null.IntFrom(int64(v.Matched))),
			Overlap:        enrichment.NullIntFormatter(null.IntFrom(int64(v.Overlap))),
			Expected:       enrichment.NullFloatFormatter(null.FloatFrom(v.Expected)),
			FoldEnrichment: enrichment.NullFloatFormatter(null.NewFloat(v.FoldEnrichment(), !math.IsNaN(v.FoldEnrichment()))),
			P:              enrichment.NullFloatFormatter(null.FloatFrom(v.P)),
			Q:              enrichment.NullFloatFormatter(null.FloatFrom(v.Q)),
			OverlapGenes:   strings.Join(v.OverlapGenes, ","),
		})
	}

	for _, v := range r.Skipped {
		out = append(out, &Row{
			Name:    v.Name,
			Status:  enrichment.StatusSkipped,
			Size:    enrichment.NullIntFormatter(null.IntFrom(int64(v.Size))),
			Matched: enrichment.NullIntFormatter(null.IntFrom(int64(v.Matched))),
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
