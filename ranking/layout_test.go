package ranking

import (
	"math"
	"strings"
	"testing"
)

func TestRNKLayout(t *testing.T) {
	row := []string{"TP53", "-2.5"}
	parser, err := NewParser("RNK")
	if err != nil {
		t.Fatal(err)
	}
	parsedRow, err := parser.ParseRow(row)
	if err != nil {
		t.Fatal(err)
	}
	if parsedRow.Gene != "TP53" || parsedRow.Score != -2.5 {
		t.Errorf("Mismatch: %+v", parsedRow)
	}
}

func TestSignedPLayout(t *testing.T) {
	row := []string{"BRCA1", "-0.8", "1e-05"}
	parser, err := NewParser("SIGNEDP")
	if err != nil {
		t.Fatal(err)
	}
	parsedRow, err := parser.ParseRow(row)
	if err != nil {
		t.Fatal(err)
	}
	if parsedRow.Gene != "BRCA1" || math.Abs(parsedRow.Score-(-5)) > 1e-12 {
		t.Errorf("Mismatch: %+v", parsedRow)
	}
}

func TestUnknownLayout(t *testing.T) {
	_, err := NewParser("NOPE")
	if err == nil {
		t.Fatal("expected an error for an unknown layout")
	}
	if !strings.Contains(err.Error(), "RNK, SIGNEDP") {
		t.Errorf("error should list the valid layouts: %v", err)
	}
}

func TestShortRow(t *testing.T) {
	parser, err := NewParser("RNK")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parser.ParseRow([]string{"onlygene"}); err == nil {
		t.Fatal("expected an error for a row without a score column")
	}
}

func TestReadRNK(t *testing.T) {
	in := "# comment\nA\t3\nB\t-1.5\n\nC\t0\n"

	parser, err := NewParser("RNK")
	if err != nil {
		t.Fatal(err)
	}
	entries, err := parser.Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d: %+v", len(entries), entries)
	}
	if entries[1].Gene != "B" || entries[1].Score != -1.5 {
		t.Errorf("Mismatch: %+v", entries[1])
	}
}

func TestReadSignedPWithHeader(t *testing.T) {
	in := "gene\tlog2fc\tpvalue\nA\t1.2\t0.01\nB\t-0.3\t0.1\n"

	parser, err := NewParser("SIGNEDP")
	if err != nil {
		t.Fatal(err)
	}
	entries, err := parser.Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if math.Abs(entries[0].Score-2) > 1e-12 || math.Abs(entries[1].Score+1) > 1e-12 {
		t.Errorf("Mismatch: %+v", entries)
	}
}

func TestReadReportsLine(t *testing.T) {
	in := "A\t1\nB\tnotanumber\n"

	parser, err := NewParser("RNK")
	if err != nil {
		t.Fatal(err)
	}
	_, err = parser.Read(strings.NewReader(in))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected a line 2 error, got %v", err)
	}
}

func TestCustomLayout(t *testing.T) {
	parser, err := NewParserWithLayout(Layout{
		Delimiter: ',',
		ColGene:   1,
		ColScore:  0,
	})
	if err != nil {
		t.Fatal(err)
	}
	entries, err := parser.Read(strings.NewReader("4.5, GATA4\n-1, NKX2-5\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 || entries[0].Gene != "GATA4" || entries[1].Score != -1 {
		t.Fatalf("Mismatch: %+v", entries)
	}
}
