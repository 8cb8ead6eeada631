package gsea

import (
	"bufio"
	"bytes"
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// How much of a file SniffDelimiter looks at.
const sniffBytes = 64 * 1024

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in the reader, assuming a CSV-like file. It consumes the reader.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}

// SniffDelimiter is DetermineDelimiter without consuming br: it only peeks at
// the start of the stream, as much as fits in br's buffer (up to 64KB).
func SniffDelimiter(br *bufio.Reader) rune {
	head, _ := br.Peek(sniffBytes)

	// A tab anywhere in the first line is decisive for rank and GMT files.
	if line, _, _ := bytes.Cut(head, []byte{'\n'}); bytes.IndexByte(line, '\t') >= 0 {
		return '\t'
	}

	return DetermineDelimiter(bytes.NewReader(head))
}
