package geneset

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadGMT parses the Gene Matrix Transposed format used by MSigDB: one set per
// line, tab-delimited, as name, description, then member genes. Lines starting
// with # and blank lines are ignored.
func ReadGMT(r io.Reader) (*Collection, error) {
	c, _ := NewCollection()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) < 2 {
			return nil, fmt.Errorf("ReadGMT: line %d: expected at least a name and a description, got %d columns", lineNo, len(cols))
		}

		genes := make([]string, 0, len(cols)-2)
		for _, gene := range cols[2:] {
			if gene = strings.TrimSpace(gene); gene != "" {
				genes = append(genes, gene)
			}
		}

		set := New(strings.TrimSpace(cols[0]), genes...)
		set.Description = strings.TrimSpace(cols[1])

		if err := c.Add(set); err != nil {
			return nil, fmt.Errorf("ReadGMT: line %d: %w", lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ReadGMT: %w", err)
	}

	return c, nil
}
