package ranking

import "fmt"

// InvalidInputError reports ranking input that no gene set could be scored
// against: an empty list, a non-finite score, or a duplicate identifier.
type InvalidInputError struct {
	Gene   string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Gene == "" {
		return fmt.Sprintf("invalid ranking input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid ranking input: gene %q: %s", e.Gene, e.Reason)
}
