package enrichment

import "fmt"

// EmptyIntersectionError means none of a gene set's members are part of the
// ranked universe. The batch driver records it as a skip.
type EmptyIntersectionError struct {
	Set  string
	Size int
}

func (e *EmptyIntersectionError) Error() string {
	return fmt.Sprintf("gene set %q: none of its %d genes are in the ranked list", e.Set, e.Size)
}

// InvalidParameterError reports an unusable run parameter, such as a
// non-positive permutation count.
type InvalidParameterError struct {
	Parameter string
	Value     interface{}
	Reason    string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Parameter, e.Value, e.Reason)
}
