package dataset

import "fmt"

// ValidationError reports a required column missing from an input
// table. It is fatal to the operation that needed the column; no
// partial result is produced.
type ValidationError struct {
	Table  string
	Column string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s dataset: missing required column %q", e.Table, e.Column)
}
