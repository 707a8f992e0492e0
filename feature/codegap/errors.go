package codegap

import (
	"errors"
	"fmt"
)

var (
	// ErrShortRow marks a data row with fewer fields than the layout reads.
	ErrShortRow = errors.New("row has too few fields")
	// ErrMissingHeader is returned for a table without a header row.
	ErrMissingHeader = errors.New("missing header row")
	// ErrColumnNotFound is returned when a named column is not in the header.
	ErrColumnNotFound = errors.New("column not found")
)

// RowError reports a short row. It unwraps to ErrShortRow.
type RowError struct {
	// Line is the 1-based line of the row in its table.
	Line int
	// Want is the minimum number of fields the layout needs.
	Want int
	// Got is the number of fields the row has.
	Got int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: expected at least %d fields, got %d", e.Line, e.Want, e.Got)
}

func (e *RowError) Unwrap() error {
	return ErrShortRow
}
