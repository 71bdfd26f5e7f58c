package rowmap

import (
	"errors"
	"fmt"
)

var (
	// ErrValueEmpty marks an unresolved Empty terminal outcome. Callers decide
	// between leaving the field at its default and failing the row.
	ErrValueEmpty = errors.New("no value available")

	// ErrSplitReaderMisuse is raised (panicked) when a split-only operation is
	// invoked on a reader that has no single-cell locator to wrap.
	ErrSplitReaderMisuse = errors.New("reader has no single cell to split")

	// ErrNullConfiguration is raised (panicked) when a required configuration
	// argument is absent.
	ErrNullConfiguration = errors.New("missing required configuration")

	// ErrSealed is raised (panicked) on configuration calls after execution
	// has begun.
	ErrSealed = errors.New("configuration is sealed, mapping already started")
)

// ColumnNotFoundError reports a locator referencing a column the sheet does
// not have. This is fatal for the field unless the caller treats it as
// optional; it is never folded into an Empty outcome.
type ColumnNotFoundError struct {
	Column  string
	Index   int
	ByIndex bool
	Row     int
}

func (e *ColumnNotFoundError) Error() string {
	if e.ByIndex {
		return fmt.Sprintf("column #%d not found (row %d); mark the field optional if the sheet may omit it", e.Index, e.Row)
	}
	return fmt.Sprintf("column %q not found (row %d); mark the field optional if the sheet may omit it", e.Column, e.Row)
}

// MappingError is the single descriptive error a pipeline surfaces for a
// row/field when no fallback resolves the outcome.
type MappingError struct {
	Field  string
	Row    int
	Reason string
	Cause  error
}

func (e *MappingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("mapping field %q (row %d): %s: %v", e.Field, e.Row, e.Reason, e.Cause)
	}
	return fmt.Sprintf("mapping field %q (row %d): %s", e.Field, e.Row, e.Reason)
}

func (e *MappingError) Unwrap() error {
	return e.Cause
}

// IsEmptyValue reports whether err is an unresolved Empty outcome, so callers
// can skip the field instead of failing the row.
func IsEmptyValue(err error) bool {
	return errors.Is(err, ErrValueEmpty)
}
