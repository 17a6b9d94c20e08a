package services

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when an export is requested with no rows.
var ErrEmptyInput = errors.New("no data available to export")

// ErrMalformedRow indicates a report row failed validation.
var ErrMalformedRow = errors.New("malformed report row")

// ErrUnknownReportType is returned by the generic exporter for an
// unrecognised report discriminator.
var ErrUnknownReportType = errors.New("unknown report type")

// ErrDuplicateSheet is returned when a workbook already holds a sheet with
// the same name.
var ErrDuplicateSheet = errors.New("duplicate sheet name")

// MalformedRowError describes the first invalid row of an export.
type MalformedRowError struct {
	Report string // report the row belongs to, e.g. "detailed sales"
	Index  int    // 0-based position of the row in its collection
	Field  string // json name of the offending field
	Err    error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("%s row %d: field %q: %v", e.Report, e.Index, e.Field, e.Err)
}

// Is reports ErrMalformedRow so callers can branch with errors.Is.
func (e *MalformedRowError) Is(target error) bool {
	return target == ErrMalformedRow
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}

func emptyInput(report string) error {
	return fmt.Errorf("%s: %w", report, ErrEmptyInput)
}
