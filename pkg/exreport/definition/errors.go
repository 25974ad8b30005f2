package definition

import (
	"errors"
	"fmt"
)

// Definition errors. Validate wraps these in a ValidationError naming the
// offending report, sheet and field.
var (
	// ErrDefinitionNotFound is returned when no definition file matches a name.
	ErrDefinitionNotFound = errors.New("report definition not found")

	// ErrNoSheets is returned for a report without sheets.
	ErrNoSheets = errors.New("report has no sheets")

	// ErrMissingField is returned when a required field is empty.
	ErrMissingField = errors.New("required field is empty")

	// ErrDuplicateSheet is returned when two sheets share a name.
	ErrDuplicateSheet = errors.New("duplicate sheet name")

	// ErrDuplicateTable is returned when two tables of a sheet share an id.
	ErrDuplicateTable = errors.New("duplicate table id")

	// ErrUnknownTable is returned when a chart refers to a table id that is
	// not defined on the same sheet.
	ErrUnknownTable = errors.New("unknown table id")

	// ErrInvalidRange is returned for a chart range that names neither a
	// table column nor an explicit range.
	ErrInvalidRange = errors.New("invalid range reference")
)

// ValidationError reports where in a definition validation failed.
type ValidationError struct {
	Report string
	Sheet  string
	Field  string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("report %q: %s: %v", e.Report, e.Field, e.Err)
	}
	return fmt.Sprintf("report %q, sheet %q: %s: %v", e.Report, e.Sheet, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
