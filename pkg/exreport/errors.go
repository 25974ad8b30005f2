package exreport

import (
	"errors"
	"fmt"
)

// ErrDuplicateName indicates a sheet name already used in the workbook.
var ErrDuplicateName = errors.New("duplicate sheet name")

// ErrRowShape indicates a table row whose length differs from the header count.
var ErrRowShape = errors.New("row length does not match headers")

// ErrSave indicates the workbook could not be written to its target.
var ErrSave = errors.New("cannot save workbook")

// ErrUnknownStyle indicates a style preset name that was never registered.
var ErrUnknownStyle = errors.New("unknown style")

// ErrUnknownChartKind indicates an unsupported chart kind.
var ErrUnknownChartKind = errors.New("unknown chart kind")

// ErrEmptyRange indicates a chart reference with no cells.
var ErrEmptyRange = errors.New("empty range")

// ErrInvalidCell indicates a row or column index below 1.
var ErrInvalidCell = errors.New("invalid cell position")

// ErrInvalidFreeze indicates a freeze boundary that would freeze nothing.
var ErrInvalidFreeze = errors.New("freeze row must be greater than 1")

// ErrUnsupportedValue indicates a Go value that cannot be written to a cell.
var ErrUnsupportedValue = errors.New("unsupported cell value")

// ErrNoHeaders indicates a table without any column headers.
var ErrNoHeaders = errors.New("table has no headers")

// ErrFileNotFound indicates that a workbook to inspect does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrClosed indicates use of a builder after it was saved or closed.
var ErrClosed = errors.New("workbook already saved or closed")

// DuplicateNameError reports a sheet name collision.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("sheet %q already exists", e.Name)
}

func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateName
}

// RowShapeError reports the first table row whose length is wrong.
type RowShapeError struct {
	SheetName string
	Row       int // 0-based index into the table's rows
	Got       int
	Want      int
}

func (e *RowShapeError) Error() string {
	return fmt.Sprintf("sheet %q: table row %d has %d values, want %d", e.SheetName, e.Row, e.Got, e.Want)
}

func (e *RowShapeError) Unwrap() error {
	return ErrRowShape
}

// SaveError reports a failed save with the attempted path.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrSave and the underlying cause.
func (e *SaveError) Unwrap() []error {
	return []error{ErrSave, e.Err}
}

// SheetError wraps a failure from the spreadsheet library with the sheet and
// operation that triggered it.
type SheetError struct {
	SheetName string
	Op        string // "title", "cell", "table", "chart", "widths", "freeze"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Op, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// newSheetError creates a new SheetError.
func newSheetError(sheetName, op string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Op:        op,
		Err:       err,
	}
}
