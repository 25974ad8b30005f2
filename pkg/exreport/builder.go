// Package exreport builds styled spreadsheet reports from declarative calls:
// sheets, titles, tables with conditional fills, charts bound to table ranges,
// column widths and frozen header rows.
package exreport

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Builder accumulates sheets in a new workbook. A Builder is not safe for
// concurrent use; separate builders share nothing.
type Builder struct {
	file   *excelize.File
	sheets []*Sheet
	styles *styleSheet
	logger *slog.Logger
	closed bool
}

// New creates an empty workbook builder.
func New(opts ...Option) *Builder {
	b := &Builder{
		file:   excelize.NewFile(),
		styles: newStyleSheet(),
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RegisterStyle adds or replaces a named style preset.
func (b *Builder) RegisterStyle(name string, st Style) {
	b.styles.presets[name] = st
}

// Style returns the preset registered under name.
func (b *Builder) Style(name string) (Style, error) {
	return b.styles.lookup(name)
}

// AddSheet appends a sheet. Names are compared case-insensitively; a
// collision leaves the workbook unchanged.
func (b *Builder) AddSheet(name string) (*Sheet, error) {
	if b.closed {
		return nil, ErrClosed
	}
	if _, ok := b.Sheet(name); ok {
		return nil, &DuplicateNameError{Name: name}
	}

	if len(b.sheets) == 0 {
		// A new file starts with one default sheet; take it over.
		if err := b.file.SetSheetName(b.file.GetSheetName(0), name); err != nil {
			return nil, fmt.Errorf("add sheet %q: %w", name, err)
		}
	} else if _, err := b.file.NewSheet(name); err != nil {
		return nil, fmt.Errorf("add sheet %q: %w", name, err)
	}

	s := &Sheet{b: b, name: name}
	b.sheets = append(b.sheets, s)
	b.logger.Debug("sheet added", "sheet", name, "index", len(b.sheets)-1)
	return s, nil
}

// Sheets returns the sheets in workbook order.
func (b *Builder) Sheets() []*Sheet {
	out := make([]*Sheet, len(b.sheets))
	copy(out, b.sheets)
	return out
}

// Sheet looks up a sheet by name, ignoring case.
func (b *Builder) Sheet(name string) (*Sheet, bool) {
	for _, s := range b.sheets {
		if strings.EqualFold(s.name, name) {
			return s, true
		}
	}
	return nil, false
}

// Save writes the workbook to path and releases it. The target directory
// must already exist. A failed save leaves the builder usable.
func (b *Builder) Save(path string) error {
	if b.closed {
		return ErrClosed
	}
	if len(b.sheets) == 0 {
		return &SaveError{Path: path, Err: fmt.Errorf("workbook has no sheets")}
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}
	if !info.IsDir() {
		return &SaveError{Path: path, Err: fmt.Errorf("%s is not a directory", dir)}
	}

	if err := b.file.SaveAs(path); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	b.logger.Info("workbook saved", "path", path, "sheets", len(b.sheets))
	return b.Close()
}

// Write streams the workbook to w and releases it.
func (b *Builder) Write(w io.Writer) error {
	if b.closed {
		return ErrClosed
	}
	if err := b.file.Write(w); err != nil {
		return &SaveError{Path: "<stream>", Err: err}
	}
	b.logger.Info("workbook written", "sheets", len(b.sheets))
	return b.Close()
}

// Close releases the workbook without saving. Further calls return ErrClosed.
func (b *Builder) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	return b.file.Close()
}
