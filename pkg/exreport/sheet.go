package exreport

import (
	"fmt"
	"maps"
	"slices"

	"github.com/xuri/excelize/v2"
)

// Sheet is a handle to one worksheet of a Builder.
type Sheet struct {
	b      *Builder
	name   string
	charts []ChartSpec
	frozen int
}

// Name returns the sheet name.
func (s *Sheet) Name() string {
	return s.name
}

// Charts returns the attached chart specs in attach order.
func (s *Sheet) Charts() []ChartSpec {
	return slices.Clone(s.charts)
}

// FrozenRows returns the number of rows frozen at the top.
func (s *Sheet) FrozenRows() int {
	return s.frozen
}

// WriteTitle writes text at the given cell. When mergeTo is beyond the
// title's column the cells at..(at.Row, mergeTo) are merged. An empty style
// uses the "title" preset.
func (s *Sheet) WriteTitle(at Cell, text, style string, mergeTo int) error {
	if s.b.closed {
		return ErrClosed
	}
	if err := at.validate(); err != nil {
		return err
	}
	if style == "" {
		style = StyleTitle
	}
	st, err := s.b.styles.lookup(style)
	if err != nil {
		return err
	}

	if err := s.put(at, Text(text), st); err != nil {
		return newSheetError(s.name, "title", err)
	}
	if mergeTo > at.Col {
		end := Cell{Row: at.Row, Col: mergeTo}
		if err := s.b.file.MergeCell(s.name, at.Name(), end.Name()); err != nil {
			return newSheetError(s.name, "title", err)
		}
	}
	s.b.logger.Debug("title written", "sheet", s.name, "cell", at.Name())
	return nil
}

// SetCell writes a single value with an optional style preset.
func (s *Sheet) SetCell(at Cell, v any, style string) error {
	if s.b.closed {
		return ErrClosed
	}
	if err := at.validate(); err != nil {
		return err
	}
	val, err := ValueOf(v)
	if err != nil {
		return err
	}
	st, err := s.b.styles.lookup(style)
	if err != nil {
		return err
	}
	if err := s.put(at, val, st); err != nil {
		return newSheetError(s.name, "cell", err)
	}
	return nil
}

// SetCellStyle writes a value with an explicit style rather than a preset.
func (s *Sheet) SetCellStyle(at Cell, v any, st Style) error {
	if s.b.closed {
		return ErrClosed
	}
	if err := at.validate(); err != nil {
		return err
	}
	val, err := ValueOf(v)
	if err != nil {
		return err
	}
	if err := s.put(at, val, st); err != nil {
		return newSheetError(s.name, "cell", err)
	}
	return nil
}

// WriteLines writes one text line per row, starting at at and moving down.
func (s *Sheet) WriteLines(at Cell, lines []string, style string) error {
	if s.b.closed {
		return ErrClosed
	}
	if err := at.validate(); err != nil {
		return err
	}
	st, err := s.b.styles.lookup(style)
	if err != nil {
		return err
	}
	for i, line := range lines {
		if err := s.put(at.Offset(i, 0), Text(line), st); err != nil {
			return newSheetError(s.name, "cell", err)
		}
	}
	return nil
}

// SetColumnWidths sets display widths keyed by 1-based column index.
func (s *Sheet) SetColumnWidths(widths map[int]float64) error {
	if s.b.closed {
		return ErrClosed
	}
	for _, col := range slices.Sorted(maps.Keys(widths)) {
		if col < 1 {
			return fmt.Errorf("%w: column %d", ErrInvalidCell, col)
		}
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return newSheetError(s.name, "widths", err)
		}
		if err := s.b.file.SetColWidth(s.name, name, name, widths[col]); err != nil {
			return newSheetError(s.name, "widths", err)
		}
	}
	s.b.logger.Debug("column widths set", "sheet", s.name, "columns", len(widths))
	return nil
}

// SetColumnWidthList sets widths for columns 1..len(widths). Zero entries are
// skipped.
func (s *Sheet) SetColumnWidthList(widths ...float64) error {
	m := make(map[int]float64, len(widths))
	for i, w := range widths {
		if w > 0 {
			m[i+1] = w
		}
	}
	return s.SetColumnWidths(m)
}

// FreezeHeader freezes every row above row, so FreezeHeader(2) keeps row 1
// visible while scrolling.
func (s *Sheet) FreezeHeader(row int) error {
	if s.b.closed {
		return ErrClosed
	}
	if row <= 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidFreeze, row)
	}
	top := Cell{Row: row, Col: 1}
	err := s.b.file.SetPanes(s.name, &excelize.Panes{
		Freeze:      true,
		YSplit:      row - 1,
		TopLeftCell: top.Name(),
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return newSheetError(s.name, "freeze", err)
	}
	s.frozen = row - 1
	s.b.logger.Debug("header frozen", "sheet", s.name, "rows", s.frozen)
	return nil
}

// put writes one value and its style. Percent values without an explicit
// number format get "0%".
func (s *Sheet) put(at Cell, v Value, st Style) error {
	name := at.Name()
	f := s.b.file

	switch v.Kind {
	case KindFormula:
		if err := f.SetCellFormula(s.name, name, v.resolve(at.Row)); err != nil {
			return err
		}
	case KindEmpty:
	default:
		if err := f.SetCellValue(s.name, name, v.cellValue()); err != nil {
			return err
		}
	}

	if v.Kind == KindPercent && st.NumberFormat == "" {
		st.NumberFormat = "0%"
	}
	if st == (Style{}) {
		return nil
	}
	id, err := s.b.styles.id(f, st)
	if err != nil {
		return err
	}
	return f.SetCellStyle(s.name, name, name, id)
}
