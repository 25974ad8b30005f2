package exreport

import (
	"fmt"
	"slices"
)

// ConditionalFill replaces a body cell's fill when its literal value equals
// Match. Column restricts the rule to one 1-based table column; 0 means any.
type ConditionalFill struct {
	Match  string
	Fill   string
	Column int
}

func (cf ConditionalFill) matches(col int, v Value) bool {
	return (cf.Column == 0 || cf.Column == col) && v.Literal() == cf.Match
}

// Table is a header row followed by body rows, written at Anchor.
type Table struct {
	Anchor  Cell
	Headers []string
	// Rows hold values accepted by ValueOf. Each row must have exactly
	// len(Headers) values.
	Rows [][]any

	// HeaderStyle and BodyStyle name presets; empty means "header" and "body".
	HeaderStyle string
	BodyStyle   string
	// AltFill fills every second body row.
	AltFill string
	// ColumnFormats maps 1-based table columns to number formats.
	ColumnFormats map[int]string
	// HighlightRows lists 0-based body rows drawn bold on the highlight fill.
	HighlightRows []int
	// ConditionalFills are checked in order; the first match wins.
	ConditionalFills []ConditionalFill
}

// Placement records where a table landed on its sheet.
type Placement struct {
	Sheet     string
	HeaderRow int
	FirstRow  int // first body row; equals LastRow+1 when the table has no rows
	LastRow   int
	FirstCol  int
	LastCol   int
}

// Column returns the body range of the i-th (1-based) table column.
func (p Placement) Column(i int) Ref {
	col := p.FirstCol + i - 1
	return Ref{Sheet: p.Sheet, MinRow: p.FirstRow, MinCol: col, MaxRow: p.LastRow, MaxCol: col}
}

// ColumnWithHeader is Column extended upwards to include the header cell.
func (p Placement) ColumnWithHeader(i int) Ref {
	r := p.Column(i)
	r.MinRow = p.HeaderRow
	return r
}

// Cell returns the cell of body row rowIdx (0-based) and table column col
// (1-based).
func (p Placement) Cell(rowIdx, col int) Cell {
	return Cell{Row: p.FirstRow + rowIdx, Col: p.FirstCol + col - 1}
}

// Range returns the whole table including its header row.
func (p Placement) Range() Ref {
	return Ref{Sheet: p.Sheet, MinRow: p.HeaderRow, MinCol: p.FirstCol, MaxRow: p.LastRow, MaxCol: p.LastCol}
}

// WriteTable writes t and returns where it landed. Rows are validated before
// anything is written, so a shape error leaves the sheet untouched.
func (s *Sheet) WriteTable(t Table) (Placement, error) {
	if s.b.closed {
		return Placement{}, ErrClosed
	}
	if err := t.Anchor.validate(); err != nil {
		return Placement{}, err
	}
	if len(t.Headers) == 0 {
		return Placement{}, ErrNoHeaders
	}

	width := len(t.Headers)
	values := make([][]Value, len(t.Rows))
	for i, row := range t.Rows {
		if len(row) != width {
			return Placement{}, &RowShapeError{SheetName: s.name, Row: i, Got: len(row), Want: width}
		}
		values[i] = make([]Value, width)
		for j, x := range row {
			v, err := ValueOf(x)
			if err != nil {
				return Placement{}, fmt.Errorf("sheet %q: table row %d column %d: %w", s.name, i, j+1, err)
			}
			values[i][j] = v
		}
	}
	for col := range t.ColumnFormats {
		if col < 1 || col > width {
			return Placement{}, fmt.Errorf("%w: number format for table column %d of %d", ErrInvalidCell, col, width)
		}
	}

	headerStyle, err := s.b.styles.lookup(orDefault(t.HeaderStyle, StyleHeader))
	if err != nil {
		return Placement{}, err
	}
	bodyStyle, err := s.b.styles.lookup(orDefault(t.BodyStyle, StyleBody))
	if err != nil {
		return Placement{}, err
	}

	for j, h := range t.Headers {
		if err := s.put(t.Anchor.Offset(0, j), Text(h), headerStyle); err != nil {
			return Placement{}, newSheetError(s.name, "table", err)
		}
	}

	for i, row := range values {
		for j, v := range row {
			st := t.cellStyle(bodyStyle, i, j+1, v)
			if err := s.put(t.Anchor.Offset(i+1, j), v, st); err != nil {
				return Placement{}, newSheetError(s.name, "table", err)
			}
		}
	}

	p := Placement{
		Sheet:     s.name,
		HeaderRow: t.Anchor.Row,
		FirstRow:  t.Anchor.Row + 1,
		LastRow:   t.Anchor.Row + len(values),
		FirstCol:  t.Anchor.Col,
		LastCol:   t.Anchor.Col + width - 1,
	}
	s.b.logger.Debug("table written", "sheet", s.name, "range", p.Range().String(), "rows", len(values))
	return p, nil
}

// cellStyle layers the body style: alternate fill, highlight, column number
// format, then the first matching conditional fill.
func (t Table) cellStyle(body Style, rowIdx, col int, v Value) Style {
	st := body
	if t.AltFill != "" && rowIdx%2 == 1 {
		st.Fill = t.AltFill
	}
	if slices.Contains(t.HighlightRows, rowIdx) {
		st = st.WithFill(FillHighlight).WithBold()
	}
	if format, ok := t.ColumnFormats[col]; ok {
		st.NumberFormat = format
	}
	for _, cf := range t.ConditionalFills {
		if cf.matches(col, v) {
			st.Fill = cf.Fill
			break
		}
	}
	return st
}

func orDefault(name, def string) string {
	if name == "" {
		return def
	}
	return name
}
