package exreport

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Cell is a 1-based (row, column) position on a sheet.
type Cell struct {
	Row int
	Col int
}

// At returns the cell at row and col.
func At(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// ParseCell parses an A1-style cell name such as "D16".
func ParseCell(name string) (Cell, error) {
	col, row, err := excelize.CellNameToCoordinates(strings.ReplaceAll(name, "$", ""))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %v", ErrInvalidCell, err)
	}
	return Cell{Row: row, Col: col}, nil
}

// Valid reports whether both indexes are at least 1.
func (c Cell) Valid() bool {
	return c.Row >= 1 && c.Col >= 1
}

// Name returns the A1-style name of the cell.
func (c Cell) Name() string {
	name, err := excelize.CoordinatesToCellName(c.Col, c.Row)
	if err != nil {
		return ""
	}
	return name
}

// Offset returns the cell moved by dr rows and dc columns.
func (c Cell) Offset(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

func (c Cell) validate() error {
	if !c.Valid() {
		return fmt.Errorf("%w: row %d, column %d", ErrInvalidCell, c.Row, c.Col)
	}
	return nil
}

// Ref is a rectangular cell range, optionally qualified by a sheet name.
// Bounds are 1-based and inclusive.
type Ref struct {
	Sheet  string
	MinRow int
	MinCol int
	MaxRow int
	MaxCol int
}

// Range returns the reference spanning two corner cells on a sheet.
func Range(sheet string, from, to Cell) Ref {
	return Ref{
		Sheet:  sheet,
		MinRow: min(from.Row, to.Row),
		MinCol: min(from.Col, to.Col),
		MaxRow: max(from.Row, to.Row),
		MaxCol: max(from.Col, to.Col),
	}
}

// ColumnRange returns rows first..last of a single column.
func ColumnRange(sheet string, col, first, last int) Ref {
	return Range(sheet, Cell{Row: first, Col: col}, Cell{Row: last, Col: col})
}

// IsZero reports whether the reference was never set.
func (r Ref) IsZero() bool {
	return r == Ref{}
}

// Valid reports whether the bounds describe at least one cell.
func (r Ref) Valid() bool {
	return r.MinRow >= 1 && r.MinCol >= 1 && r.MaxRow >= r.MinRow && r.MaxCol >= r.MinCol
}

// Rows returns the number of rows covered.
func (r Ref) Rows() int {
	return r.MaxRow - r.MinRow + 1
}

// Cols returns the number of columns covered.
func (r Ref) Cols() int {
	return r.MaxCol - r.MinCol + 1
}

// Column returns the single-column slice of r at the given absolute column.
func (r Ref) Column(col int) Ref {
	return Ref{Sheet: r.Sheet, MinRow: r.MinRow, MinCol: col, MaxRow: r.MaxRow, MaxCol: col}
}

// WithSheet returns r qualified by sheet when it has no sheet yet.
func (r Ref) WithSheet(sheet string) Ref {
	if r.Sheet == "" {
		r.Sheet = sheet
	}
	return r
}

// String renders an absolute reference, e.g. 'Competitor Pricing'!$A$7:$A$12.
// A single-cell range renders as one cell.
func (r Ref) String() string {
	from, _ := excelize.CoordinatesToCellName(r.MinCol, r.MinRow, true)
	area := from
	if r.MaxRow != r.MinRow || r.MaxCol != r.MinCol {
		to, _ := excelize.CoordinatesToCellName(r.MaxCol, r.MaxRow, true)
		area = from + ":" + to
	}
	if r.Sheet == "" {
		return area
	}
	return QuoteSheetName(r.Sheet) + "!" + area
}

// r1c1Name matches names read as R1C1-style references: R, C, R2, C3, R1C1.
var r1c1Name = regexp.MustCompile(`(?i)^(R\d*|C\d*|R\d*C\d*)$`)

// QuoteSheetName quotes a sheet name for use in formulas and chart references
// when it contains anything other than letters, digits, underscores or dots,
// or when it could be read as a cell reference or a boolean.
func QuoteSheetName(name string) string {
	plain := name != ""
	for _, r := range name {
		if !(r == '_' || r == '.' || r >= '0' && r <= '9' || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z') {
			plain = false
			break
		}
	}
	if plain && !(name[0] >= '0' && name[0] <= '9') && !looksLikeReference(name) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func looksLikeReference(name string) bool {
	if _, _, err := excelize.CellNameToCoordinates(name); err == nil {
		return true
	}
	if strings.EqualFold(name, "TRUE") || strings.EqualFold(name, "FALSE") {
		return true
	}
	return r1c1Name.MatchString(name)
}

// ParseRef parses an A1-style range such as "B6:B12" or
// "'Competitor Pricing'!$A$7:$A$12". A single cell is a one-cell range.
func ParseRef(s string) (Ref, error) {
	var sheet string
	area := s
	if i := strings.LastIndex(s, "!"); i >= 0 {
		sheet, area = s[:i], s[i+1:]
		if len(sheet) >= 2 && sheet[0] == '\'' && sheet[len(sheet)-1] == '\'' {
			sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
		}
	}

	from, to, found := strings.Cut(area, ":")
	start, err := ParseCell(from)
	if err != nil {
		return Ref{}, err
	}
	end := start
	if found {
		if end, err = ParseCell(to); err != nil {
			return Ref{}, err
		}
	}
	return Range(sheet, start, end), nil
}
