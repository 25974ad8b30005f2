package definition

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ukaji3/exreport-go/pkg/exreport"
	"github.com/xuri/excelize/v2"
)

// Build renders r into a new workbook saved as dir/r.Output and returns the
// saved path.
func Build(r *Report, dir string, opts ...exreport.Option) (string, error) {
	b := exreport.New(opts...)
	if err := Render(r, b); err != nil {
		_ = b.Close()
		return "", fmt.Errorf("report %q: %w", r.Name, err)
	}

	path := filepath.Join(dir, r.Output)
	if err := b.Save(path); err != nil {
		_ = b.Close()
		return "", fmt.Errorf("report %q: %w", r.Name, err)
	}
	return path, nil
}

// Render adds every sheet of r to b.
func Render(r *Report, b *exreport.Builder) error {
	for name, st := range r.Styles {
		b.RegisterStyle(name, st.toStyle())
	}
	for _, def := range r.Sheets {
		sh, err := b.AddSheet(def.Name)
		if err != nil {
			return err
		}
		if err := renderSheet(b, sh, def); err != nil {
			return err
		}
	}
	return nil
}

func renderSheet(b *exreport.Builder, sh *exreport.Sheet, def Sheet) error {
	for _, t := range def.Titles {
		at, err := exreport.ParseCell(t.Cell)
		if err != nil {
			return err
		}
		mergeTo := 0
		if t.MergeTo != "" {
			if mergeTo, err = excelize.ColumnNameToNumber(t.MergeTo); err != nil {
				return err
			}
		}
		if err := sh.WriteTitle(at, t.Text, t.Style, mergeTo); err != nil {
			return err
		}
	}

	for _, l := range def.Lines {
		at, err := exreport.ParseCell(l.Cell)
		if err != nil {
			return err
		}
		if err := sh.WriteLines(at, l.Text, l.Style); err != nil {
			return err
		}
	}

	for _, c := range def.Cells {
		if err := renderCell(b, sh, c); err != nil {
			return err
		}
	}

	placements := make(map[string]exreport.Placement)
	for _, t := range def.Tables {
		table, err := t.toTable()
		if err != nil {
			return fmt.Errorf("sheet %q: %w", def.Name, err)
		}
		p, err := sh.WriteTable(table)
		if err != nil {
			return err
		}
		if t.ID != "" {
			placements[t.ID] = p
		}
	}

	for _, c := range def.Charts {
		spec, at, err := c.toSpec(placements)
		if err != nil {
			return fmt.Errorf("sheet %q: %w", def.Name, err)
		}
		if err := sh.AttachChart(spec, at); err != nil {
			return err
		}
	}

	if len(def.Widths) > 0 {
		if err := sh.SetColumnWidthList(def.Widths...); err != nil {
			return err
		}
	}
	if def.Freeze > 0 {
		if err := sh.FreezeHeader(def.Freeze); err != nil {
			return err
		}
	}
	return nil
}

func renderCell(b *exreport.Builder, sh *exreport.Sheet, c Cell) error {
	at, err := exreport.ParseCell(c.Cell)
	if err != nil {
		return err
	}
	v, err := decodeValue(c.Value)
	if err != nil {
		return fmt.Errorf("cell %s: %w", c.Cell, err)
	}
	if c.Fill == "" {
		return sh.SetCell(at, v, c.Style)
	}
	st, err := b.Style(c.Style)
	if err != nil {
		return err
	}
	return sh.SetCellStyle(at, v, st.WithFill(c.Fill))
}

func (t Table) toTable() (exreport.Table, error) {
	anchor, err := exreport.ParseCell(t.Anchor)
	if err != nil {
		return exreport.Table{}, err
	}

	rows := make([][]any, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = make([]any, len(row))
		for j, x := range row {
			if rows[i][j], err = decodeValue(x); err != nil {
				return exreport.Table{}, fmt.Errorf("table at %s row %d column %d: %w", t.Anchor, i, j+1, err)
			}
		}
	}

	fills := make([]exreport.ConditionalFill, 0, len(t.Fills)+4)
	for _, f := range t.Fills {
		fills = append(fills, exreport.ConditionalFill{Match: f.Match, Fill: f.Fill, Column: f.Column})
	}
	if t.StatusColumn > 0 {
		fills = append(fills, exreport.StatusFills(t.StatusColumn)...)
	}

	return exreport.Table{
		Anchor:           anchor,
		Headers:          t.Headers,
		Rows:             rows,
		HeaderStyle:      t.HeaderStyle,
		BodyStyle:        t.BodyStyle,
		AltFill:          t.AltFill,
		ColumnFormats:    t.Formats,
		HighlightRows:    t.Highlight,
		ConditionalFills: fills,
	}, nil
}

func (c Chart) toSpec(placements map[string]exreport.Placement) (exreport.ChartSpec, exreport.Cell, error) {
	at, err := exreport.ParseCell(c.Anchor)
	if err != nil {
		return exreport.ChartSpec{}, at, err
	}
	data, err := c.Data.resolve(placements)
	if err != nil {
		return exreport.ChartSpec{}, at, err
	}
	var cats exreport.Ref
	if c.Categories != nil {
		if cats, err = c.Categories.resolve(placements); err != nil {
			return exreport.ChartSpec{}, at, err
		}
	}

	return exreport.ChartSpec{
		Kind:           exreport.ChartKind(strings.ToLower(c.Kind)),
		Data:           data,
		Categories:     cats,
		TitlesFromData: c.TitlesFromData,
		Title:          c.Title,
		XAxisTitle:     c.XAxis,
		YAxisTitle:     c.YAxis,
		NumberFormat:   c.NumberFormat,
		HideLegend:     c.HideLegend,
		DataLabels:     exreport.DataLabels(c.Labels),
		Width:          c.Width,
		Height:         c.Height,
	}, at, nil
}

// resolve turns a table column or explicit range into a Ref. Explicit
// ranges without a sheet refer to the chart's own sheet.
func (rr RangeRef) resolve(placements map[string]exreport.Placement) (exreport.Ref, error) {
	if rr.Range != "" {
		return exreport.ParseRef(rr.Range)
	}

	p, ok := placements[rr.Table]
	if !ok {
		return exreport.Ref{}, fmt.Errorf("%w: %q", ErrUnknownTable, rr.Table)
	}
	ref := p.Column(rr.Column)
	if rr.Rows > 0 {
		ref.MaxRow = min(ref.MaxRow, ref.MinRow+rr.Rows-1)
	}
	if rr.Header {
		ref.MinRow = p.HeaderRow
	}
	return ref, nil
}

// decodeValue maps YAML scalars and tagged maps onto cell values:
//
//	250                      number
//	"=B{row}*24"             row formula
//	{percent: 0.05}          percentage
//	{text: "=literal"}       text, even with a leading "="
//	{formula: "SUM(B2:B9)"}  formula
func decodeValue(x any) (any, error) {
	switch v := x.(type) {
	case bool:
		return exreport.Text(strings.ToUpper(strconv.FormatBool(v))), nil
	case string:
		if strings.HasPrefix(v, "=") && (strings.Contains(v, "{row}") || strings.Contains(v, "{prev}")) {
			return exreport.RowFormula(v), nil
		}
		return v, nil
	case map[string]any:
		if len(v) != 1 {
			return nil, fmt.Errorf("%w: value map needs exactly one key", exreport.ErrUnsupportedValue)
		}
		for key, inner := range v {
			switch key {
			case "percent":
				n, ok := toFloat(inner)
				if !ok {
					return nil, fmt.Errorf("%w: percent %v", exreport.ErrUnsupportedValue, inner)
				}
				return exreport.Percent(n), nil
			case "text":
				return exreport.Text(fmt.Sprint(inner)), nil
			case "formula":
				return exreport.RowFormula(fmt.Sprint(inner)), nil
			}
			return nil, fmt.Errorf("%w: unknown value key %q", exreport.ErrUnsupportedValue, key)
		}
	}
	return x, nil
}

func toFloat(x any) (float64, bool) {
	switch v := x.(type) {
	case int:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

func (s Style) toStyle() exreport.Style {
	return exreport.Style{
		FontFamily:   s.Font,
		FontSize:     s.Size,
		Bold:         s.Bold,
		Italic:       s.Italic,
		FontColor:    s.Color,
		Fill:         s.Fill,
		Border:       s.Border,
		BorderColor:  s.BorderColor,
		Horizontal:   s.Align,
		Vertical:     s.VAlign,
		Wrap:         s.Wrap,
		NumberFormat: s.Format,
	}
}
