package exreport

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Fill colours shared by the standard presets and status rules.
const (
	FillHeader    = "#1E40AF"
	FillAlternate = "#F3F4F6"
	FillHighlight = "#DCFCE7"
	FillInput     = "#FEF3C7"
	FillSection   = "#D9E2F3"
	FillReady     = "#C6EFCE"
	FillPending   = "#FFEB9C"
	FillConfirm   = "#BDD7EE"
	FillPartial   = "#FCE4D6"
)

// Style preset names registered on every builder.
const (
	StyleTitle     = "title"
	StyleSubtitle  = "subtitle"
	StyleSubheader = "subheader"
	StyleSection   = "section"
	StyleHeader    = "header"
	StyleBody      = "body"
	StyleWrap      = "wrap"
	StyleNote      = "note"
	StyleHighlight = "highlight"
	StyleInput     = "input"
)

const borderColor = "#D1D5DB"

// Style describes the look of a cell. Style is comparable so identical
// styles share one entry in the workbook's style table.
type Style struct {
	FontFamily   string
	FontSize     float64
	Bold         bool
	Italic       bool
	FontColor    string
	Fill         string
	Border       bool
	BorderColor  string
	Horizontal   string // left, center, right
	Vertical     string // top, center, bottom
	Wrap         bool
	NumberFormat string // e.g. "£#,##0", "0%"
}

// WithFill returns a copy of s with the fill colour replaced.
func (s Style) WithFill(color string) Style {
	s.Fill = color
	return s
}

// WithNumberFormat returns a copy of s with the number format replaced.
func (s Style) WithNumberFormat(format string) Style {
	s.NumberFormat = format
	return s
}

// WithBold returns a copy of s in bold.
func (s Style) WithBold() Style {
	s.Bold = true
	return s
}

// toExcelize converts the style to the spreadsheet library's representation.
func (s Style) toExcelize() *excelize.Style {
	out := &excelize.Style{}

	if s.FontFamily != "" || s.FontSize != 0 || s.Bold || s.Italic || s.FontColor != "" {
		out.Font = &excelize.Font{
			Family: s.FontFamily,
			Size:   s.FontSize,
			Bold:   s.Bold,
			Italic: s.Italic,
			Color:  normalizeColor(s.FontColor),
		}
	}

	if s.Fill != "" {
		out.Fill = excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{normalizeColor(s.Fill)},
		}
	}

	if s.Border {
		color := normalizeColor(s.BorderColor)
		for _, side := range []string{"left", "right", "top", "bottom"} {
			out.Border = append(out.Border, excelize.Border{Type: side, Color: color, Style: 1})
		}
	}

	if s.Horizontal != "" || s.Vertical != "" || s.Wrap {
		out.Alignment = &excelize.Alignment{
			Horizontal: s.Horizontal,
			Vertical:   s.Vertical,
			WrapText:   s.Wrap,
		}
	}

	if s.NumberFormat != "" {
		format := s.NumberFormat
		out.CustomNumFmt = &format
	}

	return out
}

// normalizeColor returns an upper-case "#RRGGBB" colour, or "" for none.
func normalizeColor(c string) string {
	c = strings.TrimSpace(c)
	if c == "" {
		return ""
	}
	return "#" + strings.ToUpper(strings.TrimPrefix(c, "#"))
}

// DefaultStyles returns the standard preset table.
func DefaultStyles() map[string]Style {
	body := Style{FontFamily: "Calibri", FontSize: 10, Border: true, BorderColor: borderColor}
	return map[string]Style{
		StyleTitle:     {FontFamily: "Calibri", FontSize: 20, Bold: true, FontColor: "#1E40AF"},
		StyleSubtitle:  {FontFamily: "Calibri", FontSize: 14, Bold: true},
		StyleSubheader: {FontFamily: "Calibri", FontSize: 13, Bold: true, FontColor: "#1E40AF"},
		StyleSection:   {FontFamily: "Calibri", FontSize: 11, Bold: true, FontColor: "#374151"},
		StyleHeader: {
			FontFamily: "Calibri", FontSize: 11, Bold: true, FontColor: "#FFFFFF",
			Fill: FillHeader, Border: true, BorderColor: borderColor, Horizontal: "center",
			Vertical: "center", Wrap: true,
		},
		StyleBody:      body,
		StyleWrap:      Style{FontFamily: "Calibri", FontSize: 10, Border: true, BorderColor: borderColor, Vertical: "top", Wrap: true},
		StyleNote:      {FontFamily: "Calibri", FontSize: 9, FontColor: "#6B7280"},
		StyleHighlight: body.WithFill(FillHighlight).WithBold(),
		StyleInput:     body.WithFill(FillInput),
	}
}

// StatusFills returns the standard questionnaire status colour rules.
// A column of 0 matches the value in any column.
func StatusFills(column int) []ConditionalFill {
	return []ConditionalFill{
		{Match: "Ready", Fill: FillReady, Column: column},
		{Match: "Pending", Fill: FillPending, Column: column},
		{Match: "Confirm", Fill: FillConfirm, Column: column},
		{Match: "Partial", Fill: FillPartial, Column: column},
	}
}

// styleSheet caches style ids per distinct Style for one workbook.
type styleSheet struct {
	presets map[string]Style
	ids     map[Style]int
}

func newStyleSheet() *styleSheet {
	return &styleSheet{
		presets: DefaultStyles(),
		ids:     make(map[Style]int),
	}
}

// lookup resolves a preset name. The empty name is the zero Style.
func (ss *styleSheet) lookup(name string) (Style, error) {
	if name == "" {
		return Style{}, nil
	}
	st, ok := ss.presets[name]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return st, nil
}

// id returns the workbook style id for st, registering it on first use.
func (ss *styleSheet) id(f *excelize.File, st Style) (int, error) {
	if id, ok := ss.ids[st]; ok {
		return id, nil
	}
	id, err := f.NewStyle(st.toExcelize())
	if err != nil {
		return 0, err
	}
	ss.ids[st] = id
	return id, nil
}
