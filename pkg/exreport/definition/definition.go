// Package definition loads YAML report definitions and renders them onto a
// report builder.
package definition

// Report is a complete workbook definition.
type Report struct {
	// Name identifies the report; it defaults to the file name.
	Name string `yaml:"name"`
	// Output is the workbook file name; it defaults to Name + ".xlsx".
	Output string `yaml:"output,omitempty"`
	// Styles adds or replaces named style presets.
	Styles map[string]Style `yaml:"styles,omitempty"`
	// Sheets in workbook order.
	Sheets []Sheet `yaml:"sheets"`
}

// Style is the YAML form of a named style preset.
type Style struct {
	Font        string  `yaml:"font,omitempty"`
	Size        float64 `yaml:"size,omitempty"`
	Bold        bool    `yaml:"bold,omitempty"`
	Italic      bool    `yaml:"italic,omitempty"`
	Color       string  `yaml:"color,omitempty"`
	Fill        string  `yaml:"fill,omitempty"`
	Border      bool    `yaml:"border,omitempty"`
	BorderColor string  `yaml:"border_color,omitempty"`
	Align       string  `yaml:"align,omitempty"`
	VAlign      string  `yaml:"valign,omitempty"`
	Wrap        bool    `yaml:"wrap,omitempty"`
	Format      string  `yaml:"format,omitempty"`
}

// Sheet lists the regions of one worksheet. Regions are written in the order
// titles, lines, cells, tables, charts.
type Sheet struct {
	Name   string    `yaml:"name"`
	Freeze int       `yaml:"freeze,omitempty"`
	Widths []float64 `yaml:"widths,omitempty"`
	Titles []Title   `yaml:"titles,omitempty"`
	Lines  []Lines   `yaml:"lines,omitempty"`
	Cells  []Cell    `yaml:"cells,omitempty"`
	Tables []Table   `yaml:"tables,omitempty"`
	Charts []Chart   `yaml:"charts,omitempty"`
}

// Title is a styled heading, optionally merged across columns.
type Title struct {
	Cell    string `yaml:"cell"`
	Text    string `yaml:"text"`
	Style   string `yaml:"style,omitempty"`
	MergeTo string `yaml:"merge_to,omitempty"` // column letter, e.g. "F"
}

// Lines is a block of text lines written downwards from Cell.
type Lines struct {
	Cell  string   `yaml:"cell"`
	Style string   `yaml:"style,omitempty"`
	Text  []string `yaml:"text"`
}

// Cell is one free-standing value.
type Cell struct {
	Cell  string `yaml:"cell"`
	Value any    `yaml:"value"`
	Style string `yaml:"style,omitempty"`
	Fill  string `yaml:"fill,omitempty"`
}

// Table is the YAML form of a table region.
type Table struct {
	// ID lets charts on the same sheet refer to the table's columns.
	ID           string         `yaml:"id,omitempty"`
	Anchor       string         `yaml:"anchor"`
	Headers      []string       `yaml:"headers"`
	Rows         [][]any        `yaml:"rows"`
	HeaderStyle  string         `yaml:"header_style,omitempty"`
	BodyStyle    string         `yaml:"body_style,omitempty"`
	AltFill      string         `yaml:"alt_fill,omitempty"`
	Formats      map[int]string `yaml:"formats,omitempty"`
	Highlight    []int          `yaml:"highlight_rows,omitempty"`
	StatusColumn int            `yaml:"status_column,omitempty"`
	Fills        []Fill         `yaml:"fills,omitempty"`
}

// Fill is a conditional fill rule.
type Fill struct {
	Match  string `yaml:"match"`
	Fill   string `yaml:"fill"`
	Column int    `yaml:"column,omitempty"`
}

// Chart is the YAML form of a chart attachment.
type Chart struct {
	Kind           string    `yaml:"kind"`
	Anchor         string    `yaml:"anchor"`
	Data           RangeRef  `yaml:"data"`
	Categories     *RangeRef `yaml:"categories,omitempty"`
	TitlesFromData bool      `yaml:"titles_from_data,omitempty"`
	Title          string    `yaml:"title,omitempty"`
	XAxis          string    `yaml:"x_axis,omitempty"`
	YAxis          string    `yaml:"y_axis,omitempty"`
	NumberFormat   string    `yaml:"number_format,omitempty"`
	HideLegend     bool      `yaml:"hide_legend,omitempty"`
	Labels         string    `yaml:"labels,omitempty"`
	Width          float64   `yaml:"width,omitempty"`
	Height         float64   `yaml:"height,omitempty"`
}

// RangeRef points at cells either by table column or by an explicit range.
type RangeRef struct {
	Table string `yaml:"table,omitempty"`
	// Column is the 1-based table column.
	Column int `yaml:"column,omitempty"`
	// Header includes the header cell above the column.
	Header bool `yaml:"header,omitempty"`
	// Rows limits the range to the first N body rows when positive.
	Rows int `yaml:"rows,omitempty"`
	// Range is an A1-style range such as "B6:B12".
	Range string `yaml:"range,omitempty"`
}
