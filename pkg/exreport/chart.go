package exreport

import (
	"fmt"

	"github.com/ukaji3/exreport-go/pkg/exreport/parser"
	"github.com/xuri/excelize/v2"
)

// ChartKind names a supported chart type.
type ChartKind string

const (
	ChartColumn   ChartKind = "column"
	ChartBar      ChartKind = "bar"
	ChartLine     ChartKind = "line"
	ChartPie      ChartKind = "pie"
	ChartDoughnut ChartKind = "doughnut"
)

var chartTypes = map[ChartKind]excelize.ChartType{
	ChartColumn:   excelize.Col,
	ChartBar:      excelize.Bar,
	ChartLine:     excelize.Line,
	ChartPie:      excelize.Pie,
	ChartDoughnut: excelize.Doughnut,
}

// DataLabels selects what is printed on each data point.
type DataLabels string

const (
	LabelsNone     DataLabels = ""
	LabelsValue    DataLabels = "value"
	LabelsPercent  DataLabels = "percent"
	LabelsCategory DataLabels = "category"
)

// ChartSpec describes a chart bound to cell ranges. Each column of Data
// becomes one series.
type ChartSpec struct {
	Kind       ChartKind
	Data       Ref
	Categories Ref
	// TitlesFromData takes each series name from the first row of Data.
	TitlesFromData bool

	Title        string
	XAxisTitle   string
	YAxisTitle   string
	NumberFormat string // value axis, e.g. "£#,##0"
	HideLegend   bool
	DataLabels   DataLabels

	// Width and Height are in centimetres; zero keeps the library default.
	Width  float64
	Height float64
}

// AttachChart anchors a chart at the given cell. Ranges without a sheet name
// refer to this sheet. Range contents are not checked: a range over empty
// cells renders an empty chart.
func (s *Sheet) AttachChart(spec ChartSpec, at Cell) error {
	if s.b.closed {
		return ErrClosed
	}
	if err := at.validate(); err != nil {
		return err
	}
	chartType, ok := chartTypes[spec.Kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownChartKind, spec.Kind)
	}
	if !spec.Data.Valid() {
		return fmt.Errorf("%w: chart data", ErrEmptyRange)
	}
	if spec.TitlesFromData && spec.Data.Rows() < 2 {
		return fmt.Errorf("%w: chart data has only a title row", ErrEmptyRange)
	}
	if !spec.Categories.IsZero() && !spec.Categories.Valid() {
		return fmt.Errorf("%w: chart categories", ErrEmptyRange)
	}

	spec.Data = spec.Data.WithSheet(s.name)
	if !spec.Categories.IsZero() {
		spec.Categories = spec.Categories.WithSheet(s.name)
	}

	if err := s.b.file.AddChart(s.name, at.Name(), spec.toExcelize(chartType)); err != nil {
		return newSheetError(s.name, "chart", err)
	}
	s.charts = append(s.charts, spec)
	s.b.logger.Debug("chart attached", "sheet", s.name, "kind", spec.Kind, "data", spec.Data.String(), "cell", at.Name())
	return nil
}

// Series returns the series the chart is drawn from.
func (spec ChartSpec) Series() []excelize.ChartSeries {
	var cats string
	if !spec.Categories.IsZero() {
		cats = spec.Categories.String()
	}

	series := make([]excelize.ChartSeries, 0, spec.Data.Cols())
	for col := spec.Data.MinCol; col <= spec.Data.MaxCol; col++ {
		values := spec.Data.Column(col)
		var name string
		if spec.TitlesFromData {
			name = Ref{Sheet: values.Sheet, MinRow: values.MinRow, MinCol: col, MaxRow: values.MinRow, MaxCol: col}.String()
			values.MinRow++
		}
		series = append(series, excelize.ChartSeries{
			Name:       name,
			Categories: cats,
			Values:     values.String(),
		})
	}
	return series
}

func (spec ChartSpec) toExcelize(chartType excelize.ChartType) *excelize.Chart {
	c := &excelize.Chart{
		Type:   chartType,
		Series: spec.Series(),
	}
	if spec.Title != "" {
		c.Title = []excelize.RichTextRun{{Text: spec.Title}}
	}
	if spec.XAxisTitle != "" {
		c.XAxis.Title = []excelize.RichTextRun{{Text: spec.XAxisTitle}}
	}
	if spec.YAxisTitle != "" {
		c.YAxis.Title = []excelize.RichTextRun{{Text: spec.YAxisTitle}}
	}
	if spec.NumberFormat != "" {
		c.YAxis.NumFmt = excelize.ChartNumFmt{CustomNumFmt: spec.NumberFormat}
	}
	if spec.HideLegend {
		c.Legend = excelize.ChartLegend{Position: "none"}
	}
	switch spec.DataLabels {
	case LabelsValue:
		c.PlotArea.ShowVal = true
	case LabelsPercent:
		c.PlotArea.ShowPercent = true
	case LabelsCategory:
		c.PlotArea.ShowCatName = true
	}
	if spec.Width > 0 || spec.Height > 0 {
		c.Dimension = excelize.ChartDimension{
			Width:  parser.CentimetresToPixels(spec.Width),
			Height: parser.CentimetresToPixels(spec.Height),
		}
	}
	return c
}
