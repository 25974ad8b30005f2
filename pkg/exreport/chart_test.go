package exreport

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestAttachChartRecordsRanges(t *testing.T) {
	t.Parallel()

	b := New()
	s, err := b.AddSheet("Competitor Pricing")
	if err != nil {
		t.Fatalf("AddSheet failed: %v", err)
	}

	// Nothing has been written yet; the chart binds to the ranges anyway.
	spec := ChartSpec{
		Kind:           ChartColumn,
		Data:           ColumnRange("", 2, 6, 12),
		Categories:     ColumnRange("", 1, 7, 12),
		TitlesFromData: true,
		Title:          "Monthly Cost Comparison",
		YAxisTitle:     "Per month",
		NumberFormat:   "£#,##0",
		HideLegend:     true,
		Width:          18,
		Height:         10,
	}
	if err := s.AttachChart(spec, At(3, 5)); err != nil {
		t.Fatalf("AttachChart failed: %v", err)
	}

	charts := s.Charts()
	if len(charts) != 1 {
		t.Fatalf("Expected 1 chart, got %d", len(charts))
	}
	if got := charts[0].Data; got != ColumnRange("Competitor Pricing", 2, 6, 12) {
		t.Errorf("Unexpected data range %+v", got)
	}
	if got := charts[0].Categories; got != ColumnRange("Competitor Pricing", 1, 7, 12) {
		t.Errorf("Unexpected categories range %+v", got)
	}

	path := filepath.Join(t.TempDir(), "chart.xlsx")
	if err := b.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	wb, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	sheet, ok := wb.Sheet("Competitor Pricing")
	if !ok {
		t.Fatal("Sheet not found")
	}
	if len(sheet.Charts) != 1 {
		t.Fatalf("Expected 1 chart read back, got %d", len(sheet.Charts))
	}

	chart := sheet.Charts[0]
	if chart.ChartType != "Column" {
		t.Errorf("Expected Column chart, got %q", chart.ChartType)
	}
	if chart.Title != "Monthly Cost Comparison" {
		t.Errorf("Unexpected title %q", chart.Title)
	}
	if chart.From != "E3" {
		t.Errorf("Expected anchor E3, got %q", chart.From)
	}
	if len(chart.Series) != 1 {
		t.Fatalf("Expected 1 series, got %d", len(chart.Series))
	}
	series := chart.Series[0]
	if series.NameRange != "'Competitor Pricing'!$B$6" {
		t.Errorf("Unexpected name range %q", series.NameRange)
	}
	if series.YRange != "'Competitor Pricing'!$B$7:$B$12" {
		t.Errorf("Unexpected value range %q", series.YRange)
	}
	if series.XRange != "'Competitor Pricing'!$A$7:$A$12" {
		t.Errorf("Unexpected category range %q", series.XRange)
	}
}

func TestAttachChartErrors(t *testing.T) {
	t.Parallel()

	b := New()
	defer b.Close()
	s, _ := b.AddSheet("S")

	tests := []struct {
		name   string
		spec   ChartSpec
		at     Cell
		target error
	}{
		{"unknown kind", ChartSpec{Kind: "radar", Data: ColumnRange("", 2, 1, 4)}, At(1, 5), ErrUnknownChartKind},
		{"empty data", ChartSpec{Kind: ChartPie}, At(1, 5), ErrEmptyRange},
		{"title row only", ChartSpec{Kind: ChartLine, Data: ColumnRange("", 2, 1, 1), TitlesFromData: true}, At(1, 5), ErrEmptyRange},
		{"bad categories", ChartSpec{Kind: ChartBar, Data: ColumnRange("", 2, 1, 4), Categories: Ref{MinRow: 3, MinCol: 1, MaxRow: 1, MaxCol: 1}}, At(1, 5), ErrEmptyRange},
		{"bad anchor", ChartSpec{Kind: ChartBar, Data: ColumnRange("", 2, 1, 4)}, At(0, 5), ErrInvalidCell},
	}

	for _, tt := range tests {
		if err := s.AttachChart(tt.spec, tt.at); !errors.Is(err, tt.target) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.target, err)
		}
	}
	if len(s.Charts()) != 0 {
		t.Errorf("Expected no charts recorded, got %d", len(s.Charts()))
	}
}

func TestChartSpecSeries(t *testing.T) {
	t.Parallel()

	spec := ChartSpec{
		Data:           Range("Cost", At(1, 2), At(4, 3)),
		Categories:     ColumnRange("Cost", 1, 2, 4),
		TitlesFromData: true,
	}
	expected := []excelize.ChartSeries{
		{Name: "Cost!$B$1", Categories: "Cost!$A$2:$A$4", Values: "Cost!$B$2:$B$4"},
		{Name: "Cost!$C$1", Categories: "Cost!$A$2:$A$4", Values: "Cost!$C$2:$C$4"},
	}

	got := spec.Series()
	if len(got) != len(expected) {
		t.Fatalf("Expected %d series, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i].Name != expected[i].Name || got[i].Categories != expected[i].Categories || got[i].Values != expected[i].Values {
			t.Errorf("Series %d: expected %+v, got %+v", i, expected[i], got[i])
		}
	}

	spec.TitlesFromData = false
	spec.Categories = Ref{}
	plain := spec.Series()
	if plain[0].Name != "" || plain[0].Categories != "" || plain[0].Values != "Cost!$B$1:$B$4" {
		t.Errorf("Unexpected plain series %+v", plain[0])
	}
}

func TestChartSpecToExcelize(t *testing.T) {
	t.Parallel()

	spec := ChartSpec{
		Kind:       ChartPie,
		Data:       ColumnRange("S", 2, 2, 5),
		Title:      "Breakdown",
		HideLegend: true,
		DataLabels: LabelsPercent,
		Width:      12,
		Height:     15,
	}
	c := spec.toExcelize(excelize.Pie)

	if len(c.Title) != 1 || c.Title[0].Text != "Breakdown" {
		t.Errorf("Unexpected title %+v", c.Title)
	}
	if c.Legend.Position != "none" {
		t.Errorf("Expected hidden legend, got %q", c.Legend.Position)
	}
	if !c.PlotArea.ShowPercent || c.PlotArea.ShowVal {
		t.Errorf("Expected percent labels only, got %+v", c.PlotArea)
	}
	if c.Dimension.Width != 453 || c.Dimension.Height != 566 {
		t.Errorf("Expected 453x566 pixels, got %dx%d", c.Dimension.Width, c.Dimension.Height)
	}
}
