package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractCharts(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet("Cost Data"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	sheet := "Cost Data"
	f.SetSheetRow(sheet, "A1", &[]interface{}{"Category", "Cost"})
	f.SetSheetRow(sheet, "A2", &[]interface{}{"Competitor Stack", 530})
	f.SetSheetRow(sheet, "A3", &[]interface{}{"Standard", 250})
	f.SetSheetRow(sheet, "A4", &[]interface{}{"Professional", 300})

	err := f.AddChart(sheet, "D2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       "'Cost Data'!$B$1",
			Categories: "'Cost Data'!$A$2:$A$4",
			Values:     "'Cost Data'!$B$2:$B$4",
		}},
		Title: []excelize.RichTextRun{{Text: "Monthly Cost"}},
		XAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Option"}}},
		YAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Per month"}}},
	})
	if err != nil {
		t.Fatalf("AddChart failed: %v", err)
	}
	err = f.AddChart(sheet, "D20", &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{{
			Categories: "'Cost Data'!$A$2:$A$4",
			Values:     "'Cost Data'!$B$2:$B$4",
		}},
		Title: []excelize.RichTextRun{{Text: "Breakdown"}},
	})
	if err != nil {
		t.Fatalf("AddChart failed: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "charts.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	charts, err := ExtractCharts(tmpFile)
	if err != nil {
		t.Fatalf("ExtractCharts failed: %v", err)
	}

	got := charts[sheet]
	if len(got) != 2 {
		t.Fatalf("Expected 2 charts on %q, got %d (%v)", sheet, len(got), charts)
	}

	col := got[0]
	if col.ChartType != "Column" {
		t.Errorf("Expected chart type Column, got %q", col.ChartType)
	}
	if col.Title != "Monthly Cost" {
		t.Errorf("Expected title 'Monthly Cost', got %q", col.Title)
	}
	if col.XAxisTitle != "Option" || col.YAxisTitle != "Per month" {
		t.Errorf("Unexpected axis titles %q / %q", col.XAxisTitle, col.YAxisTitle)
	}
	if col.From != "D2" {
		t.Errorf("Expected anchor D2, got %q", col.From)
	}
	if len(col.Series) != 1 {
		t.Fatalf("Expected 1 series, got %d", len(col.Series))
	}
	s := col.Series[0]
	if s.NameRange != "'Cost Data'!$B$1" {
		t.Errorf("Unexpected name range %q", s.NameRange)
	}
	if s.XRange != "'Cost Data'!$A$2:$A$4" {
		t.Errorf("Unexpected category range %q", s.XRange)
	}
	if s.YRange != "'Cost Data'!$B$2:$B$4" {
		t.Errorf("Unexpected value range %q", s.YRange)
	}

	if got[1].ChartType != "Pie" {
		t.Errorf("Expected chart type Pie, got %q", got[1].ChartType)
	}
}

func TestRelsPathFor(t *testing.T) {
	tests := []struct {
		part     string
		expected string
	}{
		{"xl/worksheets/sheet1.xml", "xl/worksheets/_rels/sheet1.xml.rels"},
		{"xl/drawings/drawing2.xml", "xl/drawings/_rels/drawing2.xml.rels"},
	}

	for _, tt := range tests {
		if got := relsPathFor(tt.part); got != tt.expected {
			t.Errorf("relsPathFor(%q) = %q, expected %q", tt.part, got, tt.expected)
		}
	}
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		baseDir  string
		expected string
	}{
		{"../drawings/drawing1.xml", "xl/drawings", "xl/drawings/drawing1.xml"},
		{"worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
		{"/xl/charts/chart1.xml", "xl/charts", "xl/charts/chart1.xml"},
	}

	for _, tt := range tests {
		if got := resolveRelativePath(tt.target, tt.baseDir); got != tt.expected {
			t.Errorf("resolveRelativePath(%q, %q) = %q, expected %q", tt.target, tt.baseDir, got, tt.expected)
		}
	}
}
