package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ukaji3/exreport-go/pkg/exreport/models"
)

func sampleWorkbook() *models.WorkbookData {
	return &models.WorkbookData{
		BookName: "pricing.xlsx",
		Sheets: []models.SheetData{{
			Name: "Summary",
			Rows: []models.CellRow{
				{R: 1, C: map[string]interface{}{"1": "Tier", "2": "Monthly"}},
				{R: 2, C: map[string]interface{}{"1": "Standard", "2": int64(250)}, F: map[string]string{"3": "=B2*24"}},
			},
			Charts: []models.Chart{{
				ChartType: "Column",
				Title:     "Monthly Cost",
				From:      "D2",
				Series:    []models.ChartSeries{{YRange: "Summary!$B$2:$B$2", XRange: "Summary!$A$2:$A$2"}},
			}},
			TableCandidates: []string{"A1:B2"},
			Layout: models.Layout{
				ColumnWidths: map[string]float64{"B": 12, "A": 25},
				FrozenRows:   1,
				MergedCells:  []string{"A1:F1"},
			},
		}},
	}
}

func TestToJSON(t *testing.T) {
	t.Parallel()

	data, err := ToJSON(sampleWorkbook(), false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if decoded["book_name"] != "pricing.xlsx" {
		t.Errorf("Expected book_name pricing.xlsx, got %v", decoded["book_name"])
	}

	pretty, err := ToJSON(sampleWorkbook(), true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !bytes.Contains(pretty, []byte("\n  \"sheets\"")) {
		t.Errorf("Expected indented output, got %s", pretty)
	}
}

func TestWriteMarkdown(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, sampleWorkbook()); err != nil {
		t.Fatalf("WriteMarkdown failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# pricing.xlsx",
		"## Summary",
		"Frozen rows: 1",
		"Column widths: A=25, B=12",
		"Merged: A1:F1",
		"Monthly Cost",
		"`Summary!$B$2:$B$2`",
		"`=B2*24`",
		"Standard",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected markdown to contain %q\n%s", want, out)
		}
	}
}
