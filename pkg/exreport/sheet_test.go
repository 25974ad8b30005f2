package exreport

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestSheetLayoutReadBack(t *testing.T) {
	t.Parallel()

	b := New()
	s, err := b.AddSheet("Questions")
	if err != nil {
		t.Fatalf("AddSheet failed: %v", err)
	}

	if err := s.WriteTitle(At(1, 1), "Cyber Essentials Questionnaire", StyleTitle, 6); err != nil {
		t.Fatalf("WriteTitle failed: %v", err)
	}
	if _, err := s.WriteTable(Table{
		Anchor:  At(2, 1),
		Headers: []string{"ID", "Section", "Question", "Answer", "Status", "Notes"},
		Rows: [][]any{
			{"A1.1", "Org", "Name?", "Acme", "Ready", ""},
			{"A1.2", "Org", "Address?", "", "Pending", "Check"},
		},
		BodyStyle:        StyleWrap,
		ConditionalFills: StatusFills(5),
	}); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}
	if err := s.SetColumnWidthList(18, 8, 50, 40, 15, 60); err != nil {
		t.Fatalf("SetColumnWidthList failed: %v", err)
	}
	if err := s.FreezeHeader(3); err != nil {
		t.Fatalf("FreezeHeader failed: %v", err)
	}
	if s.FrozenRows() != 2 {
		t.Errorf("Expected 2 frozen rows, got %d", s.FrozenRows())
	}

	path := filepath.Join(t.TempDir(), "questions.xlsx")
	if err := b.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	wb, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	sheet, ok := wb.Sheet("Questions")
	if !ok {
		t.Fatal("Sheet Questions not found")
	}

	layout := sheet.Layout
	if layout.FrozenRows != 2 {
		t.Errorf("Expected 2 frozen rows, got %d", layout.FrozenRows)
	}
	for col, expected := range map[string]float64{"A": 18, "C": 50, "F": 60} {
		if got := layout.ColumnWidths[col]; got != expected {
			t.Errorf("Column %s: expected width %v, got %v", col, expected, got)
		}
	}
	if len(layout.MergedCells) != 1 || layout.MergedCells[0] != "A1:F1" {
		t.Errorf("Expected merged [A1:F1], got %v", layout.MergedCells)
	}
	if len(sheet.Rows) != 4 || sheet.Rows[0].C["1"] != "Cyber Essentials Questionnaire" {
		t.Errorf("Unexpected rows %v", sheet.Rows)
	}
}

func TestFreezeHeaderInvalid(t *testing.T) {
	t.Parallel()

	b := New()
	defer b.Close()
	s, _ := b.AddSheet("S")

	for _, row := range []int{-1, 0, 1} {
		if err := s.FreezeHeader(row); !errors.Is(err, ErrInvalidFreeze) {
			t.Errorf("FreezeHeader(%d): expected ErrInvalidFreeze, got %v", row, err)
		}
	}
}

func TestSetColumnWidthsInvalid(t *testing.T) {
	t.Parallel()

	b := New()
	defer b.Close()
	s, _ := b.AddSheet("S")

	if err := s.SetColumnWidths(map[int]float64{0: 10}); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("Expected ErrInvalidCell, got %v", err)
	}
}

func TestSetCellValues(t *testing.T) {
	t.Parallel()

	b := New()
	defer b.Close()
	s, _ := b.AddSheet("Summary")

	tests := []struct {
		name     string
		cell     Cell
		value    any
		style    string
		expected string
		formula  string
	}{
		{"text", At(1, 1), "Status", StyleSection, "Status", ""},
		{"number", At(2, 1), 530.5, "", "530.5", ""},
		{"percent", At(3, 1), Percent(0.05), "", "0.05", ""},
		{"formula", At(4, 1), "=B28*24", "", "", "B28*24"},
		{"literal equals", At(5, 1), Text("=not a formula"), "", "=not a formula", ""},
	}

	for _, tt := range tests {
		if err := s.SetCell(tt.cell, tt.value, tt.style); err != nil {
			t.Fatalf("%s: SetCell failed: %v", tt.name, err)
		}
		name := tt.cell.Name()
		if tt.formula != "" {
			got, _ := b.file.GetCellFormula("Summary", name)
			if got != tt.formula {
				t.Errorf("%s: expected formula %q, got %q", tt.name, tt.formula, got)
			}
			continue
		}
		got, _ := b.file.GetCellValue("Summary", name, excelize.Options{RawCellValue: true})
		if got != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.expected, got)
		}
	}

	if err := s.SetCell(At(1, 1), "x", "nope"); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("Expected ErrUnknownStyle, got %v", err)
	}
	if err := s.SetCell(At(1, 0), "x", ""); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("Expected ErrInvalidCell, got %v", err)
	}
	if err := s.SetCell(At(1, 1), []int{1}, ""); !errors.Is(err, ErrUnsupportedValue) {
		t.Errorf("Expected ErrUnsupportedValue, got %v", err)
	}
}

func TestWriteLines(t *testing.T) {
	t.Parallel()

	b := New()
	defer b.Close()
	s, _ := b.AddSheet("Notes")

	lines := []string{"Ready: answer confirmed", "Pending: awaiting input", "Confirm: check with IT"}
	if err := s.WriteLines(At(20, 2), lines, StyleNote); err != nil {
		t.Fatalf("WriteLines failed: %v", err)
	}
	for i, line := range lines {
		got, _ := b.file.GetCellValue("Notes", At(20+i, 2).Name())
		if got != line {
			t.Errorf("Line %d: expected %q, got %q", i, line, got)
		}
	}
}
