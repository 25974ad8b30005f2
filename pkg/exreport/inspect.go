package exreport

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ukaji3/exreport-go/pkg/exreport/models"
	"github.com/ukaji3/exreport-go/pkg/exreport/parser"
	"github.com/xuri/excelize/v2"
)

// layoutProbeColumns is the minimum number of columns probed for widths.
const layoutProbeColumns = 26

// Inspect reopens a saved workbook and reads back its cells, detected tables,
// layout and charts, in sheet order.
func Inspect(path string) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	charts, err := parser.ExtractCharts(path)
	if err != nil {
		return nil, fmt.Errorf("read charts: %w", err)
	}

	wb := &models.WorkbookData{BookName: filepath.Base(path)}
	for _, name := range f.GetSheetList() {
		rows, err := parser.ExtractCells(f, name)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}

		tables, err := parser.DetectTables(f, name, parser.DefaultTableParams())
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}

		layout, err := parser.ExtractLayout(f, name, max(maxColumn(rows), layoutProbeColumns))
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}

		wb.Sheets = append(wb.Sheets, models.SheetData{
			Name:            name,
			Rows:            rows,
			Charts:          charts[name],
			TableCandidates: tables,
			Layout:          layout,
		})
	}

	return wb, nil
}

// maxColumn returns the widest column index present in rows.
func maxColumn(rows []models.CellRow) int {
	maxCol := 0
	for _, row := range rows {
		for key := range row.C {
			if col, err := strconv.Atoi(key); err == nil && col > maxCol {
				maxCol = col
			}
		}
	}
	return maxCol
}
