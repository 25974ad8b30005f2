package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/exreport-go/pkg/exreport/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells extracts cell data from a sheet.
// Values are read raw (number formats are not applied). Formula cells are
// reported in CellRow.F even when the workbook carries no cached result.
// It returns a slice of CellRow containing non-empty rows.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	maxRow, maxCol := sheetExtent(f, sheetName, rows)

	var result []models.CellRow
	for rowNum := 1; rowNum <= maxRow; rowNum++ {
		var row []string
		if rowNum <= len(rows) {
			row = rows[rowNum-1]
		}
		cellMap := make(map[string]interface{})
		formulaMap := make(map[string]string)

		for colNum := 1; colNum <= maxCol; colNum++ {
			colStr := strconv.Itoa(colNum) // 1-based column index as string

			cellName, err := excelize.CoordinatesToCellName(colNum, rowNum)
			if err != nil {
				return nil, err
			}
			formula, err := f.GetCellFormula(sheetName, cellName)
			if err == nil && formula != "" {
				formulaMap[colStr] = "=" + strings.TrimPrefix(formula, "=")
			}

			if colNum <= len(row) && row[colNum-1] != "" {
				cellMap[colStr] = parseValue(row[colNum-1])
			}
		}

		if len(cellMap) == 0 && len(formulaMap) == 0 {
			continue
		}
		cellRow := models.CellRow{
			R: rowNum,
			C: cellMap,
		}
		if len(formulaMap) > 0 {
			cellRow.F = formulaMap
		}
		result = append(result, cellRow)
	}

	return result, nil
}

// sheetExtent returns the last used row and column, preferring the sheet
// dimension record and falling back to the extent of the value grid.
func sheetExtent(f *excelize.File, sheetName string, rows [][]string) (maxRow, maxCol int) {
	maxRow = len(rows)
	for _, row := range rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}

	dim, err := f.GetSheetDimension(sheetName)
	if err != nil || dim == "" {
		return maxRow, maxCol
	}
	parts := strings.Split(dim, ":")
	col, row, err := excelize.CellNameToCoordinates(parts[len(parts)-1])
	if err != nil {
		return maxRow, maxCol
	}
	return max(maxRow, row), max(maxCol, col)
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
