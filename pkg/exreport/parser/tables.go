package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
	MinColumns       int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.5,
		MinNonemptyCells: 4,
		MinColumns:       2,
	}
}

// DetectTables detects table-like regions in a sheet.
// Blocks of consecutive non-empty rows are bounded and kept when dense enough.
// Returns a list of cell ranges (e.g., "A1:D10") in top-to-bottom order.
func DetectTables(f *excelize.File, sheetName string, params TableDetectionParams) ([]string, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	var result []string
	for _, block := range splitRowBlocks(rows) {
		minRow, maxRow, minCol, maxCol := findDataBounds(rows, block[0], block[1])
		if minRow < 0 || maxCol-minCol+1 < params.MinColumns {
			continue
		}

		totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
		nonEmptyCells := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)
		if nonEmptyCells < params.MinNonemptyCells {
			continue
		}
		if float64(nonEmptyCells)/float64(totalCells) < params.DensityMin {
			continue
		}

		startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
		endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
		result = append(result, fmt.Sprintf("%s:%s", startCell, endCell))
	}

	return result, nil
}

// splitRowBlocks returns [first, last] zero-based row index pairs of
// consecutive rows that hold at least one value.
func splitRowBlocks(rows [][]string) [][2]int {
	var blocks [][2]int
	start := -1
	for rowIdx, row := range rows {
		if rowHasData(row) {
			if start < 0 {
				start = rowIdx
			}
			continue
		}
		if start >= 0 {
			blocks = append(blocks, [2]int{start, rowIdx - 1})
			start = -1
		}
	}
	if start >= 0 {
		blocks = append(blocks, [2]int{start, len(rows) - 1})
	}
	return blocks
}

func rowHasData(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return true
		}
	}
	return false
}

// findDataBounds finds the bounding box of non-empty cells between two rows.
func findDataBounds(rows [][]string, fromRow, toRow int) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx := fromRow; rowIdx <= toRow && rowIdx < len(rows); rowIdx++ {
		for colIdx, cell := range rows[rowIdx] {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
