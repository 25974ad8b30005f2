package parser

import (
	"strings"

	"github.com/ukaji3/exreport-go/pkg/exreport/models"
	"github.com/xuri/excelize/v2"
)

// defaultColWidth is the width excelize reports for columns without an override.
const defaultColWidth = 9.140625

// ExtractLayout reads column widths, frozen panes and merged ranges of a sheet.
// Only the first maxCol columns are probed for explicit widths.
func ExtractLayout(f *excelize.File, sheetName string, maxCol int) (models.Layout, error) {
	var layout models.Layout

	for col := 1; col <= maxCol; col++ {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return layout, err
		}
		width, err := f.GetColWidth(sheetName, name)
		if err != nil {
			return layout, err
		}
		if width != defaultColWidth {
			if layout.ColumnWidths == nil {
				layout.ColumnWidths = make(map[string]float64)
			}
			layout.ColumnWidths[name] = width
		}
	}

	panes, err := f.GetPanes(sheetName)
	if err != nil {
		return layout, err
	}
	if panes.Freeze {
		layout.FrozenRows = panes.YSplit
		layout.FrozenCols = panes.XSplit
	}

	merged, err := f.GetMergeCells(sheetName)
	if err != nil {
		return layout, err
	}
	for _, mc := range merged {
		ref := mc.GetStartAxis() + ":" + mc.GetEndAxis()
		layout.MergedCells = append(layout.MergedCells, strings.ToUpper(ref))
	}

	return layout, nil
}
