package models

// SheetData represents structured data for a single sheet.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows contains rows with at least one non-empty cell.
	Rows []CellRow `json:"rows,omitempty"`
	// Charts contains charts attached to the sheet.
	Charts []Chart `json:"charts,omitempty"`
	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty"`
	// Layout holds column widths, frozen panes and merged ranges.
	Layout Layout `json:"layout"`
}

// Layout describes the display settings of a sheet.
type Layout struct {
	// ColumnWidths maps column letters to explicit widths.
	ColumnWidths map[string]float64 `json:"column_widths,omitempty"`
	// FrozenRows is the number of rows frozen at the top (0 if none).
	FrozenRows int `json:"frozen_rows,omitempty"`
	// FrozenCols is the number of columns frozen at the left (0 if none).
	FrozenCols int `json:"frozen_cols,omitempty"`
	// MergedCells lists merged ranges (e.g., "A1:F1").
	MergedCells []string `json:"merged_cells,omitempty"`
}
