// Package models defines the read-back data structures for generated workbooks.
package models

// CellRow represents a single row of cells read back from a sheet.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (string) to cell value.
	C map[string]interface{} `json:"c"`
	// F maps column index to formula text for formula cells (optional).
	F map[string]string `json:"f,omitempty"`
}
