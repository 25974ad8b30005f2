// Package output serializes read-back workbook data.
package output

import (
	"encoding/json"

	"github.com/ukaji3/exreport-go/pkg/exreport/models"
)

// ToJSON serializes the workbook data, indented when pretty is set.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(wb, "", "  ")
	}
	return json.Marshal(wb)
}

// SheetToJSON serializes a single sheet.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(sheet, "", "  ")
	}
	return json.Marshal(sheet)
}
