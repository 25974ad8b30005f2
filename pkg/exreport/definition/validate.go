package definition

import (
	"fmt"
	"strings"

	"github.com/ukaji3/exreport-go/pkg/exreport"
	"github.com/xuri/excelize/v2"
)

// Validate checks the definition's structure: names, cell addresses, table
// ids and chart references. Row shapes and style names are checked by the
// builder when the report is rendered.
func (r *Report) Validate() error {
	fail := func(sheet, field string, err error) error {
		return &ValidationError{Report: r.Name, Sheet: sheet, Field: field, Err: err}
	}

	if r.Name == "" {
		return fail("", "name", ErrMissingField)
	}
	if len(r.Sheets) == 0 {
		return fail("", "sheets", ErrNoSheets)
	}

	seen := make(map[string]bool)
	for i, sh := range r.Sheets {
		if sh.Name == "" {
			return fail("", fmt.Sprintf("sheets[%d].name", i), ErrMissingField)
		}
		key := strings.ToLower(sh.Name)
		if seen[key] {
			return fail(sh.Name, "name", ErrDuplicateSheet)
		}
		seen[key] = true

		if field, err := sh.validate(); err != nil {
			return fail(sh.Name, field, err)
		}
	}
	return nil
}

// validate returns the offending field path with the error.
func (sh Sheet) validate() (string, error) {
	if sh.Freeze == 1 || sh.Freeze < 0 {
		return "freeze", fmt.Errorf("%w: got %d", exreport.ErrInvalidFreeze, sh.Freeze)
	}

	for i, t := range sh.Titles {
		if _, err := exreport.ParseCell(t.Cell); err != nil {
			return fmt.Sprintf("titles[%d].cell", i), err
		}
		if t.MergeTo != "" {
			if _, err := excelize.ColumnNameToNumber(t.MergeTo); err != nil {
				return fmt.Sprintf("titles[%d].merge_to", i), err
			}
		}
	}
	for i, l := range sh.Lines {
		if _, err := exreport.ParseCell(l.Cell); err != nil {
			return fmt.Sprintf("lines[%d].cell", i), err
		}
	}
	for i, c := range sh.Cells {
		if _, err := exreport.ParseCell(c.Cell); err != nil {
			return fmt.Sprintf("cells[%d].cell", i), err
		}
	}

	// Header count per table id.
	tables := make(map[string]int)
	for i, t := range sh.Tables {
		if _, err := exreport.ParseCell(t.Anchor); err != nil {
			return fmt.Sprintf("tables[%d].anchor", i), err
		}
		if len(t.Headers) == 0 {
			return fmt.Sprintf("tables[%d].headers", i), exreport.ErrNoHeaders
		}
		if t.ID == "" {
			continue
		}
		if _, ok := tables[t.ID]; ok {
			return fmt.Sprintf("tables[%d].id", i), fmt.Errorf("%w: %q", ErrDuplicateTable, t.ID)
		}
		tables[t.ID] = len(t.Headers)
	}

	for i, c := range sh.Charts {
		field := fmt.Sprintf("charts[%d]", i)
		if _, err := exreport.ParseCell(c.Anchor); err != nil {
			return field + ".anchor", err
		}
		if err := c.Data.validate(tables); err != nil {
			return field + ".data", err
		}
		if c.Categories != nil {
			if err := c.Categories.validate(tables); err != nil {
				return field + ".categories", err
			}
		}
	}
	return "", nil
}

func (rr RangeRef) validate(tables map[string]int) error {
	switch {
	case rr.Table != "" && rr.Range != "":
		return fmt.Errorf("%w: table and range are exclusive", ErrInvalidRange)
	case rr.Table != "":
		width, ok := tables[rr.Table]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownTable, rr.Table)
		}
		if rr.Column < 1 || rr.Column > width {
			return fmt.Errorf("%w: column %d of table %q with %d columns", ErrInvalidRange, rr.Column, rr.Table, width)
		}
	case rr.Range != "":
		if _, err := exreport.ParseRef(rr.Range); err != nil {
			return err
		}
	default:
		return ErrInvalidRange
	}
	return nil
}
