package output

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/ukaji3/exreport-go/pkg/exreport/models"
	"github.com/xuri/excelize/v2"
)

// maxMarkdownRows caps the cell rows listed per sheet.
const maxMarkdownRows = 50

// WriteMarkdown writes a human-readable summary of the workbook.
func WriteMarkdown(w io.Writer, wb *models.WorkbookData) error {
	md := markdown.NewMarkdown(w)

	md.H1(wb.BookName)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Sheet", "Rows", "Charts", "Tables"},
		Rows:   sheetSummaryRows(wb),
	})
	md.PlainText("")

	for _, sheet := range wb.Sheets {
		writeSheet(md, sheet)
	}

	return md.Build()
}

func sheetSummaryRows(wb *models.WorkbookData) [][]string {
	rows := make([][]string, 0, len(wb.Sheets))
	for _, s := range wb.Sheets {
		rows = append(rows, []string{
			s.Name,
			strconv.Itoa(len(s.Rows)),
			strconv.Itoa(len(s.Charts)),
			strconv.Itoa(len(s.TableCandidates)),
		})
	}
	return rows
}

func writeSheet(md *markdown.Markdown, sheet models.SheetData) {
	md.H2(sheet.Name)
	md.PlainText("")

	layout := layoutItems(sheet.Layout)
	if len(layout) > 0 {
		md.H3("Layout")
		md.BulletList(layout...)
		md.PlainText("")
	}

	if len(sheet.TableCandidates) > 0 {
		md.H3("Tables")
		md.BulletList(sheet.TableCandidates...)
		md.PlainText("")
	}

	if len(sheet.Charts) > 0 {
		md.H3("Charts")
		md.Table(markdown.TableSet{
			Header: []string{"Anchor", "Type", "Title", "Values", "Categories"},
			Rows:   chartRows(sheet.Charts),
		})
		md.PlainText("")
	}

	if len(sheet.Rows) > 0 {
		md.H3("Cells")
		md.Table(markdown.TableSet{
			Header: []string{"Cell", "Value"},
			Rows:   cellRows(sheet.Rows),
		})
		if len(sheet.Rows) > maxMarkdownRows {
			md.PlainTextf("*%d more rows not shown*", len(sheet.Rows)-maxMarkdownRows)
		}
		md.PlainText("")
	}
}

func layoutItems(l models.Layout) []string {
	var items []string
	if l.FrozenRows > 0 {
		items = append(items, fmt.Sprintf("Frozen rows: %d", l.FrozenRows))
	}
	if l.FrozenCols > 0 {
		items = append(items, fmt.Sprintf("Frozen columns: %d", l.FrozenCols))
	}
	if len(l.ColumnWidths) > 0 {
		cols := make([]string, 0, len(l.ColumnWidths))
		for col := range l.ColumnWidths {
			cols = append(cols, col)
		}
		slices.SortFunc(cols, func(a, b string) int {
			na, _ := excelize.ColumnNameToNumber(a)
			nb, _ := excelize.ColumnNameToNumber(b)
			return na - nb
		})
		widths := make([]string, len(cols))
		for i, col := range cols {
			widths[i] = fmt.Sprintf("%s=%g", col, l.ColumnWidths[col])
		}
		items = append(items, "Column widths: "+strings.Join(widths, ", "))
	}
	if len(l.MergedCells) > 0 {
		items = append(items, "Merged: "+strings.Join(l.MergedCells, ", "))
	}
	return items
}

func chartRows(charts []models.Chart) [][]string {
	var rows [][]string
	for _, c := range charts {
		var values, cats []string
		for _, s := range c.Series {
			values = append(values, "`"+s.YRange+"`")
			if s.XRange != "" && !slices.Contains(cats, "`"+s.XRange+"`") {
				cats = append(cats, "`"+s.XRange+"`")
			}
		}
		rows = append(rows, []string{c.From, c.ChartType, c.Title, strings.Join(values, " "), strings.Join(cats, " ")})
	}
	return rows
}

func cellRows(rows []models.CellRow) [][]string {
	var out [][]string
	for _, row := range rows[:min(len(rows), maxMarkdownRows)] {
		cols := make([]int, 0, len(row.C)+len(row.F))
		for key := range row.C {
			if n, err := strconv.Atoi(key); err == nil {
				cols = append(cols, n)
			}
		}
		for key := range row.F {
			if n, err := strconv.Atoi(key); err == nil && !slices.Contains(cols, n) {
				cols = append(cols, n)
			}
		}
		slices.Sort(cols)

		for _, col := range cols {
			name, err := excelize.CoordinatesToCellName(col, row.R)
			if err != nil {
				continue
			}
			key := strconv.Itoa(col)
			value := fmt.Sprint(row.C[key])
			if f, ok := row.F[key]; ok {
				value = "`" + f + "`"
			} else if _, ok := row.C[key]; !ok {
				value = ""
			}
			out = append(out, []string{name, escapePipes(value)})
		}
	}
	return out
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
