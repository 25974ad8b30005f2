package parser

import (
	"archive/zip"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/ukaji3/exreport-go/pkg/exreport/models"
	"github.com/xuri/excelize/v2"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":      "Line",
	"line3DChart":    "3DLine",
	"barChart":       "Bar",
	"bar3DChart":     "3DBar",
	"areaChart":      "Area",
	"area3DChart":    "3DArea",
	"pieChart":       "Pie",
	"pie3DChart":     "3DPie",
	"doughnutChart":  "Doughnut",
	"scatterChart":   "XYScatter",
	"bubbleChart":    "Bubble",
	"radarChart":     "Radar",
	"surfaceChart":   "Surface",
	"surface3DChart": "3DSurface",
	"stockChart":     "Stock",
	"ofPieChart":     "PieOfPie",
}

// chartInfo holds chart metadata from drawing.xml.
type chartInfo struct {
	name      string
	chartPath string
	from      string
}

// chartAnchor holds anchor info for one graphic frame in drawing.xml.
type chartAnchor struct {
	rID  string
	name string
	from string
}

// ExtractCharts extracts charts from an xlsx file, keyed by sheet name.
// Charts of a sheet are returned in drawing order.
func ExtractCharts(xlsxPath string) (map[string][]models.Chart, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	parts, err := getSheetParts(&r.Reader)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.Chart)
	for _, part := range parts {
		sheetRelsXML, err := readZipFile(&r.Reader, relsPathFor(part.path))
		if err != nil || sheetRelsXML == nil {
			continue
		}

		drawingPath := findDrawingRelationship(sheetRelsXML)
		if drawingPath == "" {
			continue
		}

		var charts []models.Chart
		for _, ci := range getChartInfosFromDrawing(&r.Reader, resolveRelativePath(drawingPath, "xl/drawings")) {
			chartXML, err := readZipFile(&r.Reader, ci.chartPath)
			if err != nil || chartXML == nil {
				continue
			}
			charts = append(charts, *parseChartXML(chartXML, ci.name, ci.from))
		}
		if len(charts) > 0 {
			result[part.name] = charts
		}
	}

	return result, nil
}

// getChartInfosFromDrawing extracts chart info from a drawing XML file.
func getChartInfosFromDrawing(r *zip.Reader, drawingPath string) []chartInfo {
	var result []chartInfo

	drawingXML, err := readZipFile(r, drawingPath)
	if err != nil || drawingXML == nil {
		return result
	}

	anchors := parseDrawingForCharts(drawingXML)
	if len(anchors) == 0 {
		return result
	}

	relsXML, err := readZipFile(r, relsPathFor(drawingPath))
	if err != nil || relsXML == nil {
		return result
	}
	chartPaths := parseRelationships(relsXML, "/chart")

	for _, a := range anchors {
		if chartPath, ok := chartPaths[a.rID]; ok {
			result = append(result, chartInfo{
				name:      a.name,
				chartPath: resolveRelativePath(chartPath, "xl/charts"),
				from:      a.from,
			})
		}
	}

	return result
}

// parseDrawingForCharts parses drawing XML to find chart anchors in document order.
func parseDrawingForCharts(data []byte) []chartAnchor {
	var result []chartAnchor
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok {
			switch se.Name.Local {
			case "twoCellAnchor", "oneCellAnchor":
				if a := parseAnchor(decoder); a.rID != "" {
					result = append(result, a)
				}
			}
		}
	}

	return result
}

// parseAnchor parses a cell anchor to find its start cell and chart frame.
func parseAnchor(decoder *xml.Decoder) chartAnchor {
	var a chartAnchor
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "from":
				a.from = parseAnchorFrom(decoder)
				depth--
			case "graphicFrame":
				a.rID, a.name = parseGraphicFrameContent(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return a
}

// parseAnchorFrom converts the zero-based xdr:from col/row pair to a cell name.
func parseAnchorFrom(decoder *xml.Decoder) string {
	col, row := -1, -1
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "col", "row":
				txt, err := readElementText(decoder)
				depth--
				if err != nil {
					continue
				}
				v, err := strconv.Atoi(strings.TrimSpace(txt))
				if err != nil {
					continue
				}
				if t.Name.Local == "col" {
					col = v
				} else {
					row = v
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	if col < 0 || row < 0 {
		return ""
	}
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return ""
	}
	return cell
}

// parseGraphicFrameContent parses graphicFrame content.
func parseGraphicFrameContent(decoder *xml.Decoder) (rID, name string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "cNvPr":
				name = attrValue(t, "name")
			case "chart":
				rID = attrValue(t, "id")
			}
		case xml.EndElement:
			depth--
		}
	}

	return rID, name
}

// parseChartXML parses chart XML content.
func parseChartXML(data []byte, name, from string) *models.Chart {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	chart := &models.Chart{Name: name, From: from}

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			parseChartElement(decoder, chart)
		}
	}

	if chart.ChartType == "" {
		chart.ChartType = "unknown"
	}

	return chart
}

// parseChartElement parses c:chart element.
func parseChartElement(decoder *xml.Decoder, chart *models.Chart) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				chart.Title = parseChartTitle(decoder)
				depth--
			case "plotArea":
				parsePlotArea(decoder, chart)
				depth--
			case "legend":
				chart.Legend = true
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartTitle parses a rich-text title element.
func parseChartTitle(decoder *xml.Decoder) string {
	var title string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				if txt, err := readElementText(decoder); err == nil {
					title += txt
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(title)
}

// parsePlotArea parses plot area element.
func parsePlotArea(decoder *xml.Decoder, chart *models.Chart) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if ct, ok := ChartTypeMap[t.Name.Local]; ok {
				series, barDir := parseChartSeries(decoder)
				if ct == "Bar" && barDir == "col" {
					ct = "Column"
				}
				if chart.ChartType == "" {
					chart.ChartType = ct
				}
				chart.Series = append(chart.Series, series...)
				depth--
			} else if t.Name.Local == "catAx" {
				chart.XAxisTitle, _ = parseAxis(decoder)
				depth--
			} else if t.Name.Local == "valAx" {
				chart.YAxisTitle, chart.YAxisNumFmt = parseAxis(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartSeries parses series elements within a chart type element.
// barDir is only set for bar charts ("bar" or "col").
func parseChartSeries(decoder *xml.Decoder) (series []models.ChartSeries, barDir string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "ser":
				series = append(series, parseSingleSeries(decoder))
				depth--
			case "barDir":
				barDir = attrValue(t, "val")
			}
		case xml.EndElement:
			depth--
		}
	}

	return series, barDir
}

// parseSingleSeries parses a single series element.
func parseSingleSeries(decoder *xml.Decoder) models.ChartSeries {
	var s models.ChartSeries
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tx":
				s.Name, s.NameRange = parseSeriesName(decoder)
				depth--
			case "cat":
				s.XRange = parseSeriesRange(decoder)
				depth--
			case "val":
				s.YRange = parseSeriesRange(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return s
}

// parseSeriesName parses series name from tx element.
func parseSeriesName(decoder *xml.Decoder) (name, nameRange string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "f":
				if txt, err := readElementText(decoder); err == nil {
					nameRange = strings.TrimSpace(txt)
				}
				depth--
			case "v":
				if txt, err := readElementText(decoder); err == nil {
					name = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseSeriesRange parses range reference from cat or val element.
func parseSeriesRange(decoder *xml.Decoder) string {
	var ref string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "f" && ref == "" {
				if txt, err := readElementText(decoder); err == nil {
					ref = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return ref
}

// parseAxis returns the title and number format of an axis element.
func parseAxis(decoder *xml.Decoder) (title, numFmt string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				title = parseChartTitle(decoder)
				depth--
			case "numFmt":
				numFmt = attrValue(t, "formatCode")
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}
