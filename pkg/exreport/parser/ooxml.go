package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strings"
)

// readZipFile returns the content of a package part, or nil if it is absent.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// readElementText collects character data up to the end of the current element.
func readElementText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text += string(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text, nil
}

// attrValue returns the value of the first attribute with the given local name.
func attrValue(se xml.StartElement, local string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

// resolveRelativePath resolves a relationship target against a package directory.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

// relsPathFor returns the relationships part that belongs to a package part.
// xl/worksheets/sheet1.xml -> xl/worksheets/_rels/sheet1.xml.rels
func relsPathFor(partPath string) string {
	idx := strings.LastIndex(partPath, "/")
	return partPath[:idx+1] + "_rels/" + partPath[idx+1:] + ".rels"
}

// sheetPart pairs a sheet name with its worksheet part path.
type sheetPart struct {
	name string
	path string
}

// parseWorkbookSheets returns sheet names and their relationship ids in workbook order.
func parseWorkbookSheets(data []byte) (names []string, rIDs map[string]string) {
	rIDs = make(map[string]string) // sheet name -> rId
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			name := attrValue(se, "name")
			rID := attrValue(se, "id")
			if name != "" && rID != "" {
				names = append(names, name)
				rIDs[name] = rID
			}
		}
	}

	return names, rIDs
}

// parseRelationships maps relationship ids to targets, keeping only types containing kind.
func parseRelationships(data []byte, kind string) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			relType := strings.ToLower(attrValue(se, "Type"))
			if strings.Contains(relType, kind) {
				result[attrValue(se, "Id")] = attrValue(se, "Target")
			}
		}
	}

	return result
}

// findDrawingRelationship returns the drawing target referenced from a sheet rels part.
func findDrawingRelationship(data []byte) string {
	for _, target := range parseRelationships(data, "/drawing") {
		return target
	}
	return ""
}

// getSheetParts lists worksheet parts in workbook order.
func getSheetParts(r *zip.Reader) ([]sheetPart, error) {
	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return nil, err
	}

	names, rIDs := parseWorkbookSheets(workbookXML)
	if len(names) == 0 {
		return nil, nil
	}

	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRelsXML == nil {
		return nil, err
	}
	targets := parseRelationships(wbRelsXML, "worksheet")

	var parts []sheetPart
	for _, name := range names {
		target, ok := targets[rIDs[name]]
		if !ok {
			continue
		}
		parts = append(parts, sheetPart{name: name, path: resolveRelativePath(target, "xl")})
	}
	return parts, nil
}
