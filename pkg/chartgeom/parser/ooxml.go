package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"path"
	"strconv"
	"strings"
)

// relationship is one entry of a .rels part.
type relationship struct {
	id, typ, target string
}

// readZipFile returns the content of the named part, or nil if the
// archive has no such part.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, nil
}

// readElementText returns the character data of the current element and
// consumes its end tag.
func readElementText(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return sb.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return sb.String(), nil
}

func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func attrInt(se xml.StartElement, local string) (int64, bool) {
	v, err := strconv.ParseInt(attr(se, local), 10, 64)
	return v, err == nil
}

func attrFloat(se xml.StartElement, local string) (*float64, bool) {
	v, err := strconv.ParseFloat(attr(se, local), 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}

// attrBool reads an OOXML boolean, where a missing val means true.
func attrBool(se xml.StartElement, local string) bool {
	switch attr(se, local) {
	case "", "1", "true":
		return true
	}
	return false
}

// resolveTarget resolves a relationship target against the directory of
// the part that owns the relationship.
func resolveTarget(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(baseDir, target))
}

// relsPath returns the .rels part of a part, e.g. xl/drawings/_rels/drawing1.xml.rels.
func relsPath(part string) string {
	dir, file := path.Split(part)
	return dir + "_rels/" + file + ".rels"
}

// parseRelationships returns the relationships of a .rels part in
// document order.
func parseRelationships(data []byte) []relationship {
	var result []relationship
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			result = append(result, relationship{
				id:     attr(se, "Id"),
				typ:    attr(se, "Type"),
				target: attr(se, "Target"),
			})
		}
	}
	return result
}

// parseWorkbookSheets returns the sheets of workbook.xml as
// (name, relationship id) pairs in tab order.
func parseWorkbookSheets(data []byte) [][2]string {
	var result [][2]string
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			name, rID := attr(se, "name"), attr(se, "id")
			if name != "" && rID != "" {
				result = append(result, [2]string{name, rID})
			}
		}
	}
	return result
}

// sheetPart is a worksheet and its part name in the archive.
type sheetPart struct {
	name, part string
}

// worksheetParts resolves the worksheet part of every sheet.
func worksheetParts(r *zip.Reader) ([]sheetPart, error) {
	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return nil, err
	}
	relsXML, err := readZipFile(r, relsPath("xl/workbook.xml"))
	if err != nil || relsXML == nil {
		return nil, err
	}

	targets := make(map[string]string)
	for _, rel := range parseRelationships(relsXML) {
		if strings.Contains(strings.ToLower(rel.typ), "worksheet") {
			targets[rel.id] = resolveTarget(rel.target, "xl")
		}
	}

	var result []sheetPart
	for _, s := range parseWorkbookSheets(workbookXML) {
		if part, ok := targets[s[1]]; ok {
			result = append(result, sheetPart{name: s[0], part: part})
		}
	}
	return result, nil
}

// drawingPart returns the drawing part of a worksheet, or "".
func drawingPart(r *zip.Reader, sheet string) (string, error) {
	relsXML, err := readZipFile(r, relsPath(sheet))
	if err != nil || relsXML == nil {
		return "", err
	}
	for _, rel := range parseRelationships(relsXML) {
		if strings.HasSuffix(strings.ToLower(rel.typ), "/drawing") {
			return resolveTarget(rel.target, path.Dir(sheet)), nil
		}
	}
	return "", nil
}
