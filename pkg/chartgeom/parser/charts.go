package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"log/slog"
	"path"
	"strconv"
	"strings"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
)

// ChartTypeMap maps OOXML plot element tags to chart type names.
// Surface charts have no counterpart and are not listed.
var ChartTypeMap = map[string]string{
	"lineChart":     "Line",
	"line3DChart":   "Line",
	"areaChart":     "Area",
	"area3DChart":   "Area",
	"barChart":      "Bar",
	"bar3DChart":    "Bar",
	"pieChart":      "Pie",
	"pie3DChart":    "Pie",
	"ofPieChart":    "Pie",
	"doughnutChart": "Doughnut",
	"scatterChart":  "Scatter",
	"bubbleChart":   "Bubble",
	"radarChart":    "Radar",
	"stockChart":    "Stock",
}

// chartRef is a chart placed on a drawing.
type chartRef struct {
	name   string
	part   string
	left   int
	top    int
	width  int
	height int
}

// ExtractCharts reads the charts of every sheet of an xlsx file, in
// drawing order. Charts that cannot be read are logged and skipped.
func ExtractCharts(xlsxPath string, log *slog.Logger) (map[string][]models.ChartSpec, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	sheets, err := worksheetParts(&r.Reader)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.ChartSpec)
	for _, sheet := range sheets {
		drawing, err := drawingPart(&r.Reader, sheet.part)
		if err != nil {
			log.Warn("drawing not readable", "sheet", sheet.name, "error", err)
			continue
		}
		if drawing == "" {
			continue
		}

		for _, ref := range chartRefs(&r.Reader, drawing) {
			spec, err := parseChartFile(&r.Reader, ref)
			if err != nil {
				log.Warn("skipping chart", "sheet", sheet.name, "chart", ref.name, "error", err)
				continue
			}
			if len(spec.Groups) == 0 {
				log.Warn("skipping chart without supported plot", "sheet", sheet.name, "chart", ref.name)
				continue
			}
			result[sheet.name] = append(result[sheet.name], *spec)
		}
	}

	return result, nil
}

// chartRefs returns the charts anchored on a drawing.
func chartRefs(r *zip.Reader, drawing string) []chartRef {
	drawingXML, err := readZipFile(r, drawing)
	if err != nil || drawingXML == nil {
		return nil
	}
	relsXML, err := readZipFile(r, relsPath(drawing))
	if err != nil || relsXML == nil {
		return nil
	}

	targets := make(map[string]string)
	for _, rel := range parseRelationships(relsXML) {
		if strings.HasSuffix(strings.ToLower(rel.typ), "/chart") {
			targets[rel.id] = resolveTarget(rel.target, path.Dir(drawing))
		}
	}

	var result []chartRef
	for _, a := range parseDrawingAnchors(drawingXML) {
		if part, ok := targets[a.rID]; ok {
			a.ref.part = part
			result = append(result, a.ref)
		}
	}
	return result
}

type anchoredChart struct {
	rID string
	ref chartRef
}

// parseDrawingAnchors returns the graphic frames holding charts, in
// document order.
func parseDrawingAnchors(data []byte) []anchoredChart {
	var result []anchoredChart
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "twoCellAnchor", "oneCellAnchor", "absoluteAnchor":
			if a := parseAnchor(decoder); a.rID != "" {
				result = append(result, a)
			}
		}
	}

	return result
}

// parseAnchor reads one anchor. The frame transform gives the position
// when it is set; otherwise the anchor markers are placed on the default
// cell grid.
func parseAnchor(decoder *xml.Decoder) anchoredChart {
	var a anchoredChart
	var from, to *cellMarker
	var extW, extH int
	var pos, framePos [4]int
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
				from = parseMarker(decoder)
				depth--
			case "to":
				to = parseMarker(decoder)
				depth--
			case "pos":
				if x, ok := attrInt(t, "x"); ok {
					pos[0] = EMUToPixels(x)
				}
				if y, ok := attrInt(t, "y"); ok {
					pos[1] = EMUToPixels(y)
				}
			case "ext":
				// anchor extent of oneCellAnchor/absoluteAnchor; the
				// frame's own a:ext is read by parseXfrm
				if cx, ok := attrInt(t, "cx"); ok {
					extW = EMUToPixels(cx)
				}
				if cy, ok := attrInt(t, "cy"); ok {
					extH = EMUToPixels(cy)
				}
			case "cNvPr":
				a.ref.name = attr(t, "name")
			case "xfrm":
				framePos = parseXfrm(decoder)
				depth--
			case "chart":
				a.rID = attr(t, "id")
			}
		case xml.EndElement:
			depth--
		}
	}

	switch {
	case framePos[2] > 0 && framePos[3] > 0:
		pos = framePos
	case from != nil:
		pos[0], pos[1] = from.pixels()
		if to != nil {
			x2, y2 := to.pixels()
			pos[2], pos[3] = x2-pos[0], y2-pos[1]
		} else {
			pos[2], pos[3] = extW, extH
		}
	default:
		pos[2], pos[3] = extW, extH
	}
	a.ref.left, a.ref.top, a.ref.width, a.ref.height = pos[0], pos[1], pos[2], pos[3]
	return a
}

// parseMarker reads an xdr:from or xdr:to marker.
func parseMarker(decoder *xml.Decoder) *cellMarker {
	var m cellMarker
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			var field *int64
			switch t.Name.Local {
			case "col":
				field = &m.col
			case "colOff":
				field = &m.colOff
			case "row":
				field = &m.row
			case "rowOff":
				field = &m.rowOff
			default:
				continue
			}
			txt, err := readElementText(decoder)
			depth--
			if err != nil {
				continue
			}
			if v, err := strconv.ParseInt(strings.TrimSpace(txt), 10, 64); err == nil {
				*field = v
			}
		case xml.EndElement:
			depth--
		}
	}

	return &m
}

// parseXfrm parses an xfrm element into left, top, width and height in
// pixels.
func parseXfrm(decoder *xml.Decoder) [4]int {
	var pos [4]int
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
			case "off":
				if x, ok := attrInt(t, "x"); ok {
					pos[0] = EMUToPixels(x)
				}
				if y, ok := attrInt(t, "y"); ok {
					pos[1] = EMUToPixels(y)
				}
			case "ext":
				if cx, ok := attrInt(t, "cx"); ok {
					pos[2] = EMUToPixels(cx)
				}
				if cy, ok := attrInt(t, "cy"); ok {
					pos[3] = EMUToPixels(cy)
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	return pos
}

// parseChartFile parses a chart part.
func parseChartFile(r *zip.Reader, ref chartRef) (*models.ChartSpec, error) {
	chartXML, err := readZipFile(r, ref.part)
	if err != nil {
		return nil, err
	}
	if chartXML == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingPart, ref.part)
	}

	spec := parseChartXML(chartXML)
	spec.Name = ref.name
	spec.L, spec.T, spec.W, spec.H = ref.left, ref.top, ref.width, ref.height
	return spec, nil
}

// parseChartXML parses chart XML content.
func parseChartXML(data []byte) *models.ChartSpec {
	spec := &models.ChartSpec{}
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			parseChartElement(decoder, spec)
		}
	}

	return spec
}

// parseChartElement parses c:chart element.
func parseChartElement(decoder *xml.Decoder, spec *models.ChartSpec) {
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
				spec.Title = parseTitle(decoder)
				depth--
			case "plotArea":
				parsePlotArea(decoder, spec)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseTitle joins the text runs of a title element.
func parseTitle(decoder *xml.Decoder) string {
	var sb strings.Builder
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
					sb.WriteString(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(sb.String())
}

// parsePlotArea parses the chart groups and value axes of a plot area.
func parsePlotArea(decoder *xml.Decoder, spec *models.ChartSpec) {
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
				spec.Groups = append(spec.Groups, parseChartGroup(decoder, ct))
				depth--
			} else if t.Name.Local == "valAx" {
				spec.Axes = append(spec.Axes, parseValueAxis(decoder))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartGroup parses one chart type element of a plot area.
func parseChartGroup(decoder *xml.Decoder, chartType string) models.ChartGroup {
	g := models.ChartGroup{Type: chartType}
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
			case "barDir":
				g.BarDir = attr(t, "val")
			case "grouping":
				g.Grouping = attr(t, "val")
			case "axId":
				g.AxisIDs = append(g.AxisIDs, attr(t, "val"))
			case "ser":
				g.Series = append(g.Series, parseSeries(decoder))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return g
}

// parseSeries parses a single series element.
func parseSeries(decoder *xml.Decoder) models.ChartSeries {
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
			if depth > 2 {
				// data labels carry their own tx elements
				continue
			}
			var target *string
			switch t.Name.Local {
			case "tx":
				s.Name, s.NameRange = parseSeriesName(decoder)
				depth--
				continue
			case "cat":
				target = &s.CategoryRange
			case "val":
				target = &s.ValueRange
			case "xVal":
				target = &s.XRange
			case "yVal":
				target = &s.YRange
			case "bubbleSize":
				target = &s.SizeRange
			default:
				continue
			}
			*target = parseSeriesRange(decoder)
			depth--
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

// parseSeriesRange returns the formula of a data reference element and
// consumes the element.
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

// parseValueAxis parses a valAx element.
func parseValueAxis(decoder *xml.Decoder) models.ValueAxis {
	var ax models.ValueAxis
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
			case "axId":
				ax.ID = attr(t, "val")
			case "axPos":
				ax.Position = attr(t, "val")
			case "delete":
				ax.Deleted = attrBool(t, "val")
			case "title":
				ax.Title = parseTitle(decoder)
				depth--
			case "scaling":
				parseAxisScaling(decoder, &ax)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return ax
}

// parseAxisScaling parses axis scaling element.
func parseAxisScaling(decoder *xml.Decoder, ax *models.ValueAxis) {
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
			case "orientation":
				ax.Inverted = attr(t, "val") == "maxMin"
			case "min":
				if v, ok := attrFloat(t, "val"); ok {
					ax.Min = v
				}
			case "max":
				if v, ok := attrFloat(t, "val"); ok {
					ax.Max = v
				}
			}
		case xml.EndElement:
			depth--
		}
	}
}
