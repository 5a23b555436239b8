package parser

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

const comboChartXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart"
  xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <c:chart>
    <c:title><c:tx><c:rich><a:p><a:r><a:t>Revenue </a:t></a:r><a:r><a:t>by month</a:t></a:r></a:p></c:rich></c:tx></c:title>
    <c:plotArea>
      <c:barChart>
        <c:barDir val="col"/>
        <c:grouping val="stacked"/>
        <c:ser>
          <c:idx val="0"/>
          <c:tx><c:strRef><c:f>Data!$B$1</c:f></c:strRef></c:tx>
          <c:dLbls><c:dLbl><c:tx><c:rich><a:p><a:r><a:t>label</a:t></a:r></a:p></c:rich></c:tx></c:dLbl></c:dLbls>
          <c:cat><c:strRef><c:f>Data!$A$2:$A$4</c:f></c:strRef></c:cat>
          <c:val><c:numRef><c:f>Data!$B$2:$B$4</c:f></c:numRef></c:val>
        </c:ser>
        <c:axId val="10"/>
        <c:axId val="20"/>
      </c:barChart>
      <c:lineChart>
        <c:grouping val="standard"/>
        <c:ser>
          <c:tx><c:v>Target</c:v></c:tx>
          <c:val><c:numRef><c:f>Data!$C$2:$C$4</c:f></c:numRef></c:val>
        </c:ser>
        <c:axId val="10"/>
        <c:axId val="30"/>
      </c:lineChart>
      <c:catAx><c:axId val="10"/><c:axPos val="b"/></c:catAx>
      <c:valAx>
        <c:axId val="20"/>
        <c:scaling><c:orientation val="maxMin"/><c:max val="100"/><c:min val="-5"/></c:scaling>
        <c:delete val="0"/>
        <c:axPos val="l"/>
      </c:valAx>
      <c:valAx>
        <c:axId val="30"/>
        <c:scaling><c:orientation val="minMax"/></c:scaling>
        <c:delete/>
        <c:axPos val="r"/>
      </c:valAx>
    </c:plotArea>
  </c:chart>
</c:chartSpace>`

func TestParseChartXML(t *testing.T) {
	spec := parseChartXML([]byte(comboChartXML))

	if spec.Title != "Revenue by month" {
		t.Errorf("Title = %q, expected %q", spec.Title, "Revenue by month")
	}
	if len(spec.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(spec.Groups))
	}

	bar := spec.Groups[0]
	if bar.Type != "Bar" || bar.BarDir != "col" || bar.Grouping != "stacked" {
		t.Errorf("bar group = %+v", bar)
	}
	if len(bar.AxisIDs) != 2 || bar.AxisIDs[1] != "20" {
		t.Errorf("bar AxisIDs = %v, expected [10 20]", bar.AxisIDs)
	}
	if len(bar.Series) != 1 {
		t.Fatalf("expected 1 bar series, got %d", len(bar.Series))
	}
	s := bar.Series[0]
	if s.NameRange != "Data!$B$1" {
		t.Errorf("NameRange = %q, expected Data!$B$1", s.NameRange)
	}
	if s.CategoryRange != "Data!$A$2:$A$4" || s.ValueRange != "Data!$B$2:$B$4" {
		t.Errorf("series ranges = %q, %q", s.CategoryRange, s.ValueRange)
	}

	line := spec.Groups[1]
	if line.Type != "Line" || len(line.Series) != 1 || line.Series[0].Name != "Target" {
		t.Errorf("line group = %+v", line)
	}

	if len(spec.Axes) != 2 {
		t.Fatalf("expected 2 value axes, got %d", len(spec.Axes))
	}
	left := spec.Axes[0]
	if left.ID != "20" || left.Position != "l" || !left.Inverted || left.Deleted {
		t.Errorf("left axis = %+v", left)
	}
	if left.Min == nil || *left.Min != -5 || left.Max == nil || *left.Max != 100 {
		t.Errorf("left axis bounds = %v, %v, expected -5, 100", left.Min, left.Max)
	}
	right := spec.Axes[1]
	if right.Position != "r" || right.Inverted || !right.Deleted {
		t.Errorf("right axis = %+v", right)
	}
	if got := spec.AxisByID("30"); got == nil || got.Position != "r" {
		t.Errorf("AxisByID(30) = %+v, expected the right axis", got)
	}
}

func TestParseDrawingAnchors(t *testing.T) {
	drawing := `<xdr:wsDr xmlns:xdr="http://schemas.openxmlformats.org/drawingml/2006/spreadsheetDrawing"
  xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
  xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart"
  xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <xdr:twoCellAnchor>
    <xdr:from><xdr:col>2</xdr:col><xdr:colOff>95250</xdr:colOff><xdr:row>3</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:from>
    <xdr:to><xdr:col>9</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>18</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:to>
    <xdr:graphicFrame>
      <xdr:nvGraphicFramePr><xdr:cNvPr id="2" name="Chart 1"/></xdr:nvGraphicFramePr>
      <xdr:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/></xdr:xfrm>
      <a:graphic><a:graphicData><c:chart r:id="rId1"/></a:graphicData></a:graphic>
    </xdr:graphicFrame>
  </xdr:twoCellAnchor>
  <xdr:absoluteAnchor>
    <xdr:pos x="952500" y="476250"/>
    <xdr:ext cx="3810000" cy="2857500"/>
    <xdr:graphicFrame>
      <xdr:nvGraphicFramePr><xdr:cNvPr id="3" name="Chart 2"/></xdr:nvGraphicFramePr>
      <a:graphic><a:graphicData><c:chart r:id="rId2"/></a:graphicData></a:graphic>
    </xdr:graphicFrame>
  </xdr:absoluteAnchor>
  <xdr:oneCellAnchor>
    <xdr:from><xdr:col>0</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>0</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:from>
    <xdr:ext cx="952500" cy="952500"/>
    <xdr:sp><xdr:nvSpPr><xdr:cNvPr id="4" name="Shape"/></xdr:nvSpPr></xdr:sp>
  </xdr:oneCellAnchor>
</xdr:wsDr>`

	anchors := parseDrawingAnchors([]byte(drawing))
	if len(anchors) != 2 {
		t.Fatalf("expected 2 chart anchors, got %d", len(anchors))
	}

	tests := []struct {
		rID                      string
		name                     string
		left, top, width, height int
	}{
		{"rId1", "Chart 1", 138, 60, 438, 300},
		{"rId2", "Chart 2", 100, 50, 400, 300},
	}
	for i, tt := range tests {
		a := anchors[i]
		if a.rID != tt.rID || a.ref.name != tt.name {
			t.Errorf("anchor %d = %q %q, expected %q %q", i, a.rID, a.ref.name, tt.rID, tt.name)
		}
		got := [4]int{a.ref.left, a.ref.top, a.ref.width, a.ref.height}
		expected := [4]int{tt.left, tt.top, tt.width, tt.height}
		if got != expected {
			t.Errorf("anchor %d position = %v, expected %v", i, got, expected)
		}
	}
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		target, base, expected string
	}{
		{"../charts/chart1.xml", "xl/drawings", "xl/charts/chart1.xml"},
		{"/xl/charts/chart2.xml", "xl/drawings", "xl/charts/chart2.xml"},
		{"drawing1.xml", "xl/drawings", "xl/drawings/drawing1.xml"},
	}

	for _, tt := range tests {
		if got := resolveTarget(tt.target, tt.base); got != tt.expected {
			t.Errorf("resolveTarget(%q, %q) = %q, expected %q", tt.target, tt.base, got, tt.expected)
		}
	}
}

func TestExtractCharts(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	for i, v := range []float64{3, 1, 4, 1} {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		f.SetCellValue("Sheet1", cell, v)
	}
	err := f.AddChart("Sheet1", "C1", &excelize.Chart{
		Type:   excelize.Col,
		Series: []excelize.ChartSeries{{Name: "Sheet1!$A$1", Values: "Sheet1!$A$1:$A$4"}},
	})
	if err != nil {
		t.Fatalf("AddChart failed: %v", err)
	}
	err = f.AddChart("Sheet1", "C20", &excelize.Chart{
		Type:   excelize.Pie,
		Series: []excelize.ChartSeries{{Name: "Sheet1!$A$1", Values: "Sheet1!$A$1:$A$4"}},
	})
	if err != nil {
		t.Fatalf("AddChart failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "charts.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	specs, err := ExtractCharts(path, log)
	if err != nil {
		t.Fatalf("ExtractCharts failed: %v", err)
	}
	charts := specs["Sheet1"]
	if len(charts) != 2 {
		t.Fatalf("expected 2 charts on Sheet1, got %d", len(charts))
	}

	col := charts[0]
	if len(col.Groups) != 1 || col.Groups[0].Type != "Bar" || col.Groups[0].BarDir != "col" {
		t.Errorf("first chart groups = %+v, expected one column group", col.Groups)
	}
	if got := col.Groups[0].Series[0].ValueRange; got != "Sheet1!$A$1:$A$4" {
		t.Errorf("ValueRange = %q, expected Sheet1!$A$1:$A$4", got)
	}
	if col.L != 128 || col.T != 0 {
		t.Errorf("first chart position = (%d, %d), expected (128, 0)", col.L, col.T)
	}
	if col.W <= 0 || col.H <= 0 {
		t.Errorf("first chart size = %dx%d, expected a positive size", col.W, col.H)
	}

	if pie := charts[1]; len(pie.Groups) != 1 || pie.Groups[0].Type != "Pie" {
		t.Errorf("second chart groups = %+v, expected one pie group", pie.Groups)
	}
}

func TestExtractChartsMissingFile(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if _, err := ExtractCharts(filepath.Join(t.TempDir(), "missing.xlsx"), log); err == nil {
		t.Error("ExtractCharts(missing) returned no error")
	}
}
