package chartgeom

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeTestWorkbook saves a workbook with a line chart on Sheet1 and a
// chartless numeric table on Sheet2.
func writeTestWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"", "Q1", "Q2", "Q3"},
		{"Sales", 10, 20, 15},
		{"Cost", 5, 8, 9},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	err := f.AddChart("Sheet1", "F2", &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{Name: "Sheet1!$A$2", Categories: "Sheet1!$B$1:$D$1", Values: "Sheet1!$B$2:$D$2"},
			{Name: "Sheet1!$A$3", Categories: "Sheet1!$B$1:$D$1", Values: "Sheet1!$B$3:$D$3"},
		},
		Title: []excelize.RichTextRun{{Text: "Sales and cost"}},
	})
	if err != nil {
		t.Fatalf("AddChart failed: %v", err)
	}

	if _, err := f.NewSheet("Sheet2"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	table := [][]interface{}{
		{"day", "temp", "rain"},
		{1, 12.5, 0},
		{2, 14, 3.5},
		{3, 11, 1},
	}
	for i, row := range table {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet2", cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "charts.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions())
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Load(missing) = %v, expected ErrFileNotFound", err)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, err := Load(path, DefaultOptions())
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Load(broken) = %v, expected ErrInvalidFormat", err)
	}
}

func TestLoadWorkbook(t *testing.T) {
	wb, err := Load(writeTestWorkbook(t), DefaultOptions())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if wb.BookName != "charts.xlsx" {
		t.Errorf("BookName = %q, expected charts.xlsx", wb.BookName)
	}
	if len(wb.Sheets) != 2 {
		t.Fatalf("expected 2 sheets, got %d", len(wb.Sheets))
	}

	sheet1 := wb.Sheets[0]
	if len(sheet1.Charts) != 1 {
		t.Fatalf("Sheet1 has %d charts, expected 1", len(sheet1.Charts))
	}
	c := sheet1.Charts[0]
	if c.Kind() != KindLine {
		t.Errorf("Kind() = %v, expected line", c.Kind())
	}
	if c.Title != "Sales and cost" {
		t.Errorf("Title = %q, expected %q", c.Title, "Sales and cost")
	}
	d := c.Data()
	if d.DataSetCount() != 2 {
		t.Fatalf("chart has %d data sets, expected 2", d.DataSetCount())
	}
	if d.DataSets[0].Label != "Sales" || d.DataSets[1].Label != "Cost" {
		t.Errorf("labels = %q, %q, expected Sales, Cost", d.DataSets[0].Label, d.DataSets[1].Label)
	}
	if d.YMin() != 5 || d.YMax() != 20 {
		t.Errorf("y extents = [%v, %v], expected [5, 20]", d.YMin(), d.YMax())
	}
	if c.XChartMin() != 0 || c.XChartMax() != 2 {
		t.Errorf("x range = [%v, %v], expected [0, 2]", c.XChartMin(), c.XChartMax())
	}
	if !c.ViewPortHandler().HasContent() {
		t.Error("loaded chart has no content rectangle")
	}

	sheet2 := wb.Sheets[1]
	if len(sheet2.Charts) != 1 {
		t.Fatalf("Sheet2 has %d charts, expected 1 table chart", len(sheet2.Charts))
	}
	tc := sheet2.Charts[0]
	if got := tc.Data().DataSetCount(); got != 2 {
		t.Errorf("table chart has %d data sets, expected 2", got)
	}
	if got := tc.Data().DataSets[0].Label; got != "temp" {
		t.Errorf("first table series = %q, expected temp", got)
	}
	if tc.XChartMin() != 1 || tc.XChartMax() != 3 {
		t.Errorf("table x range = [%v, %v], expected [1, 3]", tc.XChartMin(), tc.XChartMax())
	}

	if got := len(wb.Charts()); got != 2 {
		t.Errorf("Charts() returned %d charts, expected 2", got)
	}
}

func TestLoadSkipsTablesWhenDisabled(t *testing.T) {
	opts := DefaultOptions()
	off := false
	opts.DetectTables = &off

	wb, err := Load(writeTestWorkbook(t), opts)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := len(wb.Sheets[1].Charts); got != 0 {
		t.Errorf("Sheet2 has %d charts with table detection off, expected 0", got)
	}
}

func TestWorkbookReport(t *testing.T) {
	wb, err := Load(writeTestWorkbook(t), DefaultOptions())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	rep := wb.Report()

	s1, ok := rep.Sheets["Sheet1"]
	if !ok || len(s1.Charts) != 1 {
		t.Fatalf("Sheet1 report = %+v, expected one chart", s1)
	}
	chart := s1.Charts[0]
	if chart.Source != "chart" || chart.Kind != "line" {
		t.Errorf("Source, Kind = %q, %q, expected chart, line", chart.Source, chart.Kind)
	}
	if len(chart.Series) != 2 || chart.Series[0].ValueRange != "Sheet1!$B$2:$D$2" {
		t.Errorf("Series = %+v, expected the two value ranges", chart.Series)
	}
	// F2 on the default grid.
	if chart.L != 320 || chart.T != 20 {
		t.Errorf("position = (%d, %d), expected (320, 20)", chart.L, chart.T)
	}

	s2 := rep.Sheets["Sheet2"]
	if len(s2.TableCandidates) != 1 || s2.TableCandidates[0] != "$A$1:$C$4" {
		t.Errorf("Sheet2 table candidates = %v, expected [$A$1:$C$4]", s2.TableCandidates)
	}
	if len(s2.Charts) != 1 || s2.Charts[0].Source != "table" || s2.Charts[0].Range != "Sheet2!$A$1:$C$4" {
		t.Errorf("Sheet2 charts = %+v, expected the table chart", s2.Charts)
	}
}
