package chartgeom

import (
	"errors"
	"testing"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/data"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
	"github.com/xuri/excelize/v2"
)

func TestChartKind(t *testing.T) {
	bar := models.ChartGroup{Type: "Bar", BarDir: "col"}
	tests := []struct {
		name     string
		groups   []models.ChartGroup
		expected Kind
		wantErr  bool
	}{
		{"column", []models.ChartGroup{bar}, KindBar, false},
		{"horizontal", []models.ChartGroup{{Type: "Bar", BarDir: "bar"}}, KindHorizontalBar, false},
		{"area", []models.ChartGroup{{Type: "Area"}}, KindLine, false},
		{"doughnut", []models.ChartGroup{{Type: "Doughnut"}}, KindPie, false},
		{"stock", []models.ChartGroup{{Type: "Stock"}}, KindCandle, false},
		{"two bar groups", []models.ChartGroup{bar, bar}, KindBar, false},
		{"bar and line", []models.ChartGroup{bar, {Type: "Line"}}, KindCombined, false},
		{"bar and pie", []models.ChartGroup{bar, {Type: "Pie"}}, 0, true},
		{"none", nil, 0, true},
	}

	for _, tt := range tests {
		got, err := chartKind(models.ChartSpec{Groups: tt.groups})
		if (err != nil) != tt.wantErr {
			t.Errorf("chartKind(%s) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if err != nil {
			if !errors.Is(err, ErrKindMismatch) {
				t.Errorf("chartKind(%s) = %v, expected ErrKindMismatch", tt.name, err)
			}
			continue
		}
		if got != tt.expected {
			t.Errorf("chartKind(%s) = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func newSeriesFile(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })
	cols := map[string][]interface{}{
		"A": {"open", 10, 12},
		"B": {"high", 15, 16},
		"C": {"low", 8, 11},
		"D": {"close", 12, 14},
	}
	for col, vals := range cols {
		for i, v := range vals {
			f.SetCellValue("Sheet1", col+string(rune('1'+i)), v)
		}
	}
	return f
}

func columnSeries(col string) models.ChartSeries {
	return models.ChartSeries{
		NameRange:  "Sheet1!$" + col + "$1",
		ValueRange: "Sheet1!$" + col + "$2:$" + col + "$3",
	}
}

func TestBuildStackedBar(t *testing.T) {
	f := newSeriesFile(t)
	tests := []struct {
		grouping string
		first    []float64
	}{
		{"stacked", []float64{10, 15}},
		{"percentStacked", []float64{40, 60}},
	}

	for _, tt := range tests {
		spec := models.ChartSpec{
			Name:   "stack",
			Groups: []models.ChartGroup{{Type: "Bar", BarDir: "col", Grouping: tt.grouping, Series: []models.ChartSeries{columnSeries("A"), columnSeries("B")}}},
		}
		c, err := buildChart(f, "Sheet1", spec, DefaultOptions())
		if err != nil {
			t.Fatalf("buildChart(%s) failed: %v", tt.grouping, err)
		}
		if got := c.Data().DataSetCount(); got != 1 {
			t.Fatalf("%s chart has %d data sets, expected 1", tt.grouping, got)
		}
		set := c.Data().DataSets[0]
		if set.Label != "open + high" {
			t.Errorf("Label = %q, expected %q", set.Label, "open + high")
		}
		e := set.Entries[0]
		if len(e.YVals) != 2 || e.YVals[0] != tt.first[0] || e.YVals[1] != tt.first[1] {
			t.Errorf("%s YVals = %v, expected %v", tt.grouping, e.YVals, tt.first)
		}
	}
}

func TestBuildCandle(t *testing.T) {
	f := newSeriesFile(t)
	spec := models.ChartSpec{
		Groups: []models.ChartGroup{{Type: "Stock", Series: []models.ChartSeries{columnSeries("A"), columnSeries("B"), columnSeries("C"), columnSeries("D")}}},
	}
	c, err := buildChart(f, "Sheet1", spec, DefaultOptions())
	if err != nil {
		t.Fatalf("buildChart failed: %v", err)
	}
	if c.Kind() != KindCandle {
		t.Fatalf("Kind() = %v, expected candle", c.Kind())
	}
	e := c.Data().DataSets[0].Entries[1]
	if e.Candle == nil || e.Candle.Open != 12 || e.Candle.High != 16 || e.Candle.Low != 11 || e.Candle.Close != 14 {
		t.Errorf("second candle = %+v, expected open 12 high 16 low 11 close 14", e.Candle)
	}
	if c.Data().YMin() != 8 || c.Data().YMax() != 16 {
		t.Errorf("y extents = [%v, %v], expected [8, 16]", c.Data().YMin(), c.Data().YMax())
	}

	short := models.ChartSpec{Groups: []models.ChartGroup{{Type: "Stock", Series: []models.ChartSeries{columnSeries("A")}}}}
	if _, err := buildChart(f, "Sheet1", short, DefaultOptions()); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("buildChart with one stock series = %v, expected ErrKindMismatch", err)
	}
}

func TestBuildAppliesAxes(t *testing.T) {
	f := newSeriesFile(t)
	lo, hi := 0.0, 50.0
	spec := models.ChartSpec{
		W:      600,
		H:      300,
		Groups: []models.ChartGroup{
			{Type: "Bar", BarDir: "col", AxisIDs: []string{"1", "2"}, Series: []models.ChartSeries{columnSeries("A")}},
			{Type: "Line", AxisIDs: []string{"1", "3"}, Series: []models.ChartSeries{columnSeries("D")}},
		},
		Axes: []models.ValueAxis{
			{ID: "2", Position: "l", Min: &lo, Max: &hi, Inverted: true},
			{ID: "3", Position: "r", Deleted: true},
		},
	}

	c, err := buildChart(f, "Sheet1", spec, DefaultOptions())
	if err != nil {
		t.Fatalf("buildChart failed: %v", err)
	}
	if c.Kind() != KindCombined {
		t.Fatalf("Kind() = %v, expected combined", c.Kind())
	}
	if c.ViewPortHandler().ChartWidth() != 600 {
		t.Errorf("ChartWidth() = %v, expected 600", c.ViewPortHandler().ChartWidth())
	}

	left, _ := c.AxisLeft()
	if left.AxisMinimum() != 0 || left.AxisMaximum() != 50 || !left.Inverted {
		t.Errorf("left axis = [%v, %v] inverted %v, expected [0, 50] inverted", left.AxisMinimum(), left.AxisMaximum(), left.Inverted)
	}
	right, _ := c.AxisRight()
	if right.Enabled {
		t.Error("deleted right axis is enabled")
	}

	line := c.CombinedData().Part(data.PartLine)
	if line == nil || line.DataSets[0].Axis != data.AxisRight {
		t.Errorf("line part = %+v, expected its set on the right axis", line)
	}
}
