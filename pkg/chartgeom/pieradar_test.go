package chartgeom

import (
	"testing"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/data"
)

func newPieChart(t *testing.T) *Chart {
	t.Helper()
	return newTestChart(t, KindPie, DefaultOptions(), data.NewDataSet("pie", []*data.Entry{
		data.NewEntry(0, 1),
		data.NewEntry(1, -1),
		data.NewEntry(2, 2),
	}))
}

func TestPieAngles(t *testing.T) {
	c := newPieChart(t)

	draw := []float64{90, 90, 180}
	abs := []float64{90, 180, 360}
	for i := range draw {
		if !almostEqual(c.DrawAngles()[i], draw[i]) {
			t.Errorf("DrawAngles()[%d] = %v, expected %v", i, c.DrawAngles()[i], draw[i])
		}
		if !almostEqual(c.AbsoluteAngles()[i], abs[i]) {
			t.Errorf("AbsoluteAngles()[%d] = %v, expected %v", i, c.AbsoluteAngles()[i], abs[i])
		}
	}

	if got := c.Radius(); got != 122.5 {
		t.Errorf("Radius() = %v, expected 122.5", got)
	}
	center := c.CenterOffsets()
	if center.X != 240 || center.Y != 137.5 {
		t.Errorf("CenterOffsets() = %+v, expected (240, 137.5)", center)
	}
}

func TestPieTap(t *testing.T) {
	c := newPieChart(t)
	center := c.CenterOffsets()

	tests := []struct {
		name     string
		dx, dy   float64
		expected int
	}{
		{"north east", 10, -50, 0},
		{"east boundary", 50, 0, 1},
		{"west", -50, 0, 2},
		{"outside", 200, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := c.HighlightByTouchPoint(center.X+tt.dx, center.Y+tt.dy)
			if tt.expected < 0 {
				if h != nil {
					t.Errorf("HighlightByTouchPoint = %v, expected nil", h)
				}
				return
			}
			if h == nil || int(h.X) != tt.expected {
				t.Errorf("HighlightByTouchPoint = %v, expected slice %d", h, tt.expected)
			}
		})
	}
}

func TestPieRotation(t *testing.T) {
	c := newPieChart(t)
	center := c.CenterOffsets()

	c.SetRotationAngle(-270)
	if got := c.RotationAngle(); got != 90 {
		t.Errorf("RotationAngle() = %v, expected 90", got)
	}
	if h := c.Tap(center.X+50, center.Y); h == nil || h.X != 0 {
		t.Errorf("Tap east after rotating by 90 = %v, expected slice 0", h)
	}
	if e := c.EntryForHighlight(c.Highlighted()[0]); e == nil || e.Y != 1 {
		t.Errorf("EntryForHighlight = %v, expected the first slice", e)
	}

	rep := c.Report()
	if rep.Pie == nil || rep.Pie.Rotation != 90 || rep.XAxis != nil {
		t.Errorf("pie report = %+v, expected rotation 90 and no axes", rep)
	}
}

func TestRadar(t *testing.T) {
	a := data.NewDataSet("a", []*data.Entry{
		data.NewEntry(0, 2), data.NewEntry(1, 3), data.NewEntry(2, 1), data.NewEntry(3, 3),
	})
	b := data.NewDataSet("b", []*data.Entry{
		data.NewEntry(0, 4), data.NewEntry(1, 1), data.NewEntry(2, 2), data.NewEntry(3, 2),
	})
	c := newTestChart(t, KindRadar, DefaultOptions(), a, b)

	if got := c.SliceAngle(); got != 90 {
		t.Errorf("SliceAngle() = %v, expected 90", got)
	}
	if c.XChartMin() != 0 || c.XChartMax() != 4 {
		t.Errorf("x range = [%v, %v], expected [0, 4]", c.XChartMin(), c.XChartMax())
	}
	factor := c.Factor()
	if expected := 122.5 / c.left.AxisRange(); !almostEqual(factor, expected) {
		t.Errorf("Factor() = %v, expected %v", factor, expected)
	}

	center := c.CenterOffsets()
	distB := (4 - c.YChartMin()) * factor
	h := c.HighlightByTouchPoint(center.X, center.Y-distB)
	if h == nil || h.X != 0 || h.DataSetIndex != 1 {
		t.Fatalf("touch on spoke 0 at set b = %v, expected set 1", h)
	}
	if !almostEqual(h.YPx, center.Y-distB) {
		t.Errorf("YPx = %v, expected %v", h.YPx, center.Y-distB)
	}

	distA := (3 - c.YChartMin()) * factor
	if h := c.HighlightByTouchPoint(center.X+distA, center.Y); h == nil || h.X != 1 || h.DataSetIndex != 0 {
		t.Errorf("touch on spoke 1 at set a = %v, expected set 0", h)
	}

	rep := c.Report()
	if rep.Radar == nil || rep.RightAxis != nil {
		t.Errorf("radar report = %+v, expected radar geometry and no right axis", rep)
	}
}
