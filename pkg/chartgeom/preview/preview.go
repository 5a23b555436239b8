// Package preview renders a PNG of a chart as it looks after layout and
// gestures: the visible window, the computed axis ticks and the current
// highlight.
package preview

import (
	"errors"
	"io"
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/axis"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/data"
)

// Default image size in pixels.
const (
	DefaultWidth  = 640
	DefaultHeight = 400
)

// ErrEmptyRange indicates a visible window of zero width or height.
var ErrEmptyRange = errors.New("visible range is empty")

// Render writes a PNG preview of c to w. A width or height of zero falls
// back to the defaults.
func Render(w io.Writer, c *chartgeom.Chart, width, height int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	d := c.Data()
	if d == nil || d.DataSetCount() == 0 {
		return chartgeom.ErrNoData
	}

	if c.Kind() == chartgeom.KindPie {
		return renderPie(w, c, d, width, height)
	}
	graph, err := axisChart(c, d, width, height)
	if err != nil {
		return err
	}
	return graph.Render(chart.PNG, w)
}

func renderPie(w io.Writer, c *chartgeom.Chart, d *data.ChartData, width, height int) error {
	set := d.DataSetByIndex(0)
	values := make([]chart.Value, 0, set.EntryCount())
	for i, e := range set.Entries {
		values = append(values, chart.Value{
			Value: math.Abs(e.Y),
			Label: strconv.Itoa(i),
			Style: chart.Style{FillColor: chart.GetDefaultColor(i)},
		})
	}
	pie := chart.PieChart{
		Title:  c.Title,
		Width:  width,
		Height: height,
		Values: values,
	}
	return pie.Render(chart.PNG, w)
}

// axisChart builds the go-chart description of a chart with axes. For
// horizontal bar charts the x values run along the vertical axis, so the
// series are plotted with their coordinates swapped.
func axisChart(c *chartgeom.Chart, d *data.ChartData, width, height int) (*chart.Chart, error) {
	xa, err := c.XAxis()
	if err != nil {
		return nil, err
	}
	left, err := c.AxisLeft()
	if err != nil {
		return nil, err
	}

	xLo, xHi := c.LowestVisibleX(), c.HighestVisibleX()
	yLo, yHi := c.VisibleYRange(data.AxisLeft)
	if !(xHi > xLo) || !(yHi > yLo) {
		return nil, ErrEmptyRange
	}

	horizontal := c.Kind().IsHorizontal()
	graph := &chart.Chart{
		Title:  c.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 30, Left: 20, Right: 20, Bottom: 10},
		},
	}

	xAxis := chart.XAxis{Range: &chart.ContinuousRange{Min: xLo, Max: xHi}, Ticks: ticks(&xa.Base, xLo, xHi)}
	yAxis := chart.YAxis{Range: &chart.ContinuousRange{Min: yLo, Max: yHi}, Ticks: ticks(&left.Base, yLo, yHi)}
	if horizontal {
		graph.XAxis = chart.XAxis{Range: yAxis.Range, Ticks: yAxis.Ticks}
		graph.YAxis = chart.YAxis{Range: xAxis.Range, Ticks: xAxis.Ticks}
	} else {
		graph.XAxis = xAxis
		graph.YAxis = yAxis
	}

	hasRight := false
	for _, set := range d.DataSets {
		if set.Axis == data.AxisRight {
			hasRight = true
		}
	}
	if hasRight && !horizontal {
		right, err := c.AxisRight()
		if err != nil {
			return nil, err
		}
		lo, hi := c.VisibleYRange(data.AxisRight)
		if hi > lo {
			graph.YAxisSecondary = chart.YAxis{Range: &chart.ContinuousRange{Min: lo, Max: hi}, Ticks: ticks(&right.Base, lo, hi)}
		}
	}

	for i, set := range d.DataSets {
		if !set.IsVisible() || set.EntryCount() == 0 {
			continue
		}
		graph.Series = append(graph.Series, series(c.Kind(), set, i, horizontal, hasRight))
	}
	if len(graph.Series) == 0 {
		return nil, chartgeom.ErrNoData
	}
	if a := annotation(c, horizontal); a != nil {
		graph.Series = append(graph.Series, *a)
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(graph)}
	return graph, nil
}

func series(kind chartgeom.Kind, set *data.DataSet, i int, horizontal, hasRight bool) chart.ContinuousSeries {
	xs := make([]float64, 0, set.EntryCount())
	ys := make([]float64, 0, set.EntryCount())
	for _, e := range set.Entries {
		if horizontal {
			xs = append(xs, e.Y)
			ys = append(ys, e.X)
			continue
		}
		xs = append(xs, e.X)
		ys = append(ys, e.Y)
	}

	col := chart.GetDefaultColor(i)
	s := chart.ContinuousSeries{
		Name:    set.Label,
		Style:   lineStyle(col),
		XValues: xs,
		YValues: ys,
	}
	switch kind {
	case chartgeom.KindScatter, chartgeom.KindBubble:
		s.Style = pointStyle(col)
	}
	if hasRight && !horizontal && set.Axis == data.AxisRight {
		s.YAxis = chart.YAxisSecondary
	}
	return s
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    2,
	}
}

// pointStyle draws dots without connecting lines.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

// annotation marks the first highlighted entry, or returns nil.
func annotation(c *chartgeom.Chart, horizontal bool) *chart.AnnotationSeries {
	hs := c.Highlighted()
	if len(hs) == 0 {
		return nil
	}
	h := hs[0]
	x, y := h.X, h.Y
	if horizontal {
		x, y = y, x
	}
	if math.IsNaN(x) || math.IsNaN(y) {
		return nil
	}
	return &chart.AnnotationSeries{
		Annotations: []chart.Value2{{
			XValue: x,
			YValue: y,
			Label:  strconv.FormatFloat(h.Y, 'g', 6, 64),
		}},
	}
}

// ticks turns the computed axis entries inside [lo, hi] into labelled
// ticks. It returns nil when fewer than two remain, leaving go-chart to
// pick its own.
func ticks(a *axis.Base, lo, hi float64) []chart.Tick {
	var out []chart.Tick
	for _, v := range a.Entries {
		if v < lo || v > hi {
			continue
		}
		out = append(out, chart.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', a.Decimals, 64)})
	}
	if len(out) < 2 {
		return nil
	}
	return out
}
