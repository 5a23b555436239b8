package highlight

import (
	"math"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/data"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/viewport"
)

// BarHighlighter serves vertical bar charts. Only the horizontal pixel
// distance counts, and stacked bars resolve the segment under the touch.
type BarHighlighter struct {
	*ChartHighlighter
	bars BarDataProvider
}

// NewBarHighlighter returns a highlighter for a bar chart.
func NewBarHighlighter(provider BarDataProvider) *BarHighlighter {
	return newBarHighlighter(provider, provider.Data)
}

func newBarHighlighter(provider BarDataProvider, barData func() *data.ChartData) *BarHighlighter {
	h := &BarHighlighter{ChartHighlighter: NewChartHighlighter(provider), bars: provider}
	h.data = barData
	h.distance = func(x, y float64, c *Highlight) float64 {
		return math.Abs(x - c.XPx)
	}
	return h
}

// Highlight returns the bar under the touch pixel (x, y), or nil.
func (h *BarHighlighter) Highlight(x, y float64) *Highlight {
	xVal, yVal := h.touchValues(x, y)
	high := h.highlightForX(xVal, x, y)
	return h.resolveStack(high, xVal, yVal)
}

// resolveStack replaces high by the highlight of the stack segment that
// contains yVal when the bar is stacked.
func (h *BarHighlighter) resolveStack(high *Highlight, xVal, yVal float64) *Highlight {
	if high == nil || h.bars.IsFullBarHighlightEnabled() {
		return high
	}
	d := h.data()
	if d == nil {
		return high
	}
	set := d.DataSetByIndex(high.DataSetIndex)
	if set == nil || !set.IsStacked() {
		return high
	}

	e := set.EntryForXValueClosest(xVal, yVal)
	if e == nil {
		return nil
	}
	if !e.IsStacked() {
		return high
	}

	stackIndex := ClosestStackIndex(e.Ranges, yVal)
	px := h.pixelFor(h.provider.Transformer(set.Axis), high.X, e.Ranges[stackIndex].To)
	return &Highlight{
		X: e.X, Y: e.Y,
		XPx: px.X, YPx: px.Y,
		DataIndex:    high.DataIndex,
		DataSetIndex: high.DataSetIndex,
		StackIndex:   stackIndex,
		Axis:         high.Axis,
	}
}

// ClosestStackIndex returns the index of the range containing v. Values
// below every range map to 0 and values above the last range to the last
// index.
func ClosestStackIndex(ranges []data.Range, v float64) int {
	if len(ranges) == 0 {
		return 0
	}
	for i, r := range ranges {
		if r.Contains(v) {
			return i
		}
	}
	last := len(ranges) - 1
	if v > ranges[last].To {
		return last
	}
	return 0
}

// HorizontalBarHighlighter serves horizontal bar charts, where the value
// axis is horizontal. Its provider's transformers map (yValue, xValue)
// pairs.
type HorizontalBarHighlighter struct {
	*BarHighlighter
}

// NewHorizontalBarHighlighter returns a highlighter for a horizontal bar
// chart.
func NewHorizontalBarHighlighter(provider BarDataProvider) *HorizontalBarHighlighter {
	b := newBarHighlighter(provider, provider.Data)
	b.touchValues = func(x, y float64) (float64, float64) {
		p := provider.Transformer(data.AxisLeft).ValuesByTouchPoint(x, y)
		return p.Y, p.X
	}
	b.pixelFor = func(t *viewport.Transformer, xVal, yVal float64) viewport.Point {
		return t.PixelForValues(yVal, xVal)
	}
	b.distance = func(x, y float64, c *Highlight) float64 {
		return math.Abs(y - c.YPx)
	}
	b.sideDistance = func(x, y float64, c *Highlight) float64 {
		return math.Abs(x - c.XPx)
	}
	return &HorizontalBarHighlighter{BarHighlighter: b}
}
