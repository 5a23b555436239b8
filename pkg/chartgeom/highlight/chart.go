package highlight

import (
	"math"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/data"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/viewport"
)

// ChartHighlighter serves line, scatter, candle and bubble charts. The
// bar variants reuse it and replace the hooks that depend on
// orientation.
type ChartHighlighter struct {
	provider DataProvider

	// data returns the chart data searched for entries.
	data func() *data.ChartData
	// touchValues converts a touch pixel to (xValue, yValue).
	touchValues func(x, y float64) (float64, float64)
	// pixelFor returns the pixel of a value pair on a transformer.
	pixelFor func(t *viewport.Transformer, xVal, yVal float64) viewport.Point
	// distance measures a candidate against the touch.
	distance func(x, y float64, h *Highlight) float64
	// sideDistance measures a candidate along the value axis and picks
	// the y-axis side.
	sideDistance func(x, y float64, h *Highlight) float64
}

// NewChartHighlighter returns a highlighter for provider.
func NewChartHighlighter(provider DataProvider) *ChartHighlighter {
	h := &ChartHighlighter{provider: provider}
	h.data = provider.Data
	h.touchValues = func(x, y float64) (float64, float64) {
		p := provider.Transformer(data.AxisLeft).ValuesByTouchPoint(x, y)
		return p.X, p.Y
	}
	h.pixelFor = func(t *viewport.Transformer, xVal, yVal float64) viewport.Point {
		return t.PixelForValues(xVal, yVal)
	}
	h.distance = func(x, y float64, c *Highlight) float64 {
		return math.Hypot(x-c.XPx, y-c.YPx)
	}
	h.sideDistance = func(x, y float64, c *Highlight) float64 {
		return math.Abs(y - c.YPx)
	}
	return h
}

// Highlight returns the entry nearest the touch pixel (x, y), or nil.
func (h *ChartHighlighter) Highlight(x, y float64) *Highlight {
	xVal, _ := h.touchValues(x, y)
	return h.highlightForX(xVal, x, y)
}

func (h *ChartHighlighter) highlightForX(xVal, x, y float64) *Highlight {
	candidates := h.highlightsAtXValue(xVal)
	return h.pick(candidates, x, y)
}

// pick chooses the y-axis side nearest the touch and then the nearest
// candidate on that side within the maximum highlight distance.
func (h *ChartHighlighter) pick(candidates []*Highlight, x, y float64) *Highlight {
	if len(candidates) == 0 {
		return nil
	}
	left := h.minimumDistance(candidates, x, y, data.AxisLeft)
	right := h.minimumDistance(candidates, x, y, data.AxisRight)
	side := data.AxisLeft
	if right < left {
		side = data.AxisRight
	}
	return h.closestByPixel(candidates, x, y, side, h.provider.MaxHighlightDistance())
}

func (h *ChartHighlighter) minimumDistance(candidates []*Highlight, x, y float64, side data.AxisDependency) float64 {
	best := math.MaxFloat64
	for _, c := range candidates {
		if c.Axis != side {
			continue
		}
		if d := h.sideDistance(x, y, c); d < best {
			best = d
		}
	}
	return best
}

// closestByPixel returns the first candidate on side with the smallest
// distance, as long as that distance does not exceed maxDistance.
func (h *ChartHighlighter) closestByPixel(candidates []*Highlight, x, y float64, side data.AxisDependency, maxDistance float64) *Highlight {
	var closest *Highlight
	best := maxDistance
	for _, c := range candidates {
		if c.Axis != side {
			continue
		}
		d := h.distance(x, y, c)
		if d > maxDistance {
			continue
		}
		if closest == nil || d < best {
			closest = c
			best = d
		}
	}
	return closest
}

func (h *ChartHighlighter) highlightsAtXValue(xVal float64) []*Highlight {
	d := h.data()
	if d == nil {
		return nil
	}
	var out []*Highlight
	for i, set := range d.DataSets {
		if !set.IsVisible() || !set.IsHighlightEnabled() {
			continue
		}
		out = append(out, h.buildHighlights(set, i, xVal, data.RoundClosest)...)
	}
	return out
}

// buildHighlights returns a highlight for every entry of set at xVal,
// or at the entry nearest xVal when none sits exactly on it.
func (h *ChartHighlighter) buildHighlights(set *data.DataSet, dataSetIndex int, xVal float64, rounding data.Rounding) []*Highlight {
	entries := set.EntriesForXValue(xVal)
	if len(entries) == 0 {
		closest := set.EntryForXValue(xVal, math.NaN(), rounding)
		if closest != nil {
			entries = set.EntriesForXValue(closest.X)
		}
	}
	if len(entries) == 0 {
		return nil
	}

	t := h.provider.Transformer(set.Axis)
	out := make([]*Highlight, 0, len(entries))
	for _, e := range entries {
		px := h.pixelFor(t, e.X, e.Y)
		out = append(out, New(e.X, e.Y, px.X, px.Y, dataSetIndex, set.Axis))
	}
	return out
}
