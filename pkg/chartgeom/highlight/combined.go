package highlight

import (
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/data"
)

// CombinedHighlighter serves combined charts. Each part is searched in
// draw order; the bar part goes through a BarHighlighter. DataIndex of
// the result is the part.
type CombinedHighlighter struct {
	*ChartHighlighter
	combined CombinedDataProvider
	bars     *BarHighlighter
}

// NewCombinedHighlighter returns a highlighter for a combined chart.
func NewCombinedHighlighter(provider CombinedDataProvider) *CombinedHighlighter {
	bars := newBarHighlighter(provider, func() *data.ChartData {
		if c := provider.CombinedData(); c != nil {
			return c.Part(data.PartBar)
		}
		return nil
	})
	return &CombinedHighlighter{
		ChartHighlighter: NewChartHighlighter(provider),
		combined:         provider,
		bars:             bars,
	}
}

// Highlight returns the entry of any part nearest the touch pixel (x, y),
// or nil.
func (h *CombinedHighlighter) Highlight(x, y float64) *Highlight {
	xVal, _ := h.touchValues(x, y)
	return h.pick(h.partHighlights(xVal, x, y), x, y)
}

func (h *CombinedHighlighter) partHighlights(xVal, x, y float64) []*Highlight {
	c := h.combined.CombinedData()
	if c == nil {
		return nil
	}

	var out []*Highlight
	for _, part := range h.combined.DrawOrder() {
		d := c.Part(part)
		if d == nil {
			continue
		}

		if part == data.PartBar {
			if high := h.bars.Highlight(x, y); high != nil {
				high.DataIndex = int(part)
				out = append(out, high)
			}
			continue
		}

		for i, set := range d.DataSets {
			if !set.IsVisible() || !set.IsHighlightEnabled() {
				continue
			}
			for _, high := range h.buildHighlights(set, i, xVal, data.RoundClosest) {
				high.DataIndex = int(part)
				out = append(out, high)
			}
		}
	}
	return out
}
