package chartgeom

import (
	"math"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/data"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/highlight"
)

// SelectionListener is told when the highlight changes through
// HighlightValue, Tap or Drag.
type SelectionListener interface {
	OnValueSelected(e *data.Entry, h *highlight.Highlight)
	OnNothingSelected()
}

// SelectionFuncs adapts two functions to a SelectionListener. Nil
// functions are skipped.
type SelectionFuncs struct {
	Selected func(e *data.Entry, h *highlight.Highlight)
	Nothing  func()
}

func (f SelectionFuncs) OnValueSelected(e *data.Entry, h *highlight.Highlight) {
	if f.Selected != nil {
		f.Selected(e, h)
	}
}

func (f SelectionFuncs) OnNothingSelected() {
	if f.Nothing != nil {
		f.Nothing()
	}
}

// SetSelectionListener sets the listener told about highlight changes.
func (c *Chart) SetSelectionListener(l SelectionListener) { c.listener = l }

// HighlightByTouchPoint returns the highlight for the touch pixel (x, y)
// without changing the highlighted values, or nil.
func (c *Chart) HighlightByTouchPoint(x, y float64) *highlight.Highlight {
	if c.data == nil {
		c.log.Debug("no data to highlight", "chart", c.Name)
		return nil
	}
	if !c.kind.IsCircular() && !c.canTransform() {
		return nil
	}
	h := c.highlighter.Highlight(x, y)
	c.log.Debug("touch resolved", "chart", c.Name, "x", x, "y", y, "highlight", h)
	return h
}

// HighlightValue highlights the entry of data set dataSetIndex at x,
// nearest y when y is not NaN. An out-of-range data set index clears the
// highlight. For combined charts dataSetIndex counts the data sets of all
// parts in part order.
func (c *Chart) HighlightValue(x, y float64, dataSetIndex, stackIndex int, callListener bool) {
	if c.data == nil || dataSetIndex < 0 || dataSetIndex >= c.data.DataSetCount() {
		c.highlightValue(nil, callListener)
		return
	}

	set := c.data.DataSetByIndex(dataSetIndex)
	h := highlight.New(x, y, 0, 0, dataSetIndex, set.Axis)
	h.StackIndex = stackIndex
	if c.combined != nil {
		h.DataIndex, h.DataSetIndex = c.partIndex(dataSetIndex)
	}
	if e := c.entryForHighlight(h); e != nil {
		if math.IsNaN(h.Y) {
			h.Y = e.Y
		}
		if c.canTransform() {
			px := c.pixelForValues(set.Axis, e.X, e.Y)
			h.XPx, h.YPx = px.X, px.Y
		}
	}
	c.highlightValue(h, callListener)
}

// HighlightValues replaces the highlighted values without telling the
// listener. Nil clears the highlight.
func (c *Chart) HighlightValues(hs []*highlight.Highlight) {
	c.highlighted = hs
	c.lastTouched = nil
}

// Highlighted returns the highlighted values.
func (c *Chart) Highlighted() []*highlight.Highlight { return c.highlighted }

// HasHighlight reports whether any value is highlighted.
func (c *Chart) HasHighlight() bool {
	return len(c.highlighted) > 0 && c.highlighted[0] != nil
}

// Tap highlights the entry under the touch pixel (x, y). Tapping the
// highlighted entry again, or tapping beside every entry, clears the
// highlight.
func (c *Chart) Tap(x, y float64) *highlight.Highlight {
	if !c.opts.ShouldHighlightPerTap() {
		return nil
	}
	h := c.HighlightByTouchPoint(x, y)
	if h == nil || h.Equal(c.lastTouched) {
		c.highlightValue(nil, true)
		c.lastTouched = nil
		return nil
	}
	c.highlightValue(h, true)
	c.lastTouched = h
	return h
}

// Drag moves the highlight to the entry under the touch pixel (x, y).
// The highlight only changes when a different entry is found.
func (c *Chart) Drag(x, y float64) *highlight.Highlight {
	if !c.opts.ShouldHighlightPerDrag() {
		return nil
	}
	h := c.HighlightByTouchPoint(x, y)
	if h != nil && !h.Equal(c.lastTouched) {
		c.lastTouched = h
		c.highlightValue(h, true)
	}
	return c.lastTouched
}

// EntryForHighlight returns the entry a highlight refers to, or nil.
func (c *Chart) EntryForHighlight(h *highlight.Highlight) *data.Entry {
	if h == nil || c.data == nil {
		return nil
	}
	return c.entryForHighlight(h)
}

func (c *Chart) entryForHighlight(h *highlight.Highlight) *data.Entry {
	switch {
	case c.combined != nil:
		return c.combined.EntryForHighlight(h.DataIndex, h.DataSetIndex, h.X, h.Y)
	case c.kind.IsCircular():
		set := c.data.DataSetByIndex(h.DataSetIndex)
		if set == nil {
			return nil
		}
		return set.EntryAt(int(h.X))
	}
	return c.data.EntryForHighlight(h.DataSetIndex, h.X, h.Y)
}

// DataSetForHighlight returns the data set a highlight refers to, or nil.
func (c *Chart) DataSetForHighlight(h *highlight.Highlight) *data.DataSet {
	if h == nil || c.data == nil {
		return nil
	}
	if c.combined != nil {
		d := c.combined.Part(data.Part(h.DataIndex))
		if d == nil {
			return nil
		}
		return d.DataSetByIndex(h.DataSetIndex)
	}
	return c.data.DataSetByIndex(h.DataSetIndex)
}

// highlightValue sets h as the only highlighted value, or clears the
// highlight when h is nil or refers to no entry.
func (c *Chart) highlightValue(h *highlight.Highlight, callListener bool) {
	var e *data.Entry
	if h != nil {
		e = c.EntryForHighlight(h)
		if e == nil {
			h = nil
		}
	}
	if h == nil {
		c.highlighted = nil
	} else {
		c.highlighted = []*highlight.Highlight{h}
	}

	if !callListener || c.listener == nil {
		return
	}
	if h == nil {
		c.listener.OnNothingSelected()
		return
	}
	c.listener.OnValueSelected(e, h)
}

func (c *Chart) resetHighlight() {
	c.highlighted = nil
	c.lastTouched = nil
}

// partIndex maps an index into the combined aggregate to a part and an
// index within that part.
func (c *Chart) partIndex(i int) (int, int) {
	for p, d := range c.combined.Parts {
		if d == nil {
			continue
		}
		if i < len(d.DataSets) {
			return p, i
		}
		i -= len(d.DataSets)
	}
	return -1, -1
}
