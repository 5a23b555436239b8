package chartgeom

import (
	"math"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/axis"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/data"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/viewport"
)

// Zoom scales the view by (sx, sy) around the pixel (px, py). A factor
// along an axis with scaling disabled is ignored.
func (c *Chart) Zoom(sx, sy, px, py float64) {
	if !c.opts.ShouldScaleX() {
		sx = 1
	}
	if !c.opts.ShouldScaleY() {
		sy = 1
	}
	tx, ty := c.touchPivot(px, py)
	c.commit(c.vp.Zoom(sx, sy, tx, ty))
}

// ZoomIn zooms in by the zoom-in factor around the content center.
func (c *Chart) ZoomIn() {
	center := c.vp.ContentCenter()
	tx, ty := c.touchPivot(center.X, center.Y)
	c.commit(c.vp.ZoomIn(tx, ty))
}

// ZoomOut zooms out by the zoom-out factor around the content center.
func (c *Chart) ZoomOut() {
	center := c.vp.ContentCenter()
	tx, ty := c.touchPivot(center.X, center.Y)
	c.commit(c.vp.ZoomOut(tx, ty))
}

// FitScreen resets the zoom and the minimum scales.
func (c *Chart) FitScreen() {
	c.commit(c.vp.FitScreen())
}

// ResetZoom resets the zoom and pan.
func (c *Chart) ResetZoom() {
	c.commit(c.vp.ResetZoom())
}

// ZoomToValue scales the view by (sx, sy) and centers it on the value
// (xValue, yValue) of side. It waits for the chart dimensions if needed.
func (c *Chart) ZoomToValue(sx, sy, xValue, yValue float64, side data.AxisDependency) *viewport.Job {
	return c.addJob("zoom", func() {
		c.vp.Refresh(c.vp.ZoomAtOrigin(sx, sy))
		c.centerOn(side, xValue, yValue)
	})
}

// MoveViewToX moves the view so that xValue is the lowest visible x.
func (c *Chart) MoveViewToX(xValue float64) *viewport.Job {
	return c.addJob("move", func() {
		r := c.vp.ContentRect()
		px := c.pixelForValues(data.AxisLeft, xValue, 0)
		if c.kind.IsHorizontal() {
			c.vp.CenterViewPort(r.Left, px.Y-r.Height())
		} else {
			c.vp.CenterViewPort(px.X, r.Top)
		}
		c.afterViewportChange()
	})
}

// MoveViewTo moves the view so that xValue is the lowest visible x and
// yValue of side is centered along the value axis.
func (c *Chart) MoveViewTo(xValue, yValue float64, side data.AxisDependency) *viewport.Job {
	return c.addJob("move", func() {
		r := c.vp.ContentRect()
		px := c.pixelForValues(side, xValue, yValue)
		if c.kind.IsHorizontal() {
			c.vp.CenterViewPort(px.X-r.Width()/2, px.Y-r.Height())
		} else {
			c.vp.CenterViewPort(px.X, px.Y-r.Height()/2)
		}
		c.afterViewportChange()
	})
}

// CenterViewTo centers the view on the value (xValue, yValue) of side.
func (c *Chart) CenterViewTo(xValue, yValue float64, side data.AxisDependency) *viewport.Job {
	return c.addJob("center", func() {
		c.centerOn(side, xValue, yValue)
	})
}

// RemoveViewportJob cancels a job that is still waiting for the chart
// dimensions. It reports whether the job was pending.
func (c *Chart) RemoveViewportJob(j *viewport.Job) bool {
	return c.jobs.Remove(j)
}

// PendingViewportJobs returns the number of jobs waiting for the chart
// dimensions.
func (c *Chart) PendingViewportJobs() int { return c.jobs.Len() }

// SetVisibleXRangeMaximum limits zooming out so that at most maxRange x
// units are visible. A range that is not positive and finite is ignored.
func (c *Chart) SetVisibleXRangeMaximum(maxRange float64) {
	if !validRange(maxRange) {
		return
	}
	scale := c.xAxis.AxisRange() / maxRange
	if c.kind.IsHorizontal() {
		c.vp.SetMinimumScaleY(scale)
	} else {
		c.vp.SetMinimumScaleX(scale)
	}
	c.afterViewportChange()
}

// SetVisibleXRangeMinimum limits zooming in so that at least minRange x
// units stay visible. A range that is not positive and finite is ignored.
func (c *Chart) SetVisibleXRangeMinimum(minRange float64) {
	if !validRange(minRange) {
		return
	}
	scale := c.xAxis.AxisRange() / minRange
	if c.kind.IsHorizontal() {
		c.vp.SetMaximumScaleY(scale)
	} else {
		c.vp.SetMaximumScaleX(scale)
	}
	c.afterViewportChange()
}

// SetVisibleXRange limits the visible x span to [minRange, maxRange]. The
// bounds are swapped if given in the wrong order; a bound that is not
// positive and finite leaves that side of the envelope open.
func (c *Chart) SetVisibleXRange(minRange, maxRange float64) {
	minScale, maxScale, ok := visibleScales(c.xAxis.AxisRange(), minRange, maxRange)
	if !ok {
		return
	}
	if c.kind.IsHorizontal() {
		c.vp.SetMinMaxScaleY(minScale, maxScale)
	} else {
		c.vp.SetMinMaxScaleX(minScale, maxScale)
	}
	c.afterViewportChange()
}

// SetVisibleYRange limits the visible span of the side axis to
// [minRange, maxRange], with the same rules as SetVisibleXRange.
func (c *Chart) SetVisibleYRange(minRange, maxRange float64, side data.AxisDependency) {
	minScale, maxScale, ok := visibleScales(c.axisRange(side), minRange, maxRange)
	if !ok {
		return
	}
	if c.kind.IsHorizontal() {
		c.vp.SetMinMaxScaleX(minScale, maxScale)
	} else {
		c.vp.SetMinMaxScaleY(minScale, maxScale)
	}
	c.afterViewportChange()
}

// visibleScales turns a visible span of an axis covering rng into a scale
// envelope. A maximum scale of 0 leaves the envelope unbounded. It
// reports false when neither bound is usable.
func visibleScales(rng, minRange, maxRange float64) (float64, float64, bool) {
	if minRange > maxRange {
		minRange, maxRange = maxRange, minRange
	}
	if !validRange(minRange) && !validRange(maxRange) {
		return 0, 0, false
	}
	minScale, maxScale := 1.0, 0.0
	if validRange(maxRange) {
		minScale = rng / maxRange
	}
	if validRange(minRange) {
		maxScale = rng / minRange
	}
	return minScale, maxScale, true
}

func validRange(r float64) bool {
	return r > 0 && !math.IsInf(r, 1)
}

// LowestVisibleX returns the lowest x value inside the content
// rectangle.
func (c *Chart) LowestVisibleX() float64 {
	if !c.canTransform() {
		return c.xAxis.AxisMinimum()
	}
	return c.v.lowestVisibleX(c)
}

// HighestVisibleX returns the highest x value inside the content
// rectangle.
func (c *Chart) HighestVisibleX() float64 {
	if !c.canTransform() {
		return c.xAxis.AxisMaximum()
	}
	return c.v.highestVisibleX(c)
}

// VisibleYRange returns the lowest and highest visible value of the side
// axis.
func (c *Chart) VisibleYRange(side data.AxisDependency) (float64, float64) {
	if !c.canTransform() {
		a := c.yAxis(side)
		return a.AxisMinimum(), a.AxisMaximum()
	}
	return c.visibleYRange(side)
}

func (c *Chart) lowestVisibleXVertical() float64 {
	r := c.vp.ContentRect()
	p := c.leftT.ValuesByTouchPoint(r.Left, r.Bottom)
	return math.Max(c.xAxis.AxisMinimum(), p.X)
}

func (c *Chart) highestVisibleXVertical() float64 {
	r := c.vp.ContentRect()
	p := c.leftT.ValuesByTouchPoint(r.Right, r.Bottom)
	return math.Min(c.xAxis.AxisMaximum(), p.X)
}

func (c *Chart) lowestVisibleXHorizontal() float64 {
	r := c.vp.ContentRect()
	p := c.leftT.ValuesByTouchPoint(r.Left, r.Bottom)
	return math.Max(c.xAxis.AxisMinimum(), p.Y)
}

func (c *Chart) highestVisibleXHorizontal() float64 {
	r := c.vp.ContentRect()
	p := c.leftT.ValuesByTouchPoint(r.Left, r.Top)
	return math.Min(c.xAxis.AxisMaximum(), p.Y)
}

func (c *Chart) visibleYRange(side data.AxisDependency) (float64, float64) {
	t := c.Transformer(side)
	r := c.vp.ContentRect()
	var a, b float64
	if c.kind.IsHorizontal() {
		a = t.ValuesByTouchPoint(r.Left, r.Bottom).X
		b = t.ValuesByTouchPoint(r.Right, r.Bottom).X
	} else {
		a = t.ValuesByTouchPoint(r.Left, r.Top).Y
		b = t.ValuesByTouchPoint(r.Left, r.Bottom).Y
	}
	return math.Min(a, b), math.Max(a, b)
}

// xZoomedOut reports whether the whole x range is visible.
func (c *Chart) xZoomedOut() bool {
	if c.kind.IsHorizontal() {
		return c.vp.IsFullyZoomedOutY()
	}
	return c.vp.IsFullyZoomedOutX()
}

// yZoomedOut reports whether the whole y range is visible.
func (c *Chart) yZoomedOut() bool {
	if c.kind.IsHorizontal() {
		return c.vp.IsFullyZoomedOutX()
	}
	return c.vp.IsFullyZoomedOutY()
}

func (c *Chart) yAxis(side data.AxisDependency) *axis.YAxis {
	if side == data.AxisRight {
		return c.right
	}
	return c.left
}

func (c *Chart) axisRange(side data.AxisDependency) float64 {
	return c.yAxis(side).AxisRange()
}

// pixelForValues returns the pixel of the value pair (xValue, yValue) of
// side, whatever the orientation of the chart.
func (c *Chart) pixelForValues(side data.AxisDependency, xValue, yValue float64) viewport.Point {
	t := c.Transformer(side)
	if c.kind.IsHorizontal() {
		return t.PixelForValues(yValue, xValue)
	}
	return t.PixelForValues(xValue, yValue)
}

// centerOn pans the view so that (xValue, yValue) sits at the content
// center.
func (c *Chart) centerOn(side data.AxisDependency, xValue, yValue float64) {
	r := c.vp.ContentRect()
	px := c.pixelForValues(side, xValue, yValue)
	c.vp.CenterViewPort(px.X-r.Width()/2, px.Y-r.Height()/2)
	c.afterViewportChange()
}

// touchPivot converts a pixel into the coordinate space the touch matrix
// operates in.
func (c *Chart) touchPivot(px, py float64) (float64, float64) {
	r := c.vp.ContentRect()
	tx := px - r.Left
	if c.kind.IsHorizontal() && c.left.Inverted {
		tx = r.Right - px
	}
	ty := py - r.Bottom
	if !c.kind.IsHorizontal() && c.left.Inverted {
		ty = r.Top - py
	}
	return tx, ty
}

// addJob runs a viewport job now, or queues it until the chart has
// dimensions.
func (c *Chart) addJob(name string, run func()) *viewport.Job {
	j := viewport.NewJob(name, run)
	if c.vp.HasContent() {
		j.Run()
		return j
	}
	c.log.Debug("queued viewport job", "chart", c.Name, "job", name)
	c.jobs.Add(j)
	return j
}

// commit stores m as the touch matrix and refreshes what depends on the
// visible window.
func (c *Chart) commit(m viewport.Matrix) {
	c.vp.Refresh(m)
	c.afterViewportChange()
}

func (c *Chart) afterViewportChange() {
	if c.data == nil || c.kind.IsCircular() {
		return
	}
	if c.opts.AutoScaleMinMax && c.canTransform() {
		c.autoScale()
	}
	c.ComputeAxis()
}

// autoScale fits the y ranges to the entries inside the visible x window.
func (c *Chart) autoScale() {
	from, to := c.LowestVisibleX(), c.HighestVisibleX()
	if c.combined != nil {
		c.combined.CalcMinMaxY(from, to)
	} else {
		c.data.CalcMinMaxY(from, to)
	}
	c.v.calcMinMax(c)
	if err := c.calculateOffsets(); err != nil {
		c.log.Warn("content rect not updated", "chart", c.Name, "error", err)
	}
	c.log.Debug("auto scaled", "chart", c.Name, "from", from, "to", to,
		"left_min", c.left.AxisMinimum(), "left_max", c.left.AxisMaximum())
}
