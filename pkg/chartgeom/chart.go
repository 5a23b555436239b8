package chartgeom

import (
	"log/slog"
	"math"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/axis"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/data"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/highlight"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/viewport"
)

// AxisRangeProvider exposes the computed axis ranges of a chart.
type AxisRangeProvider interface {
	XChartMin() float64
	XChartMax() float64
	XRange() float64
	YChartMin() float64
	YChartMax() float64
}

// Highlightable resolves touches and values to highlights.
type Highlightable interface {
	HighlightByTouchPoint(x, y float64) *highlight.Highlight
	HighlightValue(x, y float64, dataSetIndex, stackIndex int, callListener bool)
	Highlighted() []*highlight.Highlight
}

var (
	_ AxisRangeProvider              = (*Chart)(nil)
	_ Highlightable                  = (*Chart)(nil)
	_ highlight.Transformable        = (*Chart)(nil)
	_ highlight.CombinedDataProvider = (*Chart)(nil)
	_ highlight.PieProvider          = (*Chart)(nil)
	_ highlight.RadarProvider        = (*Chart)(nil)
)

// Chart owns the data, axes, viewport and highlighter of one chart. The
// kind selects how ranges are derived, how values map to pixels and how
// touches resolve to entries.
//
// A Chart is not safe for concurrent use.
type Chart struct {
	// Name identifies the chart in errors and logs.
	Name string
	// Title is the chart title, if any.
	Title string

	kind Kind
	opts Options
	src  source
	log  *slog.Logger
	v    variant

	data     *data.ChartData
	combined *data.CombinedData

	xAxis       *axis.XAxis
	left, right *axis.YAxis

	vp            *viewport.Handler
	leftT, rightT *viewport.Transformer
	jobs          viewport.JobQueue

	highlighter highlight.Highlighter
	highlighted []*highlight.Highlight
	lastTouched *highlight.Highlight
	listener    SelectionListener

	rotation       float64
	drawAngles     []float64
	absoluteAngles []float64
}

// NewChart returns an empty chart of the given kind.
func NewChart(kind Kind, opts Options) *Chart {
	if opts.MaxHighlightDistance <= 0 {
		opts.MaxHighlightDistance = DefaultMaxHighlightDistance
	}
	c := &Chart{
		kind:     kind,
		opts:     opts,
		log:      opts.logger(),
		v:        variantFor(kind),
		xAxis:    axis.NewXAxis(),
		left:     axis.NewYAxis(data.AxisLeft),
		right:    axis.NewYAxis(data.AxisRight),
		vp:       viewport.NewHandler(),
		rotation: highlight.NormalizeAngle(opts.RotationAngle),
	}
	c.vp.SetZoomFactors(opts.ZoomInFactor, opts.ZoomOutFactor)
	c.vp.SetDragOffsetX(opts.DragOffsetX)
	c.vp.SetDragOffsetY(opts.DragOffsetY)

	if kind.IsHorizontal() {
		c.leftT = viewport.NewHorizontalTransformer(c.vp)
		c.rightT = viewport.NewHorizontalTransformer(c.vp)
	} else {
		c.leftT = viewport.NewTransformer(c.vp)
		c.rightT = viewport.NewTransformer(c.vp)
	}

	switch kind {
	case KindBar, KindHorizontalBar, KindCandle:
		c.xAxis.SetSpaceMin(0.5)
		c.xAxis.SetSpaceMax(0.5)
	case KindRadar:
		c.right.Enabled = false
	case KindPie:
		c.xAxis.Enabled = false
		c.left.Enabled = false
		c.right.Enabled = false
	}

	c.highlighter = c.v.newHighlighter(c)
	return c
}

// Kind returns the chart variant.
func (c *Chart) Kind() Kind { return c.kind }

// Options returns the options the chart was created with.
func (c *Chart) Options() Options { return c.opts }

// SetData sets the data of a non-combined chart and lays it out. Nil
// clears the chart.
func (c *Chart) SetData(d *data.ChartData) error {
	if c.kind == KindCombined {
		return NewChartError(c.Name, "SetData", ErrKindMismatch)
	}
	c.data = d
	c.combined = nil
	c.resetHighlight()
	if d != nil {
		c.NotifyDataSetChanged()
	}
	return nil
}

// SetCombinedData sets the data of a combined chart and lays it out.
func (c *Chart) SetCombinedData(d *data.CombinedData) error {
	if c.kind != KindCombined {
		return NewChartError(c.Name, "SetCombinedData", ErrKindMismatch)
	}
	c.combined = d
	c.data = nil
	if d != nil {
		c.data = d.Aggregate()
	}
	c.resetHighlight()
	if d != nil {
		c.NotifyDataSetChanged()
	}
	return nil
}

// Data returns the chart data, the aggregate of all parts for combined
// charts, or nil.
func (c *Chart) Data() *data.ChartData { return c.data }

// CombinedData returns the data of a combined chart, or nil.
func (c *Chart) CombinedData() *data.CombinedData { return c.combined }

// NotifyDataSetChanged recomputes the data extents, the axis ranges and
// the transformation matrices. Call it after changing the data or the
// axes.
func (c *Chart) NotifyDataSetChanged() {
	if c.data == nil {
		c.log.Debug("no data to lay out", "chart", c.Name)
		return
	}
	if c.combined != nil {
		c.combined.NotifyDataChanged()
	} else {
		c.data.NotifyDataChanged()
	}
	c.v.calcMinMax(c)
	if err := c.calculateOffsets(); err != nil {
		c.log.Warn("content rect not updated", "chart", c.Name, "error", err)
	}
	c.ComputeAxis()
}

// SetChartDimens sets the chart size, derives the content rectangle from
// the offsets and runs the viewport jobs that were waiting for it.
func (c *Chart) SetChartDimens(width, height float64) error {
	if o := c.opts.Offsets; width > 0 && height > 0 &&
		(width-o.Left-o.Right < 0 || height-o.Top-o.Bottom < 0) {
		return NewChartError(c.Name, "SetChartDimens", viewport.ErrInvalidContentRect)
	}
	if err := c.vp.SetChartDimens(width, height); err != nil {
		return NewChartError(c.Name, "SetChartDimens", err)
	}
	if err := c.calculateOffsets(); err != nil {
		return NewChartError(c.Name, "SetChartDimens", err)
	}
	if n := c.jobs.Len(); n > 0 {
		c.log.Debug("running queued viewport jobs", "chart", c.Name, "jobs", n)
		c.jobs.Drain()
	}
	c.afterViewportChange()
	return nil
}

// ViewPortHandler returns the viewport of the chart.
func (c *Chart) ViewPortHandler() *viewport.Handler { return c.vp }

// XAxis returns the x axis. Pie charts have none.
func (c *Chart) XAxis() (*axis.XAxis, error) {
	if c.kind == KindPie {
		return nil, NewChartError(c.Name, "XAxis", ErrAxisUnsupported)
	}
	return c.xAxis, nil
}

// AxisLeft returns the left y axis.
func (c *Chart) AxisLeft() (*axis.YAxis, error) { return c.Axis(data.AxisLeft) }

// AxisRight returns the right y axis.
func (c *Chart) AxisRight() (*axis.YAxis, error) { return c.Axis(data.AxisRight) }

// Axis returns the y axis of side. Pie charts have no y axis and radar
// charts only a left one.
func (c *Chart) Axis(side data.AxisDependency) (*axis.YAxis, error) {
	switch {
	case c.kind == KindPie, !side.Valid():
		return nil, NewChartError(c.Name, "Axis", ErrAxisUnsupported)
	case side == data.AxisRight && c.kind == KindRadar:
		return nil, NewChartError(c.Name, "Axis", ErrAxisUnsupported)
	case side == data.AxisRight:
		return c.right, nil
	}
	return c.left, nil
}

// ComputeAxis recomputes the tick values of every enabled axis for the
// visible value window.
func (c *Chart) ComputeAxis() {
	if c.kind == KindPie {
		return
	}
	lo, hi := c.xAxis.AxisMinimum(), c.xAxis.AxisMaximum()
	if c.canTransform() && !c.xZoomedOut() {
		lo, hi = c.LowestVisibleX(), c.HighestVisibleX()
	}
	c.xAxis.ComputeAxisValues(lo, hi)

	for _, a := range []*axis.YAxis{c.left, c.right} {
		if !a.Enabled {
			continue
		}
		lo, hi := a.AxisMinimum(), a.AxisMaximum()
		if c.canTransform() && !c.yZoomedOut() {
			lo, hi = c.visibleYRange(a.Side)
		}
		a.ComputeAxisValues(lo, hi)
	}
}

// Transformer returns the transformer of side.
func (c *Chart) Transformer(side data.AxisDependency) *viewport.Transformer {
	if side == data.AxisRight {
		return c.rightT
	}
	return c.leftT
}

// XChartMin returns the x axis minimum.
func (c *Chart) XChartMin() float64 { return c.xAxis.AxisMinimum() }

// XChartMax returns the x axis maximum.
func (c *Chart) XChartMax() float64 { return c.xAxis.AxisMaximum() }

// XRange returns the x axis range.
func (c *Chart) XRange() float64 { return c.xAxis.AxisRange() }

// YChartMin returns the lowest y axis minimum. Radar charts only have
// the left axis.
func (c *Chart) YChartMin() float64 {
	if c.kind == KindRadar {
		return c.left.AxisMinimum()
	}
	return math.Min(c.left.AxisMinimum(), c.right.AxisMinimum())
}

// YChartMax returns the highest y axis maximum.
func (c *Chart) YChartMax() float64 {
	if c.kind == KindRadar {
		return c.left.AxisMaximum()
	}
	return math.Max(c.left.AxisMaximum(), c.right.AxisMaximum())
}

// MaxHighlightDistance returns the largest pixel distance of a highlight
// from its touch.
func (c *Chart) MaxHighlightDistance() float64 { return c.opts.MaxHighlightDistance }

// IsFullBarHighlightEnabled reports whether stacked bars highlight as a
// whole.
func (c *Chart) IsFullBarHighlightEnabled() bool { return c.opts.FullBarHighlight }

// DrawOrder returns the order of combined chart parts.
func (c *Chart) DrawOrder() []data.Part { return c.opts.drawOrder() }

// GroupBars spreads the data sets of a bar chart into groups starting at
// fromX and lays the chart out again.
func (c *Chart) GroupBars(fromX, groupSpace, barSpace float64) error {
	var bars *data.ChartData
	switch c.kind {
	case KindBar, KindHorizontalBar:
		bars = c.data
	case KindCombined:
		if c.combined != nil {
			bars = c.combined.Part(data.PartBar)
		}
	default:
		return NewChartError(c.Name, "GroupBars", ErrKindMismatch)
	}
	if bars == nil {
		return NewChartError(c.Name, "GroupBars", ErrNoData)
	}
	if err := bars.GroupBars(fromX, groupSpace, barSpace); err != nil {
		return NewChartError(c.Name, "GroupBars", err)
	}
	c.NotifyDataSetChanged()
	return nil
}

// Snapshot returns a deep copy of the chart data for use outside the
// chart, e.g. by renderers.
func (c *Chart) Snapshot() (*data.ChartData, error) {
	if c.data == nil {
		return nil, NewChartError(c.Name, "Snapshot", ErrNoData)
	}
	d, err := c.data.Clone()
	if err != nil {
		return nil, NewChartError(c.Name, "Snapshot", err)
	}
	return d, nil
}

func (c *Chart) calcXRange(barWidth float64) {
	c.xAxis.Calculate(c.data.XMin()-barWidth/2, c.data.XMax()+barWidth/2)
}

func (c *Chart) calcYRanges() {
	d := c.data
	c.left.Calculate(d.AxisYMin(data.AxisLeft), d.AxisYMax(data.AxisLeft))
	c.right.Calculate(d.AxisYMin(data.AxisRight), d.AxisYMax(data.AxisRight))
}

func (c *Chart) calcAxisMinMax() {
	c.calcXRange(0)
	c.calcYRanges()
}

func (c *Chart) calcBarMinMax() {
	var w float64
	if c.opts.FitBars {
		w = c.data.BarWidth
	}
	c.calcXRange(w)
	c.calcYRanges()
}

func (c *Chart) calcCombinedMinMax() {
	var w float64
	if c.opts.FitBars && c.combined != nil {
		if bars := c.combined.Part(data.PartBar); bars != nil {
			w = bars.BarWidth
		}
	}
	c.calcXRange(w)
	c.calcYRanges()
}

func (c *Chart) calcRadarMinMax() {
	d := c.data
	c.left.Calculate(d.AxisYMin(data.AxisLeft), d.AxisYMax(data.AxisLeft))
	var n int
	if s := d.MaxEntryCountSet(); s != nil {
		n = s.EntryCount()
	}
	c.xAxis.Calculate(0, float64(n))
}

// calculateOffsets applies the offsets to the viewport and prepares the
// matrices of both transformers.
func (c *Chart) calculateOffsets() error {
	if !c.vp.HasChartDimens() {
		return nil
	}
	o := c.opts.Offsets
	if err := c.vp.RestrainViewPort(o.Left, o.Top, o.Right, o.Bottom); err != nil {
		return err
	}
	c.leftT.PrepareMatrixOffset(c.left.Inverted)
	c.rightT.PrepareMatrixOffset(c.right.Inverted)
	c.v.prepareValuePx(c)
	return nil
}

func (c *Chart) prepareValuePxVertical() {
	x := c.xAxis
	c.rightT.PrepareMatrixValuePx(x.AxisMinimum(), x.AxisRange(), c.right.AxisRange(), c.right.AxisMinimum())
	c.leftT.PrepareMatrixValuePx(x.AxisMinimum(), x.AxisRange(), c.left.AxisRange(), c.left.AxisMinimum())
}

func (c *Chart) prepareValuePxHorizontal() {
	x := c.xAxis
	c.rightT.PrepareMatrixValuePx(c.right.AxisMinimum(), c.right.AxisRange(), x.AxisRange(), x.AxisMinimum())
	c.leftT.PrepareMatrixValuePx(c.left.AxisMinimum(), c.left.AxisRange(), x.AxisRange(), x.AxisMinimum())
}

// canTransform reports whether pixels can be mapped back to values. Until
// the chart has data and a content rectangle the value matrices are
// singular.
func (c *Chart) canTransform() bool {
	return c.data != nil && !c.kind.IsCircular() && c.vp.HasContent()
}
