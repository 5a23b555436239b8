package chartgeom

import (
	"math"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/axis"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/data"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
)

// Report describes the chart layout after all changes so far.
func (c *Chart) Report() models.ChartReport {
	r := c.vp.ContentRect()
	rep := models.ChartReport{
		Name:   c.Name,
		Title:  c.Title,
		Kind:   c.kind.String(),
		Source: "chart",
		Range:  c.src.rng,
		L:      c.src.left,
		T:      c.src.top,
		Series: c.src.series,
		Viewport: models.ViewportReport{
			ChartWidth:  c.vp.ChartWidth(),
			ChartHeight: c.vp.ChartHeight(),
			Content:     models.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom},
			ScaleX:      c.vp.ScaleX(),
			ScaleY:      c.vp.ScaleY(),
			TransX:      c.vp.TransX(),
			TransY:      c.vp.TransY(),
		},
	}
	if c.src.kind != "" {
		rep.Source = c.src.kind
	}
	if c.data == nil {
		return rep
	}

	rep.DataSets = c.dataSetReports()

	switch c.kind {
	case KindPie:
		rep.Pie = &models.PieReport{
			Rotation:       c.rotation,
			DrawAngles:     c.drawAngles,
			AbsoluteAngles: c.absoluteAngles,
		}
	case KindRadar:
		rep.XAxis = axisReport(&c.xAxis.Base, "", false)
		rep.LeftAxis = axisReport(&c.left.Base, c.left.Side.String(), c.left.Inverted)
		rep.Radar = &models.RadarReport{SliceAngle: c.SliceAngle(), Factor: c.Factor()}
	default:
		rep.XAxis = axisReport(&c.xAxis.Base, "", false)
		rep.LeftAxis = axisReport(&c.left.Base, c.left.Side.String(), c.left.Inverted)
		rep.RightAxis = axisReport(&c.right.Base, c.right.Side.String(), c.right.Inverted)
		if c.canTransform() {
			rep.Viewport.VisibleX = []float64{c.LowestVisibleX(), c.HighestVisibleX()}
		}
	}

	if c.HasHighlight() {
		h := c.highlighted[0]
		hr := &models.HighlightReport{
			X:            h.X,
			Y:            h.Y,
			XPx:          h.XPx,
			YPx:          h.YPx,
			DataSetIndex: h.DataSetIndex,
			StackIndex:   h.StackIndex,
			Axis:         h.Axis.String(),
		}
		if c.combined != nil {
			hr.Part = data.Part(h.DataIndex).String()
		}
		if set := c.DataSetForHighlight(h); set != nil {
			hr.DataSet = set.Label
		}
		rep.Highlight = hr
	}
	return rep
}

func (c *Chart) dataSetReports() []models.DataSetReport {
	var out []models.DataSetReport
	add := func(d *data.ChartData, part string) {
		for _, s := range d.DataSets {
			out = append(out, models.DataSetReport{
				Label:   s.Label,
				Axis:    s.Axis.String(),
				Part:    part,
				Entries: s.EntryCount(),
				XMin:    finite(s.XMin()),
				XMax:    finite(s.XMax()),
				YMin:    finite(s.YMin()),
				YMax:    finite(s.YMax()),
				Stacked: s.IsStacked(),
			})
		}
	}

	if c.combined == nil {
		add(c.data, "")
		return out
	}
	for p, d := range c.combined.Parts {
		if d != nil {
			add(d, data.Part(p).String())
		}
	}
	return out
}

func axisReport(a *axis.Base, side string, inverted bool) *models.AxisReport {
	if !a.Enabled {
		return nil
	}
	return &models.AxisReport{
		Side:     side,
		Min:      a.AxisMinimum(),
		Max:      a.AxisMaximum(),
		Range:    a.AxisRange(),
		Ticks:    a.Entries,
		Decimals: a.Decimals,
		Inverted: inverted,
	}
}

// finite maps the extents of empty data sets to 0 so they encode as JSON.
func finite(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) || math.Abs(v) == math.MaxFloat64 {
		return 0
	}
	return v
}
