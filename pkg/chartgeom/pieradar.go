package chartgeom

import (
	"math"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/highlight"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/viewport"
)

// CenterOffsets returns the center of the content rectangle, around
// which pie and radar charts are drawn.
func (c *Chart) CenterOffsets() viewport.Point { return c.vp.ContentCenter() }

// Radius returns the radius of a pie or radar chart.
func (c *Chart) Radius() float64 {
	r := c.vp.ContentRect()
	return math.Min(r.Width(), r.Height()) / 2
}

// RotationAngle returns the rotation in degrees, in [0, 360).
func (c *Chart) RotationAngle() float64 { return c.rotation }

// SetRotationAngle sets the rotation of a pie or radar chart.
func (c *Chart) SetRotationAngle(angle float64) {
	c.rotation = highlight.NormalizeAngle(angle)
}

// DrawAngles returns the angle of every pie slice in degrees.
func (c *Chart) DrawAngles() []float64 { return c.drawAngles }

// AbsoluteAngles returns the cumulative angle at the end of every pie
// slice.
func (c *Chart) AbsoluteAngles() []float64 { return c.absoluteAngles }

// SliceAngle returns the angle between two radar spokes, or 0 without
// data.
func (c *Chart) SliceAngle() float64 {
	if c.data == nil {
		return 0
	}
	s := c.data.MaxEntryCountSet()
	if s == nil || s.EntryCount() == 0 {
		return 0
	}
	return 360 / float64(s.EntryCount())
}

// Factor returns the pixels per value unit along a radar spoke.
func (c *Chart) Factor() float64 {
	r := c.vp.ContentRect()
	rng := c.left.AxisRange()
	if rng == 0 {
		return 0
	}
	return math.Min(r.Width()/2, r.Height()/2) / rng
}

// calcAngles derives the slice angles of the first data set from the
// absolute entry values.
func (c *Chart) calcAngles() {
	c.drawAngles, c.absoluteAngles = nil, nil
	set := c.data.DataSetByIndex(0)
	if set == nil {
		return
	}

	var sum float64
	for _, e := range set.Entries {
		sum += math.Abs(e.Y)
	}

	c.drawAngles = make([]float64, len(set.Entries))
	c.absoluteAngles = make([]float64, len(set.Entries))
	var acc float64
	for i, e := range set.Entries {
		if sum > 0 {
			c.drawAngles[i] = math.Abs(e.Y) / sum * 360
		}
		acc += c.drawAngles[i]
		c.absoluteAngles[i] = acc
	}
}
