package highlight

import (
	"math"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/viewport"
)

// NormalizeAngle maps angle in degrees to [0, 360).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// AngleForPoint returns the angle of (x, y) around center in degrees,
// clockwise from north, in [0, 360).
func AngleForPoint(center viewport.Point, x, y float64) float64 {
	deg := math.Atan2(x-center.X, -(y-center.Y)) * 180 / math.Pi
	return NormalizeAngle(deg)
}

// DistanceToCenter returns the pixel distance of (x, y) from center.
func DistanceToCenter(center viewport.Point, x, y float64) float64 {
	return math.Hypot(x-center.X, y-center.Y)
}

// PositionOnCircle returns the point at distance dist from center in
// direction angle (degrees clockwise from north).
func PositionOnCircle(center viewport.Point, dist, angle float64) viewport.Point {
	rad := angle * math.Pi / 180
	return viewport.Point{
		X: center.X + dist*math.Sin(rad),
		Y: center.Y - dist*math.Cos(rad),
	}
}

// SliceIndexForAngle returns the index of the first cumulative angle
// above angle, or -1. An angle on a slice boundary belongs to the next
// slice.
func SliceIndexForAngle(absoluteAngles []float64, angle float64) int {
	for i, a := range absoluteAngles {
		if a > angle {
			return i
		}
	}
	return -1
}

// PieHighlighter resolves touches on a pie chart to slices.
type PieHighlighter struct {
	provider PieProvider
}

// NewPieHighlighter returns a highlighter for a pie chart.
func NewPieHighlighter(provider PieProvider) *PieHighlighter {
	return &PieHighlighter{provider: provider}
}

// Highlight returns the slice under the touch pixel (x, y), or nil when
// the touch lies outside the pie.
func (h *PieHighlighter) Highlight(x, y float64) *Highlight {
	p := h.provider
	d := p.Data()
	if d == nil {
		return nil
	}
	center := p.CenterOffsets()
	if DistanceToCenter(center, x, y) > p.Radius() {
		return nil
	}

	angle := NormalizeAngle(AngleForPoint(center, x, y) - p.RotationAngle())
	index := SliceIndexForAngle(p.AbsoluteAngles(), angle)

	set := d.DataSetByIndex(0)
	if set == nil {
		return nil
	}
	e := set.EntryAt(index)
	if e == nil {
		return nil
	}
	return New(float64(index), e.Y, x, y, 0, set.Axis)
}

// RadarHighlighter resolves touches on a radar chart to the web point of
// the data set nearest the touch.
type RadarHighlighter struct {
	provider RadarProvider
}

// NewRadarHighlighter returns a highlighter for a radar chart.
func NewRadarHighlighter(provider RadarProvider) *RadarHighlighter {
	return &RadarHighlighter{provider: provider}
}

// IndexForAngle returns the spoke nearest angle. Spoke i owns the angles
// below sliceAngle*(i+1) - sliceAngle/2; angles past the last spoke wrap
// to spoke 0.
func IndexForAngle(angle, sliceAngle float64, count int) int {
	for i := 0; i < count; i++ {
		if sliceAngle*float64(i+1)-sliceAngle/2 > angle {
			return i
		}
	}
	return 0
}

// Highlight returns the radar point under the touch pixel (x, y), or nil
// when the touch lies outside the web.
func (h *RadarHighlighter) Highlight(x, y float64) *Highlight {
	p := h.provider
	d := p.Data()
	if d == nil {
		return nil
	}
	center := p.CenterOffsets()
	dist := DistanceToCenter(center, x, y)
	if dist > p.Radius() {
		return nil
	}
	maxSet := d.MaxEntryCountSet()
	if maxSet == nil || maxSet.EntryCount() == 0 {
		return nil
	}

	angle := NormalizeAngle(AngleForPoint(center, x, y) - p.RotationAngle())
	index := IndexForAngle(angle, p.SliceAngle(), maxSet.EntryCount())

	factor := p.Factor()
	if factor <= 0 {
		return nil
	}
	touchValue := dist / factor

	var closest *Highlight
	best := math.MaxFloat64
	for i, set := range d.DataSets {
		if !set.IsVisible() || !set.IsHighlightEnabled() {
			continue
		}
		e := set.EntryAt(index)
		if e == nil {
			continue
		}
		v := e.Y - p.YChartMin()
		pos := PositionOnCircle(center, v*factor, p.SliceAngle()*float64(index)+p.RotationAngle())
		if diff := math.Abs(v - touchValue); diff < best {
			best = diff
			closest = New(float64(index), e.Y, pos.X, pos.Y, i, set.Axis)
		}
	}
	return closest
}
