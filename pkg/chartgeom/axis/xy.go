package axis

import (
	"math"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/data"
)

// XPosition is where the x axis is drawn.
type XPosition int

const (
	XBottom XPosition = iota
	XTop
	XBothSided
	XTopInside
	XBottomInside
)

func (p XPosition) String() string {
	switch p {
	case XTop:
		return "top"
	case XBothSided:
		return "both_sided"
	case XTopInside:
		return "top_inside"
	case XBottomInside:
		return "bottom_inside"
	default:
		return "bottom"
	}
}

// XAxis is the horizontal axis of a vertical chart, or the vertical one
// of a horizontal bar chart.
type XAxis struct {
	Base
	Position XPosition
}

// NewXAxis returns an x axis at the bottom.
func NewXAxis() *XAxis {
	return &XAxis{Base: newBase()}
}

// Default space reserved above and below the data, in percent of the
// range.
const DefaultSpacePercent = 10

// YAxis is one of the two value axes.
type YAxis struct {
	Base
	Side     data.AxisDependency
	Inverted bool

	// SpaceTop and SpaceBottom are percentages of the range added above
	// and below the data unless the bound is custom.
	SpaceTop    float64
	SpaceBottom float64
}

// NewYAxis returns a y axis for side.
func NewYAxis(side data.AxisDependency) *YAxis {
	return &YAxis{
		Base:        newBase(),
		Side:        side,
		SpaceTop:    DefaultSpacePercent,
		SpaceBottom: DefaultSpacePercent,
	}
}

// Calculate derives the range from the data extents. The data interval
// is widened if empty and then padded by SpaceTop and SpaceBottom.
func (a *YAxis) Calculate(dataMin, dataMax float64) {
	lo, hi := dataMin, dataMax
	if a.customMin {
		lo = a.min
	}
	if a.customMax {
		hi = a.max
	}

	rng := math.Abs(hi - lo)
	if rng == 0 {
		hi++
		lo--
		rng = math.Abs(hi - lo)
	}

	if !a.customMin {
		lo -= rng / 100 * a.SpaceBottom
	}
	if !a.customMax {
		hi += rng / 100 * a.SpaceTop
	}
	a.setRange(lo, hi)
}
