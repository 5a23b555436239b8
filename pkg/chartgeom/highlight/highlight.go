// Package highlight resolves touch positions to the chart entries under
// them. Highlighters are stateless; they read the chart through the
// provider interfaces below.
package highlight

import (
	"fmt"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/data"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/viewport"
)

// Highlight references one selected entry and the pixel it was resolved
// at.
type Highlight struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	XPx float64 `json:"x_px"`
	YPx float64 `json:"y_px"`

	// DataIndex is the part of a combined chart, 0 otherwise.
	DataIndex    int `json:"data_index"`
	DataSetIndex int `json:"data_set_index"`
	// StackIndex is the stacked segment, -1 when not stacked.
	StackIndex int                 `json:"stack_index"`
	Axis       data.AxisDependency `json:"axis"`
}

// New returns a non-stacked highlight.
func New(x, y, xPx, yPx float64, dataSetIndex int, axis data.AxisDependency) *Highlight {
	return &Highlight{
		X: x, Y: y, XPx: xPx, YPx: yPx,
		DataSetIndex: dataSetIndex,
		StackIndex:   -1,
		Axis:         axis,
	}
}

// IsStacked reports whether the highlight points at a stack segment.
func (h *Highlight) IsStacked() bool {
	return h.StackIndex >= 0
}

// Equal reports whether h and o select the same entry segment. Pixel
// positions and the y value are not compared.
func (h *Highlight) Equal(o *Highlight) bool {
	if h == nil || o == nil {
		return h == o
	}
	return h.DataIndex == o.DataIndex &&
		h.DataSetIndex == o.DataSetIndex &&
		h.X == o.X &&
		h.StackIndex == o.StackIndex
}

func (h *Highlight) String() string {
	if h == nil {
		return "Highlight{}"
	}
	return fmt.Sprintf("Highlight{x: %g, y: %g, dataIndex: %d, dataSetIndex: %d, stackIndex: %d}",
		h.X, h.Y, h.DataIndex, h.DataSetIndex, h.StackIndex)
}

// Highlighter resolves a touch pixel to a highlight, or nil.
type Highlighter interface {
	Highlight(x, y float64) *Highlight
}

// Transformable gives access to the per-side value/pixel transforms.
type Transformable interface {
	Transformer(side data.AxisDependency) *viewport.Transformer
}

// DataProvider is a chart with x/y axes.
type DataProvider interface {
	Transformable
	Data() *data.ChartData
	MaxHighlightDistance() float64
}

// BarDataProvider is a bar chart.
type BarDataProvider interface {
	DataProvider
	IsFullBarHighlightEnabled() bool
}

// CombinedDataProvider is a combined chart.
type CombinedDataProvider interface {
	BarDataProvider
	CombinedData() *data.CombinedData
	DrawOrder() []data.Part
}

// PieRadarProvider is a circular chart.
type PieRadarProvider interface {
	Data() *data.ChartData
	CenterOffsets() viewport.Point
	Radius() float64
	RotationAngle() float64
}

// PieProvider is a pie chart.
type PieProvider interface {
	PieRadarProvider
	AbsoluteAngles() []float64
}

// RadarProvider is a radar chart.
type RadarProvider interface {
	PieRadarProvider
	SliceAngle() float64
	Factor() float64
	YChartMin() float64
}
