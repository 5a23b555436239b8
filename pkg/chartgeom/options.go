// Package chartgeom lays out charts: it owns the axes, the viewport and
// the highlighters of a chart and loads chart definitions from xlsx
// workbooks.
package chartgeom

import (
	"io"
	"log/slog"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/data"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/viewport"
)

// Default chart geometry used when a workbook does not store a size.
const (
	DefaultWidth  = 480
	DefaultHeight = 290
)

// DefaultMaxHighlightDistance is the largest pixel distance between a
// touch and a highlighted entry.
const DefaultMaxHighlightDistance = 500

// Offsets are the pixel margins between the chart bounds and the content
// rectangle.
type Offsets struct {
	Left, Top, Right, Bottom float64
}

// Options configures chart layout and interaction.
type Options struct {
	// Offsets are the margins around the content rectangle.
	Offsets Offsets
	// Width and Height are the chart size used when the source has none.
	Width, Height float64
	// MaxHighlightDistance limits how far a touch may be from an entry.
	MaxHighlightDistance float64
	// ZoomInFactor and ZoomOutFactor are used by ZoomIn and ZoomOut.
	ZoomInFactor, ZoomOutFactor float64
	// DragOffsetX and DragOffsetY let the content be dragged past its
	// edges.
	DragOffsetX, DragOffsetY float64
	// AutoScaleMinMax recomputes the y ranges from the visible x window
	// after every viewport change.
	AutoScaleMinMax bool
	// FitBars widens the x range by half a bar on each side.
	FitBars bool
	// FullBarHighlight highlights stacked bars as a whole.
	FullBarHighlight bool
	// RotationAngle is the initial rotation of pie and radar charts.
	RotationAngle float64
	// DrawOrder is the order of combined chart parts. Nil uses
	// data.DefaultDrawOrder.
	DrawOrder []data.Part

	// ScaleX enables zooming along x.
	// If nil, defaults to true.
	ScaleX *bool
	// ScaleY enables zooming along y.
	// If nil, defaults to true.
	ScaleY *bool
	// HighlightPerTap enables Tap.
	// If nil, defaults to true.
	HighlightPerTap *bool
	// HighlightPerDrag enables Drag.
	// If nil, defaults to true.
	HighlightPerDrag *bool
	// DetectTables turns dense numeric blocks of chartless sheets into
	// line charts when loading.
	// If nil, defaults to true.
	DetectTables *bool

	// Logger receives debug and warning output. If nil, output is
	// discarded.
	Logger *slog.Logger
}

// DefaultOptions returns default chart options.
func DefaultOptions() Options {
	return Options{
		Offsets:              Offsets{Left: 40, Top: 15, Right: 40, Bottom: 30},
		Width:                DefaultWidth,
		Height:               DefaultHeight,
		MaxHighlightDistance: DefaultMaxHighlightDistance,
		ZoomInFactor:         viewport.DefaultZoomInFactor,
		ZoomOutFactor:        viewport.DefaultZoomOutFactor,
	}
}

// ShouldScaleX returns whether zooming along x is enabled.
func (o Options) ShouldScaleX() bool {
	if o.ScaleX != nil {
		return *o.ScaleX
	}
	return true
}

// ShouldScaleY returns whether zooming along y is enabled.
func (o Options) ShouldScaleY() bool {
	if o.ScaleY != nil {
		return *o.ScaleY
	}
	return true
}

// ShouldHighlightPerTap returns whether taps change the highlight.
func (o Options) ShouldHighlightPerTap() bool {
	if o.HighlightPerTap != nil {
		return *o.HighlightPerTap
	}
	return true
}

// ShouldHighlightPerDrag returns whether drags change the highlight.
func (o Options) ShouldHighlightPerDrag() bool {
	if o.HighlightPerDrag != nil {
		return *o.HighlightPerDrag
	}
	return true
}

// ShouldDetectTables returns whether table candidates become charts.
func (o Options) ShouldDetectTables() bool {
	if o.DetectTables != nil {
		return *o.DetectTables
	}
	return true
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) drawOrder() []data.Part {
	if len(o.DrawOrder) > 0 {
		return o.DrawOrder
	}
	return data.DefaultDrawOrder
}
