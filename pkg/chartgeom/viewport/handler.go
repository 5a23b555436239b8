package viewport

import (
	"errors"
	"math"
)

// ErrInvalidContentRect indicates offsets that would leave a content
// rectangle with negative width or height.
var ErrInvalidContentRect = errors.New("content rectangle has negative size")

// Default zoom factors used by ZoomIn and ZoomOut.
const (
	DefaultZoomInFactor  = 1.4
	DefaultZoomOutFactor = 0.7
)

// Handler tracks the chart size, the content rectangle inside the chart
// margins and the touch matrix holding the user's zoom and pan.
//
// Candidate matrices returned by the zoom and translate methods take no
// effect until they are committed with Refresh.
type Handler struct {
	touch   Matrix
	content Rect

	chartWidth, chartHeight float64

	minScaleX, maxScaleX float64
	minScaleY, maxScaleY float64

	scaleX, scaleY float64
	transX, transY float64

	// drag offsets allow scrolling past the content edges
	transOffsetX, transOffsetY float64

	zoomInFactor, zoomOutFactor float64
}

// NewHandler returns a handler with no dimensions, an identity touch
// matrix and an unbounded zoom-in envelope.
func NewHandler() *Handler {
	return &Handler{
		touch:         Identity(),
		minScaleX:     1,
		maxScaleX:     math.MaxFloat64,
		minScaleY:     1,
		maxScaleY:     math.MaxFloat64,
		scaleX:        1,
		scaleY:        1,
		zoomInFactor:  DefaultZoomInFactor,
		zoomOutFactor: DefaultZoomOutFactor,
	}
}

// SetChartDimens sets the chart size and recomputes the content
// rectangle using the current offsets.
func (h *Handler) SetChartDimens(width, height float64) error {
	left, top := h.OffsetLeft(), h.OffsetTop()
	right, bottom := h.OffsetRight(), h.OffsetBottom()

	prevWidth, prevHeight := h.chartWidth, h.chartHeight
	h.chartWidth = width
	h.chartHeight = height
	if err := h.RestrainViewPort(left, top, right, bottom); err != nil {
		h.chartWidth, h.chartHeight = prevWidth, prevHeight
		return err
	}
	return nil
}

// RestrainViewPort sets the content rectangle to
// (left, top, width-right, height-bottom). The rectangle is left
// unchanged if the result would have negative width or height.
func (h *Handler) RestrainViewPort(left, top, right, bottom float64) error {
	r := Rect{Left: left, Top: top, Right: h.chartWidth - right, Bottom: h.chartHeight - bottom}
	if r.Width() < 0 || r.Height() < 0 {
		return ErrInvalidContentRect
	}
	h.content = r
	return nil
}

// SetZoomFactors sets the factors used by ZoomIn and ZoomOut. A zoom-in
// factor not above 1 or a zoom-out factor outside (0, 1) resets that
// factor to its default.
func (h *Handler) SetZoomFactors(in, out float64) {
	if in <= 1 || math.IsNaN(in) || math.IsInf(in, 0) {
		in = DefaultZoomInFactor
	}
	if out <= 0 || out >= 1 || math.IsNaN(out) {
		out = DefaultZoomOutFactor
	}
	h.zoomInFactor, h.zoomOutFactor = in, out
}

// ZoomIn returns the touch matrix zoomed in around (x, y).
func (h *Handler) ZoomIn(x, y float64) Matrix {
	return h.touch.PostScaleAt(h.zoomInFactor, h.zoomInFactor, x, y)
}

// ZoomOut returns the touch matrix zoomed out around (x, y).
func (h *Handler) ZoomOut(x, y float64) Matrix {
	return h.touch.PostScaleAt(h.zoomOutFactor, h.zoomOutFactor, x, y)
}

// Zoom returns the touch matrix scaled by (scaleX, scaleY) around (x, y).
func (h *Handler) Zoom(scaleX, scaleY, x, y float64) Matrix {
	return h.touch.PostScaleAt(scaleX, scaleY, x, y)
}

// ZoomAtOrigin returns the touch matrix scaled around the origin of the
// touch space.
func (h *Handler) ZoomAtOrigin(scaleX, scaleY float64) Matrix {
	return h.touch.PostScale(scaleX, scaleY)
}

// SetZoom returns a fresh matrix with the absolute scale (scaleX, scaleY)
// around (x, y), discarding the current pan.
func (h *Handler) SetZoom(scaleX, scaleY, x, y float64) Matrix {
	return ScalingAt(scaleX, scaleY, x, y)
}

// ResetZoom returns a matrix with scale 1 and no translation.
func (h *Handler) ResetZoom() Matrix {
	return Identity()
}

// FitScreen resets the minimum scales to 1 and returns a matrix with
// scale 1 and no translation.
func (h *Handler) FitScreen() Matrix {
	h.minScaleX = 1
	h.minScaleY = 1
	return Identity()
}

// Translate returns the touch matrix translated so that the pixel
// (px, py) moves to the top-left corner of the content rectangle.
func (h *Handler) Translate(px, py float64) Matrix {
	x := px - h.OffsetLeft()
	y := py - h.OffsetTop()
	return h.touch.PostTranslate(-x, -y)
}

// CenterViewPort commits Translate(px, py).
func (h *Handler) CenterViewPort(px, py float64) Matrix {
	return h.Refresh(h.Translate(px, py))
}

// Refresh commits m as the touch matrix after clamping its scale and
// translation, and returns the committed matrix.
func (h *Handler) Refresh(m Matrix) Matrix {
	h.touch = h.limitTransAndScale(m)
	return h.touch
}

// limitTransAndScale clamps the scale of m into the scale envelope and
// its translation so the content cannot scroll further than the drag
// offsets allow.
func (h *Handler) limitTransAndScale(m Matrix) Matrix {
	// a NaN zoom factor keeps the committed state of that axis
	if math.IsNaN(m.ScaleX) || math.IsNaN(m.TransX) || math.IsNaN(m.SkewX) {
		m.ScaleX, m.SkewX, m.TransX = h.scaleX, 0, h.transX
	}
	if math.IsNaN(m.ScaleY) || math.IsNaN(m.TransY) || math.IsNaN(m.SkewY) {
		m.ScaleY, m.SkewY, m.TransY = h.scaleY, 0, h.transY
	}
	h.scaleX = math.Min(math.Max(h.minScaleX, m.ScaleX), h.maxScaleX)
	h.scaleY = math.Min(math.Max(h.minScaleY, m.ScaleY), h.maxScaleY)

	width, height := h.content.Width(), h.content.Height()

	maxTransX := -width * (h.scaleX - 1)
	h.transX = math.Min(math.Max(m.TransX, maxTransX-h.transOffsetX), h.transOffsetX)

	maxTransY := height * (h.scaleY - 1)
	h.transY = math.Max(math.Min(m.TransY, maxTransY+h.transOffsetY), -h.transOffsetY)

	m.TransX = h.transX
	m.ScaleX = h.scaleX
	m.TransY = h.transY
	m.ScaleY = h.scaleY
	return m
}

// SetMinimumScaleX sets the smallest allowed x scale. Values below 1 are
// raised to 1.
func (h *Handler) SetMinimumScaleX(scale float64) {
	h.SetMinMaxScaleX(scale, h.maxScaleX)
}

// SetMaximumScaleX sets the largest allowed x scale. 0 means unbounded.
func (h *Handler) SetMaximumScaleX(scale float64) {
	h.SetMinMaxScaleX(h.minScaleX, scale)
}

// SetMinMaxScaleX sets the x scale envelope.
func (h *Handler) SetMinMaxScaleX(minScale, maxScale float64) {
	h.minScaleX, h.maxScaleX = scaleEnvelope(minScale, maxScale)
	h.touch = h.limitTransAndScale(h.touch)
}

// SetMinimumScaleY sets the smallest allowed y scale. Values below 1 are
// raised to 1.
func (h *Handler) SetMinimumScaleY(scale float64) {
	h.SetMinMaxScaleY(scale, h.maxScaleY)
}

// SetMaximumScaleY sets the largest allowed y scale. 0 means unbounded.
func (h *Handler) SetMaximumScaleY(scale float64) {
	h.SetMinMaxScaleY(h.minScaleY, scale)
}

// SetMinMaxScaleY sets the y scale envelope.
func (h *Handler) SetMinMaxScaleY(minScale, maxScale float64) {
	h.minScaleY, h.maxScaleY = scaleEnvelope(minScale, maxScale)
	h.touch = h.limitTransAndScale(h.touch)
}

// scaleEnvelope normalizes a requested scale envelope. The minimum is at
// least 1, a maximum of 0 or one that is not finite means unbounded, and
// the maximum never drops below the minimum.
func scaleEnvelope(minScale, maxScale float64) (float64, float64) {
	if !(minScale >= 1) || math.IsInf(minScale, 1) {
		minScale = 1
	}
	if maxScale == 0 || math.IsNaN(maxScale) || math.IsInf(maxScale, 0) {
		maxScale = math.MaxFloat64
	}
	if maxScale < minScale {
		maxScale = minScale
	}
	return minScale, maxScale
}

// SetDragOffsetX sets how far, in pixels, the content may be dragged
// past its horizontal edges.
func (h *Handler) SetDragOffsetX(offset float64) { h.transOffsetX = math.Max(offset, 0) }

// SetDragOffsetY sets how far, in pixels, the content may be dragged
// past its vertical edges.
func (h *Handler) SetDragOffsetY(offset float64) { h.transOffsetY = math.Max(offset, 0) }

// TouchMatrix returns the committed touch matrix.
func (h *Handler) TouchMatrix() Matrix { return h.touch }

// ContentRect returns the content rectangle.
func (h *Handler) ContentRect() Rect { return h.content }

// ContentCenter returns the center of the content rectangle.
func (h *Handler) ContentCenter() Point {
	return Point{X: h.content.CenterX(), Y: h.content.CenterY()}
}

// ChartWidth returns the chart width in pixels.
func (h *Handler) ChartWidth() float64 { return h.chartWidth }

// ChartHeight returns the chart height in pixels.
func (h *Handler) ChartHeight() float64 { return h.chartHeight }

// OffsetLeft returns the margin left of the content rectangle.
func (h *Handler) OffsetLeft() float64 { return h.content.Left }

// OffsetTop returns the margin above the content rectangle.
func (h *Handler) OffsetTop() float64 { return h.content.Top }

// OffsetRight returns the margin right of the content rectangle.
func (h *Handler) OffsetRight() float64 { return h.chartWidth - h.content.Right }

// OffsetBottom returns the margin below the content rectangle.
func (h *Handler) OffsetBottom() float64 { return h.chartHeight - h.content.Bottom }

// ScaleX returns the committed x scale.
func (h *Handler) ScaleX() float64 { return h.scaleX }

// ScaleY returns the committed y scale.
func (h *Handler) ScaleY() float64 { return h.scaleY }

// TransX returns the committed x translation in pixels.
func (h *Handler) TransX() float64 { return h.transX }

// TransY returns the committed y translation in pixels.
func (h *Handler) TransY() float64 { return h.transY }

// MinScaleX returns the lower bound of the x scale envelope.
func (h *Handler) MinScaleX() float64 { return h.minScaleX }

// MaxScaleX returns the upper bound of the x scale envelope.
func (h *Handler) MaxScaleX() float64 { return h.maxScaleX }

// MinScaleY returns the lower bound of the y scale envelope.
func (h *Handler) MinScaleY() float64 { return h.minScaleY }

// MaxScaleY returns the upper bound of the y scale envelope.
func (h *Handler) MaxScaleY() float64 { return h.maxScaleY }

// HasChartDimens reports whether the chart has a positive size.
func (h *Handler) HasChartDimens() bool {
	return h.chartWidth > 0 && h.chartHeight > 0
}

// HasContent reports whether the content rectangle has a positive area,
// which is required for the value/pixel transform to be invertible.
func (h *Handler) HasContent() bool {
	return h.content.Width() > 0 && h.content.Height() > 0
}

// IsInBoundsTop reports whether y is not above the content rectangle.
func (h *Handler) IsInBoundsTop(y float64) bool { return h.content.Top <= y }

// IsInBoundsBottom reports whether y, truncated to two decimals, is not
// below the content rectangle.
func (h *Handler) IsInBoundsBottom(y float64) bool {
	y = math.Trunc(y*100) / 100
	return h.content.Bottom >= y
}

// IsInBoundsLeft reports whether x is not left of the content rectangle,
// with one pixel of tolerance.
func (h *Handler) IsInBoundsLeft(x float64) bool { return h.content.Left <= x+1 }

// IsInBoundsRight reports whether x, truncated to two decimals, is not
// right of the content rectangle, with one pixel of tolerance.
func (h *Handler) IsInBoundsRight(x float64) bool {
	x = math.Trunc(x*100) / 100
	return h.content.Right >= x-1
}

// IsInBoundsX reports whether x lies within the content columns.
func (h *Handler) IsInBoundsX(x float64) bool { return h.IsInBoundsLeft(x) && h.IsInBoundsRight(x) }

// IsInBoundsY reports whether y lies within the content rows.
func (h *Handler) IsInBoundsY(y float64) bool { return h.IsInBoundsTop(y) && h.IsInBoundsBottom(y) }

// IsInBounds reports whether the pixel lies within the content bounds,
// with the one pixel tolerance used for drawing.
func (h *Handler) IsInBounds(x, y float64) bool { return h.IsInBoundsX(x) && h.IsInBoundsY(y) }

// IsFullyZoomedOut reports whether both axes show their full range.
func (h *Handler) IsFullyZoomedOut() bool {
	return h.IsFullyZoomedOutX() && h.IsFullyZoomedOutY()
}

// IsFullyZoomedOutX reports whether the whole x range is visible.
func (h *Handler) IsFullyZoomedOutX() bool { return !(h.scaleX > h.minScaleX || h.minScaleX > 1) }

// IsFullyZoomedOutY reports whether the whole y range is visible.
func (h *Handler) IsFullyZoomedOutY() bool { return !(h.scaleY > h.minScaleY || h.minScaleY > 1) }

// CanZoomOutMoreX reports whether the x scale is above its minimum.
func (h *Handler) CanZoomOutMoreX() bool { return h.scaleX > h.minScaleX }

// CanZoomInMoreX reports whether the x scale is below its maximum.
func (h *Handler) CanZoomInMoreX() bool { return h.scaleX < h.maxScaleX }

// CanZoomOutMoreY reports whether the y scale is above its minimum.
func (h *Handler) CanZoomOutMoreY() bool { return h.scaleY > h.minScaleY }

// CanZoomInMoreY reports whether the y scale is below its maximum.
func (h *Handler) CanZoomInMoreY() bool { return h.scaleY < h.maxScaleY }

// HasNoDragOffset reports whether dragging past the edges is disabled.
func (h *Handler) HasNoDragOffset() bool {
	return h.transOffsetX <= 0 && h.transOffsetY <= 0
}
