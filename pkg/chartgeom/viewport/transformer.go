package viewport

import "math"

// Transformer converts between data values and pixels for one x axis and
// one y-axis side. Values pass through the value matrix, then the
// handler's touch matrix, then the offset matrix.
//
// A horizontal transformer serves horizontal bar charts, where y values
// run along the pixel x direction and x values along the pixel y
// direction. Callers prepare it with the axes swapped and pass points as
// (yValue, xValue).
type Transformer struct {
	vp         *Handler
	valueToPx  Matrix
	offset     Matrix
	horizontal bool
}

// NewTransformer returns a transformer for a vertical chart.
func NewTransformer(vp *Handler) *Transformer {
	return &Transformer{vp: vp, valueToPx: Identity(), offset: Identity()}
}

// NewHorizontalTransformer returns a transformer for a horizontal bar
// chart.
func NewHorizontalTransformer(vp *Handler) *Transformer {
	t := NewTransformer(vp)
	t.horizontal = true
	return t
}

// Horizontal reports whether t serves a horizontal bar chart.
func (t *Transformer) Horizontal() bool { return t.horizontal }

// PrepareMatrixValuePx builds the matrix that maps the value window
// starting at (xMin, yMin) with spans (deltaX, deltaY) onto the content
// size. The y scale is negative because pixel y grows downwards.
func (t *Transformer) PrepareMatrixValuePx(xMin, deltaX, deltaY, yMin float64) {
	scaleX := t.vp.ContentRect().Width() / deltaX
	scaleY := t.vp.ContentRect().Height() / deltaY
	if math.IsInf(scaleX, 0) || math.IsNaN(scaleX) {
		scaleX = 0
	}
	if math.IsInf(scaleY, 0) || math.IsNaN(scaleY) {
		scaleY = 0
	}
	t.valueToPx = Translation(-xMin, -yMin).PostScale(scaleX, -scaleY)
}

// PrepareMatrixOffset builds the matrix that places the value window in
// the content rectangle. For vertical charts inverted flips the y axis so
// that the minimum sits at the content top; for horizontal bar charts it
// flips the x axis so that the minimum sits at the content right.
func (t *Transformer) PrepareMatrixOffset(inverted bool) {
	vp := t.vp
	switch {
	case !inverted:
		t.offset = Translation(vp.OffsetLeft(), vp.ChartHeight()-vp.OffsetBottom())
	case t.horizontal:
		t.offset = Translation(-(vp.ChartWidth() - vp.OffsetRight()), vp.ChartHeight()-vp.OffsetBottom()).
			PostScale(-1, 1)
	default:
		t.offset = Translation(vp.OffsetLeft(), -vp.OffsetTop()).PostScale(1, -1)
	}
}

// ValueMatrix returns the value-to-pixel matrix.
func (t *Transformer) ValueMatrix() Matrix { return t.valueToPx }

// OffsetMatrix returns the offset matrix.
func (t *Transformer) OffsetMatrix() Matrix { return t.offset }

// ValueToPixelMatrix returns the full value to pixel chain as one matrix.
func (t *Transformer) ValueToPixelMatrix() Matrix {
	return t.offset.Multiply(t.vp.TouchMatrix().Multiply(t.valueToPx))
}

// PointValueToPixel maps one value pair to pixels.
func (t *Transformer) PointValueToPixel(x, y float64) (float64, float64) {
	touch := t.vp.TouchMatrix()
	x, y = t.valueToPx.Apply(x, y)
	x, y = touch.Apply(x, y)
	return t.offset.Apply(x, y)
}

// PointValuesToPixel maps x/y value pairs to pixels in place. The result
// for each pair is identical to PointValueToPixel.
func (t *Transformer) PointValuesToPixel(pts []float64) {
	for i := 0; i+1 < len(pts); i += 2 {
		pts[i], pts[i+1] = t.PointValueToPixel(pts[i], pts[i+1])
	}
}

// PixelForValues returns the pixel position of a value pair.
func (t *Transformer) PixelForValues(x, y float64) Point {
	px, py := t.PointValueToPixel(x, y)
	return Point{X: px, Y: py}
}

// PixelToValue maps one pixel to values. It panics if the transform
// chain is singular, which the chart prevents by not transforming before
// it has content dimensions.
func (t *Transformer) PixelToValue(x, y float64) (float64, float64) {
	x, y = t.offset.mustInvert().Apply(x, y)
	x, y = t.vp.TouchMatrix().mustInvert().Apply(x, y)
	return t.valueToPx.mustInvert().Apply(x, y)
}

// PixelsToValue maps x/y pixel pairs to values in place.
func (t *Transformer) PixelsToValue(pts []float64) {
	offInv := t.offset.mustInvert()
	touchInv := t.vp.TouchMatrix().mustInvert()
	valInv := t.valueToPx.mustInvert()
	for i := 0; i+1 < len(pts); i += 2 {
		x, y := offInv.Apply(pts[i], pts[i+1])
		x, y = touchInv.Apply(x, y)
		pts[i], pts[i+1] = valInv.Apply(x, y)
	}
}

// ValuesByTouchPoint returns the values under the pixel (x, y).
func (t *Transformer) ValuesByTouchPoint(x, y float64) Point {
	vx, vy := t.PixelToValue(x, y)
	return Point{X: vx, Y: vy}
}

// RectValueToPixel maps a value rectangle (Left/Right are x values,
// Top/Bottom are y values) to the pixel rectangle covering it.
func (t *Transformer) RectValueToPixel(r Rect) Rect {
	r = t.valueToPx.MapRect(r)
	r = t.vp.TouchMatrix().MapRect(r)
	return t.offset.MapRect(r)
}

// RectValueToPixelHorizontal maps a value rectangle given in the same
// x/y layout as RectValueToPixel for a horizontal bar chart: the y values
// are moved to the horizontal side and the x values to the vertical side
// before mapping.
func (t *Transformer) RectValueToPixelHorizontal(r Rect) Rect {
	return t.RectValueToPixel(Rect{Left: r.Bottom, Top: r.Right, Right: r.Top, Bottom: r.Left})
}

// RectToPixelPhase scales the y values of r by phaseY and maps it.
func (t *Transformer) RectToPixelPhase(r Rect, phaseY float64) Rect {
	r.Top *= phaseY
	r.Bottom *= phaseY
	return t.RectValueToPixel(r)
}

// RectToPixelPhaseHorizontal scales the y values of r by phaseY and maps
// it as RectValueToPixelHorizontal does.
func (t *Transformer) RectToPixelPhaseHorizontal(r Rect, phaseY float64) Rect {
	r.Top *= phaseY
	r.Bottom *= phaseY
	return t.RectValueToPixelHorizontal(r)
}
