// Package viewport provides the affine geometry that maps chart values to
// pixels: the zoom/pan state of a chart (Handler) and the value/pixel
// transform for one axis pair (Transformer).
package viewport

import "math"

// Matrix represents a 2D affine transformation in row-major order:
//
//	| ScaleX  SkewX   TransX |
//	| SkewY   ScaleY  TransY |
//
// This represents the transformation:
//
//	x' = ScaleX*x + SkewX*y + TransX
//	y' = SkewY*x + ScaleY*y + TransY
//
// Matrices are values; every operation returns a new Matrix.
type Matrix struct {
	ScaleX, SkewX, TransX float64
	SkewY, ScaleY, TransY float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{ScaleX: 1, ScaleY: 1}
}

// Translation returns a translation matrix.
func Translation(dx, dy float64) Matrix {
	return Matrix{ScaleX: 1, TransX: dx, ScaleY: 1, TransY: dy}
}

// Scaling returns a scaling matrix around the origin.
func Scaling(sx, sy float64) Matrix {
	return Matrix{ScaleX: sx, ScaleY: sy}
}

// ScalingAt returns a scaling matrix that keeps the pivot (px, py) fixed.
func ScalingAt(sx, sy, px, py float64) Matrix {
	return Matrix{
		ScaleX: sx, TransX: px - sx*px,
		ScaleY: sy, TransY: py - sy*py,
	}
}

// Multiply returns m * o, the transformation that applies o first and
// then m.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		ScaleX: m.ScaleX*o.ScaleX + m.SkewX*o.SkewY,
		SkewX:  m.ScaleX*o.SkewX + m.SkewX*o.ScaleY,
		TransX: m.ScaleX*o.TransX + m.SkewX*o.TransY + m.TransX,
		SkewY:  m.SkewY*o.ScaleX + m.ScaleY*o.SkewY,
		ScaleY: m.SkewY*o.SkewX + m.ScaleY*o.ScaleY,
		TransY: m.SkewY*o.TransX + m.ScaleY*o.TransY + m.TransY,
	}
}

// PostConcat returns the transformation that applies m and then o.
func (m Matrix) PostConcat(o Matrix) Matrix {
	return o.Multiply(m)
}

// PostTranslate returns m followed by a translation.
func (m Matrix) PostTranslate(dx, dy float64) Matrix {
	return Translation(dx, dy).Multiply(m)
}

// PostScale returns m followed by a scale around the origin.
func (m Matrix) PostScale(sx, sy float64) Matrix {
	return Scaling(sx, sy).Multiply(m)
}

// PostScaleAt returns m followed by a scale around the pivot (px, py).
func (m Matrix) PostScaleAt(sx, sy, px, py float64) Matrix {
	return ScalingAt(sx, sy, px, py).Multiply(m)
}

// Apply transforms a single point.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.ScaleX*x + m.SkewX*y + m.TransX, m.SkewY*x + m.ScaleY*y + m.TransY
}

// MapPoints transforms pts in place. pts holds x/y pairs; a trailing odd
// value is left untouched.
func (m Matrix) MapPoints(pts []float64) {
	for i := 0; i+1 < len(pts); i += 2 {
		pts[i], pts[i+1] = m.Apply(pts[i], pts[i+1])
	}
}

// MapRect transforms the four corners of r and returns their
// axis-aligned bounding rectangle.
func (m Matrix) MapRect(r Rect) Rect {
	x0, y0 := m.Apply(r.Left, r.Top)
	x1, y1 := m.Apply(r.Right, r.Top)
	x2, y2 := m.Apply(r.Right, r.Bottom)
	x3, y3 := m.Apply(r.Left, r.Bottom)
	return Rect{
		Left:   math.Min(math.Min(x0, x1), math.Min(x2, x3)),
		Top:    math.Min(math.Min(y0, y1), math.Min(y2, y3)),
		Right:  math.Max(math.Max(x0, x1), math.Max(x2, x3)),
		Bottom: math.Max(math.Max(y0, y1), math.Max(y2, y3)),
	}
}

// Determinant returns the determinant of the linear part of m.
func (m Matrix) Determinant() float64 {
	return m.ScaleX*m.ScaleY - m.SkewX*m.SkewY
}

// Invert returns the inverse of m. The second result is false if m is
// singular, in which case the identity is returned.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Identity(), false
	}
	inv := 1 / det
	return Matrix{
		ScaleX: m.ScaleY * inv,
		SkewX:  -m.SkewX * inv,
		TransX: (m.SkewX*m.TransY - m.ScaleY*m.TransX) * inv,
		SkewY:  -m.SkewY * inv,
		ScaleY: m.ScaleX * inv,
		TransY: (m.SkewY*m.TransX - m.ScaleX*m.TransY) * inv,
	}, true
}

// mustInvert inverts m or panics. The chart never builds a singular
// chain once it has content dimensions, so a failure here is a bug.
func (m Matrix) mustInvert() Matrix {
	inv, ok := m.Invert()
	if !ok {
		panic("viewport: singular transform matrix")
	}
	return inv
}

// Rect is an axis-aligned rectangle. In pixel space Top < Bottom.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.Left + r.Width()/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Top + r.Height()/2 }

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Point is a pixel or value pair.
type Point struct {
	X, Y float64
}
