// Package parser reads chart definitions and the cells behind them from
// xlsx files.
package parser

// EMUPerPixel is the number of EMUs (English Metric Units) per pixel at 96 DPI.
// 1 inch = 914400 EMU, 1 inch = 96 pixels at 96 DPI
// Therefore: 914400 / 96 = 9525 EMU per pixel
const EMUPerPixel = 9525

// Default cell size in pixels: a column of 8.43 characters and a row of
// 15 points. Anchors are placed on this grid.
const (
	DefaultColumnWidthPx = 64
	DefaultRowHeightPx   = 20
)

// EMUToPixels converts EMU to pixels at 96 DPI.
func EMUToPixels(emu int64) int {
	return int(emu / EMUPerPixel)
}

// cellMarker is a drawing anchor corner: a zero-based cell plus an EMU
// offset into that cell.
type cellMarker struct {
	col, colOff int64
	row, rowOff int64
}

// pixels returns the position of m on the default cell grid.
func (m cellMarker) pixels() (x, y int) {
	x = int(m.col)*DefaultColumnWidthPx + EMUToPixels(m.colOff)
	y = int(m.row)*DefaultRowHeightPx + EMUToPixels(m.rowOff)
	return x, y
}
