package data

import (
	"math"
	"sort"
)

// AxisDependency names the y axis a data set is plotted against.
type AxisDependency int

const (
	AxisLeft AxisDependency = iota
	AxisRight
)

// Valid reports whether a is one of the two y-axis sides.
func (a AxisDependency) Valid() bool {
	return a == AxisLeft || a == AxisRight
}

func (a AxisDependency) String() string {
	switch a {
	case AxisLeft:
		return "left"
	case AxisRight:
		return "right"
	default:
		return "invalid"
	}
}

// Rounding selects which entry EntryIndex returns when no entry sits
// exactly on the requested x value.
type Rounding int

const (
	// RoundUp picks the entry at or after x.
	RoundUp Rounding = iota
	// RoundDown picks the entry at or before x.
	RoundDown
	// RoundClosest picks the nearest entry; ties go to the entry at or
	// before x.
	RoundClosest
)

// DataSet is one series of entries ordered by ascending x.
type DataSet struct {
	Label             string         `json:"label"`
	Entries           []*Entry       `json:"entries"`
	Axis              AxisDependency `json:"axis"`
	Hidden            bool           `json:"hidden,omitempty"`
	HighlightDisabled bool           `json:"highlight_disabled,omitempty"`

	yMin, yMax float64
	xMin, xMax float64
}

// NewDataSet creates a data set bound to the left axis and computes its
// extents.
func NewDataSet(label string, entries []*Entry) *DataSet {
	s := &DataSet{Label: label, Entries: entries, Axis: AxisLeft}
	s.CalcMinMax()
	return s
}

// IsVisible reports whether the data set is drawn.
func (s *DataSet) IsVisible() bool { return !s.Hidden }

// IsHighlightEnabled reports whether the data set takes part in
// highlighting.
func (s *DataSet) IsHighlightEnabled() bool { return !s.HighlightDisabled }

// EntryCount returns the number of entries.
func (s *DataSet) EntryCount() int { return len(s.Entries) }

// EntryAt returns the entry at index i, or nil when out of range.
func (s *DataSet) EntryAt(i int) *Entry {
	if i < 0 || i >= len(s.Entries) {
		return nil
	}
	return s.Entries[i]
}

// IsStacked reports whether any entry has stacked parts.
func (s *DataSet) IsStacked() bool {
	for _, e := range s.Entries {
		if e.IsStacked() {
			return true
		}
	}
	return false
}

// StackSize returns the largest number of stacked parts of any entry,
// or 1 for a plain data set.
func (s *DataSet) StackSize() int {
	size := 1
	for _, e := range s.Entries {
		if len(e.YVals) > size {
			size = len(e.YVals)
		}
	}
	return size
}

// YMin returns the lowest y extent of the set.
func (s *DataSet) YMin() float64 { return s.yMin }

// YMax returns the highest y extent of the set.
func (s *DataSet) YMax() float64 { return s.yMax }

// XMin returns the lowest x of the set.
func (s *DataSet) XMin() float64 { return s.xMin }

// XMax returns the highest x of the set.
func (s *DataSet) XMax() float64 { return s.xMax }

// CalcMinMax recomputes the cached extents from all entries. An empty
// data set has inverted sentinel extents that never win an aggregate.
func (s *DataSet) CalcMinMax() {
	s.yMin, s.yMax = math.MaxFloat64, -math.MaxFloat64
	s.xMin, s.xMax = math.MaxFloat64, -math.MaxFloat64
	for _, e := range s.Entries {
		s.calcMinMaxX(e)
		s.calcMinMaxY(e)
	}
}

// CalcMinMaxY recomputes the y extents from the entries between fromX
// and toX only, widened to the nearest entries outside the window.
func (s *DataSet) CalcMinMaxY(fromX, toX float64) {
	s.yMin, s.yMax = math.MaxFloat64, -math.MaxFloat64
	if len(s.Entries) == 0 {
		return
	}
	from := s.EntryIndex(fromX, math.NaN(), RoundDown)
	to := s.EntryIndex(toX, math.NaN(), RoundUp)
	if to < from {
		return
	}
	for i := from; i <= to; i++ {
		s.calcMinMaxY(s.Entries[i])
	}
}

func (s *DataSet) calcMinMaxX(e *Entry) {
	s.xMin = math.Min(s.xMin, e.X)
	s.xMax = math.Max(s.xMax, e.X)
}

func (s *DataSet) calcMinMaxY(e *Entry) {
	lo, hi := e.Extent()
	s.yMin = math.Min(s.yMin, lo)
	s.yMax = math.Max(s.yMax, hi)
}

// EntryIndex returns the index of the entry nearest xValue, resolved by
// rounding. When closestToY is not NaN and several entries share the
// resolved x value, the one whose y is nearest closestToY wins. It
// returns -1 for an empty data set.
func (s *DataSet) EntryIndex(xValue, closestToY float64, rounding Rounding) int {
	n := len(s.Entries)
	if n == 0 {
		return -1
	}

	low, high := 0, n-1
	closest := high
	for low < high {
		m := (low + high) / 2
		d1 := s.Entries[m].X - xValue
		d2 := s.Entries[m+1].X - xValue
		ad1, ad2 := math.Abs(d1), math.Abs(d2)

		switch {
		case ad2 < ad1:
			low = m + 1
		case ad1 < ad2:
			high = m
		case d2 < 0:
			// both neighbours lie before xValue
			low = m + 1
		default:
			high = m
		}
		closest = high
	}

	closestX := s.Entries[closest].X
	switch rounding {
	case RoundUp:
		if closestX < xValue && closest < n-1 {
			closest++
		}
	case RoundDown:
		if closestX > xValue && closest > 0 {
			closest--
		}
	}

	if math.IsNaN(closestToY) {
		return closest
	}

	closestX = s.Entries[closest].X
	for closest > 0 && s.Entries[closest-1].X == closestX {
		closest--
	}
	closestY := s.Entries[closest].Y
	closestYIndex := closest
	for i := closest + 1; i < n && s.Entries[i].X == closestX; i++ {
		if math.Abs(s.Entries[i].Y-closestToY) < math.Abs(closestY-closestToY) {
			closestY = s.Entries[i].Y
			closestYIndex = i
		}
	}
	return closestYIndex
}

// EntryForXValue returns the entry EntryIndex resolves, or nil.
func (s *DataSet) EntryForXValue(xValue, closestToY float64, rounding Rounding) *Entry {
	return s.EntryAt(s.EntryIndex(xValue, closestToY, rounding))
}

// EntryForXValueClosest is EntryForXValue with RoundClosest.
func (s *DataSet) EntryForXValueClosest(xValue, closestToY float64) *Entry {
	return s.EntryForXValue(xValue, closestToY, RoundClosest)
}

// EntriesForXValue returns every entry whose x equals xValue exactly, in
// order.
func (s *DataSet) EntriesForXValue(xValue float64) []*Entry {
	var out []*Entry
	low, high := 0, len(s.Entries)-1
	for low <= high {
		m := (low + high) / 2
		e := s.Entries[m]
		switch {
		case xValue == e.X:
			for m > 0 && s.Entries[m-1].X == xValue {
				m--
			}
			for ; m < len(s.Entries) && s.Entries[m].X == xValue; m++ {
				out = append(out, s.Entries[m])
			}
			return out
		case xValue > e.X:
			low = m + 1
		default:
			high = m - 1
		}
	}
	return out
}

// IndexOf returns the position of e, or -1.
func (s *DataSet) IndexOf(e *Entry) int {
	for i, cur := range s.Entries {
		if cur == e {
			return i
		}
	}
	return -1
}

// AddEntry inserts e keeping the entries ordered by x and updates the
// extents.
func (s *DataSet) AddEntry(e *Entry) {
	i := sort.Search(len(s.Entries), func(i int) bool { return s.Entries[i].X > e.X })
	s.Entries = append(s.Entries, nil)
	copy(s.Entries[i+1:], s.Entries[i:])
	s.Entries[i] = e
	s.calcMinMaxX(e)
	s.calcMinMaxY(e)
}

// RemoveEntry removes e and recomputes the extents. It reports whether e
// was part of the data set.
func (s *DataSet) RemoveEntry(e *Entry) bool {
	i := s.IndexOf(e)
	if i < 0 {
		return false
	}
	s.Entries = append(s.Entries[:i], s.Entries[i+1:]...)
	s.CalcMinMax()
	return true
}

// Clear removes all entries.
func (s *DataSet) Clear() {
	s.Entries = nil
	s.CalcMinMax()
}
