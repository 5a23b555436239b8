package data

import (
	"errors"
	"math"
	"strings"

	"github.com/tiendc/go-deepcopy"
)

// DefaultBarWidth is the bar width in x units.
const DefaultBarWidth = 0.85

// ErrGroupBarsNeedsSets indicates GroupBars was called with fewer than
// two data sets.
var ErrGroupBarsNeedsSets = errors.New("grouping bars requires at least two data sets")

// ChartData owns the data sets of one chart and aggregates their extents,
// globally and per y-axis side.
type ChartData struct {
	DataSets []*DataSet `json:"data_sets"`
	// BarWidth is used by bar charts only.
	BarWidth float64 `json:"bar_width"`

	yMin, yMax float64
	xMin, xMax float64

	leftYMin, leftYMax   float64
	rightYMin, rightYMax float64
}

// NewChartData creates chart data from sets and computes the extents.
func NewChartData(sets ...*DataSet) *ChartData {
	d := &ChartData{DataSets: sets, BarWidth: DefaultBarWidth}
	d.NotifyDataChanged()
	return d
}

// NotifyDataChanged recomputes the extents of every data set and the
// aggregate. Call it after mutating entries directly.
func (d *ChartData) NotifyDataChanged() {
	for _, s := range d.DataSets {
		s.CalcMinMax()
	}
	d.calcMinMax()
}

// CalcMinMaxY restricts the y extents to the entries between fromX and
// toX. Used for auto-scaling the y axis to the visible range.
func (d *ChartData) CalcMinMaxY(fromX, toX float64) {
	for _, s := range d.DataSets {
		s.CalcMinMaxY(fromX, toX)
	}
	d.calcMinMax()
}

func (d *ChartData) calcMinMax() {
	const hi, lo = math.MaxFloat64, -math.MaxFloat64
	d.yMin, d.yMax, d.xMin, d.xMax = hi, lo, hi, lo
	d.leftYMin, d.leftYMax = hi, lo
	d.rightYMin, d.rightYMax = hi, lo

	for _, s := range d.DataSets {
		d.yMin = math.Min(d.yMin, s.yMin)
		d.yMax = math.Max(d.yMax, s.yMax)
		d.xMin = math.Min(d.xMin, s.xMin)
		d.xMax = math.Max(d.xMax, s.xMax)

		switch s.Axis {
		case AxisLeft:
			d.leftYMin = math.Min(d.leftYMin, s.yMin)
			d.leftYMax = math.Max(d.leftYMax, s.yMax)
		case AxisRight:
			d.rightYMin = math.Min(d.rightYMin, s.yMin)
			d.rightYMax = math.Max(d.rightYMax, s.yMax)
		}
	}

	if d.xMin > d.xMax {
		d.xMin, d.xMax = 0, 0
	}
	if d.yMin > d.yMax {
		d.yMin, d.yMax = 0, 0
	}

	// a side without data shares the other side's extents
	leftEmpty := d.leftYMin > d.leftYMax
	rightEmpty := d.rightYMin > d.rightYMax
	switch {
	case leftEmpty && rightEmpty:
		d.leftYMin, d.leftYMax = d.yMin, d.yMax
		d.rightYMin, d.rightYMax = d.yMin, d.yMax
	case leftEmpty:
		d.leftYMin, d.leftYMax = d.rightYMin, d.rightYMax
	case rightEmpty:
		d.rightYMin, d.rightYMax = d.leftYMin, d.leftYMax
	}
}

// XMin returns the lowest x over all sets.
func (d *ChartData) XMin() float64 { return d.xMin }

// XMax returns the highest x over all sets.
func (d *ChartData) XMax() float64 { return d.xMax }

// YMin returns the lowest y extent over all sets.
func (d *ChartData) YMin() float64 { return d.yMin }

// YMax returns the highest y extent over all sets.
func (d *ChartData) YMax() float64 { return d.yMax }

// AxisYMin returns the lowest y value of the data sets on side.
func (d *ChartData) AxisYMin(side AxisDependency) float64 {
	if side == AxisRight {
		return d.rightYMin
	}
	return d.leftYMin
}

// AxisYMax returns the highest y value of the data sets on side.
func (d *ChartData) AxisYMax(side AxisDependency) float64 {
	if side == AxisRight {
		return d.rightYMax
	}
	return d.leftYMax
}

// DataSetCount returns the number of data sets.
func (d *ChartData) DataSetCount() int { return len(d.DataSets) }

// DataSetByIndex returns the data set at i, or nil when out of range.
func (d *ChartData) DataSetByIndex(i int) *DataSet {
	if i < 0 || i >= len(d.DataSets) {
		return nil
	}
	return d.DataSets[i]
}

// DataSetByLabel returns the first data set labelled label and its index,
// or nil and -1.
func (d *ChartData) DataSetByLabel(label string, ignoreCase bool) (*DataSet, int) {
	for i, s := range d.DataSets {
		if s.Label == label || (ignoreCase && strings.EqualFold(s.Label, label)) {
			return s, i
		}
	}
	return nil, -1
}

// AddDataSet appends s and updates the extents.
func (d *ChartData) AddDataSet(s *DataSet) {
	s.CalcMinMax()
	d.DataSets = append(d.DataSets, s)
	d.calcMinMax()
}

// RemoveDataSet removes the data set at i. It reports whether i was in
// range.
func (d *ChartData) RemoveDataSet(i int) bool {
	if i < 0 || i >= len(d.DataSets) {
		return false
	}
	d.DataSets = append(d.DataSets[:i], d.DataSets[i+1:]...)
	d.calcMinMax()
	return true
}

// EntryCount returns the number of entries over all data sets.
func (d *ChartData) EntryCount() int {
	n := 0
	for _, s := range d.DataSets {
		n += s.EntryCount()
	}
	return n
}

// MaxEntryCountSet returns the data set with the most entries, or nil.
func (d *ChartData) MaxEntryCountSet() *DataSet {
	var best *DataSet
	for _, s := range d.DataSets {
		if best == nil || s.EntryCount() > best.EntryCount() {
			best = s
		}
	}
	return best
}

// EntryForHighlight returns the entry of data set dataSetIndex at x
// nearest y, or nil.
func (d *ChartData) EntryForHighlight(dataSetIndex int, x, y float64) *Entry {
	s := d.DataSetByIndex(dataSetIndex)
	if s == nil {
		return nil
	}
	return s.EntryForXValueClosest(x, y)
}

// Clone returns a deep copy of d with its extents recomputed.
func (d *ChartData) Clone() (*ChartData, error) {
	var out ChartData
	if err := deepcopy.Copy(&out, d); err != nil {
		return nil, err
	}
	out.NotifyDataChanged()
	return &out, nil
}

// GroupWidth returns the x span of one bar group.
func (d *ChartData) GroupWidth(groupSpace, barSpace float64) float64 {
	return float64(len(d.DataSets))*(d.BarWidth+barSpace) + groupSpace
}

// GroupBars repositions the entries of every data set so that the i-th
// entries of all sets form one group, starting at fromX. Each group is
// GroupWidth wide; groupSpace separates groups and barSpace separates
// bars inside a group.
func (d *ChartData) GroupBars(fromX, groupSpace, barSpace float64) error {
	if len(d.DataSets) < 2 {
		return ErrGroupBarsNeedsSets
	}

	maxEntries := d.MaxEntryCountSet().EntryCount()
	groupSpaceHalf := groupSpace / 2
	barSpaceHalf := barSpace / 2
	barWidthHalf := d.BarWidth / 2
	interval := d.GroupWidth(groupSpace, barSpace)

	for i := 0; i < maxEntries; i++ {
		start := fromX
		fromX += groupSpaceHalf

		for _, s := range d.DataSets {
			fromX += barSpaceHalf + barWidthHalf
			if e := s.EntryAt(i); e != nil {
				e.X = fromX
			}
			fromX += barWidthHalf + barSpaceHalf
		}

		fromX += groupSpaceHalf
		// keep float drift from accumulating across groups
		if diff := interval - (fromX - start); diff != 0 {
			fromX += diff
		}
	}

	d.NotifyDataChanged()
	return nil
}
