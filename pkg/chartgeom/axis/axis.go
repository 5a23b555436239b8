// Package axis computes axis ranges and tick positions from data extents.
package axis

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// Label count limits for SetLabelCount.
const (
	MinLabelCount     = 2
	MaxLabelCount     = 25
	DefaultLabelCount = 6
)

// Base holds the range and tick state shared by the x and y axes.
type Base struct {
	// Enabled is false for axes the chart should not draw.
	Enabled bool

	min, max, rng        float64
	customMin, customMax bool
	spaceMin, spaceMax   float64

	granularity        float64
	granularityEnabled bool

	labelCount   int
	forceLabels  bool
	centerLabels bool

	// Entries are the tick values from the last ComputeAxisValues.
	Entries []float64
	// CenteredEntries are Entries shifted by half an interval, set when
	// labels are centered between ticks.
	CenteredEntries []float64
	// MinorEntries are the ticks one level below Entries.
	MinorEntries []float64
	// Decimals is the number of fraction digits needed to label Entries.
	Decimals int
}

func newBase() Base {
	return Base{
		Enabled:     true,
		granularity: 1,
		labelCount:  DefaultLabelCount,
	}
}

// Calculate derives the axis range from the data extents, honouring
// custom bounds and the space around the data. An empty range is widened
// by one unit on each side.
func (a *Base) Calculate(dataMin, dataMax float64) {
	lo := dataMin - a.spaceMin
	if a.customMin {
		lo = a.min
	}
	hi := dataMax + a.spaceMax
	if a.customMax {
		hi = a.max
	}
	a.setRange(lo, hi)
}

// setRange stores lo/hi after fixing an inverted or empty interval.
func (a *Base) setRange(lo, hi float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi-lo == 0 {
		hi++
		lo--
	}
	a.min, a.max = lo, hi
	a.rng = math.Abs(hi - lo)
}

// AxisMinimum returns the lowest value shown on the axis.
func (a *Base) AxisMinimum() float64 { return a.min }

// AxisMaximum returns the highest value shown on the axis.
func (a *Base) AxisMaximum() float64 { return a.max }

// AxisRange returns |AxisMaximum - AxisMinimum|.
func (a *Base) AxisRange() float64 { return a.rng }

// SetAxisMinimum fixes the axis minimum regardless of the data.
func (a *Base) SetAxisMinimum(v float64) {
	a.customMin = true
	a.min = v
	a.rng = math.Abs(a.max - a.min)
}

// SetAxisMaximum fixes the axis maximum regardless of the data.
func (a *Base) SetAxisMaximum(v float64) {
	a.customMax = true
	a.max = v
	a.rng = math.Abs(a.max - a.min)
}

// ResetAxisMinimum lets the data decide the minimum again.
func (a *Base) ResetAxisMinimum() { a.customMin = false }

// ResetAxisMaximum lets the data decide the maximum again.
func (a *Base) ResetAxisMaximum() { a.customMax = false }

// IsAxisMinCustom reports whether the minimum was fixed by SetAxisMinimum.
func (a *Base) IsAxisMinCustom() bool { return a.customMin }

// IsAxisMaxCustom reports whether the maximum was fixed by SetAxisMaximum.
func (a *Base) IsAxisMaxCustom() bool { return a.customMax }

// SetSpaceMin sets the extra space below the data minimum, in axis units.
func (a *Base) SetSpaceMin(v float64) { a.spaceMin = v }

// SetSpaceMax sets the extra space above the data maximum, in axis units.
func (a *Base) SetSpaceMax(v float64) { a.spaceMax = v }

// SpaceMin returns the value-space padding below the data.
func (a *Base) SpaceMin() float64 { return a.spaceMin }

// SpaceMax returns the value-space padding above the data.
func (a *Base) SpaceMax() float64 { return a.spaceMax }

// SetLabelCount sets the desired number of labels, clamped to
// [MinLabelCount, MaxLabelCount]. With force the labels are spaced evenly
// over the full range instead of at rounded intervals.
func (a *Base) SetLabelCount(count int, force bool) {
	if count > MaxLabelCount {
		count = MaxLabelCount
	}
	if count < MinLabelCount {
		count = MinLabelCount
	}
	a.labelCount = count
	a.forceLabels = force
}

// LabelCount returns the requested number of labels.
func (a *Base) LabelCount() int { return a.labelCount }

// IsForceLabelsEnabled reports whether exactly LabelCount labels are used.
func (a *Base) IsForceLabelsEnabled() bool { return a.forceLabels }

// SetGranularity sets the minimum interval between ticks and enables it.
func (a *Base) SetGranularity(g float64) {
	a.granularity = g
	a.granularityEnabled = true
}

// SetGranularityEnabled toggles the minimum tick interval.
func (a *Base) SetGranularityEnabled(enabled bool) { a.granularityEnabled = enabled }

// Granularity returns the minimum tick interval.
func (a *Base) Granularity() float64 { return a.granularity }

// SetCenterAxisLabels places labels between ticks instead of on them.
func (a *Base) SetCenterAxisLabels(center bool) { a.centerLabels = center }

// IsCenterAxisLabelsEnabled reports whether labels sit between ticks.
func (a *Base) IsCenterAxisLabelsEnabled() bool { return a.centerLabels }

// ComputeAxisValues fills Entries, MinorEntries, CenteredEntries and
// Decimals for the value interval [lo, hi].
func (a *Base) ComputeAxisValues(lo, hi float64) {
	a.Entries, a.MinorEntries, a.CenteredEntries = nil, nil, nil
	a.Decimals = 0

	rng := math.Abs(hi - lo)
	if a.labelCount == 0 || rng <= 0 || math.IsInf(rng, 0) || math.IsNaN(rng) {
		return
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	var interval float64
	if a.forceLabels {
		interval = rng / float64(a.labelCount-1)
		a.Entries = make([]float64, a.labelCount)
		for i := range a.Entries {
			a.Entries[i] = lo + float64(i)*interval
		}
	} else {
		opts := scale.TickOptions{Max: a.labelCount}
		if a.granularityEnabled && a.granularity > 0 {
			g := a.granularity
			opts.Pred = func(ticks []float64, level int) bool {
				return len(ticks) < 2 || ticks[1]-ticks[0] >= g*(1-1e-9)
			}
		}
		major, minor := scale.Linear{Min: lo, Max: hi, Base: 10}.Ticks(opts)
		a.Entries, a.MinorEntries = major, minor
		if len(major) >= 2 {
			interval = major[1] - major[0]
		} else {
			interval = rng
		}
	}

	if interval > 0 && interval < 1 {
		a.Decimals = int(math.Ceil(-math.Log10(interval)))
	}

	if a.centerLabels && len(a.Entries) > 0 {
		a.CenteredEntries = make([]float64, len(a.Entries))
		for i, v := range a.Entries {
			a.CenteredEntries[i] = v + interval/2
		}
	}
}
