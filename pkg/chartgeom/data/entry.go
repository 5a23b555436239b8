// Package data holds chart series: entries, data sets and the aggregate
// extents the axes are computed from.
package data

// Range is the value span one segment of a stacked entry covers.
type Range struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

// Contains reports whether v lies in (From, To].
func (r Range) Contains(v float64) bool {
	return v > r.From && v <= r.To
}

// IsLarger reports whether v lies above the range.
func (r Range) IsLarger(v float64) bool {
	return v > r.To
}

// IsSmaller reports whether v lies below the range.
func (r Range) IsSmaller(v float64) bool {
	return v < r.From
}

// Candle holds the OHLC values of a candlestick entry.
type Candle struct {
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Open  float64 `json:"open"`
	Close float64 `json:"close"`
}

// Entry is one data point. Y holds the plotted value; stacked, candle and
// bubble entries carry their extra values alongside it.
type Entry struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// YVals are the stacked parts. Y is their sum.
	YVals       []float64 `json:"y_vals,omitempty"`
	Ranges      []Range   `json:"ranges,omitempty"`
	PositiveSum float64   `json:"positive_sum,omitempty"`
	NegativeSum float64   `json:"negative_sum,omitempty"`

	Candle *Candle `json:"candle,omitempty"`
	Size   float64 `json:"size,omitempty"`
}

// NewEntry creates a plain entry.
func NewEntry(x, y float64) *Entry {
	return &Entry{X: x, Y: y}
}

// NewStackedEntry creates a stacked bar entry from its parts.
func NewStackedEntry(x float64, vals []float64) *Entry {
	e := &Entry{X: x}
	e.SetYVals(vals)
	return e
}

// NewCandleEntry creates a candlestick entry. Its Y is the middle of the
// shadow.
func NewCandleEntry(x, high, low, open, close float64) *Entry {
	return &Entry{
		X:      x,
		Y:      (high + low) / 2,
		Candle: &Candle{High: high, Low: low, Open: open, Close: close},
	}
}

// NewBubbleEntry creates a bubble entry.
func NewBubbleEntry(x, y, size float64) *Entry {
	return &Entry{X: x, Y: y, Size: size}
}

// SetYVals replaces the stacked parts and recomputes Y, the sums and the
// segment ranges.
func (e *Entry) SetYVals(vals []float64) {
	e.YVals = append([]float64(nil), vals...)
	e.calcStack()
}

// IsStacked reports whether the entry has stacked parts.
func (e *Entry) IsStacked() bool {
	return len(e.YVals) > 0
}

func (e *Entry) calcStack() {
	e.Y, e.PositiveSum, e.NegativeSum = 0, 0, 0
	e.Ranges = nil
	if len(e.YVals) == 0 {
		return
	}

	for _, v := range e.YVals {
		e.Y += v
		if v <= 0 {
			e.NegativeSum += -v
		} else {
			e.PositiveSum += v
		}
	}

	e.Ranges = make([]Range, len(e.YVals))
	negRemain := -e.NegativeSum
	posRemain := 0.0
	for i, v := range e.YVals {
		if v < 0 {
			e.Ranges[i] = Range{From: negRemain, To: negRemain - v}
			negRemain -= v
		} else {
			e.Ranges[i] = Range{From: posRemain, To: posRemain + v}
			posRemain += v
		}
	}
}

// Extent returns the lowest and highest value the entry contributes to
// the y range.
func (e *Entry) Extent() (float64, float64) {
	switch {
	case e.Candle != nil:
		return e.Candle.Low, e.Candle.High
	case e.IsStacked():
		return -e.NegativeSum, e.PositiveSum
	default:
		return e.Y, e.Y
	}
}
