package data

import "github.com/tiendc/go-deepcopy"

// Part identifies one sub-data of a combined chart.
type Part int

const (
	PartLine Part = iota
	PartBar
	PartScatter
	PartCandle
	PartBubble

	PartCount = int(PartBubble) + 1
)

var partNames = [PartCount]string{"line", "bar", "scatter", "candle", "bubble"}

func (p Part) String() string {
	if p < 0 || int(p) >= PartCount {
		return "unknown"
	}
	return partNames[p]
}

// DefaultDrawOrder is the order parts are drawn and hit-tested in.
var DefaultDrawOrder = []Part{PartBar, PartBubble, PartLine, PartCandle, PartScatter}

// CombinedData holds one ChartData per part. Its aggregate spans the data
// sets of all parts.
type CombinedData struct {
	Parts [PartCount]*ChartData `json:"parts"`

	all ChartData
}

// NewCombinedData returns empty combined data.
func NewCombinedData() *CombinedData {
	c := &CombinedData{}
	c.NotifyDataChanged()
	return c
}

// SetPart stores d as part p and recomputes the aggregate.
func (c *CombinedData) SetPart(p Part, d *ChartData) {
	if p < 0 || int(p) >= PartCount {
		return
	}
	c.Parts[p] = d
	c.NotifyDataChanged()
}

// Part returns the data of part p, or nil.
func (c *CombinedData) Part(p Part) *ChartData {
	if p < 0 || int(p) >= PartCount {
		return nil
	}
	return c.Parts[p]
}

// Aggregate returns chart data whose data sets are those of all parts in
// part order. The data sets are shared with the parts.
func (c *CombinedData) Aggregate() *ChartData {
	return &c.all
}

// NotifyDataChanged recomputes every part and the aggregate.
func (c *CombinedData) NotifyDataChanged() {
	c.all.DataSets = nil
	c.all.BarWidth = DefaultBarWidth
	for p, d := range c.Parts {
		if d == nil {
			continue
		}
		d.NotifyDataChanged()
		c.all.DataSets = append(c.all.DataSets, d.DataSets...)
		if Part(p) == PartBar {
			c.all.BarWidth = d.BarWidth
		}
	}
	c.all.calcMinMax()
}

// CalcMinMaxY restricts the y extents of all parts to [fromX, toX].
func (c *CombinedData) CalcMinMaxY(fromX, toX float64) {
	for _, d := range c.Parts {
		if d != nil {
			d.CalcMinMaxY(fromX, toX)
		}
	}
	c.all.calcMinMax()
}

// EntryForHighlight returns the entry addressed by a part index, a data
// set index within that part and an x/y value, or nil.
func (c *CombinedData) EntryForHighlight(dataIndex, dataSetIndex int, x, y float64) *Entry {
	d := c.Part(Part(dataIndex))
	if d == nil {
		return nil
	}
	return d.EntryForHighlight(dataSetIndex, x, y)
}

// Clone returns a deep copy of c with its extents recomputed.
func (c *CombinedData) Clone() (*CombinedData, error) {
	var out CombinedData
	if err := deepcopy.Copy(&out.Parts, &c.Parts); err != nil {
		return nil, err
	}
	out.NotifyDataChanged()
	return &out, nil
}
