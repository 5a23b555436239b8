// Package models defines the chart descriptions read from workbooks and
// the reports produced for them.
package models

// ChartSeries represents the cell references behind one chart series.
type ChartSeries struct {
	// Name is the series display name.
	Name string `json:"name"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// CategoryRange is the range reference for category labels.
	CategoryRange string `json:"category_range,omitempty"`
	// ValueRange is the range reference for the series values.
	ValueRange string `json:"value_range,omitempty"`
	// XRange is the range reference for scatter/bubble X values.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for scatter/bubble Y values.
	YRange string `json:"y_range,omitempty"`
	// SizeRange is the range reference for bubble sizes.
	SizeRange string `json:"size_range,omitempty"`
}

// ChartGroup is one chart type inside a plot area. A combo chart has
// several groups.
type ChartGroup struct {
	// Type is the chart type name (e.g., Column, Line, Pie).
	Type string `json:"type"`
	// BarDir is "col" or "bar" for bar groups.
	BarDir string `json:"bar_dir,omitempty"`
	// Grouping is clustered, stacked, percentStacked or standard.
	Grouping string `json:"grouping,omitempty"`
	// AxisIDs are the ids of the axes the group is plotted against.
	AxisIDs []string `json:"axis_ids,omitempty"`
	// Series is the list of series in the group.
	Series []ChartSeries `json:"series"`
}

// ValueAxis describes a value axis of the plot area.
type ValueAxis struct {
	// ID is the axis id referenced by chart groups.
	ID string `json:"id"`
	// Position is l, r, t or b.
	Position string `json:"position,omitempty"`
	// Min is the fixed minimum, if any.
	Min *float64 `json:"min,omitempty"`
	// Max is the fixed maximum, if any.
	Max *float64 `json:"max,omitempty"`
	// Inverted is true for maxMin orientation.
	Inverted bool `json:"inverted,omitempty"`
	// Deleted is true for hidden axes.
	Deleted bool `json:"deleted,omitempty"`
	// Title is the axis title.
	Title string `json:"title,omitempty"`
}

// ChartSpec represents a chart as stored in the workbook.
type ChartSpec struct {
	// Name is the chart name.
	Name string `json:"name"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// Groups are the chart groups of the plot area.
	Groups []ChartGroup `json:"groups"`
	// Axes are the value axes of the plot area.
	Axes []ValueAxis `json:"axes,omitempty"`
	// L is the left offset in pixels.
	L int `json:"l"`
	// T is the top offset in pixels.
	T int `json:"t"`
	// W is the chart width in pixels (0 if unknown).
	W int `json:"w,omitempty"`
	// H is the chart height in pixels (0 if unknown).
	H int `json:"h,omitempty"`
}

// AxisByID returns the value axis with the given id, or nil.
func (c *ChartSpec) AxisByID(id string) *ValueAxis {
	for i := range c.Axes {
		if c.Axes[i].ID == id {
			return &c.Axes[i]
		}
	}
	return nil
}

// GroupAxis returns the value axis a group is plotted against, or nil.
func (c *ChartSpec) GroupAxis(g ChartGroup) *ValueAxis {
	for _, id := range g.AxisIDs {
		if a := c.AxisByID(id); a != nil {
			return a
		}
	}
	return nil
}
