package models

// Rect is a pixel rectangle.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// AxisReport is the computed range and ticks of one axis.
type AxisReport struct {
	// Side is left or right for y axes, empty for the x axis.
	Side string `json:"side,omitempty"`
	// Min is the axis minimum.
	Min float64 `json:"min"`
	// Max is the axis maximum.
	Max float64 `json:"max"`
	// Range is Max - Min.
	Range float64 `json:"range"`
	// Ticks are the label positions.
	Ticks []float64 `json:"ticks,omitempty"`
	// Decimals is the number of fraction digits of the labels.
	Decimals int `json:"decimals"`
	// Inverted is set for inverted y axes.
	Inverted bool `json:"inverted,omitempty"`
}

// DataSetReport summarizes one data set.
type DataSetReport struct {
	Label   string  `json:"label"`
	Axis    string  `json:"axis"`
	Part    string  `json:"part,omitempty"`
	Entries int     `json:"entries"`
	XMin    float64 `json:"x_min"`
	XMax    float64 `json:"x_max"`
	YMin    float64 `json:"y_min"`
	YMax    float64 `json:"y_max"`
	Stacked bool    `json:"stacked,omitempty"`
}

// ViewportReport is the state of the viewport after all requested
// gestures.
type ViewportReport struct {
	ChartWidth  float64 `json:"chart_width"`
	ChartHeight float64 `json:"chart_height"`
	Content     Rect    `json:"content"`
	ScaleX      float64 `json:"scale_x"`
	ScaleY      float64 `json:"scale_y"`
	TransX      float64 `json:"trans_x"`
	TransY      float64 `json:"trans_y"`
	// VisibleX is the [lowest, highest] visible x value.
	VisibleX []float64 `json:"visible_x,omitempty"`
}

// HighlightReport describes the highlighted entry.
type HighlightReport struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	XPx          float64 `json:"x_px"`
	YPx          float64 `json:"y_px"`
	Part         string  `json:"part,omitempty"`
	DataSetIndex int     `json:"data_set_index"`
	DataSet      string  `json:"data_set,omitempty"`
	StackIndex   int     `json:"stack_index"`
	Axis         string  `json:"axis"`
}

// PieReport holds the slice angles of a pie chart.
type PieReport struct {
	Rotation       float64   `json:"rotation"`
	DrawAngles     []float64 `json:"draw_angles"`
	AbsoluteAngles []float64 `json:"absolute_angles"`
}

// RadarReport holds the web geometry of a radar chart.
type RadarReport struct {
	SliceAngle float64 `json:"slice_angle"`
	Factor     float64 `json:"factor"`
}

// ChartReport represents one chart after layout.
type ChartReport struct {
	// Name is the chart name.
	Name string `json:"name"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// Kind is the chart variant.
	Kind string `json:"kind"`
	// Source is "chart" for drawn charts and "table" for detected tables.
	Source string `json:"source"`
	// Range is the table range for detected tables.
	Range string `json:"range,omitempty"`
	// L is the left offset in pixels.
	L int `json:"l"`
	// T is the top offset in pixels.
	T int `json:"t"`

	DataSets  []DataSetReport  `json:"data_sets"`
	XAxis     *AxisReport      `json:"x_axis,omitempty"`
	LeftAxis  *AxisReport      `json:"left_axis,omitempty"`
	RightAxis *AxisReport      `json:"right_axis,omitempty"`
	Viewport  ViewportReport   `json:"viewport"`
	Highlight *HighlightReport `json:"highlight,omitempty"`
	Pie       *PieReport       `json:"pie,omitempty"`
	Radar     *RadarReport     `json:"radar,omitempty"`

	// Series are the workbook references the data was read from.
	Series []ChartSeries `json:"series,omitempty"`
}
