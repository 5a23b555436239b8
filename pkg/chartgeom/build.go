package chartgeom

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/data"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/parser"
	"github.com/xuri/excelize/v2"
)

// source records where a loaded chart came from.
type source struct {
	kind   string // "chart" or "table"
	rng    string
	left   int
	top    int
	series []models.ChartSeries
}

// groupKind returns the chart kind of a chart group and the combined
// part it contributes to. Pie and radar groups have no part.
func groupKind(g models.ChartGroup) (Kind, data.Part, bool) {
	switch g.Type {
	case "Bar":
		if g.BarDir == "bar" {
			return KindHorizontalBar, data.PartBar, true
		}
		return KindBar, data.PartBar, true
	case "Line", "Area":
		return KindLine, data.PartLine, true
	case "Scatter":
		return KindScatter, data.PartScatter, true
	case "Bubble":
		return KindBubble, data.PartBubble, true
	case "Stock":
		return KindCandle, data.PartCandle, true
	case "Pie", "Doughnut":
		return KindPie, 0, false
	case "Radar":
		return KindRadar, 0, false
	}
	return 0, 0, false
}

// chartKind picks the kind of a chart from its groups. Groups that map
// to different parts make a combined chart.
func chartKind(spec models.ChartSpec) (Kind, error) {
	if len(spec.Groups) == 0 {
		return 0, fmt.Errorf("%w: no chart group", ErrKindMismatch)
	}
	first, firstPart, ok := groupKind(spec.Groups[0])
	if !ok {
		if first == KindPie || first == KindRadar {
			return first, nil
		}
		return 0, fmt.Errorf("%w: unsupported chart type %q", ErrKindMismatch, spec.Groups[0].Type)
	}
	for _, g := range spec.Groups[1:] {
		_, part, ok := groupKind(g)
		if !ok {
			return 0, fmt.Errorf("%w: %s cannot be combined", ErrKindMismatch, g.Type)
		}
		if part != firstPart {
			return KindCombined, nil
		}
	}
	return first, nil
}

// buildChart reads the cells behind spec and lays the chart out.
func buildChart(f *excelize.File, sheet string, spec models.ChartSpec, opts Options) (*Chart, error) {
	kind, err := chartKind(spec)
	if err != nil {
		return nil, err
	}

	c := NewChart(kind, opts)
	c.Name, c.Title = spec.Name, spec.Title
	c.src = source{kind: "chart", left: spec.L, top: spec.T}
	for _, g := range spec.Groups {
		c.src.series = append(c.src.series, g.Series...)
	}
	r := seriesReader{f: f, sheet: sheet}

	if kind == KindCombined {
		parts := make(map[data.Part][]*data.DataSet)
		for _, g := range spec.Groups {
			k, part, _ := groupKind(g)
			sets, err := r.dataSets(k, g, groupSide(spec, g))
			if err != nil {
				return nil, err
			}
			parts[part] = append(parts[part], sets...)
		}
		combined := data.NewCombinedData()
		for part, sets := range parts {
			combined.Parts[part] = data.NewChartData(sets...)
		}
		applyAxes(c, spec)
		if err := c.SetCombinedData(combined); err != nil {
			return nil, err
		}
	} else {
		var sets []*data.DataSet
		for _, g := range spec.Groups {
			gs, err := r.dataSets(kind, g, groupSide(spec, g))
			if err != nil {
				return nil, err
			}
			sets = append(sets, gs...)
			if kind.IsCircular() {
				break
			}
		}
		if len(sets) == 0 {
			return nil, ErrNoData
		}
		applyAxes(c, spec)
		if err := c.SetData(data.NewChartData(sets...)); err != nil {
			return nil, err
		}
	}

	w, h := float64(spec.W), float64(spec.H)
	if w <= 0 || h <= 0 {
		w, h = opts.Width, opts.Height
	}
	if err := c.SetChartDimens(w, h); err != nil {
		return nil, err
	}
	return c, nil
}

// groupSide returns the y axis side of a group: its value axis on the
// right (or top, for horizontal bars) is the secondary axis.
func groupSide(spec models.ChartSpec, g models.ChartGroup) data.AxisDependency {
	if ax := valueAxis(spec, g); ax != nil && (ax.Position == "r" || ax.Position == "t") {
		return data.AxisRight
	}
	return data.AxisLeft
}

// valueAxis returns the value axis of g. Scatter groups have two value
// axes; the vertical one is the y axis.
func valueAxis(spec models.ChartSpec, g models.ChartGroup) *models.ValueAxis {
	if g.Type != "Scatter" && g.Type != "Bubble" {
		return spec.GroupAxis(g)
	}
	var found *models.ValueAxis
	for _, id := range g.AxisIDs {
		ax := spec.AxisByID(id)
		if ax == nil {
			continue
		}
		if ax.Position == "l" || ax.Position == "r" {
			return ax
		}
		if found == nil {
			found = ax
		}
	}
	return found
}

// applyAxes copies the fixed bounds, orientation and visibility of the
// workbook value axes to the chart axes.
func applyAxes(c *Chart, spec models.ChartSpec) {
	for _, g := range spec.Groups {
		ax := valueAxis(spec, g)
		if ax == nil {
			continue
		}
		y, err := c.Axis(groupSide(spec, g))
		if err != nil {
			continue
		}
		if ax.Min != nil {
			y.SetAxisMinimum(*ax.Min)
		}
		if ax.Max != nil {
			y.SetAxisMaximum(*ax.Max)
		}
		y.Inverted = ax.Inverted
		y.Enabled = !ax.Deleted
	}
}

// seriesReader reads series values of one sheet.
type seriesReader struct {
	f     *excelize.File
	sheet string
}

func (r seriesReader) values(ref string) ([]float64, error) {
	if ref == "" {
		return nil, nil
	}
	return parser.ReadRangeValues(r.f, r.sheet, ref)
}

func (r seriesReader) name(s models.ChartSeries, i int) string {
	if s.Name != "" {
		return s.Name
	}
	if s.NameRange != "" {
		if name, err := parser.ReadCellText(r.f, r.sheet, s.NameRange); err == nil && name != "" {
			return name
		}
	}
	return fmt.Sprintf("Series %d", i+1)
}

// dataSets builds the data sets of one chart group.
func (r seriesReader) dataSets(kind Kind, g models.ChartGroup, side data.AxisDependency) ([]*data.DataSet, error) {
	var sets []*data.DataSet
	switch {
	case kind == KindCandle:
		set, err := r.candleSet(g)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	case (kind == KindBar || kind == KindHorizontalBar) && strings.Contains(g.Grouping, "tacked"):
		set, err := r.stackedSet(g)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	default:
		for i, s := range g.Series {
			entries, err := r.entries(kind, s)
			if err != nil {
				return nil, fmt.Errorf("series %d: %w", i+1, err)
			}
			sets = append(sets, data.NewDataSet(r.name(s, i), entries))
		}
	}
	for _, s := range sets {
		s.Axis = side
	}
	return sets, nil
}

// entries reads the entries of one series. Category charts use the point
// index as x; scatter and bubble charts read x from their x range.
func (r seriesReader) entries(kind Kind, s models.ChartSeries) ([]*data.Entry, error) {
	switch kind {
	case KindScatter, KindBubble:
		ys, err := r.values(firstNonEmpty(s.YRange, s.ValueRange))
		if err != nil {
			return nil, err
		}
		xs, err := r.values(s.XRange)
		if err != nil {
			return nil, err
		}
		sizes, err := r.values(s.SizeRange)
		if err != nil {
			return nil, err
		}
		var entries []*data.Entry
		for i, y := range ys {
			x := float64(i)
			if i < len(xs) {
				x = xs[i]
			}
			if math.IsNaN(x) || math.IsNaN(y) {
				continue
			}
			if kind == KindBubble {
				size := 0.0
				if i < len(sizes) && !math.IsNaN(sizes[i]) {
					size = sizes[i]
				}
				entries = append(entries, data.NewBubbleEntry(x, y, size))
			} else {
				entries = append(entries, data.NewEntry(x, y))
			}
		}
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].X < entries[j].X })
		return entries, nil
	}

	ys, err := r.values(s.ValueRange)
	if err != nil {
		return nil, err
	}
	var entries []*data.Entry
	for i, y := range ys {
		switch {
		case !math.IsNaN(y):
		case kind == KindRadar:
			// every spoke needs a point
			y = 0
		default:
			continue
		}
		x := float64(i)
		if kind == KindPie {
			x = float64(len(entries))
		}
		entries = append(entries, data.NewEntry(x, y))
	}
	return entries, nil
}

// stackedSet folds the series of a stacked bar group into one data set
// of stacked entries. Percent stacks are scaled to 100.
func (r seriesReader) stackedSet(g models.ChartGroup) (*data.DataSet, error) {
	var cols [][]float64
	var names []string
	n := 0
	for i, s := range g.Series {
		vals, err := r.values(s.ValueRange)
		if err != nil {
			return nil, fmt.Errorf("series %d: %w", i+1, err)
		}
		cols = append(cols, vals)
		names = append(names, r.name(s, i))
		n = max(n, len(vals))
	}

	entries := make([]*data.Entry, 0, n)
	for i := 0; i < n; i++ {
		vals := make([]float64, len(cols))
		var total float64
		for j, col := range cols {
			if i < len(col) && !math.IsNaN(col[i]) {
				vals[j] = col[i]
			}
			total += math.Abs(vals[j])
		}
		if g.Grouping == "percentStacked" && total > 0 {
			for j := range vals {
				vals[j] = vals[j] / total * 100
			}
		}
		entries = append(entries, data.NewStackedEntry(float64(i), vals))
	}
	return data.NewDataSet(strings.Join(names, " + "), entries), nil
}

// candleSet reads a stock group: open, high, low and close series, or
// high, low and close when the group has three.
func (r seriesReader) candleSet(g models.ChartGroup) (*data.DataSet, error) {
	if len(g.Series) < 3 {
		return nil, fmt.Errorf("%w: stock chart needs 3 or 4 series, has %d", ErrKindMismatch, len(g.Series))
	}
	cols := make([][]float64, len(g.Series))
	for i, s := range g.Series {
		vals, err := r.values(s.ValueRange)
		if err != nil {
			return nil, fmt.Errorf("series %d: %w", i+1, err)
		}
		cols[i] = vals
	}
	if len(cols) > 4 {
		cols = cols[:4]
	}
	if len(cols) == 3 {
		cols = [][]float64{cols[2], cols[0], cols[1], cols[2]}
	}

	open, high, low, closes := cols[0], cols[1], cols[2], cols[3]
	var entries []*data.Entry
	for i := range closes {
		if i >= len(open) || i >= len(high) || i >= len(low) {
			break
		}
		o, h, l, cl := open[i], high[i], low[i], closes[i]
		if math.IsNaN(o) || math.IsNaN(h) || math.IsNaN(l) || math.IsNaN(cl) {
			continue
		}
		entries = append(entries, data.NewCandleEntry(float64(i), h, l, o, cl))
	}
	return data.NewDataSet(r.name(g.Series[len(g.Series)-1], len(g.Series)-1), entries), nil
}

// buildTableChart turns a numeric table into a line chart, or returns
// nil when the table is not numeric.
func buildTableChart(f *excelize.File, area models.CellRange, opts Options) (*Chart, error) {
	t, err := parser.ReadTable(f, area, parser.DefaultTableParams())
	if err != nil || t == nil {
		return nil, err
	}

	var sets []*data.DataSet
	for _, s := range t.Series {
		var entries []*data.Entry
		for i, v := range s.Values {
			if !math.IsNaN(v) {
				entries = append(entries, data.NewEntry(t.X[i], v))
			}
		}
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].X < entries[j].X })
		sets = append(sets, data.NewDataSet(s.Name, entries))
	}

	c := NewChart(KindLine, opts)
	c.Name = parser.FormatReference(area)
	c.src = source{kind: "table", rng: parser.FormatReference(area)}
	if err := c.SetData(data.NewChartData(sets...)); err != nil {
		return nil, err
	}
	if err := c.SetChartDimens(opts.Width, opts.Height); err != nil {
		return nil, err
	}
	return c, nil
}

func firstNonEmpty(s ...string) string {
	for _, v := range s {
		if v != "" {
			return v
		}
	}
	return ""
}
