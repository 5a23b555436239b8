package chartgeom

import (
	"strings"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/highlight"
)

// Kind is the chart variant.
type Kind int

const (
	KindLine Kind = iota
	KindBar
	KindHorizontalBar
	KindScatter
	KindCandle
	KindBubble
	KindCombined
	KindPie
	KindRadar
)

var kindNames = [...]string{
	KindLine:          "line",
	KindBar:           "bar",
	KindHorizontalBar: "horizontal_bar",
	KindScatter:       "scatter",
	KindCandle:        "candle",
	KindBubble:        "bubble",
	KindCombined:      "combined",
	KindPie:           "pie",
	KindRadar:         "radar",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind returns the kind named s. It reports false for unknown
// names.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

// IsCircular reports whether the kind is drawn around a center.
func (k Kind) IsCircular() bool { return k == KindPie || k == KindRadar }

// IsHorizontal reports whether the value axis runs horizontally.
func (k Kind) IsHorizontal() bool { return k == KindHorizontalBar }

// variant holds the per-kind behaviour of a Chart.
type variant struct {
	calcMinMax      func(c *Chart)
	prepareValuePx  func(c *Chart)
	lowestVisibleX  func(c *Chart) float64
	highestVisibleX func(c *Chart) float64
	newHighlighter  func(c *Chart) highlight.Highlighter
}

func variantFor(k Kind) variant {
	v := variant{
		calcMinMax:      (*Chart).calcAxisMinMax,
		prepareValuePx:  (*Chart).prepareValuePxVertical,
		lowestVisibleX:  (*Chart).lowestVisibleXVertical,
		highestVisibleX: (*Chart).highestVisibleXVertical,
		newHighlighter: func(c *Chart) highlight.Highlighter {
			return highlight.NewChartHighlighter(c)
		},
	}

	switch k {
	case KindBar:
		v.calcMinMax = (*Chart).calcBarMinMax
		v.newHighlighter = func(c *Chart) highlight.Highlighter {
			return highlight.NewBarHighlighter(c)
		}
	case KindHorizontalBar:
		v.calcMinMax = (*Chart).calcBarMinMax
		v.prepareValuePx = (*Chart).prepareValuePxHorizontal
		v.lowestVisibleX = (*Chart).lowestVisibleXHorizontal
		v.highestVisibleX = (*Chart).highestVisibleXHorizontal
		v.newHighlighter = func(c *Chart) highlight.Highlighter {
			return highlight.NewHorizontalBarHighlighter(c)
		}
	case KindCombined:
		v.calcMinMax = (*Chart).calcCombinedMinMax
		v.newHighlighter = func(c *Chart) highlight.Highlighter {
			return highlight.NewCombinedHighlighter(c)
		}
	case KindPie:
		v.calcMinMax = (*Chart).calcAngles
		v.prepareValuePx = func(*Chart) {}
		v.lowestVisibleX = (*Chart).XChartMin
		v.highestVisibleX = (*Chart).XChartMax
		v.newHighlighter = func(c *Chart) highlight.Highlighter {
			return highlight.NewPieHighlighter(c)
		}
	case KindRadar:
		v.calcMinMax = (*Chart).calcRadarMinMax
		v.prepareValuePx = func(*Chart) {}
		v.lowestVisibleX = (*Chart).XChartMin
		v.highestVisibleX = (*Chart).XChartMax
		v.newHighlighter = func(c *Chart) highlight.Highlighter {
			return highlight.NewRadarHighlighter(c)
		}
	}
	return v
}
