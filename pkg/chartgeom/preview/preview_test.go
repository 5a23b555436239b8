package preview

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/data"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func newChart(t *testing.T, kind chartgeom.Kind, entries ...*data.Entry) *chartgeom.Chart {
	t.Helper()
	c := chartgeom.NewChart(kind, chartgeom.DefaultOptions())
	if err := c.SetData(data.NewChartData(data.NewDataSet("Series 1", entries))); err != nil {
		t.Fatalf("SetData failed: %v", err)
	}
	if err := c.SetChartDimens(480, 290); err != nil {
		t.Fatalf("SetChartDimens failed: %v", err)
	}
	return c
}

func TestRenderKinds(t *testing.T) {
	entries := func() []*data.Entry {
		return []*data.Entry{
			data.NewEntry(0, 3),
			data.NewEntry(1, 5),
			data.NewEntry(2, 2),
			data.NewEntry(3, 7),
		}
	}
	tests := []chartgeom.Kind{
		chartgeom.KindLine,
		chartgeom.KindBar,
		chartgeom.KindHorizontalBar,
		chartgeom.KindScatter,
		chartgeom.KindPie,
		chartgeom.KindRadar,
	}

	for _, kind := range tests {
		t.Run(kind.String(), func(t *testing.T) {
			c := newChart(t, kind, entries()...)
			var buf bytes.Buffer
			if err := Render(&buf, c, 0, 0); err != nil {
				t.Fatalf("Render(%v) failed: %v", kind, err)
			}
			if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
				t.Errorf("Render(%v) did not produce a PNG", kind)
			}
		})
	}
}

func TestRenderWithHighlightAndZoom(t *testing.T) {
	c := newChart(t, chartgeom.KindLine,
		data.NewEntry(0, 1), data.NewEntry(1, 4), data.NewEntry(2, 9), data.NewEntry(3, 16))
	c.Zoom(2, 1, 0, 0)
	c.HighlightValue(1, 4, 0, -1, false)
	if !c.HasHighlight() {
		t.Fatal("expected a highlight")
	}

	var buf bytes.Buffer
	if err := Render(&buf, c, 320, 200); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("Render did not produce a PNG")
	}
}

func TestRenderEmptyChart(t *testing.T) {
	c := chartgeom.NewChart(chartgeom.KindLine, chartgeom.DefaultOptions())
	var buf bytes.Buffer
	err := Render(&buf, c, 0, 0)
	if !errors.Is(err, chartgeom.ErrNoData) {
		t.Errorf("Render(empty) = %v, expected ErrNoData", err)
	}
}

func TestTicksFiltersRange(t *testing.T) {
	c := newChart(t, chartgeom.KindLine, data.NewEntry(0, 0), data.NewEntry(10, 100))
	left, err := c.AxisLeft()
	if err != nil {
		t.Fatalf("AxisLeft failed: %v", err)
	}
	if len(left.Entries) < 2 {
		t.Fatalf("expected computed ticks, got %v", left.Entries)
	}

	lo, hi := left.Entries[0], left.Entries[len(left.Entries)-1]
	got := ticks(&left.Base, lo, hi)
	if len(got) != len(left.Entries) {
		t.Errorf("ticks(%v, %v) returned %d ticks, expected %d", lo, hi, len(got), len(left.Entries))
	}
	if got := ticks(&left.Base, hi+1, hi+2); got != nil {
		t.Errorf("ticks outside the entries = %v, expected nil", got)
	}
}
