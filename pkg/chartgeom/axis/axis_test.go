package axis

import (
	"math"
	"testing"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/data"
)

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name               string
		dataMin, dataMax   float64
		spaceMin, spaceMax float64
		min, max, rng      float64
	}{
		{"plain", 1, 5, 0, 0, 1, 5, 4},
		{"degenerate", 2, 2, 0, 0, 1, 3, 2},
		{"spaced", 0, 10, 0.5, 0.5, -0.5, 10.5, 11},
		{"negative", -8, -2, 0, 0, -8, -2, 6},
	}
	for _, tt := range tests {
		a := NewXAxis()
		a.SetSpaceMin(tt.spaceMin)
		a.SetSpaceMax(tt.spaceMax)
		a.Calculate(tt.dataMin, tt.dataMax)
		if a.AxisMinimum() != tt.min || a.AxisMaximum() != tt.max || a.AxisRange() != tt.rng {
			t.Errorf("%s: Calculate(%v, %v) = [%v, %v] range %v, expected [%v, %v] range %v",
				tt.name, tt.dataMin, tt.dataMax, a.AxisMinimum(), a.AxisMaximum(), a.AxisRange(),
				tt.min, tt.max, tt.rng)
		}
	}
}

func TestCustomBounds(t *testing.T) {
	a := NewXAxis()
	a.SetAxisMinimum(0)
	a.Calculate(3, 9)
	if a.AxisMinimum() != 0 || a.AxisMaximum() != 9 {
		t.Errorf("custom min: [%v, %v], expected [0, 9]", a.AxisMinimum(), a.AxisMaximum())
	}

	a.SetAxisMaximum(-5)
	a.Calculate(3, 9)
	if a.AxisMinimum() != -5 || a.AxisMaximum() != 0 || a.AxisRange() != 5 {
		t.Errorf("inverted custom bounds: [%v, %v] range %v, expected [-5, 0] range 5",
			a.AxisMinimum(), a.AxisMaximum(), a.AxisRange())
	}

	a.ResetAxisMinimum()
	a.ResetAxisMaximum()
	a.Calculate(3, 9)
	if a.AxisMinimum() != 3 || a.AxisMaximum() != 9 {
		t.Errorf("after reset: [%v, %v], expected [3, 9]", a.AxisMinimum(), a.AxisMaximum())
	}
}

func TestYAxisSpace(t *testing.T) {
	a := NewYAxis(data.AxisLeft)
	a.Calculate(0, 100)
	if !near(a.AxisMinimum(), -10) || !near(a.AxisMaximum(), 110) || !near(a.AxisRange(), 120) {
		t.Errorf("Calculate(0, 100) = [%v, %v] range %v, expected [-10, 110] range 120",
			a.AxisMinimum(), a.AxisMaximum(), a.AxisRange())
	}

	a.SpaceTop, a.SpaceBottom = 0, 0
	a.Calculate(4, 4)
	if a.AxisMinimum() != 3 || a.AxisMaximum() != 5 {
		t.Errorf("Calculate(4, 4) = [%v, %v], expected [3, 5]", a.AxisMinimum(), a.AxisMaximum())
	}

	a.SpaceTop = 50
	a.SetAxisMinimum(0)
	a.Calculate(2, 10)
	if a.AxisMinimum() != 0 || !near(a.AxisMaximum(), 15) {
		t.Errorf("custom min with space = [%v, %v], expected [0, 15]", a.AxisMinimum(), a.AxisMaximum())
	}
}

func TestSetLabelCount(t *testing.T) {
	tests := []struct {
		count, expected int
	}{
		{0, MinLabelCount},
		{1, MinLabelCount},
		{6, 6},
		{25, 25},
		{100, MaxLabelCount},
	}
	for _, tt := range tests {
		a := NewXAxis()
		a.SetLabelCount(tt.count, false)
		if got := a.LabelCount(); got != tt.expected {
			t.Errorf("SetLabelCount(%d) -> %d, expected %d", tt.count, got, tt.expected)
		}
	}
}

func TestComputeAxisValuesForced(t *testing.T) {
	a := NewYAxis(data.AxisLeft)
	a.SetLabelCount(5, true)
	a.SetCenterAxisLabels(true)
	a.ComputeAxisValues(0, 1)

	expected := []float64{0, 0.25, 0.5, 0.75, 1}
	if len(a.Entries) != len(expected) {
		t.Fatalf("len(Entries) = %d, expected %d", len(a.Entries), len(expected))
	}
	for i, v := range expected {
		if !near(a.Entries[i], v) {
			t.Errorf("Entries[%d] = %v, expected %v", i, a.Entries[i], v)
		}
		if !near(a.CenteredEntries[i], v+0.125) {
			t.Errorf("CenteredEntries[%d] = %v, expected %v", i, a.CenteredEntries[i], v+0.125)
		}
	}
	if a.Decimals != 1 {
		t.Errorf("Decimals = %d, expected 1", a.Decimals)
	}
}

func TestComputeAxisValues(t *testing.T) {
	a := NewYAxis(data.AxisLeft)
	a.SetLabelCount(6, false)
	a.ComputeAxisValues(-3, 47)

	if len(a.Entries) == 0 || len(a.Entries) > 6 {
		t.Fatalf("len(Entries) = %d, expected 1..6", len(a.Entries))
	}
	for i, v := range a.Entries {
		if v < -3 || v > 47 {
			t.Errorf("Entries[%d] = %v outside [-3, 47]", i, v)
		}
		if i > 0 && v <= a.Entries[i-1] {
			t.Errorf("Entries not increasing at %d: %v", i, a.Entries)
		}
	}
}

func TestComputeAxisValuesGranularity(t *testing.T) {
	a := NewXAxis()
	a.SetLabelCount(25, false)
	a.SetGranularity(5)
	a.ComputeAxisValues(0, 10)

	for i := 1; i < len(a.Entries); i++ {
		if d := a.Entries[i] - a.Entries[i-1]; d < 5-1e-9 {
			t.Errorf("interval %v below granularity 5 in %v", d, a.Entries)
		}
	}
}

func TestComputeAxisValuesEmptyRange(t *testing.T) {
	a := NewXAxis()
	a.ComputeAxisValues(3, 3)
	if a.Entries != nil {
		t.Errorf("Entries = %v, expected nil", a.Entries)
	}
}
