package models

import "testing"

func TestCellRangeSize(t *testing.T) {
	tests := []struct {
		area             CellRange
		rows, cols, size int
	}{
		{CellRange{R1: 1, C1: 1, R2: 1, C2: 1}, 1, 1, 1},
		{CellRange{R1: 2, C1: 2, R2: 9, C2: 2}, 8, 1, 8},
		{CellRange{R1: 1, C1: 1, R2: 4, C2: 3}, 4, 3, 12},
	}

	for _, tt := range tests {
		if got := tt.area.Rows(); got != tt.rows {
			t.Errorf("%v.Rows() = %d, expected %d", tt.area, got, tt.rows)
		}
		if got := tt.area.Cols(); got != tt.cols {
			t.Errorf("%v.Cols() = %d, expected %d", tt.area, got, tt.cols)
		}
		if got := tt.area.Len(); got != tt.size {
			t.Errorf("%v.Len() = %d, expected %d", tt.area, got, tt.size)
		}
	}
}

func TestAxisByID(t *testing.T) {
	spec := ChartSpec{
		Axes: []ValueAxis{{ID: "1", Position: "l"}, {ID: "2", Position: "r"}},
	}
	g := ChartGroup{AxisIDs: []string{"9", "2"}}

	if got := spec.GroupAxis(g); got == nil || got.Position != "r" {
		t.Errorf("GroupAxis(%v) = %+v, expected the right axis", g.AxisIDs, got)
	}
	if got := spec.AxisByID("3"); got != nil {
		t.Errorf("AxisByID(3) = %+v, expected nil", got)
	}
}
