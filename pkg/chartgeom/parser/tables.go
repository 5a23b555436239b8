package parser

import (
	"math"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
	// NumericMin is the share of numeric cells a series column needs.
	NumericMin float64
	// MinPoints is the number of numeric rows a table needs.
	MinPoints int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
		NumericMin:       0.5,
		MinPoints:        2,
	}
}

// TableSeries is one numeric column of a table.
type TableSeries struct {
	Name string
	// Values are aligned with TableData.X; non-numeric cells are NaN.
	Values []float64
}

// TableData is a numeric block read from a sheet: the first column
// gives x, every other column a series.
type TableData struct {
	Range models.CellRange
	X     []float64
	// Labels are the first column texts when they are not numbers; X is
	// then the row index.
	Labels []string
	Series []TableSeries
}

// DetectTables detects table-like regions in a sheet.
func DetectTables(f *excelize.File, sheetName string, params TableDetectionParams) ([]models.CellRange, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	// Find the bounding box of non-empty cells
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, nil
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)
	if nonEmptyCells < params.MinNonemptyCells {
		return nil, nil
	}
	if float64(nonEmptyCells)/float64(totalCells) < params.DensityMin {
		return nil, nil
	}

	return []models.CellRange{{
		Sheet: sheetName,
		R1:    minRow + 1,
		C1:    minCol + 1,
		R2:    maxRow + 1,
		C2:    maxCol + 1,
	}}, nil
}

// ReadTable reads area as a numeric table. A first row holding text in
// any series column is taken as the header. It returns nil when the
// block is not numeric enough to chart.
func ReadTable(f *excelize.File, area models.CellRange, params TableDetectionParams) (*TableData, error) {
	if area.Cols() < 2 {
		return nil, nil
	}
	cells, err := readArea(f, area, true)
	if err != nil {
		return nil, err
	}
	cols := area.Cols()
	at := func(r, c int) string { return cells[r*cols+c] }

	first := 0
	for c := 1; c < cols; c++ {
		if _, ok := parseNumber(at(0, c)); !ok && at(0, c) != "" {
			first = 1
			break
		}
	}
	n := area.Rows() - first
	if n < params.MinPoints {
		return nil, nil
	}

	t := &TableData{Range: area, X: make([]float64, n)}
	numericX := true
	for i := 0; i < n; i++ {
		if _, ok := parseNumber(at(first+i, 0)); !ok {
			numericX = false
			break
		}
	}
	for i := 0; i < n; i++ {
		if numericX {
			t.X[i], _ = parseNumber(at(first+i, 0))
			continue
		}
		t.X[i] = float64(i)
		t.Labels = append(t.Labels, at(first+i, 0))
	}

	for c := 1; c < cols; c++ {
		s := TableSeries{Values: make([]float64, n)}
		if first == 1 {
			s.Name = at(0, c)
		}
		if s.Name == "" {
			s.Name, _ = excelize.ColumnNumberToName(area.C1 + c)
		}
		numeric := 0
		for i := 0; i < n; i++ {
			v, ok := parseNumber(at(first+i, c))
			if !ok {
				v = math.NaN()
			} else {
				numeric++
			}
			s.Values[i] = v
		}
		if numeric >= params.MinPoints && float64(numeric)/float64(n) >= params.NumericMin {
			t.Series = append(t.Series, s)
		}
	}
	if len(t.Series) == 0 {
		return nil, nil
	}
	return t, nil
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
