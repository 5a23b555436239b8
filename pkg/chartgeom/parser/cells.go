package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
	"github.com/xuri/excelize/v2"
)

// ReadRangeValues returns the numbers in the cells of ref in row-major
// order. Cells that do not hold a number are NaN. References without a
// sheet name are read from defaultSheet.
func ReadRangeValues(f *excelize.File, defaultSheet, ref string) ([]float64, error) {
	texts, err := readRange(f, defaultSheet, ref, true)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(texts))
	for i, s := range texts {
		if v, ok := parseNumber(s); ok {
			values[i] = v
		} else {
			values[i] = math.NaN()
		}
	}
	return values, nil
}

// ReadRangeLabels returns the formatted text of the cells of ref in
// row-major order.
func ReadRangeLabels(f *excelize.File, defaultSheet, ref string) ([]string, error) {
	return readRange(f, defaultSheet, ref, false)
}

// ReadCellText returns the formatted text of the first cell of ref.
func ReadCellText(f *excelize.File, defaultSheet, ref string) (string, error) {
	texts, err := readRange(f, defaultSheet, ref, false)
	if err != nil || len(texts) == 0 {
		return "", err
	}
	return texts[0], nil
}

func readRange(f *excelize.File, defaultSheet, ref string, raw bool) ([]string, error) {
	area, err := ParseReference(ref)
	if err != nil {
		return nil, err
	}
	if area.Sheet == "" {
		area.Sheet = defaultSheet
	}
	return readArea(f, area, raw)
}

func readArea(f *excelize.File, area models.CellRange, raw bool) ([]string, error) {
	out := make([]string, 0, area.Len())
	for r := area.R1; r <= area.R2; r++ {
		for c := area.C1; c <= area.C2; c++ {
			cell, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return nil, err
			}
			v, err := f.GetCellValue(area.Sheet, cell, excelize.Options{RawCellValue: raw})
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// parseNumber attempts to parse a cell value as a number.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
