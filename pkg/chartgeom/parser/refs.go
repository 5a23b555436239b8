package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidReference indicates a cell reference that is not a single
// rectangular range.
var ErrInvalidReference = errors.New("invalid cell reference")

// ErrMissingPart indicates a relationship pointing at a part the archive
// does not contain.
var ErrMissingPart = errors.New("missing package part")

// ParseReference parses a reference such as 'Sheet 1'!$B$2:$B$9 or
// Sheet1!A1. The sheet is empty when the reference has none.
func ParseReference(ref string) (models.CellRange, error) {
	var area models.CellRange
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.ContainsAny(ref, "(),") {
		return area, fmt.Errorf("%w: %q", ErrInvalidReference, ref)
	}

	rangeStr := ref
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		area.Sheet = unquoteSheet(ref[:idx])
		rangeStr = ref[idx+1:]
	}

	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")
	start, end, found := strings.Cut(rangeStr, ":")
	if !found {
		end = start
	}

	var err error
	if area.C1, area.R1, err = excelize.CellNameToCoordinates(start); err != nil {
		return area, fmt.Errorf("%w: %q: %v", ErrInvalidReference, ref, err)
	}
	if area.C2, area.R2, err = excelize.CellNameToCoordinates(end); err != nil {
		return area, fmt.Errorf("%w: %q: %v", ErrInvalidReference, ref, err)
	}
	if area.R1 > area.R2 {
		area.R1, area.R2 = area.R2, area.R1
	}
	if area.C1 > area.C2 {
		area.C1, area.C2 = area.C2, area.C1
	}
	return area, nil
}

// FormatReference returns the absolute reference of area, quoting the
// sheet name when needed.
func FormatReference(area models.CellRange) string {
	start, _ := excelize.CoordinatesToCellName(area.C1, area.R1, true)
	end, _ := excelize.CoordinatesToCellName(area.C2, area.R2, true)
	ref := start
	if end != start {
		ref += ":" + end
	}
	if area.Sheet == "" {
		return ref
	}
	sheet := area.Sheet
	if strings.ContainsAny(sheet, " '-!") {
		sheet = "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	}
	return sheet + "!" + ref
}

// unquoteSheet removes the quotes around a sheet name and undoubles
// embedded quotes.
func unquoteSheet(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		s = strings.ReplaceAll(s[1:len(s)-1], "''", "'")
	}
	return s
}
