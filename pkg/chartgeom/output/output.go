// Package output serializes chart reports to JSON.
package output

import (
	"encoding/json"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
)

// ToJSON serializes v to JSON. With pretty set the output is indented by
// two spaces.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WorkbookToJSON serializes a workbook report.
func WorkbookToJSON(wb *models.WorkbookReport, pretty bool) ([]byte, error) {
	return ToJSON(wb, pretty)
}

// SheetToJSON serializes a single sheet report.
func SheetToJSON(sheet *models.SheetReport, pretty bool) ([]byte, error) {
	return ToJSON(sheet, pretty)
}

// ChartToJSON serializes a single chart report.
func ChartToJSON(chart *models.ChartReport, pretty bool) ([]byte, error) {
	return ToJSON(chart, pretty)
}
