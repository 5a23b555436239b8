package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
)

func TestToJSONPretty(t *testing.T) {
	v := map[string]int{"a": 1}

	compact, err := ToJSON(v, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if string(compact) != `{"a":1}` {
		t.Errorf("ToJSON(%v, false) = %s, expected {\"a\":1}", v, compact)
	}

	pretty, err := ToJSON(v, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if string(pretty) != "{\n  \"a\": 1\n}" {
		t.Errorf("ToJSON(%v, true) = %q", v, pretty)
	}
}

func TestChartToJSONOmitsEmpty(t *testing.T) {
	report := &models.ChartReport{
		Name:   "Chart 1",
		Kind:   "line",
		Source: "chart",
		XAxis:  &models.AxisReport{Min: 0, Max: 4, Range: 4},
	}

	out, err := ChartToJSON(report, false)
	if err != nil {
		t.Fatalf("ChartToJSON failed: %v", err)
	}
	for _, key := range []string{`"highlight"`, `"pie"`, `"radar"`, `"title"`, `"range"`} {
		if bytes.Contains(out, []byte(key)) {
			t.Errorf("ChartToJSON output contains %s: %s", key, out)
		}
	}
	if !strings.Contains(string(out), `"x_axis":{"min":0,"max":4,"range":4,"decimals":0}`) {
		t.Errorf("ChartToJSON output misses x axis: %s", out)
	}
}

func TestWorkbookToJSONRoundTrip(t *testing.T) {
	wb := &models.WorkbookReport{
		BookName: "book.xlsx",
		Sheets: map[string]models.SheetReport{
			"Sheet1": {
				Charts:          []models.ChartReport{{Name: "c", Kind: "bar", Source: "chart"}},
				TableCandidates: []string{"$A$1:$C$4"},
			},
		},
	}

	out, err := WorkbookToJSON(wb, true)
	if err != nil {
		t.Fatalf("WorkbookToJSON failed: %v", err)
	}

	var back models.WorkbookReport
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	sheet, ok := back.Sheets["Sheet1"]
	if !ok {
		t.Fatalf("Sheet1 missing from %s", out)
	}
	if len(sheet.Charts) != 1 || sheet.Charts[0].Kind != "bar" {
		t.Errorf("Charts = %+v, expected one bar chart", sheet.Charts)
	}
	if len(sheet.TableCandidates) != 1 || sheet.TableCandidates[0] != "$A$1:$C$4" {
		t.Errorf("TableCandidates = %v", sheet.TableCandidates)
	}
}
