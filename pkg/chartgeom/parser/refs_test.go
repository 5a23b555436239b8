package parser

import (
	"errors"
	"testing"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		input    string
		expected models.CellRange
		wantErr  bool
	}{
		{"Sheet1!$B$2:$B$9", models.CellRange{Sheet: "Sheet1", R1: 2, C1: 2, R2: 9, C2: 2}, false},
		{"'My Sheet'!A1:C3", models.CellRange{Sheet: "My Sheet", R1: 1, C1: 1, R2: 3, C2: 3}, false},
		{"'It''s'!$A$1", models.CellRange{Sheet: "It's", R1: 1, C1: 1, R2: 1, C2: 1}, false},
		{"C5:A1", models.CellRange{R1: 1, C1: 1, R2: 5, C2: 3}, false},
		{"", models.CellRange{}, true},
		{"(Sheet1!A1,Sheet1!B2)", models.CellRange{}, true},
		{"Sheet1!ZZZZ", models.CellRange{}, true},
	}

	for _, tt := range tests {
		got, err := ParseReference(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseReference(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err != nil {
			if !errors.Is(err, ErrInvalidReference) {
				t.Errorf("ParseReference(%q) error = %v, expected ErrInvalidReference", tt.input, err)
			}
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseReference(%q) = %+v, expected %+v", tt.input, got, tt.expected)
		}
	}
}

func TestFormatReference(t *testing.T) {
	tests := []struct {
		area     models.CellRange
		expected string
	}{
		{models.CellRange{Sheet: "Sheet1", R1: 2, C1: 2, R2: 9, C2: 2}, "Sheet1!$B$2:$B$9"},
		{models.CellRange{Sheet: "My Sheet", R1: 1, C1: 1, R2: 1, C2: 1}, "'My Sheet'!$A$1"},
		{models.CellRange{R1: 1, C1: 1, R2: 4, C2: 3}, "$A$1:$C$4"},
	}

	for _, tt := range tests {
		got := FormatReference(tt.area)
		if got != tt.expected {
			t.Errorf("FormatReference(%+v) = %q, expected %q", tt.area, got, tt.expected)
		}
		back, err := ParseReference(got)
		if err != nil || back != tt.area {
			t.Errorf("ParseReference(%q) = %+v, %v, expected %+v", got, back, err, tt.area)
		}
	}
}
