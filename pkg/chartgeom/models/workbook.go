package models

// SheetReport represents the charts of a single sheet.
type SheetReport struct {
	// Charts contains the charts of the sheet.
	Charts []ChartReport `json:"charts,omitempty"`
	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty"`
}

// WorkbookReport represents workbook-level container with per-sheet
// reports.
type WorkbookReport struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets maps sheet name to SheetReport.
	Sheets map[string]SheetReport `json:"sheets"`
}
