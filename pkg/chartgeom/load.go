package chartgeom

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/parser"
	"github.com/xuri/excelize/v2"
)

// Sheet holds the charts loaded from one worksheet.
type Sheet struct {
	Name   string
	Charts []*Chart
	// Tables are the table candidates found on the sheet.
	Tables []models.CellRange
}

// Workbook holds the charts loaded from an xlsx file.
type Workbook struct {
	BookName string
	Sheets   []Sheet
}

// Load reads the charts of every sheet of an xlsx file and lays them
// out. Sheets without charts contribute their numeric tables as line
// charts unless table detection is disabled. Charts that cannot be built
// are logged and skipped.
func Load(path string, opts Options) (*Workbook, error) {
	log := opts.logger()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	specs, err := parser.ExtractCharts(path, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	wb := &Workbook{BookName: filepath.Base(path)}
	for _, sheetName := range f.GetSheetList() {
		sheet := Sheet{Name: sheetName}

		for _, spec := range specs[sheetName] {
			c, err := buildChart(f, sheetName, spec, opts)
			if err != nil {
				log.Warn("skipping chart", "sheet", sheetName, "chart", spec.Name,
					"error", NewChartError(spec.Name, "Load", err))
				continue
			}
			sheet.Charts = append(sheet.Charts, c)
		}

		tables, err := parser.DetectTables(f, sheetName, parser.DefaultTableParams())
		if err != nil {
			log.Warn("table detection failed", "sheet", sheetName, "error", err)
		}
		sheet.Tables = tables

		if len(sheet.Charts) == 0 && opts.ShouldDetectTables() {
			for _, area := range tables {
				c, err := buildTableChart(f, area, opts)
				if err != nil {
					log.Warn("skipping table", "sheet", sheetName, "range", area.String(), "error", err)
					continue
				}
				if c != nil {
					sheet.Charts = append(sheet.Charts, c)
				}
			}
		}

		log.Debug("sheet loaded", "sheet", sheetName, "charts", len(sheet.Charts))
		wb.Sheets = append(wb.Sheets, sheet)
	}

	return wb, nil
}

// Charts returns the charts of all sheets in sheet order.
func (w *Workbook) Charts() []*Chart {
	var out []*Chart
	for _, s := range w.Sheets {
		out = append(out, s.Charts...)
	}
	return out
}

// Report describes every chart of the workbook.
func (w *Workbook) Report() *models.WorkbookReport {
	rep := &models.WorkbookReport{
		BookName: w.BookName,
		Sheets:   make(map[string]models.SheetReport),
	}
	for _, s := range w.Sheets {
		var sr models.SheetReport
		for _, c := range s.Charts {
			sr.Charts = append(sr.Charts, c.Report())
		}
		for _, t := range s.Tables {
			t.Sheet = ""
			sr.TableCandidates = append(sr.TableCandidates, parser.FormatReference(t))
		}
		rep.Sheets[s.Name] = sr
	}
	return rep
}
