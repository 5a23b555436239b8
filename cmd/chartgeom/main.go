// Package main provides the CLI entry point for chartgeom-go.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/output"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/preview"
)

var (
	outputPath   string
	pretty       bool
	width        float64
	height       float64
	touch        string
	zoom         string
	moveX        float64
	visibleX     string
	autoScale    bool
	fullBar      bool
	maxHighlight float64
	previewDir   string
	sheetsDir    string
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chartgeom [input.xlsx]",
		Short: "Lay out the charts of an Excel file",
		Long: `chartgeom-go loads the charts of an Excel file, computes their axes,
viewport and highlights, optionally applies gestures and outputs JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	flags.Float64Var(&width, "width", chartgeom.DefaultWidth, "Chart width in pixels when the workbook stores none")
	flags.Float64Var(&height, "height", chartgeom.DefaultHeight, "Chart height in pixels when the workbook stores none")
	flags.StringVar(&touch, "touch", "", "Tap at pixel x,y inside each chart")
	flags.StringVar(&zoom, "zoom", "", "Zoom by sx,sy around the content center")
	flags.Float64Var(&moveX, "move-x", 0, "Move the left edge of the view to this x value")
	flags.StringVar(&visibleX, "visible-x", "", "Limit the visible x range to min,max")
	flags.BoolVar(&autoScale, "auto-scale", false, "Rescale y axes to the visible x range")
	flags.BoolVar(&fullBar, "full-bar", false, "Highlight stacked bars as a whole")
	flags.Float64Var(&maxHighlight, "max-highlight-distance", chartgeom.DefaultMaxHighlightDistance, "Largest pixel distance for touch highlights")
	flags.StringVar(&previewDir, "preview-dir", "", "Directory for per-chart PNG previews")
	flags.StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	flags.BoolVar(&verbose, "verbose", false, "Log debug output to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := chartgeom.DefaultOptions()
	opts.Width = width
	opts.Height = height
	opts.AutoScaleMinMax = autoScale
	opts.FullBarHighlight = fullBar
	opts.MaxHighlightDistance = maxHighlight
	opts.Logger = logger

	g, err := parseGestures(cmd)
	if err != nil {
		return err
	}

	wb, err := chartgeom.Load(inputPath, opts)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	for _, c := range wb.Charts() {
		g.apply(c)
	}

	report := wb.Report()
	jsonData, err := output.WorkbookToJSON(report, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" && previewDir == "" {
		fmt.Println(string(jsonData))
	}

	if sheetsDir != "" {
		if err := writeSheetFiles(report, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	if previewDir != "" {
		if err := writePreviews(wb, previewDir, logger); err != nil {
			return fmt.Errorf("failed to write previews: %w", err)
		}
	}

	return nil
}

// gestures holds the interactions requested on the command line.
type gestures struct {
	visibleX []float64
	zoom     []float64
	moveX    float64
	hasMoveX bool
	touch    []float64
}

func parseGestures(cmd *cobra.Command) (gestures, error) {
	var g gestures
	var err error
	if g.visibleX, err = parsePair(visibleX); err != nil {
		return g, fmt.Errorf("invalid --visible-x: %w", err)
	}
	if g.zoom, err = parsePair(zoom); err != nil {
		return g, fmt.Errorf("invalid --zoom: %w", err)
	}
	if g.touch, err = parsePair(touch); err != nil {
		return g, fmt.Errorf("invalid --touch: %w", err)
	}
	g.moveX = moveX
	g.hasMoveX = cmd.Flags().Changed("move-x")
	return g, nil
}

// apply runs the gestures in a fixed order: visible range, zoom, move
// and finally the tap, so the tap resolves against the final viewport.
func (g gestures) apply(c *chartgeom.Chart) {
	if g.visibleX != nil {
		c.SetVisibleXRange(g.visibleX[0], g.visibleX[1])
	}
	if g.zoom != nil {
		center := c.ViewPortHandler().ContentCenter()
		c.Zoom(g.zoom[0], g.zoom[1], center.X, center.Y)
	}
	if g.hasMoveX && !c.Kind().IsCircular() {
		c.MoveViewToX(g.moveX)
	}
	if g.touch != nil {
		c.Tap(g.touch[0], g.touch[1])
	}
}

// parsePair parses "a,b" into two floats. An empty string yields nil.
func parsePair(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected two comma-separated numbers, got %q", s)
	}
	out := make([]float64, 2)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func writeSheetFiles(report *models.WorkbookReport, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for sheetName, sheet := range report.Sheets {
		jsonData, err := output.SheetToJSON(&sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheetName+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

func writePreviews(wb *chartgeom.Workbook, dir string, logger *slog.Logger) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, sheet := range wb.Sheets {
		for i, c := range sheet.Charts {
			vp := c.ViewPortHandler()
			var buf bytes.Buffer
			if err := preview.Render(&buf, c, int(vp.ChartWidth()), int(vp.ChartHeight())); err != nil {
				logger.Warn("skipping preview", "sheet", sheet.Name, "chart", c.Name, "error", err)
				continue
			}

			filename := filepath.Join(dir, fmt.Sprintf("%s_chart%d.png", sheet.Name, i+1))
			if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
				return err
			}
		}
	}

	return nil
}
