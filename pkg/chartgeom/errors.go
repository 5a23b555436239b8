package chartgeom

import (
	"errors"
	"fmt"
)

// ErrNoData indicates an operation that needs chart data was called on
// an empty chart.
var ErrNoData = errors.New("chart has no data")

// ErrAxisUnsupported indicates the chart kind has no such axis.
var ErrAxisUnsupported = errors.New("axis not supported by chart kind")

// ErrKindMismatch indicates data of the wrong shape for the chart kind.
var ErrKindMismatch = errors.New("data does not match chart kind")

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ChartError represents an error raised by an operation on a named chart.
type ChartError struct {
	Chart string
	Op    string // "SetData", "SetChartDimens", "GroupBars", "Load", ...
	Err   error
}

func (e *ChartError) Error() string {
	return fmt.Sprintf("chart %q (%s): %v", e.Chart, e.Op, e.Err)
}

func (e *ChartError) Unwrap() error {
	return e.Err
}

// NewChartError creates a new ChartError.
func NewChartError(chart, op string, err error) *ChartError {
	return &ChartError{
		Chart: chart,
		Op:    op,
		Err:   err,
	}
}
