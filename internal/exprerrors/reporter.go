package exprerrors

import (
	"errors"
	"fmt"
	"io"
)

type ErrReporter interface {
	ReportPanic(err error)
	ReportError(err error)
}

type errReporter struct {
	w io.Writer
}

func NewErrReporter(w io.Writer) *errReporter {
	return &errReporter{w: w}
}

// ReportPanic implements ErrReporter.
func (e *errReporter) ReportPanic(err error) {
	DefaultReportPanic(e.w, err)
}

// ReportError implements ErrReporter.
func (e *errReporter) ReportError(err error) {
	DefaultReportError(e.w, err)
}

// DefaultReportPanic is the default implementation of ErrReporter.ReportPanic.
func DefaultReportPanic(w io.Writer, err error) {
	fmt.Fprintf(w, "FATAL %v\n", err)
}

// DefaultReportError is the default implementation of ErrReporter.ReportError.
// Evaluation failures are prefixed with their kind.
func DefaultReportError(w io.Writer, err error) {
	fmt.Fprintf(w, "ERROR %s%v\n", kindPrefix(err), err)
}

func kindPrefix(err error) string {
	switch {
	case errors.Is(err, ErrUnboundVariable):
		return "[unbound] "
	case errors.Is(err, ErrDivisionByZero):
		return "[div0] "
	case errors.Is(err, ErrInvalidBinding):
		return "[binding] "
	}
	return ""
}

// NopReporter discards every report.
type NopReporter struct{}

func (NopReporter) ReportPanic(error) {}
func (NopReporter) ReportError(error) {}

var _ ErrReporter = (*errReporter)(nil)
var _ ErrReporter = NopReporter{}
