package mock

import (
	"context"

	"github.com/fwojciec/coursecheck"
)

var _ coursecheck.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of coursecheck.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, path string, report *coursecheck.Report) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, path string, report *coursecheck.Report) error {
	return w.WriteReportFn(ctx, path, report)
}
