// Package fs provides file-based export of cross-listing reports.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/coursecheck"
)

// Ensure ReportWriter implements coursecheck.ReportWriter at compile time.
var _ coursecheck.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes reports as markdown files with atomic replace semantics.
// The report is written to a temporary file next to the target, then renamed.
type ReportWriter struct{}

// NewReportWriter creates a new ReportWriter.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// WriteReport writes the formatted report to path, creating parent directories.
// An existing file at path is replaced only once the new content is complete.
func (w *ReportWriter) WriteReport(ctx context.Context, path string, report *coursecheck.Report) error {
	if path == "" {
		return coursecheck.Errorf(coursecheck.EINVALID, "report path required")
	}
	if report == nil {
		return coursecheck.Errorf(coursecheck.EINVALID, "report required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(coursecheck.FormatReport(report)); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace report: %w", err)
	}
	return nil
}
