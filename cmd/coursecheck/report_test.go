package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/coursecheck"
	main "github.com/fwojciec/coursecheck/cmd/coursecheck"
	"github.com/fwojciec/coursecheck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes accepted courses to path", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		var got *coursecheck.Report
		deps, stdout, _ := testDeps(testCatalogService())
		deps.Reports = &mock.ReportWriter{
			WriteReportFn: func(_ context.Context, path string, report *coursecheck.Report) error {
				gotPath, got = path, report
				return nil
			},
		}

		err := (&main.ReportCmd{Path: "out/accepted.md", Threshold: -1}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "out/accepted.md", gotPath)
		require.NotNil(t, got)
		assert.Equal(t, "SIM", got.ProgramA)
		assert.Equal(t, 70, got.Threshold)
		assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), got.GeneratedAt)
		require.Len(t, got.Entries, 1)
		assert.Equal(t, "Blockchain in Finance", got.Entries[0].Course.DisplayName)
		assert.Equal(t, "Wrote 1 accepted courses to out/accepted.md\n", stdout.String())
	})

	t.Run("returns writer error", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(testCatalogService())
		deps.Reports = &mock.ReportWriter{
			WriteReportFn: func(_ context.Context, _ string, _ *coursecheck.Report) error {
				return coursecheck.Errorf(coursecheck.EINVALID, "report path required")
			},
		}

		err := (&main.ReportCmd{Path: "x.md", Threshold: -1}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: report path required\n", stderr.String())
	})

	t.Run("rejects threshold before writing", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps(testCatalogService())
		deps.Reports = &mock.ReportWriter{
			WriteReportFn: func(_ context.Context, _ string, _ *coursecheck.Report) error {
				t.Fatal("report should not be written")
				return nil
			},
		}

		err := (&main.ReportCmd{Path: "x.md", Threshold: 150}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, coursecheck.EINVALID, coursecheck.ErrorCode(err))
	})
}
