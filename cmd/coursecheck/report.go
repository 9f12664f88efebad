package main

import (
	"fmt"

	"github.com/fwojciec/coursecheck"
	"github.com/fwojciec/coursecheck/resolve"
)

// Run executes the report command.
func (c *ReportCmd) Run(deps *Dependencies) error {
	snapshot, err := coursecheck.LoadSnapshot(deps.Ctx, deps.Catalogs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecheck.ErrorMessage(err))
		return err
	}

	resolver := &resolve.Resolver{
		Classifier: deps.Classifier,
		Matcher:    deps.matcher(c.Prefilter),
		Threshold:  threshold(deps.Config, c.Threshold),
	}
	report, err := resolver.Report(snapshot)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecheck.ErrorMessage(err))
		return err
	}
	report.GeneratedAt = deps.Now()

	if err := deps.Reports.WriteReport(deps.Ctx, c.Path, report); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecheck.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d accepted courses to %s\n", len(report.Entries), c.Path)
	return nil
}
