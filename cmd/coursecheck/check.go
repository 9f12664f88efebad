package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/coursecheck"
	"github.com/fwojciec/coursecheck/resolve"
	ccslog "github.com/fwojciec/coursecheck/slog"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	snapshot, err := coursecheck.LoadSnapshot(deps.Ctx, deps.Catalogs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecheck.ErrorMessage(err))
		return err
	}

	var resolver coursecheck.Resolver = &resolve.Resolver{
		Classifier: deps.Classifier,
		Matcher:    deps.matcher(c.Prefilter),
		Threshold:  threshold(deps.Config, c.Threshold),
	}
	if deps.Logger != nil {
		resolver = ccslog.NewLoggingResolver(resolver, deps.Logger)
	}

	answer, err := resolver.Resolve(deps.Ctx, snapshot, strings.Join(c.Query, " "))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecheck.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, coursecheck.FormatAnswer(answer))
	return nil
}
