package main

import (
	"fmt"

	"github.com/fwojciec/coursecheck"
)

// Run executes the courses command.
func (c *CoursesCmd) Run(deps *Dependencies) error {
	source, err := resolveProgram(deps.Config, c.Program)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecheck.ErrorMessage(err))
		return err
	}

	catalog, err := deps.Catalogs.FindCatalogBySource(deps.Ctx, source)
	if coursecheck.ErrorCode(err) == coursecheck.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: %s has not been imported. Use 'coursecheck import' to load it.\n", deps.Config.Program(source).Name)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecheck.ErrorMessage(err))
		return err
	}

	for _, course := range catalog.Courses {
		if course.Classification != "" {
			fmt.Fprintf(deps.Stdout, "%s  [%s]\n", course.ComparisonText, course.Classification)
			continue
		}
		fmt.Fprintln(deps.Stdout, course.ComparisonText)
	}

	return nil
}
