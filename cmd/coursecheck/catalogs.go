package main

import (
	"fmt"

	"github.com/fwojciec/coursecheck"
)

// Run executes the catalogs command.
func (c *CatalogsCmd) Run(deps *Dependencies) error {
	catalogs, err := deps.Catalogs.FindCatalogs(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecheck.ErrorMessage(err))
		return err
	}

	if len(catalogs) == 0 {
		fmt.Fprintln(deps.Stdout, "No catalogs imported. Use 'coursecheck import' to load them.")
		return nil
	}

	for _, cat := range catalogs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d courses  %s  %s\n",
			cat.Source, cat.Name, cat.CourseCount, cat.ImportedAt.Format("2006-01-02 15:04"), cat.ContentHash)
	}

	return nil
}
