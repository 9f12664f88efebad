package main

import (
	"fmt"

	"github.com/fwojciec/coursecheck"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return coursecheck.Errorf(coursecheck.EINVALID, "use --force to confirm deletion")
	}

	source, err := resolveProgram(deps.Config, c.Program)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecheck.ErrorMessage(err))
		return err
	}

	name := deps.Config.Program(source).Name
	err = deps.Catalogs.DeleteCatalog(deps.Ctx, source)
	if coursecheck.ErrorCode(err) == coursecheck.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: %s has not been imported. Use 'coursecheck catalogs' to see imported catalogs.\n", name)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecheck.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted catalog %q\n", name)
	return nil
}
