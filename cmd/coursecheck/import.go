package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/coursecheck"
	"golang.org/x/sync/errgroup"
)

var sources = []coursecheck.Source{coursecheck.SourceProgramA, coursecheck.SourceProgramB}

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	if err := deps.Config.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecheck.ErrorMessage(err))
		return err
	}

	// Parse both exports before writing either.
	catalogs := make([]*coursecheck.Catalog, len(sources))
	g, ctx := errgroup.WithContext(deps.Ctx)
	for i, source := range sources {
		g.Go(func() error {
			catalog, err := parseProgram(ctx, deps, source)
			catalogs[i] = catalog
			return err
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecheck.ErrorMessage(err))
		return err
	}

	for _, catalog := range catalogs {
		if c.Force {
			if err := deps.Catalogs.DeleteCatalog(deps.Ctx, catalog.Source); err != nil && coursecheck.ErrorCode(err) != coursecheck.ENOTFOUND {
				fmt.Fprintf(deps.Stderr, "error: %s\n", coursecheck.ErrorMessage(err))
				return err
			}
		}

		changed, err := deps.Catalogs.ReplaceCatalog(deps.Ctx, catalog)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", coursecheck.ErrorMessage(err))
			return err
		}

		if changed {
			fmt.Fprintf(deps.Stdout, "Imported %s: %d courses\n", catalog.Name, len(catalog.Courses))
		} else {
			fmt.Fprintf(deps.Stdout, "%s is up to date (%d courses)\n", catalog.Name, len(catalog.Courses))
		}
	}

	return nil
}

// parseProgram reads the configured export of one program.
func parseProgram(ctx context.Context, deps *Dependencies, source coursecheck.Source) (*coursecheck.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	program := deps.Config.Program(source)
	parser, ok := deps.Parsers[program.Layout.Format]
	if !ok {
		return nil, coursecheck.Errorf(coursecheck.EINVALID, "program %q: no parser for format %q", program.Name, program.Layout.Format)
	}

	f, err := deps.Open(program.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, coursecheck.Errorf(coursecheck.ENOTFOUND, "catalog file %s for %s not found", program.Path, program.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", program.Path, err)
	}
	defer f.Close()

	courses, err := parser.ParseCatalog(f, source, program.Layout)
	if err != nil {
		if coursecheck.ErrorCode(err) == coursecheck.EINVALID {
			return nil, coursecheck.Errorf(coursecheck.EINVALID, "%s: %s", program.Path, coursecheck.ErrorMessage(err))
		}
		return nil, err
	}

	return &coursecheck.Catalog{
		Source:  source,
		Name:    program.Name,
		Courses: courses,
	}, nil
}
