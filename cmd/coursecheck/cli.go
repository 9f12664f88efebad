package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/coursecheck"
	"github.com/fwojciec/coursecheck/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Config     *coursecheck.Config
	DB         *sqlite.DB
	Catalogs   coursecheck.CatalogService
	Parsers    map[string]coursecheck.CatalogParser
	Open       func(path string) (io.ReadCloser, error)
	Classifier coursecheck.Classifier
	Matcher    coursecheck.Matcher
	Prefilter  coursecheck.Matcher
	Reports    coursecheck.ReportWriter
	Asker      coursecheck.Asker
	Now        func() time.Time
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to a YAML configuration file" env:"COURSECHECK_CONFIG" type:"path"`
	DB      string `name:"db" help:"Path to the catalog database" env:"COURSECHECK_DB" type:"path"`
	Verbose bool   `short:"v" help:"Log debug output to stderr"`

	Import   ImportCmd   `cmd:"" help:"Import both program catalogs"`
	Catalogs CatalogsCmd `cmd:"" help:"List imported catalogs"`
	Courses  CoursesCmd  `cmd:"" help:"List the courses of one program"`
	Check    CheckCmd    `cmd:"" help:"Check whether a course is accepted, or list accepted courses"`
	Report   ReportCmd   `cmd:"" help:"Export the accepted courses as a markdown table"`
	Ask      AskCmd      `cmd:"" help:"Ask a free-form question about both catalogs"`
	Delete   DeleteCmd   `cmd:"" help:"Delete an imported catalog"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Force bool `short:"f" help:"Re-import even if the content is unchanged"`
}

// CatalogsCmd is the "catalogs" subcommand.
type CatalogsCmd struct{}

// CoursesCmd is the "courses" subcommand.
type CoursesCmd struct {
	Program string `arg:"" help:"Program: a, b, or the program name"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Query     []string `arg:"" help:"Course title or question"`
	Threshold int      `short:"t" default:"-1" help:"Similarity threshold from 0 to 100. Negative uses the configured threshold."`
	Prefilter bool     `help:"Only score courses sharing a word with the query"`
}

// ReportCmd is the "report" subcommand.
type ReportCmd struct {
	Path      string `arg:"" help:"Output file" type:"path"`
	Threshold int    `short:"t" default:"-1" help:"Similarity threshold from 0 to 100. Negative uses the configured threshold."`
	Prefilter bool   `help:"Only score courses sharing a word with each other"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question []string `arg:"" help:"Question to ask about the catalogs"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Program string `arg:"" help:"Program: a, b, or the program name"`
	Force   bool   `help:"Confirm deletion"`
}

// resolveProgram maps a program argument to its catalog source.
func resolveProgram(cfg *coursecheck.Config, arg string) (coursecheck.Source, error) {
	switch {
	case strings.EqualFold(arg, "a"), arg == string(coursecheck.SourceProgramA), strings.EqualFold(arg, cfg.ProgramA.Name):
		return coursecheck.SourceProgramA, nil
	case strings.EqualFold(arg, "b"), arg == string(coursecheck.SourceProgramB), strings.EqualFold(arg, cfg.ProgramB.Name):
		return coursecheck.SourceProgramB, nil
	}
	return "", coursecheck.Errorf(coursecheck.EINVALID, "unknown program %q. Use a (%s) or b (%s)", arg, cfg.ProgramA.Name, cfg.ProgramB.Name)
}

// threshold returns the flag value, or the configured threshold when negative.
func threshold(cfg *coursecheck.Config, flag int) int {
	if flag < 0 {
		return cfg.Threshold
	}
	return flag
}

// matcher picks the exhaustive matcher unless the prefilter was requested.
func (d *Dependencies) matcher(prefilter bool) coursecheck.Matcher {
	if prefilter {
		return d.Prefilter
	}
	return d.Matcher
}
