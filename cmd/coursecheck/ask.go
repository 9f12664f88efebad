package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/coursecheck"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Asker.Ask(deps.Ctx, strings.Join(c.Question, " "))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecheck.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
