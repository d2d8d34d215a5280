package main

import (
	"fmt"

	"github.com/mwalkowski/laradoc"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	engine, err := newEngine(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", laradoc.ErrorMessage(err))
		return err
	}

	answer, err := engine.Chat(deps.Ctx, "ask", c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", laradoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
