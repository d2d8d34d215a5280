package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/mwalkowski/laradoc"
)

const chatHelp = `Commands:
  help      Show this help
  tools     List the retrieval tools
  history   Show the conversation so far
  clear     Clear the conversation history
  quit      Exit the session (also: exit)

Anything else is treated as a question about the Laravel documentation.`

// Run executes the chat command.
func (c *ChatCmd) Run(deps *Dependencies) error {
	engine, err := newEngine(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", laradoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Laravel documentation assistant. Type 'help' for commands, 'quit' to exit.")

	scanner := bufio.NewScanner(deps.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(deps.Stdout)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "quit", "exit":
			fmt.Fprintln(deps.Stdout, "Goodbye!")
			return nil

		case "help":
			fmt.Fprintln(deps.Stdout, chatHelp)

		case "tools":
			for _, spec := range laradoc.ToolSpecs() {
				fmt.Fprintf(deps.Stdout, "  %s: %s\n", spec.Name, spec.Description)
			}

		case "history":
			turns, err := engine.History(deps.Ctx, c.Session)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", laradoc.ErrorMessage(err))
				continue
			}
			if len(turns) == 0 {
				fmt.Fprintln(deps.Stdout, "No chat history.")
				continue
			}
			for _, turn := range turns {
				label := "You"
				if turn.Role == laradoc.RoleAssistant {
					label = "Assistant"
				}
				fmt.Fprintf(deps.Stdout, "%s: %s\n", label, turn.Text)
			}

		case "clear":
			if err := engine.ClearHistory(deps.Ctx, c.Session); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", laradoc.ErrorMessage(err))
				continue
			}
			fmt.Fprintln(deps.Stdout, "Chat history cleared.")

		default:
			answer, err := engine.Chat(deps.Ctx, c.Session, line)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", laradoc.ErrorMessage(err))
				continue
			}
			fmt.Fprintln(deps.Stdout, answer)
		}
	}
}
