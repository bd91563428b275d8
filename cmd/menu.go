package cmd

import (
	"errors"
	"fmt"

	"my-tweet-reviewer/pkg/prompt"
	"my-tweet-reviewer/pkg/service"

	"github.com/spf13/cobra"
)

func NewMenuCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu: review, delete, reset or quit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, opts)
		},
	}
}

func runMenu(cmd *cobra.Command, opts *rootOptions) error {
	out := cmd.OutOrStdout()
	console := prompt.NewConsole(cmd.InOrStdin(), out)
	fmt.Fprintln(out, "Welcome to My Tweet Reviewer.")
	for {
		choice, err := console.Ask(prompt.MainMenu)
		if errors.Is(err, prompt.ErrNoInput) {
			return nil
		}
		if err != nil {
			return err
		}

		var run workflow
		switch choice {
		case "1":
			run = (*service.Session).Review
		case "2":
			run = (*service.Session).Delete
		case "3":
			run = (*service.Session).Reset
		case "4":
			return nil
		}
		if err := runWorkflow(cmd, opts, console, run); err != nil {
			return err
		}
	}
}
