package cmd

import (
	"my-tweet-reviewer/pkg/prompt"
	"my-tweet-reviewer/pkg/service"

	"github.com/spf13/cobra"
)

func newWorkflowCommand(opts *rootOptions, use, short string, run workflow) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			console := prompt.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
			return runWorkflow(cmd, opts, console, run)
		},
	}
}

func NewReviewCommand(opts *rootOptions) *cobra.Command {
	return newWorkflowCommand(opts, "review",
		"Mark each unreviewed tweet as keep, delete or pass",
		(*service.Session).Review)
}

func NewDeleteCommand(opts *rootOptions) *cobra.Command {
	return newWorkflowCommand(opts, "delete",
		"Open the tweets marked for deletion in the browser, one by one",
		(*service.Session).Delete)
}

func NewResetCommand(opts *rootOptions) *cobra.Command {
	return newWorkflowCommand(opts, "reset",
		"Clear all review decisions and browser visits",
		(*service.Session).Reset)
}
