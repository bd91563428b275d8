package cmd

import (
	"fmt"

	"my-tweet-reviewer/pkg/model"

	"github.com/spf13/cobra"
)

func NewStatsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show how far the review and deletion have progressed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			s, err := loadStore(cfg.Reviewer, out)
			if err != nil || s == nil {
				return err
			}
			fmt.Fprintf(out, "Awaiting review: %d\n", s.CountBy(model.AwaitingReview))
			fmt.Fprintf(out, "Marked keep: %d\n", s.CountBy(model.Kept))
			fmt.Fprintf(out, "Marked delete: %d\n", s.CountBy(model.MarkedForDeletion))
			fmt.Fprintf(out, "Awaiting deletion: %d\n", s.CountBy(model.AwaitingDeletion))
			fmt.Fprintf(out, "Opened in browser: %d\n", s.CountBy(model.Visited))
			return nil
		},
	}
}
