package cmd

import (
	"my-tweet-reviewer/pkg/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewRootCommand() *cobra.Command {
	return newRootCommand(&rootOptions{})
}

func newRootCommand(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "my-tweet-reviewer",
		Short: "Review your tweet archive and delete the tweets you no longer want",
		Long: "Loads tweet.js from a Twitter data archive, lets you mark every tweet as keep or delete, " +
			"opens the tweets marked for deletion in the browser and keeps track of progress in a CSV file.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableNoDescFlag:   true,
			DisableDescriptions: true,
			HiddenDefaultCmd:    true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(opts.logLevel)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
	}
	opts.addFlags(rootCmd)

	rootCmd.AddCommand(NewMenuCommand(opts))
	rootCmd.AddCommand(NewReviewCommand(opts))
	rootCmd.AddCommand(NewDeleteCommand(opts))
	rootCmd.AddCommand(NewResetCommand(opts))
	rootCmd.AddCommand(NewStatsCommand(opts))
	rootCmd.AddCommand(NewExportCommand(opts))

	// without a subcommand the interactive menu runs
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd, opts)
	}
	rootCmd.Version = util.GetVersion().Version
	return rootCmd
}

func setupLogger(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
