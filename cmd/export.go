package cmd

import (
	"fmt"

	"my-tweet-reviewer/pkg/db"
	"my-tweet-reviewer/pkg/service"
	"my-tweet-reviewer/pkg/signals"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewExportCommand(opts *rootOptions) *cobra.Command {
	var dbPath string
	var batchSize int

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Copy the review file into a DuckDB database",
		Long:  "Loads the review file (or builds it from tweet.js), then replaces the tweets table of the DuckDB database with its rows for ad-hoc SQL queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("duckdb") {
				cfg.DuckDBConfig.DBPath = dbPath
			}
			if cmd.Flags().Changed("batch-size") {
				cfg.DuckDBConfig.BatchSize = batchSize
			}
			if errs := cfg.DuckDBConfig.Validate(); len(errs) > 0 {
				return errs[0]
			}

			s, err := loadStore(cfg.Reviewer, cmd.OutOrStdout())
			if err != nil || s == nil {
				return err
			}

			ctx := signals.SetupSignalHandler()

			if err := db.InitDuckDB(cfg.DuckDBConfig); err != nil {
				return err
			}
			defer db.CloseDuckDB()

			exportService := service.NewExportService()
			runID, err := exportService.ExportToDuckDB(ctx, s.Path(), s.Tweets(), cfg.DuckDBConfig.BatchSize)
			if err != nil {
				return err
			}

			count, err := exportService.GetExportedCount(ctx)
			if err != nil {
				zap.S().Warnf("count exported tweets: %s", err.Error())
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tweets to %s (run %s).\n", count, cfg.DuckDBConfig.DBPath, runID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "duckdb", "./data/tweets.duckdb", "DuckDB database file")
	cmd.Flags().IntVarP(&batchSize, "batch-size", "b", 100, "rows per insert transaction")
	return cmd
}
