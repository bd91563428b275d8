package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"my-tweet-reviewer/pkg/db"
	"my-tweet-reviewer/pkg/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	tweetsTable     = "tweets"
	exportRunsTable = "export_runs"
)

// ExportService copies the review file into DuckDB so it can be queried with
// SQL, e.g. SELECT unnest(string_split(hashtags, '|')) FROM tweets.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// ExportToDuckDB replaces the tweets table with the given tweets and records
// the run in export_runs. It returns the run id.
func (s *ExportService) ExportToDuckDB(ctx context.Context, source string, tweets []model.Tweet, batchSize int) (string, error) {
	duckDB := db.GetDuckDBWithContext(ctx)
	if duckDB == nil {
		return "", fmt.Errorf("duckdb is not initialised")
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	if err := s.createTables(ctx, duckDB); err != nil {
		return "", fmt.Errorf("create duckdb tables: %v", err)
	}

	runID := uuid.NewString()
	startTime := time.Now()
	exported := 0
	for offset := 0; offset < len(tweets); offset += batchSize {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		end := offset + batchSize
		if end > len(tweets) {
			end = len(tweets)
		}
		if err := s.insertBatch(ctx, duckDB, offset, tweets[offset:end]); err != nil {
			return "", fmt.Errorf("insert tweets %d-%d: %v", offset, end, err)
		}
		exported += end - offset
		zap.S().Debugf("exported %d/%d tweets", exported, len(tweets))
	}

	_, err := duckDB.ExecContext(ctx,
		`INSERT INTO `+exportRunsTable+` (id, source, exported_at, tweet_count) VALUES (?, ?, ?, ?)`,
		runID, source, startTime, exported)
	if err != nil {
		return "", fmt.Errorf("record export run: %v", err)
	}

	zap.S().Infof("exported %d tweets in %s (run %s)", exported, time.Since(startTime), runID)
	return runID, nil
}

// createTables drops the previous tweets table so the export always mirrors
// the current review file; export_runs accumulates.
func (s *ExportService) createTables(ctx context.Context, duckDB *sql.DB) error {
	if _, err := duckDB.ExecContext(ctx, "DROP TABLE IF EXISTS "+tweetsTable); err != nil {
		return fmt.Errorf("drop %s: %v", tweetsTable, err)
	}

	createTweets := `
		CREATE TABLE ` + tweetsTable + ` (
			id TEXT PRIMARY KEY,
			position INTEGER,
			created_at TIMESTAMPTZ,
			text TEXT,
			hashtags TEXT,
			url TEXT,
			review_status TEXT,
			url_visited TEXT,
			deleted TEXT
		)
	`
	if _, err := duckDB.ExecContext(ctx, createTweets); err != nil {
		return fmt.Errorf("create %s: %v", tweetsTable, err)
	}

	createRuns := `
		CREATE TABLE IF NOT EXISTS ` + exportRunsTable + ` (
			id TEXT PRIMARY KEY,
			source TEXT,
			exported_at TIMESTAMPTZ,
			tweet_count INTEGER
		)
	`
	if _, err := duckDB.ExecContext(ctx, createRuns); err != nil {
		return fmt.Errorf("create %s: %v", exportRunsTable, err)
	}

	zap.S().Debug("duckdb export tables ready")
	return nil
}

// insertBatch writes one transaction; position keeps the review file order.
func (s *ExportService) insertBatch(ctx context.Context, duckDB *sql.DB, offset int, tweets []model.Tweet) error {
	tx, err := duckDB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO `+tweetsTable+` (id, position, created_at, text, hashtags, url, review_status, url_visited, deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, t := range tweets {
		if _, err := stmt.ExecContext(ctx,
			t.ID,
			offset+i,
			t.CreatedAt,
			t.Text,
			strings.Join(t.Hashtags, "|"),
			t.URL,
			string(t.ReviewStatus),
			string(t.URLVisited),
			string(t.Deleted),
		); err != nil {
			return fmt.Errorf("tweet %s: %v", t.ID, err)
		}
	}
	return tx.Commit()
}

// GetExportedCount returns the number of rows in the tweets table.
func (s *ExportService) GetExportedCount(ctx context.Context) (int64, error) {
	duckDB := db.GetDuckDBWithContext(ctx)
	if duckDB == nil {
		return 0, fmt.Errorf("duckdb is not initialised")
	}

	var count int64
	err := duckDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+tweetsTable).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count %s: %v", tweetsTable, err)
	}

	return count, nil
}
