package db

import (
	"context"
	"database/sql"
	"sync"

	"my-tweet-reviewer/config"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var duckDB *sql.DB
var duckDBOnce sync.Once

// InitDuckDB opens the DuckDB file the export command writes to.
func InitDuckDB(cfg *config.DuckDBConfig) error {
	var err error
	duckDBOnce.Do(func() {
		if err = cfg.EnsureDir(); err != nil {
			return
		}
		duckDB, err = sql.Open("duckdb", cfg.DSN())
		if err != nil {
			zap.S().Errorf("open duckdb %s: %v", cfg.DSN(), err)
			return
		}

		if err = duckDB.Ping(); err != nil {
			zap.S().Errorf("ping duckdb %s: %v", cfg.DSN(), err)
			return
		}

		zap.S().Debugf("duckdb %s ready", cfg.DSN())
	})
	return errors.Wrap(err, "init duckdb")
}

// GetDuckDBWithContext returns the shared connection, nil before InitDuckDB.
func GetDuckDBWithContext(ctx context.Context) *sql.DB {
	return duckDB
}

// CloseDuckDB flushes and closes the connection.
func CloseDuckDB() error {
	if duckDB == nil {
		return nil
	}
	return duckDB.Close()
}
