package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

var _ IConfig = (*DuckDBConfig)(nil)

type DuckDBConfig struct {
	DBPath    string `json:"dbPath" yaml:"dbPath"` // DuckDB database file used by the export command
	BatchSize int    `json:"batchSize" yaml:"batchSize"`
}

func (d *DuckDBConfig) Validate() []error {
	var errs = make([]error, 0)
	if d.DBPath == "" {
		errs = append(errs, errors.Errorf("DuckDB path must not be empty"))
		return errs
	}
	if d.BatchSize <= 0 {
		errs = append(errs, errors.Errorf("DuckDB batch size must be positive, got %d", d.BatchSize))
	}
	return errs
}

// EnsureDir creates the directory holding the database file.
func (d *DuckDBConfig) EnsureDir() error {
	dir := filepath.Dir(d.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Errorf("create DuckDB directory: %v", err)
	}
	return nil
}

func NewDefaultDuckDBConfig() *DuckDBConfig {
	return &DuckDBConfig{
		DBPath:    "./data/tweets.duckdb",
		BatchSize: 100,
	}
}

func (d *DuckDBConfig) DSN() string {
	return d.DBPath
}
