package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTryLoadFromDisk_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
reviewer:
  username: "@someone"
  excludedHashtags: ["#Foo", "bar", "BAR"]
  savedFilename: review.csv
  guiCompatibility: true
duckdb:
  dbPath: ./out/tweets.duckdb
`)
	cfg, err := TryLoadFromDisk(path)
	require.NoError(t, err)

	assert.Equal(t, "@someone", cfg.Reviewer.Username)
	assert.Equal(t, []string{"foo", "bar"}, cfg.Reviewer.ExcludedHashtags)
	assert.Equal(t, "review.csv", cfg.Reviewer.SavedFilename)
	assert.Equal(t, "tweet.js", cfg.Reviewer.ExportPath)
	assert.True(t, cfg.Reviewer.GUICompatibility)
	assert.Equal(t, "./out/tweets.duckdb", cfg.DuckDBConfig.DBPath)
	assert.Equal(t, 100, cfg.DuckDBConfig.BatchSize)
	assert.Empty(t, cfg.Validate())
}

func TestTryLoadFromDisk_JSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{"reviewer": {"username": "me"}}`)
	cfg, err := TryLoadFromDisk(path)
	require.NoError(t, err)
	assert.Equal(t, "me", cfg.Reviewer.Username)
	assert.Equal(t, "my_tweet_review.csv", cfg.Reviewer.SavedFilename)
	assert.Empty(t, cfg.Reviewer.ExcludedHashtags)
}

func TestLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := Load(missing, false)
	require.NoError(t, err)
	assert.Equal(t, NewDefaultGlobalConfig(), cfg)

	_, err = Load(missing, true)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	errs := cfg.Validate()
	require.Len(t, errs, 1, "only the username is missing from the defaults")

	cfg.Reviewer.Username = "@"
	assert.Len(t, cfg.Validate(), 1)

	cfg.Reviewer.Username = "@me"
	cfg.DuckDBConfig.BatchSize = 0
	assert.Len(t, cfg.Validate(), 1)

	cfg.DuckDBConfig = nil
	assert.Empty(t, cfg.Validate())
}

func TestSetExcludedHashtags(t *testing.T) {
	r := NewDefaultReviewerConfig()

	require.NoError(t, r.SetExcludedHashtags("foo, #Bar,,baz"))
	assert.Equal(t, []string{"foo", "bar", "baz"}, r.ExcludedHashtags)

	require.NoError(t, r.SetExcludedHashtags([]interface{}{"X", "y"}))
	assert.Equal(t, []string{"x", "y"}, r.ExcludedHashtags)

	require.NoError(t, r.SetExcludedHashtags([]string{}))
	assert.Empty(t, r.ExcludedHashtags)
}
