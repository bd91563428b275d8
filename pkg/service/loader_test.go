package service

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"my-tweet-reviewer/config"
	"my-tweet-reviewer/pkg/importer"
	"my-tweet-reviewer/pkg/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeImporter struct {
	tweets []importer.RawTweet
	err    error
	calls  int
}

func (f *fakeImporter) Import() ([]importer.RawTweet, error) {
	f.calls++
	return f.tweets, f.err
}

func rawTweets() []importer.RawTweet {
	return []importer.RawTweet{
		{CreatedAt: "Wed Apr 24 10:15:02 +0000 2019", ID: "1", Text: "oldest", Hashtags: []string{"Foo"}},
		{CreatedAt: "Sun Aug 11 09:00:00 +0000 2019", ID: "3", Text: "newest"},
		{CreatedAt: "Fri Jun 07 18:30:00 +0100 2019", ID: "2", Text: "middle", Hashtags: []string{"Bar", "Baz"}},
	}
}

func reviewerConfig(t *testing.T) *config.ReviewerConfig {
	cfg := config.NewDefaultReviewerConfig()
	cfg.Username = "@someone"
	cfg.SavedFilename = filepath.Join(t.TempDir(), "review.csv")
	return cfg
}

func TestBuildTweets(t *testing.T) {
	tweets, err := BuildTweets(rawTweets(), "@someone")
	require.NoError(t, err)

	assert.Equal(t, []string{"3", "2", "1"}, ids(tweets))
	assert.Equal(t, "https://twitter.com/someone/status/2", tweets[1].URL)
	assert.Equal(t, []string{"bar", "baz"}, tweets[1].Hashtags)
	assert.Nil(t, tweets[0].Hashtags)
	for _, tw := range tweets {
		assert.Equal(t, model.ReviewNone, tw.ReviewStatus)
		assert.Equal(t, model.No, tw.URLVisited)
	}
}

func TestBuildTweets_DuplicateIDsKeepFirst(t *testing.T) {
	raw := append(rawTweets(), importer.RawTweet{CreatedAt: "Sun Aug 11 09:00:00 +0000 2019", ID: "1", Text: "again"})
	tweets, err := BuildTweets(raw, "me")
	require.NoError(t, err)
	require.Len(t, tweets, 3)
	for _, tw := range tweets {
		if tw.ID == "1" {
			assert.Equal(t, "oldest", tw.Text)
		}
	}
}

func TestBuildTweets_BadDate(t *testing.T) {
	_, err := BuildTweets([]importer.RawTweet{{CreatedAt: "2019-08-11", ID: "1"}}, "me")
	assert.Error(t, err)
}

func TestLoader_CreateFiltersAndDoesNotWrite(t *testing.T) {
	cfg := reviewerConfig(t)
	cfg.ExcludedHashtags = []string{"foo"}
	imp := &fakeImporter{tweets: rawTweets()}
	var out bytes.Buffer

	s, err := NewLoader(cfg, imp, &out).LoadOrCreate()
	require.NoError(t, err)

	assert.Equal(t, []string{"3", "2"}, s.IDs(nil))
	assert.Equal(t, 1, imp.calls)
	assert.False(t, fileExists(t, cfg.SavedFilename))
	assert.Contains(t, out.String(), "Creating new "+cfg.SavedFilename+".")
	assert.Contains(t, out.String(), "Total number of tweets in "+cfg.SavedFilename+": 2")
}

func TestLoader_SavedFileIsAuthoritative(t *testing.T) {
	cfg := reviewerConfig(t)
	first, err := NewLoader(cfg, &fakeImporter{tweets: rawTweets()}, nil).LoadOrCreate()
	require.NoError(t, err)
	require.NoError(t, first.MarkReviewed("3", model.ReviewKeep))
	require.NoError(t, first.Save())

	// a changed export and filter must not matter any more
	imp := &fakeImporter{err: errors.New("must not be called")}
	cfg.ExcludedHashtags = []string{"bar"}
	var out bytes.Buffer
	s, err := NewLoader(cfg, imp, &out).LoadOrCreate()
	require.NoError(t, err)

	assert.Equal(t, 0, imp.calls)
	assert.Equal(t, []string{"3", "2", "1"}, s.IDs(nil))
	st, _ := status(t, s, "3")
	assert.Equal(t, model.ReviewKeep, st)
	assert.Contains(t, out.String(), "Loading existing")
}

func TestLoader_MissingExport(t *testing.T) {
	cfg := reviewerConfig(t)
	cfg.ExportPath = filepath.Join(t.TempDir(), "tweet.js")
	imp := importer.NewTweetJSImporter(cfg.ExportPath, false)

	_, err := NewLoader(cfg, imp, nil).LoadOrCreate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, importer.ErrExportMissing))
	assert.False(t, fileExists(t, cfg.SavedFilename))
}

func firstLine(t *testing.T, path string) string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	sc := bufio.NewScanner(f)
	require.True(t, sc.Scan())
	return sc.Text()
}

func TestLoader_FileLayoutWinsOverGUIFlag(t *testing.T) {
	const (
		plain = "tweet_created,tweet_id,tweet_text,tweet_hashtags,tweet_url,tweet_review_status,tweet_url_visited"
		gui   = plain + ",tweet_deleted"
	)
	cases := []struct {
		name          string
		created, then bool
		header        string
	}{
		{"plain file, gui flag", false, true, plain},
		{"gui file, plain flag", true, false, gui},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := reviewerConfig(t)
			cfg.GUICompatibility = tc.created
			first, err := NewLoader(cfg, &fakeImporter{tweets: rawTweets()}, nil).LoadOrCreate()
			require.NoError(t, err)
			require.NoError(t, first.Save())

			core, logs := observer.New(zap.WarnLevel)
			defer zap.ReplaceGlobals(zap.New(core))()

			cfg.GUICompatibility = tc.then
			s, err := NewLoader(cfg, &fakeImporter{}, nil).LoadOrCreate()
			require.NoError(t, err)
			assert.Equal(t, tc.created, s.GUICompatibility())
			require.Equal(t, 1, logs.Len())
			assert.Contains(t, logs.All()[0].Message, "keeping its layout")

			require.NoError(t, s.MarkReviewed("3", model.ReviewKeep))
			require.NoError(t, s.Save())
			assert.Equal(t, tc.header, firstLine(t, cfg.SavedFilename))
		})
	}
}

func TestLoader_MatchingGUIFlagIsQuiet(t *testing.T) {
	cfg := reviewerConfig(t)
	cfg.GUICompatibility = true
	first, err := NewLoader(cfg, &fakeImporter{tweets: rawTweets()}, nil).LoadOrCreate()
	require.NoError(t, err)
	require.NoError(t, first.Save())

	core, logs := observer.New(zap.WarnLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	_, err = NewLoader(cfg, &fakeImporter{}, nil).LoadOrCreate()
	require.NoError(t, err)
	assert.Zero(t, logs.Len())
}
