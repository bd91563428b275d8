package service

import (
	"fmt"
	"io"
	"sort"
	"time"

	"my-tweet-reviewer/config"
	"my-tweet-reviewer/pkg/importer"
	"my-tweet-reviewer/pkg/model"
	"my-tweet-reviewer/pkg/store"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// TwitterTimeLayout is the created_at format of the archive.
const TwitterTimeLayout = "Mon Jan 02 15:04:05 -0700 2006"

type Loader struct {
	cfg      *config.ReviewerConfig
	importer importer.Importer
	out      io.Writer
}

// NewLoader returns a loader that reports what it does to out. A nil out keeps
// it quiet.
func NewLoader(cfg *config.ReviewerConfig, imp importer.Importer, out io.Writer) *Loader {
	if out == nil {
		out = io.Discard
	}
	return &Loader{cfg: cfg, importer: imp, out: out}
}

// LoadOrCreate returns the saved review file when it exists. Otherwise it
// builds a new set from the raw export: newest first, excluded hashtags
// removed, statuses at their defaults. Nothing is written on the create path.
func (l *Loader) LoadOrCreate() (*store.Store, error) {
	path := l.cfg.SavedFilename
	exists, err := store.Exists(path)
	if err != nil {
		return nil, err
	}

	var s *store.Store
	if exists {
		s, err = store.Load(path)
		if err != nil {
			return nil, err
		}
		if s.GUICompatibility() != l.cfg.GUICompatibility {
			zap.S().Warnf("%s was created with guiCompatibility=%v, keeping its layout",
				path, s.GUICompatibility())
		}
		fmt.Fprintf(l.out, "\nLoading existing %s.\n", path)
	} else {
		s, err = l.create()
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(l.out, "\nCreating new %s.\n", path)
	}
	fmt.Fprintf(l.out, "Total number of tweets in %s: %d\n", path, s.Len())
	return s, nil
}

func (l *Loader) create() (*store.Store, error) {
	raw, err := l.importer.Import()
	if err != nil {
		return nil, err
	}
	tweets, err := BuildTweets(raw, l.cfg.Username)
	if err != nil {
		return nil, err
	}
	tweets = FilterByHashtags(tweets, l.cfg.ExcludedHashtags)
	zap.S().Debugf("%d tweets after hashtag filter", len(tweets))
	return store.New(l.cfg.SavedFilename, tweets, l.cfg.GUICompatibility)
}

// BuildTweets turns raw archive items into tweets sorted newest first. A
// repeated id keeps its first occurrence.
func BuildTweets(raw []importer.RawTweet, username string) ([]model.Tweet, error) {
	seen := make(map[string]struct{}, len(raw))
	tweets := make([]model.Tweet, 0, len(raw))
	for _, r := range raw {
		if _, dup := seen[r.ID]; dup {
			zap.S().Warnf("tweet %s appears more than once in the export, keeping the first", r.ID)
			continue
		}
		seen[r.ID] = struct{}{}

		created, err := time.Parse(TwitterTimeLayout, r.CreatedAt)
		if err != nil {
			return nil, errors.Wrapf(err, "tweet %s: created_at", r.ID)
		}
		tweets = append(tweets, model.NewTweet(r.ID, created, r.Text, importer.NormalizeHashtags(r.Hashtags), username))
	}
	sort.SliceStable(tweets, func(i, j int) bool {
		return tweets[i].CreatedAt.After(tweets[j].CreatedAt)
	})
	return tweets, nil
}
