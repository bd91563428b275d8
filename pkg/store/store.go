package store

import (
	"bytes"
	"os"

	"my-tweet-reviewer/pkg/model"

	"github.com/google/renameio/v2/maybe"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrNotFound        = errors.New("tweet not found")
	ErrDuplicateID     = errors.New("duplicate tweet id")
	ErrAlreadyReviewed = errors.New("tweet already reviewed")
)

// Store owns the tweets of one review file. All status changes go through its
// mutation methods; callers only ever receive copies.
type Store struct {
	path string
	// gui controls whether the tweet_deleted column is written
	gui    bool
	tweets []model.Tweet
	index  map[string]int
}

// New builds a store over tweets, keeping their order. Tweet ids must be
// unique.
func New(path string, tweets []model.Tweet, guiCompatibility bool) (*Store, error) {
	s := &Store{
		path:   path,
		gui:    guiCompatibility,
		tweets: make([]model.Tweet, 0, len(tweets)),
	}
	for _, t := range tweets {
		s.tweets = append(s.tweets, t.Clone())
	}
	if err := s.reindex(); err != nil {
		return nil, err
	}
	return s, nil
}

// Exists reports whether a review file is present at path.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, "stat %s", path)
}

// Load reads a review file verbatim. Whether the file carries tweet_deleted is
// decided by its header, not by configuration.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	tweets, gui, err := decodeCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return New(path, tweets, gui)
}

func (s *Store) reindex() error {
	s.index = make(map[string]int, len(s.tweets))
	for i, t := range s.tweets {
		if _, ok := s.index[t.ID]; ok {
			return errors.Wrapf(ErrDuplicateID, "%s", t.ID)
		}
		s.index[t.ID] = i
	}
	return nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) GUICompatibility() bool {
	return s.gui
}

func (s *Store) Len() int {
	return len(s.tweets)
}

// Tweets returns a copy of all tweets in stored order.
func (s *Store) Tweets() []model.Tweet {
	out := make([]model.Tweet, len(s.tweets))
	for i, t := range s.tweets {
		out[i] = t.Clone()
	}
	return out
}

func (s *Store) Get(id string) (model.Tweet, bool) {
	i, ok := s.index[id]
	if !ok {
		return model.Tweet{}, false
	}
	return s.tweets[i].Clone(), true
}

// IDs returns the ids of the tweets matching pred, in stored order.
func (s *Store) IDs(pred func(model.Tweet) bool) []string {
	var ids []string
	for _, t := range s.tweets {
		if pred == nil || pred(t) {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

func (s *Store) CountBy(pred func(model.Tweet) bool) int {
	n := 0
	for _, t := range s.tweets {
		if pred(t) {
			n++
		}
	}
	return n
}

// MarkReviewed records a keep/delete decision. Only tweets still awaiting
// review can be marked.
func (s *Store) MarkReviewed(id string, status model.ReviewStatus) error {
	if status != model.ReviewKeep && status != model.ReviewDelete {
		return errors.Errorf("invalid review decision %q", status)
	}
	i, ok := s.index[id]
	if !ok {
		return errors.Wrapf(ErrNotFound, "%s", id)
	}
	if s.tweets[i].ReviewStatus != model.ReviewNone {
		return errors.Wrapf(ErrAlreadyReviewed, "%s is %s", id, s.tweets[i].ReviewStatus)
	}
	s.tweets[i].ReviewStatus = status
	return nil
}

// MarkVisited records that the tweet has been opened in the browser.
func (s *Store) MarkVisited(id string) error {
	i, ok := s.index[id]
	if !ok {
		return errors.Wrapf(ErrNotFound, "%s", id)
	}
	s.tweets[i].URLVisited = model.Yes
	return nil
}

// Remove drops a tweet from the set for good.
func (s *Store) Remove(id string) error {
	i, ok := s.index[id]
	if !ok {
		return errors.Wrapf(ErrNotFound, "%s", id)
	}
	s.tweets = append(s.tweets[:i], s.tweets[i+1:]...)
	return s.reindex()
}

// ResetAll clears every review decision and browser visit.
func (s *Store) ResetAll() {
	for i := range s.tweets {
		s.tweets[i].ReviewStatus = model.ReviewNone
		s.tweets[i].URLVisited = model.No
		s.tweets[i].Deleted = model.No
	}
}

// Save writes the whole set to the store path, replacing any existing file
// atomically: readers see either the old file or the new one.
func (s *Store) Save() error {
	var buf bytes.Buffer
	if err := encodeCSV(&buf, s.tweets, s.gui); err != nil {
		return errors.Wrapf(err, "encode %s", s.path)
	}
	if err := maybe.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", s.path)
	}
	zap.S().Debugf("saved %d tweets to %s", len(s.tweets), s.path)
	return nil
}
