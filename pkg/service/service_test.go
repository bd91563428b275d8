package service

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"my-tweet-reviewer/pkg/browser"
	"my-tweet-reviewer/pkg/model"
	"my-tweet-reviewer/pkg/prompt"
	"my-tweet-reviewer/pkg/store"

	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers questions from a fixed script and records what was
// asked.
type scriptedPrompter struct {
	t       *testing.T
	answers []string
	asked   []string
}

func script(t *testing.T, answers ...string) *scriptedPrompter {
	return &scriptedPrompter{t: t, answers: answers}
}

func (p *scriptedPrompter) Ask(q prompt.Question) (string, error) {
	p.asked = append(p.asked, q.Message)
	if len(p.answers) == 0 {
		return "", prompt.ErrNoInput
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptedPrompter) count(q prompt.Question) int {
	n := 0
	for _, m := range p.asked {
		if m == q.Message {
			n++
		}
	}
	return n
}

func (p *scriptedPrompter) exhausted() {
	p.t.Helper()
	require.Empty(p.t, p.answers, "unused scripted answers")
}

func tweet(id string, age time.Duration, hashtags ...string) model.Tweet {
	created := time.Date(2019, 8, 11, 12, 0, 0, 0, time.UTC).Add(-age)
	var tags []string
	if len(hashtags) > 0 {
		tags = hashtags
	}
	return model.NewTweet(id, created, "text of "+id, tags, "@me")
}

func newStore(t *testing.T, tweets ...model.Tweet) *store.Store {
	t.Helper()
	s, err := store.New(filepath.Join(t.TempDir(), "review.csv"), tweets, false)
	require.NoError(t, err)
	return s
}

type harness struct {
	session  *Session
	prompter *scriptedPrompter
	launcher *browser.Recorder
	out      *bytes.Buffer
}

func newHarness(t *testing.T, s *store.Store, answers ...string) *harness {
	h := &harness{
		prompter: script(t, answers...),
		launcher: &browser.Recorder{},
		out:      &bytes.Buffer{},
	}
	h.session = NewSession(s, h.prompter, h.launcher, h.out)
	return h
}

func fileExists(t *testing.T, path string) bool {
	t.Helper()
	ok, err := store.Exists(path)
	require.NoError(t, err)
	return ok
}

func reload(t *testing.T, path string) *store.Store {
	t.Helper()
	s, err := store.Load(path)
	require.NoError(t, err)
	return s
}

func status(t *testing.T, s *store.Store, id string) (model.ReviewStatus, model.YesNo) {
	t.Helper()
	tw, ok := s.Get(id)
	require.True(t, ok, "tweet %s missing", id)
	return tw.ReviewStatus, tw.URLVisited
}
