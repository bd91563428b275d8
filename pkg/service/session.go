package service

import (
	"fmt"
	"io"

	"my-tweet-reviewer/pkg/browser"
	"my-tweet-reviewer/pkg/prompt"
	"my-tweet-reviewer/pkg/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Outcome tells the operator how a workflow ended.
type Outcome string

const (
	// OutcomeNothingToDo: the loop ran out of tweets without a single decision.
	OutcomeNothingToDo Outcome = "nothing-to-do"
	// OutcomeQuit: the operator stopped the loop.
	OutcomeQuit Outcome = "quit"
	// OutcomeCompleted: every eligible tweet was handled.
	OutcomeCompleted Outcome = "completed"
	// OutcomeCancelled: the operator declined a reset.
	OutcomeCancelled Outcome = "cancelled"
)

// Result summarises one workflow run.
type Result struct {
	Outcome Outcome
	// Decisions counts keep/delete decisions for a review and opened tweets for
	// a deletion run.
	Decisions int
	Removed   int
	Saved     bool
}

// Session runs the review, deletion and reset workflows over one store. The
// store is owned by the session for its lifetime.
type Session struct {
	store    *store.Store
	prompter prompt.Prompter
	launcher browser.Launcher
	out      io.Writer
}

func NewSession(s *store.Store, p prompt.Prompter, l browser.Launcher, out io.Writer) *Session {
	return &Session{
		store:    s,
		prompter: p,
		launcher: l,
		out:      out,
	}
}

func (s *Session) Store() *store.Store {
	return s.store
}

func (s *Session) logger(workflow string) *zap.SugaredLogger {
	return zap.S().With("workflow", workflow, "run", uuid.NewString(), "file", s.store.Path())
}

// saveWithConfirmation is the single place workflows persist through. It asks
// before replacing the review file.
func (s *Session) saveWithConfirmation() (bool, error) {
	answer, err := s.prompter.Ask(prompt.OverwriteSave)
	if err != nil {
		return false, err
	}
	if answer != prompt.Yes {
		fmt.Fprintln(s.out, "File not saved.")
		return false, nil
	}

	path := s.store.Path()
	exists, err := store.Exists(path)
	if err != nil {
		return false, err
	}
	if exists {
		fmt.Fprintf(s.out, "Overwriting %s.\n", path)
	} else {
		fmt.Fprintf(s.out, "Saving to %s.\n", path)
	}
	if err := s.store.Save(); err != nil {
		return false, err
	}
	return true, nil
}

// finish prints how the loop ended and saves when something changed.
func (s *Session) finish(res Result, quit bool, noun string) (Result, error) {
	switch {
	case quit:
		res.Outcome = OutcomeQuit
		fmt.Fprintf(s.out, "\nExiting %s process.\n", noun)
	case res.Decisions > 0:
		res.Outcome = OutcomeCompleted
		fmt.Fprintf(s.out, "\nNo tweets left to %s.\n", noun)
	default:
		res.Outcome = OutcomeNothingToDo
		fmt.Fprintf(s.out, "\nNo tweets to %s.\n", noun)
	}
	if res.Decisions == 0 {
		return res, nil
	}
	saved, err := s.saveWithConfirmation()
	res.Saved = saved
	return res, err
}
