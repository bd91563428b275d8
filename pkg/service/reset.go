package service

import (
	"fmt"

	"my-tweet-reviewer/pkg/prompt"
)

// Reset clears every review decision and browser visit once confirmed and
// saves right away; the confirmation doubles as the save confirmation.
func (s *Session) Reset() (Result, error) {
	log := s.logger("reset")

	answer, err := s.prompter.Ask(prompt.ResetConfirm(s.store.GUICompatibility()))
	if err != nil {
		return Result{}, err
	}
	if answer != prompt.Yes {
		fmt.Fprintln(s.out, "Reset cancelled.")
		return Result{Outcome: OutcomeCancelled}, nil
	}

	s.store.ResetAll()
	fmt.Fprintln(s.out, "Columns have been reset.")
	if err := s.store.Save(); err != nil {
		return Result{Outcome: OutcomeCompleted}, err
	}
	log.Infof("reset %d tweets", s.store.Len())
	return Result{Outcome: OutcomeCompleted, Decisions: s.store.Len(), Saved: true}, nil
}
