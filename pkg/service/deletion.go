package service

import (
	"fmt"

	"my-tweet-reviewer/pkg/model"
	"my-tweet-reviewer/pkg/prompt"
)

// Delete offers every tweet marked for deletion that was never opened. An
// opened tweet is flagged as visited straight away, so it is not offered again
// until a reset even when its removal is not confirmed. Confirmed tweets are
// dropped from the set. The file is only saved when something was opened.
func (s *Session) Delete() (Result, error) {
	log := s.logger("delete")
	var res Result

	fmt.Fprintf(s.out, "Awaiting deletion: %d\n", s.store.CountBy(model.AwaitingDeletion))

	quit := false
	for _, id := range s.store.IDs(model.AwaitingDeletion) {
		t, ok := s.store.Get(id)
		if !ok {
			continue
		}

		answer, err := s.prompter.Ask(prompt.OpenInBrowser)
		if err != nil {
			log.Warnf("deletion interrupted after %d opened: %v", res.Decisions, err)
			return res, err
		}
		if answer == prompt.No {
			quit = true
			break
		}

		res.Decisions++
		fmt.Fprintln(s.out, "\nTweet:")
		fmt.Fprintln(s.out, t.Text)
		s.launcher.Open(t.URL)
		if err := s.store.MarkVisited(id); err != nil {
			return res, err
		}

		answer, err = s.prompter.Ask(prompt.DeletionConfirmed)
		if err != nil {
			log.Warnf("deletion interrupted after %d opened: %v", res.Decisions, err)
			return res, err
		}
		if answer == prompt.Yes {
			if err := s.store.Remove(id); err != nil {
				return res, err
			}
			res.Removed++
			fmt.Fprintln(s.out, "Tweet will be removed from CSV.")
			log.Debugf("tweet %s removed", id)
		} else {
			fmt.Fprintln(s.out, "Tweet will not be removed from CSV. It will only be shown again for review/deletion following a reset.")
		}
	}

	log.Infof("deletion finished: %d opened, %d removed", res.Decisions, res.Removed)
	return s.finish(res, quit, "delete")
}
