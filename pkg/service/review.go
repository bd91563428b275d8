package service

import (
	"fmt"

	"my-tweet-reviewer/pkg/model"
	"my-tweet-reviewer/pkg/prompt"
)

// Review walks the tweets awaiting review in stored order and records a keep or
// delete decision for each. Passed tweets stay awaiting review for a later run.
// The file is only saved when at least one decision was made.
func (s *Session) Review() (Result, error) {
	log := s.logger("review")
	var res Result

	fmt.Fprintf(s.out, "Awaiting review: %d\n", s.store.CountBy(model.AwaitingReview))

	quit := false
	for _, id := range s.store.IDs(model.AwaitingReview) {
		t, ok := s.store.Get(id)
		if !ok {
			continue
		}
		shown := "\nTweet:\n" + t.Text + "\n"
		fmt.Fprint(s.out, shown)

		answer, err := s.prompter.Ask(prompt.ReviewDecision.WithRepeat(shown))
		if err != nil {
			log.Warnf("review interrupted after %d decisions: %v", res.Decisions, err)
			return res, err
		}

		switch answer {
		case prompt.Keep:
			err = s.store.MarkReviewed(id, model.ReviewKeep)
		case prompt.Delete:
			err = s.store.MarkReviewed(id, model.ReviewDelete)
		case prompt.Pass:
			continue
		case prompt.Quit:
			quit = true
		}
		if err != nil {
			return res, err
		}
		if quit {
			break
		}
		res.Decisions++
		log.Debugf("tweet %s marked %s", id, answer)
	}

	log.Infof("review finished with %d decisions", res.Decisions)
	return s.finish(res, quit, "review")
}
