package service

import (
	"strings"

	"my-tweet-reviewer/pkg/importer"
	"my-tweet-reviewer/pkg/model"
)

// FilterByHashtags returns the tweets that carry none of the excluded hashtags.
// Matching ignores case and a leading '#'. The input slice is left untouched;
// the result holds copies.
func FilterByHashtags(tweets []model.Tweet, excluded []string) []model.Tweet {
	blocked := make(map[string]struct{}, len(excluded))
	for _, h := range excluded {
		if h = importer.NormalizeHashtag(h); h != "" {
			blocked[h] = struct{}{}
		}
	}

	out := make([]model.Tweet, 0, len(tweets))
	for _, t := range tweets {
		if len(blocked) > 0 && hasBlockedHashtag(t, blocked) {
			continue
		}
		out = append(out, t.Clone())
	}
	return out
}

func hasBlockedHashtag(t model.Tweet, blocked map[string]struct{}) bool {
	for _, h := range t.Hashtags {
		if _, ok := blocked[strings.ToLower(h)]; ok {
			return true
		}
	}
	return false
}
