package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

var _ IConfig = (*ReviewerConfig)(nil)

type ReviewerConfig struct {
	Username         string   `json:"username" yaml:"username"`                 // Twitter handle, leading @ optional
	ExcludedHashtags []string `json:"excludedHashtags" yaml:"excludedHashtags"` // tweets carrying these are never reviewed
	SavedFilename    string   `json:"savedFilename" yaml:"savedFilename"`       // review progress file
	ExportPath       string   `json:"exportPath" yaml:"exportPath"`             // tweet.js from the archive
	GUICompatibility bool     `json:"guiCompatibility" yaml:"guiCompatibility"` // ASCII-only text plus tweet_deleted column
}

func (r *ReviewerConfig) Validate() []error {
	var errs = make([]error, 0)
	if strings.TrimLeft(strings.TrimSpace(r.Username), "@") == "" {
		errs = append(errs, errors.Errorf("username must not be empty"))
	}
	if r.SavedFilename == "" {
		errs = append(errs, errors.Errorf("savedFilename must not be empty"))
	}
	if r.ExportPath == "" {
		errs = append(errs, errors.Errorf("exportPath must not be empty"))
	}
	return errs
}

// SetExcludedHashtags accepts a list or a comma separated string, as they
// arrive from flags, files and environment variables alike.
func (r *ReviewerConfig) SetExcludedHashtags(v interface{}) error {
	var raw []string
	if s, ok := v.(string); ok {
		raw = strings.Split(s, ",")
	} else {
		list, err := cast.ToStringSliceE(v)
		if err != nil {
			return errors.Wrap(err, "excludedHashtags")
		}
		raw = list
	}
	r.ExcludedHashtags = normalizeHashtags(raw)
	return nil
}

func normalizeHashtags(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, h := range raw {
		h = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(h), "#"))
		if h == "" {
			continue
		}
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}
	return out
}

func NewDefaultReviewerConfig() *ReviewerConfig {
	return &ReviewerConfig{
		ExcludedHashtags: []string{},
		SavedFilename:    "my_tweet_review.csv",
		ExportPath:       "tweet.js",
	}
}
