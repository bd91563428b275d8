package importer

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrExportMissing is returned when the raw archive file does not exist.
var ErrExportMissing = errors.New("raw tweet export not found")

// RawTweet is one item of the archive, before dates are parsed and statuses
// are attached. CreatedAt keeps the platform format,
// e.g. "Wed Apr 24 10:15:02 +0000 2019".
type RawTweet struct {
	CreatedAt string
	ID        string
	Text      string
	Hashtags  []string
}

// Importer produces the raw tweets of an archive.
type Importer interface {
	Import() ([]RawTweet, error)
}

// TweetJSImporter reads the tweet.js file of a Twitter data archive.
type TweetJSImporter struct {
	path      string
	processor *TextProcessor
}

func NewTweetJSImporter(path string, asciiOnly bool) *TweetJSImporter {
	return &TweetJSImporter{
		path:      path,
		processor: NewTextProcessor(asciiOnly),
	}
}

func (i *TweetJSImporter) Import() ([]RawTweet, error) {
	if _, err := os.Stat(i.path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrExportMissing, "%s", i.path)
		}
		return nil, errors.Wrapf(err, "stat %s", i.path)
	}
	data, err := os.ReadFile(i.path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", i.path)
	}
	items, err := decodeTweetJS(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", i.path)
	}

	tweets := make([]RawTweet, 0, len(items))
	for idx, item := range items {
		if item.IDStr == "" {
			zap.S().Warnf("item %d in %s has no id_str, skipping", idx, i.path)
			continue
		}
		raw := RawTweet{
			CreatedAt: item.CreatedAt,
			ID:        item.IDStr,
			Text:      i.processor.ProcessText(item.FullText),
		}
		for _, h := range item.Entities.Hashtags {
			raw.Hashtags = append(raw.Hashtags, h.Text)
		}
		tweets = append(tweets, raw)
	}
	zap.S().Debugf("imported %d tweets from %s", len(tweets), i.path)
	return tweets, nil
}

// decodeTweetJS extracts the JSON array assigned in tweet.js
// ("window.YTD.tweet.part0 = [ ... ]"), i.e. everything between the first '['
// and the last ']'.
func decodeTweetJS(data []byte) ([]tweetItem, error) {
	start := bytes.IndexByte(data, '[')
	end := bytes.LastIndexByte(data, ']')
	if start < 0 || end < start {
		return nil, errors.New("no JSON array found")
	}
	var items []tweetItem
	if err := json.Unmarshal(data[start:end+1], &items); err != nil {
		return nil, err
	}
	return items, nil
}

type tweetItem struct {
	CreatedAt string `json:"created_at"`
	IDStr     string `json:"id_str"`
	FullText  string `json:"full_text"`
	Entities  struct {
		Hashtags []struct {
			Text string `json:"text"`
		} `json:"hashtags"`
	} `json:"entities"`
}

// UnmarshalJSON accepts both the flat item layout of older archives and the
// {"tweet": {...}} wrapper used by newer ones.
func (t *tweetItem) UnmarshalJSON(data []byte) error {
	type plain tweetItem
	var wrapped struct {
		Tweet *json.RawMessage `json:"tweet"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	if wrapped.Tweet != nil {
		data = *wrapped.Tweet
	}
	return json.Unmarshal(data, (*plain)(t))
}
