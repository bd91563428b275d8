package store

import (
	"encoding/csv"
	"io"
	"sort"
	"strings"
	"time"

	"my-tweet-reviewer/pkg/model"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"golang.org/x/text/transform"
)

const (
	ColCreated      = "tweet_created"
	ColID           = "tweet_id"
	ColText         = "tweet_text"
	ColHashtags     = "tweet_hashtags"
	ColURL          = "tweet_url"
	ColReviewStatus = "tweet_review_status"
	ColURLVisited   = "tweet_url_visited"
	ColDeleted      = "tweet_deleted"

	// legacy files spread hashtags over hashtag_0..hashtag_N
	legacyHashtagPrefix = "hashtag_"

	hashtagSeparator = "|"
)

// timestamp layouts accepted on read; the first one is used on write
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

func header(gui bool) []string {
	h := []string{ColCreated, ColID, ColText, ColHashtags, ColURL, ColReviewStatus, ColURLVisited}
	if gui {
		h = append(h, ColDeleted)
	}
	return h
}

func encodeCSV(w io.Writer, tweets []model.Tweet, gui bool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header(gui)); err != nil {
		return err
	}
	for _, t := range tweets {
		row := []string{
			t.CreatedAt.Format(timeLayouts[0]),
			t.ID,
			t.Text,
			strings.Join(t.Hashtags, hashtagSeparator),
			t.URL,
			string(t.ReviewStatus),
			string(t.URLVisited),
		}
		if gui {
			deleted := t.Deleted
			if deleted == "" {
				deleted = model.No
			}
			row = append(row, string(deleted))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type columns struct {
	pos            map[string]int
	legacyHashtags []int
}

func (c columns) get(row []string, name string) string {
	i, ok := c.pos[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func parseHeader(h []string) (columns, error) {
	c := columns{pos: make(map[string]int, len(h))}
	type legacyCol struct{ n, pos int }
	var legacy []legacyCol
	for i, name := range h {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		c.pos[name] = i
		if strings.HasPrefix(name, legacyHashtagPrefix) {
			n, err := cast.ToIntE(strings.TrimPrefix(name, legacyHashtagPrefix))
			if err != nil {
				return c, errors.Errorf("unexpected column %q", name)
			}
			legacy = append(legacy, legacyCol{n: n, pos: i})
		}
	}
	for _, required := range []string{ColCreated, ColID, ColText, ColReviewStatus, ColURLVisited} {
		if _, ok := c.pos[required]; !ok {
			return c, errors.Errorf("missing column %q", required)
		}
	}
	sort.Slice(legacy, func(i, j int) bool { return legacy[i].n < legacy[j].n })
	for _, l := range legacy {
		c.legacyHashtags = append(c.legacyHashtags, l.pos)
	}
	return c, nil
}

// decodeCSV reads a review file and reports whether it carries the
// tweet_deleted column.
func decodeCSV(r io.Reader) ([]model.Tweet, bool, error) {
	cr := csv.NewReader(transform.NewReader(r, &quotedCRLF{}))
	cr.FieldsPerRecord = -1
	h, err := cr.Read()
	if err == io.EOF {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	cols, err := parseHeader(h)
	if err != nil {
		return nil, false, err
	}
	_, gui := cols.pos[ColDeleted]

	var tweets []model.Tweet
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, false, err
		}
		t, err := decodeRow(cols, row, gui)
		if err != nil {
			return nil, false, errors.Wrapf(err, "line %d", line)
		}
		tweets = append(tweets, t)
	}
	return tweets, gui, nil
}

func decodeRow(cols columns, row []string, gui bool) (model.Tweet, error) {
	t := model.Tweet{
		ID:           cols.get(row, ColID),
		Text:         cols.get(row, ColText),
		URL:          cols.get(row, ColURL),
		ReviewStatus: model.ReviewStatus(cols.get(row, ColReviewStatus)),
		URLVisited:   model.YesNo(cols.get(row, ColURLVisited)),
		Deleted:      model.YesNo(cols.get(row, ColDeleted)),
	}
	if t.ID == "" {
		return t, errors.New("empty tweet_id")
	}

	created, err := parseTime(cols.get(row, ColCreated))
	if err != nil {
		return t, err
	}
	t.CreatedAt = created

	if _, ok := cols.pos[ColHashtags]; ok {
		for _, h := range strings.Split(cols.get(row, ColHashtags), hashtagSeparator) {
			if h != "" {
				t.Hashtags = append(t.Hashtags, h)
			}
		}
	} else {
		for _, i := range cols.legacyHashtags {
			if i < len(row) && row[i] != "" {
				t.Hashtags = append(t.Hashtags, row[i])
			}
		}
	}

	if t.ReviewStatus == "" {
		t.ReviewStatus = model.ReviewNone
	}
	if !t.ReviewStatus.Valid() {
		return t, errors.Errorf("invalid %s %q", ColReviewStatus, t.ReviewStatus)
	}
	if t.URLVisited == "" {
		t.URLVisited = model.No
	}
	if !t.URLVisited.Valid() {
		return t, errors.Errorf("invalid %s %q", ColURLVisited, t.URLVisited)
	}
	if t.Deleted == "" {
		t.Deleted = model.No
	}
	if gui && !t.Deleted.Valid() {
		return t, errors.Errorf("invalid %s %q", ColDeleted, t.Deleted)
	}
	return t, nil
}

// quotedCRLF doubles the \r of every \r\n inside a quoted field. csv.Reader
// turns each \r\n line ending into \n, quoted or not, so the extra \r is what
// survives and tweet text keeps its original line breaks. Record terminators
// are left alone.
type quotedCRLF struct {
	inQuotes bool
}

func (q *quotedCRLF) Reset() {
	q.inQuotes = false
}

func (q *quotedCRLF) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		width := 1
		if c == '\r' && q.inQuotes {
			if nSrc+1 == len(src) && !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nSrc+1 < len(src) && src[nSrc+1] == '\n' {
				width = 2
			}
		}
		if nDst+width > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = c
		if width == 2 {
			dst[nDst+1] = '\r'
		}
		nDst += width
		if c == '"' {
			q.inQuotes = !q.inQuotes
		}
		nSrc++
	}
	return nDst, nSrc, nil
}

func parseTime(v string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("unrecognised %s %q", ColCreated, v)
}
