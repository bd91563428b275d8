package model

import (
	"strings"
	"time"
)

// ReviewStatus backs the tweet_review_status column.
type ReviewStatus string

const (
	ReviewNone   ReviewStatus = "none"
	ReviewKeep   ReviewStatus = "keep"
	ReviewDelete ReviewStatus = "delete"
)

// Valid reports whether s is one of the known review states.
func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewNone, ReviewKeep, ReviewDelete:
		return true
	}
	return false
}

// YesNo backs the tweet_url_visited and tweet_deleted columns.
type YesNo string

const (
	No  YesNo = "no"
	Yes YesNo = "yes"
)

func (v YesNo) Valid() bool {
	return v == No || v == Yes
}

// Tweet is one row of the review file.
type Tweet struct {
	CreatedAt    time.Time    `json:"tweet_created"`
	ID           string       `json:"tweet_id"`
	Text         string       `json:"tweet_text"`
	Hashtags     []string     `json:"tweet_hashtags"`
	URL          string       `json:"tweet_url"`
	ReviewStatus ReviewStatus `json:"tweet_review_status"`
	URLVisited   YesNo        `json:"tweet_url_visited"`
	// Deleted is only persisted in GUI compatibility mode. It belongs to the GUI
	// reviewer and is only ever reset here.
	Deleted YesNo `json:"tweet_deleted,omitempty"`
}

// NewTweet returns a tweet with the default status fields attached.
func NewTweet(id string, createdAt time.Time, text string, hashtags []string, username string) Tweet {
	return Tweet{
		CreatedAt:    createdAt,
		ID:           id,
		Text:         text,
		Hashtags:     hashtags,
		URL:          StatusURL(username, id),
		ReviewStatus: ReviewNone,
		URLVisited:   No,
		Deleted:      No,
	}
}

// StatusURL builds the public URL of a tweet.
func StatusURL(username, id string) string {
	return "https://twitter.com/" + strings.TrimLeft(strings.TrimSpace(username), "@") + "/status/" + id
}

// HasHashtag reports whether the tweet carries tag, ignoring case.
func (t Tweet) HasHashtag(tag string) bool {
	for _, h := range t.Hashtags {
		if strings.EqualFold(h, tag) {
			return true
		}
	}
	return false
}

// Clone returns a copy that does not share the hashtag slice.
func (t Tweet) Clone() Tweet {
	c := t
	if t.Hashtags != nil {
		c.Hashtags = append([]string(nil), t.Hashtags...)
	}
	return c
}

// AwaitingReview selects tweets that have not been classified yet.
func AwaitingReview(t Tweet) bool {
	return t.ReviewStatus == ReviewNone
}

// AwaitingDeletion selects tweets marked for deletion that were never opened.
func AwaitingDeletion(t Tweet) bool {
	return t.ReviewStatus == ReviewDelete && t.URLVisited == No
}

func Kept(t Tweet) bool {
	return t.ReviewStatus == ReviewKeep
}

func MarkedForDeletion(t Tweet) bool {
	return t.ReviewStatus == ReviewDelete
}

func Visited(t Tweet) bool {
	return t.URLVisited == Yes
}
