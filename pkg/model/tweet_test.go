package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusURL(t *testing.T) {
	assert.Equal(t, "https://twitter.com/someone/status/42", StatusURL("@someone", "42"))
	assert.Equal(t, "https://twitter.com/someone/status/42", StatusURL(" someone ", "42"))
}

func TestNewTweetDefaults(t *testing.T) {
	tw := NewTweet("42", time.Unix(0, 0), "hi", []string{"go"}, "@me")
	assert.Equal(t, ReviewNone, tw.ReviewStatus)
	assert.Equal(t, No, tw.URLVisited)
	assert.Equal(t, No, tw.Deleted)
	assert.True(t, AwaitingReview(tw))
	assert.False(t, AwaitingDeletion(tw))

	tw.ReviewStatus = ReviewDelete
	assert.True(t, AwaitingDeletion(tw))
	tw.URLVisited = Yes
	assert.False(t, AwaitingDeletion(tw))
}

func TestHasHashtag(t *testing.T) {
	tw := Tweet{Hashtags: []string{"golang", "tips"}}
	assert.True(t, tw.HasHashtag("GoLang"))
	assert.False(t, tw.HasHashtag("go"))
}

func TestValid(t *testing.T) {
	assert.True(t, ReviewKeep.Valid())
	assert.False(t, ReviewStatus("maybe").Valid())
	assert.True(t, Yes.Valid())
	assert.False(t, YesNo("").Valid())
}
