package browser

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSystem_OpenLogsFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	var got []string
	s := &System{openURL: func(url string) error {
		got = append(got, url)
		return errors.New("no browser")
	}}
	assert.NotPanics(t, func() { s.Open("https://twitter.com/me/status/1") })

	assert.Equal(t, []string{"https://twitter.com/me/status/1"}, got)
	if assert.Equal(t, 1, logs.Len()) {
		assert.Contains(t, logs.All()[0].Message, "no browser")
	}
}

func TestSystem_OpenSuccessIsQuiet(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	s := &System{openURL: func(string) error { return nil }}
	s.Open("https://twitter.com/me/status/2")
	assert.Zero(t, logs.Len())
}

func TestNewSystem_UsesDefaultBrowser(t *testing.T) {
	assert.NotNil(t, NewSystem().openURL)
}

func TestRecorder(t *testing.T) {
	var r Recorder
	var l Launcher = &r
	l.Open("a")
	l.Open("b")
	assert.Equal(t, []string{"a", "b"}, r.Opened)
}
