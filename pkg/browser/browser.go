package browser

import (
	"io"

	pkgbrowser "github.com/pkg/browser"
	"go.uber.org/zap"
)

func init() {
	// xdg-open and friends chatter on stdout, which is the operator dialogue
	pkgbrowser.Stdout = io.Discard
}

// Launcher opens a URL for the operator. It is fire-and-forget.
type Launcher interface {
	Open(url string)
}

// System opens URLs in the default browser of the host.
type System struct {
	openURL func(url string) error
}

func NewSystem() *System {
	return &System{openURL: pkgbrowser.OpenURL}
}

// Open never fails the workflow; a launcher error is only logged and the
// operator can still open the URL by hand.
func (s *System) Open(url string) {
	if err := s.openURL(url); err != nil {
		zap.S().Warnf("failed to open %s in browser: %v", url, err)
	}
}

// Recorder keeps the URLs it was asked to open instead of launching anything.
type Recorder struct {
	Opened []string
}

func (r *Recorder) Open(url string) {
	r.Opened = append(r.Opened, url)
}
