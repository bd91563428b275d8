package importer

import (
	"html"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"go.uber.org/zap"
)

type TextProcessor struct {
	asciiOnly bool
}

// NewTextProcessor returns a processor for tweet text. With asciiOnly set every
// non-ASCII rune (emoji, accented letters) is dropped so the GUI reviewer can
// render the text.
func NewTextProcessor(asciiOnly bool) *TextProcessor {
	return &TextProcessor{asciiOnly: asciiOnly}
}

// ProcessText decodes the HTML entities the archive escapes (&amp; &lt; &gt;)
// and applies the ASCII filter when enabled.
func (p *TextProcessor) ProcessText(text string) string {
	if text == "" {
		return text
	}
	decoded := html.UnescapeString(text)
	if !p.asciiOnly {
		return decoded
	}
	return stripNonASCII(decoded)
}

// NormalizeHashtag lowercases a hashtag and drops a leading '#'.
func NormalizeHashtag(tag string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tag), "#"))
}

// NormalizeHashtags normalises every tag and drops empty ones. The order of the
// input is kept.
func NormalizeHashtags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if n := NormalizeHashtag(t); n != "" {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

var nonASCII = runes.Remove(runes.Predicate(func(r rune) bool {
	return r > unicode.MaxASCII
}))

func stripNonASCII(text string) string {
	out, _, err := transform.String(nonASCII, text)
	if err != nil {
		zap.S().Debugf("ascii transform failed, filtering rune by rune: %v", err)
		var b strings.Builder
		for _, r := range text {
			if r <= unicode.MaxASCII {
				b.WriteRune(r)
			}
		}
		return b.String()
	}
	return out
}
