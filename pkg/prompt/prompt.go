package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// ErrNoInput is returned when the input stream ends before a valid answer.
var ErrNoInput = errors.New("no more operator input")

// Answers understood by the fixed questions.
const (
	Keep   = "K"
	Delete = "D"
	Pass   = "P"
	Quit   = "Q"
	Yes    = "Y"
	No     = "N"
)

// Question is a fixed message with a fixed set of single-character answers.
type Question struct {
	Message string
	Options []string
	Invalid string
	// Repeat is shown again before Message after an invalid answer.
	Repeat string
}

// WithRepeat returns a copy of q that re-shows text after an invalid answer.
func (q Question) WithRepeat(text string) Question {
	q.Repeat = text
	return q
}

func (q Question) match(input string) (string, bool) {
	input = strings.ToUpper(strings.TrimSpace(input))
	for _, o := range q.Options {
		if input == strings.ToUpper(o) {
			return o, true
		}
	}
	return "", false
}

// Prompter asks the operator a question and blocks until a valid answer.
type Prompter interface {
	Ask(q Question) (string, error)
}

var (
	ReviewDecision = Question{
		Message: "Keep (K), delete (D) or pass (P). To quit (Q): ",
		Options: []string{Keep, Delete, Pass, Quit},
		Invalid: "\nInvalid review status entered.",
	}
	OpenInBrowser = Question{
		Message: "\nOpen next tweet in browser for deletion? (Y/N): ",
		Options: []string{Yes, No},
		Invalid: "\nInvalid choice.",
	}
	DeletionConfirmed = Question{
		Message: "Has the tweet been deleted? (Y/N): ",
		Options: []string{Yes, No},
		Invalid: "\nInvalid choice.",
	}
	OverwriteSave = Question{
		Message: "\nWould you like to save your progress and quit? This will overwrite any existing save file. (Y/N): ",
		Options: []string{Yes, No},
		Invalid: "\nInvalid choice.",
	}
	MainMenu = Question{
		Message: "\nWhat would you like to do? Review (1), Delete (2), Reset (3) or Quit (4): ",
		Options: []string{"1", "2", "3", "4"},
		Invalid: "\nInvalid choice entered. Please choose from options 1-4.",
	}
)

// ResetConfirm names the columns a reset clears; tweet_deleted only exists in
// GUI compatible files.
func ResetConfirm(guiCompatibility bool) Question {
	msg := "\nReset the tweet_review_status and tweet_url_visited columns in the data? (Y/N): "
	if guiCompatibility {
		msg = "\nReset the tweet_review_status, tweet_url_visited and tweet_deleted columns in the data? (Y/N): "
	}
	return Question{
		Message: msg,
		Options: []string{Yes, No},
		Invalid: "\nInvalid choice.",
	}
}

// Console reads answers line by line.
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	warn *color.Color
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:   bufio.NewReader(in),
		out:  out,
		warn: color.New(color.FgYellow),
	}
}

// Ask re-prompts until the answer is one of q.Options, compared
// case-insensitively. The returned option is as spelled in q.Options.
func (c *Console) Ask(q Question) (string, error) {
	for {
		fmt.Fprint(c.out, q.Message)
		line, err := c.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", errors.Wrap(err, "read answer")
		}
		if answer, ok := q.match(line); ok {
			return answer, nil
		}
		if err == io.EOF {
			fmt.Fprintln(c.out)
			return "", ErrNoInput
		}
		c.warn.Fprintln(c.out, q.Invalid)
		fmt.Fprint(c.out, q.Repeat)
	}
}
