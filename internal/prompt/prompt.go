// Package prompt asks the user questions one line at a time.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when input ends before a question was answered.
var ErrNoInput = errors.New("prompt: no input")

// Prompter asks a single question and returns the trimmed answer.
type Prompter interface {
	Ask(label string) (string, error)
}

// Line is a Prompter that writes "label: " to w and reads one line from r.
type Line struct {
	r *bufio.Reader
	w io.Writer
}

// NewLine creates a Line prompter.
func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{r: bufio.NewReader(r), w: w}
}

// Ask implements Prompter. A final line without a newline is accepted.
func (l *Line) Ask(label string) (string, error) {
	if _, err := fmt.Fprintf(l.w, "%s: ", label); err != nil {
		return "", err
	}
	line, err := l.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", ErrNoInput
		}
	}
	return strings.TrimSpace(line), nil
}

// AskDefault asks label and returns def when the answer is blank. The
// default is shown in brackets.
func AskDefault(p Prompter, label, def string) (string, error) {
	if def != "" {
		label = fmt.Sprintf("%s [%s]", label, def)
	}
	answer, err := p.Ask(label)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Scripted answers questions from a fixed list, in order. It is meant for
// tests and non-interactive callers.
type Scripted struct {
	Answers []string
	Asked   []string
}

// Ask implements Prompter.
func (s *Scripted) Ask(label string) (string, error) {
	s.Asked = append(s.Asked, label)
	if len(s.Answers) == 0 {
		return "", ErrNoInput
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return strings.TrimSpace(answer), nil
}
