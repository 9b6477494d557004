package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// errAborted is returned when the input is closed in the middle of a prompt.
var errAborted = errors.New("input closed")

// prompter asks questions on a line based terminal.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// line reads the next line, without its line ending.
func (p *prompter) line() (string, error) {
	s, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		if err == io.EOF {
			return "", errAborted
		}
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// Ask prints the question and returns the trimmed answer, or def when the answer is empty.
func (p *prompter) Ask(question, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", question, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", question)
	}
	s, err := p.line()
	if err != nil {
		return "", err
	}
	if s = strings.TrimSpace(s); s == "" {
		return def, nil
	}
	return s, nil
}

// AskValid asks until parse accepts the answer.
func (p *prompter) AskValid(question, def string, parse func(string) error) (string, error) {
	for {
		s, err := p.Ask(question, def)
		if err != nil {
			return "", err
		}
		if err := parse(s); err != nil {
			fmt.Fprintf(p.out, "%v\n", err)
			continue
		}
		return s, nil
	}
}

// AskInt asks for an integer in [min, max].
func (p *prompter) AskInt(question string, min, max int) (int, error) {
	var n int
	_, err := p.AskValid(question, "", func(s string) (err error) {
		n, err = strconv.Atoi(s)
		if err != nil || n < min || n > max {
			return fmt.Errorf("Please enter a number between %d and %d", min, max)
		}
		return nil
	})
	return n, err
}

// Confirm asks a yes/no question.
func (p *prompter) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(p.out, "%s (%s): ", question, hint)
		s, err := p.line()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}
