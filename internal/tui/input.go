package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// InputError reports an answer that could not be parsed. The console shows it
// and asks again.
type InputError struct {
	Input  string
	Expect string
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %q: expected %s", e.Input, e.Expect)
}

func (e *InputError) Unwrap() error { return e.Err }

// ParseInt parses a whole number answer.
func ParseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InputError{Input: s, Expect: "a whole number", Err: err}
	}
	return n, nil
}

// ParseChoice parses a menu answer in [lo, hi].
func ParseChoice(s string, lo, hi int) (int, error) {
	n, err := ParseInt(s)
	if err != nil {
		var ie *InputError
		if errors.As(err, &ie) {
			ie.Expect = fmt.Sprintf("a number from %d to %d", lo, hi)
		}
		return 0, err
	}
	if n < lo || n > hi {
		return 0, &InputError{Input: strings.TrimSpace(s), Expect: fmt.Sprintf("a number from %d to %d", lo, hi)}
	}
	return n, nil
}

// prompter writes a question and reads one line as the answer.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask returns the answer without its line terminator. io.EOF is returned
// only when the input ends before any character was read.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, PromptStyle.Render(question)+" ")
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// askInt repeats question until the answer parses with parse.
func (p *prompter) askInt(question string, parse func(string) (int, error)) (int, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		n, err := parse(answer)
		var ie *InputError
		if errors.As(err, &ie) {
			fmt.Fprintln(p.out, ErrorStyle.Render(ie.Error()))
			continue
		}
		return n, err
	}
}
