// Package prompt reads operator answers line by line. Every question repeats until its validator accepts.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrClosed is returned when input ends before a question is answered.
var ErrClosed = errors.New("input closed")

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter over in and out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Printf writes to the prompt output.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Line asks label once and returns the answer without its line ending.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", ErrClosed
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Until repeats label until check accepts the answer. Rejections are printed before asking again.
func (p *Prompter) Until(label string, check func(string) error) (string, error) {
	for {
		answer, err := p.Line(label)
		if err != nil {
			return "", err
		}
		if err := check(answer); err != nil {
			fmt.Fprintf(p.out, "%v\n", err)
			continue
		}
		return answer, nil
	}
}

// Choose lists options numbered from 1 and returns the zero-based index picked.
func (p *Prompter) Choose(label string, options []string) (int, error) {
	fmt.Fprintln(p.out, label)
	for i, o := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, o)
	}
	var picked int
	_, err := p.Until("> ", func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < 1 || n > len(options) {
			return fmt.Errorf("invalid choice, enter a number from 1 to %d", len(options))
		}
		picked = n - 1
		return nil
	})
	return picked, err
}
