package prompter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrInvalidSelection is returned when PromptSelect gets an out of range
// or non-numeric answer.
var ErrInvalidSelection = errors.New("invalid selection")

// Prompter reads answers from in and writes prompts to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

// New returns a prompter over arbitrary streams. Passwords are read as
// plain lines since in is not a terminal.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, fd: -1}
}

var std = &Prompter{in: bufio.NewReader(os.Stdin), out: os.Stdout, fd: int(os.Stdin.Fd())}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// String prompts for a line of input, trimmed.
func (p *Prompter) String(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.readLine()
	return strings.TrimSpace(line), err
}

// StringDefault prompts for a line and returns def when it is blank.
func (p *Prompter) StringDefault(label, def string) (string, error) {
	if def != "" {
		label = fmt.Sprintf("%s[%s] ", label, def)
	}
	s, err := p.String(label)
	if err != nil {
		return "", err
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}

// Password prompts without echo when reading from a terminal.
func (p *Prompter) Password(label string) (string, error) {
	fmt.Fprint(p.out, label)

	if p.fd >= 0 && term.IsTerminal(p.fd) {
		pw, err := term.ReadPassword(p.fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}
	return p.readLine()
}

// Confirm asks a yes/no question. Anything but y/yes is no.
func (p *Prompter) Confirm(label string) (bool, error) {
	fmt.Fprint(p.out, label+" (y/n) ")
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// Select lists options and returns the zero-based index picked.
func (p *Prompter) Select(label string, options []string) (int, error) {
	fmt.Fprintln(p.out, label)
	for i, opt := range options {
		fmt.Fprintf(p.out, "%d) %s\n", i+1, opt)
	}
	fmt.Fprint(p.out, "Select option: ")

	line, err := p.readLine()
	if err != nil {
		return -1, err
	}

	var selection int
	if _, err := fmt.Sscanf(strings.TrimSpace(line), "%d", &selection); err != nil {
		return -1, ErrInvalidSelection
	}
	if selection < 1 || selection > len(options) {
		return -1, ErrInvalidSelection
	}
	return selection - 1, nil
}

// Package-level helpers on stdin/stdout.

func PromptString(label string) (string, error) { return std.String(label) }

func PromptStringDefault(label, def string) (string, error) { return std.StringDefault(label, def) }

func PromptPassword(label string) (string, error) { return std.Password(label) }

func PromptConfirm(label string) (bool, error) { return std.Confirm(label) }

func PromptSelect(label string, options []string) (int, error) { return std.Select(label, options) }

// Std returns the prompter bound to stdin and stdout.
func Std() *Prompter { return std }
