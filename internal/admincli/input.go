package admincli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal seams, replaced in tests.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
	stdinFd      = func() int { return int(os.Stdin.Fd()) }
)

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Text prints prompt and reads one trimmed line. A final line without a
// newline is accepted.
func (p *Prompter) Text(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Secret prints prompt and reads a line without echo when stdin is a
// terminal. Piped input is read as plain text.
func (p *Prompter) Secret(prompt string) ([]byte, error) {
	fd := stdinFd()
	if !isTerminal(fd) {
		s, err := p.Text(prompt)
		return []byte(s), err
	}

	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return nil, err
	}
	secret, err := readPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return nil, err
	}
	return secret, nil
}
