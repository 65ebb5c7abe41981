package prompts

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// LinePrompter reads one answer per line. It works on any reader, so it
// serves piped stdin as well as tests.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Choose(title string, options []string) (int, error) {
	pterm.Fprintln(p.out, pterm.Bold.Sprint(title))
	for i, o := range options {
		pterm.Fprintln(p.out, fmt.Sprintf("%s %s", pterm.Cyan(fmt.Sprintf("%d.", i+1)), o))
	}
	return p.Number("Enter choice:")
}

func (p *LinePrompter) Number(title string) (int, error) {
	answer, err := p.Text(title)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, answer)
	}
	return n, nil
}

func (p *LinePrompter) Text(title string) (string, error) {
	pterm.Fprintln(p.out, title)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
