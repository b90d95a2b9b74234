package ux

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompt asks for a numbered choice on a line-oriented input.
type Prompt struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

// NewPrompt returns a Prompt reading from in and writing to out.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{In: in, Out: out}
}

// Select lists options numbered from 1 and returns the zero-based index of
// the chosen one. An empty answer picks the first option.
func (p *Prompt) Select(prompt string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("nothing to select")
	}
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}

	fmt.Fprintf(p.Out, "%s %s\n", cyan("?"), bold(prompt))
	for i, o := range options {
		marker := "  "
		if i == 0 {
			marker = cyan("> ")
		}
		fmt.Fprintf(p.Out, "  %s%d) %s\n", marker, i+1, o)
	}
	fmt.Fprintf(p.Out, "  %s ", dim(fmt.Sprintf("[1-%d, enter for 1]:", len(options))))

	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return 0, fmt.Errorf("no selection made")
		}
		return 0, err
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(options) {
		return 0, fmt.Errorf("invalid selection %q: enter a number from 1 to %d", answer, len(options))
	}
	return n - 1, nil
}
