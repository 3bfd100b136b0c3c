// Package prompt is the plain line-input layer shared by the setup
// wizard and the interactive forms. bubbletea handles the menu; field
// entry stays on line input so answers can be piped.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads answers line by line from a single buffered reader.
type Prompter struct {
	r   *bufio.Reader
	out io.Writer
}

// New wraps in/out for a sequence of prompts.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(in), out: out}
}

// Ask prompts with a default and returns the trimmed answer, or the
// default when the answer is empty.
func (p *Prompter) Ask(label, def string) string {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}
	line, err := p.r.ReadString('\n')
	if err != nil && line == "" {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(label string, def bool) bool {
	hint := "Y/n"
	if !def {
		hint = "y/N"
	}
	fmt.Fprintf(p.out, "%s [%s]: ", label, hint)
	line, err := p.r.ReadString('\n')
	if err != nil && line == "" {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return def
	}
}
