package ux

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const defaultWidth = 80

// RenderMarkdown renders markdown for terminal display. When stdout is not a
// terminal the source is returned unchanged.
func RenderMarkdown(content string) (string, error) {
	if !IsTerminal() {
		return content, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(defaultWidth),
	)
	if err != nil {
		return "", err
	}
	rendered, err := r.Render(content)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(rendered, "\n") + "\n", nil
}
