package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jorge-barreto/tau/internal/config"
)

// Context binds a project directory to the template it was built from.
type Context struct {
	TemplateName string
	Template     *config.Template
	Workspace    string
	Src          string
}

func newContext(name string, t *config.Template, workspace string) *Context {
	return &Context{
		TemplateName: name,
		Template:     t,
		Workspace:    workspace,
		Src:          filepath.Join(workspace, "src"),
	}
}

// Command looks up a command of the context's template. Unknown names wrap
// ErrCommandNotFound and suggest the closest known command.
func (c *Context) Command(name string) (*config.Command, error) {
	if cmd, ok := c.Template.Command(name); ok {
		return cmd, nil
	}
	if hint := suggest(strings.ToLower(name), c.Template.CommandNames()); hint != "" {
		return nil, fmt.Errorf("%w: %q (did you mean %q?)", ErrCommandNotFound, name, hint)
	}
	return nil, fmt.Errorf("%w: %q", ErrCommandNotFound, name)
}

// suggest returns the candidate closest to name, or "" when nothing is close
// enough to be a likely typo.
func suggest(name string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(name, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > maxTypoDistance(name) {
		return ""
	}
	return best
}

func maxTypoDistance(name string) int {
	if n := len(name) / 3; n > 2 {
		return n
	}
	return 2
}
