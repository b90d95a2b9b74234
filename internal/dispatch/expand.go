package dispatch

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrMissingArgument is wrapped by every *MissingArgumentError.
var ErrMissingArgument = errors.New("missing argument")

// MissingArgumentError reports a {{name}} placeholder with no value.
type MissingArgumentError struct {
	Name    string
	Command string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing argument %q in command %q", e.Name, e.Command)
}

func (e *MissingArgumentError) Unwrap() error {
	return ErrMissingArgument
}

var placeholderRe = regexp.MustCompile(`\{\{workspace\}\}|\{\{src\}\}|\{\{(.+?)\}\}`)

// Expand substitutes {{workspace}}, {{src}} and {{name}} placeholders in
// command. Named placeholders take their value from args; the first one
// without a value is reported as a *MissingArgumentError. Substitution is
// textual, values are not quoted.
func Expand(command string, env *Environment, args map[string]string) (string, error) {
	var b strings.Builder
	last := 0
	for _, m := range placeholderRe.FindAllStringSubmatchIndex(command, -1) {
		b.WriteString(command[last:m[0]])
		last = m[1]

		switch token := command[m[0]:m[1]]; token {
		case "{{workspace}}":
			b.WriteString(pathValue(env.Workspace))
		case "{{src}}":
			b.WriteString(pathValue(env.Src))
		default:
			name := command[m[2]:m[3]]
			v, ok := args[name]
			if !ok {
				return "", &MissingArgumentError{Name: name, Command: command}
			}
			b.WriteString(v)
		}
	}
	b.WriteString(command[last:])
	return b.String(), nil
}

// pathValue drops paths that cannot be represented as text.
func pathValue(p string) string {
	if !utf8.ValidString(p) {
		return ""
	}
	return p
}
