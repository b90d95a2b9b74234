package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

// NameRule describes the names slug.IsSlug accepts for templates and
// commands.
const NameRule = "lowercase letters, digits, dashes and underscores, not starting or ending with a dash or underscore"

var argNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// reservedArgs are flags every generated command already defines.
var reservedArgs = map[string]bool{
	"output":    true,
	"fail-fast": true,
	"help":      true,
	"o":         true,
}

// reservedCommands are the tau subcommands a template command would be
// hidden behind. "run" is absent: `tau run` alone runs the template's run.
var reservedCommands = map[string]bool{
	"new":      true,
	"path":     true,
	"list":     true,
	"exec":     true,
	"doctor":   true,
	"template": true,
	"docs":     true,
	"help":     true,
}

// IsReservedCommand reports whether name is taken by a tau subcommand.
func IsReservedCommand(name string) bool {
	return reservedCommands[strings.ToLower(name)]
}

// builtinPlaceholders cannot be redeclared as arguments.
var builtinPlaceholders = map[string]bool{
	"workspace": true,
	"src":       true,
}

// Validate checks every template in the store and fills defaults.
func Validate(s *Store) error {
	for _, name := range s.Names() {
		if err := validateTemplate(name, s.templates[name]); err != nil {
			return err
		}
	}
	return nil
}

func validateTemplate(name string, t *Template) error {
	if !slug.IsSlug(name) {
		return fmt.Errorf("config: template %q: name must be %s", name, NameRule)
	}

	for _, f := range t.OptionalFiles {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("config: template %q: 'optional-files' entries must be non-empty", name)
		}
		if filepath.IsAbs(f) {
			return fmt.Errorf("config: template %q: optional file %q must be relative to the template root", name, f)
		}
	}

	for _, cmdName := range t.CommandNames() {
		c := t.Commands[cmdName]
		if !slug.IsSlug(cmdName) {
			return fmt.Errorf("config: template %q: command %q: name must be %s", name, cmdName, NameRule)
		}
		if reservedCommands[cmdName] {
			return fmt.Errorf("config: template %q: command %q clashes with the built-in 'tau %s'", name, cmdName, cmdName)
		}
		if c == nil || len(c.Tasks) == 0 {
			return fmt.Errorf("config: template %q: command %q: at least one task is required", name, cmdName)
		}
		if err := validateArgs(name, cmdName, c.Args); err != nil {
			return err
		}
		for i := range c.Tasks {
			task := &c.Tasks[i]
			if task.Name == "" {
				return fmt.Errorf("config: template %q: command %q: task %d: 'name' is required", name, cmdName, i+1)
			}
			if strings.TrimSpace(task.Command) == "" {
				return fmt.Errorf("config: template %q: command %q: task %q: 'command' is required", name, cmdName, task.Name)
			}
			if task.Output == "" {
				task.Output = OutputNone
			}
			if !task.Output.Valid() {
				return fmt.Errorf("config: template %q: command %q: task %q: unknown output %q (must be none, optional, or required)", name, cmdName, task.Name, task.Output)
			}
		}
	}

	for _, r := range t.Routes.Paths() {
		if !filepath.IsAbs(r) {
			return fmt.Errorf("config: template %q: route %q is not absolute", name, r)
		}
	}
	return nil
}

func validateArgs(tplName, cmdName string, args []Arg) error {
	seen := make(map[string]bool, len(args))
	for _, a := range args {
		if a.Name == "" {
			return fmt.Errorf("config: template %q: command %q: empty argument name", tplName, cmdName)
		}
		if !argNameRe.MatchString(a.Name) {
			return fmt.Errorf("config: template %q: command %q: %q is not a valid argument name", tplName, cmdName, a.Name)
		}
		if reservedArgs[a.Name] {
			return fmt.Errorf("config: template %q: command %q: argument %q clashes with a built-in flag", tplName, cmdName, a.Name)
		}
		if builtinPlaceholders[a.Name] {
			return fmt.Errorf("config: template %q: command %q: argument %q overrides a built-in placeholder", tplName, cmdName, a.Name)
		}
		if seen[a.Name] {
			return fmt.Errorf("config: template %q: command %q: duplicate argument %q", tplName, cmdName, a.Name)
		}
		seen[a.Name] = true
	}
	return nil
}
