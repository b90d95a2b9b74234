// Package config holds the route configuration store: every known template,
// its commands, and the project directories confirmed to be built from it.
package config

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Output controls when a task's captured stdout is shown.
type Output string

const (
	OutputNone     Output = "none"
	OutputOptional Output = "optional"
	OutputRequired Output = "required"
)

// Valid reports whether o is one of the known output modes.
func (o Output) Valid() bool {
	switch o {
	case OutputNone, OutputOptional, OutputRequired:
		return true
	}
	return false
}

// UnmarshalYAML accepts output modes case-insensitively.
func (o *Output) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*o = Output(strings.ToLower(strings.TrimSpace(s)))
	return nil
}

// Arg is a named argument a command requires from the caller.
type Arg struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// Task is one process invocation inside a command.
type Task struct {
	Name    string `yaml:"name"`
	Command string `yaml:"command"`
	Output  Output `yaml:"output"`
}

// Command is an ordered pipeline of tasks exposed as a tau subcommand.
type Command struct {
	Description string `yaml:"description,omitempty"`
	Args        []Arg  `yaml:"args,omitempty"`
	Tasks       []Task `yaml:"tasks"`
}

// Template is one project skeleton together with its commands and the
// project directories known to follow it.
type Template struct {
	Description   string              `yaml:"description,omitempty"`
	OptionalFiles []string            `yaml:"optional-files,omitempty"`
	Commands      map[string]*Command `yaml:"commands,omitempty"`
	Routes        RouteSet            `yaml:"routes"`
}

// Command returns the named command. Names are matched case-insensitively.
func (t *Template) Command(name string) (*Command, bool) {
	c, ok := t.Commands[strings.ToLower(name)]
	return c, ok
}

// CommandNames returns the command names in sorted order.
func (t *Template) CommandNames() []string {
	return sortedKeys(t.Commands)
}
