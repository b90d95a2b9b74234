// Package dispatch expands task command lines and runs them as processes.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/jorge-barreto/tau/internal/config"
)

// Environment holds the execution context shared by every task of one
// command run.
type Environment struct {
	Workspace string
	Src       string
	Template  string
	// DotEnv holds the variables read from the workspace .env file.
	DotEnv  map[string]string
	baseEnv []string // lazily populated snapshot of os.Environ
}

// NewEnvironment builds the environment for a project rooted at workspace,
// merging its .env file when one exists.
func NewEnvironment(template, workspace, src string) (*Environment, error) {
	dotenv, err := LoadDotEnv(workspace)
	if err != nil {
		return nil, err
	}
	return &Environment{
		Workspace: workspace,
		Src:       src,
		Template:  template,
		DotEnv:    dotenv,
	}, nil
}

// LoadDotEnv reads <workspace>/.env. A missing file yields an empty map.
func LoadDotEnv(workspace string) (map[string]string, error) {
	path := filepath.Join(workspace, ".env")
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return vars, nil
}

// Vars returns the variables tau adds to every task environment. .env
// values are included first; the TAU_ built-ins always win.
func (e *Environment) Vars() map[string]string {
	m := make(map[string]string, 3+len(e.DotEnv))
	for k, v := range e.DotEnv {
		m[k] = v
	}
	m["TAU_WORKSPACE"] = e.Workspace
	m["TAU_SRC"] = e.Src
	m["TAU_TEMPLATE"] = e.Template
	return m
}

// Lookup resolves $NAME references while splitting a command line: tau's
// own variables first, then the process environment.
func (e *Environment) Lookup(name string) string {
	if v, ok := e.Vars()[name]; ok {
		return v
	}
	return os.Getenv(name)
}

// BuildEnv returns the environment for child processes: the current
// environment plus Vars, in a stable order.
func BuildEnv(env *Environment) []string {
	if env.baseEnv == nil {
		env.baseEnv = os.Environ()
	}
	vars := env.Vars()
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]string, 0, len(env.baseEnv)+len(keys))
	for _, kv := range env.baseEnv {
		if _, shadowed := vars[strings.SplitN(kv, "=", 2)[0]]; shadowed {
			continue
		}
		result = append(result, kv)
	}
	for _, k := range keys {
		result = append(result, k+"="+vars[k])
	}
	return result
}

// Result holds the outcome of one task.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Elapsed  time.Duration
	// Skipped is set when the expanded command line held no words.
	Skipped bool
}

// Dispatcher runs an expanded task command line. Tests can substitute a mock.
type Dispatcher interface {
	Dispatch(ctx context.Context, task config.Task, line string, env *Environment) (*Result, error)
}

// DefaultDispatcher runs tasks as real processes.
type DefaultDispatcher struct{}

func (d *DefaultDispatcher) Dispatch(ctx context.Context, task config.Task, line string, env *Environment) (*Result, error) {
	return RunTask(ctx, line, env)
}

// Preflight checks that every program the lines name can be found.
func (d *DefaultDispatcher) Preflight(lines []string, env *Environment) error {
	return Preflight(lines, env)
}
