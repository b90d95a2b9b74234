package dispatch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"mvdan.cc/sh/v3/shell"

	"github.com/jorge-barreto/tau/internal/logging"
)

// ErrInvalidCommand is returned when a command line cannot be split into
// words.
var ErrInvalidCommand = errors.New("invalid command")

// Split breaks line into words using shell quoting rules. $NAME references
// are resolved through env.
func Split(line string, env *Environment) ([]string, error) {
	words, err := shell.Fields(line, env.Lookup)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidCommand, line, err)
	}
	return words, nil
}

// RunTask runs line in the workspace with the task environment and captures
// its output. A non-zero exit is reported in the Result, not as an error.
func RunTask(ctx context.Context, line string, env *Environment) (*Result, error) {
	words, err := Split(line, env)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return &Result{Skipped: true}, nil
	}

	cmd := exec.CommandContext(ctx, words[0], words[1:]...)
	cmd.Dir = env.Workspace
	cmd.Env = BuildEnv(env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.Debug().Str("bin", words[0]).Strs("args", words[1:]).Str("dir", cmd.Dir).Msg("task start")
	start := time.Now()
	code, err := exitStatus(ctx, cmd.Run())
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}
	logging.Debug().Str("bin", words[0]).Int("exit", code).Dur("elapsed", elapsed).Msg("task exit")

	return &Result{
		ExitCode: code,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Elapsed:  elapsed,
	}, nil
}
