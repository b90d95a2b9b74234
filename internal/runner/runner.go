// Package runner executes the tasks of a template command in order.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/jorge-barreto/tau/internal/config"
	"github.com/jorge-barreto/tau/internal/dispatch"
	"github.com/jorge-barreto/tau/internal/logging"
	"github.com/jorge-barreto/tau/internal/project"
	"github.com/jorge-barreto/tau/internal/ux"
)

// Runner drives one command of a located project.
type Runner struct {
	Context    *project.Context
	Env        *dispatch.Environment
	Args       map[string]string
	Dispatcher dispatch.Dispatcher
	// ShowOptional prints stdout of tasks whose output is optional.
	ShowOptional bool
	// FailFast stops at the first task that exits non-zero. By default the
	// remaining tasks still run.
	FailFast bool
}

// Summary counts what a run did.
type Summary struct {
	Ran     int
	Failed  int
	Skipped int
	Elapsed time.Duration
}

// Preflighter is implemented by dispatchers that can verify every command
// line before the first one runs.
type Preflighter interface {
	Preflight(lines []string, env *dispatch.Environment) error
}

// Run executes the named command. Every command line is expanded before any
// task starts, so a missing argument aborts the run without side effects.
// A task exiting non-zero is reported and, unless FailFast is set, does not
// stop the tasks after it.
func (r *Runner) Run(ctx context.Context, name string) (*Summary, error) {
	cmd, err := r.Context.Command(name)
	if err != nil {
		return nil, err
	}

	lines := make([]string, len(cmd.Tasks))
	for i, task := range cmd.Tasks {
		line, err := dispatch.Expand(task.Command, r.Env, r.Args)
		if err != nil {
			return nil, fmt.Errorf("task %q: %w", task.Name, err)
		}
		lines[i] = line
	}
	if p, ok := r.Dispatcher.(Preflighter); ok {
		if err := p.Preflight(lines, r.Env); err != nil {
			return nil, err
		}
	}

	sum := &Summary{}
	start := time.Now()
	for i, task := range cmd.Tasks {
		if ctx.Err() != nil {
			return sum, ctx.Err()
		}

		logging.Debug().Str("command", name).Str("task", task.Name).Str("line", lines[i]).Msg("dispatch")
		spinner := ux.NewSpinner(task.Name)
		spinner.Start()
		result, err := r.Dispatcher.Dispatch(ctx, task, lines[i], r.Env)
		spinner.Stop()

		if ctx.Err() != nil {
			return sum, ctx.Err()
		}
		if err != nil {
			return sum, fmt.Errorf("task %q: %w", task.Name, err)
		}
		if result.Skipped {
			ux.TaskSkipped(task.Name)
			sum.Skipped++
			continue
		}

		sum.Ran++
		ux.TaskDone(task.Name, result.Elapsed)
		if showStdout(task.Output, r.ShowOptional) {
			ux.TaskOutput(result.Stdout)
		}
		if result.ExitCode != 0 {
			sum.Failed++
			ux.TaskFailed(task.Name, result.ExitCode, result.Stderr)
			if r.FailFast {
				sum.Elapsed = time.Since(start)
				return sum, fmt.Errorf("task %q exited with status %d", task.Name, result.ExitCode)
			}
		}
	}
	sum.Elapsed = time.Since(start)
	ux.RunSummary(name, sum.Ran, sum.Failed, sum.Elapsed)
	return sum, nil
}

func showStdout(mode config.Output, showOptional bool) bool {
	switch mode {
	case config.OutputRequired:
		return true
	case config.OutputOptional:
		return showOptional
	}
	return false
}
