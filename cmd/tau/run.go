package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"

	"github.com/jorge-barreto/tau/internal/config"
	"github.com/jorge-barreto/tau/internal/dispatch"
	"github.com/jorge-barreto/tau/internal/project"
	"github.com/jorge-barreto/tau/internal/runner"
)

func runCmd() *cli.Command {
	return &cli.Command{
		Name:            "run",
		Usage:           "Run a command of the current project's template",
		ArgsUsage:       "[command] [--<arg> value] [--output] [--fail-fast]",
		Description:     "Without a command name, runs the template's own 'run' command.",
		SkipFlagParsing: true,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runProjectCommand(ctx, runArgs(cmd.Args().Slice()))
		},
	}
}

// runArgs names the template's "run" command when args start without a
// command name.
func runArgs(args []string) []string {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return append([]string{"run"}, args...)
	}
	return args
}

// runProjectCommand locates the project around the working directory and
// runs args[0] from its template, parsing the remaining args against the
// command's declared arguments.
func runProjectCommand(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return fmt.Errorf("command name is required")
	}
	name := args[0]

	e, err := open()
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	pctx, err := e.resolver().Locate(e.settings.Home, cwd)
	if err != nil {
		return e.close(err)
	}
	command, err := pctx.Command(name)
	if err != nil {
		return e.close(err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	// The generated command runs as a root of its own so urfave sets up its
	// flags and help; the signal context reaches it through the closure.
	sub := projectCommand(ctx, pctx, name, command)
	return e.close(sub.Run(context.Background(), append([]string{"tau"}, args[1:]...)))
}

// projectCommand builds the CLI for one template command: a required
// --<name> flag per declared argument plus the run options.
func projectCommand(ctx context.Context, pctx *project.Context, name string, command *config.Command) *cli.Command {
	flags := make([]cli.Flag, 0, len(command.Args)+2)
	for _, a := range command.Args {
		flags = append(flags, &cli.StringFlag{Name: a.Name, Usage: a.Description, Required: true})
	}
	flags = append(flags,
		&cli.BoolFlag{Name: "output", Aliases: []string{"o"}, Usage: "Also show output of tasks marked optional"},
		&cli.BoolFlag{Name: "fail-fast", Usage: "Stop at the first task that exits non-zero"},
	)

	return &cli.Command{
		Name:        name,
		Usage:       command.Description,
		UsageText:   fmt.Sprintf("tau %s [options]", name),
		Description: fmt.Sprintf("Template %q, project %s.", pctx.TemplateName, pctx.Workspace),
		Flags:       flags,
		HideVersion: true,
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return fmt.Errorf("unexpected argument %q (arguments are passed as --<name> value)", cmd.Args().First())
			}
			values := make(map[string]string, len(command.Args))
			for _, a := range command.Args {
				values[a.Name] = cmd.String(a.Name)
			}

			environ, err := dispatch.NewEnvironment(pctx.TemplateName, pctx.Workspace, pctx.Src)
			if err != nil {
				return err
			}
			r := &runner.Runner{
				Context:      pctx,
				Env:          environ,
				Args:         values,
				Dispatcher:   &dispatch.DefaultDispatcher{},
				ShowOptional: cmd.Bool("output"),
				FailFast:     cmd.Bool("fail-fast"),
			}
			_, err = r.Run(ctx, name)
			return err
		},
	}
}
