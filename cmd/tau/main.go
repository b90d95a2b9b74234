package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"

	"github.com/jorge-barreto/tau/internal/ux"
)

var version = "dev"

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		ux.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:        "tau",
		Usage:       "Scaffold projects from templates and run their commands",
		UsageText:   "tau <command> [arguments]\n   tau <template command> [--<arg> value] [--output] [--fail-fast]",
		Description: "Run 'tau docs' for documentation on templates, commands and placeholders.",
		Version:     version,
		// Unknown positionals are template commands, so the root must not
		// reject their flags.
		SkipFlagParsing: true,
		Commands: []*cli.Command{
			newCmd(),
			pathCmd(),
			listCmd(),
			execCmd(),
			doctorCmd(),
			templateCmd(),
			docsCmd(),
			runCmd(),
		},
		Action: rootAction,
	}
}

func rootAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return cli.ShowRootCommandHelp(cmd)
	}
	switch args[0] {
	case "-h", "--help":
		return cli.ShowRootCommandHelp(cmd)
	case "-v", "--version":
		cli.ShowVersion(cmd)
		return nil
	}
	if strings.HasPrefix(args[0], "-") {
		return fmt.Errorf("unknown flag %s (run 'tau --help')", args[0])
	}
	return runProjectCommand(ctx, args)
}
