package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"

	"github.com/jorge-barreto/tau/internal/catalog"
	"github.com/jorge-barreto/tau/internal/docs"
	"github.com/jorge-barreto/tau/internal/doctor"
	"github.com/jorge-barreto/tau/internal/logging"
	"github.com/jorge-barreto/tau/internal/scaffold"
	"github.com/jorge-barreto/tau/internal/ux"
)

// withEnv opens the application directory around an action and saves the
// store afterwards.
func withEnv(fn func(ctx context.Context, cmd *cli.Command, e *env) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		e, err := open()
		if err != nil {
			return err
		}
		return e.close(fn(ctx, cmd, e))
	}
}

func newCmd() *cli.Command {
	return &cli.Command{
		Name:      "new",
		Usage:     "Create a project from a template",
		ArgsUsage: "<project> [template]",
		Action: withEnv(func(ctx context.Context, cmd *cli.Command, e *env) error {
			projectName := cmd.Args().Get(0)
			if projectName == "" {
				return fmt.Errorf("project name is required (use '.' for the current directory)")
			}
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			pctx, err := e.resolver().Create(cwd, projectName, cmd.Args().Get(1))
			if err != nil {
				return err
			}
			ux.Created(filepath.Base(pctx.Workspace), pctx.Workspace)
			return nil
		}),
	}
}

func pathCmd() *cli.Command {
	return &cli.Command{
		Name:  "path",
		Usage: "Print the configuration paths",
		Action: withEnv(func(ctx context.Context, cmd *cli.Command, e *env) error {
			ux.Paths(e.dir.Config, e.dir.Catalog, e.dir.Templates)
			return nil
		}),
	}
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List templates",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "routes", Aliases: []string{"r"}, Usage: "Show the projects recorded for each template"},
		},
		Action: withEnv(func(ctx context.Context, cmd *cli.Command, e *env) error {
			names := e.store.Names()
			rows := make([]ux.TemplateRow, 0, len(names))
			for _, name := range names {
				t, _ := e.store.Template(name)
				size, err := e.dir.TemplateSize(e.fs, name)
				if err != nil {
					logging.Debug().Err(err).Str("template", name).Msg("template size")
					size = -1
				}
				rows = append(rows, ux.TemplateRow{
					Name:        name,
					Description: t.Description,
					Size:        size,
					Routes:      t.Routes.Paths(),
				})
			}
			ux.Templates(rows, cmd.Bool("routes"))
			return nil
		}),
	}
}

func execCmd() *cli.Command {
	return &cli.Command{
		Name:      "exec",
		Usage:     "Show reference commands from the catalog",
		ArgsUsage: "[label]",
		Action: withEnv(func(ctx context.Context, cmd *cli.Command, e *env) error {
			c, err := catalog.Load(e.dir.Catalog)
			if err != nil {
				return err
			}
			label := cmd.Args().First()
			if label == "" {
				ux.CatalogLabels(c)
				return nil
			}
			groups, ok := c.Get(label)
			if !ok {
				return fmt.Errorf("unknown label %q: run 'tau exec' to list labels", label)
			}
			ux.CatalogGroups(groups)
			return nil
		}),
	}
}

func doctorCmd() *cli.Command {
	return &cli.Command{
		Name:      "doctor",
		Usage:     "Explain which template entries the current project is missing",
		ArgsUsage: "[template]",
		Action: withEnv(func(ctx context.Context, cmd *cli.Command, e *env) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			reports, err := doctor.Diagnose(e.fs, e.store, e.dir.Templates, e.settings.Home, cwd, cmd.Args().First())
			if err != nil {
				return err
			}
			for _, r := range reports {
				if r.Err != nil {
					ux.Warn("%s: %v", r.Template, r.Err)
					continue
				}
				ux.Check(r.Template, r.Dir, r.Missing)
			}
			return nil
		}),
	}
}

func templateCmd() *cli.Command {
	return &cli.Command{
		Name:  "template",
		Usage: "Manage templates",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Register a new template",
				ArgsUsage: "<name>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Usage: "Copy the template contents from this directory"},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "Template description"},
				},
				Action: withEnv(func(ctx context.Context, cmd *cli.Command, e *env) error {
					name := cmd.Args().First()
					if name == "" {
						return fmt.Errorf("template name is required")
					}
					dir, err := scaffold.AddTemplate(e.fs, e.store, e.dir.Templates, scaffold.Options{
						Name:        name,
						Description: cmd.String("description"),
						From:        cmd.String("from"),
					})
					if err != nil {
						return err
					}
					ux.Registered(name, dir)
					return nil
				}),
			},
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := boot(); err != nil {
				return err
			}
			content := docs.Index()
			if name := cmd.Args().First(); name != "" {
				t, err := docs.Get(name)
				if err != nil {
					return err
				}
				content = t.Content
			}
			out, err := ux.RenderMarkdown(content)
			if err != nil {
				return err
			}
			fmt.Fprint(ux.Out, out)
			return nil
		},
	}
}
