// Package scaffold registers new templates.
package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/gosimple/slug"
	"github.com/spf13/afero"

	"github.com/jorge-barreto/tau/internal/compare"
	"github.com/jorge-barreto/tau/internal/config"
	"github.com/jorge-barreto/tau/internal/logging"
	"github.com/jorge-barreto/tau/internal/project"
)

const starterReadme = `# New project

Created from the %s template.
`

// Options describes a template to add.
type Options struct {
	Name        string
	Description string
	// From is a directory whose contents become the template. Empty writes
	// a starter skeleton instead.
	From string
}

// AddTemplate creates the asset directory for a new template and registers
// it in the store. It returns the asset directory. On error neither the
// store nor the templates directory is changed.
func AddTemplate(fsys afero.Fs, store *config.Store, templatesDir string, opts Options) (string, error) {
	if !slug.IsSlug(opts.Name) {
		return "", fmt.Errorf("invalid template name %q: use %s", opts.Name, config.NameRule)
	}
	dir := filepath.Join(templatesDir, opts.Name)
	if _, ok := store.Template(opts.Name); ok {
		return "", fmt.Errorf("template %q already exists", opts.Name)
	}
	if exists, err := afero.Exists(fsys, dir); err != nil {
		return "", err
	} else if exists {
		return "", fmt.Errorf("template directory already exists: %s", dir)
	}

	t := &config.Template{
		Description: opts.Description,
		Commands: map[string]*config.Command{
			"hello": {
				Description: "Print the project root",
				Tasks: []config.Task{
					{Name: "Hello", Command: "echo {{workspace}}", Output: config.OutputRequired},
				},
			},
		},
	}
	if opts.From == "" {
		t.OptionalFiles = []string{"README.md"}
	}

	check := config.NewStore()
	check.Put(opts.Name, t)
	if err := config.Validate(check); err != nil {
		return "", err
	}

	var err error
	if opts.From != "" {
		err = fromDir(fsys, opts.From, dir)
	} else {
		err = starter(fsys, dir, opts.Name)
	}
	if err != nil {
		if rerr := fsys.RemoveAll(dir); rerr != nil {
			logging.Warn().Err(rerr).Str("dir", dir).Msg("removing partial template")
		}
		return "", err
	}

	store.Put(opts.Name, t)
	return dir, nil
}

func fromDir(fsys afero.Fs, src, dst string) error {
	isDir, err := afero.IsDir(fsys, src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	if !isDir {
		return fmt.Errorf("%s is not a directory", src)
	}
	infos, err := afero.ReadDir(fsys, src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	required := 0
	for _, info := range infos {
		if !compare.IsJunk(info.Name()) {
			required++
		}
	}
	if required == 0 {
		return fmt.Errorf("%s is empty: a template without entries would match every directory", src)
	}
	if err := project.CopyContents(fsys, src, dst); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return nil
}

func starter(fsys afero.Fs, dir, name string) error {
	files := map[string]string{
		"README.md":    fmt.Sprintf(starterReadme, name),
		"src/.gitkeep": "",
	}
	for rel, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		if err := fsys.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(p), err)
		}
		if err := afero.WriteFile(fsys, p, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", rel, err)
		}
	}
	return nil
}
