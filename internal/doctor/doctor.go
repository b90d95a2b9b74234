// Package doctor explains why a directory is or is not recognised as a
// project of a template.
package doctor

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/jorge-barreto/tau/internal/compare"
	"github.com/jorge-barreto/tau/internal/config"
	"github.com/jorge-barreto/tau/internal/project"
	"github.com/jorge-barreto/tau/internal/walk"
)

// Report is the closest candidate directory found for one template.
type Report struct {
	Template string
	Dir      string
	Missing  []string
	Err      error
}

// Matches reports whether Dir has every required entry of the template.
func (r Report) Matches() bool {
	return r.Err == nil && len(r.Missing) == 0
}

// Diagnose compares every directory from cwd up to (not including) home
// against each template and keeps, per template, the directory missing the
// fewest entries. The nearest directory wins ties. When only is non-empty
// just that template is checked. When cwd is home itself, cwd is compared.
func Diagnose(fsys afero.Fs, store *config.Store, templatesDir, home, cwd, only string) ([]Report, error) {
	if home == "" {
		return nil, project.ErrHomeDirectoryUnavailable
	}

	names := store.Names()
	if only != "" {
		if _, ok := store.Template(only); !ok {
			return nil, fmt.Errorf("%w: %s", project.ErrTemplateNotFound, only)
		}
		names = []string{only}
	}

	candidates := ancestors(home, cwd)
	reports := make([]Report, 0, len(names))
	for _, name := range names {
		t, _ := store.Template(name)
		reports = append(reports, closest(fsys, filepath.Join(templatesDir, name), name, t, candidates))
	}
	return reports, nil
}

func ancestors(home, cwd string) []string {
	var dirs []string
	walk.Ancestors(home, cwd, func(dir string) walk.Step[struct{}] {
		dirs = append(dirs, dir)
		return walk.Next[struct{}]()
	})
	if len(dirs) == 0 {
		dirs = append(dirs, filepath.Clean(cwd))
	}
	return dirs
}

func closest(fsys afero.Fs, templateDir, name string, t *config.Template, candidates []string) Report {
	var best *Report
	for _, dir := range candidates {
		missing, err := compare.Missing(fsys, templateDir, dir, t.OptionalFiles)
		if err != nil {
			if best == nil {
				best = &Report{Template: name, Dir: dir, Err: err}
			}
			continue
		}
		if best == nil || best.Err != nil || len(missing) < len(best.Missing) {
			best = &Report{Template: name, Dir: dir, Missing: missing}
		}
		if len(missing) == 0 {
			break
		}
	}
	return *best
}
