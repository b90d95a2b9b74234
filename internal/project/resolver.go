// Package project identifies which template governs a directory and creates
// new projects from templates.
package project

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/jorge-barreto/tau/internal/compare"
	"github.com/jorge-barreto/tau/internal/config"
	"github.com/jorge-barreto/tau/internal/logging"
	"github.com/jorge-barreto/tau/internal/walk"
)

const selectPrompt = "Select a template"

// Selector asks the user to pick one of several options and returns the
// chosen index.
type Selector interface {
	Select(prompt string, options []string) (int, error)
}

// Resolver ties the route store to the template asset directories.
type Resolver struct {
	fs        afero.Fs
	store     *config.Store
	templates string
	selector  Selector
}

// NewResolver returns a Resolver reading template assets below templatesDir.
func NewResolver(fsys afero.Fs, store *config.Store, templatesDir string, selector Selector) *Resolver {
	return &Resolver{
		fs:        fsys,
		store:     store,
		templates: templatesDir,
		selector:  selector,
	}
}

func (r *Resolver) templateDir(name string) string {
	return filepath.Join(r.templates, name)
}

type hit struct {
	name string
	dir  string
}

// Locate finds the project enclosing cwd. It first trusts recorded routes,
// verifying each against its template, and falls back to comparing every
// template at each ancestor. home bounds the climb and is never considered a
// project itself.
func (r *Resolver) Locate(home, cwd string) (*Context, error) {
	if home == "" {
		return nil, ErrHomeDirectoryUnavailable
	}

	if h, ok := r.cachedRoute(home, cwd); ok {
		t, _ := r.store.Template(h.name)
		logging.Debug().Str("template", h.name).Str("dir", h.dir).Msg("route hit")
		return newContext(h.name, t, h.dir), nil
	}

	dir, names, err := r.Coincidences(home, cwd)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ErrProjectNotFound
	}

	name, err := r.choose(names)
	if err != nil {
		return nil, err
	}
	if err := r.store.AddRoute(name, dir); err != nil {
		return nil, err
	}
	logging.Debug().Str("template", name).Str("dir", dir).Msg("route registered")
	t, _ := r.store.Template(name)
	return newContext(name, t, dir), nil
}

// cachedRoute walks from cwd toward home looking for a recorded route that
// still matches its template. Routes that no longer match are evicted.
func (r *Resolver) cachedRoute(home, cwd string) (hit, bool) {
	h, found, _ := walk.Ancestors(home, cwd, func(dir string) walk.Step[hit] {
		for _, name := range r.store.Names() {
			t, _ := r.store.Template(name)
			if !t.Routes.Has(dir) {
				continue
			}
			ok, err := compare.StructurallyEqual(r.fs, r.templateDir(name), dir, t.OptionalFiles)
			if err != nil {
				logging.Debug().Err(err).Str("template", name).Str("dir", dir).Msg("route check failed")
				continue
			}
			if ok {
				return walk.Stop(hit{name: name, dir: dir})
			}
			r.store.RemoveRoute(name, dir)
			logging.Debug().Str("template", name).Str("dir", dir).Msg("route evicted")
		}
		return walk.Next[hit]()
	})
	return h, found
}

type coincidence struct {
	dir   string
	names []string
}

// Coincidences walks from cwd toward home and returns the first directory
// matching at least one template, together with every template it matches
// in store order. A template without an asset directory aborts the walk
// with ErrTemplateNotFound. No match yields an empty dir and nil names.
func (r *Resolver) Coincidences(home, cwd string) (string, []string, error) {
	if home == "" {
		return "", nil, ErrHomeDirectoryUnavailable
	}
	c, found, err := walk.Ancestors(home, cwd, func(dir string) walk.Step[coincidence] {
		var names []string
		for _, name := range r.store.Names() {
			tdir := r.templateDir(name)
			exists, err := afero.DirExists(r.fs, tdir)
			if err != nil {
				return walk.Fail[coincidence](err)
			}
			if !exists {
				return walk.Fail[coincidence](fmt.Errorf("%w: %s (no %s)", ErrTemplateNotFound, name, tdir))
			}
			t, _ := r.store.Template(name)
			ok, err := compare.StructurallyEqual(r.fs, tdir, dir, t.OptionalFiles)
			if err != nil {
				logging.Debug().Err(err).Str("template", name).Str("dir", dir).Msg("compare failed")
				continue
			}
			if ok {
				names = append(names, name)
			}
		}
		if len(names) > 0 {
			return walk.Stop(coincidence{dir: dir, names: names})
		}
		return walk.Next[coincidence]()
	})
	if err != nil || !found {
		return "", nil, err
	}
	logging.Debug().Str("dir", c.dir).Strs("templates", c.names).Msg("coincidences")
	return c.dir, c.names, nil
}

// choose returns the only option, or asks the selector when there are more.
func (r *Resolver) choose(options []string) (string, error) {
	if len(options) == 1 {
		return options[0], nil
	}
	if r.selector == nil {
		return "", fmt.Errorf("%d templates match and no selector is available", len(options))
	}
	i, err := r.selector.Select(selectPrompt, options)
	if err != nil {
		return "", err
	}
	if i < 0 || i >= len(options) {
		return "", fmt.Errorf("selection %d out of range [0, %d)", i, len(options))
	}
	return options[i], nil
}

// Create copies a template into a new project directory and records it as
// a route. projectName "." builds the project in cwd, which must be empty;
// any other name must not exist yet. An empty templateName picks the only
// template or asks the selector.
func (r *Resolver) Create(cwd, projectName, templateName string) (*Context, error) {
	dest, err := r.destination(cwd, projectName)
	if err != nil {
		return nil, err
	}

	name := templateName
	if name == "" {
		names := r.store.Names()
		if len(names) == 0 {
			return nil, fmt.Errorf("%w: no templates configured", ErrTemplateNotFound)
		}
		if name, err = r.choose(names); err != nil {
			return nil, err
		}
	}

	t, ok := r.store.Template(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	src := r.templateDir(name)
	exists, err := afero.DirExists(r.fs, src)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s (no %s)", ErrTemplateNotFound, name, src)
	}

	if err := CopyContents(r.fs, src, dest); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	if err := r.store.AddRoute(name, dest); err != nil {
		return nil, err
	}
	logging.Debug().Str("template", name).Str("dir", dest).Msg("project created")
	return newContext(name, t, dest), nil
}

func (r *Resolver) destination(cwd, projectName string) (string, error) {
	if projectName == "." {
		entries, err := afero.ReadDir(r.fs, cwd)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", cwd, err)
		}
		if len(entries) > 0 {
			return "", fmt.Errorf("%w: %s", ErrNotEmpty, cwd)
		}
		return filepath.Clean(cwd), nil
	}

	dest := projectName
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(cwd, projectName)
	}
	dest = filepath.Clean(dest)
	exists, err := afero.Exists(r.fs, dest)
	if err != nil {
		return "", err
	}
	if exists {
		return "", fmt.Errorf("%w: %s", ErrAlreadyExists, dest)
	}
	return dest, nil
}
