// Package assets bundles the default route store, command catalog and
// project templates, and seeds them into a tau application directory.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

//go:embed all:defaults
var defaultsFS embed.FS

const (
	root = "defaults"

	// templateSuffix keeps source files of the bundled templates out of
	// this module's build. It is dropped when the file is seeded.
	templateSuffix = ".tmpl"
)

// Files returns the bundled files as paths relative to the application
// directory, in lexical order, with the template suffix already removed.
func Files() ([]string, error) {
	var out []string
	err := fs.WalkDir(defaultsFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		out = append(out, target(p))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read embedded defaults: %w", err)
	}
	return out, nil
}

// Seed writes every bundled file below dir that does not exist yet and
// returns how many files it wrote. Existing files are never overwritten, so
// user edits and recorded routes survive upgrades.
func Seed(fsys afero.Fs, dir string) (int, error) {
	written := 0
	err := fs.WalkDir(defaultsFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dest := filepath.Join(dir, filepath.FromSlash(target(p)))
		if d.IsDir() {
			return fsys.MkdirAll(dest, 0o755)
		}
		exists, err := afero.Exists(fsys, dest)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		data, err := defaultsFS.ReadFile(p)
		if err != nil {
			return err
		}
		if err := afero.WriteFile(fsys, dest, data, 0o644); err != nil {
			return err
		}
		written++
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("seeding %s: %w", dir, err)
	}
	return written, nil
}

// target maps an embedded path to its path relative to the application
// directory.
func target(p string) string {
	rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
	if rel == "" {
		return "."
	}
	if path.Ext(rel) == templateSuffix {
		rel = strings.TrimSuffix(rel, templateSuffix)
	}
	return rel
}
