// Package appdir locates the tau application directory: the route store, the
// command catalog and the template assets.
package appdir

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/jorge-barreto/tau/internal/assets"
	"github.com/jorge-barreto/tau/internal/logging"
)

const (
	configFile   = "config.yaml"
	catalogFile  = "commands.toml"
	templatesDir = "templates"
)

// Dir holds the resolved paths of one application directory.
type Dir struct {
	Root      string
	Config    string
	Catalog   string
	Templates string
}

// New returns the layout rooted at root without touching the filesystem.
func New(root string) Dir {
	return Dir{
		Root:      root,
		Config:    filepath.Join(root, configFile),
		Catalog:   filepath.Join(root, catalogFile),
		Templates: filepath.Join(root, templatesDir),
	}
}

// Open creates root if needed and seeds any bundled defaults that are
// missing from it.
func Open(fsys afero.Fs, root string) (Dir, error) {
	if err := fsys.MkdirAll(root, 0o755); err != nil {
		return Dir{}, fmt.Errorf("creating %s: %w", root, err)
	}
	n, err := assets.Seed(fsys, root)
	if err != nil {
		return Dir{}, err
	}
	if n > 0 {
		logging.Debug().Str("root", root).Int("files", n).Msg("seeded defaults")
	}
	return New(root), nil
}

// TemplateDir returns the asset directory of the named template.
func (d Dir) TemplateDir(name string) string {
	return filepath.Join(d.Templates, name)
}

// TemplateSize returns the total size in bytes of the files in the named
// template's asset directory.
func (d Dir) TemplateSize(fsys afero.Fs, name string) (int64, error) {
	var total int64
	err := afero.Walk(fsys, d.TemplateDir(name), func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			total += info.Size()
		}
		return nil
	})
	return total, err
}
