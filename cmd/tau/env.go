package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/jorge-barreto/tau/internal/appdir"
	"github.com/jorge-barreto/tau/internal/config"
	"github.com/jorge-barreto/tau/internal/logging"
	"github.com/jorge-barreto/tau/internal/project"
	"github.com/jorge-barreto/tau/internal/settings"
	"github.com/jorge-barreto/tau/internal/ux"
)

// env is the state one invocation works against.
type env struct {
	fs       afero.Fs
	settings *settings.Settings
	dir      appdir.Dir
	store    *config.Store
}

// boot loads settings and configures logging and color. It does not touch
// the application directory.
func boot() (*settings.Settings, error) {
	s, err := settings.Load()
	if err != nil {
		return nil, err
	}
	logging.Init(logging.Config{
		Level:  logging.ParseLevel(s.LogLevel),
		Output: os.Stderr,
		Pretty: true,
		RunID:  logging.NewRunID(),
	})
	if s.NoColor {
		ux.DisableColor()
	}
	return s, nil
}

// open boots and loads the application directory, seeding it on first use.
func open() (*env, error) {
	s, err := boot()
	if err != nil {
		return nil, err
	}
	fsys := afero.NewOsFs()
	dir, err := appdir.Open(fsys, s.ConfigDir)
	if err != nil {
		return nil, err
	}
	store, err := config.Load(dir.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &env{fs: fsys, settings: s, dir: dir, store: store}, nil
}

func (e *env) resolver() *project.Resolver {
	return project.NewResolver(e.fs, e.store, e.dir.Templates, ux.NewPrompt(os.Stdin, os.Stdout))
}

// close persists the store when the invocation changed it. Routes learned
// before a later failure are kept.
func (e *env) close(err error) error {
	if !e.store.Dirty() {
		return err
	}
	if serr := e.store.Save(e.dir.Config); serr != nil {
		return errors.Join(err, fmt.Errorf("saving config: %w", serr))
	}
	return err
}
