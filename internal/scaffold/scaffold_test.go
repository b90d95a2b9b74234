package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/jorge-barreto/tau/internal/compare"
	"github.com/jorge-barreto/tau/internal/config"
)

const templatesDir = "/cfg/tau/templates"

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestAddTemplate_Starter(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s := config.NewStore()

	dir, err := AddTemplate(fsys, s, templatesDir, Options{Name: "rust", Description: "Cargo crate"})
	if err != nil {
		t.Fatalf("AddTemplate failed: %v", err)
	}
	if dir != "/cfg/tau/templates/rust" {
		t.Fatalf("dir = %q", dir)
	}
	for _, p := range []string{"README.md", "src/.gitkeep"} {
		if ok, _ := afero.Exists(fsys, dir+"/"+p); !ok {
			t.Fatalf("%s not created", p)
		}
	}

	tpl, ok := s.Template("rust")
	if !ok {
		t.Fatal("template not registered")
	}
	if tpl.Description != "Cargo crate" {
		t.Fatalf("Description = %q", tpl.Description)
	}
	if _, ok := tpl.Command("hello"); !ok {
		t.Fatal("starter command missing")
	}
	if !s.Dirty() {
		t.Fatal("store should be dirty")
	}
}

func TestAddTemplate_StarterMatchesItsOwnProjects(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s := config.NewStore()
	dir, err := AddTemplate(fsys, s, templatesDir, Options{Name: "rust"})
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, fsys, "/home/u/p/src/.gitkeep", "")
	tpl, _ := s.Template("rust")
	ok, err := compare.StructurallyEqual(fsys, dir, "/home/u/p", tpl.OptionalFiles)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
}

func TestAddTemplate_From(t *testing.T) {
	fsys := afero.NewMemMapFs()
	for _, p := range []string{"/src/skel/Cargo.toml", "/src/skel/src/lib.rs", "/src/skel/.DS_Store"} {
		writeFile(t, fsys, p, "x")
	}
	s := config.NewStore()

	dir, err := AddTemplate(fsys, s, templatesDir, Options{Name: "rust", From: "/src/skel"})
	if err != nil {
		t.Fatal(err)
	}
	if ok, _ := afero.Exists(fsys, dir+"/src/lib.rs"); !ok {
		t.Fatal("src/lib.rs not copied")
	}
	if ok, _ := afero.Exists(fsys, dir+"/.DS_Store"); ok {
		t.Fatal(".DS_Store should not be copied")
	}
	tpl, _ := s.Template("rust")
	if len(tpl.OptionalFiles) != 0 {
		t.Fatalf("OptionalFiles = %v", tpl.OptionalFiles)
	}
}

func TestAddTemplate_FromEmptyDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/src/skel/Thumbs.db", "")
	_, err := AddTemplate(fsys, config.NewStore(), templatesDir, Options{Name: "x", From: "/src/skel"})
	if err == nil || !strings.Contains(err.Error(), "match every directory") {
		t.Fatalf("err = %v", err)
	}
}

func TestAddTemplate_FromMissing(t *testing.T) {
	_, err := AddTemplate(afero.NewMemMapFs(), config.NewStore(), templatesDir, Options{Name: "x", From: "/nope"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestAddTemplate_InvalidName(t *testing.T) {
	for _, name := range []string{"", "Rust", "my rust", "-rust", "_rust", "rust_"} {
		_, err := AddTemplate(afero.NewMemMapFs(), config.NewStore(), templatesDir, Options{Name: name})
		if err == nil {
			t.Fatalf("expected error for %q", name)
		}
		if !strings.Contains(err.Error(), config.NameRule) {
			t.Fatalf("error should state the naming rule, got: %v", err)
		}
	}
	if _, err := AddTemplate(afero.NewMemMapFs(), config.NewStore(), templatesDir, Options{Name: "my_rust-2"}); err != nil {
		t.Fatalf("underscores and dashes inside a name are allowed: %v", err)
	}
}

// failingFs refuses to create files with the given base name.
type failingFs struct {
	afero.Fs
	name string
}

func (f failingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if filepath.Base(name) == f.name && flag&os.O_CREATE != 0 {
		return nil, errors.New("disk full")
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func TestAddTemplate_FailedCopyLeavesNothingBehind(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeFile(t, mem, "/src/skel/a.txt", "a")
	writeFile(t, mem, "/src/skel/broken.txt", "b")
	fsys := failingFs{Fs: mem, name: "broken.txt"}
	s := config.NewStore()

	_, err := AddTemplate(fsys, s, templatesDir, Options{Name: "skel", From: "/src/skel"})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("err = %v", err)
	}
	if s.Dirty() {
		t.Fatal("store should be unchanged after a failed add")
	}
	if _, ok := s.Template("skel"); ok {
		t.Fatal("template should not be registered")
	}
	if ok, _ := afero.Exists(mem, templatesDir+"/skel"); ok {
		t.Fatal("partial template directory should be removed")
	}
}

func TestAddTemplate_FromMissingLeavesStoreClean(t *testing.T) {
	s := config.NewStore()
	if _, err := AddTemplate(afero.NewMemMapFs(), s, templatesDir, Options{Name: "x", From: "/nope"}); err == nil {
		t.Fatal("expected error")
	}
	if s.Dirty() {
		t.Fatal("store should be unchanged")
	}
}

func TestAddTemplate_FailsIfExists(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s := config.NewStore()
	if _, err := AddTemplate(fsys, s, templatesDir, Options{Name: "rust"}); err != nil {
		t.Fatal(err)
	}
	_, err := AddTemplate(fsys, s, templatesDir, Options{Name: "rust"})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("err = %v", err)
	}

	if err := fsys.MkdirAll(templatesDir+"/orphan", 0o755); err != nil {
		t.Fatal(err)
	}
	_, err = AddTemplate(fsys, s, templatesDir, Options{Name: "orphan"})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("err = %v", err)
	}
}
