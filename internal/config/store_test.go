package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStore = `
typescript:
  optional-files: [README.md]
  commands:
    test:
      tasks:
        - name: Bun test
          command: bun test
          output: Required
  routes: []
golang:
  description: Go module
  optional-files:
    - README.md
    - test/add_test.go
  commands:
    build:
      description: Compile the binary
      args:
        - name: name
          description: Output binary name
      tasks:
        - name: Compile
          command: go build -o {{workspace}}/bin/{{name}} {{src}}
          output: optional
        - name: Vet
          command: go vet ./...
  routes:
    - /home/u/projects/api
    - /home/u/projects/cli/
`

func TestParse_SampleStore(t *testing.T) {
	s, err := Parse([]byte(sampleStore))
	require.NoError(t, err)

	assert.Equal(t, []string{"golang", "typescript"}, s.Names())
	assert.False(t, s.Dirty())

	tpl, ok := s.Template("golang")
	require.True(t, ok)
	assert.Equal(t, "Go module", tpl.Description)
	assert.Equal(t, []string{"/home/u/projects/api", "/home/u/projects/cli"}, tpl.Routes.Paths())

	build, ok := tpl.Command("BUILD")
	require.True(t, ok)
	require.Len(t, build.Tasks, 2)
	assert.Equal(t, OutputOptional, build.Tasks[0].Output)
	assert.Equal(t, OutputNone, build.Tasks[1].Output)
	assert.Equal(t, []Arg{{Name: "name", Description: "Output binary name"}}, build.Args)

	ts, _ := s.Template("typescript")
	assert.Equal(t, OutputRequired, ts.Commands["test"].Tasks[0].Output)
	assert.NotNil(t, ts.Routes)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("golang: [unterminated"))
	assert.Error(t, err)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Zero(t, s.Len())
}

func TestSaveAndLoad_RoundTripKeepsRoutes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	s, err := Parse([]byte(sampleStore))
	require.NoError(t, err)

	require.NoError(t, s.AddRoute("typescript", "/home/u/web"))
	assert.True(t, s.Dirty())
	require.NoError(t, s.Save(path))
	assert.False(t, s.Dirty())

	loaded, err := Load(path)
	require.NoError(t, err)
	ts, _ := loaded.Template("typescript")
	assert.True(t, ts.Routes.Has("/home/u/web"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- /home/u/web")
}

func TestStore_AddRouteKeepsSingleOwner(t *testing.T) {
	s, err := Parse([]byte(sampleStore))
	require.NoError(t, err)

	require.NoError(t, s.AddRoute("typescript", "/home/u/projects/api"))

	owner, ok := s.Owner("/home/u/projects/api")
	require.True(t, ok)
	assert.Equal(t, "typescript", owner)
	golang, _ := s.Template("golang")
	assert.False(t, golang.Routes.Has("/home/u/projects/api"))
}

func TestStore_AddRouteUnknownTemplate(t *testing.T) {
	assert.Error(t, NewStore().AddRoute("nope", "/x"))
}

func TestStore_RemoveRoute(t *testing.T) {
	s, err := Parse([]byte(sampleStore))
	require.NoError(t, err)

	s.RemoveRoute("golang", "/home/u/projects/api")
	assert.True(t, s.Dirty())
	_, ok := s.Owner("/home/u/projects/api")
	assert.False(t, ok)
}

func TestRouteSet_Operations(t *testing.T) {
	r := RouteSet{}
	assert.True(t, r.Add("/a/b/"))
	assert.False(t, r.Add("/a/b"))
	assert.True(t, r.Has("/a/b"))
	assert.True(t, r.Remove("/a/b"))
	assert.False(t, r.Remove("/a/b"))
	assert.Empty(t, r.Paths())
}
