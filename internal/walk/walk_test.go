package walk

import (
	"errors"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildren_OneLevel(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/root/a/deep", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/root/b.txt", []byte("b"), 0o644))

	got, err := Children(fsys, "/root")
	require.NoError(t, err)
	sort.Strings(got)
	assert.Equal(t, []string{"/root/a", "/root/b.txt"}, got)
}

func TestChildren_MissingDir(t *testing.T) {
	_, err := Children(afero.NewMemMapFs(), "/nope")
	assert.Error(t, err)
}

func TestAncestors_VisitsUpToBoundaryExclusive(t *testing.T) {
	var visited []string
	_, found, err := Ancestors("/home/u", "/home/u/a/b/c", func(dir string) Step[string] {
		visited = append(visited, dir)
		return Next[string]()
	})
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, []string{"/home/u/a/b/c", "/home/u/a/b", "/home/u/a"}, visited)
}

func TestAncestors_StartAtBoundaryVisitsNothing(t *testing.T) {
	calls := 0
	_, found, err := Ancestors("/home/u", "/home/u", func(dir string) Step[int] {
		calls++
		return Next[int]()
	})
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, calls)
}

func TestAncestors_Found(t *testing.T) {
	got, found, err := Ancestors("/home/u", "/home/u/p/src/pkg", func(dir string) Step[string] {
		if filepath.Base(dir) == "p" {
			return Stop(dir)
		}
		return Next[string]()
	})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "/home/u/p", got)
}

func TestAncestors_Abort(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	_, found, err := Ancestors("/home/u", "/home/u/a/b", func(dir string) Step[string] {
		calls++
		return Fail[string](boom)
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, found)
	assert.Equal(t, 1, calls)
}

func TestAncestors_OutsideBoundaryStopsAtRoot(t *testing.T) {
	var visited []string
	_, found, err := Ancestors("/home/u", "/tmp/x", func(dir string) Step[string] {
		visited = append(visited, dir)
		return Next[string]()
	})
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, []string{"/tmp/x", "/tmp", "/"}, visited)
}
