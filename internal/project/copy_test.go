package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge-barreto/tau/internal/compare"
)

func TestCopyContents_FollowsSymlinks(t *testing.T) {
	base := t.TempDir()
	fsys := afero.NewOsFs()
	shared := filepath.Join(base, "shared")
	tpl := filepath.Join(base, "tpl")
	require.NoError(t, os.MkdirAll(shared, 0o755))
	require.NoError(t, os.MkdirAll(tpl, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(shared, "util.go"), []byte("package lib\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "LICENSE"), []byte("MIT\n"), 0o644))
	require.NoError(t, os.Symlink(shared, filepath.Join(tpl, "lib")))
	require.NoError(t, os.Symlink(filepath.Join(base, "LICENSE"), filepath.Join(tpl, "LICENSE")))
	require.NoError(t, os.Symlink(filepath.Join(base, "gone"), filepath.Join(tpl, "dangling")))

	dst := filepath.Join(base, "proj")
	require.NoError(t, CopyContents(fsys, tpl, dst))

	info, err := os.Lstat(filepath.Join(dst, "lib"))
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "linked directory is copied as a real directory")
	data, err := os.ReadFile(filepath.Join(dst, "lib", "util.go"))
	require.NoError(t, err)
	assert.Equal(t, "package lib\n", string(data))
	data, err = os.ReadFile(filepath.Join(dst, "LICENSE"))
	require.NoError(t, err)
	assert.Equal(t, "MIT\n", string(data))
	_, err = os.Lstat(filepath.Join(dst, "dangling"))
	assert.True(t, os.IsNotExist(err))

	// "dangling" is a required entry the copy could not produce.
	missing, err := compare.Missing(fsys, tpl, dst, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"dangling"}, missing)
}
