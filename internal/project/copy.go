package project

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/jorge-barreto/tau/internal/compare"
)

// CopyContents copies everything inside src into dst, creating dst if
// needed. Junk entries are skipped. Symlinks are copied as what they point
// to; dangling ones are skipped.
func CopyContents(fsys afero.Fs, src, dst string) error {
	infos, err := afero.ReadDir(fsys, src)
	if err != nil {
		return err
	}
	if err := fsys.MkdirAll(dst, 0o755); err != nil {
		return err
	}
	for _, info := range infos {
		if compare.IsJunk(info.Name()) {
			continue
		}
		from := filepath.Join(src, info.Name())
		to := filepath.Join(dst, info.Name())
		if info.Mode()&os.ModeSymlink != 0 {
			resolved, err := fsys.Stat(from)
			if err != nil {
				continue
			}
			info = resolved
		}
		switch {
		case info.IsDir():
			if err := CopyContents(fsys, from, to); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			if err := copyFile(fsys, from, to, info.Mode().Perm()); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyFile(fsys afero.Fs, src, dst string, perm os.FileMode) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Close()
}
