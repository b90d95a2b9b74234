// Package walk provides the two filesystem traversals tau is built on:
// listing one directory level and climbing from a directory toward a
// boundary.
package walk

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// Children returns the full paths of the entries directly inside dir.
// The order is whatever the filesystem reports.
func Children(fsys afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(infos))
	for _, info := range infos {
		paths = append(paths, filepath.Join(dir, info.Name()))
	}
	return paths, nil
}

// Verdict is what a visit decided about the directory it was given.
type Verdict int

const (
	Continue Verdict = iota
	Found
	Abort
)

// Step is the result of visiting one directory during Ancestors.
type Step[T any] struct {
	Verdict Verdict
	Value   T
	Err     error
}

// Next tells Ancestors to move on to the parent directory.
func Next[T any]() Step[T] {
	return Step[T]{Verdict: Continue}
}

// Stop ends the walk and hands v back to the caller.
func Stop[T any](v T) Step[T] {
	return Step[T]{Verdict: Found, Value: v}
}

// Fail ends the walk with err.
func Fail[T any](err error) Step[T] {
	return Step[T]{Verdict: Abort, Err: err}
}

// Ancestors visits start, then each of its parents in turn, until visit
// returns Found or Abort. The boundary directory is never visited: reaching it
// (including when start is the boundary) ends the walk with found == false.
// The walk also ends after the filesystem root.
func Ancestors[T any](boundary, start string, visit func(dir string) Step[T]) (value T, found bool, err error) {
	boundary = filepath.Clean(boundary)
	current := filepath.Clean(start)
	for {
		if current == boundary {
			return value, false, nil
		}

		step := visit(current)
		switch step.Verdict {
		case Found:
			return step.Value, true, nil
		case Abort:
			return value, false, step.Err
		}

		parent := filepath.Dir(current)
		if parent == current {
			return value, false, nil
		}
		current = parent
	}
}
