// Package compare decides whether a directory still has the shape of a
// template.
//
// The check is one-sided: every entry the template requires must exist in the
// candidate, but the candidate may carry any number of extra entries. Only
// names and directory nesting matter; file contents are never read.
package compare

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

type pair struct {
	template  string
	candidate string
}

// optionalSet holds the optional-file entries of one template. Exact entries
// are consumed on first use so they only exempt a single relative path;
// glob entries stay in force for the whole comparison.
type optionalSet struct {
	exact map[string]bool
	globs []string
}

func newOptionalSet(entries []string) *optionalSet {
	s := &optionalSet{exact: make(map[string]bool, len(entries))}
	for _, e := range entries {
		e = filepath.ToSlash(filepath.Clean(e))
		if hasMeta(e) {
			s.globs = append(s.globs, e)
			continue
		}
		s.exact[e] = true
	}
	return s
}

// take reports whether rel is optional, consuming an exact match.
func (s *optionalSet) take(rel string) bool {
	if s.exact[rel] {
		delete(s.exact, rel)
		return true
	}
	for _, g := range s.globs {
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
	}
	return false
}

func hasMeta(p string) bool {
	for _, r := range p {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// StructurallyEqual reports whether candidateDir contains every required entry
// of templateDir at every level. Junk entries in the template and entries
// listed in optionalFiles (paths relative to the template root) are not
// required. An error is returned only when a directory cannot be read.
func StructurallyEqual(fsys afero.Fs, templateDir, candidateDir string, optionalFiles []string) (bool, error) {
	missing, err := walkPairs(fsys, templateDir, candidateDir, optionalFiles, true)
	if err != nil {
		return false, err
	}
	return len(missing) == 0, nil
}

// Missing returns every required relative path of templateDir that is absent
// from candidateDir, sorted. An empty result means the directories match.
func Missing(fsys afero.Fs, templateDir, candidateDir string, optionalFiles []string) ([]string, error) {
	missing, err := walkPairs(fsys, templateDir, candidateDir, optionalFiles, false)
	if err != nil {
		return nil, err
	}
	sort.Strings(missing)
	return missing, nil
}

func walkPairs(fsys afero.Fs, templateDir, candidateDir string, optionalFiles []string, stopEarly bool) ([]string, error) {
	optional := newOptionalSet(optionalFiles)
	stack := []pair{{template: templateDir, candidate: candidateDir}}
	var missing []string

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		required, err := templateLevel(fsys, templateDir, cur.template, optional)
		if err != nil {
			return nil, err
		}
		present, err := candidateLevel(fsys, candidateDir, cur.candidate)
		if err != nil {
			return nil, err
		}

		for _, rel := range required.names {
			if !present[rel] {
				missing = append(missing, rel)
				if stopEarly {
					return missing, nil
				}
				continue
			}
			if !required.dirs[rel] {
				continue
			}
			childCandidate := filepath.Join(candidateDir, filepath.FromSlash(rel))
			isDir, err := afero.IsDir(fsys, childCandidate)
			if err != nil {
				return nil, fmt.Errorf("stat %s: %w", childCandidate, err)
			}
			if !isDir {
				missing = append(missing, rel+"/")
				if stopEarly {
					return missing, nil
				}
				continue
			}
			stack = append(stack, pair{
				template:  filepath.Join(templateDir, filepath.FromSlash(rel)),
				candidate: childCandidate,
			})
		}
	}
	return missing, nil
}

type level struct {
	names []string
	dirs  map[string]bool
}

// templateLevel lists the required entries of dir, relative to root.
func templateLevel(fsys afero.Fs, root, dir string, optional *optionalSet) (level, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return level{}, fmt.Errorf("reading template dir: %w", err)
	}
	lv := level{dirs: make(map[string]bool)}
	for _, info := range infos {
		if IsJunk(info.Name()) {
			continue
		}
		rel, err := relative(root, filepath.Join(dir, info.Name()))
		if err != nil {
			return level{}, err
		}
		if optional.take(rel) {
			continue
		}
		lv.names = append(lv.names, rel)
		if isDir(fsys, filepath.Join(dir, info.Name()), info) {
			lv.dirs[rel] = true
		}
	}
	return lv, nil
}

// isDir follows symlinks. A dangling link counts as a file.
func isDir(fsys afero.Fs, path string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return info.IsDir()
	}
	ok, err := afero.IsDir(fsys, path)
	return err == nil && ok
}

// candidateLevel lists every entry of dir, relative to root.
func candidateLevel(fsys afero.Fs, root, dir string) (map[string]bool, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading project dir: %w", err)
	}
	present := make(map[string]bool, len(infos))
	for _, info := range infos {
		rel, err := relative(root, filepath.Join(dir, info.Name()))
		if err != nil {
			return nil, err
		}
		present[rel] = true
	}
	return present, nil
}

func relative(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
