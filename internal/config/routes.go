package config

import (
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// RouteSet is a set of absolute project directories. It serializes as a
// sorted list.
type RouteSet map[string]struct{}

// Has reports whether path is in the set.
func (r RouteSet) Has(path string) bool {
	_, ok := r[filepath.Clean(path)]
	return ok
}

// Add inserts path. It reports whether the set changed.
func (r RouteSet) Add(path string) bool {
	path = filepath.Clean(path)
	if _, ok := r[path]; ok {
		return false
	}
	r[path] = struct{}{}
	return true
}

// Remove deletes path. It reports whether the set changed.
func (r RouteSet) Remove(path string) bool {
	path = filepath.Clean(path)
	if _, ok := r[path]; !ok {
		return false
	}
	delete(r, path)
	return true
}

// Paths returns the routes in sorted order.
func (r RouteSet) Paths() []string {
	paths := make([]string, 0, len(r))
	for p := range r {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (r RouteSet) MarshalYAML() (interface{}, error) {
	return r.Paths(), nil
}

func (r *RouteSet) UnmarshalYAML(value *yaml.Node) error {
	var paths []string
	if err := value.Decode(&paths); err != nil {
		return err
	}
	set := make(RouteSet, len(paths))
	for _, p := range paths {
		set.Add(p)
	}
	*r = set
	return nil
}
