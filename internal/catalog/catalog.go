// Package catalog loads the reference command catalog shown by `tau exec`.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Group is a titled list of reference commands.
type Group struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Commands    []string `toml:"commands"`
}

// Catalog maps a label to its groups, in file order.
type Catalog map[string][]Group

// Load decodes the catalog at path. A missing file yields an empty catalog.
func Load(path string) (Catalog, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Catalog{}, nil
	}
	var c Catalog
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return c.normalize()
}

// Parse decodes a catalog document.
func Parse(data string) (Catalog, error) {
	var c Catalog
	if _, err := toml.Decode(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return c.normalize()
}

func (c Catalog) normalize() (Catalog, error) {
	if c == nil {
		return Catalog{}, nil
	}
	for label, groups := range c {
		for i := range groups {
			groups[i].Name = strings.TrimSpace(groups[i].Name)
			if groups[i].Name == "" {
				return nil, fmt.Errorf("catalog: %s: group %d has no name", label, i+1)
			}
		}
	}
	return c, nil
}

// Labels returns the labels in sorted order.
func (c Catalog) Labels() []string {
	labels := make([]string, 0, len(c))
	for l := range c {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// Get returns the groups under label.
func (c Catalog) Get(label string) ([]Group, bool) {
	g, ok := c[label]
	return g, ok
}
