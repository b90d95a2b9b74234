package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/jorge-barreto/tau/internal/logging"
	"gopkg.in/yaml.v3"
)

// Store is the ordered template name -> Template mapping persisted as the
// route configuration. Iteration follows sorted template names.
type Store struct {
	templates map[string]*Template
	dirty     bool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{templates: make(map[string]*Template)}
}

// Load reads and validates the store at path. A missing file yields an empty
// store.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewStore(), nil
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a store document.
func Parse(data []byte) (*Store, error) {
	templates := make(map[string]*Template)
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	s := &Store{templates: make(map[string]*Template, len(templates))}
	for name, t := range templates {
		if t == nil {
			t = &Template{}
		}
		s.templates[name] = normalize(t)
	}
	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

func normalize(t *Template) *Template {
	if t.Routes == nil {
		t.Routes = make(RouteSet)
	}
	if t.Commands == nil {
		t.Commands = make(map[string]*Command)
	}
	for _, c := range t.Commands {
		if c == nil {
			continue
		}
		for i := range c.Tasks {
			if c.Tasks[i].Output == "" {
				c.Tasks[i].Output = OutputNone
			}
		}
	}
	return t
}

// Save writes the store to path atomically and clears the dirty flag.
func (s *Store) Save(path string) error {
	data, err := yaml.Marshal(s.templates)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return err
	}
	logging.Debug().Str("path", path).Int("templates", len(s.templates)).Msg("store saved")
	s.dirty = false
	return nil
}

// Dirty reports whether the store changed since it was loaded or saved.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Names returns the template names in iteration order.
func (s *Store) Names() []string {
	return sortedKeys(s.templates)
}

// Len returns the number of templates.
func (s *Store) Len() int {
	return len(s.templates)
}

// Template returns the named template.
func (s *Store) Template(name string) (*Template, bool) {
	t, ok := s.templates[name]
	return t, ok
}

// Put adds or replaces a template.
func (s *Store) Put(name string, t *Template) {
	s.templates[name] = normalize(t)
	s.dirty = true
}

// Owner returns the template whose route set contains path.
func (s *Store) Owner(path string) (string, bool) {
	for _, name := range s.Names() {
		if s.templates[name].Routes.Has(path) {
			return name, true
		}
	}
	return "", false
}

// AddRoute records path as an instance of the named template, removing it
// from every other template so a path has at most one owner.
func (s *Store) AddRoute(name, path string) error {
	t, ok := s.templates[name]
	if !ok {
		return fmt.Errorf("config: unknown template %q", name)
	}
	for other, ot := range s.templates {
		if other != name && ot.Routes.Remove(path) {
			s.dirty = true
		}
	}
	if t.Routes.Add(path) {
		s.dirty = true
	}
	return nil
}

// RemoveRoute evicts path from the named template's route set.
func (s *Store) RemoveRoute(name, path string) {
	if t, ok := s.templates[name]; ok && t.Routes.Remove(path) {
		s.dirty = true
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
