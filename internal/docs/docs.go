// Package docs holds the built-in documentation shown by `tau docs`.
package docs

import (
	"fmt"
	"strings"
)

// Topic holds a single documentation article.
type Topic struct {
	Name    string // short slug used as CLI argument
	Title   string // human-readable title
	Summary string // one-line description for topic listing
	Content string // full article text, markdown
}

// All returns every topic in display order.
func All() []Topic {
	return topics
}

// Get looks up a topic by name. Returns an error with a hint if not found.
func Get(name string) (Topic, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range topics {
		if t.Name == name {
			return t, nil
		}
	}
	return Topic{}, fmt.Errorf("unknown topic %q: run 'tau docs' to list available topics", name)
}

// Index returns the topic listing as markdown.
func Index() string {
	var b strings.Builder
	b.WriteString("# tau documentation\n\n")
	for _, t := range topics {
		fmt.Fprintf(&b, "- **%s**: %s\n", t.Name, t.Summary)
	}
	b.WriteString("\nRun `tau docs <topic>` to read one.\n")
	return b.String()
}
