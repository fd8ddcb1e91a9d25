// Package guide tracks long-form guides: externally built documentation
// projects that live in their own directories under the guide root.
package guide

import (
	"net/url"
	"strings"
)

// DefaultBase is the owner URL guide repositories are published under.
const DefaultBase = "https://github.com/Moka-Reads"

// Entry is one discovered guide.
type Entry struct {
	RepoName string `json:"repo_name"`
	Addy     string `json:"addy"`
}

// Registry derives guide entries from directory names.
type Registry struct {
	base string
}

// NewRegistry returns a Registry publishing under base, or DefaultBase when
// base is empty.
func NewRegistry(base string) Registry {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = DefaultBase
	}
	return Registry{base: base}
}

// Base returns the owner URL in use.
func (r Registry) Base() string {
	if r.base == "" {
		return DefaultBase
	}
	return r.base
}

// Entry maps a directory name to its guide. The name is treated as the
// repository name under the registry owner; it never fails.
func (r Registry) Entry(name string) Entry {
	repo := strings.TrimSpace(name)
	if repo == "" {
		return Entry{RepoName: name, Addy: r.Base()}
	}
	return Entry{RepoName: name, Addy: r.Base() + "/" + url.PathEscape(repo)}
}

// Build maps every name to an entry, keeping order.
func (r Registry) Build(names []string) []Entry {
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		out = append(out, r.Entry(n))
	}
	return out
}
