// Package resource parses and renders the markdown resources of a corpus:
// articles and cheatsheets, each a YAML metadata header followed by a body.
package resource

import "fmt"

// Kind names a resource variant.
type Kind string

const (
	KindArticle    Kind = "article"
	KindCheatsheet Kind = "cheatsheet"
)

// Resource is the capability set shared by every resource kind.
// Values are immutable once constructed.
type Resource interface {
	Kind() Kind
	Title() string
	Slug() string
	// Body returns the markdown content without the metadata header.
	Body() string
	// Markdown renders the resource back to its on-disk form.
	Markdown() string
}

// Compile-time checks.
var (
	_ Resource = (*Article)(nil)
	_ Resource = (*Cheatsheet)(nil)
)

// Parse dispatches raw markdown to the parser for kind.
// Parsing itself never fails; only an unknown kind is an error.
func Parse(kind Kind, raw string) (Resource, error) {
	switch kind {
	case KindArticle:
		return ParseArticle(raw), nil
	case KindCheatsheet:
		return ParseCheatsheet(raw), nil
	default:
		return nil, fmt.Errorf("resource: unknown kind %q", kind)
	}
}

// FileName returns the on-disk name of r.
func FileName(r Resource) string {
	return r.Slug() + ".md"
}
