package indexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/starford/mokares/internal/guide"
	"github.com/starford/mokares/internal/resource"
)

// Located pairs a parsed resource with the path it was read from.
type Located[T resource.Resource] struct {
	Resource T
	Path     string
}

// Document is everything the README is rendered from.
type Document struct {
	Readme      ReadmeConf
	Articles    []Located[*resource.Article]
	Cheatsheets []Located[*resource.Cheatsheet]
	Guides      []guide.Entry
}

// Render produces the README text: the header block, then one section per
// collection in the order given. Lines are joined by "\n" with no trailing
// newline. Paths are written as plain slash separated strings.
func Render(doc Document) string {
	lines := make([]string, 0, 4+len(doc.Articles)+len(doc.Cheatsheets)+len(doc.Guides))
	lines = append(lines, doc.Readme.String())

	lines = append(lines, "## Articles")
	for _, a := range doc.Articles {
		lines = append(lines, fmt.Sprintf("- [%s](%s)", a.Resource.Title(), a.Path))
	}

	lines = append(lines, "## Cheatsheets")
	for _, c := range doc.Cheatsheets {
		lines = append(lines, fmt.Sprintf("- **%s**: [%s](%s)",
			c.Resource.Language(), CapitalizeFirst(c.Resource.Title()), c.Path))
	}

	lines = append(lines, "## Guides")
	for _, g := range doc.Guides {
		lines = append(lines, fmt.Sprintf("- [%s](%s)", g.RepoName, g.Addy))
	}

	return strings.Join(lines, "\n")
}

// CapitalizeFirst upper-cases the first character of s and leaves the rest
// untouched.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
