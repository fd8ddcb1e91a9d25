package resource

import (
	"strings"
	"unicode"

	"github.com/goliatone/go-slug"
)

// Slugify derives the file stem for a title. Equal titles give equal slugs
// and the result never contains a path separator.
func Slugify(title string) string {
	title = strings.TrimSpace(title)
	normalized, err := slug.Normalize(title)
	if err != nil || !fileSafe(normalized) {
		return fallbackSlug(title)
	}
	return normalized
}

func fileSafe(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`)
}

// fallbackSlug lowercases letters and digits and collapses every other run
// of characters into a single hyphen.
func fallbackSlug(title string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	if b.Len() == 0 {
		return "untitled"
	}
	return b.String()
}
