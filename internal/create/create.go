// Package create collects metadata for new resources and writes them to
// disk.
package create

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/spf13/cast"

	"github.com/starford/mokares/internal/guide"
	"github.com/starford/mokares/internal/prompt"
	"github.com/starford/mokares/internal/resource"
	"github.com/starford/mokares/internal/storage"
)

// Article asks for the fields of a new article.
func Article(p prompt.Prompter) (resource.ArticleMetadata, error) {
	var meta resource.ArticleMetadata
	var tags string
	for _, q := range []struct {
		label string
		dst   *string
	}{
		{"Title", &meta.Title},
		{"Description", &meta.Description},
		{"Author", &meta.Author},
		{"Tags (comma separated)", &tags},
		{"Icon", &meta.Icon},
	} {
		answer, err := p.Ask(q.label)
		if err != nil {
			return resource.ArticleMetadata{}, fmt.Errorf("create: %s: %w", q.label, err)
		}
		*q.dst = answer
	}
	meta.Tags = resource.SplitList(tags)
	return meta, nil
}

// Cheatsheet asks for the fields of a new cheatsheet. A blank icon answer
// takes the suggestion for the chosen language.
func Cheatsheet(p prompt.Prompter) (resource.CheatsheetMetadata, error) {
	var meta resource.CheatsheetMetadata
	var err error
	if meta.Title, err = p.Ask("Title"); err != nil {
		return resource.CheatsheetMetadata{}, fmt.Errorf("create: title: %w", err)
	}
	if meta.Author, err = p.Ask("Author"); err != nil {
		return resource.CheatsheetMetadata{}, fmt.Errorf("create: author: %w", err)
	}
	level, err := p.Ask("Level")
	if err != nil {
		return resource.CheatsheetMetadata{}, fmt.Errorf("create: level: %w", err)
	}
	if meta.Level, err = ParseLevel(level); err != nil {
		return resource.CheatsheetMetadata{}, err
	}
	lang, err := p.Ask("Language")
	if err != nil {
		return resource.CheatsheetMetadata{}, fmt.Errorf("create: language: %w", err)
	}
	meta.Language = resource.LanguageFromString(lang)
	if meta.Icon, err = prompt.AskDefault(p, "Icon", meta.Language.IconSuggestion()); err != nil {
		return resource.CheatsheetMetadata{}, fmt.Errorf("create: icon: %w", err)
	}
	return meta, nil
}

// ParseLevel reads a difficulty tier. Blank means 0.
func ParseLevel(s string) (uint8, error) {
	if s == "" {
		return 0, nil
	}
	n, err := cast.ToUint64E(s)
	if err != nil || n > math.MaxUint8 {
		return 0, fmt.Errorf("create: level %q: must be a number from 0 to %d", s, math.MaxUint8)
	}
	return uint8(n), nil
}

// Guide asks for the fields of a new guide project rooted in dir.
func Guide(p prompt.Prompter, dir string) (guide.Book, error) {
	var b guide.Book
	var err error
	if b.Title, err = p.Ask("Title"); err != nil {
		return guide.Book{}, fmt.Errorf("create: title: %w", err)
	}
	authors, err := p.Ask("Authors (comma separated)")
	if err != nil {
		return guide.Book{}, fmt.Errorf("create: authors: %w", err)
	}
	b.Authors = resource.SplitList(authors)
	if b.Description, err = p.Ask("Description"); err != nil {
		return guide.Book{}, fmt.Errorf("create: description: %w", err)
	}
	if b.Root, err = prompt.AskDefault(p, "Root Path", dir); err != nil {
		return guide.Book{}, fmt.Errorf("create: root path: %w", err)
	}
	return b, nil
}

// Body is the starting content of a new resource titled title.
func Body(title string) string {
	return "## " + title
}

// WriteArticle validates meta and writes a new article to dir. It returns
// the path written and never replaces an existing file.
func WriteArticle(store storage.Provider, dir string, meta resource.ArticleMetadata) (string, error) {
	if err := meta.Validate(); err != nil {
		return "", fmt.Errorf("create: article: %w", err)
	}
	return write(store, dir, resource.NewArticle(meta, Body(meta.Title)))
}

// WriteCheatsheet validates meta and writes a new cheatsheet to dir. It
// returns the path written and never replaces an existing file.
func WriteCheatsheet(store storage.Provider, dir string, meta resource.CheatsheetMetadata) (string, error) {
	if err := meta.Validate(); err != nil {
		return "", fmt.Errorf("create: cheatsheet: %w", err)
	}
	return write(store, dir, resource.NewCheatsheet(meta, Body(meta.Title)))
}

func write(store storage.Provider, dir string, r resource.Resource) (string, error) {
	path := filepath.Join(dir, resource.FileName(r))
	if err := storage.WriteNew(store, path, []byte(r.Markdown())); err != nil {
		return "", err
	}
	return path, nil
}
