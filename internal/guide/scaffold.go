package guide

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pelletier/go-toml/v2"

	"github.com/starford/mokares/internal/apperr"
	"github.com/starford/mokares/internal/storage"
)

// Book describes a guide project to scaffold.
type Book struct {
	Title       string
	Authors     []string
	Description string
	Root        string // parent directory; the project is created at Root/Title
}

// Validate checks the book before anything is written.
func (b Book) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Title, validation.Required, validation.By(singleSegment)),
		validation.Field(&b.Authors, validation.Each(validation.Required)),
	)
}

func singleSegment(v any) error {
	s, _ := v.(string)
	if strings.ContainsAny(s, `/\`) || s == "." || s == ".." {
		return errors.New("must be a single directory name")
	}
	return nil
}

// Dir returns the project directory of b.
func (b Book) Dir() string {
	root := b.Root
	if root == "" {
		root = "."
	}
	return filepath.Join(root, b.Title)
}

type bookConfig struct {
	Book   bookSection   `toml:"book"`
	Output outputSection `toml:"output"`
}

type bookSection struct {
	Title        string   `toml:"title"`
	Authors      []string `toml:"authors"`
	Description  string   `toml:"description,omitempty"`
	Language     string   `toml:"language"`
	Multilingual bool     `toml:"multilingual"`
	Src          string   `toml:"src"`
}

type outputSection struct {
	HTML htmlSection `toml:"html"`
}

type htmlSection struct {
	DefaultTheme      string            `toml:"default-theme"`
	GitRepositoryIcon string            `toml:"git-repository-icon"`
	CurlyQuotes       bool              `toml:"curly-quotes"`
	MathjaxSupport    bool              `toml:"mathjax-support"`
	CopyFonts         bool              `toml:"copy-fonts"`
	NoSectionLabel    bool              `toml:"no-section-label"`
	Playground        playgroundSection `toml:"playground"`
}

type playgroundSection struct {
	Editable    bool `toml:"editable"`
	Copyable    bool `toml:"copyable"`
	CopyJS      bool `toml:"copy-js"`
	LineNumbers bool `toml:"line-numbers"`
	Runnable    bool `toml:"runnable"`
}

func newBookConfig(b Book) bookConfig {
	authors := b.Authors
	if authors == nil {
		authors = []string{}
	}
	return bookConfig{
		Book: bookSection{
			Title:       b.Title,
			Authors:     authors,
			Description: b.Description,
			Language:    "en",
			Src:         "src",
		},
		Output: outputSection{
			HTML: htmlSection{
				DefaultTheme:      "rust",
				GitRepositoryIcon: "fa-github",
				CurlyQuotes:       true,
				CopyFonts:         true,
				Playground: playgroundSection{
					Copyable: true,
					CopyJS:   true,
					Runnable: true,
				},
			},
		},
	}
}

const (
	summaryMD = "# Summary\n\n- [Chapter 1](./chapter_1.md)\n"
	chapterMD = "# Chapter 1\n"
	gitignore = "book\n"
)

// Scaffold creates the skeleton of a guide project and returns its
// directory. An existing book.toml is never replaced; other skeleton files
// are only written when missing.
func Scaffold(store storage.Provider, b Book) (string, error) {
	if err := b.Validate(); err != nil {
		return "", fmt.Errorf("guide: %w", err)
	}
	dir := b.Dir()

	cfg, err := toml.Marshal(newBookConfig(b))
	if err != nil {
		return "", fmt.Errorf("guide: encode book.toml: %w", err)
	}
	if err := storage.WriteNew(store, filepath.Join(dir, "book.toml"), cfg); err != nil {
		return "", err
	}

	skeleton := []struct {
		path    string
		content string
	}{
		{filepath.Join(dir, "src", "SUMMARY.md"), summaryMD},
		{filepath.Join(dir, "src", "chapter_1.md"), chapterMD},
		{filepath.Join(dir, ".gitignore"), gitignore},
	}
	for _, f := range skeleton {
		err := storage.WriteNew(store, f.path, []byte(f.content))
		if err != nil && !errors.Is(err, apperr.ErrAlreadyExists) {
			return "", err
		}
	}
	return dir, nil
}
