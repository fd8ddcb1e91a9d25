package resource

import (
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ArticleMetadata is the header of an article.
type ArticleMetadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags,omitempty"`
	Icon        string   `json:"icon"`
}

// Validate checks metadata collected for a new article.
func (m ArticleMetadata) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Title, validation.Required),
		validation.Field(&m.Tags, validation.Each(validation.Required)),
	)
}

type articleHeader struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Author      string   `yaml:"author"`
	Tags        []string `yaml:"tags,omitempty"`
	Icon        string   `yaml:"icon"`
}

// Article is a short-form written resource.
type Article struct {
	meta    ArticleMetadata
	content string
}

// NewArticle builds an article from metadata and a markdown body.
func NewArticle(meta ArticleMetadata, content string) *Article {
	meta.Tags = cloneTags(meta.Tags)
	return &Article{meta: meta, content: content}
}

// ParseArticle reads an article from its on-disk form. Missing or malformed
// header fields take their zero values.
func ParseArticle(raw string) *Article {
	f, body := decodeHeader(raw)
	return NewArticle(ArticleMetadata{
		Title:       f.str("title"),
		Description: f.str("description"),
		Author:      f.str("author"),
		Tags:        f.list("tags"),
		Icon:        f.str("icon"),
	}, body)
}

func (a *Article) Kind() Kind     { return KindArticle }
func (a *Article) Title() string  { return a.meta.Title }
func (a *Article) Slug() string   { return Slugify(a.meta.Title) }
func (a *Article) Body() string   { return a.content }
func (a *Article) Tags() []string { return cloneTags(a.meta.Tags) }

// Metadata returns a copy of the header fields.
func (a *Article) Metadata() ArticleMetadata {
	m := a.meta
	m.Tags = cloneTags(m.Tags)
	return m
}

// Markdown renders the article with its header.
func (a *Article) Markdown() string {
	return renderHeader(articleHeader{
		Title:       a.meta.Title,
		Description: a.meta.Description,
		Author:      a.meta.Author,
		Tags:        a.meta.Tags,
		Icon:        a.meta.Icon,
	}, a.content)
}

func cloneTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	return slices.Clone(tags)
}
