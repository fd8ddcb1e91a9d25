package resource

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CheatsheetMetadata is the header of a cheatsheet.
type CheatsheetMetadata struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Level    uint8    `json:"level"`
	Language Language `json:"language"`
	Icon     string   `json:"icon"`
}

// Validate checks metadata collected for a new cheatsheet.
func (m CheatsheetMetadata) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Title, validation.Required),
		validation.Field(&m.Icon, validation.Required),
	)
}

type cheatsheetHeader struct {
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Level    uint8  `yaml:"level"`
	Language string `yaml:"language"`
	Icon     string `yaml:"icon"`
}

// Cheatsheet is a language reference card.
type Cheatsheet struct {
	meta    CheatsheetMetadata
	content string
}

// NewCheatsheet builds a cheatsheet from metadata and a markdown body.
func NewCheatsheet(meta CheatsheetMetadata, content string) *Cheatsheet {
	return &Cheatsheet{meta: meta, content: content}
}

// ParseCheatsheet reads a cheatsheet from its on-disk form. Missing or
// malformed header fields take their zero values and an unknown language
// becomes LanguageOther.
func ParseCheatsheet(raw string) *Cheatsheet {
	f, body := decodeHeader(raw)
	return NewCheatsheet(CheatsheetMetadata{
		Title:    f.str("title"),
		Author:   f.str("author"),
		Level:    f.uint8("level"),
		Language: LanguageFromString(f.str("language")),
		Icon:     f.str("icon"),
	}, body)
}

func (c *Cheatsheet) Kind() Kind                   { return KindCheatsheet }
func (c *Cheatsheet) Title() string                { return c.meta.Title }
func (c *Cheatsheet) Slug() string                 { return Slugify(c.meta.Title) }
func (c *Cheatsheet) Body() string                 { return c.content }
func (c *Cheatsheet) Language() Language           { return c.meta.Language }
func (c *Cheatsheet) Level() uint8                 { return c.meta.Level }
func (c *Cheatsheet) Metadata() CheatsheetMetadata { return c.meta }

// Markdown renders the cheatsheet with its header.
func (c *Cheatsheet) Markdown() string {
	return renderHeader(cheatsheetHeader{
		Title:    c.meta.Title,
		Author:   c.meta.Author,
		Level:    c.meta.Level,
		Language: c.meta.Language.String(),
		Icon:     c.meta.Icon,
	}, c.content)
}
