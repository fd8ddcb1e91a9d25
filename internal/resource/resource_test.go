package resource

import (
	"reflect"
	"strings"
	"testing"
)

func TestArticle_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		meta ArticleMetadata
		body string
	}{
		{
			name: "typical",
			meta: ArticleMetadata{Title: "Intro", Description: "Getting started", Author: "Jane", Tags: []string{"go", "basics"}, Icon: "fa-book"},
			body: "## Intro\n\nWelcome.\n",
		},
		{
			name: "no tags and empty body",
			meta: ArticleMetadata{Title: "Empty"},
			body: "",
		},
		{
			name: "yaml sensitive values",
			meta: ArticleMetadata{Title: "2024: a review", Description: "line one\nline two", Author: "yes", Tags: []string{"#hash", "a, b"}, Icon: "- dash"},
			body: "\nleading blank line\n---\nnot a header\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArticle(tt.meta, tt.body)
			got := ParseArticle(a.Markdown())
			if !reflect.DeepEqual(got.Metadata(), tt.meta) {
				t.Errorf("metadata = %#v, want %#v", got.Metadata(), tt.meta)
			}
			if got.Body() != tt.body {
				t.Errorf("body = %q, want %q", got.Body(), tt.body)
			}
		})
	}
}

func TestCheatsheet_RoundTrip(t *testing.T) {
	for _, lang := range append(Languages(), LanguageOther) {
		t.Run(lang.String(), func(t *testing.T) {
			meta := CheatsheetMetadata{
				Title:    "basics",
				Author:   "Sam",
				Level:    3,
				Language: lang,
				Icon:     lang.IconSuggestion(),
			}
			body := "## basics\n\n```sh\necho hi\n```\n"
			got := ParseCheatsheet(NewCheatsheet(meta, body).Markdown())
			if got.Metadata() != meta {
				t.Errorf("metadata = %#v, want %#v", got.Metadata(), meta)
			}
			if got.Body() != body {
				t.Errorf("body = %q, want %q", got.Body(), body)
			}
		})
	}
}

func TestCheatsheet_MaxLevel(t *testing.T) {
	meta := CheatsheetMetadata{Title: "deep", Level: 255, Language: LanguageRust, Icon: "x"}
	got := ParseCheatsheet(NewCheatsheet(meta, "").Markdown())
	if got.Level() != 255 {
		t.Errorf("level = %d, want 255", got.Level())
	}
}

func TestArticle_MarkdownShape(t *testing.T) {
	a := NewArticle(ArticleMetadata{Title: "Intro", Author: "Jane", Tags: []string{"go"}}, "## Intro")
	got := a.Markdown()
	if !strings.HasPrefix(got, "---\ntitle: Intro\n") {
		t.Errorf("markdown should open with the header, got:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n---\n\n## Intro") {
		t.Errorf("header should close with one blank line before the body, got:\n%s", got)
	}
	if strings.Index(got, "author: Jane") < strings.Index(got, "title: Intro") {
		t.Errorf("title should be the first header field, got:\n%s", got)
	}
}

func TestParseArticle_NoHeader(t *testing.T) {
	raw := "# Just a heading\nSome text.\n"
	a := ParseArticle(raw)
	if a.Title() != "" {
		t.Errorf("title = %q, want empty", a.Title())
	}
	if a.Body() != raw {
		t.Errorf("body = %q, want whole input", a.Body())
	}
}

func TestParseArticle_UnclosedHeader(t *testing.T) {
	raw := "---\ntitle: Dangling\nno closing fence\n"
	a := ParseArticle(raw)
	if a.Title() != "" || a.Body() != raw {
		t.Errorf("got title %q body %q", a.Title(), a.Body())
	}
}

func TestParseArticle_InvalidYAMLFallback(t *testing.T) {
	a := ParseArticle("---\n: invalid: yaml: {{{\n---\n\nBody\n")
	if a.Title() != "" {
		t.Errorf("title = %q, want empty", a.Title())
	}
	if a.Body() != "Body\n" {
		t.Errorf("body = %q, want %q", a.Body(), "Body\n")
	}
}

func TestParseArticle_LenientFields(t *testing.T) {
	raw := "---\ntitle: 42\ntags: go, rust ,\nauthor:\n  nested: map\n---\n\nbody"
	a := ParseArticle(raw)
	m := a.Metadata()
	if m.Title != "42" {
		t.Errorf("title = %q, want %q", m.Title, "42")
	}
	if !reflect.DeepEqual(m.Tags, []string{"go", "rust"}) {
		t.Errorf("tags = %v, want [go rust]", m.Tags)
	}
	if m.Author != "" {
		t.Errorf("author = %q, want empty for mistyped value", m.Author)
	}
	if a.Body() != "body" {
		t.Errorf("body = %q", a.Body())
	}
}

func TestParseCheatsheet_LenientFields(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  uint8
	}{
		{"numeric", "4", 4},
		{"quoted", `"7"`, 7},
		{"word", "three", 0},
		{"negative", "-1", 0},
		{"overflow", "300", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ParseCheatsheet("---\ntitle: t\nlevel: " + tt.level + "\nlanguage: RUST\n---\n\n")
			if c.Level() != tt.want {
				t.Errorf("level = %d, want %d", c.Level(), tt.want)
			}
			if c.Language() != LanguageRust {
				t.Errorf("language = %v, want rust", c.Language())
			}
		})
	}
}

func TestParseCheatsheet_CRLF(t *testing.T) {
	c := ParseCheatsheet("---\r\ntitle: basics\r\nlanguage: go\r\n---\r\n\r\n## basics\r\n")
	if c.Title() != "basics" || c.Language() != LanguageGo {
		t.Errorf("title %q language %v", c.Title(), c.Language())
	}
	if c.Body() != "## basics\r\n" {
		t.Errorf("body = %q", c.Body())
	}
}

func TestParse_Dispatch(t *testing.T) {
	r, err := Parse(KindCheatsheet, "---\ntitle: basics\n---\n\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if r.Kind() != KindCheatsheet || r.Title() != "basics" {
		t.Errorf("got %v %q", r.Kind(), r.Title())
	}
	if _, err := Parse("guide", ""); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestFileName(t *testing.T) {
	a := NewArticle(ArticleMetadata{Title: "Intro"}, "")
	if got := FileName(a); got != "intro.md" {
		t.Errorf("FileName = %q, want intro.md", got)
	}
}

func TestArticle_Immutable(t *testing.T) {
	tags := []string{"go"}
	a := NewArticle(ArticleMetadata{Title: "x", Tags: tags}, "")
	tags[0] = "changed"
	a.Metadata().Tags[0] = "changed"
	a.Tags()[0] = "changed"
	if a.Tags()[0] != "go" {
		t.Errorf("tags mutated: %v", a.Tags())
	}
}

func TestMetadataValidate(t *testing.T) {
	if err := (ArticleMetadata{}).Validate(); err == nil || !strings.Contains(err.Error(), "title") {
		t.Errorf("article err = %v, want title error", err)
	}
	if err := (ArticleMetadata{Title: "x", Tags: []string{"ok", ""}}).Validate(); err == nil {
		t.Error("expected error for empty tag")
	}
	if err := (ArticleMetadata{Title: "x", Tags: []string{"ok"}}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (CheatsheetMetadata{Title: "x"}).Validate(); err == nil {
		t.Error("expected error for missing icon")
	}
	if err := (CheatsheetMetadata{Title: "x", Icon: "i"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRenderHeader_Complete(t *testing.T) {
	meta := CheatsheetMetadata{
		Title:    "key: \"value\"\nsecond line",
		Author:   "- not a list",
		Level:    255,
		Language: LanguageZig,
		Icon:     "#hash",
	}
	out := renderHeader(cheatsheetHeader{
		Title:    meta.Title,
		Author:   meta.Author,
		Level:    meta.Level,
		Language: meta.Language.String(),
		Icon:     meta.Icon,
	}, "body")
	if !strings.HasSuffix(out, "---\n\nbody") {
		t.Fatalf("header not closed:\n%s", out)
	}
	if got := ParseCheatsheet(out).Metadata(); got != meta {
		t.Errorf("metadata = %+v, want %+v", got, meta)
	}
}
