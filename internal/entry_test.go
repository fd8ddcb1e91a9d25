package internal

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/starford/mokares/internal/prompt"
	"github.com/starford/mokares/internal/testutil"
)

const testIndexerConfig = `readme = "README.md"
article = "articles"
cheatsheet = "cheatsheets"
guide = "guides"

[readme_conf]
header = "Docs"
license_info = "MIT"
`

func testApp(t *testing.T, files map[string]string, opts ...Option) (string, *App, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteTree(t, dir, files)

	var out bytes.Buffer
	opts = append([]Option{WithWorkDir(dir), WithStdout(&out)}, opts...)
	app, err := New(opts...)
	if err != nil {
		t.Fatal(err)
	}
	return dir, app, &out
}

func TestBuildIndex(t *testing.T) {
	files := map[string]string{
		"indexer.toml":       testIndexerConfig,
		"articles/intro.md":  "---\ntitle: Intro\n---\n\nHello\n",
		"cheatsheets/.keep":  "",
		"guides/g/book.toml": "",
	}
	want := "# Docs\n> MIT\n## Articles\n- [Intro](articles/intro.md)\n## Cheatsheets\n## Guides\n" +
		"- [g](https://github.com/Moka-Reads/g)"

	t.Run("stdout", func(t *testing.T) {
		dir, app, out := testApp(t, files)
		if err := app.BuildIndex(context.Background(), true); err != nil {
			t.Fatal(err)
		}
		if got := out.String(); got != want+"\n" {
			t.Errorf("stdout = %q, want %q", got, want+"\n")
		}
		if ok, _ := fileExists(dir, "README.md"); ok {
			t.Error("README written in stdout mode")
		}
	})

	t.Run("file", func(t *testing.T) {
		dir, app, _ := testApp(t, files)
		if err := app.BuildIndex(context.Background(), false); err != nil {
			t.Fatal(err)
		}
		if got := testutil.ReadFile(t, dir, "README.md"); got != want {
			t.Errorf("README = %q, want %q", got, want)
		}
	})
}

func TestBuildIndex_Unconfigured(t *testing.T) {
	_, app, _ := testApp(t, nil)
	err := app.BuildIndex(context.Background(), true)
	if err == nil {
		t.Fatal("expected error without configuration")
	}
	if !strings.Contains(err.Error(), "indexer.toml") {
		t.Errorf("error %q does not name the config file", err)
	}
}

func TestInitIndexer(t *testing.T) {
	dir, app, out := testApp(t, nil, WithConfigPath("conf/mokares.toml"))
	testutil.Mkdirs(t, dir, "conf")

	if err := app.InitIndexer(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "conf/mokares.toml") {
		t.Errorf("output = %q", out.String())
	}
	if got := testutil.ReadFile(t, dir, "conf/mokares.toml"); !strings.Contains(got, "[readme_conf]") {
		t.Errorf("config = %q", got)
	}
}

func TestNewArticle(t *testing.T) {
	p := &prompt.Scripted{Answers: []string{"Intro", "desc", "ann", "go", "fa-book"}}
	dir, app, out := testApp(t, nil, WithPrompter(p))

	path, err := app.NewArticle("articles")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join("articles", "intro.md") {
		t.Errorf("path = %q", path)
	}
	if !strings.HasPrefix(testutil.ReadFile(t, dir, "articles/intro.md"), "---\ntitle: Intro\n") {
		t.Error("article header not written")
	}
	if !strings.Contains(out.String(), "Created") {
		t.Errorf("output = %q", out.String())
	}
}

func TestNewCheatsheet(t *testing.T) {
	p := &prompt.Scripted{Answers: []string{"Basics", "ann", "1", "rust", ""}}
	dir, app, _ := testApp(t, nil, WithPrompter(p))

	if _, err := app.NewCheatsheet("."); err != nil {
		t.Fatal(err)
	}
	if got := testutil.ReadFile(t, dir, "basics.md"); !strings.Contains(got, "icon: devicon-rust-original\n") {
		t.Errorf("cheatsheet = %q", got)
	}
}

func TestNewGuide(t *testing.T) {
	p := &prompt.Scripted{Answers: []string{"book", "ann", "A guide", ""}}
	dir, app, _ := testApp(t, nil, WithPrompter(p))
	testutil.Mkdirs(t, dir, "guides")

	got, err := app.NewGuide("guides")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join("guides", "book") {
		t.Errorf("dir = %q", got)
	}
	if !strings.Contains(testutil.ReadFile(t, dir, "guides/book/book.toml"), `title = 'book'`) &&
		!strings.Contains(testutil.ReadFile(t, dir, "guides/book/book.toml"), `title = "book"`) {
		t.Error("book.toml does not carry the title")
	}
}

func TestNew_NoPrompter(t *testing.T) {
	_, app, _ := testApp(t, nil)
	if _, err := app.NewArticle("."); !errors.Is(err, ErrNoPrompter) {
		t.Errorf("err = %v, want ErrNoPrompter", err)
	}
}

func TestNew_MissingWorkDir(t *testing.T) {
	if _, err := New(WithWorkDir(filepath.Join(t.TempDir(), "nope"))); err == nil {
		t.Error("expected error for missing working directory")
	}
}

func TestWatch_StopsOnCancel(t *testing.T) {
	files := map[string]string{
		"indexer.toml":      testIndexerConfig,
		"articles/intro.md": "---\ntitle: Intro\n---\n",
	}
	dir, app, _ := testApp(t, files)
	testutil.Mkdirs(t, dir, "cheatsheets", "guides")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Watch(ctx) }()

	deadline := time.Now().Add(5 * time.Second)
	for {
		if ok, _ := fileExists(dir, "README.md"); ok {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("README not written by watcher")
		}
		time.Sleep(50 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func fileExists(dir, rel string) (bool, error) {
	_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}
