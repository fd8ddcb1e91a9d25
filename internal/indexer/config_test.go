package indexer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/mokares/internal/testutil"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile)
	content := `readme = "README.md"
article = "articles"
cheatsheet = "cheatsheets"
guide = "guides"

[readme_conf]
header = "Docs"
license_info = "MIT"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got := LoadConfig(path, nil)
	want := testConfig()
	if got != want {
		t.Errorf("LoadConfig = %+v, want %+v", got, want)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	malformed := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(malformed, []byte("readme = [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "nope.toml")},
		{"malformed", malformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LoadConfig(tt.path, nil); got != (Config{}) {
				t.Errorf("LoadConfig = %+v, want zero Config", got)
			}
		})
	}
}

func TestInitConfig(t *testing.T) {
	dir, store := testutil.TestWorkspace(t)

	if err := InitConfig(store, DefaultConfigFile); err != nil {
		t.Fatal(err)
	}
	first := testutil.ReadFile(t, dir, DefaultConfigFile)

	// Overwrites whatever was there, byte for byte the same.
	testutil.WriteTree(t, dir, map[string]string{DefaultConfigFile: "garbage"})
	if err := InitConfig(store, DefaultConfigFile); err != nil {
		t.Fatal(err)
	}
	second := testutil.ReadFile(t, dir, DefaultConfigFile)
	if first != second {
		t.Errorf("InitConfig not idempotent:\n%s\n---\n%s", first, second)
	}

	for _, key := range []string{"readme", "article", "cheatsheet", "guide", "[readme_conf]", "header", "license_info"} {
		if !bytes.Contains([]byte(first), []byte(key)) {
			t.Errorf("default config missing %q:\n%s", key, first)
		}
	}

	if got := LoadConfig(filepath.Join(dir, DefaultConfigFile), nil); got != (Config{}) {
		t.Errorf("reloaded default config = %+v, want zero Config", got)
	}
}

func TestReadmeConf_String(t *testing.T) {
	tests := []struct {
		name string
		conf ReadmeConf
		want string
	}{
		{"without subheader", ReadmeConf{Header: "Docs", LicenseInfo: "MIT"}, "# Docs\n> MIT"},
		{"with subheader", ReadmeConf{Header: "Docs", Subheader: "All of it", LicenseInfo: "MIT"}, "# Docs\n## All of it\n> MIT"},
		{"zero", ReadmeConf{}, "# \n> "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.conf.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfig_RequirePaths(t *testing.T) {
	if err := testConfig().RequirePaths(); err != nil {
		t.Errorf("complete config: %v", err)
	}
	cfg := testConfig()
	cfg.Guide = ""
	if err := cfg.RequirePaths(); err == nil {
		t.Error("expected error for missing guide path")
	}
	if err := (Config{}).RequirePaths(); err == nil {
		t.Error("expected error for zero config")
	}
}

func TestLoadConfig_ExpandsPathsOnly(t *testing.T) {
	t.Setenv("MOKARES_CONTENT", "content")
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	content := `readme = "README.md"
article = "${MOKARES_CONTENT}/articles"
cheatsheet = "$MOKARES_CONTENT/cheatsheets"
guide = "guides"

[readme_conf]
header = "Docs for $HOME"
license_info = "Price $5"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got := LoadConfig(path, nil)
	if got.Article != "content/articles" || got.Cheatsheet != "content/cheatsheets" {
		t.Errorf("paths not expanded: %+v", got)
	}
	if got.ReadmeConf.Header != "Docs for $HOME" || got.ReadmeConf.LicenseInfo != "Price $5" {
		t.Errorf("readme text rewritten: %+v", got.ReadmeConf)
	}
}
