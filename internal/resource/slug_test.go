package resource

import (
	"strings"
	"testing"
)

func TestSlugify_Deterministic(t *testing.T) {
	titles := []string{"Intro", "Rust Guide", "C++ & Go: a comparison", "a/b\\c", "..", "   ", "Ünïcödé title"}
	for _, title := range titles {
		t.Run(title, func(t *testing.T) {
			a, b := Slugify(title), Slugify(title)
			if a != b {
				t.Errorf("not deterministic: %q vs %q", a, b)
			}
			if !fileSafe(a) {
				t.Errorf("Slugify(%q) = %q is not file safe", title, a)
			}
			if strings.ContainsAny(a, " /\\") {
				t.Errorf("Slugify(%q) = %q contains separators", title, a)
			}
		})
	}
}

func TestSlugify_Lowercases(t *testing.T) {
	if got := Slugify("Intro"); got != "intro" {
		t.Errorf("Slugify(Intro) = %q, want intro", got)
	}
}

func TestFallbackSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Rust Guide", "rust-guide"},
		{"  C++ & Go: a comparison ", "c-go-a-comparison"},
		{"a/b\\c", "a-b-c"},
		{"2024", "2024"},
		{"", "untitled"},
		{"!!!", "untitled"},
	}
	for _, tt := range tests {
		if got := fallbackSlug(tt.in); got != tt.want {
			t.Errorf("fallbackSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
