package resource

import "strings"

// Language is the programming language a cheatsheet covers.
type Language int

const (
	LanguageOther Language = iota
	LanguageBash
	LanguageC
	LanguageCpp
	LanguageCSharp
	LanguageGo
	LanguageHaskell
	LanguageJava
	LanguageJavaScript
	LanguageKotlin
	LanguagePython
	LanguageRuby
	LanguageRust
	LanguageSQL
	LanguageSwift
	LanguageTypeScript
	LanguageZig
)

var languageTags = [...]string{
	LanguageOther:      "other",
	LanguageBash:       "bash",
	LanguageC:          "c",
	LanguageCpp:        "cpp",
	LanguageCSharp:     "csharp",
	LanguageGo:         "go",
	LanguageHaskell:    "haskell",
	LanguageJava:       "java",
	LanguageJavaScript: "javascript",
	LanguageKotlin:     "kotlin",
	LanguagePython:     "python",
	LanguageRuby:       "ruby",
	LanguageRust:       "rust",
	LanguageSQL:        "sql",
	LanguageSwift:      "swift",
	LanguageTypeScript: "typescript",
	LanguageZig:        "zig",
}

var languageIcons = [...]string{
	LanguageOther:      "fa-solid fa-code",
	LanguageBash:       "devicon-bash-plain",
	LanguageC:          "devicon-c-plain",
	LanguageCpp:        "devicon-cplusplus-plain",
	LanguageCSharp:     "devicon-csharp-plain",
	LanguageGo:         "devicon-go-original-wordmark",
	LanguageHaskell:    "devicon-haskell-plain",
	LanguageJava:       "devicon-java-plain",
	LanguageJavaScript: "devicon-javascript-plain",
	LanguageKotlin:     "devicon-kotlin-plain",
	LanguagePython:     "devicon-python-plain",
	LanguageRuby:       "devicon-ruby-plain",
	LanguageRust:       "devicon-rust-original",
	LanguageSQL:        "devicon-azuresqldatabase-plain",
	LanguageSwift:      "devicon-swift-plain",
	LanguageTypeScript: "devicon-typescript-plain",
	LanguageZig:        "devicon-zig-original",
}

var languageAliases = map[string]Language{
	"c++":    LanguageCpp,
	"c#":     LanguageCSharp,
	"cs":     LanguageCSharp,
	"golang": LanguageGo,
	"hs":     LanguageHaskell,
	"js":     LanguageJavaScript,
	"kt":     LanguageKotlin,
	"py":     LanguagePython,
	"rb":     LanguageRuby,
	"rs":     LanguageRust,
	"sh":     LanguageBash,
	"shell":  LanguageBash,
	"ts":     LanguageTypeScript,
}

var languageByTag = func() map[string]Language {
	m := make(map[string]Language, len(languageTags)+len(languageAliases))
	for l, tag := range languageTags {
		m[tag] = Language(l)
	}
	for alias, l := range languageAliases {
		m[alias] = l
	}
	return m
}()

// LanguageFromString looks a language up by tag or common alias, ignoring
// case and surrounding space. Unknown names map to LanguageOther.
func LanguageFromString(s string) Language {
	if l, ok := languageByTag[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l
	}
	return LanguageOther
}

// Languages lists every supported language except LanguageOther.
func Languages() []Language {
	out := make([]Language, 0, len(languageTags)-1)
	for l := range languageTags {
		if Language(l) != LanguageOther {
			out = append(out, Language(l))
		}
	}
	return out
}

// String returns the canonical lowercase tag.
func (l Language) String() string {
	if l < 0 || int(l) >= len(languageTags) {
		return languageTags[LanguageOther]
	}
	return languageTags[l]
}

// IconSuggestion returns the default icon identifier offered when creating
// a cheatsheet for l.
func (l Language) IconSuggestion() string {
	if l < 0 || int(l) >= len(languageIcons) {
		return languageIcons[LanguageOther]
	}
	return languageIcons[l]
}

// MarshalText implements encoding.TextMarshaler.
func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails.
func (l *Language) UnmarshalText(text []byte) error {
	*l = LanguageFromString(string(text))
	return nil
}
