package indexer

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/mokares/internal/storage"
	pkgconfig "github.com/starford/mokares/pkg/config"
)

// DefaultConfigFile is the well-known location of the indexer configuration.
const DefaultConfigFile = "indexer.toml"

// ReadmeConf is the header block of the generated README.
type ReadmeConf struct {
	Header      string `toml:"header" json:"header"`
	Subheader   string `toml:"subheader,omitempty" json:"subheader,omitempty"`
	LicenseInfo string `toml:"license_info" json:"license_info"`
}

// String renders the header block. The subheader line is emitted only when
// a subheader is set.
func (r ReadmeConf) String() string {
	lines := []string{"# " + r.Header}
	if r.Subheader != "" {
		lines = append(lines, "## "+r.Subheader)
	}
	lines = append(lines, "> "+r.LicenseInfo)
	return strings.Join(lines, "\n")
}

// Config is the persisted indexer configuration. Paths are relative to the
// working directory.
type Config struct {
	Readme     string     `toml:"readme" json:"readme"`
	Article    string     `toml:"article" json:"article"`
	Cheatsheet string     `toml:"cheatsheet" json:"cheatsheet"`
	Guide      string     `toml:"guide" json:"guide"`
	GuideBase  string     `toml:"guide_base,omitempty" json:"guide_base,omitempty"`
	ReadmeConf ReadmeConf `toml:"readme_conf" json:"readme_conf"`
}

// RequirePaths reports which of the paths a build needs are missing.
func (c Config) RequirePaths() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Readme, validation.Required),
		validation.Field(&c.Article, validation.Required),
		validation.Field(&c.Cheatsheet, validation.Required),
		validation.Field(&c.Guide, validation.Required),
	)
}

// LoadConfig reads the configuration at path. Any read or decode failure
// yields the zero Config, so a fresh checkout runs without prior setup.
// Environment references are expanded in the path fields only.
func LoadConfig(path string, logger *slog.Logger) Config {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var cfg Config
	if err := pkgconfig.Load(path, &cfg); err != nil {
		level := slog.LevelWarn
		if errors.Is(err, fs.ErrNotExist) {
			level = slog.LevelDebug
		}
		logger.Log(context.Background(), level, "config: using defaults",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return Config{}
	}
	// Only paths may reference the environment; README text is literal.
	pkgconfig.ExpandEnv(&cfg.Readme, &cfg.Article, &cfg.Cheatsheet, &cfg.Guide, &cfg.GuideBase)
	return cfg
}

// InitConfig writes the all-default configuration to path, replacing any
// existing file. Repeated calls produce identical bytes.
func InitConfig(store storage.Provider, path string) error {
	data, err := pkgconfig.Encode(Config{})
	if err != nil {
		return err
	}
	return store.Write(path, data)
}
