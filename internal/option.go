package internal

import (
	"io"
	"log/slog"

	"github.com/starford/mokares/internal/prompt"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	configPath string
	workDir    string
	logger     *slog.Logger
	prompter   prompt.Prompter
	stdout     io.Writer
}

// WithConfigPath sets the indexer configuration file. Relative paths are
// resolved against the working directory.
func WithConfigPath(path string) Option {
	return func(a *application) {
		a.configPath = path
	}
}

// WithWorkDir sets the directory every relative path is resolved against.
func WithWorkDir(dir string) Option {
	return func(a *application) {
		a.workDir = dir
	}
}

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *application) {
		a.logger = l
	}
}

// WithPrompter sets where the creation commands collect answers from.
func WithPrompter(p prompt.Prompter) Option {
	return func(a *application) {
		a.prompter = p
	}
}

// WithStdout sets where command output is written.
func WithStdout(w io.Writer) Option {
	return func(a *application) {
		a.stdout = w
	}
}
