// Package internal wires the mokares components into the commands the CLI
// exposes.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/starford/mokares/internal/create"
	"github.com/starford/mokares/internal/guide"
	"github.com/starford/mokares/internal/indexer"
	"github.com/starford/mokares/internal/mcpserver"
	"github.com/starford/mokares/internal/scanner"
	"github.com/starford/mokares/internal/storage"
)

// ErrNoPrompter is returned by the creation commands when no prompter is set.
var ErrNoPrompter = errors.New("no prompter configured")

// App runs the mokares commands against one working directory.
type App struct {
	application
	store *storage.FS
	cfg   indexer.Config
	ix    *indexer.Indexer
}

// New loads the indexer configuration and builds the components. A missing
// or malformed configuration file yields the defaults.
func New(opts ...Option) (*App, error) {
	a := application{
		configPath: indexer.DefaultConfigFile,
		workDir:    ".",
		stdout:     os.Stdout,
	}
	for _, opt := range opts {
		opt(&a)
	}
	if a.logger == nil {
		a.logger = slog.New(slog.DiscardHandler)
	}

	store, err := storage.NewFS(a.workDir)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	cfg := indexer.LoadConfig(store.Abs(a.configPath), a.logger)
	root := store.Abs(".")
	sc := scanner.New(os.DirFS(root), scanner.WithBaseDir(root), scanner.WithLogger(a.logger))

	a.logger.Debug("configuration loaded",
		slog.String("config", a.configPath),
		slog.String("readme", cfg.Readme),
		slog.String("article", cfg.Article),
		slog.String("cheatsheet", cfg.Cheatsheet),
		slog.String("guide", cfg.Guide))

	return &App{
		application: a,
		store:       store,
		cfg:         cfg,
		ix:          indexer.New(cfg, sc, store, a.logger),
	}, nil
}

// BuildIndex builds the README. With toStdout the document is printed
// instead of written to the configured README file.
func (a *App) BuildIndex(ctx context.Context, toStdout bool) error {
	if err := a.cfg.RequirePaths(); err != nil {
		return fmt.Errorf("%s: %w", a.configPath, err)
	}
	if toStdout {
		doc, err := a.ix.Build(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.stdout, doc)
		return err
	}
	_, err := a.ix.Write(ctx)
	return err
}

// InitIndexer writes the default configuration file, replacing any
// existing one.
func (a *App) InitIndexer() error {
	if err := indexer.InitConfig(a.store, a.configPath); err != nil {
		return err
	}
	a.logger.Info("indexer config written", slog.String("path", a.configPath))
	fmt.Fprintf(a.stdout, "Created %s\n", a.configPath)
	return nil
}

// NewArticle asks for the fields of an article and writes it to dir.
func (a *App) NewArticle(dir string) (string, error) {
	if a.prompter == nil {
		return "", ErrNoPrompter
	}
	meta, err := create.Article(a.prompter)
	if err != nil {
		return "", err
	}
	return a.created(create.WriteArticle(a.store, dir, meta))
}

// NewCheatsheet asks for the fields of a cheatsheet and writes it to dir.
func (a *App) NewCheatsheet(dir string) (string, error) {
	if a.prompter == nil {
		return "", ErrNoPrompter
	}
	meta, err := create.Cheatsheet(a.prompter)
	if err != nil {
		return "", err
	}
	return a.created(create.WriteCheatsheet(a.store, dir, meta))
}

// NewGuide asks for the fields of a guide and scaffolds its project. dir is
// offered as the default root.
func (a *App) NewGuide(dir string) (string, error) {
	if a.prompter == nil {
		return "", ErrNoPrompter
	}
	book, err := create.Guide(a.prompter, dir)
	if err != nil {
		return "", err
	}
	return a.created(guide.Scaffold(a.store, book))
}

func (a *App) created(path string, err error) (string, error) {
	if err != nil {
		return "", err
	}
	a.logger.Info("resource created", slog.String("path", path))
	fmt.Fprintf(a.stdout, "Created %s\n", path)
	return path, nil
}

// Watch rebuilds the README on every change until ctx is cancelled or the
// process receives SIGINT or SIGTERM.
func (a *App) Watch(ctx context.Context) error {
	if err := a.cfg.RequirePaths(); err != nil {
		return fmt.Errorf("%s: %w", a.configPath, err)
	}

	g, gCtx := errgroup.WithContext(ctx)
	watchCtx, cancel := context.WithCancel(gCtx)
	defer cancel()

	g.Go(func() error {
		defer cancel()
		return a.ix.Watch(watchCtx, nil)
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			a.logger.Info("received shutdown signal", slog.String("signal", sig.String()))
		case <-watchCtx.Done():
		}
		cancel()
		return nil
	})

	return g.Wait()
}

// ServeMCP serves the MCP tools on stdin/stdout until the client hangs up.
func (a *App) ServeMCP() error {
	a.logger.Info("mcp server starting", slog.String("transport", "stdio"))
	return mcpserver.New(a.ix, storage.Confine(a.store), a.logger).ServeStdio()
}

