// Package indexer builds the README that lists every article, cheatsheet
// and guide of the corpus.
package indexer

import (
	"context"
	"log/slog"

	"github.com/starford/mokares/internal/guide"
	"github.com/starford/mokares/internal/resource"
	"github.com/starford/mokares/internal/scanner"
	"github.com/starford/mokares/internal/storage"
)

// Indexer drives one configuration through scan, parse and render.
type Indexer struct {
	cfg      Config
	scanner  *scanner.Scanner
	registry guide.Registry
	store    storage.Provider
	logger   *slog.Logger
}

// New creates an Indexer. Relative configuration paths are resolved by sc
// when scanning and by store when writing.
func New(cfg Config, sc *scanner.Scanner, store storage.Provider, logger *slog.Logger) *Indexer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Indexer{
		cfg:      cfg,
		scanner:  sc,
		registry: guide.NewRegistry(cfg.GuideBase),
		store:    store,
		logger:   logger,
	}
}

// Config returns the configuration in use.
func (ix *Indexer) Config() Config {
	return ix.cfg
}

// Articles parses every article under the article root.
func (ix *Indexer) Articles(ctx context.Context) ([]Located[*resource.Article], error) {
	return scan(ctx, ix.scanner, ix.cfg.Article, resource.ParseArticle)
}

// Cheatsheets parses every cheatsheet under the cheatsheet root.
func (ix *Indexer) Cheatsheets(ctx context.Context) ([]Located[*resource.Cheatsheet], error) {
	return scan(ctx, ix.scanner, ix.cfg.Cheatsheet, resource.ParseCheatsheet)
}

// Guides lists one entry per guide directory.
func (ix *Indexer) Guides() ([]guide.Entry, error) {
	names, err := ix.scanner.ChildDirNames(ix.cfg.Guide)
	if err != nil {
		return nil, err
	}
	return ix.registry.Build(names), nil
}

// Collect gathers the three collections and the header block.
func (ix *Indexer) Collect(ctx context.Context) (Document, error) {
	articles, err := ix.Articles(ctx)
	if err != nil {
		return Document{}, err
	}
	cheatsheets, err := ix.Cheatsheets(ctx)
	if err != nil {
		return Document{}, err
	}
	guides, err := ix.Guides()
	if err != nil {
		return Document{}, err
	}
	return Document{
		Readme:      ix.cfg.ReadmeConf,
		Articles:    articles,
		Cheatsheets: cheatsheets,
		Guides:      guides,
	}, nil
}

// Build renders the README in memory. Scan failures propagate unchanged.
func (ix *Indexer) Build(ctx context.Context) (string, error) {
	doc, err := ix.Collect(ctx)
	if err != nil {
		return "", err
	}
	ix.logger.Debug("index: collected",
		slog.Int("articles", len(doc.Articles)),
		slog.Int("cheatsheets", len(doc.Cheatsheets)),
		slog.Int("guides", len(doc.Guides)))
	return Render(doc), nil
}

// Write builds the README and replaces the configured file with it. Nothing
// is written unless the whole document was built.
func (ix *Indexer) Write(ctx context.Context) (string, error) {
	out, err := ix.Build(ctx)
	if err != nil {
		return "", err
	}
	if err := ix.store.Write(ix.cfg.Readme, []byte(out)); err != nil {
		return "", err
	}
	ix.logger.Info("index: readme written", slog.String("path", ix.cfg.Readme))
	return out, nil
}

func scan[T resource.Resource](ctx context.Context, sc *scanner.Scanner, root string, parse func(string) T) ([]Located[T], error) {
	files, err := sc.Files(ctx, root)
	if err != nil {
		return nil, err
	}
	out := make([]Located[T], len(files))
	for i, f := range files {
		out[i] = Located[T]{Resource: parse(f.Content), Path: f.Path}
	}
	return out, nil
}
