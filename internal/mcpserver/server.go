// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the mokares index and resource tools via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/mokares/internal/apperr"
	"github.com/starford/mokares/internal/create"
	"github.com/starford/mokares/internal/indexer"
	"github.com/starford/mokares/internal/resource"
	"github.com/starford/mokares/internal/storage"
)

// Version is reported to MCP clients.
const Version = "0.1.0"

// Server wraps the MCP server with mokares tools.
type Server struct {
	mcp    *server.MCPServer
	ix     *indexer.Indexer
	store  storage.Provider
	logger *slog.Logger
}

// New creates a new MCP server with all mokares tools registered. store
// serves the read and create tools and should be confined to the workspace
// (see storage.Confine).
func New(ix *indexer.Indexer, store storage.Provider, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{ix: ix, store: store, logger: logger}

	s.mcp = server.NewMCPServer(
		"mokares",
		Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("build_index",
		mcp.WithDescription("Build the README index from the configured article, cheatsheet and guide "+
			"directories and return it without writing anything."),
	), s.buildIndex)

	s.mcp.AddTool(mcp.NewTool("write_index",
		mcp.WithDescription("Build the README index and replace the configured README file with it."),
	), s.writeIndex)

	s.mcp.AddTool(mcp.NewTool("list_articles",
		mcp.WithDescription("List every article with its path and metadata as JSON."),
	), s.listArticles)

	s.mcp.AddTool(mcp.NewTool("list_cheatsheets",
		mcp.WithDescription("List every cheatsheet with its path and metadata as JSON."),
	), s.listCheatsheets)

	s.mcp.AddTool(mcp.NewTool("list_guides",
		mcp.WithDescription("List every guide with its repository name and address as JSON."),
	), s.listGuides)

	s.mcp.AddTool(mcp.NewTool("read_resource",
		mcp.WithDescription("Parse a resource file and return its metadata and body as JSON."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path of the markdown file (e.g. articles/intro.md)")),
		mcp.WithString("kind", mcp.Required(), mcp.Description("Resource kind"),
			mcp.Enum(string(resource.KindArticle), string(resource.KindCheatsheet))),
	), s.readResource)

	s.mcp.AddTool(mcp.NewTool("create_article",
		mcp.WithDescription("Create a new article named after the slug of its title. "+
			"Existing files are never replaced. Read the format first via get_resource_format "+
			"or the mokares://resource-format resource."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Article title")),
		mcp.WithString("description", mcp.Description("One-line summary")),
		mcp.WithString("author", mcp.Description("Author name")),
		mcp.WithString("tags", mcp.Description("Comma separated tags")),
		mcp.WithString("icon", mcp.Description("Icon class")),
		mcp.WithString("dir", mcp.Description("Target directory (defaults to the configured article root)")),
	), s.createArticle)

	s.mcp.AddTool(mcp.NewTool("create_cheatsheet",
		mcp.WithDescription("Create a new cheatsheet named after the slug of its title. "+
			"Existing files are never replaced."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Cheatsheet title")),
		mcp.WithString("author", mcp.Description("Author name")),
		mcp.WithString("level", mcp.Description("Difficulty tier from 0 to 255")),
		mcp.WithString("language", mcp.Description("Language tag (e.g. rust, go, python)")),
		mcp.WithString("icon", mcp.Description("Icon class (defaults to the language suggestion)")),
		mcp.WithString("dir", mcp.Description("Target directory (defaults to the configured cheatsheet root)")),
	), s.createCheatsheet)

	s.mcp.AddTool(mcp.NewTool("get_resource_format",
		mcp.WithDescription("Returns the resource format contract. "+
			"Call this before creating resources to ensure correct structure."),
	), s.getResourceFormat)

	s.mcp.AddResource(
		mcp.NewResource(ResourceFormatURI, "Resource Format Contract",
			mcp.WithResourceDescription("Markdown format shared by articles and cheatsheets."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readResourceFormat,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

type articleEntry struct {
	Path string `json:"path"`
	resource.ArticleMetadata
}

type cheatsheetEntry struct {
	Path string `json:"path"`
	resource.CheatsheetMetadata
}

type resourceView struct {
	Kind     resource.Kind `json:"kind"`
	Slug     string        `json:"slug"`
	Metadata any           `json:"metadata"`
	Body     string        `json:"body"`
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) buildIndex(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := s.ix.Build(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(doc), nil
}

func (s *Server) writeIndex(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := s.ix.Write(ctx); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("written: %s", s.ix.Config().Readme)), nil
}

func (s *Server) listArticles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := s.ix.Articles(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out := make([]articleEntry, 0, len(items))
	for _, it := range items {
		out = append(out, articleEntry{Path: it.Path, ArticleMetadata: it.Resource.Metadata()})
	}
	return jsonResult(out)
}

func (s *Server) listCheatsheets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := s.ix.Cheatsheets(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out := make([]cheatsheetEntry, 0, len(items))
	for _, it := range items {
		out = append(out, cheatsheetEntry{Path: it.Path, CheatsheetMetadata: it.Resource.Metadata()})
	}
	return jsonResult(out)
}

func (s *Server) listGuides(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	guides, err := s.ix.Guides()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if guides == nil {
		return mcp.NewToolResultText("[]"), nil
	}
	return jsonResult(guides)
}

func (s *Server) readResource(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	kind, err := req.RequireString("kind")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := s.store.Read(path)
	if errors.Is(err, apperr.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	r, err := resource.Parse(resource.Kind(kind), string(data))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	view := resourceView{Kind: r.Kind(), Slug: r.Slug(), Body: r.Body()}
	switch v := r.(type) {
	case *resource.Article:
		view.Metadata = v.Metadata()
	case *resource.Cheatsheet:
		view.Metadata = v.Metadata()
	}
	return jsonResult(view)
}

func (s *Server) createArticle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	meta := resource.ArticleMetadata{
		Title:       strings.TrimSpace(title),
		Description: req.GetString("description", ""),
		Author:      req.GetString("author", ""),
		Tags:        resource.SplitList(req.GetString("tags", "")),
		Icon:        req.GetString("icon", ""),
	}
	dir := req.GetString("dir", s.ix.Config().Article)
	if dir == "" {
		return mcp.NewToolResultError("dir is required: no article root configured"), nil
	}

	path, err := create.WriteArticle(s.store, dir, meta)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.logger.Info("mcp: article created", slog.String("path", path))
	return mcp.NewToolResultText(fmt.Sprintf("created: %s", path)), nil
}

func (s *Server) createCheatsheet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	level, err := create.ParseLevel(strings.TrimSpace(req.GetString("level", "")))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	lang := resource.LanguageFromString(req.GetString("language", ""))
	meta := resource.CheatsheetMetadata{
		Title:    strings.TrimSpace(title),
		Author:   req.GetString("author", ""),
		Level:    level,
		Language: lang,
		Icon:     req.GetString("icon", ""),
	}
	if meta.Icon == "" {
		meta.Icon = lang.IconSuggestion()
	}
	dir := req.GetString("dir", s.ix.Config().Cheatsheet)
	if dir == "" {
		return mcp.NewToolResultError("dir is required: no cheatsheet root configured"), nil
	}

	path, err := create.WriteCheatsheet(s.store, dir, meta)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.logger.Info("mcp: cheatsheet created", slog.String("path", path))
	return mcp.NewToolResultText(fmt.Sprintf("created: %s", path)), nil
}

func (s *Server) getResourceFormat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(ResourceFormatContract), nil
}

func (s *Server) readResourceFormat(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ResourceFormatURI,
			MIMEType: "text/markdown",
			Text:     ResourceFormatContract,
		},
	}, nil
}
