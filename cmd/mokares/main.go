package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/mokares/internal"
	"github.com/starford/mokares/internal/indexer"
	"github.com/starford/mokares/internal/prompt"
)

// newApp builds the application from the global flags.
func newApp(cmd *cli.Command, opts ...internal.Option) (*internal.App, error) {
	logger, err := internal.NewLogger(internal.LogConfig{
		Level:  cmd.String("log-level"),
		Output: os.Stderr,
	})
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	opts = append([]internal.Option{
		internal.WithConfigPath(cmd.String("config")),
		internal.WithLogger(logger),
		internal.WithPrompter(prompt.NewLine(os.Stdin, os.Stdout)),
	}, opts...)

	app, err := internal.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("app init error: %w", err)
	}
	return app, nil
}

func dirFlag(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:  "dir",
		Usage: usage,
		Value: ".",
	}
}

// createAction adapts one of the App creation methods to a command action.
func createAction(create func(*internal.App, string) (string, error)) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		_, err = create(app, cmd.String("dir"))
		return err
	}
}

func main() {
	cmd := &cli.Command{
		Name:  "mokares",
		Usage: "Create articles, cheatsheets and guides, and index them into a README",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to the indexer config file",
				DefaultText: indexer.DefaultConfigFile,
				Value:       indexer.DefaultConfigFile,
				Sources:     cli.EnvVars("MOKARES_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("MOKARES_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "new",
				Usage: "Create a new resource",
				Commands: []*cli.Command{
					{
						Name:   "article",
						Usage:  "Create a new article",
						Flags:  []cli.Flag{dirFlag("Directory to write the article to")},
						Action: createAction((*internal.App).NewArticle),
					},
					{
						Name:   "cheatsheet",
						Usage:  "Create a new cheatsheet",
						Flags:  []cli.Flag{dirFlag("Directory to write the cheatsheet to")},
						Action: createAction((*internal.App).NewCheatsheet),
					},
					{
						Name:   "guide",
						Usage:  "Scaffold a new guide project",
						Flags:  []cli.Flag{dirFlag("Default parent directory of the guide")},
						Action: createAction((*internal.App).NewGuide),
					},
					{
						Name:  "indexer",
						Usage: "Write a default indexer config file",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							app, err := newApp(cmd)
							if err != nil {
								return err
							}
							return app.InitIndexer()
						},
					},
				},
			},
			{
				Name:  "build-indexer",
				Usage: "Build the README index from the configured directories",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "stdout",
						Usage: "Print the index instead of writing the README",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					app, err := newApp(cmd)
					if err != nil {
						return err
					}
					return app.BuildIndex(ctx, cmd.Bool("stdout"))
				},
			},
			{
				Name:  "watch",
				Usage: "Rebuild the README whenever a resource changes",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					app, err := newApp(cmd)
					if err != nil {
						return err
					}
					return app.Watch(ctx)
				},
			},
			{
				Name:  "mcp",
				Usage: "Serve the MCP tools over stdio",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					app, err := newApp(cmd)
					if err != nil {
						return err
					}
					return app.ServeMCP()
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
