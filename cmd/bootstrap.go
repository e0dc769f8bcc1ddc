package cmd

import (
	"fmt"

	"wordle-web/core/chunk"
	"wordle-web/core/config"
	"wordle-web/core/logger"
	"wordle-web/core/navigator"
	"wordle-web/core/storage"
	"wordle-web/feature/views"
	"wordle-web/web"

	"go.uber.org/zap"
)

// loadRuntime loads configuration and builds the logger shared by all commands.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}

// newChunkSource returns the source selected by chunks.source.
func newChunkSource(cfg *config.Config) (chunk.Source, error) {
	switch cfg.Chunks.Source {
	case chunk.SourceStorage:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return chunk.NewStorageSource(client, cfg.Storage.Bucket, cfg.Chunks.Prefix), nil
	default:
		return chunk.NewEmbedSource(web.Dist(), cfg.Chunks.Prefix), nil
	}
}

// newNavigator builds the route table. A misconfigured table is returned as
// an error and must abort startup.
func newNavigator(cfg *config.Config, logg *zap.Logger) (*navigator.Navigator, error) {
	src, err := newChunkSource(cfg)
	if err != nil {
		return nil, err
	}

	routes, err := views.Routes(views.Options{BasePath: cfg.Server.BasePath, Source: src})
	if err != nil {
		return nil, err
	}

	nav, err := navigator.New(routes,
		navigator.WithLogger(logg.Named("navigator")),
		navigator.WithLoadTimeout(cfg.Chunks.LoadTimeout()),
	)
	if err != nil {
		return nil, err
	}

	logg.Info("Route table ready",
		zap.Int("routes", len(routes)),
		zap.String("chunk_source", src.Name()))
	return nav, nil
}
