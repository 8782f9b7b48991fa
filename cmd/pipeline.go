package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kfreiman/hirecheck/internal/assessment"
	"github.com/kfreiman/hirecheck/internal/ingest"
	"github.com/kfreiman/hirecheck/internal/screening"
	"github.com/kfreiman/hirecheck/internal/storage"
	"github.com/kfreiman/hirecheck/internal/textmatch"
)

// pipeline bundles what the offline commands need to ingest and assess documents
type pipeline struct {
	ingestor *ingest.DocumentIngestor
	screener *screening.Screener
}

func newPipeline(logger *slog.Logger) (*pipeline, error) {
	cfg, err := loadServerConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	ttl, err := time.ParseDuration(cfg.StorageTTL)
	if err != nil {
		return nil, fmt.Errorf("parse TTL: %w", err)
	}

	storageManager, err := storage.NewStorageManager(storage.StorageConfig{
		BasePath:   cfg.StoragePath,
		DefaultTTL: ttl,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("storage init: %w", err)
	}

	engineCfg, err := assessment.LoadConfig(cfg.EngineConfig)
	if err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	engine, err := assessment.NewEngine(engineCfg)
	if err != nil {
		return nil, fmt.Errorf("engine init: %w", err)
	}
	engine.WithLogger(logger).WithTermAnalyzer(textmatch.NewAnalyzer().WithLogger(logger))

	return &pipeline{
		ingestor: ingest.NewIngestorWithConfig(ingest.IngestorConfig{
			StorageManager: storageManager,
			Logger:         logger,
		}),
		screener: screening.NewScreener(engine, storageManager).WithLogger(logger),
	}, nil
}
