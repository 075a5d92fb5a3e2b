package app

import (
	"context"
	"fmt"

	"github.com/atelierkit/style-engine-go/internal/config"
	"github.com/atelierkit/style-engine-go/internal/domain"
	"github.com/atelierkit/style-engine-go/internal/server"
	"github.com/atelierkit/style-engine-go/internal/service/aggregator"
	"github.com/atelierkit/style-engine-go/internal/service/cache"
	"github.com/atelierkit/style-engine-go/internal/service/database"
	"github.com/atelierkit/style-engine-go/internal/service/extractor"
	"github.com/atelierkit/style-engine-go/internal/service/history"
	"github.com/atelierkit/style-engine-go/internal/service/industry"
	"github.com/atelierkit/style-engine-go/internal/service/insight"
	"github.com/atelierkit/style-engine-go/internal/service/matcher"
	"github.com/atelierkit/style-engine-go/internal/service/pairwise"
	"github.com/atelierkit/style-engine-go/internal/service/profile"
	"go.uber.org/zap"
)

// Container bundles the assembled services behind the HTTP surface.
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	Server *server.Server

	closers []func()
}

// Close tears down infrastructure connections in reverse build order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// Build assembles the full dependency graph. Redis and Postgres are optional
// backends: when either is unreachable the engine runs degraded (no snapshot
// cache, seed-only industry data) rather than refusing to start, because every
// profile is recomputable from the answer snapshot alone.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	// Cache and database
	cacheSvc, cacheErr := cache.NewService(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if cacheErr != nil {
		logger.Warn("Redis unavailable, running without snapshot cache", zap.Error(cacheErr))
		cacheSvc = nil
	} else {
		closers = append(closers, func() {
			_ = cacheSvc.Close()
		})
	}

	postgresSvc, pgErr := database.NewPostgresService(database.Config{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
	}, logger)
	if pgErr != nil {
		logger.Warn("PostgreSQL unavailable, industry aggregates run on seed data", zap.Error(pgErr))
		postgresSvc = nil
	} else {
		closers = append(closers, func() {
			_ = postgresSvc.Close()
		})
		if err = postgresSvc.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("failed to ensure database schema: %w", err)
		}
	}

	// Industry aggregates
	var industryRepo industry.Repository
	if postgresSvc != nil {
		industryRepo = industry.NewPostgresRepository(postgresSvc, logger)
	}
	industryStore := industry.NewStore(industryRepo, cacheSvc, logger)

	// Engine components
	pairwiseScorer := pairwise.NewScorer(pairwise.Params{
		RecencyBase:     cfg.Engine.RecencyBase,
		ConfidenceFloor: cfg.Engine.ConfidenceFloor,
	}, domain.ComparisonCatalogue, logger)

	reportCache, err := insight.NewReportCache(cfg.Engine.InsightsLRUSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create insights cache: %w", err)
	}

	profileSvc := profile.NewService(profile.Dependencies{
		Extractor:   extractor.New(logger),
		Aggregator:  aggregator.New(aggregator.Params{ConfidenceGain: cfg.Engine.ConfidenceGain}, logger),
		Pairwise:    pairwiseScorer,
		Matcher:     matcher.New(domain.ArchetypeCatalogue, logger),
		Insights:    insight.New(logger),
		ReportCache: reportCache,
		History:     history.New(logger),
		Industry:    industryStore,
		Cache:       cacheSvc,
		ProfileTTL:  cfg.Engine.ProfileCacheTTL,
		Logger:      logger,
	})

	srv := server.New(cfg.Server, server.Dependencies{
		Profiles: profileSvc,
		Cache:    cacheSvc,
		Postgres: postgresSvc,
		Logger:   logger,
	})

	return &Container{
		Config:  cfg,
		Logger:  logger,
		Server:  srv,
		closers: closers,
	}, nil
}
