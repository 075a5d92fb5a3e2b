package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/atelierkit/style-engine-go/internal/config"
	"github.com/atelierkit/style-engine-go/internal/service/cache"
	"github.com/atelierkit/style-engine-go/internal/service/database"
	"github.com/atelierkit/style-engine-go/internal/service/profile"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server is the HTTP boundary between the engine and the surrounding
// onboarding application. It owns no engine semantics: handlers decode
// snapshots, call the profile service, and encode the result.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	profiles   *profile.Service
	cache      *cache.Service
	postgres   *database.PostgresService
	logger     *zap.Logger
}

type Dependencies struct {
	Profiles *profile.Service
	Cache    *cache.Service
	Postgres *database.PostgresService
	Logger   *zap.Logger
}

func New(cfg config.ServerConfig, deps Dependencies) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	if cfg.EnableCORS {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
		engine.Use(cors.New(corsConfig))
	}

	s := &Server{
		engine:   engine,
		profiles: deps.Profiles,
		cache:    deps.Cache,
		postgres: deps.Postgres,
		logger:   deps.Logger,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.engine.GET("/healthz", s.handleHealth)

	api := s.engine.Group("/api/v1")
	{
		api.POST("/projects/:id/profile", s.handleProfile)
		api.POST("/projects/:id/insights", s.handleInsights)
		api.POST("/projects/:id/reliability", s.handleReliability)
		api.POST("/projects/:id/history", s.handleHistory)
		api.POST("/projects/:id/complete", s.handleComplete)
		api.GET("/industries/:industry/defaults", s.handleIndustryDefaults)
	}
}

// Handler exposes the routed engine, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks until the server stops or ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
