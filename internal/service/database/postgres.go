package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type PostgresService struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresService(cfg Config, logger *zap.Logger) (*PostgresService, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
	)

	return &PostgresService{db: db, logger: logger}, nil
}

// EnsureSchema creates the industry aggregate table, the only persisted
// artifact this engine owns.
func (ps *PostgresService) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS industry_defaults (
			industry          TEXT PRIMARY KEY,
			sample_size       INTEGER NOT NULL DEFAULT 0,
			style_scores      JSONB NOT NULL,
			common_styles     JSONB NOT NULL DEFAULT '[]',
			preferred_colors  JSONB NOT NULL DEFAULT '[]',
			common_typography JSONB NOT NULL DEFAULT '[]',
			average_budget    TEXT NOT NULL DEFAULT '',
			average_timeline  TEXT NOT NULL DEFAULT '',
			confidence_level  DOUBLE PRECISION NOT NULL DEFAULT 0,
			last_updated      TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := ps.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to ensure industry_defaults schema: %w", err)
	}
	return nil
}

func (ps *PostgresService) GetDB() *sql.DB {
	return ps.db
}

func (ps *PostgresService) Ping(ctx context.Context) error {
	return ps.db.PingContext(ctx)
}

func (ps *PostgresService) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}
