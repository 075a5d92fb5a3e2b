package industry

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/atelierkit/style-engine-go/internal/domain"
	"github.com/atelierkit/style-engine-go/internal/service/database"
	"go.uber.org/zap"
)

// Repository persists the per-industry aggregate row.
type Repository interface {
	// Find returns the persisted aggregate, or (nil, nil) when none exists.
	Find(ctx context.Context, industry domain.IndustryCategory) (*domain.IndustryDefaults, error)
	// Mutate runs apply against the current row (nil when absent) and persists
	// the result atomically with respect to concurrent mutations of the same
	// industry key.
	Mutate(ctx context.Context, industry domain.IndustryCategory, apply func(existing *domain.IndustryDefaults) *domain.IndustryDefaults) (*domain.IndustryDefaults, error)
}

// PostgresRepository implements Repository on the industry_defaults table.
// Mutate takes a row-level lock (SELECT ... FOR UPDATE) so two projects
// completing in the same industry cannot race the incremental mean and
// silently drop an update.
type PostgresRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresRepository(postgres *database.PostgresService, logger *zap.Logger) *PostgresRepository {
	return &PostgresRepository{db: postgres.GetDB(), logger: logger}
}

const selectColumns = `sample_size, style_scores, common_styles, preferred_colors,
	common_typography, average_budget, average_timeline, confidence_level, last_updated`

func (r *PostgresRepository) Find(ctx context.Context, industry domain.IndustryCategory) (*domain.IndustryDefaults, error) {
	query := fmt.Sprintf(`SELECT %s FROM industry_defaults WHERE industry = $1 LIMIT 1`, selectColumns)
	row := r.db.QueryRowContext(ctx, query, string(industry))
	return r.scanDefaults(industry, row)
}

func (r *PostgresRepository) Mutate(ctx context.Context, industry domain.IndustryCategory, apply func(existing *domain.IndustryDefaults) *domain.IndustryDefaults) (updated *domain.IndustryDefaults, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin industry update: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := fmt.Sprintf(`SELECT %s FROM industry_defaults WHERE industry = $1 FOR UPDATE`, selectColumns)
	existing, err := r.scanDefaults(industry, tx.QueryRowContext(ctx, query, string(industry)))
	if err != nil {
		return nil, err
	}

	updated = apply(existing)
	if updated == nil {
		err = fmt.Errorf("industry mutation produced no row")
		return nil, err
	}

	if err = r.upsert(ctx, tx, updated); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit industry update: %w", err)
	}
	return updated, nil
}

func (r *PostgresRepository) upsert(ctx context.Context, tx *sql.Tx, defaults *domain.IndustryDefaults) error {
	scores, err := json.Marshal(defaults.StyleScores)
	if err != nil {
		return fmt.Errorf("failed to marshal style scores: %w", err)
	}
	styles, err := json.Marshal(defaults.CommonStyles)
	if err != nil {
		return fmt.Errorf("failed to marshal common styles: %w", err)
	}
	colors, err := json.Marshal(defaults.PreferredColors)
	if err != nil {
		return fmt.Errorf("failed to marshal preferred colors: %w", err)
	}
	typography, err := json.Marshal(defaults.CommonTypography)
	if err != nil {
		return fmt.Errorf("failed to marshal common typography: %w", err)
	}

	const query = `
		INSERT INTO industry_defaults (
			industry, sample_size, style_scores, common_styles, preferred_colors,
			common_typography, average_budget, average_timeline, confidence_level, last_updated
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (industry) DO UPDATE SET
			sample_size = EXCLUDED.sample_size,
			style_scores = EXCLUDED.style_scores,
			common_styles = EXCLUDED.common_styles,
			preferred_colors = EXCLUDED.preferred_colors,
			common_typography = EXCLUDED.common_typography,
			average_budget = EXCLUDED.average_budget,
			average_timeline = EXCLUDED.average_timeline,
			confidence_level = EXCLUDED.confidence_level,
			last_updated = EXCLUDED.last_updated
	`
	_, err = tx.ExecContext(ctx, query,
		string(defaults.Industry), defaults.SampleSize, scores, styles, colors,
		typography, defaults.AverageBudget, defaults.AverageTimeline,
		defaults.ConfidenceLevel, defaults.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert industry defaults: %w", err)
	}
	return nil
}

func (r *PostgresRepository) scanDefaults(industry domain.IndustryCategory, row *sql.Row) (*domain.IndustryDefaults, error) {
	defaults := &domain.IndustryDefaults{Industry: industry}
	var scoresJSON, stylesJSON, colorsJSON, typographyJSON []byte

	err := row.Scan(
		&defaults.SampleSize, &scoresJSON, &stylesJSON, &colorsJSON,
		&typographyJSON, &defaults.AverageBudget, &defaults.AverageTimeline,
		&defaults.ConfidenceLevel, &defaults.LastUpdated,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query industry defaults: %w", err)
	}

	if err := json.Unmarshal(scoresJSON, &defaults.StyleScores); err != nil {
		return nil, fmt.Errorf("failed to unmarshal style scores: %w", err)
	}
	if err := json.Unmarshal(stylesJSON, &defaults.CommonStyles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal common styles: %w", err)
	}
	if err := json.Unmarshal(colorsJSON, &defaults.PreferredColors); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preferred colors: %w", err)
	}
	if err := json.Unmarshal(typographyJSON, &defaults.CommonTypography); err != nil {
		return nil, fmt.Errorf("failed to unmarshal common typography: %w", err)
	}
	return defaults, nil
}
