package industry

import (
	"context"
	"fmt"
	"time"

	"github.com/atelierkit/style-engine-go/internal/domain"
	"github.com/atelierkit/style-engine-go/internal/service/cache"
	"github.com/atelierkit/style-engine-go/internal/util"
	"github.com/atelierkit/style-engine-go/pkg/errors"
	"go.uber.org/zap"
)

// confidenceIncrement is how much one completed project raises the aggregate's
// confidence level, capped at 1.
const confidenceIncrement = 0.05

// maxListEntries bounds the merged style/color/typography lists.
const maxListEntries = 5

// CompletedProject is the slice of a finished project that feeds the industry
// aggregate. StyleScores are on the wide scale, matching the persisted row.
type CompletedProject struct {
	StyleScores domain.AxisVector
	Styles      []string
	Colors      []string
	Typography  []string
	Budget      string
	Timeline    string
}

// Store serves per-industry aggregates: the persisted running average when one
// exists, the static seed table otherwise. Reads go through the Redis cache;
// the store never fails a read, it degrades to seeds.
type Store struct {
	repo   Repository
	cache  *cache.Service
	logger *zap.Logger
	now    func() time.Time
}

func NewStore(repo Repository, cacheSvc *cache.Service, logger *zap.Logger) *Store {
	return &Store{repo: repo, cache: cacheSvc, logger: logger, now: time.Now}
}

// Get resolves free-text industry input to a category and returns its
// defaults. A repository failure falls back to the seed table: an aggregate
// miss must never block profile computation.
func (s *Store) Get(ctx context.Context, freeTextIndustry string) *domain.IndustryDefaults {
	category := NormalizeIndustry(freeTextIndustry)

	if s.cache != nil {
		if cached, found := s.cache.GetIndustryDefaults(ctx, category); found {
			return cached
		}
	}

	if s.repo != nil {
		persisted, err := s.repo.Find(ctx, category)
		if err != nil {
			s.logger.Warn("Industry defaults read failed, using seed data",
				zap.String("industry", string(category)),
				zap.Error(err),
			)
		} else if persisted != nil {
			if s.cache != nil {
				s.cache.SetIndustryDefaults(ctx, persisted)
			}
			return persisted
		}
	}

	seed := domain.SeedDefaults(category)
	return &seed
}

// Update folds one completed project into the running aggregate with weight
// 1/(sampleSize+1) for the new data point. The repository applies it under a
// per-industry row lock.
func (s *Store) Update(ctx context.Context, freeTextIndustry string, completed CompletedProject) error {
	if s.repo == nil {
		return errors.NewStoreError("no repository configured", "update", freeTextIndustry, nil)
	}
	category := NormalizeIndustry(freeTextIndustry)

	updated, err := s.repo.Mutate(ctx, category, func(existing *domain.IndustryDefaults) *domain.IndustryDefaults {
		return s.merge(category, existing, completed)
	})
	if err != nil {
		return errors.NewStoreError("industry aggregate update failed", "update", string(category), err)
	}

	if s.cache != nil {
		s.cache.InvalidateIndustryDefaults(ctx, category)
	}
	s.logger.Info("Industry aggregate updated",
		zap.String("industry", string(category)),
		zap.Int("sample_size", updated.SampleSize),
	)
	return nil
}

// merge is the incremental mean: newWeight = 1/(n+1), existing keeps the
// complement. The first persisted project replaces the seed scores outright
// (n=0 gives the new point full weight).
func (s *Store) merge(category domain.IndustryCategory, existing *domain.IndustryDefaults, completed CompletedProject) *domain.IndustryDefaults {
	base := existing
	if base == nil {
		seed := domain.SeedDefaults(category)
		base = &seed
	}

	n := float64(base.SampleSize)
	newWeight := 1 / (n + 1)
	oldWeight := 1 - newWeight

	scores := make(domain.AxisVector, len(domain.Axes))
	for _, axis := range domain.Axes {
		merged := base.StyleScores[axis.ID]*oldWeight + completed.StyleScores[axis.ID]*newWeight
		scores[axis.ID] = util.Clamp(merged, -100, 100)
	}

	out := &domain.IndustryDefaults{
		Industry:         category,
		SampleSize:       base.SampleSize + 1,
		StyleScores:      scores,
		CommonStyles:     mergeList(base.CommonStyles, completed.Styles),
		PreferredColors:  mergeList(base.PreferredColors, completed.Colors),
		CommonTypography: mergeList(base.CommonTypography, completed.Typography),
		AverageBudget:    pickDisplay(completed.Budget, base.AverageBudget),
		AverageTimeline:  pickDisplay(completed.Timeline, base.AverageTimeline),
		ConfidenceLevel:  util.Clamp01(base.ConfidenceLevel + confidenceIncrement),
		LastUpdated:      s.now(),
	}
	return out
}

// Suggestions derives the new-project pre-fill bundle from a defaults row.
func (s *Store) Suggestions(defaults *domain.IndustryDefaults) *domain.Suggestions {
	if defaults == nil {
		return nil
	}
	hints := map[string]string{
		"confidence": fmt.Sprintf("%.0f%%", defaults.ConfidenceLevel*100),
	}
	if defaults.SampleSize > 0 {
		hints["source"] = fmt.Sprintf("Based on %d completed projects in this industry.", defaults.SampleSize)
	} else {
		hints["source"] = "Seed data only. Treat these as illustrative, not predictive."
	}

	return &domain.Suggestions{
		StylePreselections: domain.FromWide(defaults.StyleScores),
		ColorSuggestions:   append([]string(nil), defaults.PreferredColors...),
		BudgetSuggestion:   defaults.AverageBudget,
		TimelineSuggestion: defaults.AverageTimeline,
		ConfidenceHints:    hints,
	}
}

func mergeList(existing, incoming []string) []string {
	merged := util.Dedupe(append(append([]string{}, existing...), incoming...))
	if len(merged) > maxListEntries {
		merged = merged[:maxListEntries]
	}
	return merged
}

func pickDisplay(incoming, existing string) string {
	if incoming != "" {
		return incoming
	}
	return existing
}
