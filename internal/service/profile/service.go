package profile

import (
	"context"
	"time"

	"github.com/atelierkit/style-engine-go/internal/domain"
	"github.com/atelierkit/style-engine-go/internal/service/aggregator"
	"github.com/atelierkit/style-engine-go/internal/service/cache"
	"github.com/atelierkit/style-engine-go/internal/service/extractor"
	"github.com/atelierkit/style-engine-go/internal/service/history"
	"github.com/atelierkit/style-engine-go/internal/service/industry"
	"github.com/atelierkit/style-engine-go/internal/service/insight"
	"github.com/atelierkit/style-engine-go/internal/service/matcher"
	"github.com/atelierkit/style-engine-go/internal/service/pairwise"
	"go.uber.org/zap"
)

// comparisonEvidenceWeight is the evidence weight given to the merged pairwise
// scores. Forced choices are decisive, comparable to an explicit style pick.
const comparisonEvidenceWeight = 0.85

// Dependencies collects everything the orchestration service needs. Cache may
// be nil; the engine computes everything from scratch without it.
type Dependencies struct {
	Extractor   *extractor.Extractor
	Aggregator  *aggregator.Aggregator
	Pairwise    *pairwise.Scorer
	Matcher     *matcher.ArchetypeMatcher
	Insights    *insight.Generator
	ReportCache *insight.ReportCache
	History     *history.Comparator
	Industry    *industry.Store
	Cache       *cache.Service
	ProfileTTL  time.Duration
	Logger      *zap.Logger
}

// Service turns raw questionnaire snapshots into profiles, reports and
// comparisons. The answer set is authoritative; every profile is a derived
// view recomputed from the full snapshot, so stored answers and profile can
// never drift apart. Computation is best-effort and additive: it never blocks
// a questionnaire submission.
type Service struct {
	deps Dependencies
}

func NewService(deps Dependencies) *Service {
	return &Service{deps: deps}
}

// ComputeProfile recomputes the style profile from the full answer snapshot.
// The Redis snapshot cache is keyed by project plus answers fingerprint, so a
// changed answer set can never serve a stale profile.
func (s *Service) ComputeProfile(ctx context.Context, projectID string, raw domain.RawAnswers) *domain.StyleProfile {
	fingerprint := insight.Fingerprint(projectID, raw)
	if s.deps.Cache != nil {
		if cached, found := s.deps.Cache.GetProfileSnapshot(ctx, fingerprint); found {
			return cached
		}
	}

	answers := domain.DecodeAnswers(raw)
	profile := s.computeFromAnswers(ctx, answers)

	if s.deps.Cache != nil {
		s.deps.Cache.SetProfileSnapshot(ctx, fingerprint, profile, s.deps.ProfileTTL)
	}
	return profile
}

func (s *Service) computeFromAnswers(ctx context.Context, answers domain.AnswerSet) *domain.StyleProfile {
	var prior domain.AxisVector
	if answers.Business != nil && answers.Business.Industry != "" && s.deps.Industry != nil {
		defaults := s.deps.Industry.Get(ctx, answers.Business.Industry)
		prior = domain.FromWide(defaults.StyleScores)
	}

	evidence := s.deps.Extractor.ExtractAll(answers)
	evidence = append(evidence, s.comparisonEvidence(answers)...)

	profile := s.deps.Aggregator.Fold(prior, evidence)
	profile.Archetypes = s.deps.Matcher.Match(profile.Axes)
	profile.Recommendations = deriveRecommendations(profile)
	return profile
}

// comparisonEvidence runs the pairwise accumulator over the forced-choice
// sequence and folds its wide-scale result back into the canonical evidence
// stream through the named scale conversion.
func (s *Service) comparisonEvidence(answers domain.AnswerSet) []domain.Evidence {
	if answers.Comparisons == nil || len(answers.Comparisons.Choices) == 0 {
		return nil
	}
	result := s.deps.Pairwise.Score(answers.Comparisons.Choices)
	if result.TotalChoices == 0 {
		return nil
	}

	canonical := domain.FromWide(result.Scores)
	var out []domain.Evidence
	for _, axis := range domain.Axes {
		delta, present := canonical[axis.ID]
		if !present || delta == 0 {
			continue
		}
		out = append(out, domain.Evidence{
			Axis:   axis.ID,
			Delta:  delta,
			Weight: comparisonEvidenceWeight,
		})
	}
	return out
}

// InsightsReport computes (or serves from the LRU) the designer-facing
// insights panel for the given snapshot.
func (s *Service) InsightsReport(ctx context.Context, projectID string, raw domain.RawAnswers) *domain.StyleInsightsReport {
	fingerprint := insight.Fingerprint(projectID, raw)
	if cached, found := s.deps.ReportCache.Get(fingerprint); found {
		return cached
	}

	profile := s.ComputeProfile(ctx, projectID, raw)
	report := s.deps.Insights.Generate(insight.Input{
		Profile: profile,
		Answers: domain.DecodeAnswers(raw),
	})

	s.deps.ReportCache.Add(fingerprint, report)
	return report
}

// CompareHistory judges the current snapshot against the designer's corpus of
// completed projects.
func (s *Service) CompareHistory(ctx context.Context, projectID string, raw domain.RawAnswers, corpus []domain.HistoricalProfile) *domain.DesignerInsights {
	profile := s.ComputeProfile(ctx, projectID, raw)
	return s.deps.History.Compare(profile.Axes, corpus)
}

// ComparisonReliability reports how much a human should trust the comparison
// step's answers: a separate, simpler metric from the score accumulation.
func (s *Service) ComparisonReliability(raw domain.RawAnswers) pairwise.ReliabilityResult {
	answers := domain.DecodeAnswers(raw)
	if answers.Comparisons == nil {
		return pairwise.Reliability(nil)
	}
	return pairwise.Reliability(answers.Comparisons.Choices)
}

// CompleteProject folds a finished project into its industry aggregate. The
// update is an optimization, not correctness-critical: failures are logged and
// swallowed so completion never fails on aggregate maintenance.
func (s *Service) CompleteProject(ctx context.Context, projectID string, raw domain.RawAnswers) {
	answers := domain.DecodeAnswers(raw)
	if answers.Business == nil || answers.Business.Industry == "" || s.deps.Industry == nil {
		return
	}

	profile := s.ComputeProfile(ctx, projectID, raw)
	completed := industry.CompletedProject{
		StyleScores: domain.ToWide(profile.Axes),
		Budget:      answers.Business.Budget,
		Timeline:    answers.Business.Timeline,
	}
	if answers.StyleCards != nil && answers.StyleCards.Style != "" {
		completed.Styles = append(completed.Styles, answers.StyleCards.Style)
	}
	if answers.StyleChips != nil {
		completed.Styles = append(completed.Styles, answers.StyleChips.Styles...)
	}
	if answers.Palette != nil {
		completed.Colors = append(completed.Colors, answers.Palette.Colors...)
	}
	if answers.Typography != nil && answers.Typography.Category != "" {
		completed.Typography = append(completed.Typography, answers.Typography.Category)
	}

	if err := s.deps.Industry.Update(ctx, answers.Business.Industry, completed); err != nil {
		s.deps.Logger.Warn("Industry aggregate update dropped",
			zap.String("project_id", projectID),
			zap.Error(err),
		)
	}
}

// IndustrySuggestions returns the pre-fill bundle for a new project in the
// given industry.
func (s *Service) IndustrySuggestions(ctx context.Context, freeTextIndustry string) (*domain.IndustryDefaults, *domain.Suggestions) {
	defaults := s.deps.Industry.Get(ctx, freeTextIndustry)
	return defaults, s.deps.Industry.Suggestions(defaults)
}
