package profile

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/atelierkit/style-engine-go/internal/domain"
	"github.com/atelierkit/style-engine-go/internal/service/aggregator"
	"github.com/atelierkit/style-engine-go/internal/service/extractor"
	"github.com/atelierkit/style-engine-go/internal/service/history"
	"github.com/atelierkit/style-engine-go/internal/service/industry"
	"github.com/atelierkit/style-engine-go/internal/service/insight"
	"github.com/atelierkit/style-engine-go/internal/service/matcher"
	"github.com/atelierkit/style-engine-go/internal/service/pairwise"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	logger := zap.NewNop()

	reportCache, err := insight.NewReportCache(8)
	if err != nil {
		t.Fatalf("failed to create report cache: %v", err)
	}

	return NewService(Dependencies{
		Extractor:   extractor.New(logger),
		Aggregator:  aggregator.New(aggregator.DefaultParams(), logger),
		Pairwise:    pairwise.NewScorer(pairwise.DefaultParams(), domain.ComparisonCatalogue, logger),
		Matcher:     matcher.New(domain.ArchetypeCatalogue, logger),
		Insights:    insight.New(logger),
		ReportCache: reportCache,
		History:     history.New(logger),
		Industry:    industry.NewStore(nil, nil, logger),
		Logger:      logger,
	})
}

func fullSnapshot() domain.RawAnswers {
	return domain.RawAnswers{
		domain.StepBusiness:   json.RawMessage(`{"industry":"artisan bakery","budget":"$2,500","timeline":"4 weeks"}`),
		domain.StepStyleCards: json.RawMessage(`{"style":"organic"}`),
		domain.StepStyleChips: json.RawMessage(`{"styles":["friendly","vintage"]}`),
		domain.StepPalette:    json.RawMessage(`{"name":"earthy","colors":["#C2410C","#FBBF24"]}`),
		domain.StepTypography: json.RawMessage(`{"category":"script"}`),
		domain.StepSliders:    json.RawMessage(`{"values":{"warm_cool":85,"bold_subtle":40}}`),
		domain.StepBrandWords: json.RawMessage(`{"words":["warm","natural"]}`),
		domain.StepComparisons: json.RawMessage(`{"choices":[
			{"pairId":"color_warm_vs_cool","picked":"A","confidence":0.9},
			{"pairId":"shape_soft_vs_sharp","picked":"A","confidence":0.8}
		]}`),
	}
}

func TestComputeProfileFullSnapshot(t *testing.T) {
	s := newTestService(t)

	profile := s.ComputeProfile(context.Background(), "proj-1", fullSnapshot())

	if profile.SignalCount == 0 {
		t.Fatal("expected signals folded from a full snapshot")
	}
	if profile.Axes[domain.AxisWarmCool] <= 0 {
		t.Fatalf("warm-leaning answers must produce a warm score, got %v", profile.Axes[domain.AxisWarmCool])
	}
	if len(profile.Archetypes) != len(domain.ArchetypeCatalogue) {
		t.Fatalf("expected full archetype ranking, got %d", len(profile.Archetypes))
	}
	if profile.Archetypes[0].Name != "Warm Artisan" {
		t.Fatalf("expected Warm Artisan on top for this snapshot, got %q", profile.Archetypes[0].Name)
	}
	if len(profile.Recommendations.FontCategories) == 0 {
		t.Fatal("expected font recommendations")
	}
}

func TestComputeProfileEmptySnapshot(t *testing.T) {
	s := newTestService(t)

	profile := s.ComputeProfile(context.Background(), "proj-1", domain.RawAnswers{})

	if profile.SignalCount != 0 {
		t.Fatalf("expected no signals for empty snapshot, got %d", profile.SignalCount)
	}
	if profile.MeanConfidence() != 0 {
		t.Fatalf("expected zero confidence, got %v", profile.MeanConfidence())
	}
}

func TestComputeProfileToleratesMalformedSteps(t *testing.T) {
	s := newTestService(t)
	raw := domain.RawAnswers{
		domain.StepStyleCards: json.RawMessage(`{"style":"organic"}`),
		domain.StepPalette:    json.RawMessage(`{broken json`),
		domain.StepSliders:    json.RawMessage(`[1,2,3]`),
	}

	profile := s.ComputeProfile(context.Background(), "proj-1", raw)

	if profile.SignalCount == 0 {
		t.Fatal("valid steps must still contribute despite malformed siblings")
	}
}

func TestComputeProfileIsDeterministic(t *testing.T) {
	s := newTestService(t)
	raw := fullSnapshot()

	first := s.ComputeProfile(context.Background(), "proj-1", raw)
	for i := 0; i < 5; i++ {
		again := s.ComputeProfile(context.Background(), "proj-1", raw)
		for _, axis := range domain.Axes {
			if first.Axes[axis.ID] != again.Axes[axis.ID] {
				t.Fatalf("axis %s differs across runs: %v vs %v", axis.ID, first.Axes[axis.ID], again.Axes[axis.ID])
			}
		}
		if first.SignalCount != again.SignalCount {
			t.Fatalf("signal count differs: %d vs %d", first.SignalCount, again.SignalCount)
		}
	}
}

func TestComputeProfileIndustryPriorWithoutConfidence(t *testing.T) {
	s := newTestService(t)
	raw := domain.RawAnswers{
		domain.StepBusiness: json.RawMessage(`{"industry":"law firm"}`),
	}

	profile := s.ComputeProfile(context.Background(), "proj-1", raw)

	// The legal seed leans serious; the prior shapes scores but never
	// manufactures confidence.
	if profile.Axes[domain.AxisPlayfulSerious] >= 0 {
		t.Fatalf("expected serious-leaning prior, got %v", profile.Axes[domain.AxisPlayfulSerious])
	}
	if profile.MeanConfidence() != 0 {
		t.Fatalf("a prior is not evidence, confidence must stay 0, got %v", profile.MeanConfidence())
	}
}

func TestInsightsReportServedFromCache(t *testing.T) {
	s := newTestService(t)
	raw := fullSnapshot()

	first := s.InsightsReport(context.Background(), "proj-1", raw)
	second := s.InsightsReport(context.Background(), "proj-1", raw)

	if first != second {
		t.Fatal("identical snapshots must hit the report cache")
	}

	changed := fullSnapshot()
	changed[domain.StepStyleCards] = json.RawMessage(`{"style":"geometric"}`)
	third := s.InsightsReport(context.Background(), "proj-1", changed)
	if third == first {
		t.Fatal("a changed snapshot must recompute the report")
	}
}

func TestComparisonReliability(t *testing.T) {
	s := newTestService(t)

	empty := s.ComparisonReliability(domain.RawAnswers{})
	if empty.Level != "Low Confidence" {
		t.Fatalf("no comparisons must read Low Confidence, got %q", empty.Level)
	}

	answered := s.ComparisonReliability(fullSnapshot())
	if answered.Score <= empty.Score {
		t.Fatal("answered comparisons must score above none")
	}
}

func TestCompareHistoryEmptyCorpus(t *testing.T) {
	s := newTestService(t)

	insights := s.CompareHistory(context.Background(), "proj-1", fullSnapshot(), nil)

	if insights.Uniqueness != domain.UniquenessUnique {
		t.Fatalf("expected unique against empty corpus, got %s", insights.Uniqueness)
	}
}

func TestCompleteProjectWithoutRepositoryDoesNotPanic(t *testing.T) {
	s := newTestService(t)
	// No Postgres behind the store: the failure must be swallowed.
	s.CompleteProject(context.Background(), "proj-1", fullSnapshot())
}

func TestCompleteProjectWithoutIndustryIsNoop(t *testing.T) {
	s := newTestService(t)
	s.CompleteProject(context.Background(), "proj-1", domain.RawAnswers{
		domain.StepStyleCards: json.RawMessage(`{"style":"organic"}`),
	})
}

func TestIndustrySuggestions(t *testing.T) {
	s := newTestService(t)

	defaults, suggestions := s.IndustrySuggestions(context.Background(), "coffee shop")

	if defaults.Industry != domain.IndustryFood {
		t.Fatalf("expected food defaults, got %s", defaults.Industry)
	}
	if suggestions == nil || len(suggestions.ColorSuggestions) == 0 {
		t.Fatal("expected color suggestions from the seed table")
	}
}
