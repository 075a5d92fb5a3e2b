package pairwise

import (
	"math"
	"testing"

	"github.com/atelierkit/style-engine-go/internal/domain"
	"go.uber.org/zap"
)

func testPairs() []domain.ComparisonPair {
	return []domain.ComparisonPair{
		{
			ID: "warm_probe",
			OptionA: domain.ComparisonOption{
				Label:  "Warm",
				Deltas: map[domain.AxisID]float64{domain.AxisWarmCool: 10},
			},
			OptionB: domain.ComparisonOption{
				Label:  "Cool",
				Deltas: map[domain.AxisID]float64{domain.AxisWarmCool: -20},
			},
		},
		{
			ID: "bold_probe",
			OptionA: domain.ComparisonOption{
				Label:  "Bold",
				Deltas: map[domain.AxisID]float64{domain.AxisBoldSubtle: 10},
			},
			OptionB: domain.ComparisonOption{
				Label:  "Subtle",
				Deltas: map[domain.AxisID]float64{domain.AxisBoldSubtle: -10},
			},
		},
	}
}

func newTestScorer(t *testing.T) *Scorer {
	t.Helper()
	return NewScorer(DefaultParams(), testPairs(), zap.NewNop())
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreEmptySequence(t *testing.T) {
	result := newTestScorer(t).Score(nil)
	if result.TotalChoices != 0 {
		t.Fatalf("expected 0 total choices, got %d", result.TotalChoices)
	}
	if result.AverageConfidence != 0 {
		t.Fatalf("expected 0 average confidence, got %v", result.AverageConfidence)
	}
}

func TestScoreAppliesRecencyWeighting(t *testing.T) {
	scorer := newTestScorer(t)
	choices := []domain.ComparisonChoice{
		{PairID: "warm_probe", Picked: domain.PickA, Confidence: 1},
		{PairID: "warm_probe", Picked: domain.PickA, Confidence: 1},
	}

	result := scorer.Score(choices)

	// Position 0 carries multiplier 1, position n-1 carries base^2.
	want := 10*1 + 10*math.Pow(1.6, 2)
	if !approx(result.Scores[domain.AxisWarmCool], want) {
		t.Fatalf("expected warm_cool score %v, got %v", want, result.Scores[domain.AxisWarmCool])
	}
}

func TestScoreLaterChoiceOutweighsEarlier(t *testing.T) {
	scorer := newTestScorer(t)

	// Same two picks in opposite orders: whichever comes last should win.
	warmLast := scorer.Score([]domain.ComparisonChoice{
		{PairID: "warm_probe", Picked: domain.PickB, Confidence: 1},
		{PairID: "warm_probe", Picked: domain.PickA, Confidence: 1},
	})
	coolLast := scorer.Score([]domain.ComparisonChoice{
		{PairID: "warm_probe", Picked: domain.PickA, Confidence: 1},
		{PairID: "warm_probe", Picked: domain.PickB, Confidence: 1},
	})

	if warmLast.Scores[domain.AxisWarmCool] <= coolLast.Scores[domain.AxisWarmCool] {
		t.Fatalf("expected warm-last (%v) to exceed cool-last (%v)",
			warmLast.Scores[domain.AxisWarmCool], coolLast.Scores[domain.AxisWarmCool])
	}
}

func TestScoreSkipOccupiesPosition(t *testing.T) {
	scorer := newTestScorer(t)
	choices := []domain.ComparisonChoice{
		{PairID: "warm_probe", Picked: domain.PickA, Confidence: 1},
		{PairID: "bold_probe", Picked: domain.PickSkip, Confidence: 1},
		{PairID: "warm_probe", Picked: domain.PickA, Confidence: 1},
	}

	result := scorer.Score(choices)

	if result.TotalChoices != 2 {
		t.Fatalf("expected skips excluded from total, got %d", result.TotalChoices)
	}
	// The third choice sits at ordinal 2 of a 3-long sequence: full recency.
	want := 10*1 + 10*math.Pow(1.6, 2)
	if !approx(result.Scores[domain.AxisWarmCool], want) {
		t.Fatalf("expected warm_cool score %v, got %v", want, result.Scores[domain.AxisWarmCool])
	}
	if result.Scores[domain.AxisBoldSubtle] != 0 {
		t.Fatalf("skipped pair must contribute nothing, got %v", result.Scores[domain.AxisBoldSubtle])
	}
}

func TestScoreUnknownPairContributesNothing(t *testing.T) {
	scorer := newTestScorer(t)
	result := scorer.Score([]domain.ComparisonChoice{
		{PairID: "not_in_catalogue", Picked: domain.PickA, Confidence: 1},
	})

	if result.TotalChoices != 0 {
		t.Fatalf("unknown pair must not count, got %d", result.TotalChoices)
	}
}

func TestScoreSaturatesAtWideBounds(t *testing.T) {
	scorer := newTestScorer(t)
	var choices []domain.ComparisonChoice
	for i := 0; i < 12; i++ {
		choices = append(choices, domain.ComparisonChoice{
			PairID: "warm_probe", Picked: domain.PickB, Confidence: 1,
		})
	}

	result := scorer.Score(choices)

	if result.Scores[domain.AxisWarmCool] != -100 {
		t.Fatalf("expected saturation at -100, got %v", result.Scores[domain.AxisWarmCool])
	}
}

func TestScoreConfidenceFloorKeepsZeroConfidencePicks(t *testing.T) {
	scorer := newTestScorer(t)
	result := scorer.Score([]domain.ComparisonChoice{
		{PairID: "warm_probe", Picked: domain.PickA, Confidence: 0},
	})

	// floor + (1-floor)*0 = 0.3 of the full delta.
	if !approx(result.Scores[domain.AxisWarmCool], 3) {
		t.Fatalf("expected floored contribution 3, got %v", result.Scores[domain.AxisWarmCool])
	}
}

func TestAverageConfidenceIgnoresSkips(t *testing.T) {
	choices := []domain.ComparisonChoice{
		{PairID: "warm_probe", Picked: domain.PickA, Confidence: 1.0},
		{PairID: "bold_probe", Picked: domain.PickSkip, Confidence: 0.1},
		{PairID: "bold_probe", Picked: domain.PickB, Confidence: 0.8},
	}

	if got := AverageConfidence(choices); !approx(got, 0.9) {
		t.Fatalf("expected 0.9, got %v", got)
	}
}

func TestAverageConfidenceEmpty(t *testing.T) {
	if got := AverageConfidence(nil); got != 0 {
		t.Fatalf("expected 0 for empty input, got %v", got)
	}
}

func TestReliabilityLevels(t *testing.T) {
	full := func(n int, conf float64) []domain.ComparisonChoice {
		out := make([]domain.ComparisonChoice, n)
		for i := range out {
			out[i] = domain.ComparisonChoice{PairID: "warm_probe", Picked: domain.PickA, Confidence: conf}
		}
		return out
	}

	high := Reliability(full(10, 0.9))
	if high.Level != "High Confidence" {
		t.Fatalf("expected High Confidence, got %q (score %v)", high.Level, high.Score)
	}

	sparse := Reliability(full(1, 0.8))
	complete := Reliability(full(8, 0.8))
	if sparse.Score >= complete.Score {
		t.Fatalf("one answer (%v) must score below a full session (%v)", sparse.Score, complete.Score)
	}

	empty := Reliability(nil)
	if empty.Level != "Low Confidence" || empty.Score != 0 {
		t.Fatalf("expected Low Confidence at 0, got %q at %v", empty.Level, empty.Score)
	}
}

func TestReliabilityDescriptionsAreFixedPerLevel(t *testing.T) {
	a := Reliability([]domain.ComparisonChoice{{PairID: "warm_probe", Picked: domain.PickA, Confidence: 0.95}})
	b := Reliability([]domain.ComparisonChoice{{PairID: "bold_probe", Picked: domain.PickB, Confidence: 0.99}})
	if a.Level != b.Level || a.Description != b.Description {
		t.Fatalf("same level must carry the same description: %q vs %q", a.Description, b.Description)
	}
}
