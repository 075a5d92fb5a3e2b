package aggregator

import (
	"math"
	"testing"

	"github.com/atelierkit/style-engine-go/internal/domain"
	"go.uber.org/zap"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFoldEmptyEvidence(t *testing.T) {
	agg := New(DefaultParams(), zap.NewNop())

	profile := agg.Fold(nil, nil)

	if profile.SignalCount != 0 {
		t.Fatalf("expected 0 signals, got %d", profile.SignalCount)
	}
	for _, axis := range domain.Axes {
		if profile.Axes[axis.ID] != 0 {
			t.Fatalf("axis %s should start at 0, got %v", axis.ID, profile.Axes[axis.ID])
		}
		if profile.Confidence[axis.ID] != 0 {
			t.Fatalf("axis %s confidence should start at 0, got %v", axis.ID, profile.Confidence[axis.ID])
		}
	}
}

func TestFoldAccumulatesWeightedDeltas(t *testing.T) {
	agg := New(DefaultParams(), zap.NewNop())

	profile := agg.Fold(nil, []domain.Evidence{
		{Axis: domain.AxisWarmCool, Delta: 0.6, Weight: 0.5},
	})

	if !approx(profile.Axes[domain.AxisWarmCool], 0.3) {
		t.Fatalf("expected 0.3, got %v", profile.Axes[domain.AxisWarmCool])
	}
	if !approx(profile.Confidence[domain.AxisWarmCool], 0.25) {
		t.Fatalf("expected confidence 0.25, got %v", profile.Confidence[domain.AxisWarmCool])
	}
	if profile.SignalCount != 1 {
		t.Fatalf("expected 1 signal, got %d", profile.SignalCount)
	}
}

func TestFoldClampsPerUpdateNotAtTheEnd(t *testing.T) {
	agg := New(DefaultParams(), zap.NewNop())

	// Three pushes past the ceiling then one pull back: the pull must act on
	// the saturated value, not on the unclamped running sum.
	profile := agg.Fold(nil, []domain.Evidence{
		{Axis: domain.AxisBoldSubtle, Delta: 0.8, Weight: 1},
		{Axis: domain.AxisBoldSubtle, Delta: 0.8, Weight: 1},
		{Axis: domain.AxisBoldSubtle, Delta: 0.8, Weight: 1},
		{Axis: domain.AxisBoldSubtle, Delta: -0.5, Weight: 1},
	})

	if !approx(profile.Axes[domain.AxisBoldSubtle], 0.5) {
		t.Fatalf("expected 0.5 after clamp-then-pull, got %v", profile.Axes[domain.AxisBoldSubtle])
	}
}

func TestFoldConfidenceDiminishes(t *testing.T) {
	agg := New(DefaultParams(), zap.NewNop())

	profile := agg.Fold(nil, []domain.Evidence{
		{Axis: domain.AxisWarmCool, Delta: 0.1, Weight: 1},
		{Axis: domain.AxisWarmCool, Delta: 0.1, Weight: 1},
	})

	// 0 -> 0.5 -> 0.75 with the default gain.
	if !approx(profile.Confidence[domain.AxisWarmCool], 0.75) {
		t.Fatalf("expected confidence 0.75, got %v", profile.Confidence[domain.AxisWarmCool])
	}
}

func TestFoldStartsFromPriorWithZeroConfidence(t *testing.T) {
	agg := New(DefaultParams(), zap.NewNop())
	prior := domain.AxisVector{
		domain.AxisModernClassic: 0.4,
		domain.AxisWarmCool:      1.7, // out of range, must clamp
	}

	profile := agg.Fold(prior, nil)

	if !approx(profile.Axes[domain.AxisModernClassic], 0.4) {
		t.Fatalf("expected prior 0.4, got %v", profile.Axes[domain.AxisModernClassic])
	}
	if !approx(profile.Axes[domain.AxisWarmCool], 1) {
		t.Fatalf("expected prior clamped to 1, got %v", profile.Axes[domain.AxisWarmCool])
	}
	if profile.Confidence[domain.AxisModernClassic] != 0 {
		t.Fatalf("a prior is not evidence, confidence must stay 0, got %v",
			profile.Confidence[domain.AxisModernClassic])
	}
}

func TestFoldIgnoresUnknownAxes(t *testing.T) {
	agg := New(DefaultParams(), zap.NewNop())

	profile := agg.Fold(nil, []domain.Evidence{
		{Axis: "retro_futuristic", Delta: 1, Weight: 1},
	})

	if profile.SignalCount != 0 {
		t.Fatalf("unknown axis must not count as a signal, got %d", profile.SignalCount)
	}
}

func TestFoldClampsWeights(t *testing.T) {
	agg := New(DefaultParams(), zap.NewNop())

	profile := agg.Fold(nil, []domain.Evidence{
		{Axis: domain.AxisWarmCool, Delta: 0.5, Weight: 3},
	})

	if !approx(profile.Axes[domain.AxisWarmCool], 0.5) {
		t.Fatalf("weight must clamp to 1, got score %v", profile.Axes[domain.AxisWarmCool])
	}
}

func TestNewRejectsInvalidGain(t *testing.T) {
	agg := New(Params{ConfidenceGain: -2}, zap.NewNop())

	profile := agg.Fold(nil, []domain.Evidence{
		{Axis: domain.AxisWarmCool, Delta: 0.1, Weight: 1},
	})

	if !approx(profile.Confidence[domain.AxisWarmCool], DefaultParams().ConfidenceGain) {
		t.Fatalf("invalid gain must fall back to default, got confidence %v",
			profile.Confidence[domain.AxisWarmCool])
	}
}
