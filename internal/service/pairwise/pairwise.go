package pairwise

import (
	"math"

	"github.com/atelierkit/style-engine-go/internal/domain"
	"github.com/atelierkit/style-engine-go/internal/util"
	"go.uber.org/zap"
)

// Params tunes the recency and confidence weighting. The defaults are
// documented tuning values, not derived constants.
type Params struct {
	// RecencyBase is the exponential base of the recency multiplier. With the
	// default 1.6 the last choice of a longer sequence carries roughly 2.5x
	// the weight of the first.
	RecencyBase float64
	// ConfidenceFloor is the weight retained by a zero-confidence pick: a pick
	// is still evidence of something.
	ConfidenceFloor float64
}

func DefaultParams() Params {
	return Params{RecencyBase: 1.6, ConfidenceFloor: 0.3}
}

// Result is the wide-scale outcome of scoring one choice sequence.
type Result struct {
	Scores            domain.AxisVector `json:"scores"`
	TotalChoices      int               `json:"totalChoices"`
	AverageConfidence float64           `json:"averageConfidence"`
}

// Scorer accumulates forced-choice comparisons into wide-scale axis scores
// with exponential recency weighting: later answers, made with more context
// about what is being probed, are trusted more.
type Scorer struct {
	params Params
	pairs  map[string]domain.ComparisonPair
	logger *zap.Logger
}

func NewScorer(params Params, pairs []domain.ComparisonPair, logger *zap.Logger) *Scorer {
	if params.RecencyBase <= 1 {
		params.RecencyBase = DefaultParams().RecencyBase
	}
	if params.ConfidenceFloor < 0 || params.ConfidenceFloor >= 1 {
		params.ConfidenceFloor = DefaultParams().ConfidenceFloor
	}
	byID := make(map[string]domain.ComparisonPair, len(pairs))
	for _, p := range pairs {
		byID[p.ID] = p
	}
	return &Scorer{params: params, pairs: byID, logger: logger}
}

// Score folds the ordered choice sequence. Skips and unknown pair ids occupy
// their ordinal position (position reflects real chronology) but contribute
// nothing: no score, no TotalChoices, no confidence.
func (s *Scorer) Score(choices []domain.ComparisonChoice) Result {
	result := Result{Scores: domain.AxisVector{}}
	n := len(choices)
	if n == 0 {
		return result
	}

	var confSum float64
	span := math.Max(float64(n-1), 1)

	for i, choice := range choices {
		if choice.Picked == domain.PickSkip {
			continue
		}
		pair, known := s.pairs[choice.PairID]
		if !known {
			if s.logger != nil {
				s.logger.Debug("Unknown comparison pair skipped", zap.String("pair_id", choice.PairID))
			}
			continue
		}

		var option domain.ComparisonOption
		switch choice.Picked {
		case domain.PickA:
			option = pair.OptionA
		case domain.PickB:
			option = pair.OptionB
		default:
			continue
		}

		confidence := util.Clamp01(choice.Confidence)
		recencyMult := math.Pow(s.params.RecencyBase, 2*float64(i)/span)
		confidenceMult := s.params.ConfidenceFloor + (1-s.params.ConfidenceFloor)*confidence

		for _, axis := range domain.Axes {
			delta, present := option.Deltas[axis.ID]
			if !present {
				continue
			}
			score := result.Scores[axis.ID] + delta*recencyMult*confidenceMult
			result.Scores[axis.ID] = util.Clamp(score, -100, 100)
		}

		result.TotalChoices++
		confSum += confidence
	}

	if result.TotalChoices > 0 {
		result.AverageConfidence = confSum / float64(result.TotalChoices)
	}
	return result
}

// AverageConfidence is the mean reported confidence across non-skip choices,
// 0 when there are none.
func AverageConfidence(choices []domain.ComparisonChoice) float64 {
	var sum float64
	var count int
	for _, c := range choices {
		if c.Picked == domain.PickSkip {
			continue
		}
		sum += util.Clamp01(c.Confidence)
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// fullCompletionChoices is the answer count treated as a complete comparison
// session for the completeness term.
const fullCompletionChoices = 8

// ReliabilityResult is a derived trust score for the comparison session: how
// much a human should trust the profile, not what the profile is.
type ReliabilityResult struct {
	Score       float64 `json:"score"`
	Level       string  `json:"level"`
	Description string  `json:"description"`
}

// Reliability blends answer volume and reported confidence:
// 0.4*completeness + 0.6*averageConfidence.
func Reliability(choices []domain.ComparisonChoice) ReliabilityResult {
	var nonSkip int
	for _, c := range choices {
		if c.Picked != domain.PickSkip {
			nonSkip++
		}
	}
	completeness := math.Min(float64(nonSkip)/fullCompletionChoices, 1)
	score := 0.4*completeness + 0.6*AverageConfidence(choices)

	var level, description string
	switch {
	case score >= 0.85:
		level = "High Confidence"
		description = "The client answered thoroughly and decisively. This profile is a solid base for design direction."
	case score >= 0.65:
		level = "Good Confidence"
		description = "Most comparisons were answered with reasonable certainty. Validate the weaker dimensions in conversation."
	case score >= 0.45:
		level = "Moderate Confidence"
		description = "The client skipped or hedged on several comparisons. Treat this profile as a starting point, not a brief."
	default:
		level = "Low Confidence"
		description = "Too few decisive answers to trust this profile. Consider re-running the comparison step with the client."
	}

	return ReliabilityResult{
		Score:       score,
		Level:       level,
		Description: description,
	}
}
