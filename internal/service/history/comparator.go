package history

import (
	"fmt"
	"sort"

	"github.com/atelierkit/style-engine-go/internal/domain"
	"github.com/atelierkit/style-engine-go/internal/service/matcher"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// poleThreshold is the minimum canonical-scale magnitude for an axis to count
// as resolved toward a pole when building the match/difference breakdown.
// Weaker signals on either side are not compared at all.
const poleThreshold = 0.05

const (
	typicalSimilarity = 0.8
	unusualSimilarity = 0.5
	// crowdSimilarity is the cutoff used when reporting what share of the
	// corpus a typical profile resembles.
	crowdSimilarity = 0.7
)

const topMatchCount = 3

const scoringConcurrency = 8

// Comparator judges how typical or novel a profile is relative to a
// designer's historical corpus.
type Comparator struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Comparator {
	return &Comparator{logger: logger}
}

// Compare scores the current profile against every historical profile with
// the same cosine primitive the archetype matcher uses. An empty corpus is a
// defined result (unique, score 1), not an error.
func (c *Comparator) Compare(current domain.AxisVector, history []domain.HistoricalProfile) *domain.DesignerInsights {
	if len(history) == 0 {
		return &domain.DesignerInsights{
			Uniqueness:  domain.UniquenessUnique,
			Score:       1.0,
			Description: "First profile of its kind: there are no completed projects to compare against yet.",
			TopMatches:  []domain.ProfileMatch{},
		}
	}

	currentOrdered := current.Ordered()
	similarities := make([]float64, len(history))

	// Each task writes its own index, so the result order is deterministic
	// regardless of completion order.
	p := pool.New().WithMaxGoroutines(scoringConcurrency)
	for i := range history {
		i := i
		p.Go(func() {
			similarities[i] = matcher.CosineSimilarity(currentOrdered, history[i].Axes.Ordered())
		})
	}
	p.Wait()

	var maxSim, sumSim float64
	var crowd int
	for _, sim := range similarities {
		if sim > maxSim {
			maxSim = sim
		}
		if sim > crowdSimilarity {
			crowd++
		}
		sumSim += sim
	}
	avgSim := sumSim / float64(len(similarities))

	insights := &domain.DesignerInsights{
		Score:      1 - avgSim,
		TopMatches: c.topMatches(current, history, similarities),
	}

	switch {
	case maxSim > typicalSimilarity:
		insights.Uniqueness = domain.UniquenessTypical
		pct := int(float64(crowd) / float64(len(history)) * 100)
		insights.Description = fmt.Sprintf("A familiar profile: %d%% of your past projects share a similar style direction.", pct)
	case maxSim > unusualSimilarity:
		insights.Uniqueness = domain.UniquenessUnusual
		insights.Description = "This client overlaps with some of your past work but combines preferences in an uncommon way."
	default:
		insights.Uniqueness = domain.UniquenessUnique
		insights.Description = "This combination of preferences is unlike any of your past clients."
	}

	if c.logger != nil {
		c.logger.Debug("Historical comparison computed",
			zap.String("uniqueness", insights.Uniqueness),
			zap.Int("corpus", len(history)),
			zap.Float64("max_similarity", maxSim),
		)
	}
	return insights
}

// topMatches returns the highest-similarity historical entries annotated with
// a per-axis agreement breakdown.
func (c *Comparator) topMatches(current domain.AxisVector, history []domain.HistoricalProfile, similarities []float64) []domain.ProfileMatch {
	order := make([]int, len(history))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return similarities[order[a]] > similarities[order[b]]
	})

	count := topMatchCount
	if count > len(order) {
		count = len(order)
	}

	matches := make([]domain.ProfileMatch, 0, count)
	for _, idx := range order[:count] {
		entry := history[idx]
		match := domain.ProfileMatch{
			ProjectID:   entry.ProjectID,
			ProjectName: entry.ProjectName,
			Similarity:  similarities[idx],
			Matches:     []string{},
			Differences: []string{},
		}
		for _, axis := range domain.Axes {
			cur := current[axis.ID]
			past := entry.Axes[axis.ID]
			// Too weak a signal on either side says nothing.
			if abs(cur) <= poleThreshold || abs(past) <= poleThreshold {
				continue
			}
			if (cur > 0) == (past > 0) {
				match.Matches = append(match.Matches, axis.PoleLabel(cur))
			} else {
				match.Differences = append(match.Differences, fmt.Sprintf("%s vs %s", axis.PoleLabel(cur), axis.PoleLabel(past)))
			}
		}
		matches = append(matches, match)
	}
	return matches
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
