package matcher

import (
	"math"
	"sort"

	"github.com/atelierkit/style-engine-go/internal/domain"
	"github.com/atelierkit/style-engine-go/internal/util"
	"go.uber.org/zap"
)

// CosineSimilarity compares two equal-length vectors. A zero-magnitude vector
// on either side yields 0, never NaN: no evidence means no resemblance.
// Shared primitive for archetype matching and historical comparison.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// ArchetypeMatcher ranks a profile's axis vector against the fixed archetype
// catalogue.
type ArchetypeMatcher struct {
	catalogue []domain.Archetype
	logger    *zap.Logger
}

func New(catalogue []domain.Archetype, logger *zap.Logger) *ArchetypeMatcher {
	return &ArchetypeMatcher{catalogue: catalogue, logger: logger}
}

// Match returns every archetype ranked descending by match score. The sort is
// stable, so equal scores keep catalogue declaration order.
func (m *ArchetypeMatcher) Match(axes domain.AxisVector) []domain.ArchetypeMatch {
	ordered := axes.Ordered()
	matches := make([]domain.ArchetypeMatch, 0, len(m.catalogue))
	for _, archetype := range m.catalogue {
		similarity := CosineSimilarity(ordered, archetype.Vector.Ordered())
		score := util.RoundToInt(util.Clamp(similarity*100, 0, 100))
		matches = append(matches, domain.ArchetypeMatch{
			Name:        archetype.Name,
			MatchScore:  score,
			Description: archetype.Description,
			Personality: append([]string(nil), archetype.Personality...),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	if m.logger != nil && len(matches) > 0 {
		m.logger.Debug("Archetypes ranked",
			zap.String("top", matches[0].Name),
			zap.Int("score", matches[0].MatchScore),
		)
	}
	return matches
}
