package profile

import (
	"github.com/atelierkit/style-engine-go/internal/domain"
	"github.com/atelierkit/style-engine-go/internal/util"
)

// personalityArchetypeScore is the minimum top-archetype match for its
// personality adjectives to feed the recommendations.
const personalityArchetypeScore = 50

const maxPersonalityWords = 6

// deriveRecommendations is a read-only pass over the finished axis and
// confidence maps; it never feeds back into aggregation.
func deriveRecommendations(p *domain.StyleProfile) domain.Recommendations {
	rec := domain.Recommendations{
		FontCategories:   fontCategories(p.Axes),
		BrandPersonality: brandPersonality(p),
	}
	return rec
}

func fontCategories(axes domain.AxisVector) []domain.FontRecommendation {
	var out []domain.FontRecommendation

	switch {
	case axes[domain.AxisModernClassic] > 0.3:
		out = append(out, domain.FontRecommendation{
			Category: "sans-serif",
			Reason:   "The profile leans Modern; clean sans-serifs reinforce that without extra ornament.",
		})
	case axes[domain.AxisModernClassic] < -0.3:
		out = append(out, domain.FontRecommendation{
			Category: "serif",
			Reason:   "The profile leans Classic; a well-cut serif carries that heritage.",
		})
	default:
		out = append(out, domain.FontRecommendation{
			Category: "sans-serif",
			Reason:   "No strong era preference yet; a neutral sans-serif keeps options open.",
		})
	}

	if axes[domain.AxisBoldSubtle] > 0.5 {
		out = append(out, domain.FontRecommendation{
			Category: "display",
			Reason:   "Strong Bold lean; a display face for headlines gives the volume the client wants.",
		})
	}
	if axes[domain.AxisOrganicGeometric] > 0.5 && axes[domain.AxisPlayfulSerious] > 0 {
		out = append(out, domain.FontRecommendation{
			Category: "script",
			Reason:   "Organic and playful signals together; a script accent face adds the hand-made note.",
		})
	}
	if axes[domain.AxisOrganicGeometric] < -0.5 && axes[domain.AxisModernClassic] > 0 {
		out = append(out, domain.FontRecommendation{
			Category: "monospace",
			Reason:   "Geometric, modern signals; a monospace accent underlines the technical character.",
		})
	}
	return out
}

func brandPersonality(p *domain.StyleProfile) []string {
	var words []string
	if len(p.Archetypes) > 0 && p.Archetypes[0].MatchScore > personalityArchetypeScore {
		words = append(words, p.Archetypes[0].Personality...)
	}
	// Strong axes contribute their resolved pole as an adjective-ish label.
	for _, axis := range domain.Axes {
		if p.Confidence[axis.ID] >= 0.7 {
			words = append(words, axis.PoleLabel(p.Axes[axis.ID]))
		}
	}
	words = util.Dedupe(words)
	if len(words) > maxPersonalityWords {
		words = words[:maxPersonalityWords]
	}
	return words
}
