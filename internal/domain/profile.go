package domain

// ArchetypeMatch is one ranked entry in a profile's archetype list.
type ArchetypeMatch struct {
	Name        string   `json:"name"`
	MatchScore  int      `json:"matchScore"`
	Description string   `json:"description"`
	Personality []string `json:"personality"`
}

type FontRecommendation struct {
	Category string `json:"category"`
	Reason   string `json:"reason"`
}

type Recommendations struct {
	FontCategories   []FontRecommendation `json:"fontCategories"`
	BrandPersonality []string             `json:"brandPersonality"`
}

// StyleProfile is the aggregated artifact for one project at one point in
// time. It is a derived view recomputed from the full answer set on every
// request; the questionnaire answers stay authoritative.
type StyleProfile struct {
	Axes            AxisVector         `json:"axes"`
	Confidence      map[AxisID]float64 `json:"confidence"`
	SignalCount     int                `json:"signalCount"`
	Archetypes      []ArchetypeMatch   `json:"archetypes"`
	Recommendations Recommendations    `json:"recommendations"`
}

// MeanConfidence averages confidence across the full axis catalogue, counting
// axes with no recorded confidence as 0.
func (p *StyleProfile) MeanConfidence() float64 {
	if len(Axes) == 0 {
		return 0
	}
	var sum float64
	for _, a := range Axes {
		sum += p.Confidence[a.ID]
	}
	return sum / float64(len(Axes))
}
