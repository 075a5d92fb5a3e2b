package domain

// ComparisonPick is the outcome of one forced-choice comparison.
type ComparisonPick string

const (
	PickA    ComparisonPick = "A"
	PickB    ComparisonPick = "B"
	PickSkip ComparisonPick = "skip"
)

// ComparisonChoice is one forced-choice event. Order within the submitted
// sequence is semantically significant: later choices carry more recency
// weight. Confidence is the user-reported certainty in [0,1] and is ignored
// entirely for skips.
type ComparisonChoice struct {
	PairID     string         `json:"pairId"`
	Picked     ComparisonPick `json:"picked"`
	Confidence float64        `json:"confidence"`
}

// ComparisonOption is one side of a pair. Deltas are on the wide [-100,100]
// scale and cover only the axes this option actually says something about.
type ComparisonOption struct {
	Label    string             `json:"label"`
	Sublabel string             `json:"sublabel,omitempty"`
	Image    string             `json:"image,omitempty"`
	Deltas   map[AxisID]float64 `json:"deltas"`
}

// ComparisonPair is a static catalogue entry for one A/B question.
type ComparisonPair struct {
	ID         string           `json:"id"`
	Category   string           `json:"category"`
	Question   string           `json:"question"`
	OptionA    ComparisonOption `json:"optionA"`
	OptionB    ComparisonOption `json:"optionB"`
	TargetDims []AxisID         `json:"targetDims"`
}

// ComparisonCatalogue is the fixed set of A/B pairs the wizard presents.
var ComparisonCatalogue = []ComparisonPair{
	{
		ID:       "layout_grid_vs_flow",
		Category: "layout",
		Question: "Which layout feels more like your brand?",
		OptionA: ComparisonOption{
			Label: "Structured grid", Sublabel: "Aligned, systematic",
			Deltas: map[AxisID]float64{AxisOrganicGeometric: -25, AxisMinimalExpressive: 15},
		},
		OptionB: ComparisonOption{
			Label: "Free-flowing", Sublabel: "Overlapping, loose",
			Deltas: map[AxisID]float64{AxisOrganicGeometric: 25, AxisMinimalExpressive: -15},
		},
		TargetDims: []AxisID{AxisOrganicGeometric, AxisMinimalExpressive},
	},
	{
		ID:       "color_warm_vs_cool",
		Category: "color",
		Question: "Which palette draws you in?",
		OptionA: ComparisonOption{
			Label: "Terracotta & cream", Sublabel: "Sunlit, earthy",
			Deltas: map[AxisID]float64{AxisWarmCool: 30, AxisOrganicGeometric: 10},
		},
		OptionB: ComparisonOption{
			Label: "Slate & ice blue", Sublabel: "Crisp, technical",
			Deltas: map[AxisID]float64{AxisWarmCool: -30, AxisModernClassic: 10},
		},
		TargetDims: []AxisID{AxisWarmCool},
	},
	{
		ID:       "type_serif_vs_sans",
		Category: "typography",
		Question: "Which headline style fits better?",
		OptionA: ComparisonOption{
			Label: "High-contrast serif", Sublabel: "Editorial, refined",
			Deltas: map[AxisID]float64{AxisModernClassic: -25, AxisLuxuryAccessible: 20},
		},
		OptionB: ComparisonOption{
			Label: "Geometric sans", Sublabel: "Clean, contemporary",
			Deltas: map[AxisID]float64{AxisModernClassic: 25, AxisMinimalExpressive: 10},
		},
		TargetDims: []AxisID{AxisModernClassic, AxisLuxuryAccessible},
	},
	{
		ID:       "tone_playful_vs_serious",
		Category: "voice",
		Question: "Which tagline sounds more like you?",
		OptionA: ComparisonOption{
			Label: "\"Let's make something fun\"",
			Deltas: map[AxisID]float64{AxisPlayfulSerious: 30, AxisBoldSubtle: 10},
		},
		OptionB: ComparisonOption{
			Label: "\"Precision you can rely on\"",
			Deltas: map[AxisID]float64{AxisPlayfulSerious: -30, AxisLuxuryAccessible: 5},
		},
		TargetDims: []AxisID{AxisPlayfulSerious},
	},
	{
		ID:       "imagery_photo_vs_illustration",
		Category: "imagery",
		Question: "Which imagery direction appeals more?",
		OptionA: ComparisonOption{
			Label: "Candid photography", Sublabel: "Real people, natural light",
			Deltas: map[AxisID]float64{AxisOrganicGeometric: 20, AxisWarmCool: 10, AxisLuxuryAccessible: -10},
		},
		OptionB: ComparisonOption{
			Label: "Flat illustration", Sublabel: "Playful, graphic",
			Deltas: map[AxisID]float64{AxisPlayfulSerious: 20, AxisModernClassic: 15},
		},
		TargetDims: []AxisID{AxisOrganicGeometric, AxisPlayfulSerious},
	},
	{
		ID:       "density_sparse_vs_rich",
		Category: "layout",
		Question: "How much should a page hold?",
		OptionA: ComparisonOption{
			Label: "Lots of white space", Sublabel: "One message at a time",
			Deltas: map[AxisID]float64{AxisMinimalExpressive: 30, AxisBoldSubtle: -10},
		},
		OptionB: ComparisonOption{
			Label: "Rich and layered", Sublabel: "Texture and detail",
			Deltas: map[AxisID]float64{AxisMinimalExpressive: -30, AxisBoldSubtle: 15},
		},
		TargetDims: []AxisID{AxisMinimalExpressive, AxisBoldSubtle},
	},
	{
		ID:       "contrast_loud_vs_quiet",
		Category: "color",
		Question: "Which presence should the brand have?",
		OptionA: ComparisonOption{
			Label: "Loud and saturated", Sublabel: "Impossible to miss",
			Deltas: map[AxisID]float64{AxisBoldSubtle: 30, AxisPlayfulSerious: 10},
		},
		OptionB: ComparisonOption{
			Label: "Quiet and muted", Sublabel: "Discovered, not shouted",
			Deltas: map[AxisID]float64{AxisBoldSubtle: -30, AxisLuxuryAccessible: 15},
		},
		TargetDims: []AxisID{AxisBoldSubtle},
	},
	{
		ID:       "finish_premium_vs_approachable",
		Category: "positioning",
		Question: "Where should the brand sit?",
		OptionA: ComparisonOption{
			Label: "Boutique and premium", Sublabel: "Foil, heavy stock",
			Deltas: map[AxisID]float64{AxisLuxuryAccessible: 30, AxisMinimalExpressive: 10},
		},
		OptionB: ComparisonOption{
			Label: "Friendly and open", Sublabel: "For everyone",
			Deltas: map[AxisID]float64{AxisLuxuryAccessible: -30, AxisWarmCool: 15},
		},
		TargetDims: []AxisID{AxisLuxuryAccessible},
	},
	{
		ID:       "era_heritage_vs_future",
		Category: "positioning",
		Question: "Which story fits the brand?",
		OptionA: ComparisonOption{
			Label: "Rooted in tradition", Sublabel: "Craft since day one",
			Deltas: map[AxisID]float64{AxisModernClassic: -30, AxisOrganicGeometric: 10},
		},
		OptionB: ComparisonOption{
			Label: "Built for what's next", Sublabel: "Always iterating",
			Deltas: map[AxisID]float64{AxisModernClassic: 30, AxisBoldSubtle: 10},
		},
		TargetDims: []AxisID{AxisModernClassic},
	},
	{
		ID:       "shape_soft_vs_sharp",
		Category: "layout",
		Question: "Which shapes feel right?",
		OptionA: ComparisonOption{
			Label: "Soft curves", Sublabel: "Rounded corners, blobs",
			Deltas: map[AxisID]float64{AxisOrganicGeometric: 25, AxisWarmCool: 10, AxisPlayfulSerious: 10},
		},
		OptionB: ComparisonOption{
			Label: "Sharp angles", Sublabel: "Hard edges, precision",
			Deltas: map[AxisID]float64{AxisOrganicGeometric: -25, AxisPlayfulSerious: -10},
		},
		TargetDims: []AxisID{AxisOrganicGeometric},
	},
}

var comparisonPairByID = func() map[string]ComparisonPair {
	m := make(map[string]ComparisonPair, len(ComparisonCatalogue))
	for _, p := range ComparisonCatalogue {
		m[p.ID] = p
	}
	return m
}()

func ComparisonPairByID(id string) (ComparisonPair, bool) {
	p, ok := comparisonPairByID[id]
	return p, ok
}
