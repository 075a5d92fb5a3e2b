package domain

// Archetype is a named reference style vector with descriptive metadata.
// Reference vectors use the canonical [-1,1] scale.
type Archetype struct {
	Name        string     `json:"name"`
	Vector      AxisVector `json:"vector"`
	Description string     `json:"description"`
	Personality []string   `json:"personality"`
}

// ArchetypeCatalogue is the fixed set of reference archetypes. Declaration
// order is the tie-break for equal match scores.
var ArchetypeCatalogue = []Archetype{
	{
		Name: "Modern Minimalist",
		Vector: AxisVector{
			AxisModernClassic: 0.8, AxisMinimalExpressive: 0.9, AxisPlayfulSerious: -0.2,
			AxisWarmCool: -0.3, AxisBoldSubtle: -0.2, AxisOrganicGeometric: -0.6, AxisLuxuryAccessible: 0.1,
		},
		Description: "Clean lines, generous white space, and restrained palettes. Nothing that doesn't earn its place.",
		Personality: []string{"precise", "calm", "confident", "uncluttered"},
	},
	{
		Name: "Classic Elegance",
		Vector: AxisVector{
			AxisModernClassic: -0.8, AxisMinimalExpressive: 0.2, AxisPlayfulSerious: -0.5,
			AxisWarmCool: 0.2, AxisBoldSubtle: -0.4, AxisOrganicGeometric: 0.1, AxisLuxuryAccessible: 0.7,
		},
		Description: "Timeless serif typography, measured layouts, and a palette that will look right in twenty years.",
		Personality: []string{"refined", "trustworthy", "established", "graceful"},
	},
	{
		Name: "Bold Innovator",
		Vector: AxisVector{
			AxisModernClassic: 0.9, AxisMinimalExpressive: -0.1, AxisPlayfulSerious: 0.1,
			AxisWarmCool: -0.4, AxisBoldSubtle: 0.9, AxisOrganicGeometric: -0.5, AxisLuxuryAccessible: -0.1,
		},
		Description: "High contrast, oversized type, and unapologetic color. Built to stand out in a crowded feed.",
		Personality: []string{"daring", "energetic", "disruptive", "direct"},
	},
	{
		Name: "Warm Artisan",
		Vector: AxisVector{
			AxisModernClassic: -0.4, AxisMinimalExpressive: -0.5, AxisPlayfulSerious: 0.2,
			AxisWarmCool: 0.9, AxisBoldSubtle: -0.1, AxisOrganicGeometric: 0.8, AxisLuxuryAccessible: -0.3,
		},
		Description: "Earthy tones, hand-drawn texture, and imperfect edges. Feels made by people, not machines.",
		Personality: []string{"genuine", "crafted", "inviting", "grounded"},
	},
	{
		Name: "Playful Creative",
		Vector: AxisVector{
			AxisModernClassic: 0.3, AxisMinimalExpressive: -0.7, AxisPlayfulSerious: 0.9,
			AxisWarmCool: 0.5, AxisBoldSubtle: 0.6, AxisOrganicGeometric: 0.4, AxisLuxuryAccessible: -0.5,
		},
		Description: "Bright color, bouncy shapes, and a wink in every headline. Serious about not being serious.",
		Personality: []string{"joyful", "curious", "spirited", "approachable"},
	},
	{
		Name: "Corporate Professional",
		Vector: AxisVector{
			AxisModernClassic: 0.4, AxisMinimalExpressive: 0.5, AxisPlayfulSerious: -0.8,
			AxisWarmCool: -0.5, AxisBoldSubtle: -0.3, AxisOrganicGeometric: -0.4, AxisLuxuryAccessible: 0.2,
		},
		Description: "Structured grids, dependable blues, and typography that reads well in a boardroom.",
		Personality: []string{"credible", "organized", "capable", "steady"},
	},
	{
		Name: "Organic Naturalist",
		Vector: AxisVector{
			AxisModernClassic: -0.1, AxisMinimalExpressive: 0.3, AxisPlayfulSerious: 0.1,
			AxisWarmCool: 0.6, AxisBoldSubtle: -0.5, AxisOrganicGeometric: 0.9, AxisLuxuryAccessible: -0.2,
		},
		Description: "Botanical palettes, soft curves, and breathing room. Design that feels grown rather than built.",
		Personality: []string{"calm", "natural", "mindful", "honest"},
	},
	{
		Name: "Luxe Editorial",
		Vector: AxisVector{
			AxisModernClassic: 0.1, AxisMinimalExpressive: 0.4, AxisPlayfulSerious: -0.4,
			AxisWarmCool: -0.1, AxisBoldSubtle: 0.3, AxisOrganicGeometric: -0.2, AxisLuxuryAccessible: 0.9,
		},
		Description: "Magazine-grade art direction: dramatic photography, fine rules, and restrained gold accents.",
		Personality: []string{"polished", "exclusive", "sophisticated", "assured"},
	},
}
