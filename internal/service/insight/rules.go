package insight

import "github.com/atelierkit/style-engine-go/internal/domain"

// conflictRule fires when a specific axis combination pulls in directions that
// are hard to serve in one design. Rules are independently authored and
// order-independent.
type conflictRule struct {
	Title       string
	Description string
	Related     []domain.AxisID
	When        func(axes domain.AxisVector) bool
}

var conflictRuleTable = []conflictRule{
	{
		Title:       "Warm palette, cold structure",
		Description: "The color signals lean warm while the layout signals lean strongly modern and geometric. Consider warm accents inside a modern frame rather than splitting the difference everywhere.",
		Related:     []domain.AxisID{domain.AxisWarmCool, domain.AxisModernClassic},
		When: func(axes domain.AxisVector) bool {
			return axes[domain.AxisWarmCool] > 0.4 && axes[domain.AxisModernClassic] > 0.6
		},
	},
	{
		Title:       "Minimal but loud",
		Description: "Strong pulls toward both minimalism and boldness. These can coexist (one oversized statement per view) but default executions of either will fight the other.",
		Related:     []domain.AxisID{domain.AxisMinimalExpressive, domain.AxisBoldSubtle},
		When: func(axes domain.AxisVector) bool {
			return axes[domain.AxisMinimalExpressive] > 0.5 && axes[domain.AxisBoldSubtle] > 0.5
		},
	},
	{
		Title:       "Playful premium",
		Description: "The profile wants to be playful and luxurious at once. Decide early whether humor or polish leads; luxury cues read as ironic next to loud playfulness.",
		Related:     []domain.AxisID{domain.AxisPlayfulSerious, domain.AxisLuxuryAccessible},
		When: func(axes domain.AxisVector) bool {
			return axes[domain.AxisPlayfulSerious] > 0.5 && axes[domain.AxisLuxuryAccessible] > 0.5
		},
	},
	{
		Title:       "Organic shapes, classic bones",
		Description: "Strong organic leanings next to a strong classic preference tend to produce crowded, ornamental layouts. Anchor one of the two and let the other appear as texture.",
		Related:     []domain.AxisID{domain.AxisOrganicGeometric, domain.AxisModernClassic},
		When: func(axes domain.AxisVector) bool {
			return axes[domain.AxisOrganicGeometric] > 0.6 && axes[domain.AxisModernClassic] < -0.6
		},
	},
}

// crossSignalRule compares answers from two different steps for known
// discordant pairings.
type crossSignalRule struct {
	Palette     string
	Typography  string
	Title       string
	Description string
}

var crossSignalRuleTable = []crossSignalRule{
	{
		Palette: "neon", Typography: "serif",
		Title:       "Neon colors with serif type",
		Description: "A neon palette next to traditional serif typography is a known clash. Confirm which of the two the client actually cares about.",
	},
	{
		Palette: "earthy", Typography: "monospace",
		Title:       "Earthy palette with monospace type",
		Description: "Earthy, organic color choices rarely sit well with technical monospace typography. Worth a clarifying question.",
	},
	{
		Palette: "pastel", Typography: "display",
		Title:       "Soft palette with loud type",
		Description: "Pastel palettes read soft while display typography reads loud. One of these signals is probably aspirational rather than real.",
	},
	{
		Palette: "monochrome", Typography: "script",
		Title:       "Monochrome palette with script type",
		Description: "A strict monochrome palette with decorative script type sends mixed restraint signals. Check which mood the client is after.",
	},
}
