package extractor

import "github.com/atelierkit/style-engine-go/internal/domain"

// styleDeltas maps style card / chip keywords to axis pulls on the canonical
// scale. Shared by the single-select card step and the multi-select chip step.
var styleDeltas = map[string]map[domain.AxisID]float64{
	"minimalist": {
		domain.AxisMinimalExpressive: 0.8,
		domain.AxisModernClassic:     0.4,
		domain.AxisBoldSubtle:        -0.3,
	},
	"modern": {
		domain.AxisModernClassic:     0.8,
		domain.AxisOrganicGeometric:  -0.3,
		domain.AxisMinimalExpressive: 0.2,
	},
	"classic": {
		domain.AxisModernClassic:    -0.8,
		domain.AxisPlayfulSerious:   -0.3,
		domain.AxisLuxuryAccessible: 0.2,
	},
	"vintage": {
		domain.AxisModernClassic:    -0.7,
		domain.AxisWarmCool:         0.4,
		domain.AxisOrganicGeometric: 0.3,
	},
	"playful": {
		domain.AxisPlayfulSerious: 0.8,
		domain.AxisBoldSubtle:     0.3,
		domain.AxisWarmCool:       0.3,
	},
	"corporate": {
		domain.AxisPlayfulSerious:    -0.7,
		domain.AxisMinimalExpressive: 0.3,
		domain.AxisWarmCool:          -0.3,
	},
	"bold": {
		domain.AxisBoldSubtle:        0.8,
		domain.AxisMinimalExpressive: -0.2,
	},
	"elegant": {
		domain.AxisLuxuryAccessible: 0.6,
		domain.AxisBoldSubtle:       -0.4,
		domain.AxisModernClassic:    -0.3,
	},
	"luxury": {
		domain.AxisLuxuryAccessible: 0.8,
		domain.AxisPlayfulSerious:   -0.2,
	},
	"organic": {
		domain.AxisOrganicGeometric: 0.8,
		domain.AxisWarmCool:         0.3,
	},
	"geometric": {
		domain.AxisOrganicGeometric:  -0.8,
		domain.AxisMinimalExpressive: 0.2,
	},
	"expressive": {
		domain.AxisMinimalExpressive: -0.8,
		domain.AxisBoldSubtle:        0.3,
	},
	"friendly": {
		domain.AxisWarmCool:          0.6,
		domain.AxisLuxuryAccessible:  -0.4,
		domain.AxisPlayfulSerious:    0.3,
	},
	"energetic": {
		domain.AxisBoldSubtle:     0.6,
		domain.AxisPlayfulSerious: 0.4,
		domain.AxisModernClassic:  0.2,
	},
}

// paletteDeltas maps named palette picks to axis pulls. Swatch-level hex
// analysis supplements these with per-color temperature and intensity.
var paletteDeltas = map[string]map[domain.AxisID]float64{
	"earthy": {
		domain.AxisWarmCool:         0.7,
		domain.AxisOrganicGeometric: 0.5,
		domain.AxisBoldSubtle:       -0.2,
	},
	"pastel": {
		domain.AxisBoldSubtle:     -0.6,
		domain.AxisWarmCool:       0.3,
		domain.AxisPlayfulSerious: 0.3,
	},
	"monochrome": {
		domain.AxisMinimalExpressive: 0.7,
		domain.AxisWarmCool:          -0.3,
		domain.AxisLuxuryAccessible:  0.2,
	},
	"jewel": {
		domain.AxisLuxuryAccessible: 0.6,
		domain.AxisBoldSubtle:       0.4,
		domain.AxisWarmCool:         -0.1,
	},
	"neon": {
		domain.AxisBoldSubtle:     0.8,
		domain.AxisModernClassic:  0.5,
		domain.AxisPlayfulSerious: 0.4,
	},
	"muted": {
		domain.AxisBoldSubtle:        -0.7,
		domain.AxisMinimalExpressive: 0.3,
	},
	"ocean": {
		domain.AxisWarmCool:         -0.7,
		domain.AxisOrganicGeometric: 0.3,
	},
	"sunset": {
		domain.AxisWarmCool:   0.8,
		domain.AxisBoldSubtle: 0.3,
	},
}

// typographyDeltas maps the selected font category to axis pulls.
var typographyDeltas = map[string]map[domain.AxisID]float64{
	"serif": {
		domain.AxisModernClassic:    -0.6,
		domain.AxisLuxuryAccessible: 0.3,
	},
	"sans-serif": {
		domain.AxisModernClassic:     0.6,
		domain.AxisMinimalExpressive: 0.3,
	},
	"display": {
		domain.AxisBoldSubtle:        0.6,
		domain.AxisPlayfulSerious:    0.3,
		domain.AxisMinimalExpressive: -0.3,
	},
	"script": {
		domain.AxisOrganicGeometric: 0.5,
		domain.AxisWarmCool:         0.3,
		domain.AxisModernClassic:    -0.3,
	},
	"monospace": {
		domain.AxisModernClassic:    0.5,
		domain.AxisOrganicGeometric: -0.5,
		domain.AxisPlayfulSerious:   -0.2,
	},
}

// brandWordDeltas maps the adjective picker's vocabulary to axis pulls. Words
// outside the vocabulary contribute nothing.
var brandWordDeltas = map[string]map[domain.AxisID]float64{
	"innovative":    {domain.AxisModernClassic: 0.7, domain.AxisBoldSubtle: 0.2},
	"trustworthy":   {domain.AxisPlayfulSerious: -0.5, domain.AxisModernClassic: -0.2},
	"fun":           {domain.AxisPlayfulSerious: 0.8},
	"premium":       {domain.AxisLuxuryAccessible: 0.7},
	"approachable":  {domain.AxisLuxuryAccessible: -0.6, domain.AxisWarmCool: 0.3},
	"minimal":       {domain.AxisMinimalExpressive: 0.7},
	"vibrant":       {domain.AxisBoldSubtle: 0.6, domain.AxisWarmCool: 0.2},
	"calm":          {domain.AxisBoldSubtle: -0.6, domain.AxisOrganicGeometric: 0.2},
	"traditional":   {domain.AxisModernClassic: -0.7},
	"natural":       {domain.AxisOrganicGeometric: 0.7, domain.AxisWarmCool: 0.3},
	"professional":  {domain.AxisPlayfulSerious: -0.6, domain.AxisMinimalExpressive: 0.2},
	"creative":      {domain.AxisMinimalExpressive: -0.5, domain.AxisPlayfulSerious: 0.3},
	"sophisticated": {domain.AxisLuxuryAccessible: 0.6, domain.AxisBoldSubtle: -0.2},
	"warm":          {domain.AxisWarmCool: 0.7},
	"precise":       {domain.AxisOrganicGeometric: -0.6, domain.AxisMinimalExpressive: 0.3},
}
