package domain

import "time"

// IndustryCategory is the fixed key set industry aggregates are stored under.
// Free-text industry strings must pass through NormalizeIndustry before they
// touch this type, or aggregates fragment across near-duplicate keys.
type IndustryCategory string

const (
	IndustryTechnology IndustryCategory = "technology"
	IndustryHealthcare IndustryCategory = "healthcare"
	IndustryFinance    IndustryCategory = "finance"
	IndustryFood       IndustryCategory = "food"
	IndustryRetail     IndustryCategory = "retail"
	IndustryCreative   IndustryCategory = "creative"
	IndustryEducation  IndustryCategory = "education"
	IndustryLegal      IndustryCategory = "legal"
	IndustryFitness    IndustryCategory = "fitness"
	IndustryRealEstate IndustryCategory = "realestate"
	IndustryOther      IndustryCategory = "other"
)

// IndustryDefaults is the per-category running aggregate of completed
// projects. StyleScores are on the wide [-100,100] scale because this row is
// persisted and displayed as-is; conversion to the canonical scale happens at
// the engine boundary.
type IndustryDefaults struct {
	Industry         IndustryCategory `json:"industry"`
	SampleSize       int              `json:"sampleSize"`
	StyleScores      AxisVector       `json:"styleScores"`
	CommonStyles     []string         `json:"commonStyles"`
	PreferredColors  []string         `json:"preferredColors"`
	CommonTypography []string         `json:"commonTypography"`
	AverageBudget    string           `json:"averageBudget"`
	AverageTimeline  string           `json:"averageTimeline"`
	ConfidenceLevel  float64          `json:"confidenceLevel"`
	LastUpdated      time.Time        `json:"lastUpdated"`
}

// SeedConfidence is the trust level assigned to static seed defaults:
// low, illustrative only.
const SeedConfidence = 0.3

var industrySeeds = map[IndustryCategory]IndustryDefaults{
	IndustryTechnology: {
		StyleScores:      AxisVector{AxisModernClassic: 60, AxisMinimalExpressive: 45, AxisPlayfulSerious: -10, AxisWarmCool: -35, AxisBoldSubtle: 20, AxisOrganicGeometric: -40, AxisLuxuryAccessible: -5},
		CommonStyles:     []string{"minimalist", "modern", "corporate"},
		PreferredColors:  []string{"#2563EB", "#0F172A", "#F8FAFC"},
		CommonTypography: []string{"sans-serif", "monospace"},
		AverageBudget:    "$3,000 – $8,000",
		AverageTimeline:  "4–6 weeks",
	},
	IndustryHealthcare: {
		StyleScores:      AxisVector{AxisModernClassic: 25, AxisMinimalExpressive: 40, AxisPlayfulSerious: -35, AxisWarmCool: 15, AxisBoldSubtle: -25, AxisOrganicGeometric: 20, AxisLuxuryAccessible: -20},
		CommonStyles:     []string{"minimalist", "organic", "corporate"},
		PreferredColors:  []string{"#0D9488", "#FFFFFF", "#BFDBFE"},
		CommonTypography: []string{"sans-serif"},
		AverageBudget:    "$2,500 – $6,000",
		AverageTimeline:  "4–8 weeks",
	},
	IndustryFinance: {
		StyleScores:      AxisVector{AxisModernClassic: 10, AxisMinimalExpressive: 35, AxisPlayfulSerious: -60, AxisWarmCool: -30, AxisBoldSubtle: -15, AxisOrganicGeometric: -30, AxisLuxuryAccessible: 30},
		CommonStyles:     []string{"corporate", "classic", "minimalist"},
		PreferredColors:  []string{"#1E3A5F", "#0B5345", "#D4AF37"},
		CommonTypography: []string{"serif", "sans-serif"},
		AverageBudget:    "$5,000 – $15,000",
		AverageTimeline:  "6–10 weeks",
	},
	IndustryFood: {
		StyleScores:      AxisVector{AxisModernClassic: -10, AxisMinimalExpressive: -30, AxisPlayfulSerious: 30, AxisWarmCool: 55, AxisBoldSubtle: 25, AxisOrganicGeometric: 40, AxisLuxuryAccessible: -25},
		CommonStyles:     []string{"organic", "playful", "vintage"},
		PreferredColors:  []string{"#C2410C", "#FBBF24", "#3F6212"},
		CommonTypography: []string{"display", "script"},
		AverageBudget:    "$1,500 – $5,000",
		AverageTimeline:  "3–5 weeks",
	},
	IndustryRetail: {
		StyleScores:      AxisVector{AxisModernClassic: 30, AxisMinimalExpressive: -10, AxisPlayfulSerious: 20, AxisWarmCool: 20, AxisBoldSubtle: 35, AxisOrganicGeometric: -5, AxisLuxuryAccessible: -15},
		CommonStyles:     []string{"bold", "modern", "playful"},
		PreferredColors:  []string{"#DB2777", "#111827", "#FDE047"},
		CommonTypography: []string{"sans-serif", "display"},
		AverageBudget:    "$2,000 – $6,000",
		AverageTimeline:  "3–6 weeks",
	},
	IndustryCreative: {
		StyleScores:      AxisVector{AxisModernClassic: 35, AxisMinimalExpressive: -45, AxisPlayfulSerious: 40, AxisWarmCool: 10, AxisBoldSubtle: 50, AxisOrganicGeometric: 15, AxisLuxuryAccessible: -10},
		CommonStyles:     []string{"bold", "playful", "expressive"},
		PreferredColors:  []string{"#7C3AED", "#F97316", "#14B8A6"},
		CommonTypography: []string{"display", "sans-serif"},
		AverageBudget:    "$2,000 – $7,000",
		AverageTimeline:  "4–6 weeks",
	},
	IndustryEducation: {
		StyleScores:      AxisVector{AxisModernClassic: 15, AxisMinimalExpressive: 10, AxisPlayfulSerious: 15, AxisWarmCool: 25, AxisBoldSubtle: 5, AxisOrganicGeometric: 10, AxisLuxuryAccessible: -35},
		CommonStyles:     []string{"playful", "modern", "organic"},
		PreferredColors:  []string{"#2563EB", "#F59E0B", "#10B981"},
		CommonTypography: []string{"sans-serif"},
		AverageBudget:    "$1,500 – $4,500",
		AverageTimeline:  "4–6 weeks",
	},
	IndustryLegal: {
		StyleScores:      AxisVector{AxisModernClassic: -25, AxisMinimalExpressive: 30, AxisPlayfulSerious: -65, AxisWarmCool: -20, AxisBoldSubtle: -30, AxisOrganicGeometric: -25, AxisLuxuryAccessible: 35},
		CommonStyles:     []string{"classic", "corporate", "elegant"},
		PreferredColors:  []string{"#1F2937", "#7F1D1D", "#A16207"},
		CommonTypography: []string{"serif"},
		AverageBudget:    "$4,000 – $10,000",
		AverageTimeline:  "5–8 weeks",
	},
	IndustryFitness: {
		StyleScores:      AxisVector{AxisModernClassic: 45, AxisMinimalExpressive: 5, AxisPlayfulSerious: 25, AxisWarmCool: 5, AxisBoldSubtle: 60, AxisOrganicGeometric: -15, AxisLuxuryAccessible: -20},
		CommonStyles:     []string{"bold", "modern", "energetic"},
		PreferredColors:  []string{"#DC2626", "#0F172A", "#84CC16"},
		CommonTypography: []string{"display", "sans-serif"},
		AverageBudget:    "$1,500 – $5,000",
		AverageTimeline:  "3–5 weeks",
	},
	IndustryRealEstate: {
		StyleScores:      AxisVector{AxisModernClassic: 20, AxisMinimalExpressive: 30, AxisPlayfulSerious: -40, AxisWarmCool: 10, AxisBoldSubtle: -10, AxisOrganicGeometric: -20, AxisLuxuryAccessible: 45},
		CommonStyles:     []string{"elegant", "corporate", "minimalist"},
		PreferredColors:  []string{"#134E4A", "#D6B88C", "#FFFFFF"},
		CommonTypography: []string{"serif", "sans-serif"},
		AverageBudget:    "$3,000 – $9,000",
		AverageTimeline:  "4–7 weeks",
	},
	IndustryOther: {
		StyleScores:      AxisVector{AxisModernClassic: 15, AxisMinimalExpressive: 10, AxisPlayfulSerious: 0, AxisWarmCool: 5, AxisBoldSubtle: 5, AxisOrganicGeometric: 0, AxisLuxuryAccessible: 0},
		CommonStyles:     []string{"modern", "minimalist"},
		PreferredColors:  []string{"#334155", "#F1F5F9", "#2563EB"},
		CommonTypography: []string{"sans-serif"},
		AverageBudget:    "$2,000 – $6,000",
		AverageTimeline:  "4–6 weeks",
	},
}

// SeedDefaults returns the static seed aggregate for a category, used when no
// persisted aggregate exists. Unknown categories fall back to the generic
// "other" seed.
func SeedDefaults(industry IndustryCategory) IndustryDefaults {
	seed, ok := industrySeeds[industry]
	if !ok {
		seed = industrySeeds[IndustryOther]
		industry = IndustryOther
	}
	out := seed
	out.Industry = industry
	out.SampleSize = 0
	out.ConfidenceLevel = SeedConfidence
	out.StyleScores = seed.StyleScores.Clone()
	out.CommonStyles = append([]string(nil), seed.CommonStyles...)
	out.PreferredColors = append([]string(nil), seed.PreferredColors...)
	out.CommonTypography = append([]string(nil), seed.CommonTypography...)
	return out
}
