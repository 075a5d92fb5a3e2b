package domain

import "time"

// InsightSeverity orders insights for display: important first, info last.
type InsightSeverity string

const (
	SeverityImportant InsightSeverity = "important"
	SeverityWarning   InsightSeverity = "warning"
	SeverityInfo      InsightSeverity = "info"
)

// SeverityRank returns the sort rank for a severity tier. Unknown severities
// sort last.
func SeverityRank(s InsightSeverity) int {
	switch s {
	case SeverityImportant:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	default:
		return 3
	}
}

type InsightType string

const (
	InsightStrongPreference InsightType = "strong_preference"
	InsightUncertainty      InsightType = "uncertainty"
	InsightTension          InsightType = "tension"
	InsightReference        InsightType = "reference"
	InsightBlendedReference InsightType = "blended_reference"
	InsightCrossSignal      InsightType = "cross_signal"
	InsightDataVolume       InsightType = "data_volume"
)

// Insight is one finding produced by the rule engine.
type Insight struct {
	Type        InsightType     `json:"type"`
	Severity    InsightSeverity `json:"severity"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	RelatedAxes []AxisID        `json:"relatedAxes,omitempty"`
}

// StyleInsightsReport is the designer-facing insights panel payload.
type StyleInsightsReport struct {
	Insights       []Insight `json:"insights"`
	Summary        string    `json:"summary"`
	OverallClarity int       `json:"overallClarity"`
	StrongAreas    []string  `json:"strongAreas"`
	UncertainAreas []string  `json:"uncertainAreas"`
}

// HistoricalProfile is one completed past project in a designer's corpus.
// Axes are on the canonical [-1,1] scale.
type HistoricalProfile struct {
	ProjectID   string           `json:"projectId"`
	ProjectName string           `json:"projectName"`
	Industry    IndustryCategory `json:"industry"`
	Axes        AxisVector       `json:"axes"`
	CompletedAt time.Time        `json:"completedAt"`
}

// Uniqueness classifies how novel a profile is relative to a corpus.
const (
	UniquenessTypical = "typical"
	UniquenessUnusual = "unusual"
	UniquenessUnique  = "unique"
)

// ProfileMatch annotates one similar historical project with the axes the two
// profiles agree and disagree on.
type ProfileMatch struct {
	ProjectID   string   `json:"projectId"`
	ProjectName string   `json:"projectName"`
	Similarity  float64  `json:"similarity"`
	Matches     []string `json:"matches"`
	Differences []string `json:"differences"`
}

// DesignerInsights is the historical-comparison panel payload.
type DesignerInsights struct {
	Uniqueness  string         `json:"uniqueness"`
	Score       float64        `json:"score"`
	Description string         `json:"description"`
	TopMatches  []ProfileMatch `json:"topMatches"`
}

// Suggestions is the new-project pre-fill bundle derived from industry
// defaults. StylePreselections are on the canonical scale.
type Suggestions struct {
	StylePreselections AxisVector        `json:"stylePreselections"`
	ColorSuggestions   []string          `json:"colorSuggestions"`
	BudgetSuggestion   string            `json:"budgetSuggestion"`
	TimelineSuggestion string            `json:"timelineSuggestion"`
	ConfidenceHints    map[string]string `json:"confidenceHints"`
}
