package domain

import "encoding/json"

// StepKey identifies one questionnaire step. Each step has its own answer
// shape; unknown keys are ignored wholesale rather than guessed at.
type StepKey string

const (
	StepStyleCards  StepKey = "style_cards"
	StepStyleChips  StepKey = "style_chips"
	StepPalette     StepKey = "palette"
	StepTypography  StepKey = "typography"
	StepSliders     StepKey = "sliders"
	StepBrandWords  StepKey = "brand_words"
	StepComparisons StepKey = "comparisons"
	StepBusiness    StepKey = "business"
)

// StepOrder is the canonical fold order for evidence extraction. The wizard
// may deliver answers in any map order; aggregation must not depend on it.
var StepOrder = []StepKey{
	StepBusiness,
	StepStyleCards,
	StepStyleChips,
	StepPalette,
	StepTypography,
	StepSliders,
	StepBrandWords,
	StepComparisons,
}

// RawAnswers is the read-only, possibly-partial snapshot the wizard hands us:
// step key to that step's raw payload.
type RawAnswers map[StepKey]json.RawMessage

// StyleCardsAnswer is a single-select style card pick.
type StyleCardsAnswer struct {
	Style string `json:"style"`
}

// StyleChipsAnswer is a multi-select of style keywords.
type StyleChipsAnswer struct {
	Styles []string `json:"styles"`
}

// PaletteAnswer carries a named palette pick plus the raw hex swatches.
type PaletteAnswer struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// TypographyAnswer is the selected font category (serif, sans-serif, display,
// script, monospace).
type TypographyAnswer struct {
	Category string `json:"category"`
}

// SlidersAnswer holds 0-100 slider positions keyed by axis id, as the wizard
// renders them. 50 is neutral.
type SlidersAnswer struct {
	Values map[string]float64 `json:"values"`
}

// BrandWordsAnswer is the free-text-adjacent adjective picker.
type BrandWordsAnswer struct {
	Words []string `json:"words"`
}

// ComparisonsAnswer is the ordered forced-choice sequence.
type ComparisonsAnswer struct {
	Choices []ComparisonChoice `json:"choices"`
}

// BusinessAnswer carries project context: industry feeds the defaults prior,
// budget/timeline feed the industry aggregate on completion.
type BusinessAnswer struct {
	Industry    string `json:"industry"`
	Budget      string `json:"budget"`
	Timeline    string `json:"timeline"`
	Description string `json:"description"`
}

// AnswerSet is the decoded, typed view of a raw snapshot. Nil fields mean the
// step is unanswered or its payload was malformed; both read the same way.
type AnswerSet struct {
	StyleCards  *StyleCardsAnswer
	StyleChips  *StyleChipsAnswer
	Palette     *PaletteAnswer
	Typography  *TypographyAnswer
	Sliders     *SlidersAnswer
	BrandWords  *BrandWordsAnswer
	Comparisons *ComparisonsAnswer
	Business    *BusinessAnswer
}

// DecodeAnswers maps a raw snapshot into the tagged union. Malformed payloads
// and unknown step keys are dropped silently: the questionnaire is resumable
// and partial-by-design, so partial data is never an error.
func DecodeAnswers(raw RawAnswers) AnswerSet {
	var set AnswerSet
	for key, payload := range raw {
		if len(payload) == 0 {
			continue
		}
		switch key {
		case StepStyleCards:
			set.StyleCards = decodeStep[StyleCardsAnswer](payload)
		case StepStyleChips:
			set.StyleChips = decodeStep[StyleChipsAnswer](payload)
		case StepPalette:
			set.Palette = decodeStep[PaletteAnswer](payload)
		case StepTypography:
			set.Typography = decodeStep[TypographyAnswer](payload)
		case StepSliders:
			set.Sliders = decodeStep[SlidersAnswer](payload)
		case StepBrandWords:
			set.BrandWords = decodeStep[BrandWordsAnswer](payload)
		case StepComparisons:
			set.Comparisons = decodeStep[ComparisonsAnswer](payload)
		case StepBusiness:
			set.Business = decodeStep[BusinessAnswer](payload)
		}
	}
	return set
}

func decodeStep[T any](payload json.RawMessage) *T {
	var v T
	if err := json.Unmarshal(payload, &v); err != nil {
		return nil
	}
	return &v
}
