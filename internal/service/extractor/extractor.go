package extractor

import (
	"strings"

	"github.com/atelierkit/style-engine-go/internal/domain"
	"github.com/atelierkit/style-engine-go/internal/util"
	"go.uber.org/zap"
)

// Evidence weights per answer shape. An explicit single pick is stronger
// evidence than a multi-select that spreads intent across many axes.
const (
	weightStyleCard  = 0.9
	weightSlider     = 0.8
	weightTypography = 0.7
	weightPalette    = 0.6
	weightStyleChips = 0.5
	weightBrandWord  = 0.4
)

// Extractor maps typed step answers to evidence tuples. Stateless; every
// mapping is a pure function and partial or malformed data yields no evidence
// rather than an error.
type Extractor struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// ExtractAll walks the answer set in canonical step order and concatenates the
// evidence of every answered step. Comparisons are scored by the pairwise
// aggregator and business context feeds the industry prior, so neither emits
// evidence here.
func (e *Extractor) ExtractAll(set domain.AnswerSet) []domain.Evidence {
	var evidence []domain.Evidence
	for _, step := range domain.StepOrder {
		switch step {
		case domain.StepStyleCards:
			evidence = append(evidence, e.extractStyleCards(set.StyleCards)...)
		case domain.StepStyleChips:
			evidence = append(evidence, e.extractStyleChips(set.StyleChips)...)
		case domain.StepPalette:
			evidence = append(evidence, e.extractPalette(set.Palette)...)
		case domain.StepTypography:
			evidence = append(evidence, e.extractTypography(set.Typography)...)
		case domain.StepSliders:
			evidence = append(evidence, e.extractSliders(set.Sliders)...)
		case domain.StepBrandWords:
			evidence = append(evidence, e.extractBrandWords(set.BrandWords)...)
		}
	}
	if e.logger != nil {
		e.logger.Debug("Evidence extracted", zap.Int("count", len(evidence)))
	}
	return evidence
}

func (e *Extractor) extractStyleCards(ans *domain.StyleCardsAnswer) []domain.Evidence {
	if ans == nil {
		return nil
	}
	return styleEvidence(ans.Style, weightStyleCard)
}

func (e *Extractor) extractStyleChips(ans *domain.StyleChipsAnswer) []domain.Evidence {
	if ans == nil || len(ans.Styles) == 0 {
		return nil
	}
	// The fixed chip budget is split across selections so picking everything
	// says nothing.
	perChip := weightStyleChips / float64(len(ans.Styles))
	var out []domain.Evidence
	for _, style := range ans.Styles {
		out = append(out, styleEvidence(style, perChip)...)
	}
	return out
}

func (e *Extractor) extractPalette(ans *domain.PaletteAnswer) []domain.Evidence {
	if ans == nil {
		return nil
	}
	var out []domain.Evidence
	if deltas, ok := paletteDeltas[util.Normalize(ans.Name)]; ok {
		for _, axis := range domain.Axes {
			if d, present := deltas[axis.ID]; present {
				out = append(out, domain.Evidence{Axis: axis.ID, Delta: d, Weight: weightPalette})
			}
		}
	}
	out = append(out, e.extractSwatches(ans.Colors)...)
	return out
}

// extractSwatches reads temperature and intensity straight off the hex values:
// the red-blue balance drives warm/cool, channel spread (saturation) drives
// bold/subtle. Unparseable entries are skipped.
func (e *Extractor) extractSwatches(colors []string) []domain.Evidence {
	if len(colors) == 0 {
		return nil
	}
	perColor := weightPalette / float64(len(colors))
	var out []domain.Evidence
	for _, hex := range colors {
		r, g, b, ok := parseHexColor(hex)
		if !ok {
			continue
		}
		_ = g
		warmth := (float64(r) - float64(b)) / 255
		if warmth != 0 {
			out = append(out, domain.Evidence{Axis: domain.AxisWarmCool, Delta: warmth, Weight: perColor})
		}
		saturation := channelSpread(r, g, b)
		// 0.45 is the observed midpoint between muted and saturated brand
		// palettes; below it the swatch reads as subtle.
		intensity := util.Clamp((saturation-0.45)*2, -1, 1)
		if intensity != 0 {
			out = append(out, domain.Evidence{Axis: domain.AxisBoldSubtle, Delta: intensity, Weight: perColor})
		}
	}
	return out
}

func (e *Extractor) extractTypography(ans *domain.TypographyAnswer) []domain.Evidence {
	if ans == nil {
		return nil
	}
	deltas, ok := typographyDeltas[util.Normalize(ans.Category)]
	if !ok {
		return nil
	}
	var out []domain.Evidence
	for _, axis := range domain.Axes {
		if d, present := deltas[axis.ID]; present {
			out = append(out, domain.Evidence{Axis: axis.ID, Delta: d, Weight: weightTypography})
		}
	}
	return out
}

func (e *Extractor) extractSliders(ans *domain.SlidersAnswer) []domain.Evidence {
	if ans == nil || len(ans.Values) == 0 {
		return nil
	}
	var out []domain.Evidence
	// Catalogue order, not map order: fold order must be deterministic.
	for _, axis := range domain.Axes {
		raw, present := ans.Values[string(axis.ID)]
		if !present {
			continue
		}
		delta := util.Clamp((raw-50)/50, -1, 1)
		out = append(out, domain.Evidence{Axis: axis.ID, Delta: delta, Weight: weightSlider})
	}
	return out
}

func (e *Extractor) extractBrandWords(ans *domain.BrandWordsAnswer) []domain.Evidence {
	if ans == nil || len(ans.Words) == 0 {
		return nil
	}
	var out []domain.Evidence
	for _, word := range ans.Words {
		deltas, ok := brandWordDeltas[util.Normalize(word)]
		if !ok {
			continue
		}
		for _, axis := range domain.Axes {
			if d, present := deltas[axis.ID]; present {
				out = append(out, domain.Evidence{Axis: axis.ID, Delta: d, Weight: weightBrandWord})
			}
		}
	}
	return out
}

func styleEvidence(style string, weight float64) []domain.Evidence {
	deltas, ok := styleDeltas[util.Normalize(style)]
	if !ok {
		return nil
	}
	out := make([]domain.Evidence, 0, len(deltas))
	for _, axis := range domain.Axes {
		if d, present := deltas[axis.ID]; present {
			out = append(out, domain.Evidence{Axis: axis.ID, Delta: d, Weight: weight})
		}
	}
	return out
}

func parseHexColor(s string) (r, g, b uint8, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	var vals [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[i*2])
		lo, ok2 := hexDigit(s[i*2+1])
		if !ok1 || !ok2 {
			return 0, 0, 0, false
		}
		vals[i] = hi<<4 | lo
	}
	return vals[0], vals[1], vals[2], true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func channelSpread(r, g, b uint8) float64 {
	max := r
	if g > max {
		max = g
	}
	if b > max {
		max = b
	}
	min := r
	if g < min {
		min = g
	}
	if b < min {
		min = b
	}
	return float64(max-min) / 255
}
