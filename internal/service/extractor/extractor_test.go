package extractor

import (
	"math"
	"testing"

	"github.com/atelierkit/style-engine-go/internal/domain"
	"go.uber.org/zap"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func findEvidence(t *testing.T, evidence []domain.Evidence, axis domain.AxisID) domain.Evidence {
	t.Helper()
	for _, ev := range evidence {
		if ev.Axis == axis {
			return ev
		}
	}
	t.Fatalf("no evidence for axis %s", axis)
	return domain.Evidence{}
}

func TestExtractAllEmptySet(t *testing.T) {
	e := New(zap.NewNop())
	if got := e.ExtractAll(domain.AnswerSet{}); len(got) != 0 {
		t.Fatalf("expected no evidence, got %d items", len(got))
	}
}

func TestExtractStyleCardKnownStyle(t *testing.T) {
	e := New(zap.NewNop())
	evidence := e.ExtractAll(domain.AnswerSet{
		StyleCards: &domain.StyleCardsAnswer{Style: "Minimalist"},
	})

	ev := findEvidence(t, evidence, domain.AxisMinimalExpressive)
	if !approx(ev.Delta, 0.8) || !approx(ev.Weight, 0.9) {
		t.Fatalf("unexpected card evidence: %+v", ev)
	}
}

func TestExtractStyleCardUnknownStyle(t *testing.T) {
	e := New(zap.NewNop())
	evidence := e.ExtractAll(domain.AnswerSet{
		StyleCards: &domain.StyleCardsAnswer{Style: "brutalist-vaporwave"},
	})
	if len(evidence) != 0 {
		t.Fatalf("unknown style must contribute nothing, got %d items", len(evidence))
	}
}

func TestExtractStyleChipsSplitWeight(t *testing.T) {
	e := New(zap.NewNop())
	evidence := e.ExtractAll(domain.AnswerSet{
		StyleChips: &domain.StyleChipsAnswer{Styles: []string{"bold", "organic"}},
	})

	ev := findEvidence(t, evidence, domain.AxisBoldSubtle)
	if !approx(ev.Weight, 0.25) {
		t.Fatalf("chip weight must split across selections, got %v", ev.Weight)
	}
}

func TestExtractPaletteNameAndSwatches(t *testing.T) {
	e := New(zap.NewNop())
	evidence := e.ExtractAll(domain.AnswerSet{
		Palette: &domain.PaletteAnswer{
			Name:   "Earthy",
			Colors: []string{"#ff8800"},
		},
	})

	// Named palette lookup plus a warm swatch: both must land on warm_cool.
	var warmCount int
	for _, ev := range evidence {
		if ev.Axis == domain.AxisWarmCool {
			warmCount++
		}
	}
	if warmCount < 2 {
		t.Fatalf("expected palette-name and swatch evidence on warm_cool, got %d", warmCount)
	}
}

func TestExtractSwatchesSkipsUnparseable(t *testing.T) {
	e := New(zap.NewNop())
	evidence := e.ExtractAll(domain.AnswerSet{
		Palette: &domain.PaletteAnswer{Colors: []string{"not-a-color", "#12"}},
	})
	if len(evidence) != 0 {
		t.Fatalf("unparseable swatches must be skipped, got %d items", len(evidence))
	}
}

func TestExtractSwatchWarmth(t *testing.T) {
	e := New(zap.NewNop())

	warm := e.ExtractAll(domain.AnswerSet{
		Palette: &domain.PaletteAnswer{Colors: []string{"#ff0000"}},
	})
	cool := e.ExtractAll(domain.AnswerSet{
		Palette: &domain.PaletteAnswer{Colors: []string{"#0000ff"}},
	})

	if findEvidence(t, warm, domain.AxisWarmCool).Delta <= 0 {
		t.Fatal("pure red must read warm")
	}
	if findEvidence(t, cool, domain.AxisWarmCool).Delta >= 0 {
		t.Fatal("pure blue must read cool")
	}
}

func TestExtractTypography(t *testing.T) {
	e := New(zap.NewNop())
	evidence := e.ExtractAll(domain.AnswerSet{
		Typography: &domain.TypographyAnswer{Category: "Serif"},
	})

	ev := findEvidence(t, evidence, domain.AxisModernClassic)
	if !approx(ev.Delta, -0.6) || !approx(ev.Weight, 0.7) {
		t.Fatalf("unexpected typography evidence: %+v", ev)
	}
}

func TestExtractSlidersNeutralAndExtremes(t *testing.T) {
	e := New(zap.NewNop())
	evidence := e.ExtractAll(domain.AnswerSet{
		Sliders: &domain.SlidersAnswer{Values: map[string]float64{
			string(domain.AxisWarmCool):      100,
			string(domain.AxisBoldSubtle):    0,
			string(domain.AxisModernClassic): 50,
		}},
	})

	if !approx(findEvidence(t, evidence, domain.AxisWarmCool).Delta, 1) {
		t.Fatal("slider at 100 must map to +1")
	}
	if !approx(findEvidence(t, evidence, domain.AxisBoldSubtle).Delta, -1) {
		t.Fatal("slider at 0 must map to -1")
	}
	if !approx(findEvidence(t, evidence, domain.AxisModernClassic).Delta, 0) {
		t.Fatal("slider at 50 must map to 0")
	}
}

func TestExtractSlidersDeterministicOrder(t *testing.T) {
	e := New(zap.NewNop())
	values := map[string]float64{}
	for _, axis := range domain.Axes {
		values[string(axis.ID)] = 80
	}

	first := e.ExtractAll(domain.AnswerSet{Sliders: &domain.SlidersAnswer{Values: values}})
	for trial := 0; trial < 5; trial++ {
		again := e.ExtractAll(domain.AnswerSet{Sliders: &domain.SlidersAnswer{Values: values}})
		for i := range first {
			if first[i] != again[i] {
				t.Fatalf("extraction order not deterministic at %d: %+v vs %+v", i, first[i], again[i])
			}
		}
	}
}

func TestExtractBrandWordsVocabularyOnly(t *testing.T) {
	e := New(zap.NewNop())
	evidence := e.ExtractAll(domain.AnswerSet{
		BrandWords: &domain.BrandWordsAnswer{Words: []string{"Warm", "xylophone"}},
	})

	ev := findEvidence(t, evidence, domain.AxisWarmCool)
	if !approx(ev.Delta, 0.7) || !approx(ev.Weight, 0.4) {
		t.Fatalf("unexpected brand word evidence: %+v", ev)
	}
	if len(evidence) != 1 {
		t.Fatalf("out-of-vocabulary word must contribute nothing, got %d items", len(evidence))
	}
}

func TestParseHexColor(t *testing.T) {
	r, g, b, ok := parseHexColor(" #A1b2C3 ")
	if !ok || r != 0xa1 || g != 0xb2 || b != 0xc3 {
		t.Fatalf("unexpected parse: %v %v %v %v", r, g, b, ok)
	}
	if _, _, _, ok := parseHexColor("#abcd"); ok {
		t.Fatal("short form must be rejected")
	}
	if _, _, _, ok := parseHexColor("#zzzzzz"); ok {
		t.Fatal("non-hex digits must be rejected")
	}
}
