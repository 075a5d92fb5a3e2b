package insight

import (
	"reflect"
	"strings"
	"testing"

	"github.com/atelierkit/style-engine-go/internal/domain"
	"go.uber.org/zap"
)

func flatProfile(score, confidence float64, signals int) *domain.StyleProfile {
	p := &domain.StyleProfile{
		Axes:        domain.ZeroVector(),
		Confidence:  map[domain.AxisID]float64{},
		SignalCount: signals,
	}
	for _, axis := range domain.Axes {
		p.Axes[axis.ID] = score
		p.Confidence[axis.ID] = confidence
	}
	return p
}

func TestGenerateNilProfile(t *testing.T) {
	g := New(zap.NewNop())
	report := g.Generate(Input{})

	if len(report.Insights) != 0 {
		t.Fatalf("expected no insights, got %d", len(report.Insights))
	}
	if report.Summary == "" {
		t.Fatal("summary must always be present")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	g := New(zap.NewNop())
	in := Input{
		Profile: flatProfile(0.6, 0.8, 12),
		Answers: domain.AnswerSet{
			Palette:    &domain.PaletteAnswer{Name: "neon"},
			Typography: &domain.TypographyAnswer{Category: "serif"},
		},
	}

	first := g.Generate(in)
	for i := 0; i < 5; i++ {
		if again := g.Generate(in); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestGenerateSeverityOrdering(t *testing.T) {
	g := New(zap.NewNop())
	// High warm + modern triggers a tension; high confidence triggers strong
	// preferences; the tension must sort first.
	profile := flatProfile(0, 0.9, 10)
	profile.Axes[domain.AxisWarmCool] = 0.5
	profile.Axes[domain.AxisModernClassic] = 0.7

	report := g.Generate(Input{Profile: profile})

	if len(report.Insights) == 0 {
		t.Fatal("expected insights")
	}
	if report.Insights[0].Severity != domain.SeverityImportant {
		t.Fatalf("expected important severity first, got %s", report.Insights[0].Severity)
	}
	for i := 1; i < len(report.Insights); i++ {
		if domain.SeverityRank(report.Insights[i].Severity) < domain.SeverityRank(report.Insights[i-1].Severity) {
			t.Fatalf("severity order violated at %d", i)
		}
	}
}

func TestGenerateStrongAndUncertainAreas(t *testing.T) {
	g := New(zap.NewNop())
	profile := flatProfile(0, 0.5, 10)
	profile.Axes[domain.AxisWarmCool] = 0.8
	profile.Confidence[domain.AxisWarmCool] = 0.9
	profile.Confidence[domain.AxisBoldSubtle] = 0.1

	report := g.Generate(Input{Profile: profile})

	if len(report.StrongAreas) != 1 || report.StrongAreas[0] != "Warm" {
		t.Fatalf("expected strong area [Warm], got %v", report.StrongAreas)
	}
	if len(report.UncertainAreas) != 1 || report.UncertainAreas[0] != "Bold" {
		t.Fatalf("expected uncertain area [Bold], got %v", report.UncertainAreas)
	}
}

func TestGenerateBlendedArchetypeReplacesSingle(t *testing.T) {
	g := New(zap.NewNop())
	profile := flatProfile(0, 0.5, 10)
	profile.Archetypes = []domain.ArchetypeMatch{
		{Name: "Modern Minimalist", MatchScore: 82},
		{Name: "Corporate Professional", MatchScore: 78},
	}

	report := g.Generate(Input{Profile: profile})

	var blended, single bool
	for _, ins := range report.Insights {
		switch ins.Type {
		case domain.InsightBlendedReference:
			blended = true
		case domain.InsightReference:
			single = true
		}
	}
	if !blended {
		t.Fatal("expected a blended reference insight for close top matches")
	}
	if single {
		t.Fatal("blended insight must replace the single-archetype insight")
	}
}

func TestGenerateSingleArchetypeWhenGapIsWide(t *testing.T) {
	g := New(zap.NewNop())
	profile := flatProfile(0, 0.5, 10)
	profile.Archetypes = []domain.ArchetypeMatch{
		{Name: "Warm Artisan", MatchScore: 88, Description: "Earthy tones."},
		{Name: "Playful Creative", MatchScore: 55},
	}

	report := g.Generate(Input{Profile: profile})

	var single bool
	for _, ins := range report.Insights {
		if ins.Type == domain.InsightReference {
			single = true
			if !strings.Contains(ins.Description, "88%") {
				t.Fatalf("expected match score in description, got %q", ins.Description)
			}
		}
	}
	if !single {
		t.Fatal("expected a single-archetype reference insight")
	}
}

func TestGenerateCrossSignalNeedsBothAnswers(t *testing.T) {
	g := New(zap.NewNop())
	profile := flatProfile(0, 0.5, 10)

	onlyPalette := g.Generate(Input{
		Profile: profile,
		Answers: domain.AnswerSet{Palette: &domain.PaletteAnswer{Name: "neon"}},
	})
	for _, ins := range onlyPalette.Insights {
		if ins.Type == domain.InsightCrossSignal {
			t.Fatal("cross-signal rule must not fire without a typography answer")
		}
	}

	both := g.Generate(Input{
		Profile: profile,
		Answers: domain.AnswerSet{
			Palette:    &domain.PaletteAnswer{Name: "Neon"},
			Typography: &domain.TypographyAnswer{Category: "Serif"},
		},
	})
	var fired bool
	for _, ins := range both.Insights {
		if ins.Type == domain.InsightCrossSignal {
			fired = true
		}
	}
	if !fired {
		t.Fatal("expected neon+serif cross-signal insight")
	}
}

func TestGenerateVolumeRules(t *testing.T) {
	g := New(zap.NewNop())

	thin := g.Generate(Input{Profile: flatProfile(0, 0.5, 2)})
	var thinWarning bool
	for _, ins := range thin.Insights {
		if ins.Type == domain.InsightDataVolume && ins.Severity == domain.SeverityWarning {
			thinWarning = true
		}
	}
	if !thinWarning {
		t.Fatal("expected thin-data warning below the signal floor")
	}

	rich := g.Generate(Input{Profile: flatProfile(0, 0.5, 20)})
	var richInfo bool
	for _, ins := range rich.Insights {
		if ins.Type == domain.InsightDataVolume && ins.Severity == domain.SeverityInfo {
			richInfo = true
		}
	}
	if !richInfo {
		t.Fatal("expected well-evidenced info above the signal ceiling")
	}
}

func TestGenerateClarityAndSummary(t *testing.T) {
	g := New(zap.NewNop())

	clear := g.Generate(Input{Profile: flatProfile(0.5, 0.8, 10)})
	if clear.OverallClarity != 80 {
		t.Fatalf("expected clarity 80, got %d", clear.OverallClarity)
	}
	if !strings.Contains(clear.Summary, "clear") {
		t.Fatalf("expected clear-tier summary, got %q", clear.Summary)
	}

	unsettled := g.Generate(Input{Profile: flatProfile(0.5, 0.2, 10)})
	if !strings.Contains(unsettled.Summary, "unsettled") {
		t.Fatalf("expected unsettled-tier summary, got %q", unsettled.Summary)
	}
}

func TestGenerateSummaryNamesTopArchetype(t *testing.T) {
	g := New(zap.NewNop())
	profile := flatProfile(0.2, 0.8, 10)
	profile.Archetypes = []domain.ArchetypeMatch{{Name: "Luxe Editorial", MatchScore: 74}}

	report := g.Generate(Input{Profile: profile})
	if !strings.Contains(report.Summary, "Luxe Editorial (74% match)") {
		t.Fatalf("expected archetype sentence in summary, got %q", report.Summary)
	}
}
