package insight

import (
	"fmt"
	"sort"

	"github.com/atelierkit/style-engine-go/internal/domain"
	"github.com/atelierkit/style-engine-go/internal/util"
	"go.uber.org/zap"
)

// Confidence thresholds for the opinion rules.
const (
	strongConfidence    = 0.7
	uncertainConfidence = 0.35
)

// Archetype rule thresholds.
const (
	referenceMatchScore = 70
	blendedGap          = 10
)

// Volume rule thresholds.
const (
	lowSignalCount  = 5
	highSignalCount = 15
)

// Input is everything the rule engine reads: the finished profile plus the
// cross-step answers it compares against each other.
type Input struct {
	Profile *domain.StyleProfile
	Answers domain.AnswerSet
}

// Generator is a rule engine over derived profile state. Every rule is an
// independent predicate; no rule may assume another has or hasn't fired. The
// output is fully deterministic for a fixed input.
type Generator struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Generator {
	return &Generator{logger: logger}
}

func (g *Generator) Generate(in Input) *domain.StyleInsightsReport {
	report := &domain.StyleInsightsReport{
		StrongAreas:    []string{},
		UncertainAreas: []string{},
	}
	if in.Profile == nil {
		report.Summary = summaryFor(0, 0, nil)
		return report
	}

	var insights []domain.Insight
	insights = append(insights, g.confidenceRules(in.Profile, report)...)
	conflicts := g.conflictRules(in.Profile)
	insights = append(insights, conflicts...)
	insights = append(insights, g.archetypeRules(in.Profile)...)
	crossSignals := g.crossSignalRules(in.Answers)
	insights = append(insights, crossSignals...)
	insights = append(insights, g.volumeRules(in.Profile)...)

	// Severity-major, declaration-order minor. Stable by construction.
	sort.SliceStable(insights, func(i, j int) bool {
		return domain.SeverityRank(insights[i].Severity) < domain.SeverityRank(insights[j].Severity)
	})

	report.Insights = dedupe(insights)
	report.OverallClarity = util.RoundToInt(in.Profile.MeanConfidence() * 100)
	report.Summary = summaryFor(report.OverallClarity, len(conflicts)+len(crossSignals), in.Profile.Archetypes)

	if g.logger != nil {
		g.logger.Debug("Insights generated",
			zap.Int("count", len(report.Insights)),
			zap.Int("clarity", report.OverallClarity),
		)
	}
	return report
}

// confidenceRules turns settled axes into strong-opinion insights and weak
// axes into uncertainty insights, filling the derived area lists as it goes.
func (g *Generator) confidenceRules(profile *domain.StyleProfile, report *domain.StyleInsightsReport) []domain.Insight {
	var out []domain.Insight
	for _, axis := range domain.Axes {
		conf := profile.Confidence[axis.ID]
		pole := axis.PoleLabel(profile.Axes[axis.ID])
		switch {
		case conf >= strongConfidence:
			report.StrongAreas = append(report.StrongAreas, pole)
			out = append(out, domain.Insight{
				Type:        domain.InsightStrongPreference,
				Severity:    domain.SeverityInfo,
				Title:       fmt.Sprintf("Clear lean toward %s", pole),
				Description: fmt.Sprintf("The client has expressed a consistent %s preference. Safe to commit to it in early concepts.", pole),
				RelatedAxes: []domain.AxisID{axis.ID},
			})
		case conf < uncertainConfidence:
			report.UncertainAreas = append(report.UncertainAreas, pole)
			out = append(out, domain.Insight{
				Type:        domain.InsightUncertainty,
				Severity:    domain.SeverityWarning,
				Title:       fmt.Sprintf("%s vs %s still open", axis.PositiveLabel, axis.NegativeLabel),
				Description: fmt.Sprintf("Signals on this dimension are weak or contradictory. Present %s and %s options side by side before committing.", axis.PositiveLabel, axis.NegativeLabel),
				RelatedAxes: []domain.AxisID{axis.ID},
			})
		}
	}
	return out
}

func (g *Generator) conflictRules(profile *domain.StyleProfile) []domain.Insight {
	var out []domain.Insight
	for _, rule := range conflictRuleTable {
		if rule.When(profile.Axes) {
			out = append(out, domain.Insight{
				Type:        domain.InsightTension,
				Severity:    domain.SeverityImportant,
				Title:       rule.Title,
				Description: rule.Description,
				RelatedAxes: rule.Related,
			})
		}
	}
	return out
}

func (g *Generator) archetypeRules(profile *domain.StyleProfile) []domain.Insight {
	if len(profile.Archetypes) == 0 {
		return nil
	}
	top := profile.Archetypes[0]
	if top.MatchScore <= referenceMatchScore {
		return nil
	}

	// Two close top matches produce a blended insight instead of a
	// single-archetype one, not in addition to it.
	if len(profile.Archetypes) > 1 {
		second := profile.Archetypes[1]
		if top.MatchScore-second.MatchScore <= blendedGap {
			return []domain.Insight{{
				Type:        domain.InsightBlendedReference,
				Severity:    domain.SeverityInfo,
				Title:       fmt.Sprintf("Blend of %s and %s", top.Name, second.Name),
				Description: fmt.Sprintf("The profile sits between %s (%d%%) and %s (%d%%). Pull references from both directions.", top.Name, top.MatchScore, second.Name, second.MatchScore),
			}}
		}
	}

	return []domain.Insight{{
		Type:        domain.InsightReference,
		Severity:    domain.SeverityInfo,
		Title:       fmt.Sprintf("Strong %s match", top.Name),
		Description: fmt.Sprintf("%d%% match with %s. %s", top.MatchScore, top.Name, top.Description),
	}}
}

func (g *Generator) crossSignalRules(answers domain.AnswerSet) []domain.Insight {
	if answers.Palette == nil || answers.Typography == nil {
		return nil
	}
	palette := util.Normalize(answers.Palette.Name)
	typography := util.Normalize(answers.Typography.Category)
	var out []domain.Insight
	for _, rule := range crossSignalRuleTable {
		if rule.Palette == palette && rule.Typography == typography {
			out = append(out, domain.Insight{
				Type:        domain.InsightCrossSignal,
				Severity:    domain.SeverityImportant,
				Title:       rule.Title,
				Description: rule.Description,
			})
		}
	}
	return out
}

func (g *Generator) volumeRules(profile *domain.StyleProfile) []domain.Insight {
	switch {
	case profile.SignalCount < lowSignalCount:
		return []domain.Insight{{
			Type:        domain.InsightDataVolume,
			Severity:    domain.SeverityWarning,
			Title:       "Thin data",
			Description: fmt.Sprintf("Only %d signals so far. Everything here is provisional until the client answers more of the questionnaire.", profile.SignalCount),
		}}
	case profile.SignalCount > highSignalCount:
		return []domain.Insight{{
			Type:        domain.InsightDataVolume,
			Severity:    domain.SeverityInfo,
			Title:       "Well-evidenced profile",
			Description: fmt.Sprintf("%d signals folded in. The directions below rest on a broad answer base.", profile.SignalCount),
		}}
	}
	return nil
}

// dedupe drops repeated (type, title) entries, first occurrence wins, so two
// rules reaching the same conclusion don't clutter the panel.
func dedupe(insights []domain.Insight) []domain.Insight {
	seen := make(map[string]struct{}, len(insights))
	out := make([]domain.Insight, 0, len(insights))
	for _, ins := range insights {
		key := string(ins.Type) + "|" + ins.Title
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, ins)
	}
	return out
}

// summaryFor assembles the summary from fixed sentences only: a clarity tier,
// a conflict count, and the top archetype. Never free-generated text.
func summaryFor(clarity, conflicts int, archetypes []domain.ArchetypeMatch) string {
	var tier string
	switch {
	case clarity >= 70:
		tier = "The client's style direction is clear."
	case clarity >= 40:
		tier = "The client's style direction is taking shape."
	default:
		tier = "The client's style direction is still unsettled."
	}

	var conflictSentence string
	switch conflicts {
	case 0:
		conflictSentence = "No internal tensions detected."
	case 1:
		conflictSentence = "1 internal tension needs a decision."
	default:
		conflictSentence = fmt.Sprintf("%d internal tensions need decisions.", conflicts)
	}

	summary := tier + " " + conflictSentence
	if len(archetypes) > 0 {
		summary += fmt.Sprintf(" Closest reference: %s (%d%% match).", archetypes[0].Name, archetypes[0].MatchScore)
	}
	return summary
}
