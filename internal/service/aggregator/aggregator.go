package aggregator

import (
	"github.com/atelierkit/style-engine-go/internal/domain"
	"github.com/atelierkit/style-engine-go/internal/util"
	"go.uber.org/zap"
)

// Params tunes the fold. ConfidenceGain is the fraction of the remaining gap
// to full confidence that one full-weight evidence item closes.
type Params struct {
	ConfidenceGain float64
}

func DefaultParams() Params {
	return Params{ConfidenceGain: 0.5}
}

// Aggregator folds evidence streams into per-axis scores and confidence on the
// canonical [-1,1] scale.
type Aggregator struct {
	params Params
	logger *zap.Logger
}

func New(params Params, logger *zap.Logger) *Aggregator {
	if params.ConfidenceGain <= 0 || params.ConfidenceGain > 1 {
		params.ConfidenceGain = DefaultParams().ConfidenceGain
	}
	return &Aggregator{params: params, logger: logger}
}

// Fold replays the evidence stream in arrival order over a fresh profile.
// Scores start at the industry prior (canonical scale) when one is supplied,
// otherwise at zero; confidence always starts at zero since a prior is a
// population guess, not client evidence.
//
// Per item: score saturates within [-1,1] after every update, and confidence
// narrows its remaining gap to 1 by gain*weight, so a few decisive answers
// plateau quickly while weak answers leave the axis unsure.
func (a *Aggregator) Fold(prior domain.AxisVector, evidence []domain.Evidence) *domain.StyleProfile {
	profile := &domain.StyleProfile{
		Axes:       domain.ZeroVector(),
		Confidence: make(map[domain.AxisID]float64, len(domain.Axes)),
	}
	for _, axis := range domain.Axes {
		profile.Confidence[axis.ID] = 0
		if prior != nil {
			profile.Axes[axis.ID] = util.Clamp(prior[axis.ID], -1, 1)
		}
	}

	for _, ev := range evidence {
		if _, known := domain.AxisByID(ev.Axis); !known {
			continue
		}
		weight := util.Clamp01(ev.Weight)
		profile.Axes[ev.Axis] = util.Clamp(profile.Axes[ev.Axis]+ev.Delta*weight, -1, 1)

		conf := profile.Confidence[ev.Axis]
		profile.Confidence[ev.Axis] = util.Clamp01(conf + (1-conf)*a.params.ConfidenceGain*weight)

		profile.SignalCount++
	}

	if a.logger != nil {
		a.logger.Debug("Profile folded",
			zap.Int("signals", profile.SignalCount),
			zap.Float64("mean_confidence", profile.MeanConfidence()),
		)
	}
	return profile
}
