package recommendation

import (
	"github.com/readycoach/engine/pkg/domain/workout"
	"github.com/readycoach/engine/pkg/recovery"
)

// Intensity thresholds on the overall readiness score.
const (
	hardThreshold     = 70
	moderateThreshold = 40
)

// MapIntensity maps today's readiness result to a training intensity tier.
// No score means no evidence the athlete is recovered, so the mapper defaults
// to rest. Critical anomalies force rest regardless of the score; warnings
// downgrade one tier.
func MapIntensity(score *recovery.Score, severity recovery.Severity) workout.Intensity {
	if score == nil {
		return workout.IntensityRest
	}
	if severity == recovery.SeverityCritical {
		return workout.IntensityRest
	}

	var base workout.Intensity
	switch {
	case score.Overall >= hardThreshold:
		base = workout.IntensityHard
	case score.Overall >= moderateThreshold:
		base = workout.IntensityModerate
	default:
		base = workout.IntensityRest
	}

	if severity == recovery.SeverityWarning {
		switch base {
		case workout.IntensityHard:
			return workout.IntensityModerate
		case workout.IntensityModerate:
			return workout.IntensityRecovery
		}
	}

	return base
}
