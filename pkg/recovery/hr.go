package recovery

import "github.com/readycoach/engine/pkg/domain/metrics"

// Resting-HR deviation reference points. Inverse relationship: a lower
// resting heart rate than baseline means better recovery, an elevated one
// can indicate fatigue, illness, or overtraining.
var hrPoints = []refPoint{
	{-5, 100}, // -5% or more below baseline = excellent
	{0, 50},   // at baseline = normal
	{5, 25},   // +5% above = elevated warning
	{10, 0},   // +10% or more above = poor
}

// HRScore scores today's resting heart rate against the athlete's 7-day
// rolling baseline. Same data requirements as HRVScore.
func HRScore(current *int, history []metrics.HealthSample) *int {
	if current == nil {
		return nil
	}

	baseline := rollingBaseline(history, func(s metrics.HealthSample) *int { return s.RestingHR })
	if baseline == nil || *baseline == 0 {
		return nil
	}

	deviationPct := (float64(*current) - *baseline) / *baseline * 100
	score := interpolate(hrPoints, deviationPct)
	return &score
}
