package recovery

import "github.com/readycoach/engine/pkg/domain/metrics"

// HRV deviation reference points. Higher HRV means better recovery
// (parasympathetic dominance), so positive deviation scores high.
var hrvPoints = []refPoint{
	{-20, 0},   // -20% or more below baseline = very poor
	{-10, 25},  // -10% below = poor
	{0, 50},    // at baseline = normal
	{10, 100},  // +10% or more above = excellent
}

// HRVScore scores today's heart-rate variability against the athlete's
// 7-day rolling baseline. Returns nil when today's value is missing, when
// fewer than 4 of the last 7 days carry valid readings, or when the baseline
// averages to zero.
func HRVScore(current *int, history []metrics.HealthSample) *int {
	if current == nil {
		return nil
	}

	baseline := rollingBaseline(history, func(s metrics.HealthSample) *int { return s.HRVms })
	if baseline == nil || *baseline == 0 {
		return nil
	}

	deviationPct := (float64(*current) - *baseline) / *baseline * 100
	score := interpolate(hrvPoints, deviationPct)
	return &score
}
