package recovery

import (
	"fmt"
	"math"
)

const (
	sleepDurationWeight = 0.6
	sleepQualityWeight  = 0.4
)

// Sleep duration reference points (hours -> score). 7-9 hours is the optimal
// band for most athletes; excessive sleep can itself indicate fatigue.
var sleepDurationPoints = []refPoint{
	{4, 0},
	{5, 40},
	{6, 70},
	{7, 100},
	{9, 100},
	{10, 70},
}

// SleepScore scores last night's sleep from duration and the optional device
// quality score. A nil duration yields nil (insufficient data); a negative
// duration is a validation failure.
func SleepScore(durationSeconds, quality *int) (*int, error) {
	if durationSeconds == nil {
		return nil, nil
	}
	if *durationSeconds < 0 {
		return nil, fmt.Errorf("%w: negative sleep duration %ds", ErrInvalidInput, *durationSeconds)
	}

	hours := float64(*durationSeconds) / 3600
	durationScore := scoreSleepDuration(hours)

	combined := float64(durationScore)
	if quality != nil {
		q := clamp(*quality, 0, 100)
		combined = float64(durationScore)*sleepDurationWeight + float64(q)*sleepQualityWeight
	}

	score := int(math.Round(combined))
	return &score, nil
}

func scoreSleepDuration(hours float64) int {
	if hours > 10 {
		// Past 10 hours the curve keeps declining: 20 points per extra
		// 2 hours, floored at 0 (10h=70, 12h=50, 14h=30, 16h=0).
		penalty := (hours - 10) / 2 * 20
		score := 70 - penalty
		if score < 0 {
			score = 0
		}
		return int(math.Round(score))
	}
	return interpolate(sleepDurationPoints, hours)
}
