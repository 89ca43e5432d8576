package recovery

import (
	"fmt"

	"github.com/readycoach/engine/pkg/domain/workout"
)

const (
	acuteLoadDays   = 7
	chronicLoadDays = 28
)

// ACWR reference points (ratio -> score). 0.8-1.3 is the sweet spot for
// progressive overload; above 1.5 injury risk climbs sharply, below 0.5 the
// athlete is detraining.
var acwrPoints = []refPoint{
	{0.5, 30},
	{0.8, 100},
	{1.3, 100},
	{1.5, 30},
	{2.0, 0},
}

// ACWRScore scores the acute:chronic workload ratio over the supplied
// workout history (one entry per day, ordered by date ascending). A nil TSS
// counts as a rest day. Requires the full 28-day chronic window; fewer days
// or a zero chronic load yields nil. A negative TSS is a validation failure.
func ACWRScore(history []workout.Sample) (*int, error) {
	if len(history) == 0 {
		return nil, nil
	}

	for _, w := range history {
		if w.TSS != nil && *w.TSS < 0 {
			return nil, fmt.Errorf("%w: negative training stress score %.1f", ErrInvalidInput, *w.TSS)
		}
	}

	acute := windowAverage(history, acuteLoadDays)
	chronic := windowAverage(history, chronicLoadDays)
	if acute == nil || chronic == nil || *chronic == 0 {
		return nil, nil
	}

	ratio := *acute / *chronic
	score := interpolate(acwrPoints, ratio)
	return &score, nil
}

// windowAverage is the mean TSS over the most recent days entries, or nil
// when the window is not fully covered.
func windowAverage(history []workout.Sample, days int) *float64 {
	if len(history) < days {
		return nil
	}

	sum := 0.0
	for _, w := range history[len(history)-days:] {
		if w.TSS != nil {
			sum += *w.TSS
		}
	}
	avg := sum / float64(days)
	return &avg
}
