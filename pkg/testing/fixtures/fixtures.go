// Package fixtures provides history builders shared by tests across the
// engine packages.
package fixtures

import (
	"time"

	"github.com/readycoach/engine/pkg/domain/metrics"
	"github.com/readycoach/engine/pkg/domain/workout"
)

func Int(v int) *int { return &v }

func Float(v float64) *float64 { return &v }

// HealthHistory builds days of flat health samples ending the day before
// end, ordered by date ascending.
func HealthHistory(end time.Time, days, hrv, restingHR int) []metrics.HealthSample {
	history := make([]metrics.HealthSample, 0, days)
	for i := days; i >= 1; i-- {
		history = append(history, metrics.HealthSample{
			Date:      end.AddDate(0, 0, -i),
			HRVms:     Int(hrv),
			RestingHR: Int(restingHR),
		})
	}
	return history
}

// FlatWorkouts builds days of identical daily workouts ending the day
// before end, ordered by date ascending.
func FlatWorkouts(end time.Time, days int, workoutType string, intensity workout.Intensity, tss float64) []workout.Sample {
	history := make([]workout.Sample, 0, days)
	for i := days; i >= 1; i-- {
		history = append(history, workout.Sample{
			Date:      end.AddDate(0, 0, -i),
			Type:      workoutType,
			Intensity: intensity,
			TSS:       Float(tss),
		})
	}
	return history
}

// ScoreHistory builds daily score samples ending the day before end.
func ScoreHistory(end time.Time, scores ...int) []metrics.ScoreSample {
	history := make([]metrics.ScoreSample, len(scores))
	for i, s := range scores {
		history[i] = metrics.ScoreSample{
			Date:  end.AddDate(0, 0, i-len(scores)),
			Score: s,
		}
	}
	return history
}
