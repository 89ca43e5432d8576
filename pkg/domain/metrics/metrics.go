// Package metrics defines the plain health records the readiness engine
// consumes from upstream collaborators (device sync, score persistence).
package metrics

import "time"

// HealthSample is one day of physiological signals captured by device sync.
// Optional signals are pointers: nil means "not measured", which is distinct
// from a measured zero.
type HealthSample struct {
	Date         time.Time
	HRVms        *int // heart-rate variability in milliseconds
	RestingHR    *int // resting heart rate in bpm
	SleepSeconds *int // total sleep duration in seconds
	SleepQuality *int // device sleep score, 0-100
}

// ScoreSample is one day of previously computed overall readiness score,
// used for trend detection. History is supplied ordered by date ascending.
type ScoreSample struct {
	Date  time.Time
	Score int
}
