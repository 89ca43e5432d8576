// Package workout defines the training-side domain records shared by the
// readiness engine and its recommenders.
package workout

import "time"

// Intensity is the readiness tier a session is planned at.
type Intensity string

const (
	IntensityHard     Intensity = "hard"
	IntensityModerate Intensity = "moderate"
	IntensityRest     Intensity = "rest"
	// IntensityRecovery is the easy variant of rest used when a moderate day
	// gets downgraded by an anomaly warning.
	IntensityRecovery Intensity = "recovery"
)

// Sport selects the workout-type catalog. Unknown sports fall back to the
// general catalog.
type Sport string

const (
	SportCycling   Sport = "cycling"
	SportRunning   Sport = "running"
	SportSwimming  Sport = "swimming"
	SportTriathlon Sport = "triathlon"
	SportGeneral   Sport = "general"
)

// Phase is the periodization phase of the current training block.
type Phase string

const (
	PhaseBase  Phase = "base"
	PhaseBuild Phase = "build"
	PhasePeak  Phase = "peak"
	PhaseTaper Phase = "taper"
)

// Sample is one completed workout from history. TSS is nil when the source
// did not report a training stress score; a nil TSS counts as a rest day for
// load purposes.
type Sample struct {
	Date      time.Time
	Type      string
	Intensity Intensity
	TSS       *float64
}

// Structure describes the session layout. Only the fields applicable to the
// workout category are populated: interval sessions carry work/rest/interval
// counts, continuous sessions carry a single main-set duration.
type Structure struct {
	Zones           []int
	WarmupMinutes   int
	CooldownMinutes int
	WorkMinutes     int
	RestMinutes     int
	Intervals       int
	DurationMinutes int // main-set duration for continuous sessions
	TotalMinutes    int
	Description     string
	PaceGuidance    string
	IntensityCap    string
	Activities      []string // cross-training options, when applicable
}

// Recommendation is the primary workout suggestion for the day.
type Recommendation struct {
	Intensity       Intensity
	Type            string
	DurationMinutes int
	Structure       Structure
	Rationale       string
	Warnings        []string
}

// Alternative is a secondary suggestion. Same shape as Recommendation minus
// the warnings list; warnings belong to the primary only.
type Alternative struct {
	Intensity       Intensity
	Type            string
	DurationMinutes int
	Structure       Structure
	Rationale       string
}

// Constraints carries the optional context a caller can supply to steer
// recommendation and alternatives generation.
type Constraints struct {
	Sport                Sport
	Phase                Phase
	WeekNumber           int // 1-based week within the block, 0 = unknown
	RecoveryWeek         bool
	TimeAvailableMinutes *int
	InjuryLocation       string // e.g. "knee", "lower_leg"
	BadWeather           bool
	DaysUntilRace        *int
}
