// Package recommendation turns a readiness score into a concrete training
// plan for the day: an intensity tier, a specific workout type with its
// session structure, alternative options, and a readable rationale.
package recommendation

import "github.com/readycoach/engine/pkg/domain/workout"

// Avoid repeating a workout type the athlete did within this many days.
const varietyWindowDays = 5

// workoutCatalog lists the eligible workout types per intensity tier and
// sport. The recovery tier shares the rest catalog.
var workoutCatalog = map[workout.Intensity]map[workout.Sport][]string{
	workout.IntensityHard: {
		workout.SportCycling:   {"intervals", "threshold", "climbs", "sweet_spot", "vo2max", "criterium"},
		workout.SportRunning:   {"intervals", "threshold", "tempo", "hill_repeats", "fartlek", "track_workout"},
		workout.SportSwimming:  {"intervals", "threshold_swim", "sprint_sets", "race_pace"},
		workout.SportTriathlon: {"brick_workout", "intervals", "threshold", "race_simulation"},
		workout.SportGeneral:   {"intervals", "threshold", "tempo", "hills"},
	},
	workout.IntensityModerate: {
		workout.SportCycling:   {"tempo", "steady_state", "long_ride", "endurance", "group_ride"},
		workout.SportRunning:   {"tempo", "steady", "long_run", "progression", "aerobic"},
		workout.SportSwimming:  {"steady_swim", "technique", "endurance_swim", "pull_sets"},
		workout.SportTriathlon: {"long_bike", "long_run", "open_water_swim", "aerobic"},
		workout.SportGeneral:   {"tempo", "steady", "aerobic", "endurance"},
	},
	workout.IntensityRest: {
		workout.SportCycling:   {"recovery_ride", "easy_spin", "rest"},
		workout.SportRunning:   {"recovery_run", "easy", "rest"},
		workout.SportSwimming:  {"swim_recovery", "technique", "rest"},
		workout.SportTriathlon: {"easy_swim", "recovery_ride", "yoga", "rest"},
		workout.SportGeneral:   {"recovery", "easy", "active_recovery", "yoga", "rest"},
	},
}

// phasePreferences bias type selection toward phase-appropriate work.
// Matching is by substring, so "endurance" also matches "endurance_swim".
var phasePreferences = map[workout.Phase][]string{
	workout.PhaseBase:  {"aerobic", "endurance", "steady", "long_ride", "long_run"},
	workout.PhaseBuild: {"intervals", "threshold", "tempo", "vo2max"},
	workout.PhasePeak:  {"race_pace", "race_simulation", "threshold"},
	workout.PhaseTaper: {"recovery", "easy", "short_intervals"},
}

// catalogFor resolves the type list for an intensity/sport pair. The recovery
// tier uses the rest catalog, unknown tiers fall back to moderate, unknown
// sports to the general list.
func catalogFor(intensity workout.Intensity, sport workout.Sport) []string {
	key := intensity
	if key == workout.IntensityRecovery {
		key = workout.IntensityRest
	}
	bySport, ok := workoutCatalog[key]
	if !ok {
		bySport = workoutCatalog[workout.IntensityModerate]
	}
	types, ok := bySport[sport]
	if !ok {
		types = bySport[workout.SportGeneral]
	}
	return types
}
