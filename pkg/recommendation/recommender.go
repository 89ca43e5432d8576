package recommendation

import (
	"fmt"
	"strings"
	"time"

	"github.com/readycoach/engine/pkg/domain/workout"
)

// Rand supplies the randomized pick among equally eligible workout types.
// *math/rand.Rand satisfies it; tests pin selection with a fixed source.
type Rand interface {
	Intn(n int) int
}

// TypeRecommender selects a concrete workout type for the day and computes
// its session structure.
type TypeRecommender struct {
	rand Rand
}

func NewTypeRecommender(r Rand) *TypeRecommender {
	return &TypeRecommender{rand: r}
}

// SelectionContext carries the optional signals that steer type selection.
type SelectionContext struct {
	Phase workout.Phase
	Today time.Time
}

// SelectType picks a workout type for the intensity/sport pair, avoiding
// types the athlete did inside the variety window, then narrowing by
// periodization phase and the weekend long-workout habit before the random
// pick. Each narrowing step is skipped when it would leave nothing.
func (r *TypeRecommender) SelectType(
	intensity workout.Intensity,
	sport workout.Sport,
	recent []workout.Sample,
	sel SelectionContext,
) string {
	available := catalogFor(intensity, sport)

	recentTypes := recentWorkoutTypes(recent, sel.Today)
	varied := make([]string, 0, len(available))
	for _, t := range available {
		if !recentTypes[t] {
			varied = append(varied, t)
		}
	}
	if len(varied) == 0 {
		varied = available
	}

	if preferred, ok := phasePreferences[sel.Phase]; ok {
		var matched []string
		for _, t := range varied {
			for _, p := range preferred {
				if strings.Contains(t, p) {
					matched = append(matched, t)
					break
				}
			}
		}
		if len(matched) > 0 {
			varied = matched
		}
	}

	if wd := sel.Today.Weekday(); wd == time.Saturday || wd == time.Sunday {
		var long []string
		for _, t := range varied {
			if strings.Contains(t, "long") || strings.Contains(t, "endurance") {
				long = append(long, t)
			}
		}
		if len(long) > 0 {
			varied = long
		}
	}

	return varied[r.rand.Intn(len(varied))]
}

func recentWorkoutTypes(recent []workout.Sample, today time.Time) map[string]bool {
	types := map[string]bool{}
	for _, w := range recent {
		if w.Type != "" && daysBetween(w.Date, today) <= varietyWindowDays {
			types[w.Type] = true
		}
	}
	return types
}

// StructureContext carries the scaling inputs for session structure.
type StructureContext struct {
	RecoveryScore *int
	Phase         workout.Phase
	WeekNumber    int // 1-based, 0 = unknown
	RecoveryWeek  bool
}

// Details computes the session structure for a workout type. The category is
// chosen by name: interval-style, tempo/threshold, recovery/rest, and
// everything else as steady-state.
func (r *TypeRecommender) Details(
	workoutType string,
	intensity workout.Intensity,
	sc StructureContext,
) workout.Structure {
	switch {
	case strings.Contains(workoutType, "intervals") || workoutType == "vo2max":
		return intervalStructure(workoutType, intensity, sc)
	case strings.Contains(workoutType, "tempo") || strings.Contains(workoutType, "threshold"):
		return tempoStructure(workoutType, sc)
	case strings.Contains(workoutType, "recovery") || strings.Contains(workoutType, "easy") || workoutType == "rest":
		return recoveryStructure(workoutType)
	default:
		return steadyStructure(workoutType, sc)
	}
}

func intervalStructure(workoutType string, intensity workout.Intensity, sc StructureContext) workout.Structure {
	work, rest, intervals := 3, 2, 6
	if strings.Contains(workoutType, "vo2max") || intensity == workout.IntensityHard {
		work, rest, intervals = 5, 3, 8
	}

	if sc.RecoveryScore != nil && *sc.RecoveryScore >= 90 {
		intervals += 2
	} else if sc.RecoveryScore != nil && *sc.RecoveryScore < 60 {
		intervals = max(4, intervals-2)
	}

	if sc.WeekNumber > 0 {
		intervals += min(sc.WeekNumber-1, 3)
	}
	if sc.RecoveryWeek {
		intervals = max(4, int(float64(intervals)*0.6))
	}
	if sc.Phase == workout.PhaseTaper {
		intervals = min(intervals, 6)
		work = max(3, work-1)
	}

	return workout.Structure{
		Zones:           []int{4, 5},
		WarmupMinutes:   10,
		CooldownMinutes: 10,
		WorkMinutes:     work,
		RestMinutes:     rest,
		Intervals:       intervals,
		TotalMinutes:    (work+rest)*intervals + 20,
		Description:     fmt.Sprintf("%dx %dmin @ Z4-5 / %dmin rest", intervals, work, rest),
	}
}

func tempoStructure(workoutType string, sc StructureContext) workout.Structure {
	duration := 30
	if strings.Contains(workoutType, "threshold") {
		duration = 45
	}

	if sc.RecoveryScore != nil && *sc.RecoveryScore >= 85 {
		duration += 15
	} else if sc.RecoveryScore != nil && *sc.RecoveryScore < 60 {
		duration = max(20, duration-15)
	}
	if sc.RecoveryWeek {
		duration = int(float64(duration) * 0.7)
	}

	return workout.Structure{
		Zones:           []int{3, 4},
		WarmupMinutes:   10,
		CooldownMinutes: 10,
		DurationMinutes: duration,
		TotalMinutes:    duration + 20,
		PaceGuidance:    "Comfortably hard - can speak short sentences",
		Description:     fmt.Sprintf("%dmin @ Z3-4 (tempo/threshold pace)", duration),
	}
}

func recoveryStructure(workoutType string) workout.Structure {
	if workoutType == "rest" {
		return workout.Structure{
			Description: "Complete rest - no training",
		}
	}

	return workout.Structure{
		Zones:           []int{1},
		DurationMinutes: 45,
		TotalMinutes:    45,
		IntensityCap:    "Zone 1 only - very easy conversational pace",
		Description:     "45min @ Z1 (recovery pace)",
	}
}

func steadyStructure(workoutType string, sc StructureContext) workout.Structure {
	duration := 75
	if strings.Contains(workoutType, "long") {
		duration = 120
	}

	if sc.RecoveryScore != nil && *sc.RecoveryScore >= 85 {
		duration += 30
	} else if sc.RecoveryScore != nil && *sc.RecoveryScore < 60 {
		duration = max(60, duration-30)
	}
	if sc.RecoveryWeek {
		duration = int(float64(duration) * 0.75)
	}

	return workout.Structure{
		Zones:           []int{2},
		DurationMinutes: duration,
		TotalMinutes:    duration,
		PaceGuidance:    "Conversational pace - can hold full conversation",
		Description:     fmt.Sprintf("%dmin @ Z2 (aerobic/endurance pace)", duration),
	}
}
