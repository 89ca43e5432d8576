package recommendation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/readycoach/engine/pkg/domain/workout"
)

// fixedRand always picks the same slot, pinning type selection for tests.
type fixedRand struct{ v int }

func (r fixedRand) Intn(n int) int { return r.v % n }

func newTestRecommender() *TypeRecommender {
	return NewTypeRecommender(fixedRand{0})
}

func TestSelectType_FirstEligible(t *testing.T) {
	r := newTestRecommender()

	got := r.SelectType(workout.IntensityHard, workout.SportCycling, nil, SelectionContext{Today: evalDate})

	assert.Equal(t, "intervals", got)
}

func TestSelectType_VarietyWindowExcludesRecentTypes(t *testing.T) {
	r := newTestRecommender()
	recent := []workout.Sample{
		{Date: evalDate.AddDate(0, 0, -1), Type: "intervals"},
	}

	got := r.SelectType(workout.IntensityHard, workout.SportCycling, recent, SelectionContext{Today: evalDate})

	assert.Equal(t, "threshold", got)
}

func TestSelectType_StaleHistoryDoesNotExclude(t *testing.T) {
	r := newTestRecommender()
	recent := []workout.Sample{
		{Date: evalDate.AddDate(0, 0, -6), Type: "intervals"},
	}

	got := r.SelectType(workout.IntensityHard, workout.SportCycling, recent, SelectionContext{Today: evalDate})

	assert.Equal(t, "intervals", got)
}

func TestSelectType_ExhaustedVarietyFallsBackToFullCatalog(t *testing.T) {
	r := newTestRecommender()
	var recent []workout.Sample
	for _, typ := range workoutCatalog[workout.IntensityHard][workout.SportSwimming] {
		recent = append(recent, workout.Sample{Date: evalDate.AddDate(0, 0, -1), Type: typ})
	}

	got := r.SelectType(workout.IntensityHard, workout.SportSwimming, recent, SelectionContext{Today: evalDate})

	assert.Equal(t, "intervals", got)
}

func TestSelectType_PhasePreferenceNarrows(t *testing.T) {
	r := newTestRecommender()

	got := r.SelectType(workout.IntensityModerate, workout.SportRunning, nil, SelectionContext{
		Phase: workout.PhaseBuild,
		Today: evalDate,
	})

	// Of the moderate running catalog only tempo matches the build phase
	assert.Equal(t, "tempo", got)
}

func TestSelectType_WeekendPrefersLongWorkouts(t *testing.T) {
	r := newTestRecommender()
	saturday := time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC)

	got := r.SelectType(workout.IntensityModerate, workout.SportCycling, nil, SelectionContext{Today: saturday})

	assert.Equal(t, "long_ride", got)
}

func TestSelectType_UnknownSportUsesGeneralCatalog(t *testing.T) {
	r := newTestRecommender()

	got := r.SelectType(workout.IntensityHard, workout.Sport("rowing"), nil, SelectionContext{Today: evalDate})

	assert.Equal(t, "intervals", got)
}

func TestSelectType_RecoveryTierUsesRestCatalog(t *testing.T) {
	r := newTestRecommender()

	got := r.SelectType(workout.IntensityRecovery, workout.SportRunning, nil, SelectionContext{Today: evalDate})

	assert.Equal(t, "recovery_run", got)
}

func TestDetails_HardIntervals(t *testing.T) {
	r := newTestRecommender()

	s := r.Details("intervals", workout.IntensityHard, StructureContext{})

	assert.Equal(t, 5, s.WorkMinutes)
	assert.Equal(t, 3, s.RestMinutes)
	assert.Equal(t, 8, s.Intervals)
	assert.Equal(t, 84, s.TotalMinutes)
	assert.Equal(t, []int{4, 5}, s.Zones)
	assert.Equal(t, "8x 5min @ Z4-5 / 3min rest", s.Description)
}

func TestDetails_IntervalScaling(t *testing.T) {
	r := newTestRecommender()
	high, low := 95, 50

	wellRecovered := r.Details("intervals", workout.IntensityHard, StructureContext{RecoveryScore: &high})
	assert.Equal(t, 10, wellRecovered.Intervals)

	tired := r.Details("intervals", workout.IntensityHard, StructureContext{RecoveryScore: &low})
	assert.Equal(t, 6, tired.Intervals)
}

func TestDetails_IntervalWeekProgression(t *testing.T) {
	r := newTestRecommender()

	week2 := r.Details("intervals", workout.IntensityHard, StructureContext{WeekNumber: 2})
	assert.Equal(t, 9, week2.Intervals)

	// Progression caps at +3 regardless of week number
	week8 := r.Details("intervals", workout.IntensityHard, StructureContext{WeekNumber: 8})
	assert.Equal(t, 11, week8.Intervals)
}

func TestDetails_IntervalRecoveryWeek(t *testing.T) {
	r := newTestRecommender()

	s := r.Details("intervals", workout.IntensityHard, StructureContext{RecoveryWeek: true})

	// 8 * 0.6 truncates to 4
	assert.Equal(t, 4, s.Intervals)
	assert.Equal(t, 52, s.TotalMinutes)
}

func TestDetails_IntervalTaper(t *testing.T) {
	r := newTestRecommender()

	s := r.Details("intervals", workout.IntensityHard, StructureContext{Phase: workout.PhaseTaper})

	assert.Equal(t, 6, s.Intervals)
	assert.Equal(t, 4, s.WorkMinutes)
	assert.Equal(t, 62, s.TotalMinutes)
}

func TestDetails_Threshold(t *testing.T) {
	r := newTestRecommender()

	s := r.Details("threshold", workout.IntensityHard, StructureContext{})

	assert.Equal(t, 45, s.DurationMinutes)
	assert.Equal(t, 65, s.TotalMinutes)
	assert.Equal(t, []int{3, 4}, s.Zones)
	assert.Equal(t, "45min @ Z3-4 (tempo/threshold pace)", s.Description)
}

func TestDetails_TempoScaling(t *testing.T) {
	r := newTestRecommender()
	high, low := 90, 50

	fresh := r.Details("tempo", workout.IntensityModerate, StructureContext{RecoveryScore: &high})
	assert.Equal(t, 45, fresh.DurationMinutes)

	tired := r.Details("tempo", workout.IntensityModerate, StructureContext{RecoveryScore: &low})
	assert.Equal(t, 20, tired.DurationMinutes)
}

func TestDetails_CompleteRest(t *testing.T) {
	r := newTestRecommender()

	s := r.Details("rest", workout.IntensityRest, StructureContext{})

	assert.Zero(t, s.TotalMinutes)
	assert.Empty(t, s.Zones)
	assert.Equal(t, "Complete rest - no training", s.Description)
}

func TestDetails_RecoveryRun(t *testing.T) {
	r := newTestRecommender()

	s := r.Details("recovery_run", workout.IntensityRest, StructureContext{})

	assert.Equal(t, 45, s.DurationMinutes)
	assert.Equal(t, []int{1}, s.Zones)
	assert.Equal(t, "Zone 1 only - very easy conversational pace", s.IntensityCap)
}

func TestDetails_SteadyState(t *testing.T) {
	r := newTestRecommender()

	s := r.Details("steady", workout.IntensityModerate, StructureContext{})

	assert.Equal(t, 75, s.DurationMinutes)
	assert.Equal(t, 75, s.TotalMinutes)
	assert.Equal(t, []int{2}, s.Zones)
}

func TestDetails_LongRide(t *testing.T) {
	r := newTestRecommender()
	high := 90

	s := r.Details("long_ride", workout.IntensityModerate, StructureContext{RecoveryScore: &high})

	assert.Equal(t, 150, s.DurationMinutes)
}

func TestDetails_SteadyRecoveryWeek(t *testing.T) {
	r := newTestRecommender()

	s := r.Details("steady", workout.IntensityModerate, StructureContext{RecoveryWeek: true})

	// 75 * 0.75 truncates to 56
	assert.Equal(t, 56, s.DurationMinutes)
}
