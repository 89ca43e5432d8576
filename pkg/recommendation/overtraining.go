package recommendation

import (
	"fmt"
	"strings"
	"time"

	"github.com/readycoach/engine/pkg/domain/metrics"
	"github.com/readycoach/engine/pkg/domain/workout"
)

const (
	// Consecutive hard days before a hard recommendation gets pulled back.
	maxConsecutiveHardDays = 3

	// Hard days allowed inside the rolling window.
	maxHardDaysInWindow = 5
	hardDaysWindowDays  = 7

	// Readiness-score drop (recent 3-day mean vs the preceding 4) that
	// signals cumulative fatigue.
	scoreDeclineThreshold = -15

	// Days after a race during which hard training is blocked.
	postRaceWindowDays = 5
)

// CheckOvertraining guards a proposed hard day against overtraining patterns
// in recent history. Non-hard proposals pass through untouched. The streak,
// frequency, and score-trend checks each downgrade to moderate (first match
// supplies the warning); a recent race is stronger and forces rest even when
// an earlier check already fired.
func CheckOvertraining(
	proposed workout.Intensity,
	recent []workout.Sample,
	scores []metrics.ScoreSample,
	today time.Time,
) (workout.Intensity, string) {
	if proposed != workout.IntensityHard {
		return proposed, ""
	}

	result, warning := proposed, ""

	if streak := consecutiveHardDays(recent, today); streak >= maxConsecutiveHardDays {
		result = workout.IntensityModerate
		warning = fmt.Sprintf(
			"⚠️ Overtraining Prevention: You've completed %d consecutive hard training days. "+
				"Forcing recovery day to prevent overtraining and injury.", streak)
	} else if count := hardDaysInWindow(recent, today); count >= maxHardDaysInWindow {
		result = workout.IntensityModerate
		warning = fmt.Sprintf(
			"⚠️ Overtraining Prevention: You've completed %d hard days in the last %d days. "+
				"Reducing intensity to allow adequate recovery.", count, hardDaysWindowDays)
	} else if decline, declining := scoreDecline(scores); declining {
		result = workout.IntensityModerate
		warning = fmt.Sprintf(
			"⚠️ Overtraining Prevention: Your recovery score has declined %d points over recent days. "+
				"This suggests cumulative fatigue. Reducing intensity to prevent overtraining.", decline)
	}

	if daysAgo, raced := recentRace(recent, today); raced {
		plural := "s"
		if daysAgo == 1 {
			plural = ""
		}
		return workout.IntensityRest, fmt.Sprintf(
			"⚠️ Post-Race Recovery: You raced %d day%s ago. "+
				"Your body needs recovery time after race efforts. Forcing rest day.", daysAgo, plural)
	}

	return result, warning
}

// consecutiveHardDays counts the unbroken run of hard days ending yesterday
// or today. Multiple sessions on one day count once; a calendar gap or a
// non-hard session ends the streak.
func consecutiveHardDays(recent []workout.Sample, today time.Time) int {
	count := 0
	counted := map[int]bool{}

	for i := len(recent) - 1; i >= 0; i-- {
		w := recent[i]
		if w.Intensity != workout.IntensityHard {
			break
		}

		daysAgo := daysBetween(w.Date, today)
		if counted[daysAgo] {
			continue
		}
		if daysAgo > count+1 {
			break
		}

		counted[daysAgo] = true
		count++
	}

	return count
}

func hardDaysInWindow(recent []workout.Sample, today time.Time) int {
	count := 0
	for _, w := range recent {
		if w.Intensity == workout.IntensityHard && daysBetween(w.Date, today) <= hardDaysWindowDays {
			count++
		}
	}
	return count
}

// scoreDecline compares the mean of the last 3 readiness scores against the
// mean of the 4 before them. Needs at least 7 historical scores.
func scoreDecline(scores []metrics.ScoreSample) (int, bool) {
	if len(scores) < 7 {
		return 0, false
	}

	recentMean := scoreMean(scores[len(scores)-3:])
	olderMean := scoreMean(scores[len(scores)-7 : len(scores)-3])

	decline := recentMean - olderMean
	if decline <= scoreDeclineThreshold {
		return -int(decline), true
	}
	return 0, false
}

func scoreMean(samples []metrics.ScoreSample) float64 {
	sum := 0
	for _, s := range samples {
		sum += s.Score
	}
	return float64(sum) / float64(len(samples))
}

// recentRace reports the most recent race inside the post-race window.
func recentRace(recent []workout.Sample, today time.Time) (int, bool) {
	for i := len(recent) - 1; i >= 0; i-- {
		w := recent[i]
		if !strings.Contains(strings.ToLower(w.Type), "race") {
			continue
		}
		if daysAgo := daysBetween(w.Date, today); daysAgo <= postRaceWindowDays {
			return daysAgo, true
		}
	}
	return 0, false
}

// daysBetween counts whole calendar days from one date to another,
// ignoring time-of-day.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
