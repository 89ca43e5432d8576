package recommendation

import (
	"fmt"
	"strings"
	"time"

	"github.com/readycoach/engine/pkg/domain/workout"
	"github.com/readycoach/engine/pkg/recovery"
)

// RationaleContext gathers everything the narrative can draw on. Only the
// score and the final intensity/type are required; the rest enriches the
// middle sections when present.
type RationaleContext struct {
	Intensity     workout.Intensity
	WorkoutType   string
	Score         int
	Components    recovery.ComponentScores
	Anomalies     recovery.AnomalyResult
	Recent        []workout.Sample
	Phase         workout.Phase
	DaysUntilRace *int
	Today         time.Time
}

// BuildRationale assembles the recommendation narrative: an opening keyed by
// the score bracket, call-outs for suppressed components, the leading anomaly
// warning, training-context notes, and a closing action statement.
func BuildRationale(ctx RationaleContext) string {
	parts := []string{rationaleOpening(ctx.Score)}

	if s := componentCallouts(ctx.Components); s != "" {
		parts = append(parts, s)
	}
	if s := anomalyCallout(ctx.Anomalies); s != "" {
		parts = append(parts, s)
	}
	if s := trainingContext(ctx.Recent, ctx.Phase, ctx.DaysUntilRace, ctx.Today); s != "" {
		parts = append(parts, s)
	}

	parts = append(parts, rationaleClosing(ctx.Intensity, ctx.WorkoutType, ctx.Score))
	return strings.Join(parts, " ")
}

func rationaleOpening(score int) string {
	switch {
	case score >= 90:
		return fmt.Sprintf("Excellent recovery (Score: %d/100)! "+
			"You're well-recovered and ready for high-intensity training.", score)
	case score >= 70:
		return fmt.Sprintf("Good recovery (Score: %d/100). "+
			"Your body is ready for quality training.", score)
	case score >= 50:
		return fmt.Sprintf("Moderate recovery (Score: %d/100). "+
			"Your body needs a more conservative approach today.", score)
	case score >= 30:
		return fmt.Sprintf("Low recovery (Score: %d/100). "+
			"Your body is showing signs of fatigue and needs easier training.", score)
	default:
		return fmt.Sprintf("Very low recovery (Score: %d/100). "+
			"Your body urgently needs rest to avoid overtraining.", score)
	}
}

func componentCallouts(c recovery.ComponentScores) string {
	var callouts []string

	if c.HRV != nil && *c.HRV < 30 {
		callouts = append(callouts, fmt.Sprintf(
			"Your HRV is significantly suppressed (Score: %d/100), "+
				"indicating your nervous system needs recovery.", *c.HRV))
	}
	if c.HR != nil && *c.HR < 30 {
		callouts = append(callouts, fmt.Sprintf(
			"Your resting heart rate is elevated (Score: %d/100), "+
				"which can indicate stress, fatigue, or illness.", *c.HR))
	}
	if c.Sleep != nil && *c.Sleep < 40 {
		callouts = append(callouts, fmt.Sprintf(
			"Poor sleep quality (Score: %d/100) is limiting your recovery capacity.", *c.Sleep))
	}
	if c.ACWR != nil && *c.ACWR < 30 {
		callouts = append(callouts, fmt.Sprintf(
			"Your training load ratio (Score: %d/100) indicates "+
				"high injury risk from rapid training increases.", *c.ACWR))
	}

	return strings.Join(callouts, " ")
}

func anomalyCallout(a recovery.AnomalyResult) string {
	if len(a.Warnings) == 0 {
		return ""
	}

	switch a.Severity {
	case recovery.SeverityCritical:
		return "⚠️ CRITICAL WARNING: " + a.Warnings[0] +
			" Training is strongly discouraged until metrics improve."
	case recovery.SeverityWarning:
		return "⚠️ " + a.Warnings[0]
	}
	return ""
}

func trainingContext(recent []workout.Sample, phase workout.Phase, daysUntilRace *int, today time.Time) string {
	var notes []string

	if len(recent) > 0 {
		lastThree := recent
		if len(lastThree) > 3 {
			lastThree = lastThree[len(lastThree)-3:]
		}
		hardCount := 0
		for _, w := range lastThree {
			if w.Intensity == workout.IntensityHard {
				hardCount++
			}
		}
		if hardCount >= 2 {
			notes = append(notes,
				"You've completed multiple hard sessions recently, so be cautious "+
					"about adding another consecutive high-intensity day.")
		}

		lastSeven := recent
		if len(lastSeven) > 7 {
			lastSeven = lastSeven[len(lastSeven)-7:]
		}
		for _, w := range lastSeven {
			if w.Type != "race" {
				continue
			}
			daysSince := daysBetween(w.Date, today)
			if daysSince <= 3 {
				plural := ""
				if daysSince > 1 {
					plural = "s"
				}
				notes = append(notes, fmt.Sprintf(
					"You raced %d day%s ago, so prioritizing recovery is essential.",
					daysSince, plural))
			}
			break
		}
	}

	switch phase {
	case workout.PhaseBase:
		notes = append(notes,
			"During base building, focus on developing aerobic capacity through "+
				"consistent, moderate-intensity training.")
	case workout.PhaseBuild:
		notes = append(notes,
			"In the build phase, incorporate quality intensity work while managing fatigue.")
	case workout.PhaseTaper:
		notes = append(notes,
			"Taper week: maintain intensity but reduce volume to arrive fresh for your event.")
	}

	if daysUntilRace != nil && *daysUntilRace <= 7 {
		notes = append(notes, fmt.Sprintf(
			"With %d days until your race, prioritize freshness over fitness gains.", *daysUntilRace))
	}

	return strings.Join(notes, " ")
}

func rationaleClosing(intensity workout.Intensity, workoutType string, score int) string {
	switch intensity {
	case workout.IntensityHard:
		return fmt.Sprintf("Today is a great day for a challenging %s workout "+
			"to build fitness and push your limits.", workoutType)
	case workout.IntensityModerate:
		if score >= 60 {
			return fmt.Sprintf("A %s session at moderate intensity will build fitness "+
				"while allowing continued recovery.", workoutType)
		}
		return fmt.Sprintf("Keep it moderate with %s today, erring on the side of easier "+
			"effort if you feel fatigued.", workoutType)
	default:
		if score < 30 {
			return "Complete rest is your best training today. Recovery is when adaptation happens, " +
				"and pushing through fatigue will only delay your progress."
		}
		return fmt.Sprintf("Easy %s activity or complete rest will help you bounce back stronger. "+
			"Listen to your body and don't hesitate to take full rest if needed.", workoutType)
	}
}
