package recommendation

import (
	"fmt"
	"strings"
	"time"

	"github.com/readycoach/engine/pkg/domain/workout"
)

const maxAlternatives = 4

// crossTrainingOptions maps an injury location to low-impact activities that
// avoid loading it.
var crossTrainingOptions = map[string][]string{
	"lower_leg":  {"swimming", "pool_running", "bike"},
	"knee":       {"swimming", "upper_body"},
	"hip":        {"swimming", "upper_body"},
	"upper_body": {"running", "bike", "lower_body"},
	"foot":       {"swimming", "bike"},
}

// indoorEquivalents maps a sport to its indoor setting for bad-weather days.
var indoorEquivalents = map[workout.Sport]string{
	workout.SportCycling:   "trainer",
	workout.SportRunning:   "treadmill",
	workout.SportTriathlon: "trainer_or_treadmill",
	workout.SportSwimming:  "pool",
}

// AlternativesGenerator builds secondary workout options around the primary
// recommendation.
type AlternativesGenerator struct {
	types *TypeRecommender
}

func NewAlternativesGenerator(types *TypeRecommender) *AlternativesGenerator {
	return &AlternativesGenerator{types: types}
}

// Generate produces up to 4 alternatives, each with a distinct workout type:
// a same-intensity variation, a one-tier-easier option, and, when the
// constraints call for them, cross-training, a time-constrained session, and
// an indoor equivalent.
func (g *AlternativesGenerator) Generate(
	primary workout.Recommendation,
	recoveryScore *int,
	constraints workout.Constraints,
	today time.Time,
) []workout.Alternative {
	var alternatives []workout.Alternative
	usedTypes := map[string]bool{primary.Type: true}

	add := func(alt *workout.Alternative) {
		if alt == nil || usedTypes[alt.Type] {
			return
		}
		usedTypes[alt.Type] = true
		alternatives = append(alternatives, *alt)
	}

	sport := constraints.Sport
	if sport == "" {
		sport = workout.SportGeneral
	}

	add(g.sameIntensity(primary, recoveryScore, sport, today))
	add(g.lowerIntensity(primary, recoveryScore, sport, today))

	if constraints.InjuryLocation != "" {
		add(g.crossTraining(primary, constraints.InjuryLocation))
	}
	if constraints.TimeAvailableMinutes != nil {
		add(g.timeConstrained(primary, sport, *constraints.TimeAvailableMinutes))
	}
	if constraints.BadWeather {
		add(g.indoor(primary, sport, today))
	}

	if len(alternatives) > maxAlternatives {
		alternatives = alternatives[:maxAlternatives]
	}
	return alternatives
}

// sameIntensity offers a different workout type at the same tier. The primary
// type is treated as done today so the variety filter excludes it.
func (g *AlternativesGenerator) sameIntensity(
	primary workout.Recommendation,
	recoveryScore *int,
	sport workout.Sport,
	today time.Time,
) *workout.Alternative {
	exclude := []workout.Sample{{Date: today, Type: primary.Type}}
	altType := g.types.SelectType(primary.Intensity, sport, exclude, SelectionContext{Today: today})
	if altType == primary.Type {
		return nil
	}

	structure := g.types.Details(altType, primary.Intensity, StructureContext{RecoveryScore: recoveryScore})
	return &workout.Alternative{
		Intensity:       primary.Intensity,
		Type:            altType,
		DurationMinutes: primary.DurationMinutes,
		Structure:       structure,
		Rationale: fmt.Sprintf(
			"Alternative %s workout providing similar training stimulus at %s intensity.",
			altType, primary.Intensity),
	}
}

// lowerIntensity offers the conservative option one tier down. A rest-tier
// primary has nowhere lower to go.
func (g *AlternativesGenerator) lowerIntensity(
	primary workout.Recommendation,
	recoveryScore *int,
	sport workout.Sport,
	today time.Time,
) *workout.Alternative {
	var lower workout.Intensity
	switch primary.Intensity {
	case workout.IntensityHard:
		lower = workout.IntensityModerate
	case workout.IntensityModerate, workout.IntensityRecovery:
		lower = workout.IntensityRest
	default:
		return nil
	}

	altType := g.types.SelectType(lower, sport, nil, SelectionContext{Today: today})
	structure := g.types.Details(altType, lower, StructureContext{RecoveryScore: recoveryScore})

	return &workout.Alternative{
		Intensity:       lower,
		Type:            altType,
		DurationMinutes: primary.DurationMinutes,
		Structure:       structure,
		Rationale: fmt.Sprintf(
			"More conservative %s intensity option. Choose this if you're feeling more "+
				"fatigued than expected or want to err on the side of caution.", lower),
	}
}

// crossTraining works around an injury with low-impact activities, capped at
// 45 minutes in zones 1-2.
func (g *AlternativesGenerator) crossTraining(primary workout.Recommendation, injury string) *workout.Alternative {
	options, ok := crossTrainingOptions[injury]
	if !ok {
		options = []string{"swimming", "yoga"}
	}

	intensity := primary.Intensity
	if intensity == workout.IntensityHard {
		intensity = workout.IntensityRest
	}
	duration := min(primary.DurationMinutes, 45)

	return &workout.Alternative{
		Intensity:       intensity,
		Type:            "cross_training",
		DurationMinutes: duration,
		Structure: workout.Structure{
			Zones:           []int{1, 2},
			DurationMinutes: duration,
			TotalMinutes:    duration,
			Activities:      options,
			Description:     "Low-impact cross-training: " + strings.Join(options, ", "),
		},
		Rationale: fmt.Sprintf(
			"Low-impact cross-training alternative to work around your %s injury. "+
				"Options: %s. Keep intensity low to promote healing.",
			injury, strings.Join(options, ", ")),
	}
}

// timeConstrained compresses the day into a tight time budget, favoring
// intervals for their stimulus-per-minute. Only offered under an hour.
func (g *AlternativesGenerator) timeConstrained(
	primary workout.Recommendation,
	sport workout.Sport,
	timeAvailable int,
) *workout.Alternative {
	if timeAvailable >= 60 {
		return nil
	}

	altType, intensity := primary.Type, primary.Intensity
	if intensity != workout.IntensityHard {
		altType, intensity = "intervals", workout.IntensityModerate
	}

	structure := g.types.Details(altType, intensity, StructureContext{})
	if structure.TotalMinutes > timeAvailable {
		scale := float64(timeAvailable) / float64(structure.TotalMinutes)
		if structure.Intervals > 0 {
			structure.Intervals = max(3, int(float64(structure.Intervals)*scale))
			structure.Description = fmt.Sprintf("%dx %dmin @ Z4-5 / %dmin rest",
				structure.Intervals, structure.WorkMinutes, structure.RestMinutes)
		}
		structure.TotalMinutes = timeAvailable
	}

	return &workout.Alternative{
		Intensity:       intensity,
		Type:            altType,
		DurationMinutes: timeAvailable,
		Structure:       structure,
		Rationale: fmt.Sprintf(
			"Time-efficient %d-minute option maintaining training quality. "+
				"Shorter duration compensated by focused execution.", timeAvailable),
	}
}

// indoor moves the session inside for bad weather, slightly shorter since
// indoor work skips the usual interruptions.
func (g *AlternativesGenerator) indoor(
	primary workout.Recommendation,
	sport workout.Sport,
	today time.Time,
) *workout.Alternative {
	setting, ok := indoorEquivalents[sport]
	if !ok {
		setting = "trainer"
	}

	altType := g.types.SelectType(primary.Intensity, sport, nil, SelectionContext{Today: today})
	structure := g.types.Details(altType, primary.Intensity, StructureContext{})

	return &workout.Alternative{
		Intensity:       primary.Intensity,
		Type:            "indoor_" + altType,
		DurationMinutes: int(float64(primary.DurationMinutes) * 0.9),
		Structure:       structure,
		Rationale: fmt.Sprintf(
			"Indoor %s option for adverse weather conditions. "+
				"Maintain workout quality in a controlled environment.", setting),
	}
}
