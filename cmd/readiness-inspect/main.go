// readiness-inspect runs one engine evaluation from a JSON input file and
// prints the resulting score, anomalies, and recommendation. Handy for
// eyeballing engine behavior against captured athlete data.
//
// Usage:
//
//	readiness-inspect -input day.json [-seed 1] [-verbose]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/readycoach/engine/pkg/domain/metrics"
	"github.com/readycoach/engine/pkg/domain/workout"
	"github.com/readycoach/engine/pkg/engine"
)

const dateLayout = "2006-01-02"

type healthSampleJSON struct {
	Date         string `json:"date"`
	HRVms        *int   `json:"hrv_ms,omitempty"`
	RestingHR    *int   `json:"resting_hr,omitempty"`
	SleepSeconds *int   `json:"sleep_seconds,omitempty"`
	SleepQuality *int   `json:"sleep_quality,omitempty"`
}

type workoutJSON struct {
	Date      string   `json:"date"`
	Type      string   `json:"type"`
	Intensity string   `json:"intensity"`
	TSS       *float64 `json:"tss,omitempty"`
}

type scoreJSON struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

type constraintsJSON struct {
	Sport                string `json:"sport,omitempty"`
	Phase                string `json:"phase,omitempty"`
	WeekNumber           int    `json:"week_number,omitempty"`
	RecoveryWeek         bool   `json:"recovery_week,omitempty"`
	TimeAvailableMinutes *int   `json:"time_available_minutes,omitempty"`
	InjuryLocation       string `json:"injury_location,omitempty"`
	BadWeather           bool   `json:"bad_weather,omitempty"`
	DaysUntilRace        *int   `json:"days_until_race,omitempty"`
}

type inputJSON struct {
	Date          string             `json:"date"`
	Today         healthSampleJSON   `json:"today"`
	HealthHistory []healthSampleJSON `json:"health_history"`
	Workouts      []workoutJSON      `json:"workouts"`
	ScoreHistory  []scoreJSON        `json:"score_history,omitempty"`
	Constraints   constraintsJSON    `json:"constraints,omitempty"`
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

func buildInput(raw inputJSON) (engine.Input, error) {
	var in engine.Input
	var err error

	if in.Date, err = parseDate(raw.Date); err != nil {
		return in, fmt.Errorf("date: %w", err)
	}

	today, err := toHealthSample(raw.Today)
	if err != nil {
		return in, fmt.Errorf("today: %w", err)
	}
	in.Today = today

	for i, h := range raw.HealthHistory {
		sample, err := toHealthSample(h)
		if err != nil {
			return in, fmt.Errorf("health_history[%d]: %w", i, err)
		}
		in.HealthHistory = append(in.HealthHistory, sample)
	}

	for i, w := range raw.Workouts {
		date, err := parseDate(w.Date)
		if err != nil {
			return in, fmt.Errorf("workouts[%d]: %w", i, err)
		}
		in.Workouts = append(in.Workouts, workout.Sample{
			Date:      date,
			Type:      w.Type,
			Intensity: workout.Intensity(w.Intensity),
			TSS:       w.TSS,
		})
	}

	for i, s := range raw.ScoreHistory {
		date, err := parseDate(s.Date)
		if err != nil {
			return in, fmt.Errorf("score_history[%d]: %w", i, err)
		}
		in.ScoreHistory = append(in.ScoreHistory, metrics.ScoreSample{Date: date, Score: s.Score})
	}

	in.Constraints = workout.Constraints{
		Sport:                workout.Sport(raw.Constraints.Sport),
		Phase:                workout.Phase(raw.Constraints.Phase),
		WeekNumber:           raw.Constraints.WeekNumber,
		RecoveryWeek:         raw.Constraints.RecoveryWeek,
		TimeAvailableMinutes: raw.Constraints.TimeAvailableMinutes,
		InjuryLocation:       raw.Constraints.InjuryLocation,
		BadWeather:           raw.Constraints.BadWeather,
		DaysUntilRace:        raw.Constraints.DaysUntilRace,
	}

	return in, nil
}

func toHealthSample(h healthSampleJSON) (metrics.HealthSample, error) {
	date, err := parseDate(h.Date)
	if err != nil {
		return metrics.HealthSample{}, err
	}
	return metrics.HealthSample{
		Date:         date,
		HRVms:        h.HRVms,
		RestingHR:    h.RestingHR,
		SleepSeconds: h.SleepSeconds,
		SleepQuality: h.SleepQuality,
	}, nil
}

func formatComponent(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d/100", *v)
}

func main() {
	inputPath := flag.String("input", "", "Path to JSON evaluation input")
	seed := flag.Int64("seed", 0, "Random seed for workout-type selection (0 = time-based)")
	verbose := flag.Bool("verbose", false, "Print the full score explanation and rationale")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Please provide an input file with -input")
		os.Exit(1)
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		fmt.Printf("Failed to read input: %v\n", err)
		os.Exit(1)
	}

	var raw inputJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		fmt.Printf("Failed to parse input: %v\n", err)
		os.Exit(1)
	}

	in, err := buildInput(raw)
	if err != nil {
		fmt.Printf("Invalid input: %v\n", err)
		os.Exit(1)
	}

	opts := engine.Options{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}
	if *seed != 0 {
		opts.Rand = rand.New(rand.NewSource(*seed))
	}

	out, err := engine.New(opts).Evaluate(context.Background(), in)
	if err != nil {
		fmt.Printf("Evaluation failed: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "Evaluation\t%s\n", out.EvaluationID)
	if out.Score != nil {
		fmt.Fprintf(w, "Overall\t%d/100 (%s)\n", out.Score.Overall, out.Score.Status)
		fmt.Fprintf(w, "HRV\t%s\n", formatComponent(out.Score.Components.HRV))
		fmt.Fprintf(w, "Resting HR\t%s\n", formatComponent(out.Score.Components.HR))
		fmt.Fprintf(w, "Sleep\t%s\n", formatComponent(out.Score.Components.Sleep))
		fmt.Fprintf(w, "Training load\t%s\n", formatComponent(out.Score.Components.ACWR))
	} else {
		fmt.Fprintf(w, "Overall\tinsufficient data\n")
	}

	fmt.Fprintf(w, "Anomalies\t%s\n", out.Anomalies.Severity)
	for _, warning := range out.Anomalies.Warnings {
		fmt.Fprintf(w, "\t⚠ %s\n", warning)
	}

	rec := out.Recommendation
	fmt.Fprintf(w, "Recommendation\t%s %s (%d min)\n", rec.Intensity, rec.Type, rec.DurationMinutes)
	if rec.Structure.Description != "" {
		fmt.Fprintf(w, "Structure\t%s\n", rec.Structure.Description)
	}
	for _, warning := range rec.Warnings {
		fmt.Fprintf(w, "\t%s\n", warning)
	}
	for i, alt := range out.Alternatives {
		fmt.Fprintf(w, "Alternative %d\t%s %s (%d min)\n", i+1, alt.Intensity, alt.Type, alt.DurationMinutes)
	}
	w.Flush()

	if *verbose {
		if out.Score != nil {
			fmt.Println("\n--- Explanation ---")
			fmt.Println(out.Score.Explanation)
		}
		fmt.Println("\n--- Rationale ---")
		fmt.Println(rec.Rationale)
		if len(out.Alternatives) > 0 {
			fmt.Println("\n--- Alternatives ---")
			for _, alt := range out.Alternatives {
				fmt.Printf("• %s: %s\n", alt.Type, alt.Rationale)
			}
		}
	}
}
