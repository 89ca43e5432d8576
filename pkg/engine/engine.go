// Package engine composes the readiness scorers and the recommendation
// pipeline behind a single evaluation entry point.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/readycoach/engine/pkg/domain/workout"
	"github.com/readycoach/engine/pkg/recommendation"
	"github.com/readycoach/engine/pkg/recovery"
)

// Rationale falls back to a neutral midpoint when no score is computable.
const fallbackRationaleScore = 50

// Options configures an Engine. Every field is optional.
type Options struct {
	Logger *slog.Logger
	// Rand drives workout-type selection; fix it for deterministic output.
	Rand recommendation.Rand
	// Now supplies the evaluation date when Input.Date is zero.
	Now func() time.Time
}

// Engine evaluates one athlete-day at a time. It holds no mutable state and
// is safe for concurrent use as long as the injected Rand is.
type Engine struct {
	logger *slog.Logger
	types  *recommendation.TypeRecommender
	alts   *recommendation.AlternativesGenerator
	now    func() time.Time
}

func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	types := recommendation.NewTypeRecommender(rnd)
	return &Engine{
		logger: logger,
		types:  types,
		alts:   recommendation.NewAlternativesGenerator(types),
		now:    now,
	}
}

// Evaluate scores today's recovery, sweeps for anomalies, and builds the
// day's workout recommendation with alternatives. It returns an error only
// for invalid input; missing signals degrade to a nil score and a rest
// recommendation.
func (e *Engine) Evaluate(ctx context.Context, in Input) (*Output, error) {
	evaluationID := uuid.NewString()
	date := in.Date
	if date.IsZero() {
		date = e.now()
	}

	logger := e.logger.With("evaluation_id", evaluationID, "date", date.Format("2006-01-02"))

	sleepScore, err := recovery.SleepScore(in.Today.SleepSeconds, in.Today.SleepQuality)
	if err != nil {
		return nil, fmt.Errorf("sleep score: %w", err)
	}
	acwrScore, err := recovery.ACWRScore(in.Workouts)
	if err != nil {
		return nil, fmt.Errorf("training load score: %w", err)
	}

	components := recovery.ComponentScores{
		HRV:   recovery.HRVScore(in.Today.HRVms, in.HealthHistory),
		HR:    recovery.HRScore(in.Today.RestingHR, in.HealthHistory),
		Sleep: sleepScore,
		ACWR:  acwrScore,
	}

	anomalies := recovery.DetectAnomalies(in.Today, in.HealthHistory, components)

	var score *recovery.Score
	if overall := recovery.Aggregate(components); overall != nil {
		score = &recovery.Score{
			Overall:     *overall,
			Status:      recovery.DetermineStatus(*overall, anomalies.Severity),
			Components:  components,
			Explanation: recovery.BuildExplanation(*overall, components, anomalies),
		}
		logger.Info("readiness score computed",
			"score", score.Overall,
			"status", score.Status,
			"anomaly_severity", anomalies.Severity)
	} else {
		logger.Info("insufficient data for readiness score, defaulting to rest",
			"anomaly_severity", anomalies.Severity)
	}

	proposed := recommendation.MapIntensity(score, anomalies.Severity)
	intensity, overtrainingWarning := recommendation.CheckOvertraining(
		proposed, in.Workouts, in.ScoreHistory, date)
	if overtrainingWarning != "" {
		logger.Warn("overtraining guard adjusted intensity",
			"proposed", proposed, "adjusted", intensity)
	}

	rec := e.buildRecommendation(in, score, anomalies, intensity, overtrainingWarning, date)
	alternatives := e.alts.Generate(*rec, scoreValue(score), in.Constraints, date)

	logger.Info("recommendation built",
		"intensity", rec.Intensity,
		"workout_type", rec.Type,
		"duration_min", rec.DurationMinutes,
		"alternatives", len(alternatives))

	return &Output{
		EvaluationID:   evaluationID,
		Score:          score,
		Anomalies:      anomalies,
		Recommendation: rec,
		Alternatives:   alternatives,
	}, nil
}

func (e *Engine) buildRecommendation(
	in Input,
	score *recovery.Score,
	anomalies recovery.AnomalyResult,
	intensity workout.Intensity,
	overtrainingWarning string,
	date time.Time,
) *workout.Recommendation {
	workoutType := e.types.SelectType(intensity, in.Constraints.Sport, in.Workouts,
		recommendation.SelectionContext{
			Phase: in.Constraints.Phase,
			Today: date,
		})

	structure := e.types.Details(workoutType, intensity, recommendation.StructureContext{
		RecoveryScore: scoreValue(score),
		Phase:         in.Constraints.Phase,
		WeekNumber:    in.Constraints.WeekNumber,
		RecoveryWeek:  in.Constraints.RecoveryWeek,
	})

	rationaleScore := fallbackRationaleScore
	var rationaleComponents recovery.ComponentScores
	if score != nil {
		rationaleScore = score.Overall
		rationaleComponents = score.Components
	}

	rationale := recommendation.BuildRationale(recommendation.RationaleContext{
		Intensity:     intensity,
		WorkoutType:   workoutType,
		Score:         rationaleScore,
		Components:    rationaleComponents,
		Anomalies:     anomalies,
		Recent:        in.Workouts,
		Phase:         in.Constraints.Phase,
		DaysUntilRace: in.Constraints.DaysUntilRace,
		Today:         date,
	})

	var warnings []string
	if overtrainingWarning != "" {
		warnings = append(warnings, overtrainingWarning)
	}

	return &workout.Recommendation{
		Intensity:       intensity,
		Type:            workoutType,
		DurationMinutes: structure.TotalMinutes,
		Structure:       structure,
		Rationale:       rationale,
		Warnings:        warnings,
	}
}

func scoreValue(score *recovery.Score) *int {
	if score == nil {
		return nil
	}
	return &score.Overall
}
