package engine

import (
	"time"

	"github.com/readycoach/engine/pkg/domain/metrics"
	"github.com/readycoach/engine/pkg/domain/workout"
	"github.com/readycoach/engine/pkg/recovery"
)

// Input is one day's evaluation request. Histories are ordered by date
// ascending and exclude the evaluation date itself; ScoreHistory and
// Constraints are optional.
type Input struct {
	// Date is the evaluation date. Zero means "now" per the engine clock.
	Date time.Time

	// Today is the health sample for the evaluation date.
	Today metrics.HealthSample

	// HealthHistory covers the preceding days (7+ for baselines).
	HealthHistory []metrics.HealthSample

	// Workouts is the completed workout history (28+ days for load scoring).
	Workouts []workout.Sample

	// ScoreHistory holds previously computed overall scores for trend
	// detection.
	ScoreHistory []metrics.ScoreSample

	Constraints workout.Constraints
}

// Output is the full evaluation bundle. Score is nil when fewer than two
// component signals were computable; the recommendation is still produced
// (defaulting to rest) so the athlete always gets guidance.
type Output struct {
	EvaluationID   string
	Score          *recovery.Score
	Anomalies      recovery.AnomalyResult
	Recommendation *workout.Recommendation
	Alternatives   []workout.Alternative
}
