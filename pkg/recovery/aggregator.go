package recovery

import "math"

// Component weights when every signal is present. HRV is the strongest
// physiological indicator, training load the weakest. Missing components
// have their weight redistributed proportionally across the rest, so the
// result stays on a 0-100 scale regardless of which signals are available.
const (
	weightHRV   = 0.40
	weightHR    = 0.30
	weightSleep = 0.20
	weightACWR  = 0.10
)

// Fewer present components than this and the aggregate is not trustworthy.
const minComponentsRequired = 2

// Status is the traffic-light readiness classification.
type Status string

const (
	StatusGreen  Status = "green"
	StatusYellow Status = "yellow"
	StatusRed    Status = "red"
)

// ComponentScores holds the individual 0-100 component results. A nil field
// means that component could not be computed today.
type ComponentScores struct {
	HRV   *int
	HR    *int
	Sleep *int
	ACWR  *int
}

// Score is the aggregate readiness result handed back to callers for
// persistence and display.
type Score struct {
	Overall     int
	Status      Status
	Components  ComponentScores
	Explanation string
}

// Aggregate combines the available component scores into the overall 0-100
// readiness score. Present components are clamped to [0,100] and re-weighted
// proportionally; fewer than two present components yields nil.
func Aggregate(c ComponentScores) *int {
	type part struct {
		weight float64
		score  int
	}

	var parts []part
	for _, p := range []struct {
		weight float64
		value  *int
	}{
		{weightHRV, c.HRV},
		{weightHR, c.HR},
		{weightSleep, c.Sleep},
		{weightACWR, c.ACWR},
	} {
		if p.value != nil {
			parts = append(parts, part{p.weight, clamp(*p.value, 0, 100)})
		}
	}

	if len(parts) < minComponentsRequired {
		return nil
	}

	totalWeight := 0.0
	for _, p := range parts {
		totalWeight += p.weight
	}

	weightedSum := 0.0
	for _, p := range parts {
		weightedSum += float64(p.score) * (p.weight / totalWeight)
	}

	score := int(math.Round(weightedSum))
	return &score
}

// DetermineStatus maps the overall score and anomaly severity to the
// traffic-light status. Critical anomalies force red regardless of the
// score; warnings cap an otherwise-green day at yellow.
func DetermineStatus(score int, severity Severity) Status {
	if severity == SeverityCritical {
		return StatusRed
	}

	switch {
	case score >= 70:
		if severity == SeverityWarning {
			return StatusYellow
		}
		return StatusGreen
	case score >= 40:
		return StatusYellow
	default:
		return StatusRed
	}
}
