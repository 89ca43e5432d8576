package recovery

import (
	"fmt"
	"strings"

	"github.com/readycoach/engine/pkg/domain/metrics"
)

// Severity classifies how serious the detected anomalies are. Precedence is
// critical > warning > none; once critical is set within an evaluation it is
// never downgraded.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// AnomalyResult is the outcome of one anomaly sweep. Warnings and
// recommendations are deduplicated, in detection order.
type AnomalyResult struct {
	HasAnomalies    bool
	Severity        Severity
	Warnings        []string
	Recommendations []string
}

// Anomaly thresholds, all percentage deviations from the 7-day baseline.
const (
	hrvCriticalDropPct = -20
	hrvWarningDropPct  = -15
	hrCriticalSpikePct = 10
	hrWarningSpikePct  = 7

	// Consecutive suppressed days that indicate an overtraining pattern.
	suppressedDaysThreshold = 3
)

// DetectAnomalies inspects today's raw signals against the rolling baseline
// and the computed component scores, flagging patterns that suggest illness,
// overtraining, or compromised recovery.
func DetectAnomalies(today metrics.HealthSample, history []metrics.HealthSample, components ComponentScores) AnomalyResult {
	d := &anomalySweep{severity: SeverityNone}

	hrvBaseline := anomalyBaseline(history, func(s metrics.HealthSample) *int { return s.HRVms })
	hrBaseline := anomalyBaseline(history, func(s metrics.HealthSample) *int { return s.RestingHR })

	if today.HRVms != nil && *today.HRVms != 0 && hrvBaseline != nil && *hrvBaseline != 0 {
		deviation := (float64(*today.HRVms) - *hrvBaseline) / *hrvBaseline * 100
		switch {
		case deviation <= hrvCriticalDropPct:
			d.warn(fmt.Sprintf("Critical HRV drop detected: %.1f%% below baseline. Possible illness or severe fatigue.", deviation))
			d.recommend("Consider complete rest. Monitor for illness symptoms.")
			d.severity = SeverityCritical
		case deviation <= hrvWarningDropPct:
			d.warn(fmt.Sprintf("HRV below normal: %.1f%% below baseline. Recovery may be compromised.", deviation))
			d.recommend("Easy training or active recovery only.")
			d.escalate(SeverityWarning)
		}
	}

	if today.RestingHR != nil && *today.RestingHR != 0 && hrBaseline != nil && *hrBaseline != 0 {
		deviation := (float64(*today.RestingHR) - *hrBaseline) / *hrBaseline * 100
		switch {
		case deviation >= hrCriticalSpikePct:
			d.warn(fmt.Sprintf("Elevated resting HR: %.1f%% above baseline. Possible illness, stress, or overtraining.", deviation))
			d.recommend("Prioritize rest and stress management. Monitor symptoms.")
			d.severity = SeverityCritical
		case deviation >= hrWarningSpikePct:
			d.warn(fmt.Sprintf("Resting HR elevated: %.1f%% above baseline. Increased stress or fatigue.", deviation))
			if !strings.Contains(strings.Join(d.recommendations, " "), "Easy training") {
				d.recommend("Reduce training intensity.")
			}
			d.escalate(SeverityWarning)
		}
	}

	if components.Sleep != nil && *components.Sleep < 40 {
		d.warn(fmt.Sprintf("Poor sleep detected: Sleep score %d/100. Inadequate recovery.", *components.Sleep))
		d.recommend("Prioritize sleep hygiene and earlier bedtime.")
		d.escalate(SeverityWarning)
	}

	// Low HRV + elevated HR + poor sleep at the same time is the classic
	// illness/overtraining combination and is always critical.
	if components.HRV != nil && *components.HRV < 25 &&
		components.HR != nil && *components.HR < 25 &&
		components.Sleep != nil && *components.Sleep < 50 {
		if !strings.Contains(strings.ToLower(strings.Join(d.warnings, " ")), "illness") {
			d.warn("Multiple warning signals: Low HRV + Elevated HR + Poor sleep. High risk of illness or overtraining.")
		}
		d.recommend("PRIORITY: Complete rest until metrics improve.")
		d.severity = SeverityCritical
	}

	if components.ACWR != nil && *components.ACWR < 30 {
		d.warn(fmt.Sprintf("Training load warning: ACWR score %d/100. Risk of injury from excessive training spike or detraining.", *components.ACWR))
		if *components.ACWR == 0 {
			d.recommend("Immediately reduce training load to prevent injury.")
		} else {
			d.recommend("Adjust training volume to safer levels.")
		}
		d.escalate(SeverityWarning)
	}

	if hasOvertrainingPattern(history) {
		d.warn("Overtraining pattern detected: Persistent HRV suppression over multiple days.")
		d.recommend("Schedule recovery week with reduced volume/intensity.")
		d.severity = SeverityCritical
	}

	return AnomalyResult{
		HasAnomalies:    len(d.warnings) > 0,
		Severity:        d.severity,
		Warnings:        d.warnings,
		Recommendations: d.recommendations,
	}
}

// anomalySweep accumulates deduplicated warnings and the running severity.
type anomalySweep struct {
	severity        Severity
	warnings        []string
	recommendations []string
}

func (d *anomalySweep) warn(msg string) {
	d.warnings = appendUnique(d.warnings, msg)
}

func (d *anomalySweep) recommend(msg string) {
	d.recommendations = appendUnique(d.recommendations, msg)
}

// escalate raises severity but never downgrades critical.
func (d *anomalySweep) escalate(s Severity) {
	if d.severity == SeverityNone && s == SeverityWarning {
		d.severity = SeverityWarning
	}
}

func appendUnique(list []string, msg string) []string {
	for _, existing := range list {
		if existing == msg {
			return list
		}
	}
	return append(list, msg)
}

// anomalyBaseline averages one signal over the last 7 history entries.
// Unlike the scorer baseline, zero values are kept; only missing entries are
// skipped. Needs at least 4 valid days.
func anomalyBaseline(history []metrics.HealthSample, field func(metrics.HealthSample) *int) *float64 {
	recent := history
	if len(recent) > baselineWindowDays {
		recent = recent[len(recent)-baselineWindowDays:]
	}

	var valid []int
	for _, s := range recent {
		if v := field(s); v != nil {
			valid = append(valid, *v)
		}
	}
	if len(valid) < minValidBaselineDays {
		return nil
	}

	sum := 0
	for _, v := range valid {
		sum += v
	}
	avg := float64(sum) / float64(len(valid))
	return &avg
}

// hasOvertrainingPattern reports persistent HRV suppression: a baseline from
// the earliest 4 of the last 7 days, with all of the last 3 days at least
// 15% below it.
func hasOvertrainingPattern(history []metrics.HealthSample) bool {
	if len(history) < baselineWindowDays {
		return false
	}
	recent := history[len(history)-baselineWindowDays:]

	var baselineValues []int
	for _, s := range recent[:4] {
		if s.HRVms != nil {
			baselineValues = append(baselineValues, *s.HRVms)
		}
	}
	if len(baselineValues) < 3 {
		return false
	}

	sum := 0
	for _, v := range baselineValues {
		sum += v
	}
	baseline := float64(sum) / float64(len(baselineValues))
	if baseline == 0 {
		return false
	}

	suppressed := 0
	for _, s := range recent[len(recent)-3:] {
		if s.HRVms == nil {
			continue
		}
		deviation := (float64(*s.HRVms) - baseline) / baseline * 100
		if deviation <= hrvWarningDropPct {
			suppressed++
		}
	}

	return suppressed >= suppressedDaysThreshold
}
