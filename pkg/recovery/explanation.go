package recovery

import (
	"fmt"
	"strings"
)

// BuildExplanation renders the multi-line readable breakdown stored next to
// the score: overall interpretation, per-component lines with weights, then
// any health alerts and recommendations from anomaly detection.
func BuildExplanation(score int, components ComponentScores, anomalies AnomalyResult) string {
	var lines []string

	switch {
	case score >= 90:
		lines = append(lines,
			fmt.Sprintf("✓ Excellent recovery (Score: %d/100)", score),
			"You're well-recovered and ready for high-intensity training or racing.")
	case score >= 70:
		lines = append(lines,
			fmt.Sprintf("✓ Good recovery (Score: %d/100)", score),
			"You're recovered and ready for normal training loads.")
	case score >= 50:
		lines = append(lines,
			fmt.Sprintf("⚠ Moderate recovery (Score: %d/100)", score),
			"Consider easier training or active recovery today.")
	case score >= 30:
		lines = append(lines,
			fmt.Sprintf("⚠ Poor recovery (Score: %d/100)", score),
			"Light activity or rest is recommended to avoid overtraining.")
	default:
		lines = append(lines,
			fmt.Sprintf("✗ Critical - Low recovery (Score: %d/100)", score),
			"Complete rest is strongly recommended.")
	}

	lines = append(lines, "\nComponent Scores:")
	if components.HRV != nil {
		lines = append(lines, fmt.Sprintf("  • HRV: %d/100 (40%% weight)", *components.HRV))
	}
	if components.HR != nil {
		lines = append(lines, fmt.Sprintf("  • Resting HR: %d/100 (30%% weight)", *components.HR))
	}
	if components.Sleep != nil {
		lines = append(lines, fmt.Sprintf("  • Sleep: %d/100 (20%% weight)", *components.Sleep))
	}
	if components.ACWR != nil {
		lines = append(lines, fmt.Sprintf("  • Training Load: %d/100 (10%% weight)", *components.ACWR))
	}

	if anomalies.HasAnomalies {
		lines = append(lines, "\n⚠ HEALTH ALERTS:")
		for _, w := range anomalies.Warnings {
			lines = append(lines, "  • "+w)
		}
	}
	if len(anomalies.Recommendations) > 0 {
		lines = append(lines, "\nRecommendations:")
		for _, r := range anomalies.Recommendations {
			lines = append(lines, "  • "+r)
		}
	}

	return strings.Join(lines, "\n")
}
