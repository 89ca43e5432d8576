package recovery

import (
	"errors"
	"math"

	"github.com/readycoach/engine/pkg/domain/metrics"
)

// ErrInvalidInput marks validation failures (out-of-range or malformed
// values). Insufficient data is not an error: scorers return a nil score
// with a nil error for that case.
var ErrInvalidInput = errors.New("invalid input")

const (
	// Rolling baseline window for HRV/HR scoring and anomaly detection.
	baselineWindowDays = 7
	// Minimum valid days inside the window for a usable baseline.
	minValidBaselineDays = 4
)

// refPoint pairs an input value with the score it maps to.
type refPoint struct {
	at    float64
	score float64
}

// interpolate maps v onto the piecewise-linear curve described by points,
// clamping to the boundary scores outside the reference range. Points must
// be ordered by ascending input value.
func interpolate(points []refPoint, v float64) int {
	if v <= points[0].at {
		return int(points[0].score)
	}
	if last := points[len(points)-1]; v >= last.at {
		return int(last.score)
	}

	for i := 0; i < len(points)-1; i++ {
		lo, hi := points[i], points[i+1]
		if v < lo.at || v > hi.at {
			continue
		}
		if lo.score == hi.score {
			// Flat band, e.g. the ACWR sweet spot.
			return int(lo.score)
		}
		fraction := (v - lo.at) / (hi.at - lo.at)
		return int(math.Round(lo.score + (hi.score-lo.score)*fraction))
	}

	// Unreachable given the bounds checks; neutral fallback.
	return 50
}

// rollingBaseline averages the most recent valid values of one signal across
// the baseline window. Zero-valued entries are excluded: devices report zero
// for failed reads, not for real measurements. Returns nil when fewer than
// minValidBaselineDays valid values exist.
func rollingBaseline(history []metrics.HealthSample, field func(metrics.HealthSample) *int) *float64 {
	var valid []int
	for _, s := range history {
		if v := field(s); v != nil && *v > 0 {
			valid = append(valid, *v)
		}
	}
	if len(valid) > baselineWindowDays {
		valid = valid[len(valid)-baselineWindowDays:]
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

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
