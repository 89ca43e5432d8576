package recovery

import "testing"

func TestAggregate_AllComponentsPresent(t *testing.T) {
	score := Aggregate(ComponentScores{
		HRV:   intPtr(80),
		HR:    intPtr(60),
		Sleep: intPtr(90),
		ACWR:  intPtr(70),
	})
	if score == nil {
		t.Fatal("expected a score, got nil")
	}
	// 0.4*80 + 0.3*60 + 0.2*90 + 0.1*70 = 75
	if *score != 75 {
		t.Errorf("expected score 75, got %d", *score)
	}
}

func TestAggregate_PerfectAndZero(t *testing.T) {
	all := func(v int) ComponentScores {
		return ComponentScores{HRV: intPtr(v), HR: intPtr(v), Sleep: intPtr(v), ACWR: intPtr(v)}
	}

	if score := Aggregate(all(100)); score == nil || *score != 100 {
		t.Errorf("expected 100 for all-perfect components, got %v", score)
	}
	if score := Aggregate(all(0)); score == nil || *score != 0 {
		t.Errorf("expected 0 for all-zero components, got %v", score)
	}
}

func TestAggregate_MissingComponentsRenormalized(t *testing.T) {
	// Only HRV and HR present: weights 0.4/0.3 renormalize to 4/7 and 3/7
	score := Aggregate(ComponentScores{
		HRV: intPtr(100),
		HR:  intPtr(0),
	})
	if score == nil {
		t.Fatal("expected a score, got nil")
	}
	if *score != 57 {
		t.Errorf("expected score 57 from renormalized weights, got %d", *score)
	}
}

func TestAggregate_SingleComponentInsufficient(t *testing.T) {
	score := Aggregate(ComponentScores{Sleep: intPtr(100)})
	if score != nil {
		t.Errorf("expected nil with a single component, got %d", *score)
	}
}

func TestAggregate_NoComponents(t *testing.T) {
	if score := Aggregate(ComponentScores{}); score != nil {
		t.Errorf("expected nil with no components, got %d", *score)
	}
}

func TestAggregate_ClampsOutOfRangeComponents(t *testing.T) {
	score := Aggregate(ComponentScores{
		HRV: intPtr(150),
		HR:  intPtr(-20),
	})
	if score == nil {
		t.Fatal("expected a score, got nil")
	}
	// Clamped to 100 and 0 before weighting
	if *score != 57 {
		t.Errorf("expected score 57 after clamping, got %d", *score)
	}
}

func TestDetermineStatus(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		severity Severity
		want     Status
	}{
		{"high score no anomalies", 85, SeverityNone, StatusGreen},
		{"boundary green", 70, SeverityNone, StatusGreen},
		{"high score with warning", 85, SeverityWarning, StatusYellow},
		{"moderate score", 55, SeverityNone, StatusYellow},
		{"boundary yellow", 40, SeverityNone, StatusYellow},
		{"low score", 39, SeverityNone, StatusRed},
		{"critical overrides high score", 95, SeverityCritical, StatusRed},
		{"moderate score with warning", 55, SeverityWarning, StatusYellow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetermineStatus(tc.score, tc.severity); got != tc.want {
				t.Errorf("DetermineStatus(%d, %s) = %s, want %s", tc.score, tc.severity, got, tc.want)
			}
		})
	}
}
