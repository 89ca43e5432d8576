package recovery

import "testing"

func TestHRScore_BelowBaseline(t *testing.T) {
	history := makeHealthHistory(7, 60, 50)

	// -6% below baseline clamps at the top of the inverse curve
	score := HRScore(intPtr(47), history)
	if score == nil {
		t.Fatal("expected a score, got nil")
	}
	if *score != 100 {
		t.Errorf("expected score 100 for lowered resting HR, got %d", *score)
	}
}

func TestHRScore_AtBaseline(t *testing.T) {
	history := makeHealthHistory(7, 60, 50)

	score := HRScore(intPtr(50), history)
	if score == nil {
		t.Fatal("expected a score, got nil")
	}
	if *score != 50 {
		t.Errorf("expected score 50 at baseline, got %d", *score)
	}
}

func TestHRScore_ElevatedTenPercent(t *testing.T) {
	history := makeHealthHistory(7, 60, 50)

	score := HRScore(intPtr(55), history)
	if score == nil {
		t.Fatal("expected a score, got nil")
	}
	if *score != 0 {
		t.Errorf("expected score 0 for +10%% resting HR, got %d", *score)
	}
}

func TestHRScore_ElevatedFivePercent(t *testing.T) {
	// Baseline 60 so +5% lands exactly on a reference point
	history := makeHealthHistory(7, 55, 60)

	score := HRScore(intPtr(63), history)
	if score == nil {
		t.Fatal("expected a score, got nil")
	}
	if *score != 25 {
		t.Errorf("expected score 25 for +5%% resting HR, got %d", *score)
	}
}

func TestHRScore_MissingCurrentValue(t *testing.T) {
	history := makeHealthHistory(7, 60, 50)

	if score := HRScore(nil, history); score != nil {
		t.Errorf("expected nil score for missing reading, got %d", *score)
	}
}

func TestHRScore_InsufficientBaseline(t *testing.T) {
	history := makeHealthHistory(2, 60, 50)

	if score := HRScore(intPtr(50), history); score != nil {
		t.Errorf("expected nil score for thin baseline, got %d", *score)
	}
}
