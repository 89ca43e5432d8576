package recovery

import (
	"errors"
	"testing"
)

const secondsPerHour = 3600

func TestSleepScore_OptimalDuration(t *testing.T) {
	score, err := SleepScore(intPtr(7*secondsPerHour), nil)
	if err != nil {
		t.Fatalf("SleepScore failed: %v", err)
	}
	if score == nil {
		t.Fatal("expected a score, got nil")
	}
	if *score != 100 {
		t.Errorf("expected score 100 for 7h sleep, got %d", *score)
	}
}

func TestSleepScore_ShortDuration(t *testing.T) {
	score, err := SleepScore(intPtr(6*secondsPerHour), nil)
	if err != nil {
		t.Fatalf("SleepScore failed: %v", err)
	}
	if *score != 70 {
		t.Errorf("expected score 70 for 6h sleep, got %d", *score)
	}
}

func TestSleepScore_InterpolatesDuration(t *testing.T) {
	// 5.5h sits halfway between 5h (40) and 6h (70)
	score, err := SleepScore(intPtr(5*secondsPerHour+1800), nil)
	if err != nil {
		t.Fatalf("SleepScore failed: %v", err)
	}
	if *score != 55 {
		t.Errorf("expected score 55 for 5.5h sleep, got %d", *score)
	}
}

func TestSleepScore_QualityBlended(t *testing.T) {
	// 8h duration (100) blended 60/40 with device quality 90
	score, err := SleepScore(intPtr(8*secondsPerHour), intPtr(90))
	if err != nil {
		t.Fatalf("SleepScore failed: %v", err)
	}
	if *score != 96 {
		t.Errorf("expected score 96, got %d", *score)
	}
}

func TestSleepScore_PoorQualityDragsScoreDown(t *testing.T) {
	score, err := SleepScore(intPtr(8*secondsPerHour), intPtr(0))
	if err != nil {
		t.Fatalf("SleepScore failed: %v", err)
	}
	if *score != 60 {
		t.Errorf("expected score 60 for 8h with quality 0, got %d", *score)
	}
}

func TestSleepScore_ExcessiveSleep(t *testing.T) {
	// Past 10h the curve keeps falling: 12h = 50
	score, err := SleepScore(intPtr(12*secondsPerHour), nil)
	if err != nil {
		t.Fatalf("SleepScore failed: %v", err)
	}
	if *score != 50 {
		t.Errorf("expected score 50 for 12h sleep, got %d", *score)
	}
}

func TestSleepScore_VeryShortSleep(t *testing.T) {
	score, err := SleepScore(intPtr(3*secondsPerHour), nil)
	if err != nil {
		t.Fatalf("SleepScore failed: %v", err)
	}
	if *score != 0 {
		t.Errorf("expected score 0 for 3h sleep, got %d", *score)
	}
}

func TestSleepScore_MissingDuration(t *testing.T) {
	score, err := SleepScore(nil, intPtr(90))
	if err != nil {
		t.Fatalf("SleepScore failed: %v", err)
	}
	if score != nil {
		t.Errorf("expected nil score without a duration, got %d", *score)
	}
}

func TestSleepScore_NegativeDuration(t *testing.T) {
	score, err := SleepScore(intPtr(-100), nil)
	if err == nil {
		t.Fatal("expected validation error for negative duration")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if score != nil {
		t.Errorf("expected nil score on validation failure, got %d", *score)
	}
}
