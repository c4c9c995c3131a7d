package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("90m", time.Hour); got != 90*time.Minute {
		t.Errorf("ParseDuration(90m) = %v, want 90m", got)
	}
	if got := ParseDuration("nonsense", time.Hour); got != time.Hour {
		t.Errorf("ParseDuration(nonsense) = %v, want the 1h default", got)
	}
	if got := ParseDuration("", 30*time.Second); got != 30*time.Second {
		t.Errorf("ParseDuration(empty) = %v, want the 30s default", got)
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-09-15")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if date.Year() != 2025 || date.Month() != time.September || date.Day() != 15 {
		t.Errorf("ParseDate returned %v", date)
	}

	if _, err := ParseDate("15/09/2025"); err == nil {
		t.Error("expected error for wrong date format")
	}
}

func TestParseTimeOfDay(t *testing.T) {
	full, err := ParseTimeOfDay("09:30:00")
	if err != nil {
		t.Fatalf("ParseTimeOfDay(09:30:00) returned error: %v", err)
	}
	if full.Hour() != 9 || full.Minute() != 30 {
		t.Errorf("ParseTimeOfDay(09:30:00) = %v", full)
	}

	short, err := ParseTimeOfDay("14:15")
	if err != nil {
		t.Fatalf("ParseTimeOfDay(14:15) returned error: %v", err)
	}
	if short.Hour() != 14 || short.Minute() != 15 {
		t.Errorf("ParseTimeOfDay(14:15) = %v", short)
	}
	if got := short.Format(TimeLayout); got != "14:15:00" {
		t.Errorf("normalized time = %q, want 14:15:00", got)
	}

	if _, err := ParseTimeOfDay("9am"); err == nil {
		t.Error("expected error for unsupported time format")
	}
}
