package entity

import (
	"testing"
	"time"
)

func TestRuleHasBreak(t *testing.T) {
	start, end := "12:00", "13:00"

	r := &AvailabilityRule{}
	if r.HasBreak() {
		t.Error("rule without break window reports a break")
	}

	r.BreakStart = &start
	if r.HasBreak() {
		t.Error("break start alone must not count as a break")
	}

	r.BreakEnd = &end
	if !r.HasBreak() {
		t.Error("rule with both ends set must report a break")
	}
}

func TestRuleAvailable(t *testing.T) {
	r := &AvailabilityRule{}
	if !r.Available() {
		t.Error("rule with unset flag must default to available")
	}

	available := false
	r.IsAvailable = &available
	if r.Available() {
		t.Error("rule flagged unavailable must not be available")
	}
}

func TestTimeOffCovers(t *testing.T) {
	interval := &TimeOffInterval{
		StartDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		date time.Time
		want bool
	}{
		{time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), false},
		{time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		if got := interval.Covers(tt.date); got != tt.want {
			t.Errorf("Covers(%s) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}
