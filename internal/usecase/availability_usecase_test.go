package usecase

import (
	"testing"

	"dental-office-backend/internal/domain/entity"
)

func rule(start, end string, breakStart, breakEnd *string, maxAppointments int) *entity.AvailabilityRule {
	return &entity.AvailabilityRule{
		StartTime:       start,
		EndTime:         end,
		BreakStart:      breakStart,
		BreakEnd:        breakEnd,
		MaxAppointments: maxAppointments,
	}
}

func strPtr(s string) *string { return &s }

func TestCanonicalTime(t *testing.T) {
	// time.Parse accepts a single-digit hour, so "9:00" would otherwise be
	// stored verbatim and count as a different slot than "09:00", letting two
	// bookings share a slot with capacity 1.
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"9:00", "09:00", false},
		{"09:00", "09:00", false},
		{"9:30", "09:30", false},
		{"23:45", "23:45", false},
		{"25:00", "", true},
		{"09:60", "", true},
		{"garbage", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := canonicalTime(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("canonicalTime(%q) accepted, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("canonicalTime(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("canonicalTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHourOf(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"09:00", 9},
		{"17:30", 17},
		{"00:15", 0},
		{"23:59", 23},
		{"garbage", -1},
		{"", -1},
	}
	for _, tt := range tests {
		if got := hourOf(tt.in); got != tt.want {
			t.Errorf("hourOf(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWithinWorkingHours(t *testing.T) {
	r := rule("09:00", "17:00", nil, nil, 8)

	tests := []struct {
		time string
		want bool
	}{
		{"09:00", true},
		{"09:30", true},
		{"16:30", true},
		{"17:00", false},
		{"17:30", false},
		{"08:59", false},
		{"08:00", false},
		{"18:00", false},
	}
	for _, tt := range tests {
		if got := withinWorkingHours(r, tt.time); got != tt.want {
			t.Errorf("withinWorkingHours(%q) = %v, want %v", tt.time, got, tt.want)
		}
	}
}

func TestWithinWorkingHoursHourGranularity(t *testing.T) {
	// The boundary comparison is hour-only: an end time of 17:30 still cuts
	// off at hour 17, so 17:00 and 17:15 are rejected even though they fall
	// before the nominal end.
	r := rule("09:00", "17:30", nil, nil, 8)

	if withinWorkingHours(r, "17:00") {
		t.Error("17:00 admitted despite hour-granularity cutoff at 17")
	}
	if withinWorkingHours(r, "17:15") {
		t.Error("17:15 admitted despite hour-granularity cutoff at 17")
	}
	if !withinWorkingHours(r, "16:30") {
		t.Error("16:30 rejected inside working hours")
	}
}

func TestInBreak(t *testing.T) {
	r := rule("09:00", "17:00", strPtr("12:00"), strPtr("13:00"), 8)

	tests := []struct {
		time string
		want bool
	}{
		{"11:30", false},
		{"12:00", true},
		{"12:30", true},
		{"13:00", false},
		{"14:00", false},
	}
	for _, tt := range tests {
		if got := inBreak(r, tt.time); got != tt.want {
			t.Errorf("inBreak(%q) = %v, want %v", tt.time, got, tt.want)
		}
	}

	noBreak := rule("09:00", "17:00", nil, nil, 8)
	if inBreak(noBreak, "12:00") {
		t.Error("rule without break window reported a break")
	}
}

func TestBuildDaySlots(t *testing.T) {
	r := rule("09:00", "12:00", strPtr("10:00"), strPtr("11:00"), 1)

	slots := buildDaySlots(r, nil)

	// 09:00 09:30 11:00 11:30; hour 10 skipped for the break
	want := []string{"09:00", "09:30", "11:00", "11:30"}
	if len(slots) != len(want) {
		t.Fatalf("got %d slots, want %d", len(slots), len(want))
	}
	for i, w := range want {
		if slots[i].Time != w {
			t.Errorf("slot %d = %q, want %q", i, slots[i].Time, w)
		}
		if !slots[i].Available {
			t.Errorf("slot %q unexpectedly unavailable", w)
		}
	}
}

func TestBuildDaySlotsCapacity(t *testing.T) {
	r := rule("09:00", "10:00", nil, nil, 2)
	appointments := []entity.Appointment{
		{AppointmentTime: "09:00", Status: entity.AppointmentStatusScheduled},
		{AppointmentTime: "09:00", Status: entity.AppointmentStatusScheduled},
		{AppointmentTime: "09:30", Status: entity.AppointmentStatusScheduled},
		{AppointmentTime: "09:30", Status: entity.AppointmentStatusCancelled},
	}

	slots := buildDaySlots(r, appointments)
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}

	if slots[0].Available {
		t.Error("09:00 must be full at capacity 2")
	}
	if slots[0].Reason != ReasonNoSlots {
		t.Errorf("full slot reason = %q, want %q", slots[0].Reason, ReasonNoSlots)
	}
	if !slots[1].Available {
		t.Error("09:30 must stay open; cancelled appointments do not count")
	}
}
