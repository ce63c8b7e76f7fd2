package usecase

import (
	"testing"
	"time"

	"dental-office-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func TestSlotInstant(t *testing.T) {
	a := &entity.Appointment{
		AppointmentDate: time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "14:30",
	}

	got := slotInstant(a)
	want := time.Date(2026, 4, 20, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("slotInstant = %s, want %s", got, want)
	}
}

func TestSlotInstantMalformedTime(t *testing.T) {
	a := &entity.Appointment{
		AppointmentDate: time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "bad",
	}

	if got := slotInstant(a); !got.Equal(a.AppointmentDate) {
		t.Errorf("malformed time must fall back to the date, got %s", got)
	}
}

func TestGroupByStatus(t *testing.T) {
	appointments := []entity.Appointment{
		{Status: entity.AppointmentStatusScheduled},
		{Status: entity.AppointmentStatusRescheduled},
		{Status: entity.AppointmentStatusInProgress},
		{Status: entity.AppointmentStatusCompleted},
		{Status: entity.AppointmentStatusCancelled},
		{Status: entity.AppointmentStatusCancelled},
	}

	groups := groupByStatus(appointments)

	// Rescheduled rides with Scheduled: it is still an upcoming booking
	if len(groups.Scheduled) != 2 {
		t.Errorf("scheduled group = %d, want 2", len(groups.Scheduled))
	}
	if len(groups.InProgress) != 1 {
		t.Errorf("in progress group = %d, want 1", len(groups.InProgress))
	}
	if len(groups.Completed) != 1 {
		t.Errorf("completed group = %d, want 1", len(groups.Completed))
	}
	if len(groups.Cancelled) != 2 {
		t.Errorf("cancelled group = %d, want 2", len(groups.Cancelled))
	}
}

func TestDayStats(t *testing.T) {
	appointments := []entity.Appointment{
		{
			Status: entity.AppointmentStatusCompleted,
			Billing: &entity.BillingRecord{
				Amount:            decimal.NewFromInt(150),
				InsuranceCoverage: decimal.NewFromInt(105),
			},
		},
		{
			Status: entity.AppointmentStatusScheduled,
			Billing: &entity.BillingRecord{
				Amount:            decimal.NewFromInt(100),
				InsuranceCoverage: decimal.NewFromInt(70),
			},
		},
		{Status: entity.AppointmentStatusCancelled},
	}

	stats := dayStats(appointments)

	if stats.TotalAppointments != 3 {
		t.Errorf("total = %d, want 3", stats.TotalAppointments)
	}
	if stats.ScheduledAppointments != 1 || stats.CompletedAppointments != 1 || stats.CancelledAppointments != 1 {
		t.Errorf("unexpected status counts: %+v", stats)
	}
	if !stats.TotalBilled.Equal(decimal.NewFromInt(250)) {
		t.Errorf("total billed = %s, want 250", stats.TotalBilled)
	}
	if !stats.TotalInsuranceCoverage.Equal(decimal.NewFromInt(175)) {
		t.Errorf("total coverage = %s, want 175", stats.TotalInsuranceCoverage)
	}
	if !stats.TotalPatientOwed.Equal(decimal.NewFromInt(75)) {
		t.Errorf("total owed = %s, want 75", stats.TotalPatientOwed)
	}
}
