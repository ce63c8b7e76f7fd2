package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestPriceForAppointmentType(t *testing.T) {
	tests := []struct {
		appointmentType string
		want            int64
	}{
		{AppointmentTypeRegularCheckup, 100},
		{AppointmentTypeCleaning, 150},
		{AppointmentTypeRootCanal, 800},
		{AppointmentTypeFilling, 200},
		{AppointmentTypeCrown, 1000},
		{AppointmentTypeExtraction, 300},
		{"Whitening", 100},
		{"", 100},
	}

	for _, tt := range tests {
		got := PriceForAppointmentType(tt.appointmentType)
		if !got.Equal(decimal.NewFromInt(tt.want)) {
			t.Errorf("PriceForAppointmentType(%q) = %s, want %d", tt.appointmentType, got, tt.want)
		}
	}
}

func TestNewBillingRecord(t *testing.T) {
	patientID := uuid.New()
	appointmentID := uuid.New()

	b := NewBillingRecord(patientID, appointmentID, AppointmentTypeRootCanal)

	if b.PatientID != patientID || b.AppointmentID != appointmentID {
		t.Fatal("billing record not linked to patient and appointment")
	}
	if b.Status != BillingStatusPending {
		t.Errorf("new billing record must start Pending, got %q", b.Status)
	}
	if !b.Amount.Equal(decimal.NewFromInt(800)) {
		t.Errorf("amount = %s, want 800", b.Amount)
	}
	if !b.InsuranceCoverage.Equal(decimal.NewFromInt(560)) {
		t.Errorf("insurance coverage = %s, want 560", b.InsuranceCoverage)
	}
	if !b.PatientResponsibility().Equal(decimal.NewFromInt(240)) {
		t.Errorf("patient responsibility = %s, want 240", b.PatientResponsibility())
	}
}

func TestPatientResponsibilityNonRoundAmount(t *testing.T) {
	b := NewBillingRecord(uuid.New(), uuid.New(), AppointmentTypeCleaning)

	// 150 * 0.7 = 105
	if !b.InsuranceCoverage.Equal(decimal.NewFromInt(105)) {
		t.Errorf("insurance coverage = %s, want 105", b.InsuranceCoverage)
	}
	if !b.PatientResponsibility().Equal(decimal.NewFromInt(45)) {
		t.Errorf("patient responsibility = %s, want 45", b.PatientResponsibility())
	}
}
