package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CheckAvailabilityRequest struct {
	DoctorID uuid.UUID `json:"doctor_id" validate:"required"`
	Date     string    `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string    `json:"time" validate:"required,datetime=15:04"`
}

type BookAppointmentRequest struct {
	PatientID       uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	Date            string    `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string    `json:"time" validate:"required,datetime=15:04"`
	AppointmentType string    `json:"appointment_type" validate:"required"`
	Notes           string    `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status      string `json:"status" validate:"required"`
	Reason      string `json:"reason" validate:"omitempty"`
	NewDateTime string `json:"new_datetime" validate:"omitempty,datetime=2006-01-02 15:04"`
}

// Response DTOs

// AvailabilityWindow echoes the matched weekly rule back to the caller so a
// client can render the bookable range without a second lookup.
type AvailabilityWindow struct {
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	BreakStart      *string `json:"break_start,omitempty"`
	BreakEnd        *string `json:"break_end,omitempty"`
	MaxAppointments int     `json:"max_appointments"`
}

type AvailabilityResponse struct {
	Available    bool                `json:"available"`
	Reason       string              `json:"reason,omitempty"`
	Availability *AvailabilityWindow `json:"availability,omitempty"`
}

type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type DaySlotsResponse struct {
	DoctorID uuid.UUID      `json:"doctor_id"`
	Date     string         `json:"date"`
	Slots    []SlotResponse `json:"slots"`
}

type BillingInfo struct {
	Amount                decimal.Decimal `json:"amount"`
	InsuranceCoverage     decimal.Decimal `json:"insurance_coverage"`
	PatientResponsibility decimal.Decimal `json:"patient_responsibility"`
	Status                string          `json:"status"`
}

type AppointmentResponse struct {
	ID              uuid.UUID    `json:"id"`
	PatientID       uuid.UUID    `json:"patient_id"`
	DoctorID        uuid.UUID    `json:"doctor_id"`
	Date            string       `json:"date"`
	Time            string       `json:"time"`
	AppointmentType string       `json:"appointment_type"`
	DurationMinutes int          `json:"duration_minutes"`
	Status          string       `json:"status"`
	Notes           string       `json:"notes,omitempty"`
	PatientName     string       `json:"patient_name,omitempty"`
	DoctorName      string       `json:"doctor_name,omitempty"`
	DoctorSpecialty string       `json:"doctor_specialty,omitempty"`
	Billing         *BillingInfo `json:"billing,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
