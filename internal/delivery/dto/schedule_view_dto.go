package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorDayAppointments groups a doctor's appointments for one day by status.
type DoctorDayAppointments struct {
	Scheduled  []AppointmentResponse `json:"scheduled"`
	InProgress []AppointmentResponse `json:"in_progress"`
	Completed  []AppointmentResponse `json:"completed"`
	Cancelled  []AppointmentResponse `json:"cancelled"`
}

type DoctorDayStats struct {
	TotalAppointments      int             `json:"total_appointments"`
	ScheduledAppointments  int             `json:"scheduled_appointments"`
	InProgressAppointments int             `json:"in_progress_appointments"`
	CompletedAppointments  int             `json:"completed_appointments"`
	CancelledAppointments  int             `json:"cancelled_appointments"`
	TotalBilled            decimal.Decimal `json:"total_billed"`
	TotalInsuranceCoverage decimal.Decimal `json:"total_insurance_coverage"`
	TotalPatientOwed       decimal.Decimal `json:"total_patient_responsibility"`
}

type DoctorScheduleResponse struct {
	DoctorID       uuid.UUID                 `json:"doctor_id"`
	Date           string                    `json:"date"`
	Availability   *AvailabilityRuleResponse `json:"availability"`
	TimeOff        *TimeOffResponse          `json:"time_off"`
	Appointments   DoctorDayAppointments     `json:"appointments"`
	AvailableSlots []string                  `json:"available_slots"`
	Stats          DoctorDayStats            `json:"stats"`
}

// PatientAppointmentGroups splits a patient's history into upcoming and past.
type PatientAppointmentGroups struct {
	Upcoming []AppointmentResponse `json:"upcoming"`
	Past     []AppointmentResponse `json:"past"`
}

type PatientStats struct {
	TotalAppointments      int             `json:"total_appointments"`
	CompletedAppointments  int             `json:"completed_appointments"`
	CancelledAppointments  int             `json:"cancelled_appointments"`
	UpcomingAppointments   int             `json:"upcoming_appointments"`
	TotalBilled            decimal.Decimal `json:"total_billed"`
	TotalInsuranceCoverage decimal.Decimal `json:"total_insurance_coverage"`
	TotalPatientOwed       decimal.Decimal `json:"total_patient_responsibility"`
}

type PatientAppointmentsResponse struct {
	PatientID    uuid.UUID                `json:"patient_id"`
	Appointments PatientAppointmentGroups `json:"appointments"`
	Stats        PatientStats             `json:"stats"`
}
