package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled   AppointmentStatus = "Scheduled"
	AppointmentStatusInProgress  AppointmentStatus = "In Progress"
	AppointmentStatusCompleted   AppointmentStatus = "Completed"
	AppointmentStatusCancelled   AppointmentStatus = "Cancelled"
	AppointmentStatusRescheduled AppointmentStatus = "Rescheduled"
)

// DefaultDurationMinutes is the booking unit; every appointment occupies one
// half-hour slot regardless of its type.
const DefaultDurationMinutes = 30

// ValidAppointmentStatus checks whether s is one of the five lifecycle states
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusScheduled,
		AppointmentStatusInProgress,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
		AppointmentStatusRescheduled:
		return true
	}
	return false
}

// Appointment is a ledger entry for a booked slot. Appointments are never
// hard-deleted; cancellation is a status change so the audit history survives.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index:idx_doctor_slot" json:"appointment_date"`
	AppointmentTime string            `gorm:"type:varchar(5);not null;index:idx_doctor_slot" json:"appointment_time"`
	AppointmentType string            `gorm:"type:varchar(50);not null" json:"appointment_type"`
	DurationMinutes int               `gorm:"not null;default:30" json:"duration_minutes"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient        `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor         `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Billing *BillingRecord `gorm:"foreignKey:AppointmentID" json:"billing,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// AppendNote appends an audit line to the appointment notes. Existing notes are
// preserved; a transition never overwrites them.
func (a *Appointment) AppendNote(line string) {
	if a.Notes == "" {
		a.Notes = line
	} else {
		a.Notes = a.Notes + "\n" + line
	}
}

// TransitionNote builds the audit line recorded for a status change
func TransitionNote(status AppointmentStatus, reason string) string {
	if reason == "" {
		reason = "No reason provided"
	}
	if status == AppointmentStatusRescheduled {
		return fmt.Sprintf("Rescheduled: %s", reason)
	}
	return fmt.Sprintf("Status changed to %s: %s", status, reason)
}
