package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpsertAvailabilityRuleRequest struct {
	DayOfWeek       *int    `json:"day_of_week" validate:"required,gte=0,lte=6"`
	StartTime       string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime         string  `json:"end_time" validate:"required,datetime=15:04"`
	BreakStart      *string `json:"break_start" validate:"omitempty,datetime=15:04"`
	BreakEnd        *string `json:"break_end" validate:"omitempty,datetime=15:04"`
	IsAvailable     *bool   `json:"is_available"`
	MaxAppointments int     `json:"max_appointments" validate:"required,gte=1"`
}

type CreateTimeOffRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Specialty   string    `json:"specialty"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	OfficeHours string    `json:"office_hours,omitempty"`
	Status      string    `json:"status"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type AvailabilityRuleResponse struct {
	ID              int       `json:"id"`
	DoctorID        uuid.UUID `json:"doctor_id"`
	DayOfWeek       int       `json:"day_of_week"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	BreakStart      *string   `json:"break_start,omitempty"`
	BreakEnd        *string   `json:"break_end,omitempty"`
	IsAvailable     bool      `json:"is_available"`
	MaxAppointments int       `json:"max_appointments"`
}

type TimeOffResponse struct {
	ID        int       `json:"id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type TimeOffListResponse struct {
	Intervals []TimeOffResponse `json:"intervals"`
	Total     int               `json:"total"`
}
