package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateMedicalRecordRequest struct {
	DoctorID      uuid.UUID `json:"doctor_id" validate:"required"`
	ProcedureType string    `json:"procedure_type" validate:"required"`
	ProcedureDate string    `json:"procedure_date" validate:"required,datetime=2006-01-02"`
	Diagnosis     string    `json:"diagnosis" validate:"omitempty"`
	Treatment     string    `json:"treatment" validate:"omitempty"`
	Notes         string    `json:"notes" validate:"omitempty"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID            int       `json:"id"`
	PatientID     uuid.UUID `json:"patient_id"`
	DoctorID      uuid.UUID `json:"doctor_id"`
	DoctorName    string    `json:"doctor_name,omitempty"`
	ProcedureType string    `json:"procedure_type"`
	ProcedureDate string    `json:"procedure_date"`
	Diagnosis     string    `json:"diagnosis,omitempty"`
	Treatment     string    `json:"treatment,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type MedicalRecordListResponse struct {
	Records []MedicalRecordResponse `json:"records"`
	Total   int                     `json:"total"`
}
