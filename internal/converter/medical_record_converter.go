package converter

import (
	"dental-office-backend/internal/delivery/dto"
	"dental-office-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// MedicalRecordToResponse converts a MedicalRecord entity to its response DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	response := &dto.MedicalRecordResponse{
		ID:            record.ID,
		PatientID:     record.PatientID,
		DoctorID:      record.DoctorID,
		ProcedureType: record.ProcedureType,
		ProcedureDate: record.ProcedureDate.Format("2006-01-02"),
		Diagnosis:     record.Diagnosis,
		Treatment:     record.Treatment,
		Notes:         record.Notes,
		CreatedAt:     record.CreatedAt,
	}

	if record.Doctor.ID != uuid.Nil {
		response.DoctorName = record.Doctor.Name
	}

	return response
}

// MedicalRecordsToResponses converts a slice of MedicalRecord entities
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i, record := range records {
		resp := MedicalRecordToResponse(&record)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
