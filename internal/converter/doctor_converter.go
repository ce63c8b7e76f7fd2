package converter

import (
	"dental-office-backend/internal/delivery/dto"
	"dental-office-backend/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}
	return &dto.DoctorResponse{
		ID:          doctor.ID,
		Name:        doctor.Name,
		Specialty:   doctor.Specialty,
		Email:       doctor.Email,
		Phone:       doctor.Phone,
		OfficeHours: doctor.OfficeHours,
		Status:      string(doctor.Status),
	}
}

// DoctorsToResponses converts a slice of Doctor entities
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		resp := DoctorToResponse(&doctor)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}
	return &dto.PatientResponse{
		ID:                patient.ID,
		Name:              patient.Name,
		Email:             patient.Email,
		Phone:             patient.Phone,
		DateOfBirth:       patient.DateOfBirth.Format("2006-01-02"),
		Address:           patient.Address,
		InsuranceProvider: patient.InsuranceProvider,
		InsuranceID:       patient.InsuranceID,
		Status:            string(patient.Status),
	}
}
