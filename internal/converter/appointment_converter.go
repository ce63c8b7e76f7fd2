package converter

import (
	"dental-office-backend/internal/delivery/dto"
	"dental-office-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its response DTO,
// flattening doctor/patient display fields when the relations are loaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		Date:            appointment.AppointmentDate.Format("2006-01-02"),
		Time:            appointment.AppointmentTime,
		AppointmentType: appointment.AppointmentType,
		DurationMinutes: appointment.DurationMinutes,
		Status:          string(appointment.Status),
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.Doctor.ID != uuid.Nil {
		response.DoctorName = appointment.Doctor.Name
		response.DoctorSpecialty = appointment.Doctor.Specialty
	}
	if appointment.Patient.ID != uuid.Nil {
		response.PatientName = appointment.Patient.Name
	}
	if appointment.Billing != nil {
		response.Billing = &dto.BillingInfo{
			Amount:                appointment.Billing.Amount,
			InsuranceCoverage:     appointment.Billing.InsuranceCoverage,
			PatientResponsibility: appointment.Billing.PatientResponsibility(),
			Status:                string(appointment.Billing.Status),
		}
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// RuleToWindow converts a matched availability rule into the window echoed on a
// positive availability verdict.
func RuleToWindow(rule *entity.AvailabilityRule) *dto.AvailabilityWindow {
	if rule == nil {
		return nil
	}
	return &dto.AvailabilityWindow{
		StartTime:       rule.StartTime,
		EndTime:         rule.EndTime,
		BreakStart:      rule.BreakStart,
		BreakEnd:        rule.BreakEnd,
		MaxAppointments: rule.MaxAppointments,
	}
}

// RuleToResponse converts an availability rule to its full response DTO
func RuleToResponse(rule *entity.AvailabilityRule) *dto.AvailabilityRuleResponse {
	if rule == nil {
		return nil
	}
	return &dto.AvailabilityRuleResponse{
		ID:              rule.ID,
		DoctorID:        rule.DoctorID,
		DayOfWeek:       rule.DayOfWeek,
		StartTime:       rule.StartTime,
		EndTime:         rule.EndTime,
		BreakStart:      rule.BreakStart,
		BreakEnd:        rule.BreakEnd,
		IsAvailable:     rule.Available(),
		MaxAppointments: rule.MaxAppointments,
	}
}

// TimeOffToResponse converts a time-off interval to its response DTO
func TimeOffToResponse(interval *entity.TimeOffInterval) *dto.TimeOffResponse {
	if interval == nil {
		return nil
	}
	return &dto.TimeOffResponse{
		ID:        interval.ID,
		DoctorID:  interval.DoctorID,
		StartDate: interval.StartDate.Format("2006-01-02"),
		EndDate:   interval.EndDate.Format("2006-01-02"),
		Reason:    interval.Reason,
		CreatedAt: interval.CreatedAt,
	}
}
