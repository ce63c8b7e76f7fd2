package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"dental-office-backend/internal/delivery/dto"
	"dental-office-backend/internal/usecase"
	"dental-office-backend/pkg/response"
	"dental-office-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	scheduleUsecase usecase.ScheduleViewUsecase
	recordUsecase   usecase.MedicalRecordUsecase
	validator       *validator.CustomValidator
}

func NewPatientHandler(
	scheduleUsecase usecase.ScheduleViewUsecase,
	recordUsecase usecase.MedicalRecordUsecase,
	validator *validator.CustomValidator,
) *PatientHandler {
	return &PatientHandler{
		scheduleUsecase: scheduleUsecase,
		recordUsecase:   recordUsecase,
		validator:       validator,
	}
}

// GetAppointments returns the patient's history split into upcoming and past,
// with billing totals across all of it.
func (h *PatientHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parsePatientID(w, r)
	if !ok {
		return
	}

	appointments, err := h.scheduleUsecase.GetPatientAppointments(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *PatientHandler) CreateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parsePatientID(w, r)
	if !ok {
		return
	}

	var req dto.CreateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Create(r.Context(), patientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrInvalidDate):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create medical record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical record created successfully", record)
}

func (h *PatientHandler) ListMedicalRecords(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parsePatientID(w, r)
	if !ok {
		return
	}

	records, err := h.recordUsecase.ListByPatient(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to list medical records")
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", records)
}

func parsePatientID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return uuid.Nil, false
	}
	return patientID, true
}
