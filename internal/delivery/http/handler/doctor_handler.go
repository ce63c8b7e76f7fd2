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

type DoctorHandler struct {
	doctorUsecase   usecase.DoctorUsecase
	scheduleUsecase usecase.ScheduleViewUsecase
	validator       *validator.CustomValidator
}

func NewDoctorHandler(
	doctorUsecase usecase.DoctorUsecase,
	scheduleUsecase usecase.ScheduleViewUsecase,
	validator *validator.CustomValidator,
) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase:   doctorUsecase,
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.ListDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseDoctorID(w, r)
	if !ok {
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// GetSchedule returns the doctor-day view: the weekly rule, active time off,
// appointments grouped by status, open slots and billing totals for the day.
func (h *DoctorHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseDoctorID(w, r)
	if !ok {
		return
	}

	schedule, err := h.scheduleUsecase.GetDoctorSchedule(r.Context(), doctorID, r.URL.Query().Get("date"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrInvalidDate):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

func (h *DoctorHandler) UpsertAvailabilityRule(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseDoctorID(w, r)
	if !ok {
		return
	}

	var req dto.UpsertAvailabilityRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	rule, err := h.doctorUsecase.UpsertAvailabilityRule(r.Context(), doctorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrInvalidRuleWindow):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to save availability rule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability rule saved successfully", rule)
}

func (h *DoctorHandler) ListAvailabilityRules(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseDoctorID(w, r)
	if !ok {
		return
	}

	rules, err := h.doctorUsecase.ListAvailabilityRules(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to list availability rules")
		return
	}

	response.Success(w, http.StatusOK, "Availability rules retrieved successfully", rules)
}

func (h *DoctorHandler) AddTimeOff(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseDoctorID(w, r)
	if !ok {
		return
	}

	var req dto.CreateTimeOffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	interval, err := h.doctorUsecase.AddTimeOff(r.Context(), doctorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrInvalidDate), errors.Is(err, usecase.ErrInvalidTimeOffRange):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to add time off")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Time off added successfully", interval)
}

func (h *DoctorHandler) ListTimeOff(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseDoctorID(w, r)
	if !ok {
		return
	}

	intervals, err := h.doctorUsecase.ListTimeOff(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to list time off")
		return
	}

	response.Success(w, http.StatusOK, "Time off retrieved successfully", intervals)
}

func parseDoctorID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	doctorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return uuid.Nil, false
	}
	return doctorID, true
}
