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

type AppointmentHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	bookingUsecase      usecase.BookingUsecase
	statusUsecase       usecase.AppointmentStatusUsecase
	validator           *validator.CustomValidator
}

func NewAppointmentHandler(
	availabilityUsecase usecase.AvailabilityUsecase,
	bookingUsecase usecase.BookingUsecase,
	statusUsecase usecase.AppointmentStatusUsecase,
	validator *validator.CustomValidator,
) *AppointmentHandler {
	return &AppointmentHandler{
		availabilityUsecase: availabilityUsecase,
		bookingUsecase:      bookingUsecase,
		statusUsecase:       statusUsecase,
		validator:           validator,
	}
}

// CheckAvailability answers whether one (doctor, date, time) slot is bookable.
// An unavailable slot is a successful response carrying the reason, not an error.
func (h *AppointmentHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.availabilityUsecase.CheckAvailability(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate), errors.Is(err, usecase.ErrInvalidTime):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to check availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability checked successfully", result)
}

func (h *AppointmentHandler) GetDaySlots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "Query parameter 'date' is required")
		return
	}

	result, err := h.availabilityUsecase.GetDaySlots(r.Context(), doctorID, date)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrInvalidDate):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", result)
}

func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.Book(r.Context(), &req)
	if err != nil {
		var unavailable *usecase.SlotUnavailableError
		switch {
		case errors.As(err, &unavailable):
			response.Conflict(w, unavailable.Reason)
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, usecase.ErrInvalidDate), errors.Is(err, usecase.ErrInvalidTime):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.statusUsecase.UpdateStatus(r.Context(), appointmentID, &req)
	if err != nil {
		var unavailable *usecase.SlotUnavailableError
		switch {
		case errors.As(err, &unavailable):
			response.Conflict(w, unavailable.Reason)
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrInvalidStatus), errors.Is(err, usecase.ErrInvalidDateTime):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update appointment status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}
