package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dental-office-backend/internal/delivery/dto"
	"dental-office-backend/internal/usecase"
	"dental-office-backend/pkg/response"
	"dental-office-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type stubAvailabilityUsecase struct {
	checkResult *dto.AvailabilityResponse
	checkErr    error
	slotsResult *dto.DaySlotsResponse
	slotsErr    error
}

func (s *stubAvailabilityUsecase) CheckAvailability(ctx context.Context, req *dto.CheckAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	return s.checkResult, s.checkErr
}

func (s *stubAvailabilityUsecase) GetDaySlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.DaySlotsResponse, error) {
	return s.slotsResult, s.slotsErr
}

func (s *stubAvailabilityUsecase) EvaluateSlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, timeOfDay string, excludeID *uuid.UUID) (*usecase.Evaluation, error) {
	return nil, nil
}

func (s *stubAvailabilityUsecase) EvaluateSlotForUpdate(db *gorm.DB, doctorID uuid.UUID, date time.Time, timeOfDay string, excludeID *uuid.UUID) (*usecase.Evaluation, error) {
	return nil, nil
}

type stubBookingUsecase struct {
	result *dto.AppointmentResponse
	err    error
}

func (s *stubBookingUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.result, s.err
}

type stubStatusUsecase struct {
	result *dto.AppointmentResponse
	err    error
}

func (s *stubStatusUsecase) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	return s.result, s.err
}

func newTestHandler(availability usecase.AvailabilityUsecase, booking usecase.BookingUsecase, status usecase.AppointmentStatusUsecase) *AppointmentHandler {
	return NewAppointmentHandler(availability, booking, status, validator.NewValidator())
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return resp
}

func TestCheckAvailabilityUnavailableSlot(t *testing.T) {
	h := newTestHandler(&stubAvailabilityUsecase{
		checkResult: &dto.AvailabilityResponse{Available: false, Reason: "No available slots at this time"},
	}, &stubBookingUsecase{}, &stubStatusUsecase{})

	body := fmt.Sprintf(`{"doctor_id":%q,"date":"2026-04-20","time":"09:00"}`, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/check-availability", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	h.CheckAvailability(rec, req)

	// An unavailable slot is still a 200; the verdict rides in the payload
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if !resp.Success {
		t.Error("expected success envelope")
	}
}

func TestCheckAvailabilityValidation(t *testing.T) {
	h := newTestHandler(&stubAvailabilityUsecase{}, &stubBookingUsecase{}, &stubStatusUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/check-availability", bytes.NewBufferString(`{"date":"not-a-date"}`))
	rec := httptest.NewRecorder()

	h.CheckAvailability(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestBookAppointmentSuccess(t *testing.T) {
	appointmentID := uuid.New()
	h := newTestHandler(&stubAvailabilityUsecase{}, &stubBookingUsecase{
		result: &dto.AppointmentResponse{ID: appointmentID, Status: "Scheduled"},
	}, &stubStatusUsecase{})

	body := fmt.Sprintf(`{"patient_id":%q,"doctor_id":%q,"date":"2026-04-20","time":"09:00","appointment_type":"Cleaning"}`,
		uuid.New(), uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	h.BookAppointment(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)
	if !resp.Success {
		t.Error("expected success envelope")
	}
}

func TestBookAppointmentSlotConflict(t *testing.T) {
	h := newTestHandler(&stubAvailabilityUsecase{}, &stubBookingUsecase{
		err: &usecase.SlotUnavailableError{Reason: "No available slots at this time"},
	}, &stubStatusUsecase{})

	body := fmt.Sprintf(`{"patient_id":%q,"doctor_id":%q,"date":"2026-04-20","time":"09:00","appointment_type":"Cleaning"}`,
		uuid.New(), uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	h.BookAppointment(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.Message != "No available slots at this time" {
		t.Errorf("message = %q, want the evaluator reason verbatim", resp.Message)
	}
}

func TestBookAppointmentDoctorNotFound(t *testing.T) {
	h := newTestHandler(&stubAvailabilityUsecase{}, &stubBookingUsecase{
		err: usecase.ErrDoctorNotFound,
	}, &stubStatusUsecase{})

	body := fmt.Sprintf(`{"patient_id":%q,"doctor_id":%q,"date":"2026-04-20","time":"09:00","appointment_type":"Cleaning"}`,
		uuid.New(), uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	h.BookAppointment(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateStatusRescheduleConflict(t *testing.T) {
	h := newTestHandler(&stubAvailabilityUsecase{}, &stubBookingUsecase{}, &stubStatusUsecase{
		err: &usecase.SlotUnavailableError{Reason: "Doctor is on time off during this period"},
	})

	body := `{"status":"Rescheduled","new_datetime":"2026-04-21 10:00"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/"+uuid.NewString()+"/status", bytes.NewBufferString(body))
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
	rec := httptest.NewRecorder()

	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestUpdateStatusInvalidID(t *testing.T) {
	h := newTestHandler(&stubAvailabilityUsecase{}, &stubBookingUsecase{}, &stubStatusUsecase{})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/not-a-uuid/status", bytes.NewBufferString(`{"status":"Completed"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	rec := httptest.NewRecorder()

	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	h := newTestHandler(&stubAvailabilityUsecase{}, &stubBookingUsecase{}, &stubStatusUsecase{
		err: usecase.ErrAppointmentNotFound,
	})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/"+uuid.NewString()+"/status", bytes.NewBufferString(`{"status":"Completed"}`))
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
	rec := httptest.NewRecorder()

	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetDaySlotsRequiresDate(t *testing.T) {
	h := newTestHandler(&stubAvailabilityUsecase{}, &stubBookingUsecase{}, &stubStatusUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/"+uuid.NewString()+"/slots", nil)
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
	rec := httptest.NewRecorder()

	h.GetDaySlots(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
