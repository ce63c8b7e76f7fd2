package usecase

import (
	"context"
	"time"

	"dental-office-backend/internal/converter"
	"dental-office-backend/internal/delivery/dto"
	"dental-office-backend/internal/domain/entity"
	"dental-office-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SlotUnavailableError carries the evaluator's rejection reason out of a
// booking or reschedule attempt. It is a business outcome, distinct from
// storage faults, and handlers surface the reason verbatim.
type SlotUnavailableError struct {
	Reason string
}

func (e *SlotUnavailableError) Error() string {
	return e.Reason
}

type BookingUsecase interface {
	Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
}

type bookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	availability    AvailabilityUsecase
	appointmentRepo repository.AppointmentRepository
	billingRepo     repository.BillingRecordRepository
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	availability AvailabilityUsecase,
	appointmentRepo repository.AppointmentRepository,
	billingRepo repository.BillingRecordRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
) BookingUsecase {
	return &bookingUsecase{
		db:              db,
		log:             log,
		availability:    availability,
		appointmentRepo: appointmentRepo,
		billingRepo:     billingRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
	}
}

// Book re-validates availability and commits the appointment together with its
// derived billing record in one transaction. The evaluator runs with the
// doctor's rule row locked, so of two concurrent bookings for the last slot the
// second observes the first's insert and is rejected.
func (u *bookingUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	timeOfDay, err := canonicalTime(req.Time)
	if err != nil {
		return nil, ErrInvalidTime
	}

	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	patient, err := u.patientRepo.FindByID(db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointment := &entity.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: date,
		AppointmentTime: timeOfDay,
		AppointmentType: req.AppointmentType,
		DurationMinutes: entity.DefaultDurationMinutes,
		Status:          entity.AppointmentStatusScheduled,
		Notes:           req.Notes,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		eval, err := u.availability.EvaluateSlotForUpdate(tx, req.DoctorID, date, timeOfDay, nil)
		if err != nil {
			return err
		}
		if !eval.Available {
			return &SlotUnavailableError{Reason: eval.Reason}
		}

		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			return err
		}

		billing := entity.NewBillingRecord(req.PatientID, appointment.ID, req.AppointmentType)
		return u.billingRepo.Create(tx, billing)
	})
	if err != nil {
		if _, ok := err.(*SlotUnavailableError); !ok {
			u.log.Errorf("Booking transaction failed for doctor %s at %s %s: %+v",
				req.DoctorID, req.Date, timeOfDay, err)
		}
		return nil, err
	}

	u.log.Infof("Appointment booked: id=%s, doctor=%s, date=%s, time=%s, type=%s",
		appointment.ID, req.DoctorID, req.Date, timeOfDay, req.AppointmentType)

	// Reload with doctor/patient display fields for the response
	full, err := u.appointmentRepo.FindByID(db, appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(full), nil
}
