package usecase

import (
	"context"
	"errors"
	"time"

	"dental-office-backend/internal/converter"
	"dental-office-backend/internal/delivery/dto"
	"dental-office-backend/internal/domain/entity"
	"dental-office-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrInvalidDateTime     = errors.New("invalid datetime format, use YYYY-MM-DD HH:MM")
)

type AppointmentStatusUsecase interface {
	UpdateStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentStatusUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	availability    AvailabilityUsecase
	appointmentRepo repository.AppointmentRepository
	billingRepo     repository.BillingRecordRepository
}

func NewAppointmentStatusUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	availability AvailabilityUsecase,
	appointmentRepo repository.AppointmentRepository,
	billingRepo repository.BillingRecordRepository,
) AppointmentStatusUsecase {
	return &appointmentStatusUsecase{
		db:              db,
		log:             log,
		availability:    availability,
		appointmentRepo: appointmentRepo,
		billingRepo:     billingRepo,
	}
}

// UpdateStatus applies a lifecycle transition as one atomic unit: the status
// write, the reschedule re-validation when moving to a new slot, and the
// billing cascade on cancellation either all commit or all roll back.
//
// A reschedule mutates the appointment's date and time in place; no new row is
// created and the record keeps its identity. The moved appointment is excluded
// from its own conflict count.
func (u *appointmentStatusUsecase) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	status := entity.AppointmentStatus(req.Status)
	if !entity.ValidAppointmentStatus(status) {
		return nil, ErrInvalidStatus
	}

	var newDate time.Time
	var newTime string
	reschedule := status == entity.AppointmentStatusRescheduled && req.NewDateTime != ""
	if reschedule {
		parsed, err := time.Parse("2006-01-02 15:04", req.NewDateTime)
		if err != nil {
			return nil, ErrInvalidDateTime
		}
		newDate = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
		newTime = parsed.Format("15:04")
	}

	db := u.db.WithContext(ctx)

	var appointment *entity.Appointment
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		appointment, err = u.appointmentRepo.FindByID(tx, appointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}

		if reschedule {
			eval, err := u.availability.EvaluateSlotForUpdate(tx, appointment.DoctorID, newDate, newTime, &appointment.ID)
			if err != nil {
				return err
			}
			if !eval.Available {
				return &SlotUnavailableError{Reason: eval.Reason}
			}
			appointment.AppointmentDate = newDate
			appointment.AppointmentTime = newTime
		}

		appointment.AppendNote(entity.TransitionNote(status, req.Reason))
		appointment.Status = status

		if err := u.appointmentRepo.Update(tx, appointment); err != nil {
			return err
		}

		if status == entity.AppointmentStatusCancelled {
			return u.billingRepo.CancelByAppointmentID(tx, appointment.ID)
		}
		return nil
	})
	if err != nil {
		var unavailable *SlotUnavailableError
		if !errors.Is(err, ErrAppointmentNotFound) && !errors.As(err, &unavailable) {
			u.log.Errorf("Status transition failed for appointment %s: %+v", appointmentID, err)
		}
		return nil, err
	}

	u.log.Infof("Appointment %s transitioned to %s", appointmentID, status)

	full, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointmentID, err)
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(full), nil
}
