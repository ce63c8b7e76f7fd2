package usecase

import (
	"context"
	"time"

	"dental-office-backend/internal/converter"
	"dental-office-backend/internal/delivery/dto"
	"dental-office-backend/internal/domain/entity"
	"dental-office-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ScheduleViewUsecase serves the read projections over the appointment ledger:
// a doctor's day at a glance and a patient's appointment history.
type ScheduleViewUsecase interface {
	GetDoctorSchedule(ctx context.Context, doctorID uuid.UUID, date string) (*dto.DoctorScheduleResponse, error)
	GetPatientAppointments(ctx context.Context, patientID uuid.UUID) (*dto.PatientAppointmentsResponse, error)
}

type scheduleViewUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	ruleRepo        repository.AvailabilityRuleRepository
	timeOffRepo     repository.TimeOffRepository
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
}

func NewScheduleViewUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ruleRepo repository.AvailabilityRuleRepository,
	timeOffRepo repository.TimeOffRepository,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
) ScheduleViewUsecase {
	return &scheduleViewUsecase{
		db:              db,
		log:             log,
		ruleRepo:        ruleRepo,
		timeOffRepo:     timeOffRepo,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
	}
}

func (u *scheduleViewUsecase) GetDoctorSchedule(ctx context.Context, doctorID uuid.UUID, dateStr string) (*dto.DoctorScheduleResponse, error) {
	if dateStr == "" {
		dateStr = time.Now().UTC().Format("2006-01-02")
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	rule, err := u.ruleRepo.FindByDoctorAndDay(db, doctorID, int(date.Weekday()))
	if err != nil {
		return nil, err
	}
	timeOff, err := u.timeOffRepo.FindActive(db, doctorID, date)
	if err != nil {
		return nil, err
	}
	appointments, err := u.appointmentRepo.FindByDoctorAndDate(db, doctorID, date)
	if err != nil {
		return nil, err
	}

	response := &dto.DoctorScheduleResponse{
		DoctorID:       doctorID,
		Date:           dateStr,
		Availability:   converter.RuleToResponse(rule),
		TimeOff:        converter.TimeOffToResponse(timeOff),
		Appointments:   groupByStatus(appointments),
		AvailableSlots: []string{},
		Stats:          dayStats(appointments),
	}

	if rule != nil && rule.Available() && timeOff == nil {
		for _, slot := range buildDaySlots(rule, appointments) {
			if slot.Available {
				response.AvailableSlots = append(response.AvailableSlots, slot.Time)
			}
		}
	}

	return response, nil
}

func (u *scheduleViewUsecase) GetPatientAppointments(ctx context.Context, patientID uuid.UUID) (*dto.PatientAppointmentsResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointments, err := u.appointmentRepo.FindByPatientID(db, patientID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	groups := dto.PatientAppointmentGroups{
		Upcoming: []dto.AppointmentResponse{},
		Past:     []dto.AppointmentResponse{},
	}
	for _, a := range appointments {
		resp := converter.AppointmentToResponse(&a)
		if slotInstant(&a).After(now) && !a.IsCancelled() {
			groups.Upcoming = append(groups.Upcoming, *resp)
		} else {
			groups.Past = append(groups.Past, *resp)
		}
	}

	stats := dto.PatientStats{
		TotalAppointments:      len(appointments),
		UpcomingAppointments:   len(groups.Upcoming),
		TotalBilled:            decimal.Zero,
		TotalInsuranceCoverage: decimal.Zero,
		TotalPatientOwed:       decimal.Zero,
	}
	for _, a := range appointments {
		switch a.Status {
		case entity.AppointmentStatusCompleted:
			stats.CompletedAppointments++
		case entity.AppointmentStatusCancelled:
			stats.CancelledAppointments++
		}
		if a.Billing != nil {
			stats.TotalBilled = stats.TotalBilled.Add(a.Billing.Amount)
			stats.TotalInsuranceCoverage = stats.TotalInsuranceCoverage.Add(a.Billing.InsuranceCoverage)
			stats.TotalPatientOwed = stats.TotalPatientOwed.Add(a.Billing.PatientResponsibility())
		}
	}

	return &dto.PatientAppointmentsResponse{
		PatientID:    patientID,
		Appointments: groups,
		Stats:        stats,
	}, nil
}

// slotInstant combines the appointment's date and HH:MM time into one instant
func slotInstant(a *entity.Appointment) time.Time {
	t, err := time.Parse("15:04", a.AppointmentTime)
	if err != nil {
		return a.AppointmentDate
	}
	d := a.AppointmentDate
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

func groupByStatus(appointments []entity.Appointment) dto.DoctorDayAppointments {
	groups := dto.DoctorDayAppointments{
		Scheduled:  []dto.AppointmentResponse{},
		InProgress: []dto.AppointmentResponse{},
		Completed:  []dto.AppointmentResponse{},
		Cancelled:  []dto.AppointmentResponse{},
	}
	for _, a := range appointments {
		resp := converter.AppointmentToResponse(&a)
		switch a.Status {
		case entity.AppointmentStatusInProgress:
			groups.InProgress = append(groups.InProgress, *resp)
		case entity.AppointmentStatusCompleted:
			groups.Completed = append(groups.Completed, *resp)
		case entity.AppointmentStatusCancelled:
			groups.Cancelled = append(groups.Cancelled, *resp)
		default:
			groups.Scheduled = append(groups.Scheduled, *resp)
		}
	}
	return groups
}

func dayStats(appointments []entity.Appointment) dto.DoctorDayStats {
	stats := dto.DoctorDayStats{
		TotalAppointments:      len(appointments),
		TotalBilled:            decimal.Zero,
		TotalInsuranceCoverage: decimal.Zero,
		TotalPatientOwed:       decimal.Zero,
	}
	for _, a := range appointments {
		switch a.Status {
		case entity.AppointmentStatusInProgress:
			stats.InProgressAppointments++
		case entity.AppointmentStatusCompleted:
			stats.CompletedAppointments++
		case entity.AppointmentStatusCancelled:
			stats.CancelledAppointments++
		default:
			stats.ScheduledAppointments++
		}
		if a.Billing != nil {
			stats.TotalBilled = stats.TotalBilled.Add(a.Billing.Amount)
			stats.TotalInsuranceCoverage = stats.TotalInsuranceCoverage.Add(a.Billing.InsuranceCoverage)
			stats.TotalPatientOwed = stats.TotalPatientOwed.Add(a.Billing.PatientResponsibility())
		}
	}
	return stats
}
