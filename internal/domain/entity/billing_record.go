package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingStatus represents the payment status of a billing record
type BillingStatus string

const (
	BillingStatusPending   BillingStatus = "Pending"
	BillingStatusPaid      BillingStatus = "Paid"
	BillingStatusCancelled BillingStatus = "Cancelled"
)

// Appointment types with a fixed price. Unrecognized types bill at the base price.
const (
	AppointmentTypeRegularCheckup = "Regular Checkup"
	AppointmentTypeCleaning       = "Cleaning"
	AppointmentTypeRootCanal      = "Root Canal"
	AppointmentTypeFilling        = "Filling"
	AppointmentTypeCrown          = "Crown"
	AppointmentTypeExtraction     = "Extraction"
)

// insuranceCoverageRatio is the fixed portion of the billed amount attributed to
// insurance, applied once at booking time and never recalculated.
var insuranceCoverageRatio = decimal.NewFromFloat(0.7)

// BillingRecord is the billing side of an appointment; exactly one exists per
// appointment and it is created in the same transaction as the booking.
type BillingRecord struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	AppointmentID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"appointment_id"`
	Amount            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	InsuranceCoverage decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"insurance_coverage"`
	Status            BillingStatus   `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	PaymentDate       *time.Time      `gorm:"type:date" json:"payment_date,omitempty"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (BillingRecord) TableName() string {
	return "billing_records"
}

// PriceForAppointmentType returns the fixed price for an appointment type.
// Unrecognized types fall through to the base price.
func PriceForAppointmentType(appointmentType string) decimal.Decimal {
	switch appointmentType {
	case AppointmentTypeRegularCheckup:
		return decimal.NewFromInt(100)
	case AppointmentTypeCleaning:
		return decimal.NewFromInt(150)
	case AppointmentTypeRootCanal:
		return decimal.NewFromInt(800)
	case AppointmentTypeFilling:
		return decimal.NewFromInt(200)
	case AppointmentTypeCrown:
		return decimal.NewFromInt(1000)
	case AppointmentTypeExtraction:
		return decimal.NewFromInt(300)
	default:
		return decimal.NewFromInt(100)
	}
}

// NewBillingRecord derives the billing record for a freshly booked appointment
func NewBillingRecord(patientID, appointmentID uuid.UUID, appointmentType string) *BillingRecord {
	amount := PriceForAppointmentType(appointmentType)
	return &BillingRecord{
		PatientID:         patientID,
		AppointmentID:     appointmentID,
		Amount:            amount,
		InsuranceCoverage: amount.Mul(insuranceCoverageRatio),
		Status:            BillingStatusPending,
	}
}

// PatientResponsibility is the portion of the amount not covered by insurance
func (b *BillingRecord) PatientResponsibility() decimal.Decimal {
	return b.Amount.Sub(b.InsuranceCoverage)
}
