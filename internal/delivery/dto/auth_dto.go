package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RegisterPatientRequest struct {
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=6"`
	FullName          string `json:"full_name" validate:"required,min=2"`
	Phone             string `json:"phone" validate:"required,min=7,max=20"`
	DateOfBirth       string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Address           string `json:"address" validate:"omitempty"`
	InsuranceProvider string `json:"insurance_provider" validate:"omitempty"`
	InsuranceID       string `json:"insurance_id" validate:"omitempty"`
}

type RegisterDoctorRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required,min=2"`
	Specialty   string `json:"specialty" validate:"required"`
	Phone       string `json:"phone" validate:"required,min=7,max=20"`
	OfficeHours string `json:"office_hours" validate:"omitempty"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type PatientResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	DateOfBirth       string    `json:"date_of_birth"`
	Address           string    `json:"address,omitempty"`
	InsuranceProvider string    `json:"insurance_provider,omitempty"`
	InsuranceID       string    `json:"insurance_id,omitempty"`
	Status            string    `json:"status"`
}

type UserResponse struct {
	ID        uuid.UUID        `json:"id"`
	Email     string           `json:"email"`
	FullName  string           `json:"full_name"`
	Role      string           `json:"role"`
	Doctor    *DoctorResponse  `json:"doctor,omitempty"`
	Patient   *PatientResponse `json:"patient,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
