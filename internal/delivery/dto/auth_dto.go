package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterPatientRequest is the patient self-registration payload.
// Admin and doctor accounts are never self-registered.
type RegisterPatientRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,min=2"`
	Age      int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Contact  string `json:"contact" validate:"omitempty,max=20"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID             uuid.UUID        `json:"id"`
	Username       string           `json:"username"`
	Role           string           `json:"role"`
	DoctorProfile  *DoctorResponse  `json:"doctor_profile,omitempty"`
	PatientProfile *PatientResponse `json:"patient_profile,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
