package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateDoctorRequest struct {
	Username        string          `json:"username" validate:"required,min=3,max=150"`
	Password        string          `json:"password" validate:"required,min=6"`
	FullName        string          `json:"full_name" validate:"required,min=2"`
	Specialization  string          `json:"specialization" validate:"required"`
	ConsultationFee decimal.Decimal `json:"consultation_fee" validate:"omitempty"`
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID       `json:"id"`
	Username        string          `json:"username,omitempty"`
	FullName        string          `json:"full_name"`
	Specialization  string          `json:"specialization"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	IsAvailable     bool            `json:"is_available"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
