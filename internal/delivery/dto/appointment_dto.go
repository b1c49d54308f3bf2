package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required,datetime=15:04"`
}

type UpdateTreatmentRequest struct {
	Diagnosis    string `json:"diagnosis" validate:"required"`
	Prescription string `json:"prescription" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID               uuid.UUID        `json:"id"`
	DoctorProfileID  uuid.UUID        `json:"doctor_profile_id"`
	PatientProfileID uuid.UUID        `json:"patient_profile_id"`
	Date             string           `json:"date"`
	Time             string           `json:"time"`
	Status           string           `json:"status"`
	Diagnosis        string           `json:"diagnosis,omitempty"`
	Prescription     string           `json:"prescription,omitempty"`
	Doctor           *DoctorResponse  `json:"doctor,omitempty"`
	Patient          *PatientResponse `json:"patient,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
