package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "Booked"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment links one patient profile and one doctor profile to a
// date/time slot. The (doctor_profile_id, date, time) tuple is unique at
// the storage layer; a slot stays taken even after cancellation.
type Appointment struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientProfileID uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_profile_id"`
	DoctorProfileID  uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uq_appointments_slot" json:"doctor_profile_id"`
	Date             string            `gorm:"type:varchar(10);not null;uniqueIndex:uq_appointments_slot" json:"date"`
	Time             string            `gorm:"type:varchar(5);not null;uniqueIndex:uq_appointments_slot" json:"time"`
	Status           AppointmentStatus `gorm:"type:varchar(20);not null;default:'Booked';index" json:"status"`
	Diagnosis        *string           `gorm:"type:text" json:"diagnosis,omitempty"`
	Prescription     *string           `gorm:"type:text" json:"prescription,omitempty"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientProfileID" json:"patient,omitempty"`
	Doctor  DoctorProfile  `gorm:"foreignKey:DoctorProfileID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsBooked checks if the appointment is still pending treatment
func (a *Appointment) IsBooked() bool {
	return a.Status == AppointmentStatusBooked
}

// IsCancelled checks if the appointment was cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Complete records the clinical outcome. Completed is terminal.
func (a *Appointment) Complete(diagnosis, prescription string) {
	a.Diagnosis = &diagnosis
	a.Prescription = &prescription
	a.Status = AppointmentStatusCompleted
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}
