package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	FullName        string          `gorm:"type:varchar(150);not null" json:"full_name"`
	Specialization  string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"consultation_fee"`
	IsAvailable     bool            `gorm:"not null;default:true" json:"is_available"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorProfileID" json:"appointments,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
