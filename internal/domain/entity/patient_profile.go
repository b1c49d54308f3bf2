package entity

import "github.com/google/uuid"

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	FullName string    `gorm:"type:varchar(150);not null" json:"full_name"`
	Age      int       `gorm:"default:0" json:"age"`
	Contact  string    `gorm:"type:varchar(20)" json:"contact,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientProfileID" json:"appointments,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
