package dto

import "github.com/google/uuid"

type PatientResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username,omitempty"`
	FullName string    `json:"full_name"`
	Age      int       `json:"age,omitempty"`
	Contact  string    `json:"contact,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
