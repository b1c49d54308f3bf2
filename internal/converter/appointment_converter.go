package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:               appointment.ID,
		DoctorProfileID:  appointment.DoctorProfileID,
		PatientProfileID: appointment.PatientProfileID,
		Date:             appointment.Date,
		Time:             appointment.Time,
		Status:           string(appointment.Status),
		CreatedAt:        appointment.CreatedAt,
		UpdatedAt:        appointment.UpdatedAt,
	}

	if appointment.Diagnosis != nil {
		response.Diagnosis = *appointment.Diagnosis
	}
	if appointment.Prescription != nil {
		response.Prescription = *appointment.Prescription
	}

	// Include related profiles only when preloaded
	if appointment.Doctor.ID != uuid.Nil {
		response.Doctor = DoctorProfileToResponse(&appointment.Doctor)
	}
	if appointment.Patient.ID != uuid.Nil {
		response.Patient = PatientProfileToResponse(&appointment.Patient)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
